package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backend_hatid/pkg/models"
)

// fakePSGC serves canned subdivision lists and counts hits per path.
type fakePSGC struct {
	responses map[string][]Subdivision
	hits      map[string]*int32
}

func newFakePSGC(responses map[string][]Subdivision) (*fakePSGC, *httptest.Server) {
	f := &fakePSGC{responses: responses, hits: make(map[string]*int32)}
	for path := range responses {
		f.hits[path] = new(int32)
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subs, ok := f.responses[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		atomic.AddInt32(f.hits[r.URL.Path], 1)
		json.NewEncoder(w).Encode(subs)
	}))
	return f, srv
}

func (f *fakePSGC) hitCount(path string) int {
	n, ok := f.hits[path]
	if !ok {
		return 0
	}
	return int(atomic.LoadInt32(n))
}

func TestRegions(t *testing.T) {
	_, srv := newFakePSGC(map[string][]Subdivision{
		"/regions/": {{Code: "130000000", Name: "NCR"}, {Code: "010000000", Name: "Region I"}},
	})
	defer srv.Close()

	client := NewLocationClient(srv.URL, time.Second)
	regions, err := client.Regions(context.Background())
	require.NoError(t, err)
	require.Len(t, regions, 2)
	assert.Equal(t, "NCR", regions[0].Name)
}

func TestProvincesOrDistrictsPrefersProvinces(t *testing.T) {
	f, srv := newFakePSGC(map[string][]Subdivision{
		"/regions/010000000/provinces/": {{Code: "012800000", Name: "Ilocos Norte"}},
		"/regions/010000000/districts/": {{Code: "xxx", Name: "should not be fetched"}},
	})
	defer srv.Close()

	client := NewLocationClient(srv.URL, time.Second)
	subs, isDistrict, err := client.ProvincesOrDistricts(context.Background(), "010000000")
	require.NoError(t, err)
	assert.False(t, isDistrict)
	require.Len(t, subs, 1)
	assert.Equal(t, "Ilocos Norte", subs[0].Name)

	assert.Equal(t, 1, f.hitCount("/regions/010000000/provinces/"))
	assert.Equal(t, 0, f.hitCount("/regions/010000000/districts/"))
}

func TestProvincesOrDistrictsFallsBackExactlyOnce(t *testing.T) {
	f, srv := newFakePSGC(map[string][]Subdivision{
		"/regions/130000000/provinces/": {},
		"/regions/130000000/districts/": {
			{Code: "133900000", Name: "First District"},
			{Code: "137400000", Name: "Second District"},
		},
	})
	defer srv.Close()

	client := NewLocationClient(srv.URL, time.Second)
	subs, isDistrict, err := client.ProvincesOrDistricts(context.Background(), "130000000")
	require.NoError(t, err)
	assert.True(t, isDistrict)
	assert.Len(t, subs, 2)

	assert.Equal(t, 1, f.hitCount("/regions/130000000/provinces/"))
	assert.Equal(t, 1, f.hitCount("/regions/130000000/districts/"))
}

func TestFetchNon200IsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewLocationClient(srv.URL, time.Second)
	_, err := client.Regions(context.Background())
	assert.Error(t, err)
}

func TestFetchHonorsContextCancellation(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	client := NewLocationClient(srv.URL, time.Minute)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		_, err := client.Regions(ctx)
		done <- err
	}()
	cancel()

	select {
	case err := <-done:
		assert.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("fetch did not return after cancellation")
	}
}

func TestJoinAddress(t *testing.T) {
	full := models.AddressBreakdown{
		Region:   "NCR",
		Province: "Second District",
		City:     "Makati",
		Barangay: "Poblacion",
	}
	assert.Equal(t, "Poblacion, Makati, Second District, NCR", JoinAddress(full, "old address"))

	partial := models.AddressBreakdown{Region: "NCR", City: "Makati"}
	assert.Equal(t, "Makati, NCR", JoinAddress(partial, "old address"))

	// Nothing picked: the previous freeform address passes through
	assert.Equal(t, "123 Mabini St", JoinAddress(models.AddressBreakdown{}, "123 Mabini St"))
}
