package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"backend_hatid/pkg/config"
	"backend_hatid/pkg/models"
)

// Subdivision is one geographic unit from the PSGC API: code plus display
// name. The code is only a lookup key for the next cascading fetch; the
// name is what lands on an entity's address fields.
type Subdivision struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// LocationClient talks to the public geographic-subdivision API. Read-only,
// unauthenticated, full lists in one response.
type LocationClient struct {
	baseURL string
	http    *http.Client
}

var locationClient *LocationClient

// InitLocations sets up the shared PSGC client from config.
func InitLocations() {
	locationClient = NewLocationClient(
		config.AppConfig.PSGCBaseURL,
		time.Duration(config.AppConfig.HTTPClientTimeoutSeconds)*time.Second,
	)
}

// Locations returns the shared PSGC client.
func Locations() *LocationClient { return locationClient }

func NewLocationClient(baseURL string, timeout time.Duration) *LocationClient {
	return &LocationClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *LocationClient) fetch(ctx context.Context, path string) ([]Subdivision, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("location API returned %d for %s", resp.StatusCode, path)
	}

	var out []Subdivision
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode location response for %s: %w", path, err)
	}
	return out, nil
}

// Regions fetches the top-level region list.
func (c *LocationClient) Regions(ctx context.Context) ([]Subdivision, error) {
	return c.fetch(ctx, "/regions/")
}

// Provinces fetches the provinces under a region.
func (c *LocationClient) Provinces(ctx context.Context, regionCode string) ([]Subdivision, error) {
	return c.fetch(ctx, "/regions/"+regionCode+"/provinces/")
}

// Districts fetches the districts under a region. Metropolitan-style
// regions have districts instead of provinces.
func (c *LocationClient) Districts(ctx context.Context, regionCode string) ([]Subdivision, error) {
	return c.fetch(ctx, "/regions/"+regionCode+"/districts/")
}

// ProvincesOrDistricts tries the provinces endpoint first and, only when
// the result set is empty, falls back to the districts endpoint for the
// same region code. The fallback fires at most once and never
// unconditionally; this mirrors how metropolitan regions are modeled
// upstream.
func (c *LocationClient) ProvincesOrDistricts(ctx context.Context, regionCode string) (subs []Subdivision, districts bool, err error) {
	subs, err = c.Provinces(ctx, regionCode)
	if err != nil {
		return nil, false, err
	}
	if len(subs) > 0 {
		return subs, false, nil
	}
	subs, err = c.Districts(ctx, regionCode)
	if err != nil {
		return nil, false, err
	}
	return subs, true, nil
}

// CitiesOfProvince fetches cities/municipalities under a province.
func (c *LocationClient) CitiesOfProvince(ctx context.Context, provinceCode string) ([]Subdivision, error) {
	return c.fetch(ctx, "/provinces/"+provinceCode+"/cities-municipalities/")
}

// CitiesOfDistrict fetches cities/municipalities under a district. The
// parent type matters: districts and provinces live on different endpoint
// paths.
func (c *LocationClient) CitiesOfDistrict(ctx context.Context, districtCode string) ([]Subdivision, error) {
	return c.fetch(ctx, "/districts/"+districtCode+"/cities-municipalities/")
}

// Barangays fetches the barangays under a city/municipality.
func (c *LocationClient) Barangays(ctx context.Context, cityCode string) ([]Subdivision, error) {
	return c.fetch(ctx, "/cities-municipalities/"+cityCode+"/barangays/")
}

// JoinAddress assembles the final address string from the selected labels,
// most specific first, skipping absent levels. With nothing selected the
// previous freeform address is kept unchanged.
func JoinAddress(b models.AddressBreakdown, previous string) string {
	parts := make([]string, 0, 4)
	for _, p := range []string{b.Barangay, b.City, b.Province, b.Region} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return previous
	}
	return strings.Join(parts, ", ")
}
