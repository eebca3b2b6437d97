package services

import (
	"context"
	"log"
	"sync"

	"backend_hatid/pkg/models"
)

// cascade levels
const (
	levelProvince = iota
	levelCity
	levelBarangay
	levelCount
)

// Cascade is one form's region → province/district → city → barangay
// picker session. Selecting an upper level clears every lower level and its
// option list before the child fetch starts, cancels any superseded
// in-flight fetch, and ignores stale responses, so options from a previous
// selection never surface.
type Cascade struct {
	client *LocationClient

	mu                 sync.Mutex
	regions            []Subdivision
	provinces          []Subdivision
	cities             []Subdivision
	barangays          []Subdivision
	provinceIsDistrict bool
	picked             models.AddressBreakdown

	gen     [levelCount]int
	cancels [levelCount]context.CancelFunc
	loading [levelCount]bool
}

func NewCascade(client *LocationClient) *Cascade {
	return &Cascade{client: client}
}

// LoadRegions fetches the top-level list once, on first use of the owning
// form. A failed fetch leaves the list empty; there is no automatic retry.
func (cs *Cascade) LoadRegions(ctx context.Context) ([]Subdivision, error) {
	cs.mu.Lock()
	if len(cs.regions) > 0 {
		regions := cs.regions
		cs.mu.Unlock()
		return regions, nil
	}
	cs.mu.Unlock()

	regions, err := cs.client.Regions(ctx)
	if err != nil {
		log.Printf("Failed to load regions: %v", err)
		return nil, err
	}

	cs.mu.Lock()
	cs.regions = regions
	cs.mu.Unlock()
	return regions, nil
}

// begin clears every level at or below the given one, cancels their
// in-flight fetches, and returns a fetch context plus the generation that
// must still be current when the response lands. Every cleared level's
// generation advances, so a lower-level fetch whose HTTP exchange finished
// just before its cancel still fails the generation check and cannot
// repopulate a list the upper-level selection just cleared.
func (cs *Cascade) begin(parent context.Context, level int) (context.Context, int) {
	for l := level; l < levelCount; l++ {
		if cs.cancels[l] != nil {
			cs.cancels[l]()
			cs.cancels[l] = nil
		}
		cs.loading[l] = false
		cs.gen[l]++
	}
	switch level {
	case levelProvince:
		cs.provinces, cs.cities, cs.barangays = nil, nil, nil
		cs.picked.Province, cs.picked.City, cs.picked.Barangay = "", "", ""
	case levelCity:
		cs.cities, cs.barangays = nil, nil
		cs.picked.City, cs.picked.Barangay = "", ""
	case levelBarangay:
		cs.barangays = nil
		cs.picked.Barangay = ""
	}
	ctx, cancel := context.WithCancel(parent)
	cs.cancels[level] = cancel
	cs.loading[level] = true
	return ctx, cs.gen[level]
}

// SelectRegion stores the region label, resets the lower levels, and loads
// the provinces (or districts, for metropolitan-style regions) under it.
func (cs *Cascade) SelectRegion(ctx context.Context, code, name string) ([]Subdivision, error) {
	cs.mu.Lock()
	cs.picked.Region = name
	fetchCtx, gen := cs.begin(ctx, levelProvince)
	cs.mu.Unlock()

	subs, isDistrict, err := cs.client.ProvincesOrDistricts(fetchCtx, code)

	cs.mu.Lock()
	defer cs.mu.Unlock()
	if gen != cs.gen[levelProvince] {
		// superseded by a newer selection
		return nil, nil
	}
	cs.loading[levelProvince] = false
	if err != nil {
		log.Printf("Failed to load provinces for region %s: %v", code, err)
		return nil, err
	}
	cs.provinces = subs
	cs.provinceIsDistrict = isDistrict
	return subs, nil
}

// SelectProvince stores the province (or district) label, resets city and
// barangay, and loads the cities under it, using the endpoint matching the
// parent type.
func (cs *Cascade) SelectProvince(ctx context.Context, code, name string) ([]Subdivision, error) {
	cs.mu.Lock()
	isDistrict := cs.provinceIsDistrict
	fetchCtx, gen := cs.begin(ctx, levelCity)
	cs.picked.Province = name
	cs.mu.Unlock()

	var subs []Subdivision
	var err error
	if isDistrict {
		subs, err = cs.client.CitiesOfDistrict(fetchCtx, code)
	} else {
		subs, err = cs.client.CitiesOfProvince(fetchCtx, code)
	}

	cs.mu.Lock()
	defer cs.mu.Unlock()
	if gen != cs.gen[levelCity] {
		return nil, nil
	}
	cs.loading[levelCity] = false
	if err != nil {
		log.Printf("Failed to load cities for %s: %v", code, err)
		return nil, err
	}
	cs.cities = subs
	return subs, nil
}

// SelectCity stores the city label, resets barangay, and loads the
// barangays under it.
func (cs *Cascade) SelectCity(ctx context.Context, code, name string) ([]Subdivision, error) {
	cs.mu.Lock()
	fetchCtx, gen := cs.begin(ctx, levelBarangay)
	cs.picked.City = name
	cs.mu.Unlock()

	subs, err := cs.client.Barangays(fetchCtx, code)

	cs.mu.Lock()
	defer cs.mu.Unlock()
	if gen != cs.gen[levelBarangay] {
		return nil, nil
	}
	cs.loading[levelBarangay] = false
	if err != nil {
		log.Printf("Failed to load barangays for city %s: %v", code, err)
		return nil, err
	}
	cs.barangays = subs
	return subs, nil
}

// SelectBarangay stores the final level's label. Nothing below it to fetch.
func (cs *Cascade) SelectBarangay(name string) {
	cs.mu.Lock()
	cs.picked.Barangay = name
	cs.mu.Unlock()
}

// Picked returns the selected labels.
func (cs *Cascade) Picked() models.AddressBreakdown {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.picked
}

// Options returns the current option lists per level.
func (cs *Cascade) Options() (regions, provinces, cities, barangays []Subdivision) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.regions, cs.provinces, cs.cities, cs.barangays
}

// Loading reports whether a fetch is in flight for the province, city or
// barangay level.
func (cs *Cascade) Loading() (province, city, barangay bool) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.loading[levelProvince], cs.loading[levelCity], cs.loading[levelBarangay]
}

// Address joins the picked labels into the final address string, keeping
// the previous freeform value when nothing was picked.
func (cs *Cascade) Address(previous string) string {
	return JoinAddress(cs.Picked(), previous)
}
