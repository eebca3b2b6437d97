package admin

import (
	"sync"

	"backend_hatid/pkg/editor"
	"backend_hatid/pkg/listing"
	"backend_hatid/pkg/mapview"
	"backend_hatid/pkg/models"
	"backend_hatid/pkg/store"
)

// userViews holds the per-user screen state: one list controller per
// management section plus one map camera per section. The collections
// themselves live in the shared store; only filter, search, selection and
// viewport state is per user.
type userViews struct {
	mu sync.Mutex

	restaurants    *listing.Controller[models.Restaurant]
	stores         *listing.Controller[models.Store]
	riders         *listing.Controller[models.Rider]
	customers      *listing.Controller[models.Customer]
	accommodations *listing.Controller[models.Accommodation]

	maps map[string]*mapview.View
}

var (
	viewsMu sync.Mutex
	views   = make(map[string]*userViews)
)

func viewsFor(userID string) *userViews {
	viewsMu.Lock()
	defer viewsMu.Unlock()
	v, ok := views[userID]
	if !ok {
		v = newUserViews()
		views[userID] = v
	}
	return v
}

func newUserViews() *userViews {
	return &userViews{
		restaurants: listing.NewController(
			func() []models.Restaurant { return store.Data.Restaurants.List() },
			listing.Accessors[models.Restaurant]{
				ID:     func(r models.Restaurant) string { return r.ID },
				Status: func(r models.Restaurant) string { return string(r.Status) },
				SearchFields: func(r models.Restaurant) []string {
					return []string{r.Name, r.Cuisine, r.OwnerName}
				},
			}),
		stores: listing.NewController(
			func() []models.Store { return store.Data.Stores.List() },
			listing.Accessors[models.Store]{
				ID:     func(s models.Store) string { return s.ID },
				Status: func(s models.Store) string { return string(s.Status) },
				SearchFields: func(s models.Store) []string {
					return []string{s.Name, s.Category, s.OwnerName}
				},
			}),
		riders: listing.NewController(
			func() []models.Rider { return store.Data.Riders.List() },
			listing.Accessors[models.Rider]{
				ID:     func(r models.Rider) string { return r.ID },
				Status: func(r models.Rider) string { return string(r.Status) },
				SearchFields: func(r models.Rider) []string {
					return []string{r.Name, r.Email, r.Phone}
				},
			}),
		customers: listing.NewController(
			func() []models.Customer { return store.Data.Customers.List() },
			listing.Accessors[models.Customer]{
				ID:     func(c models.Customer) string { return c.ID },
				Status: func(c models.Customer) string { return string(c.Status) },
				SearchFields: func(c models.Customer) []string {
					return []string{c.Name, c.Email, c.Phone}
				},
			}),
		accommodations: listing.NewController(
			func() []models.Accommodation { return store.Data.Accommodations.List() },
			listing.Accessors[models.Accommodation]{
				ID:     func(a models.Accommodation) string { return a.ID },
				Status: func(a models.Accommodation) string { return string(a.Status) },
				SearchFields: func(a models.Accommodation) []string {
					return []string{a.Name, a.Kind, a.Address}
				},
			}),
		maps: make(map[string]*mapview.View),
	}
}

func (v *userViews) mapView(section string) *mapview.View {
	mv, ok := v.maps[section]
	if !ok {
		mv = &mapview.View{}
		v.maps[section] = mv
	}
	mv.Init()
	return mv
}

// Editors commit whole-record swaps back into the shared store. The store
// is resolved at call time, after Init has run.
var (
	restaurantEditor = editor.New(
		func(id string) (models.Restaurant, bool) { return store.Data.Restaurants.Get(id) },
		func(r models.Restaurant) bool { return store.Data.Restaurants.Replace(r) },
		models.Restaurant.Clone,
	)
	storeEditor = editor.New(
		func(id string) (models.Store, bool) { return store.Data.Stores.Get(id) },
		func(s models.Store) bool { return store.Data.Stores.Replace(s) },
		models.Store.Clone,
	)
	riderEditor = editor.New(
		func(id string) (models.Rider, bool) { return store.Data.Riders.Get(id) },
		func(r models.Rider) bool { return store.Data.Riders.Replace(r) },
		models.Rider.Clone,
	)
	customerEditor = editor.New(
		func(id string) (models.Customer, bool) { return store.Data.Customers.Get(id) },
		func(c models.Customer) bool { return store.Data.Customers.Replace(c) },
		models.Customer.Clone,
	)
	accommodationEditor = editor.New(
		func(id string) (models.Accommodation, bool) { return store.Data.Accommodations.Get(id) },
		func(a models.Accommodation) bool { return store.Data.Accommodations.Replace(a) },
		models.Accommodation.Clone,
	)
)
