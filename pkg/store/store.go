package store

import (
	"log"
	"sync"
	"time"

	"backend_hatid/pkg/models"
	"backend_hatid/pkg/seed"

	"github.com/google/uuid"
)

// Store is the single source of truth for every dashboard screen. All
// handlers read and mutate these collections; no per-screen copies.
type Store struct {
	Restaurants    *Collection[models.Restaurant]
	Stores         *Collection[models.Store]
	Riders         *Collection[models.Rider]
	Customers      *Collection[models.Customer]
	Accommodations *Collection[models.Accommodation]
	Products       *Collection[models.Product]
	Orders         *Collection[models.Order]
	Users          *Collection[models.User]

	auditMu sync.RWMutex
	audit   []models.AuditLogEntry
}

// Data is the process-wide store, seeded once by Init.
var Data *Store

// Init seeds the in-memory store from mock data. A restart resets
// everything.
func Init() {
	Data = New(seed.Dataset())
	log.Printf("In-memory store seeded: %d restaurants, %d stores, %d riders, %d customers, %d accommodations, %d products, %d users",
		Data.Restaurants.Len(), Data.Stores.Len(), Data.Riders.Len(),
		Data.Customers.Len(), Data.Accommodations.Len(), Data.Products.Len(), Data.Users.Len())
}

// New builds a store from the given dataset. Tests use this directly to get
// an isolated instance.
func New(ds seed.Data) *Store {
	return &Store{
		Restaurants:    NewCollection(func(r models.Restaurant) string { return r.ID }, ds.Restaurants),
		Stores:         NewCollection(func(s models.Store) string { return s.ID }, ds.Stores),
		Riders:         NewCollection(func(r models.Rider) string { return r.ID }, ds.Riders),
		Customers:      NewCollection(func(c models.Customer) string { return c.ID }, ds.Customers),
		Accommodations: NewCollection(func(a models.Accommodation) string { return a.ID }, ds.Accommodations),
		Products:       NewCollection(func(p models.Product) string { return p.ID }, ds.Products),
		Orders:         NewCollection(func(o models.Order) string { return o.ID }, ds.Orders),
		Users:          NewCollection(func(u models.User) string { return u.ID }, ds.Users),
	}
}

// AppendAudit records a dashboard action. The log is append-only.
func (s *Store) AppendAudit(actor models.User, action models.AuditAction, targetType, targetID, detail string) {
	entry := models.AuditLogEntry{
		ID:         uuid.NewString(),
		ActorID:    actor.ID,
		ActorName:  actor.Name,
		Action:     action,
		TargetType: targetType,
		TargetID:   targetID,
		Detail:     detail,
		At:         time.Now(),
	}
	s.auditMu.Lock()
	s.audit = append(s.audit, entry)
	s.auditMu.Unlock()
}

// AuditLog returns a snapshot of the audit trail, newest first.
func (s *Store) AuditLog() []models.AuditLogEntry {
	s.auditMu.RLock()
	defer s.auditMu.RUnlock()
	out := make([]models.AuditLogEntry, len(s.audit))
	for i, e := range s.audit {
		out[len(s.audit)-1-i] = e
	}
	return out
}

// LatestOrderForStore returns the most recent order placed against the
// given store, used to rebuild the cart when the active store context
// switches.
func (s *Store) LatestOrderForStore(storeID string) (models.Order, bool) {
	var latest models.Order
	found := false
	for _, o := range s.Orders.List() {
		if o.StoreID != storeID {
			continue
		}
		if !found || o.PlacedAt.After(latest.PlacedAt) {
			latest = o
			found = true
		}
	}
	return latest, found
}
