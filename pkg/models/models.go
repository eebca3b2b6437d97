package models

import (
	"time"
)

// Location is a lat/lng coordinate pair for map placement.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// AddressBreakdown holds the human-readable labels picked through the
// cascading location selector. Labels, not codes: the codes are only lookup
// keys for the next fetch and are discarded once children load.
type AddressBreakdown struct {
	Region   string `json:"region,omitempty"`
	Province string `json:"province,omitempty"`
	City     string `json:"city,omitempty"`
	Barangay string `json:"barangay,omitempty"`
}

// Product is immutable reference data owned by a store.
type Product struct {
	ID          string   `json:"id"`
	StoreID     string   `json:"storeId"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	ImageURL    string   `json:"imageUrl"`
	Brand       *string  `json:"brand,omitempty"`
	Calories    *int     `json:"calories,omitempty"`
	Ingredients []string `json:"ingredients,omitempty"`
}

// CartItem is one line of the active order. Quantity never drops below 1;
// removal is the only way a line reaches zero.
type CartItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Notes     *string `json:"notes,omitempty"`
}

type Restaurant struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Status       RestaurantStatus `json:"status"`
	Cuisine      string           `json:"cuisine"`
	OwnerName    string           `json:"ownerName"`
	Email        string           `json:"email"`
	Phone        string           `json:"phone"`
	Address      string           `json:"address"`
	Breakdown    AddressBreakdown `json:"addressBreakdown"`
	Location     *Location        `json:"location,omitempty"`
	ImageURL     string           `json:"imageUrl"`
	Rating       float64          `json:"rating"`
	TotalRatings int              `json:"totalRatings"`
	Revenue      float64          `json:"revenue"`
	ActiveOrders int              `json:"activeOrders"`
	Capacity     int              `json:"capacity"`
	Permits      []string         `json:"permits,omitempty"`
}

// Clone returns a deep copy suitable for a working-copy edit session.
func (r Restaurant) Clone() Restaurant {
	out := r
	if r.Location != nil {
		loc := *r.Location
		out.Location = &loc
	}
	out.Permits = append([]string(nil), r.Permits...)
	return out
}

type Store struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Status         StoreStatus      `json:"status"`
	Category       string           `json:"category"`
	OwnerName      string           `json:"ownerName"`
	Email          string           `json:"email"`
	Phone          string           `json:"phone"`
	Address        string           `json:"address"`
	Location       *Location        `json:"location,omitempty"`
	ImageURL       string           `json:"imageUrl"`
	Rating         float64          `json:"rating"`
	Revenue        float64          `json:"revenue"`
	InventoryLevel int              `json:"inventoryLevel"` // percent, 0-100
	Breakdown      AddressBreakdown `json:"addressBreakdown"`
}

func (s Store) Clone() Store {
	out := s
	if s.Location != nil {
		loc := *s.Location
		out.Location = &loc
	}
	return out
}

type Accommodation struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Status       AccommodationStatus `json:"status"`
	Kind         string              `json:"kind"` // hotel, inn, transient house
	Address      string              `json:"address"`
	Location     *Location           `json:"location,omitempty"`
	ImageURL     string              `json:"imageUrl"`
	Rating       float64             `json:"rating"`
	Capacity     int                 `json:"capacity"` // rooms
	NightlyRate  float64             `json:"nightlyRate"`
	Permits      []string            `json:"permits,omitempty"`
	CurrentGuest *string             `json:"currentGuest,omitempty"` // meaningful only while BOOKED
}

func (a Accommodation) Clone() Accommodation {
	out := a
	if a.Location != nil {
		loc := *a.Location
		out.Location = &loc
	}
	if a.CurrentGuest != nil {
		g := *a.CurrentGuest
		out.CurrentGuest = &g
	}
	out.Permits = append([]string(nil), a.Permits...)
	return out
}

// DeliveryActivity is one recent delivery record shown on the rider detail.
type DeliveryActivity struct {
	OrderID     string    `json:"orderId"`
	Description string    `json:"description"`
	At          time.Time `json:"at"`
}

type Rider struct {
	ID               string             `json:"id"`
	Name             string             `json:"name"`
	Status           RiderStatus        `json:"status"`
	Email            string             `json:"email"`
	Phone            string             `json:"phone"`
	Vehicle          VehicleType        `json:"vehicle"`
	Address          string             `json:"address"`
	Breakdown        AddressBreakdown   `json:"addressBreakdown"`
	Location         *Location          `json:"location,omitempty"`
	SuccessRate      float64            `json:"successRate"`      // percent
	CancellationRate float64            `json:"cancellationRate"` // percent
	AvgDeliveryMins  float64            `json:"avgDeliveryMins"`
	TotalDeliveries  int                `json:"totalDeliveries"`
	RatingCount      int                `json:"ratingCount"`
	RatingBuckets    map[int]int        `json:"ratingBuckets"` // keys 1..5, values sum to RatingCount
	RecentActivity   []DeliveryActivity `json:"recentActivity,omitempty"`
}

func (r Rider) Clone() Rider {
	out := r
	if r.Location != nil {
		loc := *r.Location
		out.Location = &loc
	}
	out.RatingBuckets = make(map[int]int, len(r.RatingBuckets))
	for k, v := range r.RatingBuckets {
		out.RatingBuckets[k] = v
	}
	out.RecentActivity = append([]DeliveryActivity(nil), r.RecentActivity...)
	return out
}

type Customer struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Status        CustomerStatus `json:"status"`
	Tier          CustomerTier   `json:"tier"`
	Type          CustomerType   `json:"type"`
	Email         string         `json:"email"`
	Phone         string         `json:"phone"`
	Address       string         `json:"address"`
	LifetimeSpend float64        `json:"lifetimeSpend"`
	OrderCount    int            `json:"orderCount"`
	JoinedAt      time.Time      `json:"joinedAt"`
}

func (c Customer) Clone() Customer { return c }

// User is a staff account for the dashboard itself.
type User struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Password  string     `json:"-"`
	Role      Role       `json:"role"`
	Status    UserStatus `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
}

type Order struct {
	ID       string      `json:"id"`
	StoreID  string      `json:"storeId"`
	Items    []CartItem  `json:"items"`
	Subtotal float64     `json:"subtotal"`
	Tax      float64     `json:"tax"`
	Discount float64     `json:"discount"`
	Total    float64     `json:"total"`
	Status   OrderStatus `json:"status"`
	PlacedBy string      `json:"placedBy"`
	PlacedAt time.Time   `json:"placedAt"`
}

// AuditLogEntry records one dashboard action. Entries are appended, never
// mutated or deleted.
type AuditLogEntry struct {
	ID         string      `json:"id"`
	ActorID    string      `json:"actorId"`
	ActorName  string      `json:"actorName"`
	Action     AuditAction `json:"action"`
	TargetType string      `json:"targetType"`
	TargetID   string      `json:"targetId"`
	Detail     string      `json:"detail,omitempty"`
	At         time.Time   `json:"at"`
}
