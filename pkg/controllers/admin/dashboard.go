package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"backend_hatid/pkg/models"
	"backend_hatid/pkg/store"
)

// GetDashboardOverview returns overall statistics across every section
func GetDashboardOverview(c *gin.Context) {
	restaurants := store.Data.Restaurants.List()
	stores := store.Data.Stores.List()
	riders := store.Data.Riders.List()
	customers := store.Data.Customers.List()
	accommodations := store.Data.Accommodations.List()
	orders := store.Data.Orders.List()

	restaurantStatuses := make(map[models.RestaurantStatus]int)
	var restaurantRevenue float64
	for _, r := range restaurants {
		restaurantStatuses[r.Status]++
		restaurantRevenue += r.Revenue
	}

	storeStatuses := make(map[models.StoreStatus]int)
	var storeRevenue float64
	for _, s := range stores {
		storeStatuses[s.Status]++
		storeRevenue += s.Revenue
	}

	riderStatuses := make(map[models.RiderStatus]int)
	for _, r := range riders {
		riderStatuses[r.Status]++
	}

	customerStatuses := make(map[models.CustomerStatus]int)
	var lifetimeSpend float64
	for _, cu := range customers {
		customerStatuses[cu.Status]++
		lifetimeSpend += cu.LifetimeSpend
	}

	accommodationStatuses := make(map[models.AccommodationStatus]int)
	for _, a := range accommodations {
		accommodationStatuses[a.Status]++
	}

	var orderRevenue float64
	for _, o := range orders {
		if o.Status != models.OrderStatusCancelled {
			orderRevenue += o.Total
		}
	}

	// Top restaurant by revenue
	var top *models.Restaurant
	for i := range restaurants {
		if top == nil || restaurants[i].Revenue > top.Revenue {
			top = &restaurants[i]
		}
	}
	var topRestaurant gin.H
	if top != nil {
		topRestaurant = gin.H{"id": top.ID, "name": top.Name, "revenue": top.Revenue}
	}

	c.JSON(http.StatusOK, gin.H{
		"totalRestaurants":      len(restaurants),
		"totalStores":           len(stores),
		"totalRiders":           len(riders),
		"totalCustomers":        len(customers),
		"totalAccommodations":   len(accommodations),
		"totalOrders":           len(orders),
		"orderRevenue":          orderRevenue,
		"restaurantRevenue":     restaurantRevenue,
		"storeRevenue":          storeRevenue,
		"customerLifetimeSpend": lifetimeSpend,
		"restaurantStatuses":    restaurantStatuses,
		"storeStatuses":         storeStatuses,
		"riderStatuses":         riderStatuses,
		"customerStatuses":      customerStatuses,
		"accommodationStatuses": accommodationStatuses,
		"topPerformingRestaurant": topRestaurant,
	})
}

// GetAuditLog returns the audit trail, newest first
func GetAuditLog(c *gin.Context) {
	entries := store.Data.AuditLog()
	c.JSON(http.StatusOK, gin.H{
		"entries": entries,
		"total":   len(entries),
	})
}
