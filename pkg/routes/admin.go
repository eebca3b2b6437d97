package routes

import (
	"backend_hatid/pkg/controllers/admin"
	"backend_hatid/pkg/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterAdminRoutes(router *gin.Engine) {
	adminGroup := router.Group("/api/admin")

	// Restaurant management
	adminGroup.GET("/restaurants/", middleware.RestrictToAnyStaff(), admin.ListRestaurants)
	adminGroup.GET("/restaurants/map/", middleware.RestrictToAnyStaff(), admin.RestaurantMap)
	adminGroup.POST("/restaurants/map/recenter/", middleware.RestrictToAnyStaff(), admin.RecenterRestaurantMap)
	adminGroup.POST("/restaurants/selection-mode/", middleware.RestrictToAnyStaff(), admin.ToggleRestaurantMultiSelect)
	adminGroup.POST("/restaurants/selection/:id", middleware.RestrictToAnyStaff(), admin.ToggleRestaurantSelect)
	adminGroup.POST("/restaurants/bulk-status/", middleware.RestrictToSuperAdminOrAdmin(), admin.BulkRestaurantStatus)
	adminGroup.GET("/restaurants/:id", middleware.RestrictToAnyStaff(), admin.GetRestaurant)
	adminGroup.POST("/restaurants/", middleware.RestrictToSuperAdminOrAdmin(), admin.CreateRestaurant)
	adminGroup.PUT("/restaurants/:id", middleware.RestrictToSuperAdminOrAdmin(), admin.UpdateRestaurant)
	adminGroup.PATCH("/restaurants/:id/status", middleware.RestrictToAnyStaff(), admin.UpdateRestaurantStatus)
	adminGroup.DELETE("/restaurants/:id", middleware.RestrictToSuperAdmin(), admin.DeleteRestaurant)

	// Store management
	adminGroup.GET("/stores/", middleware.RestrictToAnyStaff(), admin.ListStores)
	adminGroup.GET("/stores/map/", middleware.RestrictToAnyStaff(), admin.StoreMap)
	adminGroup.POST("/stores/map/recenter/", middleware.RestrictToAnyStaff(), admin.RecenterStoreMap)
	adminGroup.POST("/stores/selection-mode/", middleware.RestrictToAnyStaff(), admin.ToggleStoreMultiSelect)
	adminGroup.POST("/stores/selection/:id", middleware.RestrictToAnyStaff(), admin.ToggleStoreSelect)
	adminGroup.POST("/stores/bulk-status/", middleware.RestrictToSuperAdminOrAdmin(), admin.BulkStoreStatus)
	adminGroup.GET("/stores/:id", middleware.RestrictToAnyStaff(), admin.GetStore)
	adminGroup.POST("/stores/", middleware.RestrictToSuperAdminOrAdmin(), admin.CreateStore)
	adminGroup.PUT("/stores/:id", middleware.RestrictToSuperAdminOrAdmin(), admin.UpdateStore)
	adminGroup.PATCH("/stores/:id/status", middleware.RestrictToAnyStaff(), admin.UpdateStoreStatus)
	adminGroup.DELETE("/stores/:id", middleware.RestrictToSuperAdmin(), admin.DeleteStore)

	// Rider management
	adminGroup.GET("/riders/", middleware.RestrictToAnyStaff(), admin.ListRiders)
	adminGroup.GET("/riders/map/", middleware.RestrictToAnyStaff(), admin.RiderMap)
	adminGroup.POST("/riders/map/recenter/", middleware.RestrictToAnyStaff(), admin.RecenterRiderMap)
	adminGroup.POST("/riders/selection-mode/", middleware.RestrictToAnyStaff(), admin.ToggleRiderMultiSelect)
	adminGroup.POST("/riders/selection/:id", middleware.RestrictToAnyStaff(), admin.ToggleRiderSelect)
	adminGroup.GET("/riders/:id", middleware.RestrictToAnyStaff(), admin.GetRider)
	adminGroup.POST("/riders/", middleware.RestrictToSuperAdminOrAdmin(), admin.CreateRider)
	adminGroup.PUT("/riders/:id", middleware.RestrictToSuperAdminOrAdmin(), admin.UpdateRider)
	adminGroup.PATCH("/riders/:id/status", middleware.RestrictToAnyStaff(), admin.UpdateRiderStatus)
	adminGroup.POST("/riders/:id/reinstate", middleware.RestrictToSuperAdminOrAdmin(), admin.ReinstateRider)
	adminGroup.DELETE("/riders/:id", middleware.RestrictToSuperAdmin(), admin.DeleteRider)

	// Customer management
	adminGroup.GET("/customers/", middleware.RestrictToAnyStaff(), admin.ListCustomers)
	adminGroup.POST("/customers/selection-mode/", middleware.RestrictToAnyStaff(), admin.ToggleCustomerMultiSelect)
	adminGroup.POST("/customers/selection/:id", middleware.RestrictToAnyStaff(), admin.ToggleCustomerSelect)
	adminGroup.POST("/customers/bulk-status/", middleware.RestrictToSuperAdminOrAdmin(), admin.BulkCustomerStatus)
	adminGroup.GET("/customers/:id", middleware.RestrictToAnyStaff(), admin.GetCustomer)
	adminGroup.POST("/customers/", middleware.RestrictToSuperAdminOrAdmin(), admin.CreateCustomer)
	adminGroup.PUT("/customers/:id", middleware.RestrictToSuperAdminOrAdmin(), admin.UpdateCustomer)
	adminGroup.PATCH("/customers/:id/status", middleware.RestrictToAnyStaff(), admin.UpdateCustomerStatus)
	adminGroup.DELETE("/customers/:id", middleware.RestrictToSuperAdmin(), admin.DeleteCustomer)

	// Accommodation management
	adminGroup.GET("/accommodations/", middleware.RestrictToAnyStaff(), admin.ListAccommodations)
	adminGroup.GET("/accommodations/map/", middleware.RestrictToAnyStaff(), admin.AccommodationMap)
	adminGroup.POST("/accommodations/map/recenter/", middleware.RestrictToAnyStaff(), admin.RecenterAccommodationMap)
	adminGroup.POST("/accommodations/selection-mode/", middleware.RestrictToAnyStaff(), admin.ToggleAccommodationMultiSelect)
	adminGroup.POST("/accommodations/selection/:id", middleware.RestrictToAnyStaff(), admin.ToggleAccommodationSelect)
	adminGroup.GET("/accommodations/:id", middleware.RestrictToAnyStaff(), admin.GetAccommodation)
	adminGroup.POST("/accommodations/", middleware.RestrictToSuperAdminOrAdmin(), admin.CreateAccommodation)
	adminGroup.PUT("/accommodations/:id", middleware.RestrictToSuperAdminOrAdmin(), admin.UpdateAccommodation)
	adminGroup.PATCH("/accommodations/:id/status", middleware.RestrictToAnyStaff(), admin.UpdateAccommodationStatus)
	adminGroup.DELETE("/accommodations/:id", middleware.RestrictToSuperAdmin(), admin.DeleteAccommodation)

	// Dashboard overview and audit trail
	adminGroup.GET("/dashboard/overview/", middleware.RestrictToAnyStaff(), admin.GetDashboardOverview)
	adminGroup.GET("/audit-log/", middleware.RestrictToSuperAdminOrAdmin(), admin.GetAuditLog)
}
