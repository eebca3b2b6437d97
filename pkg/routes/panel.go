package routes

import (
	"backend_hatid/pkg/controllers/panel"
	"backend_hatid/pkg/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterPanelRoutes(router *gin.Engine) {
	panelGroup := router.Group("/api/panel")

	// Cart and checkout
	panelGroup.GET("/cart/", middleware.RestrictToAnyStaff(), panel.GetCart)
	panelGroup.POST("/cart/items/", middleware.RestrictToAnyStaff(), panel.AddCartItem)
	panelGroup.DELETE("/cart/items/:productId", middleware.RestrictToAnyStaff(), panel.RemoveCartItem)
	panelGroup.PATCH("/cart/items/:productId", middleware.RestrictToAnyStaff(), panel.UpdateCartQuantity)
	panelGroup.POST("/cart/switch-context/", middleware.RestrictToAnyStaff(), panel.SwitchCartContext)
	panelGroup.POST("/cart/clear/", middleware.RestrictToAnyStaff(), panel.ClearCart)
	panelGroup.POST("/cart/checkout/", middleware.RestrictToAnyStaff(), panel.Checkout)

	// AI assistant
	panelGroup.POST("/assistant/ask/", middleware.RestrictToAnyStaff(), panel.AskAssistant)

	// Cascading location picker
	panelGroup.GET("/locations/regions/", middleware.RestrictToAnyStaff(), panel.GetRegions)
	panelGroup.POST("/locations/region/", middleware.RestrictToAnyStaff(), panel.SelectRegion)
	panelGroup.POST("/locations/province/", middleware.RestrictToAnyStaff(), panel.SelectProvince)
	panelGroup.POST("/locations/city/", middleware.RestrictToAnyStaff(), panel.SelectCity)
	panelGroup.POST("/locations/barangay/", middleware.RestrictToAnyStaff(), panel.SelectBarangay)
	panelGroup.GET("/locations/address/", middleware.RestrictToAnyStaff(), panel.GetPickerAddress)
}
