package panel

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"backend_hatid/pkg/services"
	"backend_hatid/pkg/utils"
)

// Cascade sessions are per user per form: the restaurant form and the rider
// form each keep independent picker state.
var (
	cascadesMu sync.Mutex
	cascades   = make(map[string]*services.Cascade)
)

func cascadeFor(userID string, c *gin.Context) *services.Cascade {
	form := c.DefaultQuery("form", "default")
	key := userID + ":" + form

	cascadesMu.Lock()
	defer cascadesMu.Unlock()
	cs, ok := cascades[key]
	if !ok {
		cs = services.NewCascade(services.Locations())
		cascades[key] = cs
	}
	return cs
}

func pickerState(cs *services.Cascade) gin.H {
	regions, provinces, cities, barangays := cs.Options()
	provinceLoading, cityLoading, barangayLoading := cs.Loading()
	return gin.H{
		"picked": cs.Picked(),
		"options": gin.H{
			"regions":   regions,
			"provinces": provinces,
			"cities":    cities,
			"barangays": barangays,
		},
		"loading": gin.H{
			"provinces": provinceLoading,
			"cities":    cityLoading,
			"barangays": barangayLoading,
		},
	}
}

// GetRegions loads the top-level region list for the form's picker
func GetRegions(c *gin.Context) {
	user, ok := mustUser(c)
	if !ok {
		return
	}
	cs := cascadeFor(user.ID, c)

	if _, err := cs.LoadRegions(c.Request.Context()); err != nil {
		utils.ErrorResponse(c, http.StatusBadGateway, "Could not load regions")
		return
	}
	c.JSON(http.StatusOK, pickerState(cs))
}

// SelectRegion picks a region and loads the provinces (or districts) under
// it. Lower levels clear immediately.
func SelectRegion(c *gin.Context) {
	user, ok := mustUser(c)
	if !ok {
		return
	}

	var req struct {
		Code string `json:"code" binding:"required"`
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "code and name are required")
		return
	}

	cs := cascadeFor(user.ID, c)
	if _, err := cs.SelectRegion(c.Request.Context(), req.Code, req.Name); err != nil {
		utils.ErrorResponse(c, http.StatusBadGateway, "Could not load provinces")
		return
	}
	c.JSON(http.StatusOK, pickerState(cs))
}

// SelectProvince picks a province or district and loads its cities
func SelectProvince(c *gin.Context) {
	user, ok := mustUser(c)
	if !ok {
		return
	}

	var req struct {
		Code string `json:"code" binding:"required"`
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "code and name are required")
		return
	}

	cs := cascadeFor(user.ID, c)
	if _, err := cs.SelectProvince(c.Request.Context(), req.Code, req.Name); err != nil {
		utils.ErrorResponse(c, http.StatusBadGateway, "Could not load cities")
		return
	}
	c.JSON(http.StatusOK, pickerState(cs))
}

// SelectCity picks a city and loads its barangays
func SelectCity(c *gin.Context) {
	user, ok := mustUser(c)
	if !ok {
		return
	}

	var req struct {
		Code string `json:"code" binding:"required"`
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "code and name are required")
		return
	}

	cs := cascadeFor(user.ID, c)
	if _, err := cs.SelectCity(c.Request.Context(), req.Code, req.Name); err != nil {
		utils.ErrorResponse(c, http.StatusBadGateway, "Could not load barangays")
		return
	}
	c.JSON(http.StatusOK, pickerState(cs))
}

// SelectBarangay picks the final level; nothing below it to load
func SelectBarangay(c *gin.Context) {
	user, ok := mustUser(c)
	if !ok {
		return
	}

	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "name is required")
		return
	}

	cs := cascadeFor(user.ID, c)
	cs.SelectBarangay(req.Name)
	c.JSON(http.StatusOK, pickerState(cs))
}

// GetPickerAddress joins the picked labels into the address string. With
// nothing picked the previous freeform value passes through unchanged.
func GetPickerAddress(c *gin.Context) {
	user, ok := mustUser(c)
	if !ok {
		return
	}
	cs := cascadeFor(user.ID, c)
	c.JSON(http.StatusOK, gin.H{
		"address":   cs.Address(c.Query("previous")),
		"breakdown": cs.Picked(),
	})
}
