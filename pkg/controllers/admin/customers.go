package admin

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lucsky/cuid"

	"backend_hatid/pkg/editor"
	"backend_hatid/pkg/listing"
	"backend_hatid/pkg/models"
	"backend_hatid/pkg/store"
	"backend_hatid/pkg/utils"
)

func validCustomerStatus(s string) bool {
	switch models.CustomerStatus(s) {
	case models.CustomerStatusActive, models.CustomerStatusInactive, models.CustomerStatusBlocked:
		return true
	}
	return false
}

func validCustomerTier(s string) bool {
	switch models.CustomerTier(s) {
	case models.CustomerTierBronze, models.CustomerTierSilver,
		models.CustomerTierGold, models.CustomerTierPlatinum:
		return true
	}
	return false
}

func validCustomerType(s string) bool {
	switch models.CustomerType(s) {
	case models.CustomerTypeRegular, models.CustomerTypeRestaurantOwner,
		models.CustomerTypeStoreOwner, models.CustomerTypeDeliveryRider:
		return true
	}
	return false
}

// ListCustomers returns the filtered customer view
func ListCustomers(c *gin.Context) {
	user, ok := mustUser(c)
	if !ok {
		return
	}
	v := viewsFor(user.ID)
	v.mu.Lock()
	defer v.mu.Unlock()

	ctrl := v.customers
	if status, present := c.GetQuery("status"); present {
		if status != "" && status != listing.StatusAll && !validCustomerStatus(status) {
			utils.BadRequestResponse(c, "Invalid customer status")
			return
		}
		ctrl.SetFilter(status)
	}
	if term, present := c.GetQuery("search"); present {
		ctrl.SetSearch(term)
	}

	c.JSON(http.StatusOK, gin.H{
		"customers":   ctrl.Visible(),
		"filter":      ctrl.StatusFilter(),
		"search":      ctrl.SearchTerm(),
		"multiSelect": ctrl.MultiSelect(),
		"selected":    ctrl.Selected(),
	})
}

// GetCustomer returns one customer by id
func GetCustomer(c *gin.Context) {
	customer, ok := store.Data.Customers.Get(c.Param("id"))
	if !ok {
		utils.NotFoundResponse(c, "Customer not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"customer": customer})
}

// CreateCustomer adds a new customer record
func CreateCustomer(c *gin.Context) {
	user, ok := mustUser(c)
	if !ok {
		return
	}

	var req struct {
		Name    string `json:"name" binding:"required"`
		Email   string `json:"email" binding:"required,email"`
		Phone   string `json:"phone"`
		Address string `json:"address"`
		Tier    string `json:"tier"`
		Type    string `json:"type"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Name and email are required")
		return
	}

	tier := models.CustomerTierBronze
	if req.Tier != "" {
		if !validCustomerTier(req.Tier) {
			utils.BadRequestResponse(c, "Invalid customer tier")
			return
		}
		tier = models.CustomerTier(req.Tier)
	}
	ctype := models.CustomerTypeRegular
	if req.Type != "" {
		if !validCustomerType(req.Type) {
			utils.BadRequestResponse(c, "Invalid customer type")
			return
		}
		ctype = models.CustomerType(req.Type)
	}

	customer := models.Customer{
		ID:       cuid.New(),
		Name:     req.Name,
		Status:   models.CustomerStatusActive,
		Tier:     tier,
		Type:     ctype,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		JoinedAt: time.Now(),
	}
	store.Data.Customers.Insert(customer)
	store.Data.AppendAudit(user, models.AuditActionCreate, "customer", customer.ID, customer.Name)

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Customer created successfully",
		"customer": customer,
	})
}

// UpdateCustomer commits field edits through an edit session
func UpdateCustomer(c *gin.Context) {
	user, ok := mustUser(c)
	if !ok {
		return
	}

	var req struct {
		Name    *string `json:"name"`
		Email   *string `json:"email"`
		Phone   *string `json:"phone"`
		Address *string `json:"address"`
		Tier    *string `json:"tier"`
		Type    *string `json:"type"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}
	if req.Tier != nil && !validCustomerTier(*req.Tier) {
		utils.BadRequestResponse(c, "Invalid customer tier")
		return
	}
	if req.Type != nil && !validCustomerType(*req.Type) {
		utils.BadRequestResponse(c, "Invalid customer type")
		return
	}

	session, err := customerEditor.Open(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, "Customer not found")
		return
	}
	if err := session.EnterEdit(); err != nil {
		utils.NotFoundResponse(c, "Customer not found")
		return
	}

	working := session.Working()
	if req.Name != nil {
		working.Name = *req.Name
	}
	if req.Email != nil {
		working.Email = *req.Email
	}
	if req.Phone != nil {
		working.Phone = *req.Phone
	}
	if req.Address != nil {
		working.Address = *req.Address
	}
	if req.Tier != nil {
		working.Tier = models.CustomerTier(*req.Tier)
	}
	if req.Type != nil {
		working.Type = models.CustomerType(*req.Type)
	}

	if err := session.Commit(); err != nil {
		utils.NotFoundResponse(c, "Customer not found")
		return
	}
	store.Data.AppendAudit(user, models.AuditActionUpdate, "customer", working.ID, working.Name)

	c.JSON(http.StatusOK, gin.H{
		"message":  "Customer updated successfully",
		"customer": working,
	})
}

// UpdateCustomerStatus applies a quick status transition (active, inactive,
// blocked)
func UpdateCustomerStatus(c *gin.Context) {
	user, ok := mustUser(c)
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || !validCustomerStatus(req.Status) {
		utils.BadRequestResponse(c, "Valid status is required")
		return
	}

	status := models.CustomerStatus(req.Status)
	updated, err := customerEditor.QuickTransition(c.Param("id"), func(cu *models.Customer) {
		cu.Status = status
	})
	if err != nil {
		if errors.Is(err, editor.ErrNotFound) {
			utils.NotFoundResponse(c, "Customer not found")
			return
		}
		utils.InternalServerErrorResponse(c, "Internal server error")
		return
	}
	store.Data.AppendAudit(user, models.AuditActionStatusChange, "customer", updated.ID, string(status))

	c.JSON(http.StatusOK, gin.H{
		"message":  "Customer status updated",
		"customer": updated,
	})
}

// BulkCustomerStatus applies one status to every selected id
func BulkCustomerStatus(c *gin.Context) {
	user, ok := mustUser(c)
	if !ok {
		return
	}

	var req struct {
		IDs    []string `json:"ids" binding:"required"`
		Status string   `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || !validCustomerStatus(req.Status) {
		utils.BadRequestResponse(c, "ids and a valid status are required")
		return
	}

	status := models.CustomerStatus(req.Status)
	updated := 0
	for _, id := range req.IDs {
		if _, err := customerEditor.QuickTransition(id, func(cu *models.Customer) {
			cu.Status = status
		}); err == nil {
			updated++
		}
	}
	store.Data.AppendAudit(user, models.AuditActionStatusChange, "customer", "",
		fmt.Sprintf("bulk %s: %d of %d", status, updated, len(req.IDs)))

	c.JSON(http.StatusOK, gin.H{
		"message": "Bulk status applied",
		"updated": updated,
	})
}

// DeleteCustomer removes the record after explicit confirmation
func DeleteCustomer(c *gin.Context) {
	user, ok := mustUser(c)
	if !ok {
		return
	}
	if !requireConfirm(c) {
		return
	}

	id := c.Param("id")
	customer, found := store.Data.Customers.Get(id)
	if !found || !store.Data.Customers.Delete(id) {
		utils.NotFoundResponse(c, "Customer not found")
		return
	}
	store.Data.AppendAudit(user, models.AuditActionDelete, "customer", id, customer.Name)

	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}

// ToggleCustomerMultiSelect flips multi-select mode and clears selection
func ToggleCustomerMultiSelect(c *gin.Context) {
	user, ok := mustUser(c)
	if !ok {
		return
	}
	v := viewsFor(user.ID)
	v.mu.Lock()
	defer v.mu.Unlock()

	enabled := v.customers.ToggleMultiSelect()
	c.JSON(http.StatusOK, gin.H{
		"multiSelect": enabled,
		"selected":    v.customers.Selected(),
	})
}

// ToggleCustomerSelect toggles one visible row in or out of the selection
func ToggleCustomerSelect(c *gin.Context) {
	user, ok := mustUser(c)
	if !ok {
		return
	}
	v := viewsFor(user.ID)
	v.mu.Lock()
	defer v.mu.Unlock()

	v.customers.ToggleSelect(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"selected": v.customers.Selected()})
}
