package panel

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"backend_hatid/pkg/cart"
	"backend_hatid/pkg/middleware"
	"backend_hatid/pkg/models"
	"backend_hatid/pkg/store"
	"backend_hatid/pkg/utils"
)

var (
	carts  = cart.NewManager()
	cartMu sync.Mutex
)

func mustUser(c *gin.Context) (models.User, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c, "Authentication required.")
	}
	return user, ok
}

func cartResponse(userCart *cart.Cart) gin.H {
	return gin.H{
		"storeId": userCart.StoreID,
		"items":   userCart.Items,
		"summary": userCart.Summary(),
	}
}

// GetCart returns the user's active cart with derived totals
func GetCart(c *gin.Context) {
	user, ok := mustUser(c)
	if !ok {
		return
	}
	cartMu.Lock()
	defer cartMu.Unlock()

	c.JSON(http.StatusOK, cartResponse(carts.Get(user.ID)))
}

// AddCartItem adds one unit of a product: an existing line increments, a
// new product starts at quantity 1.
func AddCartItem(c *gin.Context) {
	user, ok := mustUser(c)
	if !ok {
		return
	}

	var req struct {
		ProductID string `json:"productId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "productId is required")
		return
	}

	product, found := store.Data.Products.Get(req.ProductID)
	if !found {
		utils.NotFoundResponse(c, "Product not found")
		return
	}

	cartMu.Lock()
	defer cartMu.Unlock()

	userCart := carts.Get(user.ID)
	if userCart.StoreID == "" {
		userCart.StoreID = product.StoreID
	}
	if userCart.StoreID != product.StoreID {
		utils.ConflictResponse(c, "Product belongs to a different store. Switch the store context first.")
		return
	}
	userCart.AddItem(product)

	c.JSON(http.StatusOK, cartResponse(userCart))
}

// RemoveCartItem deletes the whole line regardless of quantity
func RemoveCartItem(c *gin.Context) {
	user, ok := mustUser(c)
	if !ok {
		return
	}
	cartMu.Lock()
	defer cartMu.Unlock()

	userCart := carts.Get(user.ID)
	if !userCart.RemoveItem(c.Param("productId")) {
		utils.NotFoundResponse(c, "Item not in cart")
		return
	}

	c.JSON(http.StatusOK, cartResponse(userCart))
}

// UpdateCartQuantity adjusts a line by delta, clamped at quantity 1.
// Removal is the only way a line leaves the cart.
func UpdateCartQuantity(c *gin.Context) {
	user, ok := mustUser(c)
	if !ok {
		return
	}

	var req struct {
		Delta *int `json:"delta" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "delta is required")
		return
	}

	cartMu.Lock()
	defer cartMu.Unlock()

	userCart := carts.Get(user.ID)
	if !userCart.UpdateQuantity(c.Param("productId"), *req.Delta) {
		utils.NotFoundResponse(c, "Item not in cart")
		return
	}

	c.JSON(http.StatusOK, cartResponse(userCart))
}

// SwitchCartContext rebuilds the cart from the store's most recent order,
// or empties it when the store has none.
func SwitchCartContext(c *gin.Context) {
	user, ok := mustUser(c)
	if !ok {
		return
	}

	var req struct {
		StoreID string `json:"storeId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "storeId is required")
		return
	}

	if _, found := store.Data.Stores.Get(req.StoreID); !found {
		utils.NotFoundResponse(c, "Store not found")
		return
	}

	cartMu.Lock()
	defer cartMu.Unlock()

	userCart := carts.Get(user.ID)
	if lastOrder, found := store.Data.LatestOrderForStore(req.StoreID); found {
		userCart.SwitchContext(req.StoreID, &lastOrder)
	} else {
		userCart.SwitchContext(req.StoreID, nil)
	}

	c.JSON(http.StatusOK, cartResponse(userCart))
}

// ClearCart empties the cart, keeping the store context
func ClearCart(c *gin.Context) {
	user, ok := mustUser(c)
	if !ok {
		return
	}
	cartMu.Lock()
	defer cartMu.Unlock()

	userCart := carts.Get(user.ID)
	userCart.Clear()

	c.JSON(http.StatusOK, cartResponse(userCart))
}

// Checkout turns the cart into a pending order and clears it
func Checkout(c *gin.Context) {
	user, ok := mustUser(c)
	if !ok {
		return
	}
	cartMu.Lock()
	defer cartMu.Unlock()

	userCart := carts.Get(user.ID)
	if len(userCart.Items) == 0 {
		utils.BadRequestResponse(c, "Cart is empty")
		return
	}

	totals := userCart.Summary()
	order := models.Order{
		ID:       uuid.NewString(),
		StoreID:  userCart.StoreID,
		Items:    append([]models.CartItem(nil), userCart.Items...),
		Subtotal: totals.Subtotal,
		Tax:      totals.Tax,
		Discount: totals.Discount,
		Total:    totals.Total,
		Status:   models.OrderStatusPending,
		PlacedBy: user.ID,
		PlacedAt: time.Now(),
	}
	store.Data.Orders.Insert(order)
	store.Data.AppendAudit(user, models.AuditActionCheckout, "order", order.ID, order.StoreID)
	userCart.Clear()

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"order":   order,
	})
}
