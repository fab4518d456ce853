package api

import (
	"net/http"

	reqdto "storefront-pricing/internal/handler/dto/request"
	resdto "storefront-pricing/internal/handler/dto/response"
	"storefront-pricing/internal/handler/httperr"
	"storefront-pricing/internal/handler/middleware"
	"storefront-pricing/internal/usecase/commands"
	"storefront-pricing/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CartHandler struct {
	cmds  commands.CartCommands
	q     queries.CartQueries
	guest *middleware.GuestCartMiddleware
}

func NewCartHandler(cmds commands.CartCommands, q queries.CartQueries, guest *middleware.GuestCartMiddleware) *CartHandler {
	return &CartHandler{cmds: cmds, q: q, guest: guest}
}

// @Summary Get cart
// @Description Get the caller's cart priced at the current time. Anonymous callers get a guest cart.
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CartResponse
// @Failure 401 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	buyer, ok := middleware.ResolveBuyer(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	view, err := h.q.GetCart(c.Request.Context(), buyer)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to load cart")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Add cart item
// @Description Add a product to the cart. The resulting quantity is capped at the units in stock.
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AddCartItemRequest true "Add cart item request"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	buyer, ok := middleware.ResolveBuyer(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.AddItem(c.Request.Context(), buyer, req.ProductID, req.Quantity)
	if err != nil {
		abortWithUsecaseError(c, err, "Add cart item failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Update cart item quantity
// @Description Set the quantity of a product already in the cart. Quantity 0 removes the line.
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param productId path string true "Product ID"
// @Param request body reqdto.UpdateCartItemRequest true "Update cart item request"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/cart/items/{productId} [patch]
func (h *CartHandler) UpdateItem(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid product id", nil)
		return
	}
	buyer, ok := middleware.ResolveBuyer(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.UpdateCartItemRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	view, err := h.cmds.UpdateQuantity(c.Request.Context(), buyer, productID, *req.Quantity)
	if err != nil {
		abortWithUsecaseError(c, err, "Update cart item failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Remove cart item
// @Description Remove a product from the cart. Removing an absent product is not an error.
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param productId path string true "Product ID"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} httperr.Response
// @Router /api/cart/items/{productId} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid product id", nil)
		return
	}
	buyer, ok := middleware.ResolveBuyer(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	view, err := h.cmds.RemoveItem(c.Request.Context(), buyer, productID)
	if err != nil {
		abortWithUsecaseError(c, err, "Remove cart item failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Clear cart
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CartResponse
// @Router /api/cart [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	buyer, ok := middleware.ResolveBuyer(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	view, err := h.cmds.Clear(c.Request.Context(), buyer)
	if err != nil {
		abortWithUsecaseError(c, err, "Clear cart failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Merge guest cart
// @Description Move the lines of the caller's guest cart into their account cart and drop the guest cart cookie.
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CartResponse
// @Failure 401 {object} httperr.Response
// @Router /api/cart/merge [post]
func (h *CartHandler) MergeGuestCart(c *gin.Context) {
	buyer, ok := middleware.ResolveBuyer(c)
	if !ok || buyer.IsGuest() {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	guestID, _ := middleware.GetGuestID(c)
	view, err := h.cmds.MergeGuestCart(c.Request.Context(), buyer, guestID)
	if err != nil {
		abortWithUsecaseError(c, err, "Merge guest cart failed")
		return
	}
	if guestID != uuid.Nil {
		h.guest.ClearGuest(c)
	}
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}
