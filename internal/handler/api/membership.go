package api

import (
	"net/http"

	reqdto "storefront-pricing/internal/handler/dto/request"
	resdto "storefront-pricing/internal/handler/dto/response"
	"storefront-pricing/internal/handler/httperr"
	"storefront-pricing/internal/handler/middleware"
	"storefront-pricing/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type MembershipHandler struct {
	q     queries.MembershipQueries
	cartQ queries.CartQueries
}

func NewMembershipHandler(q queries.MembershipQueries, cartQ queries.CartQueries) *MembershipHandler {
	return &MembershipHandler{q: q, cartQ: cartQ}
}

// @Summary Membership status
// @Description Resolve the caller's membership from the store. session_stale is true when the token's claim is out of date.
// @Tags membership
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.MembershipResponse
// @Failure 401 {object} httperr.Response
// @Router /api/membership/status [get]
func (h *MembershipHandler) GetStatus(c *gin.Context) {
	buyer, ok := middleware.ResolveBuyer(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	view, err := h.q.GetStatus(c.Request.Context(), buyer)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to load membership status")
		return
	}
	c.JSON(http.StatusOK, resdto.FromMembershipView(view))
}

// @Summary Preview membership eligibility
// @Description Price a hypothetical list of items for the caller without changing the stored cart.
// @Tags membership
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PreviewEligibilityRequest true "Preview request"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} httperr.Response
// @Router /api/membership/eligibility [post]
func (h *MembershipHandler) PreviewEligibility(c *gin.Context) {
	buyer, ok := middleware.ResolveBuyer(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.PreviewEligibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cartQ.PreviewEligibility(c.Request.Context(), buyer, req.ToLineRecords())
	if err != nil {
		abortWithUsecaseError(c, err, "Eligibility preview failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}
