package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/giftpad/cardmarket/internal/server/http/dto"
)

// AdminHandler manages settings and balance corrections.
type AdminHandler struct {
	facade AdminFacade
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(facade AdminFacade) *AdminHandler {
	return &AdminHandler{facade: facade}
}

// AdjustBalance handles POST /api/admin/users/:id/adjust.
func (h *AdminHandler) AdjustBalance(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	var req dto.AdjustBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.AdjustBalance(c.Request.Context(), userID, req.Amount, req.Details); err != nil {
		c.Status(statusForError(err))
		return
	}
	c.Status(http.StatusOK)
}

// ReferralBonus handles GET /api/admin/settings/referral-bonus.
func (h *AdminHandler) ReferralBonus(c *gin.Context) {
	amount, err := h.facade.ReferralBonus(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.ReferralBonusSettings{Amount: amount})
}

// SetReferralBonus handles PUT /api/admin/settings/referral-bonus.
func (h *AdminHandler) SetReferralBonus(c *gin.Context) {
	var req dto.ReferralBonusSettings
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.SetReferralBonus(c.Request.Context(), req.Amount); err != nil {
		c.Status(statusForError(err))
		return
	}
	c.Status(http.StatusOK)
}

// TierTable handles GET /api/admin/settings/tiers.
func (h *AdminHandler) TierTable(c *gin.Context) {
	tiers, err := h.facade.TierTable(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.TierSettings{Tiers: tiers})
}

// SetTierTable handles PUT /api/admin/settings/tiers.
func (h *AdminHandler) SetTierTable(c *gin.Context) {
	var req dto.TierSettings
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.SetTierTable(c.Request.Context(), req.Tiers); err != nil {
		c.Status(statusForError(err))
		return
	}
	c.Status(http.StatusOK)
}
