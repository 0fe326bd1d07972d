package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/giftpad/cardmarket/internal/server/http/dto"
)

// ProfileHandler exposes the authenticated user's account.
type ProfileHandler struct {
	facade ProfileFacade
}

// NewProfileHandler constructs ProfileHandler.
func NewProfileHandler(facade ProfileFacade) *ProfileHandler {
	return &ProfileHandler{facade: facade}
}

// Me handles GET /api/user/me.
func (h *ProfileHandler) Me(c *gin.Context) {
	userID := CurrentUserID(c)
	user, err := h.facade.Profile(c.Request.Context(), userID)
	if err != nil {
		c.Status(statusForError(err))
		return
	}
	c.JSON(http.StatusOK, dto.ProfileResponse{
		ID:            user.ID,
		Username:      user.Username,
		Email:         user.Email,
		Balance:       user.Balance,
		TotalSold:     user.TotalSold,
		Level:         user.Level,
		LevelBonus:    user.LevelBonus,
		ReferralBonus: user.ReferralBonus,
		LastLogin:     user.LastLogin,
	})
}

// ChangeEmail handles PUT /api/user/email.
func (h *ProfileHandler) ChangeEmail(c *gin.Context) {
	userID := CurrentUserID(c)
	var req dto.ChangeEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.ChangeEmail(c.Request.Context(), userID, req.Pin, req.Email); err != nil {
		c.Status(statusForError(err))
		return
	}
	c.Status(http.StatusOK)
}
