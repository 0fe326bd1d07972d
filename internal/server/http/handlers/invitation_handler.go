package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/giftpad/cardmarket/internal/server/http/dto"
)

// InvitationHandler manages referral code endpoints.
type InvitationHandler struct {
	facade InvitationFacade
}

// NewInvitationHandler constructs InvitationHandler.
func NewInvitationHandler(facade InvitationFacade) *InvitationHandler {
	return &InvitationHandler{facade: facade}
}

// Code handles GET /api/user/invitation. The code is generated on first
// request and stable afterwards.
func (h *InvitationHandler) Code(c *gin.Context) {
	userID := CurrentUserID(c)
	inv, err := h.facade.InvitationCode(c.Request.Context(), userID)
	if err != nil {
		c.Status(statusForError(err))
		return
	}
	c.JSON(http.StatusOK, dto.InvitationResponse{Code: inv.Code})
}

// CodeForUser handles POST /api/admin/invitations. Admins resolve a user's
// referral code by email, generating one if the user has none yet.
func (h *InvitationHandler) CodeForUser(c *gin.Context) {
	var req dto.AdminInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	inv, err := h.facade.InvitationCodeForEmail(c.Request.Context(), req.Email)
	if err != nil {
		c.Status(statusForError(err))
		return
	}
	c.JSON(http.StatusOK, dto.InvitationResponse{Code: inv.Code})
}

// Validate handles GET /api/invitations/:code/validate.
func (h *InvitationHandler) Validate(c *gin.Context) {
	valid, err := h.facade.ValidateInvitationCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.InvitationValidationResponse{Valid: valid})
}
