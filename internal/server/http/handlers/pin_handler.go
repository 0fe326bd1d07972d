package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/giftpad/cardmarket/internal/server/http/dto"
)

// PinHandler manages the transaction PIN endpoints.
type PinHandler struct {
	facade PinFacade
}

// NewPinHandler constructs PinHandler.
func NewPinHandler(facade PinFacade) *PinHandler {
	return &PinHandler{facade: facade}
}

// Status handles GET /api/user/pin.
func (h *PinHandler) Status(c *gin.Context) {
	userID := CurrentUserID(c)
	set, err := h.facade.PinStatus(c.Request.Context(), userID)
	if err != nil {
		c.Status(statusForError(err))
		return
	}
	c.JSON(http.StatusOK, dto.PinStatusResponse{Set: set})
}

// Set handles POST /api/user/pin.
func (h *PinHandler) Set(c *gin.Context) {
	userID := CurrentUserID(c)
	var req dto.SetPinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.SetPin(c.Request.Context(), userID, req.Pin); err != nil {
		c.Status(statusForError(err))
		return
	}
	c.Status(http.StatusOK)
}

// Change handles PUT /api/user/pin.
func (h *PinHandler) Change(c *gin.Context) {
	userID := CurrentUserID(c)
	var req dto.ChangePinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.ChangePin(c.Request.Context(), userID, req.CurrentPin, req.NewPin); err != nil {
		c.Status(statusForError(err))
		return
	}
	c.Status(http.StatusOK)
}

// Verify handles POST /api/user/pin/verify.
func (h *PinHandler) Verify(c *gin.Context) {
	userID := CurrentUserID(c)
	var req dto.VerifyPinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.VerifyPin(c.Request.Context(), userID, req.Pin); err != nil {
		c.Status(statusForError(err))
		return
	}
	c.Status(http.StatusOK)
}
