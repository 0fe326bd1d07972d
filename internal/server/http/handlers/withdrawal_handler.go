package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/giftpad/cardmarket/internal/domain/model"
	"github.com/giftpad/cardmarket/internal/server/http/dto"
)

// WithdrawalHandler manages payout endpoints.
type WithdrawalHandler struct {
	facade WithdrawalFacade
}

// NewWithdrawalHandler constructs WithdrawalHandler.
func NewWithdrawalHandler(facade WithdrawalFacade) *WithdrawalHandler {
	return &WithdrawalHandler{facade: facade}
}

// Create handles POST /api/user/withdrawals.
func (h *WithdrawalHandler) Create(c *gin.Context) {
	userID := CurrentUserID(c)
	var req dto.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	w, err := h.facade.Withdraw(c.Request.Context(), userID, req.BankAccountID, req.Amount, req.Pin)
	if err != nil {
		c.Status(statusForError(err))
		return
	}
	c.JSON(http.StatusCreated, toWithdrawalResponse(*w))
}

// List handles GET /api/user/withdrawals.
func (h *WithdrawalHandler) List(c *gin.Context) {
	userID := CurrentUserID(c)
	withdrawals, err := h.facade.Withdrawals(c.Request.Context(), userID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if len(withdrawals) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, toWithdrawalResponses(withdrawals))
}

// ListAll handles GET /api/admin/withdrawals.
func (h *WithdrawalHandler) ListAll(c *gin.Context) {
	withdrawals, err := h.facade.AllWithdrawals(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, toWithdrawalResponses(withdrawals))
}

// UpdateStatus handles PATCH /api/admin/withdrawals/:id/status.
func (h *WithdrawalHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	var req dto.UpdateWithdrawalStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	updated, err := h.facade.UpdateWithdrawalStatus(c.Request.Context(), id, model.WithdrawalStatus(req.Status), req.Comment)
	if err != nil {
		c.Status(statusForError(err))
		return
	}
	c.JSON(http.StatusOK, toWithdrawalResponse(*updated))
}

// Mark handles POST /api/admin/withdrawals/:id/mark.
func (h *WithdrawalHandler) Mark(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	updated, err := h.facade.MarkWithdrawal(c.Request.Context(), id)
	if err != nil {
		c.Status(statusForError(err))
		return
	}
	c.JSON(http.StatusOK, toWithdrawalResponse(*updated))
}

func toWithdrawalResponse(w model.Withdrawal) dto.WithdrawalResponse {
	return dto.WithdrawalResponse{
		ID:            w.ID,
		BankAccountID: w.BankAccountID,
		Amount:        w.Amount,
		Status:        string(w.Status),
		AdminComment:  w.AdminComment,
		CreatedAt:     w.CreatedAt,
		CompletedAt:   w.CompletedAt,
	}
}

func toWithdrawalResponses(withdrawals []model.Withdrawal) []dto.WithdrawalResponse {
	resp := make([]dto.WithdrawalResponse, 0, len(withdrawals))
	for _, w := range withdrawals {
		resp = append(resp, toWithdrawalResponse(w))
	}
	return resp
}
