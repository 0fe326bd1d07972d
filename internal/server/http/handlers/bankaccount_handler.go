package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/giftpad/cardmarket/internal/domain/model"
	"github.com/giftpad/cardmarket/internal/server/http/dto"
)

// BankAccountHandler manages payout account endpoints.
type BankAccountHandler struct {
	facade BankAccountFacade
}

// NewBankAccountHandler constructs BankAccountHandler.
func NewBankAccountHandler(facade BankAccountFacade) *BankAccountHandler {
	return &BankAccountHandler{facade: facade}
}

// Add handles POST /api/user/bank-accounts.
func (h *BankAccountHandler) Add(c *gin.Context) {
	userID := CurrentUserID(c)
	var req dto.BankAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	acc, err := h.facade.AddBankAccount(c.Request.Context(), userID, req.BankName, req.AccountNumber, req.AccountName)
	if err != nil {
		c.Status(statusForError(err))
		return
	}
	c.JSON(http.StatusCreated, toBankAccountResponse(*acc))
}

// List handles GET /api/user/bank-accounts.
func (h *BankAccountHandler) List(c *gin.Context) {
	userID := CurrentUserID(c)
	accounts, err := h.facade.BankAccounts(c.Request.Context(), userID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	resp := make([]dto.BankAccountResponse, 0, len(accounts))
	for _, acc := range accounts {
		resp = append(resp, toBankAccountResponse(acc))
	}
	c.JSON(http.StatusOK, resp)
}

// Delete handles DELETE /api/user/bank-accounts/:id.
func (h *BankAccountHandler) Delete(c *gin.Context) {
	userID := CurrentUserID(c)
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.DeleteBankAccount(c.Request.Context(), id, userID); err != nil {
		c.Status(statusForError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func toBankAccountResponse(acc model.BankAccount) dto.BankAccountResponse {
	return dto.BankAccountResponse{
		ID:            acc.ID,
		BankName:      acc.BankName,
		AccountNumber: acc.AccountNumber,
		AccountName:   acc.AccountName,
	}
}
