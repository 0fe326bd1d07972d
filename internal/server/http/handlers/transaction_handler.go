package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/giftpad/cardmarket/internal/server/http/dto"
)

// TransactionHandler exposes the ledger history.
type TransactionHandler struct {
	facade TransactionFacade
}

// NewTransactionHandler constructs TransactionHandler.
func NewTransactionHandler(facade TransactionFacade) *TransactionHandler {
	return &TransactionHandler{facade: facade}
}

// List handles GET /api/user/transactions.
func (h *TransactionHandler) List(c *gin.Context) {
	userID := CurrentUserID(c)
	transactions, err := h.facade.Transactions(c.Request.Context(), userID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if len(transactions) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	resp := make([]dto.TransactionResponse, 0, len(transactions))
	for _, tr := range transactions {
		resp = append(resp, dto.TransactionResponse{
			ID:        tr.ID,
			Type:      string(tr.Type),
			Amount:    tr.Amount,
			Details:   tr.Details,
			CreatedAt: tr.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, resp)
}
