package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/giftpad/cardmarket/internal/adapter/filestore"
	"github.com/giftpad/cardmarket/internal/domain/model"
	"github.com/giftpad/cardmarket/internal/server/http/dto"
)

// SellRequestHandler manages sell-request endpoints.
type SellRequestHandler struct {
	facade SellRequestFacade
	files  filestore.Store
}

// NewSellRequestHandler constructs SellRequestHandler.
func NewSellRequestHandler(facade SellRequestFacade, files filestore.Store) *SellRequestHandler {
	return &SellRequestHandler{facade: facade, files: files}
}

// Submit handles POST /api/user/sell-requests. The payload is multipart:
// card fields plus proof images for physical cards.
func (h *SellRequestHandler) Submit(c *gin.Context) {
	userID := CurrentUserID(c)

	faceValue, err1 := strconv.ParseFloat(c.PostForm("faceValue"), 64)
	rate, err2 := strconv.ParseFloat(c.PostForm("rate"), 64)
	total, err3 := strconv.ParseFloat(c.PostForm("total"), 64)
	if err1 != nil || err2 != nil || err3 != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	req := &model.SellRequest{
		UserID:       userID,
		GiftCardCode: c.PostForm("giftCardCode"),
		Currency:     c.PostForm("currency"),
		FaceValue:    faceValue,
		Rate:         rate,
		Total:        total,
		Code:         c.PostForm("code"),
		CardType:     model.CardType(c.PostForm("cardType")),
	}

	form, err := c.MultipartForm()
	if err == nil && form != nil {
		for _, file := range form.File["images"] {
			src, err := file.Open()
			if err != nil {
				c.Status(http.StatusBadRequest)
				return
			}
			ref, err := h.files.Save(c.Request.Context(), file.Filename, src)
			src.Close()
			if err != nil {
				c.Status(http.StatusInternalServerError)
				return
			}
			req.Images = append(req.Images, ref)
		}
	}

	created, err := h.facade.SubmitSellRequest(c.Request.Context(), req)
	if err != nil {
		c.Status(statusForError(err))
		return
	}
	c.JSON(http.StatusCreated, toSellRequestResponse(*created))
}

// List handles GET /api/user/sell-requests.
func (h *SellRequestHandler) List(c *gin.Context) {
	userID := CurrentUserID(c)
	requests, err := h.facade.SellRequests(c.Request.Context(), userID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if len(requests) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, toSellRequestResponses(requests))
}

// ListAll handles GET /api/admin/sell-requests.
func (h *SellRequestHandler) ListAll(c *gin.Context) {
	requests, err := h.facade.AllSellRequests(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, toSellRequestResponses(requests))
}

// ListUnmarked handles GET /api/admin/sell-requests/unmarked.
func (h *SellRequestHandler) ListUnmarked(c *gin.Context) {
	requests, err := h.facade.UnmarkedSellRequests(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, toSellRequestResponses(requests))
}

// UpdateStatus handles PATCH /api/admin/sell-requests/:id/status.
func (h *SellRequestHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	var req dto.UpdateSellRequestStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	updated, err := h.facade.UpdateSellRequestStatus(c.Request.Context(), id, model.SellRequestStatus(req.Status))
	if err != nil {
		c.Status(statusForError(err))
		return
	}
	c.JSON(http.StatusOK, toSellRequestResponse(*updated))
}

// Mark handles POST /api/admin/sell-requests/:id/mark.
func (h *SellRequestHandler) Mark(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	updated, err := h.facade.MarkSellRequest(c.Request.Context(), id)
	if err != nil {
		c.Status(statusForError(err))
		return
	}
	c.JSON(http.StatusOK, toSellRequestResponse(*updated))
}

func toSellRequestResponse(req model.SellRequest) dto.SellRequestResponse {
	return dto.SellRequestResponse{
		ID:           req.ID,
		GiftCardCode: req.GiftCardCode,
		Currency:     req.Currency,
		FaceValue:    req.FaceValue,
		Rate:         req.Rate,
		Total:        req.Total,
		CardType:     string(req.CardType),
		Images:       req.Images,
		Status:       string(req.Status),
		CreatedAt:    req.CreatedAt,
	}
}

func toSellRequestResponses(requests []model.SellRequest) []dto.SellRequestResponse {
	resp := make([]dto.SellRequestResponse, 0, len(requests))
	for _, r := range requests {
		resp = append(resp, toSellRequestResponse(r))
	}
	return resp
}
