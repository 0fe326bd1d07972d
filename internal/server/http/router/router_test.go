package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/giftpad/cardmarket/internal/adapter/filestore"
	"github.com/giftpad/cardmarket/internal/domain/model"
	"github.com/giftpad/cardmarket/internal/server/http/handlers"
	testhelpers "github.com/giftpad/cardmarket/internal/test"
)

func newTestEngine(t *testing.T, facade handlers.MarketFacade) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store, err := filestore.NewDiskStore(t.TempDir())
	if err != nil {
		t.Fatalf("create disk store: %v", err)
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return Setup(facade, store, logger)
}

func TestSetupRoutes(t *testing.T) {
	facade := testhelpers.MarketFacadeStub{
		SellRequestFacadeStub: testhelpers.SellRequestFacadeStub{
			ListFn: func(context.Context, int64) ([]model.SellRequest, error) {
				return []model.SellRequest{{ID: 1, Status: model.SellStatusPending}}, nil
			},
		},
	}
	engine := newTestEngine(t, facade)

	body, _ := json.Marshal(map[string]string{"username": "user", "email": "user@example.com", "password": "pass"})
	req := httptest.NewRequest(http.MethodPost, "/api/user/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for register, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/user/sell-requests", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for sell requests, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/invitations/pad00000001/validate", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for code validation, got %d", resp.Code)
	}
}

func TestSetupRejectsAnonymous(t *testing.T) {
	engine := newTestEngine(t, testhelpers.MarketFacadeStub{})

	req := httptest.NewRequest(http.MethodGet, "/api/user/me", nil)
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 without token, got %d", resp.Code)
	}
}

func TestSetupGuardsAdminRoutes(t *testing.T) {
	engine := newTestEngine(t, testhelpers.MarketFacadeStub{})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/withdrawals", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected status 403 for non-admin, got %d", resp.Code)
	}

	admin := testhelpers.MarketFacadeStub{
		ProfileFacadeStub: testhelpers.ProfileFacadeStub{
			ProfileFn: func(ctx context.Context, userID int64) (*model.User, error) {
				return &model.User{ID: userID, IsAdmin: true}, nil
			},
		},
	}
	engine = newTestEngine(t, admin)
	req = httptest.NewRequest(http.MethodGet, "/api/admin/withdrawals", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for admin, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/admin/sell-requests/unmarked", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for unmarked list, got %d", resp.Code)
	}

	body, _ := json.Marshal(map[string]string{"email": "user@example.com"})
	req = httptest.NewRequest(http.MethodPost, "/api/admin/invitations", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer token")
	req.Header.Set("Content-Type", "application/json")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for invitation lookup, got %d", resp.Code)
	}
}

var _ handlers.MarketFacade = (*testhelpers.MarketFacadeStub)(nil)
