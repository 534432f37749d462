package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

type stubVendors struct {
	id int
}

func (s *stubVendors) VendorIDForUser(ctx context.Context, userID string) (int, error) {
	return s.id, nil
}

func newTestRouter(repo Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewHandler(NewService(repo), &stubVendors{id: 1})

	router := gin.New()
	router.Use(func(c *gin.Context) { c.Set("userID", "user-1") })
	router.POST("/items", handler.CreateItem)
	return router
}

func postItem(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/items", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// A storage failure must come back as a generic 500, never as a client
// error carrying the database's message.
func TestCreateItem_StorageFailureStaysGeneric(t *testing.T) {
	repo := NewMockRepository()
	repo.createErr = errors.New("connect: connection refused")
	router := newTestRouter(repo)

	w := postItem(router, `{"name":"Dal","category":"dal","price":40}`)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "connection refused") {
		t.Errorf("internal error detail leaked: %s", w.Body.String())
	}

	var resp struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Success || resp.Error != "internal server error" {
		t.Errorf("expected generic failure envelope, got %+v", resp)
	}
}

func TestCreateItem_ValidationIsClientError(t *testing.T) {
	router := newTestRouter(NewMockRepository())

	w := postItem(router, `{"name":"Dal","category":"starter","price":40}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "invalid category") {
		t.Errorf("expected validation reason in body, got %s", w.Body.String())
	}
}

func TestCreateItem_DuplicateIsConflict(t *testing.T) {
	repo := NewMockRepository()
	router := newTestRouter(repo)

	if w := postItem(router, `{"name":"Dal","category":"dal","price":40}`); w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", w.Code)
	}
	if w := postItem(router, `{"name":"Dal","category":"dal","price":40}`); w.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", w.Code)
	}
}
