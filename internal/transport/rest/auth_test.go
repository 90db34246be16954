package rest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestAuthToken_Success(t *testing.T) {
	t.Parallel()

	issuer := &tokenIssuerMock{
		GenerateTokenFunc: func(warehouseID, role string) (string, error) {
			if warehouseID != "my-shelf" {
				t.Errorf("expected warehouse 'my-shelf', got %q", warehouseID)
			}
			if role != "user" {
				t.Errorf("expected role 'user', got %q", role)
			}
			return "signed-token", nil
		},
	}
	h := NewAuthHandler(issuer, testLogger())

	body := `{"warehouseId":"  my-shelf  "}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/token", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Token(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp tokenResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Token != "signed-token" {
		t.Errorf("expected token 'signed-token', got %q", resp.Token)
	}
	if resp.WarehouseID != "my-shelf" || resp.Role != "user" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestAuthToken_MissingWarehouseID(t *testing.T) {
	t.Parallel()

	h := NewAuthHandler(&tokenIssuerMock{}, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/token", strings.NewReader(`{"warehouseId":"   "}`))
	rec := httptest.NewRecorder()
	h.Token(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestAuthToken_TooLong(t *testing.T) {
	t.Parallel()

	h := NewAuthHandler(&tokenIssuerMock{}, testLogger())

	long := strings.Repeat("x", 65)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/token",
		strings.NewReader(`{"warehouseId":"`+long+`"}`))
	rec := httptest.NewRecorder()
	h.Token(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestAuthToken_InvalidBody(t *testing.T) {
	t.Parallel()

	h := NewAuthHandler(&tokenIssuerMock{}, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/token", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	h.Token(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}
