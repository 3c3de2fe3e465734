package users

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter(svc *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api")
	NewHandler(svc).RegisterPublicRoutes(api)
	return router
}

func TestRegisterEndpointIssuesToken(t *testing.T) {
	router := newTestRouter(NewService(NewMemoryRepo(), staticTokens{}))

	req := httptest.NewRequest(http.MethodPost, "/api/register",
		strings.NewReader(`{"email":"u@x.com","password":"pw123"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var body tokenResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if body.Token == "" {
		t.Fatal("expected a token in the response")
	}
}

func TestRegisterEndpointRejectsDuplicate(t *testing.T) {
	router := newTestRouter(NewService(NewMemoryRepo(), staticTokens{}))

	for i, want := range []int{http.StatusCreated, http.StatusBadRequest} {
		req := httptest.NewRequest(http.MethodPost, "/api/register",
			strings.NewReader(`{"email":"u@x.com","password":"pw123"}`))
		req.Header.Set("Content-Type", "application/json")
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != want {
			t.Fatalf("attempt %d: expected %d, got %d", i+1, want, resp.Code)
		}
	}
}

func TestLoginEndpoint(t *testing.T) {
	svc := NewService(NewMemoryRepo(), staticTokens{})
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/register",
		strings.NewReader(`{"email":"u@x.com","password":"pw123"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d", resp.Code)
	}

	cases := []struct {
		name string
		body string
		want int
	}{
		{"correct password", `{"email":"u@x.com","password":"pw123"}`, http.StatusOK},
		{"wrong password", `{"email":"u@x.com","password":"nope"}`, http.StatusUnauthorized},
		{"unknown email", `{"email":"ghost@x.com","password":"pw123"}`, http.StatusUnauthorized},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(tc.body))
		req.Header.Set("Content-Type", "application/json")
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.want, resp.Code)
		}
	}
}
