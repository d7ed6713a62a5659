package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/GlebRadaev/loyalty/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestMiddleware(t *testing.T) {
	jwtService := NewJWTService(testSecret)
	valid, _ := jwtService.GenerateJWT(7, domain.RoleWaiter, time.Now().Add(time.Hour))

	var gotUserID int
	var gotRole domain.Role
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = r.Context().Value(UserIDKey).(int)
		gotRole, _ = r.Context().Value(RoleKey).(domain.Role)
		w.WriteHeader(http.StatusOK)
	})
	handler := Middleware(jwtService)(next)

	tests := []struct {
		name         string
		header       string
		expectedCode int
	}{
		{name: "Missing header", header: "", expectedCode: http.StatusUnauthorized},
		{name: "Wrong scheme", header: "Basic abc", expectedCode: http.StatusUnauthorized},
		{name: "Garbage token", header: "Bearer abc", expectedCode: http.StatusUnauthorized},
		{name: "Valid token", header: "Bearer " + valid, expectedCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}

	assert.Equal(t, 7, gotUserID)
	assert.Equal(t, domain.RoleWaiter, gotRole)
}

func TestRequireRole(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := RequireRole(domain.RoleWaiter, domain.RoleOwner)(next)

	tests := []struct {
		name         string
		role         domain.Role
		expectedCode int
	}{
		{name: "Waiter allowed", role: domain.RoleWaiter, expectedCode: http.StatusOK},
		{name: "Owner allowed", role: domain.RoleOwner, expectedCode: http.StatusOK},
		{name: "Client forbidden", role: domain.RoleClient, expectedCode: http.StatusForbidden},
		{name: "No identity", role: "", expectedCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.role != "" {
				r = r.WithContext(WithIdentity(r.Context(), 1, tt.role))
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
