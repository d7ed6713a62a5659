package auth

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/GlebRadaev/loyalty/internal/domain"
	"github.com/GlebRadaev/loyalty/internal/service/authservice"
	"github.com/GlebRadaev/loyalty/pkg/utils"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func TestRegisterHandler(t *testing.T) {
	birth := time.Date(1995, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		body          string
		prepareMock   func(service *MockService)
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful client registration",
			body: `{"login":"newuser","password":"password123","role":"CLIENT","birth_date":"1995-03-01"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Register(gomock.Any(), domain.Registration{
					Login:     "newuser",
					Password:  "password123",
					Role:      domain.RoleClient,
					BirthDate: &birth,
				}).Return(&domain.User{ID: 1, Login: "newuser", Role: domain.RoleClient}, nil)
				service.EXPECT().GenerateToken(1, domain.RoleClient).Return("some-jwt-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Successful owner registration",
			body: `{"login":"owner","password":"password123","role":"OWNER","business_name":"Cafe"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Register(gomock.Any(), gomock.Any()).
					Return(&domain.User{ID: 2, Login: "owner", Role: domain.RoleOwner}, nil)
				service.EXPECT().GenerateToken(2, domain.RoleOwner).Return("some-jwt-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Owner without business name",
			body:          `{"login":"owner","password":"password123","role":"OWNER"}`,
			prepareMock:   func(service *MockService) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "businessname: required_if=Role OWNER",
		},
		{
			name:          "Waiter role rejected",
			body:          `{"login":"waiter","password":"password123","role":"WAITER"}`,
			prepareMock:   func(service *MockService) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "role: oneof=CLIENT OWNER",
		},
		{
			name:          "Password longer than bcrypt reads",
			body:          `{"login":"newuser","password":"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa","role":"CLIENT"}`,
			prepareMock:   func(service *MockService) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "password: max=72",
		},
		{
			name: "User already exists",
			body: `{"login":"existinguser","password":"password123","role":"CLIENT"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, authservice.ErrLoginTaken)
			},
			expectedCode:  http.StatusConflict,
			expectedError: authservice.ErrLoginTaken.Error(),
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func(service *MockService) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Unexpected failure hidden",
			body: `{"login":"newuser","password":"password123","role":"CLIENT"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
		{
			name: "Error generating token",
			body: `{"login":"newuser","password":"password123","role":"CLIENT"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Register(gomock.Any(), gomock.Any()).
					Return(&domain.User{ID: 1, Login: "newuser", Role: domain.RoleClient}, nil)
				service.EXPECT().GenerateToken(1, domain.RoleClient).Return("", errors.New("token generation error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error generating token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			req := httptest.NewRequest("POST", "/api/user/register", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Register(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Error)
			} else {
				assert.Equal(t, "Bearer some-jwt-token", rr.Header().Get("Authorization"))
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		prepareMock   func(service *MockService)
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful login",
			body: `{"login":"testuser","password":"password123"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().
					Authenticate(gomock.Any(), "testuser", "password123").
					Return(&domain.User{ID: 1, Login: "testuser", Role: domain.RoleWaiter}, nil)
				service.EXPECT().
					GenerateToken(1, domain.RoleWaiter).
					Return("some-jwt-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid credentials",
			body: `{"login":"testuser","password":"wrongpassword"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().
					Authenticate(gomock.Any(), "testuser", "wrongpassword").
					Return(nil, authservice.ErrInvalidCredentials)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid credentials",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func(service *MockService) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Error generating token",
			body: `{"login":"testuser","password":"password123"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().
					Authenticate(gomock.Any(), "testuser", "password123").
					Return(&domain.User{ID: 1, Login: "testuser", Role: domain.RoleClient}, nil)
				service.EXPECT().
					GenerateToken(1, domain.RoleClient).
					Return("", errors.New("token generation error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error generating token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			req := httptest.NewRequest("POST", "/api/user/login", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Login(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Error)
			}
		})
	}
}
