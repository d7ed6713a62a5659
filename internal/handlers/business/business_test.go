package business

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/GlebRadaev/loyalty/internal/domain"
	"github.com/GlebRadaev/loyalty/internal/dto"
	"github.com/GlebRadaev/loyalty/internal/service/businessservice"
	"github.com/GlebRadaev/loyalty/pkg/auth"
	"github.com/GlebRadaev/loyalty/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*BusinessHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func newRequest(method, url, body string, userID int, role domain.Role) *http.Request {
	req := httptest.NewRequest(method, url, strings.NewReader(body))
	return req.WithContext(auth.WithIdentity(req.Context(), userID, role))
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func cafe(multiplier int64) *domain.Business {
	return &domain.Business{
		ID:               1,
		OwnerID:          2,
		Name:             "Cafe",
		Status:           domain.BusinessActive,
		Tier:             domain.TierFree,
		PointsMultiplier: decimal.NewFromInt(multiplier),
	}
}

func TestGetBusiness(t *testing.T) {
	t.Run("Own business returned", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().GetOwnedBusiness(gomock.Any(), 2).Return(cafe(1), nil)

		rr := httptest.NewRecorder()
		handler.GetBusiness(rr, newRequest("GET", "/api/owner/business", "", 2, domain.RoleOwner))

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp dto.BusinessResponseDTO
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "Cafe", resp.Name)
		assert.Equal(t, "1", resp.PointsMultiplier)
	})

	t.Run("No business", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().GetOwnedBusiness(gomock.Any(), 2).Return(nil, businessservice.ErrBusinessNotFound)

		rr := httptest.NewRecorder()
		handler.GetBusiness(rr, newRequest("GET", "/api/owner/business", "", 2, domain.RoleOwner))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestSetBoost(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		prepareMock  func(service *MockService)
		expectedCode int
		multiplier   string
	}{
		{
			name: "Boost enabled",
			body: `{"enabled":true}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().SetBoost(gomock.Any(), 2, true).Return(cafe(2), nil)
			},
			expectedCode: http.StatusOK,
			multiplier:   "2",
		},
		{
			name: "Boost disabled",
			body: `{"enabled":false}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().SetBoost(gomock.Any(), 2, false).Return(cafe(1), nil)
			},
			expectedCode: http.StatusOK,
			multiplier:   "1",
		},
		{
			name:         "Invalid body",
			body:         `{`,
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Storage failure",
			body: `{"enabled":true}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().SetBoost(gomock.Any(), 2, true).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			rr := httptest.NewRecorder()
			handler.SetBoost(rr, newRequest("PUT", "/api/owner/business/boost", tt.body, 2, domain.RoleOwner))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.multiplier != "" {
				var resp dto.BusinessResponseDTO
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.multiplier, resp.PointsMultiplier)
			}
		})
	}
}

func TestSetBirthdayBonus(t *testing.T) {
	t.Run("Negative points rejected", func(t *testing.T) {
		handler, _ := NewMock(t)

		rr := httptest.NewRecorder()
		handler.SetBirthdayBonus(rr, newRequest("PUT", "/api/owner/business/birthday-bonus", `{"points":-5}`, 2, domain.RoleOwner))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		var resp utils.Response
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "points: gte=0", resp.Error)
	})

	t.Run("Bonus stored", func(t *testing.T) {
		handler, service := NewMock(t)
		b := cafe(1)
		b.BirthdayBonus = 50
		service.EXPECT().SetBirthdayBonus(gomock.Any(), 2, 50).Return(b, nil)

		rr := httptest.NewRecorder()
		handler.SetBirthdayBonus(rr, newRequest("PUT", "/api/owner/business/birthday-bonus", `{"points":50}`, 2, domain.RoleOwner))

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestCreateStaff(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		prepareMock   func(service *MockService)
		expectedCode  int
		expectedError string
	}{
		{
			name: "Waiter created",
			body: `{"login":"waiter1","password":"password123","display_name":"Bob"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().CreateWaiter(gomock.Any(), 2, "waiter1", "password123", "Bob").
					Return(&domain.User{ID: 5, Login: "waiter1", DisplayName: "Bob", Role: domain.RoleWaiter}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Login taken",
			body: `{"login":"waiter1","password":"password123"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().CreateWaiter(gomock.Any(), 2, "waiter1", "password123", "").
					Return(nil, businessservice.ErrLoginTaken)
			},
			expectedCode:  http.StatusConflict,
			expectedError: businessservice.ErrLoginTaken.Error(),
		},
		{
			name:          "Short password",
			body:          `{"login":"waiter1","password":"short"}`,
			prepareMock:   func(service *MockService) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "password: min=8",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			rr := httptest.NewRecorder()
			handler.CreateStaff(rr, newRequest("POST", "/api/owner/staff", tt.body, 2, domain.RoleOwner))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Error)
			}
		})
	}
}

func TestListStaff(t *testing.T) {
	handler, service := NewMock(t)
	service.EXPECT().ListStaff(gomock.Any(), 2).Return([]domain.User{
		{ID: 5, Login: "waiter1", DisplayName: "Bob"},
		{ID: 6, Login: "waiter2", DisplayName: "Eve"},
	}, nil)

	rr := httptest.NewRecorder()
	handler.ListStaff(rr, newRequest("GET", "/api/owner/staff", "", 2, domain.RoleOwner))

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp []dto.StaffResponseDTO
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Len(t, resp, 2)
	assert.Equal(t, "waiter2", resp[1].Login)
}

func TestListBusinesses(t *testing.T) {
	t.Run("Empty list is an array", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().ListBusinesses(gomock.Any()).Return(nil, nil)

		rr := httptest.NewRecorder()
		handler.ListBusinesses(rr, newRequest("GET", "/api/admin/businesses", "", 1, domain.RoleAdmin))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, "[]", rr.Body.String())
	})
}

func TestUpdateBusiness(t *testing.T) {
	tests := []struct {
		name         string
		id           string
		body         string
		prepareMock  func(service *MockService)
		expectedCode int
	}{
		{
			name: "Activated with tier",
			id:   "1",
			body: `{"status":"ACTIVE","tier":"PRO"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().UpdateStatus(gomock.Any(), 1, domain.BusinessActive, "PRO").Return(cafe(1), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Tier omitted",
			id:   "1",
			body: `{"status":"BLOCKED"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().UpdateStatus(gomock.Any(), 1, domain.BusinessBlocked, "").Return(cafe(1), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Unknown status",
			id:           "1",
			body:         `{"status":"DELETED"}`,
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Bad id",
			id:           "abc",
			body:         `{"status":"ACTIVE"}`,
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Unknown business",
			id:   "9",
			body: `{"status":"ACTIVE"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().UpdateStatus(gomock.Any(), 9, domain.BusinessActive, "").Return(nil, businessservice.ErrBusinessNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			req := withURLParam(newRequest("PATCH", "/api/admin/businesses/"+tt.id, tt.body, 1, domain.RoleAdmin), "id", tt.id)
			rr := httptest.NewRecorder()
			handler.UpdateBusiness(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
