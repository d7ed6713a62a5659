package business

import (
	"context"
	"errors"
	"net/http"

	"github.com/GlebRadaev/loyalty/internal/domain"
	"github.com/GlebRadaev/loyalty/internal/dto"
	"github.com/GlebRadaev/loyalty/internal/service/businessservice"
	"github.com/GlebRadaev/loyalty/pkg/auth"
	"github.com/GlebRadaev/loyalty/pkg/utils"
)

type Service interface {
	GetOwnedBusiness(ctx context.Context, ownerID int) (*domain.Business, error)
	SetBoost(ctx context.Context, ownerID int, enabled bool) (*domain.Business, error)
	SetBirthdayBonus(ctx context.Context, ownerID int, points int) (*domain.Business, error)
	ListBusinesses(ctx context.Context) ([]domain.Business, error)
	UpdateStatus(ctx context.Context, id int, status domain.BusinessStatus, tier string) (*domain.Business, error)
	CreateWaiter(ctx context.Context, ownerID int, login, password, displayName string) (*domain.User, error)
	ListStaff(ctx context.Context, ownerID int) ([]domain.User, error)
}

type BusinessHandler struct {
	businessService Service
}

func New(businessService Service) *BusinessHandler {
	return &BusinessHandler{
		businessService: businessService,
	}
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, businessservice.ErrBusinessNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, businessservice.ErrLoginTaken):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, businessservice.ErrInvalidStatus),
		errors.Is(err, businessservice.ErrInvalidTier),
		errors.Is(err, businessservice.ErrInvalidBonus):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toBusinessDTO(b *domain.Business) dto.BusinessResponseDTO {
	return dto.BusinessResponseDTO{
		ID:               b.ID,
		OwnerID:          b.OwnerID,
		Name:             b.Name,
		Status:           string(b.Status),
		Tier:             b.Tier,
		PointsMultiplier: b.PointsMultiplier.String(),
		BirthdayBonus:    b.BirthdayBonus,
		CreatedAt:        b.CreatedAt,
	}
}

// GetBusiness godoc
//
//	@Summary	Get own business
//	@Tags		Owner
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	dto.BusinessResponseDTO
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Failure	404	{object}	utils.Response	"Business not found"
//	@Router		/api/owner/business [get]
func (h *BusinessHandler) GetBusiness(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	business, err := h.businessService.GetOwnedBusiness(r.Context(), userID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toBusinessDTO(business))
}

// SetBoost godoc
//
//	@Summary		Toggle double points
//	@Description	Enabled sets the points multiplier to 2, disabled resets it to 1.
//	@Tags			Owner
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.BoostRequestDTO	true	"Boost switch"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.BusinessResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		404	{object}	utils.Response	"Business not found"
//	@Router			/api/owner/business/boost [put]
func (h *BusinessHandler) SetBoost(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.BoostRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	business, err := h.businessService.SetBoost(r.Context(), userID, req.Enabled)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toBusinessDTO(business))
}

// SetBirthdayBonus godoc
//
//	@Summary	Set birthday bonus points
//	@Tags		Owner
//	@Accept		json
//	@Produce	json
//	@Param		request	body	dto.BirthdayBonusRequestDTO	true	"Bonus points"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.BusinessResponseDTO
//	@Failure	400	{object}	utils.Response	"Invalid request body"
//	@Router		/api/owner/business/birthday-bonus [put]
func (h *BusinessHandler) SetBirthdayBonus(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.BirthdayBonusRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	business, err := h.businessService.SetBirthdayBonus(r.Context(), userID, req.Points)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toBusinessDTO(business))
}

// CreateStaff godoc
//
//	@Summary	Create a waiter account
//	@Tags		Owner
//	@Accept		json
//	@Produce	json
//	@Param		request	body	dto.CreateStaffRequestDTO	true	"Waiter credentials"
//	@Security	BearerAuth
//	@Success	201	{object}	dto.StaffResponseDTO
//	@Failure	400	{object}	utils.Response	"Invalid request body"
//	@Failure	409	{object}	utils.Response	"Login taken"
//	@Router		/api/owner/staff [post]
func (h *BusinessHandler) CreateStaff(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateStaffRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	waiter, err := h.businessService.CreateWaiter(r.Context(), userID, req.Login, req.Password, req.DisplayName)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.StaffResponseDTO{
		ID:          waiter.ID,
		Login:       waiter.Login,
		DisplayName: waiter.DisplayName,
		CreatedAt:   waiter.CreatedAt,
	})
}

// ListStaff godoc
//
//	@Summary	List waiters of own business
//	@Tags		Owner
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}	dto.StaffResponseDTO
//	@Router		/api/owner/staff [get]
func (h *BusinessHandler) ListStaff(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	staff, err := h.businessService.ListStaff(r.Context(), userID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	response := make([]dto.StaffResponseDTO, 0, len(staff))
	for _, u := range staff {
		response = append(response, dto.StaffResponseDTO{
			ID:          u.ID,
			Login:       u.Login,
			DisplayName: u.DisplayName,
			CreatedAt:   u.CreatedAt,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// ListBusinesses godoc
//
//	@Summary	List all businesses
//	@Tags		Admin
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}		dto.BusinessResponseDTO
//	@Failure	403	{object}	utils.Response	"Forbidden"
//	@Router		/api/admin/businesses [get]
func (h *BusinessHandler) ListBusinesses(w http.ResponseWriter, r *http.Request) {
	businesses, err := h.businessService.ListBusinesses(r.Context())
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	response := make([]dto.BusinessResponseDTO, 0, len(businesses))
	for i := range businesses {
		response = append(response, toBusinessDTO(&businesses[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// UpdateBusiness godoc
//
//	@Summary		Change business status and tier
//	@Description	An omitted tier keeps the current one.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int								true	"Business id"
//	@Param			request	body	dto.UpdateBusinessRequestDTO	true	"New status"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.BusinessResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		404	{object}	utils.Response	"Business not found"
//	@Router			/api/admin/businesses/{id} [patch]
func (h *BusinessHandler) UpdateBusiness(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IntParam(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req dto.UpdateBusinessRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	business, err := h.businessService.UpdateStatus(r.Context(), id, domain.BusinessStatus(req.Status), req.Tier)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toBusinessDTO(business))
}
