package catalog

import (
	"context"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/loyalty/internal/domain"
	"github.com/GlebRadaev/loyalty/internal/dto"
	"github.com/GlebRadaev/loyalty/internal/service/catalogservice"
	"github.com/GlebRadaev/loyalty/pkg/auth"
	"github.com/GlebRadaev/loyalty/pkg/utils"
)

type Service interface {
	CreateProgram(ctx context.Context, ownerID int, program *domain.LoyaltyProgram) (*domain.LoyaltyProgram, error)
	ListPrograms(ctx context.Context, ownerID int) ([]domain.LoyaltyProgram, error)
	UpdateProgram(ctx context.Context, ownerID int, program *domain.LoyaltyProgram) (*domain.LoyaltyProgram, error)
	DeleteProgram(ctx context.Context, ownerID, programID int) error
	CreateProduct(ctx context.Context, ownerID int, product *domain.Product) (*domain.Product, error)
	ListProducts(ctx context.Context, ownerID int) ([]domain.Product, error)
	DeleteProduct(ctx context.Context, ownerID, productID int) error
	ListProductsForStaff(ctx context.Context, userID int, role domain.Role) ([]domain.Product, error)
}

type CatalogHandler struct {
	catalogService Service
}

func New(catalogService Service) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalogservice.ErrBusinessNotFound),
		errors.Is(err, catalogservice.ErrProgramNotFound),
		errors.Is(err, catalogservice.ErrProductNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, catalogservice.ErrInvalidThreshold),
		errors.Is(err, catalogservice.ErrInvalidPrice),
		errors.Is(err, catalogservice.ErrNoEmployer):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func programFromRequest(req dto.ProgramRequestDTO) *domain.LoyaltyProgram {
	program := &domain.LoyaltyProgram{
		Name:              req.Name,
		RewardDescription: req.RewardDescription,
		PointsThreshold:   req.PointsThreshold,
		PointsPerCurrency: decimal.NewFromInt(1),
		Active:            true,
	}
	if req.PointsPerCurrency != nil {
		program.PointsPerCurrency = *req.PointsPerCurrency
	}
	if req.Active != nil {
		program.Active = *req.Active
	}
	return program
}

func toProgramDTO(p *domain.LoyaltyProgram) dto.ProgramResponseDTO {
	return dto.ProgramResponseDTO{
		ID:                p.ID,
		Name:              p.Name,
		RewardDescription: p.RewardDescription,
		PointsThreshold:   p.PointsThreshold,
		PointsPerCurrency: p.PointsPerCurrency.String(),
		Active:            p.Active,
		CreatedAt:         p.CreatedAt,
	}
}

func toProductDTOs(products []domain.Product) []dto.ProductResponseDTO {
	response := make([]dto.ProductResponseDTO, 0, len(products))
	for _, p := range products {
		response = append(response, dto.ProductResponseDTO{
			ID:            p.ID,
			Name:          p.Name,
			Price:         p.Price.String(),
			PointsPerUnit: p.PointsPerUnit,
			CreatedAt:     p.CreatedAt,
		})
	}
	return response
}

// CreateProgram godoc
//
//	@Summary	Create a loyalty program
//	@Tags		Catalog
//	@Accept		json
//	@Produce	json
//	@Param		request	body	dto.ProgramRequestDTO	true	"Program"
//	@Security	BearerAuth
//	@Success	201	{object}	dto.ProgramResponseDTO
//	@Failure	400	{object}	utils.Response	"Invalid request body"
//	@Failure	404	{object}	utils.Response	"Business not found"
//	@Router		/api/owner/programs [post]
func (h *CatalogHandler) CreateProgram(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.ProgramRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	program, err := h.catalogService.CreateProgram(r.Context(), userID, programFromRequest(req))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toProgramDTO(program))
}

// ListPrograms godoc
//
//	@Summary	List own loyalty programs
//	@Tags		Catalog
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}	dto.ProgramResponseDTO
//	@Router		/api/owner/programs [get]
func (h *CatalogHandler) ListPrograms(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	programs, err := h.catalogService.ListPrograms(r.Context(), userID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	response := make([]dto.ProgramResponseDTO, 0, len(programs))
	for i := range programs {
		response = append(response, toProgramDTO(&programs[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// UpdateProgram godoc
//
//	@Summary	Update a loyalty program
//	@Tags		Catalog
//	@Accept		json
//	@Produce	json
//	@Param		id		path	int						true	"Program id"
//	@Param		request	body	dto.ProgramRequestDTO	true	"Program"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.ProgramResponseDTO
//	@Failure	404	{object}	utils.Response	"Program not found"
//	@Router		/api/owner/programs/{id} [put]
func (h *CatalogHandler) UpdateProgram(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	id, err := utils.IntParam(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req dto.ProgramRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	program := programFromRequest(req)
	program.ID = id
	updated, err := h.catalogService.UpdateProgram(r.Context(), userID, program)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toProgramDTO(updated))
}

// DeleteProgram godoc
//
//	@Summary		Delete a loyalty program
//	@Description	Balances and tickets collected for the program are removed with it.
//	@Tags			Catalog
//	@Param			id	path	int	true	"Program id"
//	@Security		BearerAuth
//	@Success		204
//	@Failure		404	{object}	utils.Response	"Program not found"
//	@Router			/api/owner/programs/{id} [delete]
func (h *CatalogHandler) DeleteProgram(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	id, err := utils.IntParam(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.catalogService.DeleteProgram(r.Context(), userID, id); err != nil {
		respondWithServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CreateProduct godoc
//
//	@Summary	Add a product to the menu
//	@Tags		Catalog
//	@Accept		json
//	@Produce	json
//	@Param		request	body	dto.ProductRequestDTO	true	"Product"
//	@Security	BearerAuth
//	@Success	201	{object}	dto.ProductResponseDTO
//	@Failure	400	{object}	utils.Response	"Invalid request body"
//	@Router		/api/owner/products [post]
func (h *CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.ProductRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	product, err := h.catalogService.CreateProduct(r.Context(), userID, &domain.Product{
		Name:          req.Name,
		Price:         req.Price,
		PointsPerUnit: req.PointsPerUnit,
	})
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toProductDTOs([]domain.Product{*product})[0])
}

// ListProducts godoc
//
//	@Summary	List own products
//	@Tags		Catalog
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}	dto.ProductResponseDTO
//	@Router		/api/owner/products [get]
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	products, err := h.catalogService.ListProducts(r.Context(), userID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toProductDTOs(products))
}

// DeleteProduct godoc
//
//	@Summary	Remove a product
//	@Tags		Catalog
//	@Param		id	path	int	true	"Product id"
//	@Security	BearerAuth
//	@Success	204
//	@Failure	404	{object}	utils.Response	"Product not found"
//	@Router		/api/owner/products/{id} [delete]
func (h *CatalogHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	id, err := utils.IntParam(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.catalogService.DeleteProduct(r.Context(), userID, id); err != nil {
		respondWithServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListPOSProducts godoc
//
//	@Summary	Products of the employer, for the sale screen
//	@Tags		POS
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}	dto.ProductResponseDTO
//	@Failure	400	{object}	utils.Response	"Staff account has no employer"
//	@Router		/api/pos/products [get]
func (h *CatalogHandler) ListPOSProducts(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	role := r.Context().Value(auth.RoleKey).(domain.Role)

	products, err := h.catalogService.ListProductsForStaff(r.Context(), userID, role)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toProductDTOs(products))
}
