package ledger

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/loyalty/internal/domain"
	"github.com/GlebRadaev/loyalty/internal/dto"
	"github.com/GlebRadaev/loyalty/internal/service/ledgerservice"
	"github.com/GlebRadaev/loyalty/pkg/auth"
	"github.com/GlebRadaev/loyalty/pkg/utils"
)

type Service interface {
	IssueCode(ctx context.Context, staffID int, role domain.Role, amount decimal.Decimal, items []domain.LineItem) (*ledgerservice.IssuedCode, error)
	ScanCode(ctx context.Context, clientUserID int, payload string) (int, error)
	ClaimReward(ctx context.Context, clientUserID, programID int) (*domain.RedemptionTicket, error)
	RedeemTicket(ctx context.Context, staffID int, role domain.Role, ticketID string) (*domain.RedeemedReward, error)
	TicketStatus(ctx context.Context, clientUserID int, ticketID string) (*domain.TicketStatus, error)
	ClientBalances(ctx context.Context, clientUserID int) ([]domain.ProgressView, error)
}

type LedgerHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *LedgerHandler {
	return &LedgerHandler{
		ledgerService: ledgerService,
	}
}

// statusOf maps ledger errors onto HTTP statuses. Anything unknown is a 500
// with a generic body; the detail stays in the logs.
func statusOf(err error) int {
	switch {
	case errors.Is(err, ledgerservice.ErrSecurityMismatch),
		errors.Is(err, ledgerservice.ErrCrossTenant):
		return http.StatusForbidden
	case errors.Is(err, ledgerservice.ErrPurchaseNotFound),
		errors.Is(err, ledgerservice.ErrTicketNotFound),
		errors.Is(err, ledgerservice.ErrProgramNotFound),
		errors.Is(err, ledgerservice.ErrClientNotFound):
		return http.StatusNotFound
	case errors.Is(err, ledgerservice.ErrInvalidAmount),
		errors.Is(err, ledgerservice.ErrBusinessBlocked),
		errors.Is(err, ledgerservice.ErrInvalidToken),
		errors.Is(err, ledgerservice.ErrAlreadyUsed),
		errors.Is(err, ledgerservice.ErrExpired),
		errors.Is(err, ledgerservice.ErrNoActiveProgram),
		errors.Is(err, ledgerservice.ErrProgressNotFound),
		errors.Is(err, ledgerservice.ErrInsufficientPoints),
		errors.Is(err, ledgerservice.ErrMalformedTicket),
		errors.Is(err, ledgerservice.ErrNoEmployer),
		errors.Is(err, domain.ErrMalformedCode):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	code := statusOf(err)
	if code == http.StatusInternalServerError {
		utils.RespondWithError(w, code, "Internal server error")
		return
	}
	utils.RespondWithError(w, code, err.Error())
}

// IssueCode godoc
//
//	@Summary		Generate a sale code
//	@Description	Records a sale and returns the single-use payload to render as a QR code. Valid for 10 minutes.
//	@Tags			POS
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.IssueCodeRequestDTO	true	"Sale"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.IssueCodeResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid amount or blocked business"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/pos/purchases [post]
func (h *LedgerHandler) IssueCode(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	role := r.Context().Value(auth.RoleKey).(domain.Role)

	var req dto.IssueCodeRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	items := make([]domain.LineItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, domain.LineItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}

	issued, err := h.ledgerService.IssueCode(r.Context(), userID, role, req.Amount, items)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.IssueCodeResponseDTO{
		PurchaseID:    issued.Purchase.ID,
		Payload:       issued.Payload,
		PointsAwarded: issued.Purchase.PointsAwarded,
		ExpiresAt:     issued.Purchase.ExpiresAt,
	})
}

// Scan godoc
//
//	@Summary	Scan a sale code
//	@Tags		Client
//	@Accept		json
//	@Produce	json
//	@Param		request	body	dto.ScanRequestDTO	true	"Scanned payload"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.ScanResponseDTO
//	@Failure	400	{object}	utils.Response	"Code used, expired or malformed"
//	@Failure	403	{object}	utils.Response	"Code doesn't belong to the business"
//	@Failure	404	{object}	utils.Response	"Purchase not found"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/client/scan [post]
func (h *LedgerHandler) Scan(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.ScanRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	points, err := h.ledgerService.ScanCode(r.Context(), userID, req.Code)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ScanResponseDTO{Points: points})
}

// Claim godoc
//
//	@Summary		Claim a reward ticket
//	@Description	Spends the program threshold and returns a ticket valid for 60 minutes.
//	@Tags			Client
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.ClaimRequestDTO	true	"Program"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.ClaimResponseDTO
//	@Failure		400	{object}	utils.Response	"Not enough points"
//	@Failure		404	{object}	utils.Response	"Program not found"
//	@Router			/api/client/rewards/claim [post]
func (h *LedgerHandler) Claim(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.ClaimRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	ticket, err := h.ledgerService.ClaimReward(r.Context(), userID, req.ProgramID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.ClaimResponseDTO{
		Ticket:    ticket.ID,
		ExpiresAt: ticket.ExpiresAt,
	})
}

// Redeem godoc
//
//	@Summary	Validate and burn a reward ticket
//	@Tags		POS
//	@Accept		json
//	@Produce	json
//	@Param		request	body	dto.RedeemRequestDTO	true	"Ticket"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.RedeemResponseDTO
//	@Failure	400	{object}	utils.Response	"Ticket used, expired or malformed"
//	@Failure	403	{object}	utils.Response	"Ticket issued by another business"
//	@Failure	404	{object}	utils.Response	"Ticket not found"
//	@Router		/api/pos/tickets/redeem [post]
func (h *LedgerHandler) Redeem(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	role := r.Context().Value(auth.RoleKey).(domain.Role)

	var req dto.RedeemRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	reward, err := h.ledgerService.RedeemTicket(r.Context(), userID, role, req.Ticket)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RedeemResponseDTO{
		Ticket:  reward.TicketID,
		Reward:  reward.RewardDescription,
		Program: reward.ProgramName,
		Client:  reward.ClientName,
	})
}

// TicketStatus godoc
//
//	@Summary	Poll a reward ticket
//	@Tags		Client
//	@Produce	json
//	@Param		id	path	string	true	"Ticket number"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.TicketStatusResponseDTO
//	@Failure	400	{object}	utils.Response	"Malformed ticket"
//	@Failure	404	{object}	utils.Response	"Ticket not found"
//	@Router		/api/client/tickets/{id} [get]
func (h *LedgerHandler) TicketStatus(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	status, err := h.ledgerService.TicketStatus(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TicketStatusResponseDTO{
		Ticket:  status.TicketID,
		Used:    status.Used,
		Expired: status.Expired,
	})
}

// Balances godoc
//
//	@Summary	Points per program
//	@Tags		Client
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}	dto.BalanceResponseDTO
//	@Router		/api/client/balances [get]
func (h *LedgerHandler) Balances(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	views, err := h.ledgerService.ClientBalances(r.Context(), userID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	response := make([]dto.BalanceResponseDTO, 0, len(views))
	for _, v := range views {
		response = append(response, dto.BalanceResponseDTO{
			ProgramID:         v.ProgramID,
			ProgramName:       v.ProgramName,
			RewardDescription: v.RewardDescription,
			BusinessID:        v.BusinessID,
			BusinessName:      v.BusinessName,
			PointsThreshold:   v.PointsThreshold,
			PointsAccumulated: v.PointsAccumulated,
			UpdatedAt:         v.UpdatedAt,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
