package logs

import (
	"context"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/loyalty/internal/domain"
	"github.com/GlebRadaev/loyalty/internal/dto"
	"github.com/GlebRadaev/loyalty/pkg/utils"
)

type Service interface {
	ListLogs(ctx context.Context, limit int) ([]domain.SystemLog, error)
}

type LogsHandler struct {
	logService Service
}

func New(logService Service) *LogsHandler {
	return &LogsHandler{
		logService: logService,
	}
}

// ListLogs godoc
//
//	@Summary		Recent system log entries
//	@Description	Newest first. Limit defaults to 100 and is capped at 500.
//	@Tags			Admin
//	@Produce		json
//	@Param			limit	query	int	false	"Number of entries"
//	@Security		BearerAuth
//	@Success		200	{array}		dto.SystemLogResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid limit"
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Router			/api/admin/logs [get]
func (h *LogsHandler) ListLogs(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	entries, err := h.logService.ListLogs(r.Context(), limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	response := make([]dto.SystemLogResponseDTO, 0, len(entries))
	for _, e := range entries {
		response = append(response, dto.SystemLogResponseDTO{
			ID:        e.ID,
			Level:     string(e.Level),
			Message:   e.Message,
			CreatedAt: e.CreatedAt,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
