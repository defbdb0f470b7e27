package get_specials

import (
	"net/http"

	"github.com/m04kA/LittleLemon-ReservationService/internal/api/handlers"
)

type Handler struct {
	service SpecialsService
	logger  Logger
}

func NewHandler(service SpecialsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/specials
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetWeeksSpecials(r.Context())
	if err != nil {
		h.logger.Error("GET /specials - Failed to load specials: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /specials - items=%d", len(result.Data))
	handlers.RespondJSON(w, http.StatusOK, result)
}
