package get_reservation_options

import (
	"net/http"

	"github.com/m04kA/LittleLemon-ReservationService/internal/api/handlers"
)

type Handler struct {
	useCase GetReservationOptionsUseCase
	logger  Logger
}

func NewHandler(useCase GetReservationOptionsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservations/options
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("GET /reservations/options - Failed to get options: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
