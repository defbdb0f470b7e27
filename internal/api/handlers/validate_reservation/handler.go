package validate_reservation

import (
	"net/http"

	"github.com/m04kA/LittleLemon-ReservationService/internal/api/handlers"
)

const msgInvalidRequestBody = "invalid request body"

type Handler struct {
	validator Validator
	logger    Logger
}

func NewHandler(validator Validator, logger Logger) *Handler {
	return &Handler{
		validator: validator,
		logger:    logger,
	}
}

// Handle POST /api/v1/reservations/validate
// Невалидная форма - это нормальный ответ 200 с ошибками по полям
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/validate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result := h.validator.Validate(req.ToDomain())

	h.logger.Info("POST /reservations/validate - is_valid=%t, errors=%d", result.IsValid, len(result.Errors))
	handlers.RespondJSON(w, http.StatusOK, FromDomain(result))
}
