package create_reservation

import (
	"net/http"

	"github.com/m04kA/LittleLemon-ReservationService/internal/api/handlers"
	"github.com/m04kA/LittleLemon-ReservationService/internal/domain"
)

const msgInvalidRequestBody = "invalid request body"

type Handler struct {
	useCase SubmitReservationUseCase
	logger  Logger
}

func NewHandler(useCase SubmitReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
// 201 - бронь подтверждена, 200 - бронь отклонена (диалог с причиной), 422 - ошибки в форме
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		h.logger.Error("POST /reservations - Failed to submit reservation: date=%s, time=%s, error=%v",
			req.Date, req.Time, err)
		handlers.RespondInternalError(w)
		return
	}

	response := FromUseCaseResponse(result)

	switch result.Outcome {
	case domain.StateInvalid:
		h.logger.Warn("POST /reservations - Form is invalid: errors=%d", len(result.Errors))
		handlers.RespondJSON(w, http.StatusUnprocessableEntity, response)

	case domain.StateSucceeded:
		h.logger.Info("POST /reservations - Reservation confirmed: reservation_id=%s", result.Dialog.ReservationID)
		handlers.RespondJSON(w, http.StatusCreated, response)

	default:
		h.logger.Warn("POST /reservations - Reservation failed: date=%s, time=%s", req.Date, req.Time)
		handlers.RespondJSON(w, http.StatusOK, response)
	}
}
