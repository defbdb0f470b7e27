package submit_reservation

import "github.com/m04kA/LittleLemon-ReservationService/internal/domain"

// Заголовки и тексты диалога результата
const (
	TitleConfirmed = "Reservation Confirmed!"
	TitleFailed    = "Reservation Failed"
	TitleError     = "Error"

	MsgSubmitError = "There was an error submitting your reservation. Please try again."
)

// Request модель запроса на отправку формы бронирования
type Request struct {
	Form domain.ReservationForm // Форма в том виде, в каком ее заполнил гость
}

// Response модель результата одной попытки отправки
type Response struct {
	Outcome domain.SubmissionState   // invalid, succeeded или failed
	States  []domain.SubmissionState // Пройденные состояния; после успешной брони заканчиваются idle
	Form    domain.ReservationForm   // Форма после попытки (пустая после успешной брони)
	Errors  map[string]string        // Ошибки по полям (только для invalid)
	Dialog  *Dialog                  // Диалог результата (nil для invalid)
	Reset   bool                     // Форма была очищена
}

// Dialog модель диалога с результатом бронирования
type Dialog struct {
	Success       bool
	Title         string
	Message       string
	ReservationID string // Только при успехе
}
