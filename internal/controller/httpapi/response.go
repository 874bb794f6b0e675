package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/vlkr/booking_api/internal/service"
)

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeErrorCode(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorBody{Error: errorDetail{Code: code, Message: message}})
}

// writeError maps domain errors to exact statuses and codes. Anything
// unrecognized is an infrastructure failure: logged here, returned as an
// opaque 500.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrMissingField):
		writeErrorCode(w, http.StatusBadRequest, "missing_field", err.Error())
	case errors.Is(err, service.ErrInvalidDate):
		writeErrorCode(w, http.StatusBadRequest, "invalid_date", err.Error())
	case errors.Is(err, service.ErrPastDate):
		writeErrorCode(w, http.StatusBadRequest, "past_date", err.Error())
	case errors.Is(err, service.ErrInvalidClock):
		writeErrorCode(w, http.StatusBadRequest, "invalid_time", err.Error())
	case errors.Is(err, service.ErrInvalidWeekday):
		writeErrorCode(w, http.StatusBadRequest, "invalid_weekday", err.Error())
	case errors.Is(err, service.ErrInvalidWindow):
		writeErrorCode(w, http.StatusBadRequest, "invalid_window", err.Error())
	case errors.Is(err, service.ErrSlotNotOffered):
		writeErrorCode(w, http.StatusBadRequest, "slot_not_offered", err.Error())
	case errors.Is(err, service.ErrServiceNotFound):
		writeErrorCode(w, http.StatusNotFound, "service_not_found", err.Error())
	case errors.Is(err, service.ErrReservationNotFound):
		writeErrorCode(w, http.StatusNotFound, "reservation_not_found", err.Error())
	case errors.Is(err, service.ErrUserNotFound):
		writeErrorCode(w, http.StatusNotFound, "user_not_found", err.Error())
	case errors.Is(err, service.ErrForbidden):
		writeErrorCode(w, http.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, service.ErrSlotTaken):
		writeErrorCode(w, http.StatusConflict, "slot_already_booked", err.Error())
	case errors.Is(err, service.ErrServiceExists):
		writeErrorCode(w, http.StatusConflict, "service_exists", err.Error())
	case errors.Is(err, service.ErrTemplateExists):
		writeErrorCode(w, http.StatusConflict, "template_exists", err.Error())
	case errors.Is(err, service.ErrEmailTaken):
		writeErrorCode(w, http.StatusConflict, "email_taken", err.Error())
	default:
		h.logger.Error("Unhandled request error", zap.Error(err))
		writeErrorCode(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
