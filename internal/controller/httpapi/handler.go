// Package httpapi is the thin HTTP surface over the booking core. User
// authentication happens upstream; the verified user id arrives in the
// X-User-ID header.
package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"

	"github.com/vlkr/booking_api/internal/model"
)

type availabilityResolver interface {
	AvailableSlots(ctx context.Context, serviceID int64, date string) ([]model.Slot, error)
}

type bookingManager interface {
	CreateBooking(ctx context.Context, userID, serviceID int64, date, startAt string) (*model.Reservation, error)
	CancelBooking(ctx context.Context, userID, reservationID int64) error
	ListReservations(ctx context.Context, userID int64) ([]*model.Reservation, error)
}

type catalogManager interface {
	ListServices(ctx context.Context) ([]*model.Service, error)
	CreateService(ctx context.Context, name string, price, durationMinutes int) (*model.Service, error)
	AddTemplate(ctx context.Context, serviceID int64, weekday int, startAt, endAt string, enabled bool) (*model.TimeslotTemplate, error)
}

type userRegistrar interface {
	Register(ctx context.Context, email, name string) (*model.User, error)
}

type Handler struct {
	availability availabilityResolver
	bookings     bookingManager
	catalog      catalogManager
	users        userRegistrar
	validate     *validator.Validate
	logger       *zap.Logger
}

func NewHandler(
	availability availabilityResolver,
	bookings bookingManager,
	catalog catalogManager,
	users userRegistrar,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		availability: availability,
		bookings:     bookings,
		catalog:      catalog,
		users:        users,
		validate:     validator.New(),
		logger:       logger,
	}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type registerUserRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required"`
}

func (h *Handler) RegisterUser(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req registerUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorCode(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	req.Name = strings.TrimSpace(req.Name)

	if err := h.validate.Struct(&req); err != nil {
		writeErrorCode(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	user, err := h.users.Register(r.Context(), req.Email, req.Name)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

func (h *Handler) ListServices(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	services, err := h.catalog.ListServices(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	if services == nil {
		services = []*model.Service{}
	}

	writeJSON(w, http.StatusOK, services)
}

type createServiceRequest struct {
	Name            string `json:"name" validate:"required"`
	Price           int    `json:"price" validate:"gte=0"`
	DurationMinutes int    `json:"duration_minutes" validate:"required,gt=0"`
}

func (h *Handler) CreateService(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req createServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorCode(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	req.Name = strings.TrimSpace(req.Name)

	if err := h.validate.Struct(&req); err != nil {
		writeErrorCode(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	svc, err := h.catalog.CreateService(r.Context(), req.Name, req.Price, req.DurationMinutes)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, svc)
}

type addTemplateRequest struct {
	// Pointer so weekday 0 (Sunday) passes "required".
	Weekday *int   `json:"weekday" validate:"required,gte=0,lte=6"`
	StartAt string `json:"start_at" validate:"required,datetime=15:04"`
	EndAt   string `json:"end_at" validate:"required,datetime=15:04"`
	Enabled *bool  `json:"enabled"`
}

func (h *Handler) AddTemplate(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
	serviceID, err := strconv.ParseInt(params.ByName("id"), 10, 64)
	if err != nil {
		writeErrorCode(w, http.StatusBadRequest, "invalid_id", "invalid service id")
		return
	}

	var req addTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorCode(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		writeErrorCode(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}

	template, err := h.catalog.AddTemplate(r.Context(), serviceID, *req.Weekday, req.StartAt, req.EndAt, enabled)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, template)
}

func (h *Handler) ServiceSlots(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
	serviceID, err := strconv.ParseInt(params.ByName("id"), 10, 64)
	if err != nil {
		writeErrorCode(w, http.StatusBadRequest, "invalid_id", "invalid service id")
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		writeErrorCode(w, http.StatusBadRequest, "missing_field", "date query parameter is required")
		return
	}

	slots, err := h.availability.AvailableSlots(r.Context(), serviceID, date)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, slots)
}

type createBookingRequest struct {
	ServiceID int64  `json:"service_id"`
	Date      string `json:"date"`
	StartAt   string `json:"start_at"`
}

func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID, ok := h.authenticated(w, r)
	if !ok {
		return
	}

	var req createBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorCode(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	// Field presence and formats are re-checked by the booking service,
	// which owns the exact error outcomes.
	reservation, err := h.bookings.CreateBooking(r.Context(), userID, req.ServiceID, req.Date, req.StartAt)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, reservation)
}

func (h *Handler) CancelBooking(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
	userID, ok := h.authenticated(w, r)
	if !ok {
		return
	}

	reservationID, err := strconv.ParseInt(params.ByName("id"), 10, 64)
	if err != nil {
		writeErrorCode(w, http.StatusBadRequest, "invalid_id", "invalid reservation id")
		return
	}

	if err := h.bookings.CancelBooking(r.Context(), userID, reservationID); err != nil {
		h.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListBookings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID, ok := h.authenticated(w, r)
	if !ok {
		return
	}

	reservations, err := h.bookings.ListReservations(r.Context(), userID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if reservations == nil {
		reservations = []*model.Reservation{}
	}

	writeJSON(w, http.StatusOK, reservations)
}

// authenticated extracts the collaborator-verified user id. A missing or
// malformed header ends the request with 401.
func (h *Handler) authenticated(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := r.Header.Get("X-User-ID")
	if raw == "" {
		writeErrorCode(w, http.StatusUnauthorized, "unauthenticated", "missing X-User-ID header")
		return 0, false
	}

	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || userID <= 0 {
		writeErrorCode(w, http.StatusUnauthorized, "unauthenticated", "invalid X-User-ID header")
		return 0, false
	}

	return userID, true
}
