package adaptor

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"tourism-booking/internal/data/entity"
	"tourism-booking/internal/usecase"
	"tourism-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// maxBodyBytes caps booking form bodies.
const maxBodyBytes = 1 << 20

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// BookGuide handles POST /api/book-guide
func (h *BookingHandler) BookGuide(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, entity.CategoryGuide)
}

// BookTransport handles POST /api/book-transport
func (h *BookingHandler) BookTransport(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, entity.CategoryTransport)
}

// BookActivity handles POST /api/book-activity
func (h *BookingHandler) BookActivity(w http.ResponseWriter, r *http.Request) {
	if !isJSONRequest(r) {
		h.log.Warn("Activity booking is not JSON",
			zap.String("content_type", r.Header.Get("Content-Type")))
		utils.ResponseBadRequest(w, "Request must be JSON", nil)
		return
	}
	h.submit(w, r, entity.CategoryActivity)
}

// Book handles POST /api/book, which routes on the payload's booking_type.
func (h *BookingHandler) Book(w http.ResponseWriter, r *http.Request) {
	payload, ok := h.readBody(w, r)
	if !ok {
		return
	}

	result, err := h.service.SubmitGeneric(r.Context(), payload)
	if err != nil {
		h.handleServiceError(w, r, err, "create booking")
		return
	}

	utils.ResponseSuccess(w, result.Message, result.Data)
}

// ProcessPayment handles POST /api/payment
func (h *BookingHandler) ProcessPayment(w http.ResponseWriter, r *http.Request) {
	payload, ok := h.readBody(w, r)
	if !ok {
		return
	}

	result, err := h.service.SubmitPayment(r.Context(), payload)
	if err != nil {
		h.handleServiceError(w, r, err, "process payment")
		return
	}

	utils.ResponseSuccess(w, result.Message, result.Data)
}

// GetAllBookings handles GET /api/bookings
func (h *BookingHandler) GetAllBookings(w http.ResponseWriter, r *http.Request) {
	grouped, err := h.service.ListAll(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err, "get all bookings")
		return
	}

	utils.ResponseSuccess(w, "", grouped)
}

// GetBookingsByCategory handles GET /api/bookings/{category}
func (h *BookingHandler) GetBookingsByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")

	records, err := h.service.List(r.Context(), category)
	if err != nil {
		h.handleServiceError(w, r, err, "get "+category+" bookings")
		return
	}

	utils.ResponseSuccess(w, "", records)
}

func (h *BookingHandler) submit(w http.ResponseWriter, r *http.Request, category entity.Category) {
	payload, ok := h.readBody(w, r)
	if !ok {
		return
	}

	result, err := h.service.Submit(r.Context(), category, payload)
	if err != nil {
		h.handleServiceError(w, r, err, "create "+string(category)+" booking")
		return
	}

	utils.ResponseSuccess(w, result.Message, result.Data)
}

func (h *BookingHandler) readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		h.log.Warn("Failed to read request body", zap.Error(err))
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return nil, false
	}
	return payload, true
}

// isJSONRequest accepts application/json and application/*+json.
func isJSONRequest(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return false
	}
	return mediaType == "application/json" ||
		(strings.HasPrefix(mediaType, "application/") && strings.HasSuffix(mediaType, "+json"))
}

// handleServiceError maps gateway errors onto the response envelope
func (h *BookingHandler) handleServiceError(w http.ResponseWriter, r *http.Request, err error, operation string) {
	var validationErr *usecase.ValidationError
	var notFoundErr *usecase.NotFoundError
	var storeErr *usecase.StoreError

	switch {
	case errors.As(err, &validationErr):
		h.log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.Strings("fields", validationErr.Fields),
			zap.String("request_id", utils.GetRequestIDFromContext(r.Context())))
		utils.ResponseBadRequest(w, validationErr.Message, nil)

	case errors.As(err, &notFoundErr):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("path", r.URL.Path))
		utils.ResponseNotFound(w, fmt.Sprintf("Route %s not found", r.URL.Path))

	case errors.As(err, &storeErr):
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.NamedError("cause", storeErr.Err),
			zap.String("request_id", utils.GetRequestIDFromContext(r.Context())))
		utils.ResponseInternalError(w, storeErr.Message)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("request_id", utils.GetRequestIDFromContext(r.Context())))
		utils.ResponseInternalError(w, "Server error: "+err.Error())
	}
}
