package adaptor

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tourism-booking/internal/data/repository"
	"tourism-booking/internal/usecase"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestIsJSONRequest(t *testing.T) {
	tests := []struct {
		contentType string
		want        bool
	}{
		{"application/json", true},
		{"application/json; charset=utf-8", true},
		{"application/vnd.api+json", true},
		{"text/plain", false},
		{"application/x-www-form-urlencoded", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			req.Header.Set("Content-Type", tt.contentType)
			assert.Equal(t, tt.want, isJSONRequest(req))
		})
	}
}

func TestBookGuide_StoreError(t *testing.T) {
	svc := usecase.NewBookingService(repository.NewRepository(downStore{}), zap.NewNop())
	h := NewBookingHandler(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/book-guide", strings.NewReader(`{"name":"Ann"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	h.BookGuide(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Server error: down"}`, rec.Body.String())
}

func TestGetAllBookings_StoreError(t *testing.T) {
	svc := usecase.NewBookingService(repository.NewRepository(downStore{}), zap.NewNop())
	h := NewBookingHandler(svc, zap.NewNop())
	rec := httptest.NewRecorder()

	h.GetAllBookings(rec, httptest.NewRequest(http.MethodGet, "/api/bookings", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Server error: down"}`, rec.Body.String())
}
