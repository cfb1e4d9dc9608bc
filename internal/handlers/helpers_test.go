package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/hadir-app/hadir-api/internal/httperr"
)

func TestRespondErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"business not found", httperr.ErrBusiness("business_not_found"), http.StatusNotFound},
		{"service not found", httperr.ErrBusiness("service_not_found"), http.StatusNotFound},
		{"slot unavailable", httperr.ErrBusiness("slot_unavailable"), http.StatusConflict},
		{"number taken", httperr.ErrBusiness("whatsapp_number_taken"), http.StatusConflict},
		{"outside working hours", httperr.ErrBusiness("outside_working_hours"), http.StatusBadRequest},
		{"invalid timezone", httperr.ErrBusiness("invalid_timezone"), http.StatusBadRequest},
		{"storage failure", errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/api/bookings", nil)

			respondError(c, tt.err)

			if w.Code != tt.status {
				t.Errorf("status = %d, want %d", w.Code, tt.status)
			}
		})
	}
}

func TestParseIDRejectsGarbage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	if _, ok := parseID(c, "not-a-uuid"); ok {
		t.Fatal("parseID accepted a malformed id")
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
