package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/hadir-app/hadir-api/internal/httperr"
)

// parseID parses a path or query identifier at the boundary; anything
// that is not a UUID never reaches a query.
func parseID(c *gin.Context, raw string) (uuid.UUID, bool) {
	id, err := uuid.Parse(raw)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identifier is not a valid UUID.")
		return uuid.Nil, false
	}
	return id, true
}

// respondError maps the named business-rule failures to client-facing
// statuses and everything else to a 500, so callers can tell "your
// request is invalid" from "the system is unavailable".
func respondError(c *gin.Context, err error) {
	var be httperr.BusinessError
	if errors.As(err, &be) {
		switch be.Code {
		case "business_not_found",
			"service_not_found",
			"customer_not_found",
			"booking_not_found",
			"conversation_not_found":
			httperr.NotFound(c, be.Code, "Referenced record does not exist.")
		case "slot_unavailable":
			httperr.Conflict(c, be.Code, "Time slot not available.")
		case "whatsapp_number_taken":
			httperr.Conflict(c, be.Code, "A business with this WhatsApp number already exists.")
		default:
			httperr.BadRequest(c, be.Code, "Request failed validation.")
		}
		return
	}

	log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("internal error")
	httperr.Internal(c, "internal_error", "Unexpected failure, try again later.")
}
