package booking

import "github.com/hadir-app/hadir-api/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusConfirmed   Status = "confirmed"
	StatusCancelled   Status = "cancelled"
	StatusRescheduled Status = "rescheduled"
	StatusCompleted   Status = "completed"
	StatusNoShow      Status = "no_show"
)

// Only confirmed bookings occupy a slot; everything else is terminal.
func (s Status) Blocks() bool {
	return s == StatusConfirmed
}

func ValidStatus(s Status) bool {
	switch s {
	case StatusConfirmed, StatusCancelled, StatusRescheduled, StatusCompleted, StatusNoShow:
		return true
	}
	return false
}

// ===============================
// Created via
// ===============================

const (
	CreatedViaAI    = "ai"
	CreatedViaAdmin = "admin"
)

// ===============================
// Transitions
// ===============================

// CanTransition gates status updates: a confirmed booking may move to
// any terminal state, terminal states never change again.
func CanTransition(from, to Status) error {
	if !ValidStatus(to) {
		return httperr.ErrBusiness("invalid_status")
	}
	if from != StatusConfirmed || to == StatusConfirmed {
		return httperr.ErrBusiness("invalid_status_transition")
	}
	return nil
}

func InitialStatus() Status {
	return StatusConfirmed
}
