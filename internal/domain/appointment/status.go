package appointment

import (
	"strings"

	"github.com/kaagyebi/lumea-api/internal/httperr"
)

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusRejected  Status = "rejected"
	StatusCompleted Status = "completed"
)

func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	switch st {
	case StatusPending, StatusAccepted, StatusRejected, StatusCompleted:
		return st, nil
	}
	return "", httperr.ErrValidation("invalid_status", "Status must be one of pending, accepted, rejected, completed.")
}

// InitialStatus is the status of every newly booked appointment.
func InitialStatus() Status {
	return StatusPending
}

// CosmetologistOnly reports whether only the assigned cosmetologist may set
// this status.
func (s Status) CosmetologistOnly() bool {
	return s == StatusAccepted || s == StatusRejected
}
