package appointment

import (
	"github.com/kaagyebi/lumea-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Apply writes change onto ap. Setting the current status again is a no-op.
func Apply(ap *models.Appointment, change Change) {
	if change.Status != nil {
		ap.Status = string(*change.Status)
	}
	if change.Notes != nil {
		ap.Notes = *change.Notes
	}
}
