package dto

import (
	"github.com/kaagyebi/lumea-api/internal/models"
)

type AppointmentDTO struct {
	models.Appointment

	User          *UserSummaryDTO `json:"user,omitempty"`
	Cosmetologist *UserSummaryDTO `json:"cosmetologist,omitempty"`
}

func Appointment(ap *models.Appointment) AppointmentDTO {
	return AppointmentDTO{
		Appointment:   *ap,
		User:          UserSummary(&ap.User),
		Cosmetologist: UserSummary(&ap.Cosmetologist),
	}
}

func Appointments(aps []models.Appointment) []AppointmentDTO {
	out := make([]AppointmentDTO, 0, len(aps))
	for i := range aps {
		out = append(out, Appointment(&aps[i]))
	}
	return out
}

// AppointmentDebugDTO is the role-scoped listing used by client debugging
// screens.
type AppointmentDebugDTO struct {
	Count        int              `json:"count"`
	Appointments []AppointmentDTO `json:"appointments"`
	Query        map[string]any   `json:"query"`
	UserRole     string           `json:"userRole"`
}
