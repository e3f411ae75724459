package appointment

import (
	"github.com/google/uuid"

	"github.com/kaagyebi/lumea-api/internal/domain/access"
	"github.com/kaagyebi/lumea-api/internal/models"
)

// Change is a requested mutation of an appointment. Nil fields are left
// untouched.
type Change struct {
	Status *Status
	Notes  *string
}

func (c Change) Empty() bool {
	return c.Status == nil && c.Notes == nil
}

// CanTransition decides whether requester may apply change to ap. Only the
// two parties of the appointment may mutate it, whatever their role; accept
// and reject belong to the cosmetologist party alone.
func CanTransition(requester access.Principal, ap *models.Appointment, change Change) access.Decision {
	if requester.ID == uuid.Nil {
		return access.Deny(access.ReasonAnonymous)
	}

	isUser := ap.UserID == requester.ID
	isCosmetologist := ap.CosmetologistID == requester.ID

	if !isUser && !isCosmetologist {
		return access.Deny(access.ReasonNotParty)
	}

	if change.Status != nil && change.Status.CosmetologistOnly() && !isCosmetologist {
		return access.Deny(access.ReasonCosmetologistOnly)
	}

	return access.Allow(access.ReasonParty)
}
