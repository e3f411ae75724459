package access

import "github.com/kaagyebi/lumea-api/internal/httperr"

// Decision is the outcome of an authorization check. Reason is a stable code
// suitable for logs and audit metadata.
type Decision struct {
	Allowed bool
	Reason  string
}

const (
	ReasonOwner             = "owner"
	ReasonAdminOverride     = "admin_override"
	ReasonAssociated        = "associated_cosmetologist"
	ReasonRolePermitted     = "role_permitted"
	ReasonParty             = "appointment_party"
	ReasonAnonymous         = "anonymous"
	ReasonNotAssociated     = "not_associated"
	ReasonProbeUnavailable  = "relationship_unavailable"
	ReasonRoleNotPermitted  = "role_not_permitted"
	ReasonNotParty          = "not_appointment_party"
	ReasonCosmetologistOnly = "cosmetologist_only"
)

func Allow(reason string) Decision {
	return Decision{Allowed: true, Reason: reason}
}

func Deny(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// Err turns a denial into the 403 returned to clients. The reason is kept
// out of the response.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	return httperr.ErrForbidden("access_denied", "You are not allowed to perform this action.")
}
