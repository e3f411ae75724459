package access

import (
	"context"

	"github.com/google/uuid"
)

type ResourceKind string

const (
	KindSkinReport     ResourceKind = "skin_report"
	KindRecommendation ResourceKind = "recommendation"
)

// Resource is a user-owned resource being read.
type Resource struct {
	OwnerID uuid.UUID
	Kind    ResourceKind
}

// CanAccess decides a read of a user-owned resource: the owner, any admin,
// or a cosmetologist associated with the owner. A failing or missing probe
// denies.
func CanAccess(ctx context.Context, requester Principal, res Resource, probe RelationshipProbe) Decision {
	if requester.ID == uuid.Nil {
		return Deny(ReasonAnonymous)
	}

	if requester.ID == res.OwnerID {
		return Allow(ReasonOwner)
	}

	if requester.Role == RoleAdmin {
		return Allow(ReasonAdminOverride)
	}

	if requester.Role != RoleCosmetologist {
		return Deny(ReasonRoleNotPermitted)
	}

	if probe == nil || res.OwnerID == uuid.Nil {
		return Deny(ReasonProbeUnavailable)
	}

	ok, err := probe.IsAssociated(ctx, requester.ID, res.OwnerID)
	if err != nil {
		return Deny(ReasonProbeUnavailable)
	}
	if !ok {
		return Deny(ReasonNotAssociated)
	}
	return Allow(ReasonAssociated)
}

// CanAuthor decides creation and authoring actions, where no resource exists
// yet and only the requester's role matters.
func CanAuthor(requester Principal, action Action) Decision {
	if requester.ID == uuid.Nil {
		return Deny(ReasonAnonymous)
	}
	if !Allowed(requester.Role, action) {
		return Deny(ReasonRoleNotPermitted)
	}
	return Allow(ReasonRolePermitted)
}
