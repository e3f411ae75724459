package access

import (
	"context"

	"github.com/google/uuid"
)

// RelationshipProbe answers whether a cosmetologist is associated with a
// user: at least one appointment links the exact pair, whatever its status.
// Implementations must query live data on every call.
type RelationshipProbe interface {
	IsAssociated(ctx context.Context, cosmetologistID, userID uuid.UUID) (bool, error)
}

// ProbeFunc adapts a function to RelationshipProbe.
type ProbeFunc func(ctx context.Context, cosmetologistID, userID uuid.UUID) (bool, error)

func (f ProbeFunc) IsAssociated(ctx context.Context, cosmetologistID, userID uuid.UUID) (bool, error) {
	return f(ctx, cosmetologistID, userID)
}
