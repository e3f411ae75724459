package recommendation

import (
	"context"

	"github.com/google/uuid"

	"github.com/kaagyebi/lumea-api/internal/domain/access"
	domain "github.com/kaagyebi/lumea-api/internal/domain/recommendation"
	"github.com/kaagyebi/lumea-api/internal/httperr"
	"github.com/kaagyebi/lumea-api/internal/models"
)

// ListForUser returns the recommendations addressed to a user, to anyone
// allowed to read that user's records.
type ListForUser struct {
	repo domain.Repository
}

func NewListForUser(repo domain.Repository) *ListForUser {
	return &ListForUser{repo: repo}
}

func (uc *ListForUser) Execute(
	ctx context.Context,
	requester access.Principal,
	userID uuid.UUID,
) ([]models.Recommendation, error) {

	decision := access.CanAccess(ctx, requester, access.Resource{
		OwnerID: userID,
		Kind:    access.KindRecommendation,
	}, uc.repo)
	if err := decision.Err(); err != nil {
		return nil, err
	}

	recs, err := uc.repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, httperr.Store(err)
	}
	return recs, nil
}

// ListAuthored returns what the requester has written.
type ListAuthored struct {
	repo domain.Repository
}

func NewListAuthored(repo domain.Repository) *ListAuthored {
	return &ListAuthored{repo: repo}
}

func (uc *ListAuthored) Execute(ctx context.Context, requester access.Principal) ([]models.Recommendation, error) {
	if err := access.CanAuthor(requester, access.ActionListAuthoredRecommendations).Err(); err != nil {
		return nil, err
	}

	recs, err := uc.repo.ListAuthored(ctx, requester.ID)
	if err != nil {
		return nil, httperr.Store(err)
	}
	return recs, nil
}
