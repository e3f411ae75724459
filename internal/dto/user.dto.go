package dto

import (
	"github.com/google/uuid"

	"github.com/kaagyebi/lumea-api/internal/models"
)

// UserSummaryDTO is the shape used wherever another entity references a user.
type UserSummaryDTO struct {
	ID      uuid.UUID      `json:"id"`
	Name    string         `json:"name"`
	Email   string         `json:"email"`
	Profile models.Profile `json:"profile"`
}

// UserSummary returns nil when u was not loaded.
func UserSummary(u *models.User) *UserSummaryDTO {
	if u == nil || u.ID == uuid.Nil {
		return nil
	}
	return &UserSummaryDTO{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Profile: u.Profile,
	}
}

func UserSummaries(users []models.User) []UserSummaryDTO {
	out := make([]UserSummaryDTO, 0, len(users))
	for i := range users {
		out = append(out, *UserSummary(&users[i]))
	}
	return out
}

type AuthDTO struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}
