package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaagyebi/lumea-api/internal/domain/access"
	domain "github.com/kaagyebi/lumea-api/internal/domain/appointment"
	"github.com/kaagyebi/lumea-api/internal/httperr"
	"github.com/kaagyebi/lumea-api/internal/models"
)

type fixture struct {
	repo  *stubRepo
	user  models.User
	other models.User
	cosmo models.User
	admin models.User
}

func newFixture() *fixture {
	r := newStubRepo()
	return &fixture{
		repo:  r,
		user:  r.addUser("ama", access.RoleUser),
		other: r.addUser("kofi", access.RoleUser),
		cosmo: r.addUser("esi", access.RoleCosmetologist),
		admin: r.addUser("root", access.RoleAdmin),
	}
}

func (f *fixture) book(t *testing.T, who models.User, date string) *models.Appointment {
	t.Helper()
	ap, err := NewBookAppointment(f.repo, nil, time.UTC).Execute(context.Background(), BookInput{
		Requester:       who.Principal(),
		CosmetologistID: f.cosmo.ID,
		SkinType:        "oily",
		Gender:          "female",
		Date:            date,
		Time:            "10:30",
	})
	require.NoError(t, err)
	return ap
}

func ptr[T any](v T) *T { return &v }

// ── Book ────────────────────────────────────────────────────────────────────

func TestBook_CreatesPendingAppointment(t *testing.T) {
	f := newFixture()

	ap := f.book(t, f.user, "2025-07-01")

	assert.Equal(t, string(domain.StatusPending), ap.Status)
	assert.Equal(t, f.user.ID, ap.UserID)
	assert.Equal(t, f.cosmo.ID, ap.CosmetologistID)
	assert.Equal(t, "esi", ap.Cosmetologist.Name)
	assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), ap.Date)
}

func TestBook_Validation(t *testing.T) {
	f := newFixture()
	uc := NewBookAppointment(f.repo, nil, time.UTC)

	base := BookInput{
		Requester:       f.user.Principal(),
		CosmetologistID: f.cosmo.ID,
		SkinType:        "dry",
		Gender:          "male",
		Date:            "2025-07-01",
		Time:            "09:00",
	}

	cases := []struct {
		name   string
		mutate func(*BookInput)
		code   string
	}{
		{"missing skin type", func(in *BookInput) { in.SkinType = " " }, "missing_fields"},
		{"missing gender", func(in *BookInput) { in.Gender = "" }, "missing_fields"},
		{"bad date", func(in *BookInput) { in.Date = "07/01/2025" }, "invalid_date"},
		{"bad time", func(in *BookInput) { in.Time = "9am" }, "invalid_time"},
		{"negative age", func(in *BookInput) { in.Age = ptr(-1) }, "invalid_age"},
		{"not a cosmetologist", func(in *BookInput) { in.CosmetologistID = f.other.ID }, "not_a_cosmetologist"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := base
			tc.mutate(&in)

			_, err := uc.Execute(context.Background(), in)

			require.Error(t, err)
			assert.True(t, httperr.IsKind(err, httperr.KindValidation))
			assert.True(t, httperr.Is(err, tc.code), err.Error())
		})
	}
}

func TestBook_UnknownCosmetologist(t *testing.T) {
	f := newFixture()

	_, err := NewBookAppointment(f.repo, nil, time.UTC).Execute(context.Background(), BookInput{
		Requester:       f.user.Principal(),
		CosmetologistID: uuid.New(),
		SkinType:        "dry",
		Gender:          "male",
		Date:            "2025-07-01",
		Time:            "09:00",
	})

	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
}

// ── Update ──────────────────────────────────────────────────────────────────

func TestUpdate_CosmetologistAccepts(t *testing.T) {
	f := newFixture()
	ap := f.book(t, f.user, "2025-07-01")
	uc := NewUpdateAppointment(f.repo, nil)

	got, err := uc.Execute(context.Background(), f.cosmo.Principal(), ap.ID, UpdateInput{Status: ptr("accepted")})
	require.NoError(t, err)

	assert.Equal(t, "accepted", got.Status)
	assert.Equal(t, "ama", got.User.Name)
	assert.Equal(t, "esi", got.Cosmetologist.Name)

	// Same status again is a successful no-op.
	got, err = uc.Execute(context.Background(), f.cosmo.Principal(), ap.ID, UpdateInput{Status: ptr("accepted")})
	require.NoError(t, err)
	assert.Equal(t, "accepted", got.Status)
}

func TestUpdate_UserCannotAcceptOrReject(t *testing.T) {
	f := newFixture()
	ap := f.book(t, f.user, "2025-07-01")
	uc := NewUpdateAppointment(f.repo, nil)

	for _, st := range []string{"accepted", "rejected"} {
		_, err := uc.Execute(context.Background(), f.user.Principal(), ap.ID, UpdateInput{Status: ptr(st)})
		assert.True(t, httperr.IsKind(err, httperr.KindAuthorization), st)
	}

	stored, _ := f.repo.GetAppointment(context.Background(), ap.ID)
	assert.Equal(t, "pending", stored.Status)
	assert.Zero(t, f.repo.updates)
}

func TestUpdate_EitherPartyMayCompleteOrAnnotate(t *testing.T) {
	f := newFixture()
	ap := f.book(t, f.user, "2025-07-01")
	uc := NewUpdateAppointment(f.repo, nil)

	got, err := uc.Execute(context.Background(), f.user.Principal(), ap.ID, UpdateInput{
		Status: ptr("completed"),
		Notes:  ptr("went well"),
	})
	require.NoError(t, err)
	assert.Equal(t, "completed", got.Status)
	assert.Equal(t, "went well", got.Notes)

	got, err = uc.Execute(context.Background(), f.cosmo.Principal(), ap.ID, UpdateInput{Notes: ptr("follow up in May")})
	require.NoError(t, err)
	assert.Equal(t, "completed", got.Status)
	assert.Equal(t, "follow up in May", got.Notes)
}

func TestUpdate_NonPartyDeniedWhateverTheRole(t *testing.T) {
	f := newFixture()
	ap := f.book(t, f.user, "2025-07-01")
	stranger := f.repo.addUser("yaw", access.RoleCosmetologist)
	uc := NewUpdateAppointment(f.repo, nil)

	for _, who := range []models.User{f.other, stranger, f.admin} {
		_, err := uc.Execute(context.Background(), who.Principal(), ap.ID, UpdateInput{Notes: ptr("hi")})
		assert.True(t, httperr.IsKind(err, httperr.KindAuthorization), who.Name)
	}
}

func TestUpdate_Errors(t *testing.T) {
	f := newFixture()
	ap := f.book(t, f.user, "2025-07-01")
	uc := NewUpdateAppointment(f.repo, nil)

	_, err := uc.Execute(context.Background(), f.cosmo.Principal(), uuid.New(), UpdateInput{Status: ptr("accepted")})
	assert.True(t, httperr.Is(err, "appointment_not_found"))

	_, err = uc.Execute(context.Background(), f.cosmo.Principal(), ap.ID, UpdateInput{Status: ptr("cancelled")})
	assert.True(t, httperr.Is(err, "invalid_status"))

	_, err = uc.Execute(context.Background(), f.cosmo.Principal(), ap.ID, UpdateInput{})
	assert.True(t, httperr.Is(err, "empty_update"))
}

func TestUpdate_EmptyFieldsAreIgnored(t *testing.T) {
	f := newFixture()
	ap := f.book(t, f.user, "2025-07-01")
	uc := NewUpdateAppointment(f.repo, nil)

	_, err := uc.Execute(context.Background(), f.cosmo.Principal(), ap.ID, UpdateInput{Notes: ptr("bring sunscreen")})
	require.NoError(t, err)

	got, err := uc.Execute(context.Background(), f.cosmo.Principal(), ap.ID, UpdateInput{
		Status: ptr("accepted"),
		Notes:  ptr(""),
	})
	require.NoError(t, err)
	assert.Equal(t, "accepted", got.Status)
	assert.Equal(t, "bring sunscreen", got.Notes)

	got, err = uc.Execute(context.Background(), f.user.Principal(), ap.ID, UpdateInput{
		Status: ptr(""),
		Notes:  ptr("see you then"),
	})
	require.NoError(t, err)
	assert.Equal(t, "accepted", got.Status)
	assert.Equal(t, "see you then", got.Notes)

	_, err = uc.Execute(context.Background(), f.cosmo.Principal(), ap.ID, UpdateInput{Status: ptr(""), Notes: ptr("")})
	assert.True(t, httperr.Is(err, "empty_update"))
}

// ── Lists ───────────────────────────────────────────────────────────────────

func TestLists_AreScopedToTheRequester(t *testing.T) {
	f := newFixture()
	f.book(t, f.user, "2025-07-03")
	f.book(t, f.user, "2025-07-01")
	f.book(t, f.other, "2025-07-02")
	ctx := context.Background()

	mine, err := NewListUserAppointments(f.repo).Execute(ctx, f.user.Principal(), "")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.True(t, mine[0].Date.Before(mine[1].Date))
	for _, ap := range mine {
		assert.Equal(t, f.user.ID, ap.UserID)
		assert.Equal(t, "esi", ap.Cosmetologist.Name)
	}

	theirs, err := NewListCosmetologistAppointments(f.repo).Execute(ctx, f.cosmo.Principal(), "")
	require.NoError(t, err)
	assert.Len(t, theirs, 3)

	pending, err := NewListUserAppointments(f.repo).Execute(ctx, f.user.Principal(), "accepted")
	require.NoError(t, err)
	assert.Empty(t, pending)

	_, err = NewListUserAppointments(f.repo).Execute(ctx, f.user.Principal(), "bogus")
	assert.True(t, httperr.Is(err, "invalid_status"))
}

func TestListCosmetologistAppointments_RequiresRole(t *testing.T) {
	f := newFixture()

	for _, who := range []models.User{f.user, f.admin} {
		_, err := NewListCosmetologistAppointments(f.repo).Execute(context.Background(), who.Principal(), "")
		assert.True(t, httperr.IsKind(err, httperr.KindAuthorization), who.Name)
	}
}

func TestListMyAppointments_Scope(t *testing.T) {
	f := newFixture()
	f.book(t, f.user, "2025-07-01")
	ctx := context.Background()

	asUser, err := NewListMyAppointments(f.repo).Execute(ctx, f.cosmo.Principal(), "")
	require.NoError(t, err)
	assert.Equal(t, domain.ScopeUser, asUser.Scope)
	assert.Empty(t, asUser.Appointments)

	asCosmo, err := NewListMyAppointments(f.repo).Execute(ctx, f.cosmo.Principal(), "cosmetologist")
	require.NoError(t, err)
	assert.Equal(t, domain.ScopeCosmetologist, asCosmo.Scope)
	require.Len(t, asCosmo.Appointments, 1)
	assert.Equal(t, "ama", asCosmo.Appointments[0].User.Name)
}
