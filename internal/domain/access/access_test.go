package access

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaagyebi/lumea-api/internal/httperr"
)

// probe records its calls and answers from a fixed set of pairs.
type probe struct {
	pairs map[[2]uuid.UUID]bool
	err   error
	calls int
}

func (p *probe) IsAssociated(_ context.Context, cosmetologistID, userID uuid.UUID) (bool, error) {
	p.calls++
	if p.err != nil {
		return false, p.err
	}
	return p.pairs[[2]uuid.UUID{cosmetologistID, userID}], nil
}

func principal(role Role) Principal {
	return Principal{ID: uuid.New(), Role: role}
}

// ======================================================
// PERMISSION TABLE
// ======================================================

func TestAllowed_Matrix(t *testing.T) {
	want := map[Action][]Role{
		ActionBookAppointment:               {RoleUser, RoleCosmetologist, RoleAdmin, RoleSuperadmin},
		ActionUploadSkinReport:              {RoleUser, RoleCosmetologist, RoleAdmin, RoleSuperadmin},
		ActionListCosmetologistAppointments: {RoleCosmetologist},
		ActionCreateRecommendation:          {RoleCosmetologist, RoleAdmin},
		ActionAddConsultationNotes:          {RoleCosmetologist, RoleAdmin},
		ActionRegisterCosmetologist:         {RoleCosmetologist, RoleAdmin},
		ActionUpdateAvailability:            {RoleCosmetologist, RoleAdmin},
		ActionListUserReports:               {RoleCosmetologist, RoleAdmin},
		ActionListAuthoredRecommendations:   {RoleCosmetologist, RoleAdmin},
		ActionManageRoles:                   {RoleSuperadmin},
		ActionViewAuditLogs:                 {RoleAdmin, RoleSuperadmin},
	}
	require.Len(t, Actions, len(want))

	for _, action := range Actions {
		for _, role := range Roles {
			expected := false
			for _, r := range want[action] {
				if r == role {
					expected = true
				}
			}
			assert.Equal(t, expected, Allowed(role, action), "%s / %s", role, action)
		}
	}
}

func TestAllowed_UnknownIsDenied(t *testing.T) {
	assert.False(t, Allowed(Role("owner"), ActionBookAppointment))
	assert.False(t, Allowed(RoleAdmin, Action("drop_tables")))
	assert.False(t, Allowed("", ActionUploadSkinReport))
}

func TestRolesFor_ReturnsCopy(t *testing.T) {
	roles := RolesFor(ActionManageRoles)
	require.Equal(t, []Role{RoleSuperadmin}, roles)

	roles[0] = RoleUser
	assert.False(t, Allowed(RoleUser, ActionManageRoles))
}

func TestParseRole(t *testing.T) {
	r, ok := ParseRole("  Cosmetologist ")
	assert.True(t, ok)
	assert.Equal(t, RoleCosmetologist, r)

	_, ok = ParseRole("owner")
	assert.False(t, ok)
}

// ======================================================
// CAN ACCESS
// ======================================================

func TestCanAccess_Owner(t *testing.T) {
	p := &probe{}
	owner := principal(RoleUser)

	d := CanAccess(context.Background(), owner, Resource{OwnerID: owner.ID, Kind: KindSkinReport}, p)

	assert.True(t, d.Allowed)
	assert.Equal(t, ReasonOwner, d.Reason)
	assert.Zero(t, p.calls)
}

func TestCanAccess_AdminOverride(t *testing.T) {
	p := &probe{}

	d := CanAccess(context.Background(), principal(RoleAdmin), Resource{OwnerID: uuid.New()}, p)

	assert.True(t, d.Allowed)
	assert.Equal(t, ReasonAdminOverride, d.Reason)
	assert.Zero(t, p.calls)
}

func TestCanAccess_SuperadminHasNoReadOverride(t *testing.T) {
	d := CanAccess(context.Background(), principal(RoleSuperadmin), Resource{OwnerID: uuid.New()}, &probe{})

	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonRoleNotPermitted, d.Reason)
}

func TestCanAccess_OtherUserDenied(t *testing.T) {
	p := &probe{}

	d := CanAccess(context.Background(), principal(RoleUser), Resource{OwnerID: uuid.New()}, p)

	assert.False(t, d.Allowed)
	assert.Zero(t, p.calls)
}

func TestCanAccess_AssociatedCosmetologist(t *testing.T) {
	cosmo := principal(RoleCosmetologist)
	owner := uuid.New()
	p := &probe{pairs: map[[2]uuid.UUID]bool{{cosmo.ID, owner}: true}}

	d := CanAccess(context.Background(), cosmo, Resource{OwnerID: owner, Kind: KindRecommendation}, p)

	assert.True(t, d.Allowed)
	assert.Equal(t, ReasonAssociated, d.Reason)
	assert.Equal(t, 1, p.calls)
}

func TestCanAccess_UnassociatedCosmetologist(t *testing.T) {
	cosmo := principal(RoleCosmetologist)
	p := &probe{pairs: map[[2]uuid.UUID]bool{{cosmo.ID, uuid.New()}: true}}

	d := CanAccess(context.Background(), cosmo, Resource{OwnerID: uuid.New()}, p)

	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonNotAssociated, d.Reason)
}

func TestCanAccess_ProbeFailureDenies(t *testing.T) {
	p := &probe{err: errors.New("connection refused")}

	d := CanAccess(context.Background(), principal(RoleCosmetologist), Resource{OwnerID: uuid.New()}, p)

	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonProbeUnavailable, d.Reason)
}

func TestCanAccess_NilProbeDenies(t *testing.T) {
	d := CanAccess(context.Background(), principal(RoleCosmetologist), Resource{OwnerID: uuid.New()}, nil)

	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonProbeUnavailable, d.Reason)
}

func TestCanAccess_Anonymous(t *testing.T) {
	d := CanAccess(context.Background(), Principal{}, Resource{OwnerID: uuid.Nil}, &probe{})

	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonAnonymous, d.Reason)
}

func TestCanAccess_ProbeFunc(t *testing.T) {
	cosmo := principal(RoleCosmetologist)
	fn := ProbeFunc(func(_ context.Context, c, u uuid.UUID) (bool, error) {
		return c == cosmo.ID, nil
	})

	assert.True(t, CanAccess(context.Background(), cosmo, Resource{OwnerID: uuid.New()}, fn).Allowed)
}

// ======================================================
// CAN AUTHOR
// ======================================================

func TestCanAuthor(t *testing.T) {
	assert.True(t, CanAuthor(principal(RoleCosmetologist), ActionCreateRecommendation).Allowed)
	assert.True(t, CanAuthor(principal(RoleAdmin), ActionCreateRecommendation).Allowed)

	d := CanAuthor(principal(RoleUser), ActionCreateRecommendation)
	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonRoleNotPermitted, d.Reason)

	d = CanAuthor(Principal{Role: RoleAdmin}, ActionCreateRecommendation)
	assert.Equal(t, ReasonAnonymous, d.Reason)
}

func TestDecisionErr(t *testing.T) {
	assert.NoError(t, Allow(ReasonOwner).Err())

	err := Deny(ReasonNotAssociated).Err()
	require.Error(t, err)
	assert.True(t, httperr.Is(err, "access_denied"))
	assert.True(t, httperr.IsKind(err, httperr.KindAuthorization))
	assert.NotContains(t, err.Error(), ReasonNotAssociated)
}
