package appointment

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kaagyebi/lumea-api/internal/domain/access"
	domain "github.com/kaagyebi/lumea-api/internal/domain/appointment"
	"github.com/kaagyebi/lumea-api/internal/models"
)

// ── In-memory appointment repository ────────────────────────────────────────

type stubRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]models.User
	apps  map[uuid.UUID]models.Appointment

	updates int
}

func newStubRepo() *stubRepo {
	return &stubRepo{
		users: make(map[uuid.UUID]models.User),
		apps:  make(map[uuid.UUID]models.Appointment),
	}
}

func (r *stubRepo) addUser(name string, role access.Role) models.User {
	u := models.User{ID: uuid.New(), Name: name, Email: name + "@lumea.test", Role: role}
	r.users[u.ID] = u
	return u
}

func (r *stubRepo) GetUser(_ context.Context, id uuid.UUID) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (r *stubRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ap.ID == uuid.Nil {
		ap.ID = uuid.New()
	}
	stored := *ap
	stored.User = models.User{}
	stored.Cosmetologist = models.User{}
	r.apps[ap.ID] = stored
	return nil
}

func (r *stubRepo) GetAppointment(_ context.Context, id uuid.UUID) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ap, ok := r.apps[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &ap, nil
}

func (r *stubRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := r.apps[ap.ID]
	stored.Status = ap.Status
	stored.Notes = ap.Notes
	r.apps[ap.ID] = stored
	r.updates++
	return nil
}

func (r *stubRepo) ListAppointments(_ context.Context, f domain.ListFilter) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Appointment
	for _, ap := range r.apps {
		owner := ap.UserID
		if f.Scope == domain.ScopeCosmetologist {
			owner = ap.CosmetologistID
		}
		if owner != f.PrincipalID {
			continue
		}
		if f.Status != "" && ap.Status != string(f.Status) {
			continue
		}
		if f.PreloadUser {
			ap.User = r.users[ap.UserID]
		}
		if f.PreloadCosmetologist {
			ap.Cosmetologist = r.users[ap.CosmetologistID]
		}
		out = append(out, ap)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r *stubRepo) IsAssociated(_ context.Context, cosmetologistID, userID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ap := range r.apps {
		if ap.UserID == userID && ap.CosmetologistID == cosmetologistID {
			return true, nil
		}
	}
	return false, nil
}

// compile-time interface check
var _ domain.Repository = (*stubRepo)(nil)
