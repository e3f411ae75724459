package skinreport

import (
	"context"
	"errors"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kaagyebi/lumea-api/internal/analysis"
	"github.com/kaagyebi/lumea-api/internal/domain/access"
	domain "github.com/kaagyebi/lumea-api/internal/domain/skinreport"
	"github.com/kaagyebi/lumea-api/internal/models"
	"github.com/kaagyebi/lumea-api/internal/storage"
)

// ── In-memory skin report repository ────────────────────────────────────────

type pair struct{ cosmetologist, user uuid.UUID }

type stubRepo struct {
	mu      sync.Mutex
	users   map[uuid.UUID]models.User
	reports map[uuid.UUID]models.SkinReport
	links   map[pair]bool

	probeErr   error
	probeCalls int
}

func newStubRepo() *stubRepo {
	return &stubRepo{
		users:   make(map[uuid.UUID]models.User),
		reports: make(map[uuid.UUID]models.SkinReport),
		links:   make(map[pair]bool),
	}
}

func (r *stubRepo) addUser(name string, role access.Role) models.User {
	u := models.User{ID: uuid.New(), Name: name, Email: name + "@lumea.test", Role: role}
	r.users[u.ID] = u
	return u
}

func (r *stubRepo) addReport(owner uuid.UUID, at time.Time) models.SkinReport {
	rep := models.SkinReport{
		ID:        uuid.New(),
		UserID:    owner,
		Analysis:  analysis.WithDefaults(models.SkinAnalysis{}),
		CreatedAt: at,
	}
	r.reports[rep.ID] = rep
	return rep
}

func (r *stubRepo) associate(cosmetologist, user uuid.UUID) {
	r.links[pair{cosmetologist, user}] = true
}

func (r *stubRepo) GetUser(_ context.Context, id uuid.UUID) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (r *stubRepo) CreateReport(_ context.Context, rep *models.SkinReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if rep.ID == uuid.Nil {
		rep.ID = uuid.New()
	}
	rep.CreatedAt = time.Now()
	r.reports[rep.ID] = *rep
	return nil
}

func (r *stubRepo) GetReport(_ context.Context, id uuid.UUID) (*models.SkinReport, error) {
	rep, ok := r.reports[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	rep.User = r.users[rep.UserID]
	return &rep, nil
}

func (r *stubRepo) FindReportForUser(_ context.Context, reportID, userID uuid.UUID) (*models.SkinReport, error) {
	rep, ok := r.reports[reportID]
	if !ok || rep.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	return &rep, nil
}

func (r *stubRepo) UpdateReport(_ context.Context, rep *models.SkinReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports[rep.ID] = *rep
	return nil
}

func (r *stubRepo) ListReportsByUser(_ context.Context, userID uuid.UUID) ([]models.SkinReport, error) {
	var out []models.SkinReport
	for _, rep := range r.reports {
		if rep.UserID == userID {
			out = append(out, rep)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *stubRepo) IsAssociated(_ context.Context, cosmetologistID, userID uuid.UUID) (bool, error) {
	r.probeCalls++
	if r.probeErr != nil {
		return false, r.probeErr
	}
	return r.links[pair{cosmetologistID, userID}], nil
}

var _ domain.Repository = (*stubRepo)(nil)

// ── Collaborators ───────────────────────────────────────────────────────────

type memStorage struct {
	objects map[string][]byte
	deleted []string
	failErr error
}

func newMemStorage() *memStorage {
	return &memStorage{objects: make(map[string][]byte)}
}

func (s *memStorage) Upload(_ context.Context, folder, filename, _ string, data io.Reader) (storage.Object, error) {
	if s.failErr != nil {
		return storage.Object{}, s.failErr
	}
	b, err := io.ReadAll(data)
	if err != nil {
		return storage.Object{}, err
	}
	key := folder + "/" + uuid.NewString() + "_" + filename
	s.objects[key] = b
	return storage.Object{Key: key, URL: "https://cdn.lumea.test/" + key}, nil
}

func (s *memStorage) Delete(_ context.Context, key string) error {
	delete(s.objects, key)
	s.deleted = append(s.deleted, key)
	return nil
}

var _ storage.Storage = (*memStorage)(nil)

type fakeAnalyzer struct {
	result models.SkinAnalysis
	err    error
	seen   analysis.Image
}

func (a *fakeAnalyzer) Analyze(_ context.Context, img analysis.Image) (models.SkinAnalysis, error) {
	a.seen = img
	return a.result, a.err
}

var errUnavailable = errors.New("unavailable")
