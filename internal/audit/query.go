package audit

import (
	"context"
	"math"
	"time"

	"github.com/kaagyebi/lumea-api/internal/models"
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 200

	// MaxPage keeps the row offset within 32 bits.
	MaxPage = math.MaxInt32 / MaxPageSize
)

// Query filters the audit trail. Zero values are ignored.
type Query struct {
	Action string
	Entity string
	From   time.Time
	// To is inclusive of the whole day.
	To time.Time

	Page  int
	Limit int
}

// Normalize clamps paging into range.
func (q Query) Normalize() Query {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.Page > MaxPage {
		q.Page = MaxPage
	}
	if q.Limit <= 0 || q.Limit > MaxPageSize {
		q.Limit = DefaultPageSize
	}
	return q
}

// List returns the matching rows, newest first, plus the total count
// before paging.
func (l *Logger) List(ctx context.Context, q Query) ([]models.AuditLog, int64, error) {
	q = q.Normalize()

	tx := l.db.WithContext(ctx).Model(&models.AuditLog{})

	if q.Action != "" {
		tx = tx.Where("action = ?", q.Action)
	}
	if q.Entity != "" {
		tx = tx.Where("entity = ?", q.Entity)
	}
	if !q.From.IsZero() {
		tx = tx.Where("created_at >= ?", q.From)
	}
	if !q.To.IsZero() {
		tx = tx.Where("created_at < ?", q.To.Add(24*time.Hour))
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []models.AuditLog
	err := tx.
		Order("created_at DESC").
		Limit(q.Limit).
		Offset((q.Page - 1) * q.Limit).
		Find(&logs).Error

	return logs, total, err
}
