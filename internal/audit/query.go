package audit

import (
	"context"
	"time"

	"github.com/BruksfildServices01/studio-booking/internal/models"
)

type Filter struct {
	Action string
	Entity string
	From   *time.Time
	To     *time.Time

	Page  int
	Limit int
}

func (f Filter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// List returns one page of audit rows, newest first, and the total count.
func (l *Logger) List(ctx context.Context, f Filter) ([]models.AuditLog, int64, error) {
	q := l.db.WithContext(ctx).Model(&models.AuditLog{})

	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if f.Entity != "" {
		q = q.Where("entity = ?", f.Entity)
	}
	if f.From != nil {
		q = q.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("created_at < ?", *f.To)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Limit(f.Limit).
		Offset(f.Offset()).
		Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}
