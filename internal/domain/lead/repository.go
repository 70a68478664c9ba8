package lead

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Repository stores leads.
type Repository interface {
	Create(ctx context.Context, l *Lead) error
	GetByPlanID(ctx context.Context, planID string) (*Lead, error)
	List(ctx context.Context, limit, offset int) ([]Lead, int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create inserts l. A duplicate plan id comes back wrapped in
// ErrSlugCollision.
func (r *repository) Create(ctx context.Context, l *Lead) error {
	err := r.db.WithContext(ctx).Create(l).Error
	if err != nil && isUniqueViolation(err) {
		return fmt.Errorf("%w: %w", ErrSlugCollision, err)
	}
	return err
}

func (r *repository) GetByPlanID(ctx context.Context, planID string) (*Lead, error) {
	var l Lead
	err := r.db.WithContext(ctx).Where("plan_id = ?", planID).First(&l).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrLeadNotFound
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// List returns a page of leads, newest first, with the total row count.
func (r *repository) List(ctx context.Context, limit, offset int) ([]Lead, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&Lead{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	leads := make([]Lead, 0, limit)
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&leads).Error
	if err != nil {
		return nil, 0, err
	}
	return leads, total, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// modernc sqlite: "UNIQUE constraint failed: leads.plan_id"
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint")
}
