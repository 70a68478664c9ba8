package lead

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"bura/internal/content"
	"bura/internal/phone"
)

// SubmitInput is a validated submission.
type SubmitInput struct {
	Name     string
	Phone    string
	FormData map[string]any
	Flow     string
}

type Service struct {
	repo    Repository
	logger  *zap.Logger
	newSlug func() (string, error)
	now     func() time.Time
}

// NewService wires the lead service. A nil repo means no store is
// configured; every call then fails with ErrNotConfigured.
func NewService(repo Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		repo:    repo,
		logger:  logger,
		newSlug: GenerateSlug,
		now:     time.Now,
	}
}

func (s *Service) Configured() bool {
	return s.repo != nil
}

// Submit normalizes the phone, assigns a plan id and stores the lead.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (*Lead, error) {
	if !s.Configured() {
		leadsSubmitted.WithLabelValues(resultUnconfigured).Inc()
		return nil, ErrNotConfigured
	}

	normalized, err := phone.Normalize(in.Phone)
	if err != nil {
		leadsSubmitted.WithLabelValues(resultInvalid).Inc()
		return nil, fmt.Errorf("%w: %w", ErrInvalidPhone, err)
	}

	slug, err := s.newSlug()
	if err != nil {
		leadsSubmitted.WithLabelValues(resultFailed).Inc()
		s.logger.Error("plan id generation failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrPersist, err)
	}

	form, err := json.Marshal(in.FormData)
	if err != nil {
		leadsSubmitted.WithLabelValues(resultFailed).Inc()
		return nil, fmt.Errorf("%w: encode form data: %w", ErrPersist, err)
	}

	l := &Lead{
		Name:      in.Name,
		Phone:     normalized,
		FormData:  datatypes.JSON(form),
		PlanID:    slug,
		Flow:      in.Flow,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Create(ctx, l); err != nil {
		leadsSubmitted.WithLabelValues(resultFailed).Inc()
		if errors.Is(err, ErrSlugCollision) {
			s.logger.Error("plan id collision", zap.String("plan_id", slug), zap.Error(err))
		} else {
			s.logger.Error("lead insert failed", zap.String("flow", in.Flow), zap.Error(err))
		}
		return nil, fmt.Errorf("%w: %w", ErrPersist, err)
	}

	leadsSubmitted.WithLabelValues(resultSaved).Inc()
	s.logger.Info("lead saved",
		zap.Int64("lead_id", l.ID),
		zap.String("plan_id", l.PlanID),
		zap.String("flow", l.Flow),
	)
	return l, nil
}

// Plan assembles the results page for the lead stored under slug.
func (s *Service) Plan(ctx context.Context, slug string) (*content.Plan, error) {
	if !s.Configured() {
		return nil, ErrNotConfigured
	}
	l, err := s.repo.GetByPlanID(ctx, slug)
	if err != nil {
		return nil, err
	}
	a, err := l.Answers()
	if err != nil {
		return nil, fmt.Errorf("decode form data for %s: %w", slug, err)
	}
	plan := content.BuildPlan(a.PlanInput())
	return &plan, nil
}

// List pages through stored leads, newest first.
func (s *Service) List(ctx context.Context, limit, offset int) (*LeadListResponse, error) {
	if !s.Configured() {
		return nil, ErrNotConfigured
	}
	leads, total, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return &LeadListResponse{Leads: leads, Total: total, Limit: limit, Offset: offset}, nil
}
