package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/vlkr/booking_api/internal/datetime"
	"github.com/vlkr/booking_api/internal/model"
	"github.com/vlkr/booking_api/internal/repository/base"
)

// CatalogService manages services and their weekly timeslot templates.
type CatalogService struct {
	serviceRepo  ServiceStore
	templateRepo TemplateStore
	logger       *zap.Logger
}

func NewCatalogService(serviceRepo ServiceStore, templateRepo TemplateStore, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		serviceRepo:  serviceRepo,
		templateRepo: templateRepo,
		logger:       logger,
	}
}

func (s *CatalogService) ListServices(ctx context.Context) ([]*model.Service, error) {
	return s.serviceRepo.List(ctx)
}

func (s *CatalogService) GetService(ctx context.Context, id int64) (*model.Service, error) {
	svc, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get service: %w", err)
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}
	return svc, nil
}

func (s *CatalogService) CreateService(ctx context.Context, name string, price, durationMinutes int) (*model.Service, error) {
	if name == "" || durationMinutes <= 0 {
		return nil, ErrMissingField
	}

	svc := &model.Service{
		Name:            name,
		Price:           price,
		DurationMinutes: durationMinutes,
	}

	err := s.serviceRepo.Create(ctx, svc)
	if err != nil {
		if base.IsUniqueViolation(err) {
			return nil, ErrServiceExists
		}
		return nil, fmt.Errorf("create service: %w", err)
	}

	s.logger.Info("Service created",
		zap.Int64("service_id", svc.ID),
		zap.String("name", svc.Name),
	)

	return svc, nil
}

// AddTemplate defines one weekly bookable window for a service.
// (service, weekday, start time) must be unique.
func (s *CatalogService) AddTemplate(ctx context.Context, serviceID int64, weekday int, startAt, endAt string, enabled bool) (*model.TimeslotTemplate, error) {
	if weekday < 0 || weekday > 6 {
		return nil, ErrInvalidWeekday
	}

	start, err := datetime.ParseClock(startAt)
	if err != nil {
		return nil, ErrInvalidClock
	}
	end, err := datetime.ParseClock(endAt)
	if err != nil {
		return nil, ErrInvalidClock
	}
	if end <= start {
		return nil, ErrInvalidWindow
	}

	svc, err := s.serviceRepo.GetByID(ctx, serviceID)
	if err != nil {
		return nil, fmt.Errorf("get service: %w", err)
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}

	template := &model.TimeslotTemplate{
		ServiceID: serviceID,
		Weekday:   weekday,
		StartAt:   start,
		EndAt:     end,
		Enabled:   enabled,
	}

	err = s.templateRepo.Create(ctx, template)
	if err != nil {
		if base.IsUniqueViolation(err) {
			return nil, ErrTemplateExists
		}
		return nil, fmt.Errorf("create template: %w", err)
	}

	s.logger.Info("Timeslot template added",
		zap.Int64("template_id", template.ID),
		zap.Int64("service_id", serviceID),
		zap.Int("weekday", weekday),
		zap.String("start_at", start),
	)

	return template, nil
}
