package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TurfService/internal/domain"
	sportRepo "github.com/m04kA/SMC-TurfService/internal/infra/storage/sport"
	turfRepo "github.com/m04kA/SMC-TurfService/internal/infra/storage/turf"
	"github.com/m04kA/SMC-TurfService/internal/service/catalog/models"
)

// Service сервис каталога: площадки, виды спорта и базовые цены владельца
type Service struct {
	turfRepo  TurfRepository
	sportRepo SportRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(turfRepo TurfRepository, sportRepo SportRepository, logger Logger) *Service {
	return &Service{
		turfRepo:  turfRepo,
		sportRepo: sportRepo,
		logger:    logger,
	}
}

// CreateTurf создает площадку владельца
func (s *Service) CreateTurf(ctx context.Context, req *models.CreateTurfRequest) (*models.TurfResponse, error) {
	s.logger.Info("CreateTurf: creating turf name=%q for owner=%s", req.Name, req.OwnerID)

	// 1. Валидируем форму
	opening, closing, err := validateTurf(req)
	if err != nil {
		s.logger.Warn("CreateTurf: validation failed: %v", err)
		return nil, err
	}

	// 2. Сохраняем
	created, err := s.turfRepo.Create(ctx, req.ToDomainTurf(opening, closing))
	if err != nil {
		s.logger.Error("CreateTurf: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateTurf - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateTurf: successfully created turf id=%s", created.ID)
	return models.FromDomainTurf(created), nil
}

// GetOwnerTurfs возвращает все площадки владельца
func (s *Service) GetOwnerTurfs(ctx context.Context, ownerID uuid.UUID) ([]*models.TurfResponse, error) {
	s.logger.Info("GetOwnerTurfs: fetching turfs for owner=%s", ownerID)

	turfs, err := s.turfRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		s.logger.Error("GetOwnerTurfs: repository error for owner=%s: %v", ownerID, err)
		return nil, fmt.Errorf("%w: GetOwnerTurfs - repository error: %v", ErrInternal, err)
	}

	result := make([]*models.TurfResponse, 0, len(turfs))
	for _, t := range turfs {
		result = append(result, models.FromDomainTurf(t))
	}

	s.logger.Info("GetOwnerTurfs: found %d turfs for owner=%s", len(result), ownerID)
	return result, nil
}

// CreateSport добавляет вид спорта на площадку владельца
func (s *Service) CreateSport(ctx context.Context, req *models.CreateSportRequest) (*models.SportResponse, error) {
	s.logger.Info("CreateSport: adding sport name=%q to turf=%s by owner=%s", req.Name, req.TurfID, req.OwnerID)

	// 1. Валидация
	if err := validateSport(req); err != nil {
		s.logger.Warn("CreateSport: validation failed: %v", err)
		return nil, err
	}
	isActive, err := parseActive(req.IsActive)
	if err != nil {
		s.logger.Warn("CreateSport: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем права на площадку
	if _, err := s.getOwnedTurf(ctx, "CreateSport", req.OwnerID, req.TurfID); err != nil {
		return nil, err
	}

	// 3. Сохраняем
	created, err := s.sportRepo.Create(ctx, &domain.Sport{
		TurfID:      req.TurfID,
		Name:        trimmed(req.Name),
		Description: trimmed(req.Description),
		IsActive:    isActive,
		CreatedBy:   req.OwnerID,
	})
	if err != nil {
		if errors.Is(err, sportRepo.ErrDuplicateSport) {
			s.logger.Warn("CreateSport: sport %q already exists on turf=%s", req.Name, req.TurfID)
			return nil, ErrSportAlreadyExists
		}
		s.logger.Error("CreateSport: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateSport - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateSport: successfully created sport id=%s", created.ID)
	return models.FromDomainSport(created), nil
}

// GetTurfSports возвращает виды спорта площадки владельца
func (s *Service) GetTurfSports(ctx context.Context, ownerID, turfID uuid.UUID) ([]*models.SportResponse, error) {
	s.logger.Info("GetTurfSports: fetching sports for turf=%s by owner=%s", turfID, ownerID)

	if _, err := s.getOwnedTurf(ctx, "GetTurfSports", ownerID, turfID); err != nil {
		return nil, err
	}

	sports, err := s.sportRepo.GetByTurf(ctx, turfID)
	if err != nil {
		s.logger.Error("GetTurfSports: repository error for turf=%s: %v", turfID, err)
		return nil, fmt.Errorf("%w: GetTurfSports - repository error: %v", ErrInternal, err)
	}

	result := make([]*models.SportResponse, 0, len(sports))
	for _, sp := range sports {
		result = append(result, models.FromDomainSport(sp))
	}

	return result, nil
}

// CreatePricing устанавливает базовую цену за час для вида спорта на площадке
func (s *Service) CreatePricing(ctx context.Context, req *models.CreatePricingRequest) (*models.PricingResponse, error) {
	s.logger.Info("CreatePricing: turf=%s, sport=%s, price=%.2f by owner=%s",
		req.TurfID, req.SportID, req.PricePerHour, req.OwnerID)

	// 1. Валидация
	if req.PricePerHour <= 0 {
		s.logger.Warn("CreatePricing: non-positive price %.2f", req.PricePerHour)
		return nil, fmt.Errorf("%w: pricePerHour must be positive", ErrInvalidInput)
	}
	currency, err := normalizeCurrency(req.Currency)
	if err != nil {
		s.logger.Warn("CreatePricing: validation failed: %v", err)
		return nil, err
	}
	isActive, err := parseActive(req.IsActive)
	if err != nil {
		s.logger.Warn("CreatePricing: validation failed: %v", err)
		return nil, err
	}

	// 2. Площадка владельца и спорт этой площадки
	if _, err := s.getOwnedTurf(ctx, "CreatePricing", req.OwnerID, req.TurfID); err != nil {
		return nil, err
	}
	if err := s.checkSportOnTurf(ctx, "CreatePricing", req.TurfID, req.SportID); err != nil {
		return nil, err
	}

	// 3. Сохраняем
	created, err := s.sportRepo.CreatePricing(ctx, &domain.Pricing{
		TurfID:       req.TurfID,
		SportID:      req.SportID,
		PricePerHour: req.PricePerHour,
		Currency:     currency,
		IsActive:     isActive,
		CreatedBy:    req.OwnerID,
	})
	if err != nil {
		s.logger.Error("CreatePricing: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreatePricing - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreatePricing: successfully created pricing id=%s", created.ID)
	return models.FromDomainPricing(created), nil
}

// getOwnedTurf загружает площадку и проверяет, что она принадлежит владельцу
func (s *Service) getOwnedTurf(ctx context.Context, op string, ownerID, turfID uuid.UUID) (*domain.Turf, error) {
	turf, err := s.turfRepo.GetByID(ctx, turfID)
	if err != nil {
		if errors.Is(err, turfRepo.ErrTurfNotFound) {
			s.logger.Warn("%s: turf id=%s not found", op, turfID)
			return nil, ErrTurfNotFound
		}
		s.logger.Error("%s: failed to get turf id=%s: %v", op, turfID, err)
		return nil, fmt.Errorf("%w: %s - failed to get turf: %v", ErrInternal, op, err)
	}

	if !turf.IsOwnedBy(ownerID) {
		s.logger.Warn("%s: owner=%s has no access to turf=%s", op, ownerID, turfID)
		return nil, ErrAccessDenied
	}

	return turf, nil
}

func (s *Service) checkSportOnTurf(ctx context.Context, op string, turfID, sportID uuid.UUID) error {
	sport, err := s.sportRepo.GetByID(ctx, sportID)
	if err != nil {
		if errors.Is(err, sportRepo.ErrSportNotFound) {
			s.logger.Warn("%s: sport id=%s not found", op, sportID)
			return ErrSportNotFound
		}
		s.logger.Error("%s: failed to get sport id=%s: %v", op, sportID, err)
		return fmt.Errorf("%w: %s - failed to get sport: %v", ErrInternal, op, err)
	}

	if sport.TurfID != turfID {
		s.logger.Warn("%s: sport id=%s does not belong to turf=%s", op, sportID, turfID)
		return ErrSportNotFound
	}

	return nil
}
