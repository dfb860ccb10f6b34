package slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TurfService/internal/domain"
	slotRepo "github.com/m04kA/SMC-TurfService/internal/infra/storage/slot"
	sportRepo "github.com/m04kA/SMC-TurfService/internal/infra/storage/sport"
	turfRepo "github.com/m04kA/SMC-TurfService/internal/infra/storage/turf"
	"github.com/m04kA/SMC-TurfService/internal/service/slots/models"
)

// Service сервис управления сохраненными слотами
type Service struct {
	slotRepo  SlotRepository
	turfRepo  TurfRepository
	sportRepo SportRepository
	cache     SlotsCache
	logger    Logger
}

// NewService создает новый экземпляр сервиса слотов
// cache может быть nil - тогда списки всегда читаются из БД
func NewService(
	slotRepo SlotRepository,
	turfRepo TurfRepository,
	sportRepo SportRepository,
	cache SlotsCache,
	logger Logger,
) *Service {
	return &Service{
		slotRepo:  slotRepo,
		turfRepo:  turfRepo,
		sportRepo: sportRepo,
		cache:     cache,
		logger:    logger,
	}
}

// GetByTurfSportDay возвращает слоты площадки и вида спорта на день недели
// Сначала смотрит в кэш, при промахе читает из БД и кладет результат в кэш
func (s *Service) GetByTurfSportDay(ctx context.Context, req *models.GetDaySlotsRequest) ([]*models.SlotResponse, error) {
	s.logger.Info("GetByTurfSportDay: turf=%s, sport=%s, day=%s by owner=%s", req.TurfID, req.SportID, req.Day, req.OwnerID)

	// 1. Валидация
	if !req.Day.IsValid() {
		s.logger.Warn("GetByTurfSportDay: invalid day %q", req.Day)
		return nil, fmt.Errorf("%w: unknown day %q", ErrInvalidInput, req.Day)
	}

	// 2. Права на площадку и принадлежность спорта
	if err := s.checkTurfOwner(ctx, "GetByTurfSportDay", req.OwnerID, req.TurfID); err != nil {
		return nil, err
	}
	if err := s.checkSportOnTurf(ctx, "GetByTurfSportDay", req.TurfID, req.SportID); err != nil {
		return nil, err
	}

	// 3. Кэш
	if s.cache != nil {
		if cached, found := s.cache.Get(ctx, req.TurfID, req.SportID, req.Day); found {
			s.logger.Info("GetByTurfSportDay: cache hit, %d slots", len(cached))
			return models.FromDomainSlots(cached), nil
		}
	}

	// 4. БД
	slots, err := s.slotRepo.GetByTurfSportDay(ctx, req.TurfID, req.SportID, req.Day)
	if err != nil {
		s.logger.Error("GetByTurfSportDay: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetByTurfSportDay - repository error: %v", ErrInternal, err)
	}

	if s.cache != nil {
		// ошибка кэша не влияет на ответ
		_ = s.cache.Set(ctx, req.TurfID, req.SportID, req.Day, slots)
	}

	s.logger.Info("GetByTurfSportDay: found %d slots", len(slots))
	return models.FromDomainSlots(slots), nil
}

// ToggleStatus включает или выключает слот
func (s *Service) ToggleStatus(ctx context.Context, req *models.ToggleStatusRequest) (*models.SlotResponse, error) {
	s.logger.Info("ToggleStatus: slot=%s, isActive=%q by owner=%s", req.SlotID, req.IsActive, req.OwnerID)

	flag, err := domain.ParseActiveFlag(req.IsActive)
	if err != nil {
		s.logger.Warn("ToggleStatus: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if _, err := s.getOwnedSlot(ctx, "ToggleStatus", req.OwnerID, req.SlotID); err != nil {
		return nil, err
	}

	updated, err := s.slotRepo.UpdateStatus(ctx, req.SlotID, flag.Bool())
	if err != nil {
		return nil, s.mapUpdateError("ToggleStatus", req.SlotID, err)
	}

	s.invalidate(ctx, updated)

	s.logger.Info("ToggleStatus: slot=%s is now %s", updated.ID, flag)
	return models.FromDomainSlot(updated), nil
}

// GetPrice возвращает цену слота
func (s *Service) GetPrice(ctx context.Context, ownerID, slotID uuid.UUID) (*models.PriceResponse, error) {
	s.logger.Info("GetPrice: slot=%s by owner=%s", slotID, ownerID)

	slot, err := s.getOwnedSlot(ctx, "GetPrice", ownerID, slotID)
	if err != nil {
		return nil, err
	}

	return &models.PriceResponse{SlotID: slot.ID, Price: slot.Price}, nil
}

// UpdatePrice меняет цену одного слота (не меньше MinSlotPrice)
func (s *Service) UpdatePrice(ctx context.Context, req *models.UpdatePriceRequest) (*models.PriceResponse, error) {
	s.logger.Info("UpdatePrice: slot=%s, price=%.2f by owner=%s", req.SlotID, req.Price, req.OwnerID)

	if req.Price < domain.MinSlotPrice {
		s.logger.Warn("UpdatePrice: price %.2f is below minimum", req.Price)
		return nil, fmt.Errorf("%w: price must be at least %d", ErrInvalidInput, domain.MinSlotPrice)
	}

	if _, err := s.getOwnedSlot(ctx, "UpdatePrice", req.OwnerID, req.SlotID); err != nil {
		return nil, err
	}

	updated, err := s.slotRepo.UpdatePrice(ctx, req.SlotID, req.Price)
	if err != nil {
		return nil, s.mapUpdateError("UpdatePrice", req.SlotID, err)
	}

	s.invalidate(ctx, updated)

	s.logger.Info("UpdatePrice: slot=%s price updated to %.2f", updated.ID, updated.Price)
	return &models.PriceResponse{SlotID: updated.ID, Price: updated.Price}, nil
}

// getOwnedSlot загружает слот и проверяет владельца через его площадку
func (s *Service) getOwnedSlot(ctx context.Context, op string, ownerID, slotID uuid.UUID) (*domain.Slot, error) {
	slot, err := s.slotRepo.GetByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("%s: slot id=%s not found", op, slotID)
			return nil, ErrSlotNotFound
		}
		s.logger.Error("%s: failed to get slot id=%s: %v", op, slotID, err)
		return nil, fmt.Errorf("%w: %s - failed to get slot: %v", ErrInternal, op, err)
	}

	if err := s.checkTurfOwner(ctx, op, ownerID, slot.TurfID); err != nil {
		return nil, err
	}

	return slot, nil
}

func (s *Service) checkTurfOwner(ctx context.Context, op string, ownerID, turfID uuid.UUID) error {
	turf, err := s.turfRepo.GetByID(ctx, turfID)
	if err != nil {
		if errors.Is(err, turfRepo.ErrTurfNotFound) {
			s.logger.Warn("%s: turf id=%s not found", op, turfID)
			return ErrTurfNotFound
		}
		s.logger.Error("%s: failed to get turf id=%s: %v", op, turfID, err)
		return fmt.Errorf("%w: %s - failed to get turf: %v", ErrInternal, op, err)
	}

	if !turf.IsOwnedBy(ownerID) {
		s.logger.Warn("%s: owner=%s has no access to turf=%s", op, ownerID, turfID)
		return ErrAccessDenied
	}

	return nil
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

func (s *Service) mapUpdateError(op string, slotID uuid.UUID, err error) error {
	if errors.Is(err, slotRepo.ErrSlotNotFound) {
		s.logger.Warn("%s: slot id=%s disappeared", op, slotID)
		return ErrSlotNotFound
	}
	s.logger.Error("%s: repository error for slot id=%s: %v", op, slotID, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}

func (s *Service) invalidate(ctx context.Context, slot *domain.Slot) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, slot.TurfID, slot.SportID, slot.Day); err != nil {
		s.logger.Warn("failed to invalidate slots cache for turf=%s, sport=%s, day=%s: %v",
			slot.TurfID, slot.SportID, slot.Day, err)
	}
}
