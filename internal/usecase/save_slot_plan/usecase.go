package save_slot_plan

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TurfService/internal/domain"
	sportRepo "github.com/m04kA/SMC-TurfService/internal/infra/storage/sport"
	turfRepo "github.com/m04kA/SMC-TurfService/internal/infra/storage/turf"
	"github.com/m04kA/SMC-TurfService/internal/service/planner"
	"github.com/m04kA/SMC-TurfService/pkg/ptr"
)

// UseCase use case сохранения плана слотов
type UseCase struct {
	turfRepo        TurfRepository
	sportRepo       SportRepository
	scheduleRepo    ScheduleRepository
	txManager       TransactionManager
	cache           SlotsCache
	mirror          LegacyMirror
	metrics         MetricsRecorder
	maxRangesPerDay int
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
// cache, mirror и metrics опциональны (nil - не используются)
func NewUseCase(
	turfRepo TurfRepository,
	sportRepo SportRepository,
	scheduleRepo ScheduleRepository,
	txManager TransactionManager,
	cache SlotsCache,
	mirror LegacyMirror,
	metrics MetricsRecorder,
	maxRangesPerDay int,
	logger Logger,
) *UseCase {
	return &UseCase{
		turfRepo:        turfRepo,
		sportRepo:       sportRepo,
		scheduleRepo:    scheduleRepo,
		txManager:       txManager,
		cache:           cache,
		mirror:          mirror,
		metrics:         metrics,
		maxRangesPerDay: maxRangesPerDay,
		logger:          logger,
	}
}

// Execute сохраняет план: по одному расписанию на пару (день, интервал), каждое в своей транзакции
// Ошибка одного интервала попадает в отчет и не останавливает остальные дни
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SaveSlotPlan: owner=%s, turf=%s, sport=%s, days=%d",
		req.OwnerID, req.Config.TurfID, req.Config.SportID, len(req.Config.Days))

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.maxRangesPerDay); err != nil {
		uc.logger.Warn("SaveSlotPlan: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем, что площадка принадлежит владельцу
	turf, err := uc.turfRepo.GetByID(ctx, req.Config.TurfID)
	if err != nil {
		if errors.Is(err, turfRepo.ErrTurfNotFound) {
			uc.logger.Warn("SaveSlotPlan: turf id=%s not found", req.Config.TurfID)
			return nil, ErrTurfNotFound
		}
		uc.logger.Error("SaveSlotPlan: failed to get turf id=%s: %v", req.Config.TurfID, err)
		return nil, fmt.Errorf("%w: failed to get turf: %v", ErrInternal, err)
	}
	if !turf.IsOwnedBy(req.OwnerID) {
		uc.logger.Warn("SaveSlotPlan: owner=%s has no access to turf=%s", req.OwnerID, turf.ID)
		return nil, ErrAccessDenied
	}

	// 3. Проверяем, что вид спорта относится к площадке
	sport, err := uc.sportRepo.GetByID(ctx, req.Config.SportID)
	if err != nil {
		if errors.Is(err, sportRepo.ErrSportNotFound) {
			uc.logger.Warn("SaveSlotPlan: sport id=%s not found", req.Config.SportID)
			return nil, ErrSportNotFound
		}
		uc.logger.Error("SaveSlotPlan: failed to get sport id=%s: %v", req.Config.SportID, err)
		return nil, fmt.Errorf("%w: failed to get sport: %v", ErrInternal, err)
	}
	if sport.TurfID != turf.ID {
		uc.logger.Warn("SaveSlotPlan: sport id=%s does not belong to turf=%s", sport.ID, turf.ID)
		return nil, ErrSportNotFound
	}

	// 4. Строим расписания (дни в порядке недели) и сохраняем по одному
	resp := &Response{
		TurfID:  req.Config.TurfID,
		SportID: req.Config.SportID,
		Days:    make([]DayResult, 0, len(req.Config.Days)),
	}

	schedules := planner.BuildSchedules(req.Config)
	for start := 0; start < len(schedules); {
		end := start
		for end < len(schedules) && schedules[end].Day == schedules[start].Day {
			end++
		}

		resp.Days = append(resp.Days, uc.saveDay(ctx, schedules[start:end], resp))
		start = end
	}

	uc.logger.Info("SaveSlotPlan: turf=%s, sport=%s: saved=%d, skipped=%d, failed=%d, slots=%d",
		resp.TurfID, resp.SportID, resp.SavedSchedules, resp.SkippedRanges, resp.FailedRanges, resp.SavedSlots)

	return resp, nil
}

// saveDay сохраняет все интервалы одного дня и сбрасывает кэш списка слотов этого дня
func (uc *UseCase) saveDay(ctx context.Context, schedules []domain.SlotSchedule, resp *Response) DayResult {
	day := schedules[0].Day
	result := DayResult{Day: day, Ranges: make([]RangeResult, 0, len(schedules))}

	saved, failed := 0, 0
	for i := range schedules {
		rangeResult := uc.saveRange(ctx, &schedules[i])

		switch rangeResult.Status {
		case StatusSaved:
			saved++
			resp.SavedSchedules++
			resp.SavedSlots += rangeResult.SlotsCount
		case StatusSkipped:
			resp.SkippedRanges++
		case StatusFailed:
			failed++
			resp.FailedRanges++
		}

		result.Ranges = append(result.Ranges, rangeResult)
	}

	result.Status = dayStatus(saved, failed)

	if saved > 0 && uc.cache != nil {
		if err := uc.cache.Invalidate(ctx, schedules[0].TurfID, schedules[0].SportID, day); err != nil {
			uc.logger.Warn("SaveSlotPlan: failed to invalidate slots cache for %s: %v", day, err)
		}
	}

	return result
}

func (uc *UseCase) saveRange(ctx context.Context, schedule *domain.SlotSchedule) RangeResult {
	result := RangeResult{
		StartTime:  schedule.StartTime,
		EndTime:    schedule.EndTime,
		SlotsCount: len(schedule.Slots),
	}

	// 4.1. Интервал без слотов не сохраняем
	if len(schedule.Slots) == 0 {
		uc.logger.Warn("SaveSlotPlan: %s %s-%s produces no slots (duration=%d), skipped",
			schedule.Day, schedule.StartTime, schedule.EndTime, schedule.SlotDurationMinutes)
		result.Status = StatusSkipped
		uc.record(StatusSkipped, schedule.Day, 0)
		return result
	}

	// 4.2. Расписание и его слоты в одной транзакции
	var saved *domain.SlotSchedule
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		created, err := uc.scheduleRepo.SaveSchedule(txCtx, schedule)
		if err != nil {
			return err
		}
		saved = created
		return nil
	})
	if err != nil {
		uc.logger.Error("SaveSlotPlan: failed to save %s %s-%s: %v",
			schedule.Day, schedule.StartTime, schedule.EndTime, err)
		result.Status = StatusFailed
		result.Error = fmt.Sprintf("failed to save schedule: %v", err)
		uc.record(StatusFailed, schedule.Day, 0)
		return result
	}

	result.Status = StatusSaved
	result.ScheduleID = ptr.Ptr(saved.ID)
	uc.record(StatusSaved, schedule.Day, len(saved.Slots))

	// 4.3. Зеркалирование не влияет на результат сохранения
	if uc.mirror != nil {
		result.Mirrored = uc.mirror.PushScheduleWithGracefulDegradation(ctx, saved) == nil
	}

	return result
}

func (uc *UseCase) record(status string, day domain.Weekday, slots int) {
	if uc.metrics == nil {
		return
	}
	uc.metrics.IncSchedulesSaved(status)
	if slots > 0 {
		uc.metrics.AddSlotsSaved(day.String(), slots)
	}
}

func dayStatus(saved, failed int) string {
	switch {
	case failed == 0 && saved > 0:
		return DayStatusSaved
	case failed > 0 && saved > 0:
		return DayStatusPartial
	case failed > 0:
		return DayStatusFailed
	default:
		return DayStatusSkipped
	}
}
