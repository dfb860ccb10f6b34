package save_slot_plan

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TurfService/internal/domain"
	sportRepo "github.com/m04kA/SMC-TurfService/internal/infra/storage/sport"
	turfRepo "github.com/m04kA/SMC-TurfService/internal/infra/storage/turf"
	"github.com/m04kA/SMC-TurfService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeTurfRepo map[uuid.UUID]*domain.Turf

func (f fakeTurfRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Turf, error) {
	if t, ok := f[id]; ok {
		return t, nil
	}
	return nil, turfRepo.ErrTurfNotFound
}

type fakeSportRepo map[uuid.UUID]*domain.Sport

func (f fakeSportRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Sport, error) {
	if s, ok := f[id]; ok {
		return s, nil
	}
	return nil, sportRepo.ErrSportNotFound
}

type fakeScheduleRepo struct {
	saved  []domain.SlotSchedule
	failOn func(s *domain.SlotSchedule) bool
}

func (f *fakeScheduleRepo) SaveSchedule(_ context.Context, s *domain.SlotSchedule) (*domain.SlotSchedule, error) {
	if f.failOn != nil && f.failOn(s) {
		return nil, errors.New("deadlock detected")
	}
	s.ID = uuid.New()
	f.saved = append(f.saved, *s)
	return s, nil
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakeCache struct {
	invalidated []domain.Weekday
}

func (f *fakeCache) Invalidate(_ context.Context, _, _ uuid.UUID, day domain.Weekday) error {
	f.invalidated = append(f.invalidated, day)
	return nil
}

type fakeMirror struct {
	pushed int
	err    error
}

func (f *fakeMirror) PushScheduleWithGracefulDegradation(context.Context, *domain.SlotSchedule) error {
	f.pushed++
	return f.err
}

type fakeMetrics struct {
	results map[string]int
	slots   map[string]int
}

func (f *fakeMetrics) IncSchedulesSaved(result string)     { f.results[result]++ }
func (f *fakeMetrics) AddSlotsSaved(day string, count int) { f.slots[day] += count }

type fixture struct {
	uc       *UseCase
	repo     *fakeScheduleRepo
	tx       *fakeTxManager
	cache    *fakeCache
	mirror   *fakeMirror
	metrics  *fakeMetrics
	ownerID  uuid.UUID
	turfID   uuid.UUID
	sportID  uuid.UUID
	otherSID uuid.UUID
}

func newFixture() *fixture {
	f := &fixture{
		repo:     &fakeScheduleRepo{},
		tx:       &fakeTxManager{},
		cache:    &fakeCache{},
		mirror:   &fakeMirror{},
		metrics:  &fakeMetrics{results: map[string]int{}, slots: map[string]int{}},
		ownerID:  uuid.New(),
		turfID:   uuid.New(),
		sportID:  uuid.New(),
		otherSID: uuid.New(),
	}

	turfs := fakeTurfRepo{f.turfID: {ID: f.turfID, OwnerID: f.ownerID}}
	sports := fakeSportRepo{
		f.sportID:  {ID: f.sportID, TurfID: f.turfID},
		f.otherSID: {ID: f.otherSID, TurfID: uuid.New()},
	}

	f.uc = NewUseCase(turfs, sports, f.repo, f.tx, f.cache, f.mirror, f.metrics, 8, nopLogger{})
	return f
}

func (f *fixture) config() domain.SlotPlanConfig {
	return domain.SlotPlanConfig{
		TurfID:        f.turfID,
		SportID:       f.sportID,
		StartDate:     time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2026, 11, 30, 0, 0, 0, 0, time.UTC),
		BufferMinutes: 10,
		Days: []domain.DayPlan{
			{
				Day: domain.Wednesday, SlotDurationMinutes: 60, Price: 700,
				TimeRanges: []domain.TimeRange{{StartTime: "18:00", EndTime: "20:00"}},
			},
			{
				Day: domain.Monday, SlotDurationMinutes: 60, Price: 500,
				TimeRanges: []domain.TimeRange{
					{StartTime: "09:00", EndTime: "11:00"},
					{StartTime: "12:00", EndTime: "12:30"}, // короче слота
				},
			},
			{
				Day: domain.Tuesday, SlotDurationMinutes: 30, Price: 300,
				TimeRanges: []domain.TimeRange{
					{StartTime: "06:00", EndTime: "08:00"},
					{StartTime: "10:00", EndTime: "11:00"},
				},
			},
		},
	}
}

func TestUseCase_Execute(t *testing.T) {
	f := newFixture()
	f.repo.failOn = func(s *domain.SlotSchedule) bool {
		return s.Day == domain.Tuesday && s.StartTime == "06:00"
	}

	resp, err := f.uc.Execute(context.Background(), &Request{OwnerID: f.ownerID, Config: f.config()})
	require.NoError(t, err)

	require.Len(t, resp.Days, 3)
	assert.Equal(t, domain.Monday, resp.Days[0].Day)
	assert.Equal(t, DayStatusSaved, resp.Days[0].Status)
	assert.Equal(t, domain.Tuesday, resp.Days[1].Day)
	assert.Equal(t, DayStatusPartial, resp.Days[1].Status)
	assert.Equal(t, domain.Wednesday, resp.Days[2].Day)
	assert.Equal(t, DayStatusSaved, resp.Days[2].Status)

	monday := resp.Days[0].Ranges
	require.Len(t, monday, 2)
	assert.Equal(t, StatusSaved, monday[0].Status)
	assert.NotNil(t, monday[0].ScheduleID)
	assert.True(t, monday[0].Mirrored)
	assert.Equal(t, StatusSkipped, monday[1].Status)
	assert.Nil(t, monday[1].ScheduleID)

	tuesday := resp.Days[1].Ranges
	assert.Equal(t, StatusFailed, tuesday[0].Status)
	assert.Contains(t, tuesday[0].Error, "deadlock")
	assert.Equal(t, StatusSaved, tuesday[1].Status)

	assert.Equal(t, 3, resp.SavedSchedules)
	assert.Equal(t, 1, resp.SkippedRanges)
	assert.Equal(t, 1, resp.FailedRanges)
	assert.True(t, resp.HasFailures())

	// 09:00-11:00 при 60+10: один слот, который заканчивается на границе интервала
	require.Len(t, f.repo.saved, 3)
	assert.Equal(t, []domain.GeneratedSlot{{StartTime: "09:00", EndTime: "11:00"}}, f.repo.saved[0].Slots)
	assert.Equal(t, 500.0, f.repo.saved[0].Price)
	assert.Equal(t, types.TimeString("10:00"), f.repo.saved[1].StartTime)
	assert.Len(t, f.repo.saved[1].Slots, 1)

	assert.Equal(t, 3, resp.SavedSlots)
	assert.Equal(t, 4, f.tx.calls, "каждый непустой интервал в своей транзакции")
	assert.Equal(t, []domain.Weekday{domain.Monday, domain.Tuesday, domain.Wednesday}, f.cache.invalidated)
	assert.Equal(t, 3, f.mirror.pushed)

	assert.Equal(t, 3, f.metrics.results[StatusSaved])
	assert.Equal(t, 1, f.metrics.results[StatusSkipped])
	assert.Equal(t, 1, f.metrics.results[StatusFailed])
	assert.Equal(t, 1, f.metrics.slots["Monday"])
}

func TestUseCase_Execute_WholeDayFails(t *testing.T) {
	f := newFixture()
	f.repo.failOn = func(s *domain.SlotSchedule) bool { return s.Day == domain.Tuesday }

	resp, err := f.uc.Execute(context.Background(), &Request{OwnerID: f.ownerID, Config: f.config()})
	require.NoError(t, err)

	assert.Equal(t, DayStatusFailed, resp.Days[1].Status)
	assert.Equal(t, DayStatusSaved, resp.Days[2].Status, "следующий день сохраняется")
	assert.NotContains(t, f.cache.invalidated, domain.Tuesday)
}

func TestUseCase_Execute_OptionalDependencies(t *testing.T) {
	f := newFixture()
	uc := NewUseCase(
		fakeTurfRepo{f.turfID: {ID: f.turfID, OwnerID: f.ownerID}},
		fakeSportRepo{f.sportID: {ID: f.sportID, TurfID: f.turfID}},
		f.repo, f.tx, nil, nil, nil, 0, nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{OwnerID: f.ownerID, Config: f.config()})
	require.NoError(t, err)
	assert.Equal(t, 4, resp.SavedSchedules)
	assert.False(t, resp.Days[0].Ranges[0].Mirrored)
}

func TestUseCase_Execute_Ownership(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), &Request{OwnerID: uuid.New(), Config: f.config()})
	assert.ErrorIs(t, err, ErrAccessDenied)

	cfg := f.config()
	cfg.TurfID = uuid.New()
	_, err = f.uc.Execute(context.Background(), &Request{OwnerID: f.ownerID, Config: cfg})
	assert.ErrorIs(t, err, ErrTurfNotFound)

	cfg = f.config()
	cfg.SportID = f.otherSID
	_, err = f.uc.Execute(context.Background(), &Request{OwnerID: f.ownerID, Config: cfg})
	assert.ErrorIs(t, err, ErrSportNotFound)

	cfg.SportID = uuid.New()
	_, err = f.uc.Execute(context.Background(), &Request{OwnerID: f.ownerID, Config: cfg})
	assert.ErrorIs(t, err, ErrSportNotFound)

	assert.Empty(t, f.repo.saved)
}

func TestUseCase_Execute_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{name: "no owner", mutate: func(r *Request) { r.OwnerID = uuid.Nil }},
		{name: "no turf", mutate: func(r *Request) { r.Config.TurfID = uuid.Nil }},
		{name: "no sport", mutate: func(r *Request) { r.Config.SportID = uuid.Nil }},
		{name: "no start date", mutate: func(r *Request) { r.Config.StartDate = time.Time{} }},
		{name: "end before start", mutate: func(r *Request) { r.Config.EndDate = r.Config.StartDate.AddDate(0, 0, -1) }},
		{name: "negative buffer", mutate: func(r *Request) { r.Config.BufferMinutes = -1 }},
		{name: "buffer too long", mutate: func(r *Request) { r.Config.BufferMinutes = 241 }},
		{name: "no days", mutate: func(r *Request) { r.Config.Days = nil }},
		{name: "duplicate day", mutate: func(r *Request) { r.Config.Days[1].Day = domain.Wednesday }},
		{name: "unknown day", mutate: func(r *Request) { r.Config.Days[0].Day = "Funday" }},
		{name: "duration too short", mutate: func(r *Request) { r.Config.Days[0].SlotDurationMinutes = 4 }},
		{name: "duration too long", mutate: func(r *Request) { r.Config.Days[0].SlotDurationMinutes = 481 }},
		{name: "negative price", mutate: func(r *Request) { r.Config.Days[0].Price = -1 }},
		{name: "day without ranges", mutate: func(r *Request) { r.Config.Days[0].TimeRanges = nil }},
		{name: "inverted range", mutate: func(r *Request) {
			r.Config.Days[0].TimeRanges = []domain.TimeRange{{StartTime: "20:00", EndTime: "18:00"}}
		}},
		{name: "incomplete range", mutate: func(r *Request) {
			r.Config.Days[0].TimeRanges = []domain.TimeRange{{StartTime: "18:00"}}
		}},
		{name: "too many ranges", mutate: func(r *Request) {
			r.Config.Days[0].TimeRanges = make([]domain.TimeRange, 9)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			req := &Request{OwnerID: f.ownerID, Config: f.config()}
			tt.mutate(req)

			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Zero(t, f.tx.calls)
		})
	}
}

func TestUseCase_Execute_ZeroPriceAllowed(t *testing.T) {
	f := newFixture()
	cfg := f.config()
	cfg.Days = cfg.Days[:1]
	cfg.Days[0].Price = 0

	resp, err := f.uc.Execute(context.Background(), &Request{OwnerID: f.ownerID, Config: cfg})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.SavedSchedules)
}
