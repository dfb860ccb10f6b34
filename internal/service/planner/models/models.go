package models

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TurfService/internal/domain"
	"github.com/m04kA/SMC-TurfService/pkg/types"
)

// Request модели (форма планирования, приходит из API и из YAML файла CLI)

// TimeRangeForm интервал в том виде, в котором его заполняет владелец
type TimeRangeForm struct {
	StartTime string `json:"startTime" yaml:"start_time"` // HH:MM
	EndTime   string `json:"endTime" yaml:"end_time"`     // HH:MM
}

// DayPlanForm настройки одного дня недели
type DayPlanForm struct {
	Day                 string          `json:"day" yaml:"day"` // Monday..Sunday
	SlotDurationMinutes int             `json:"slotDurationMinutes" yaml:"slot_duration_minutes"`
	Price               float64         `json:"price" yaml:"price"`
	TimeRanges          []TimeRangeForm `json:"timeRanges" yaml:"time_ranges"`
}

// PlanForm форма генерации слотов
type PlanForm struct {
	TurfID        string        `json:"turfId" yaml:"turf_id"`
	SportID       string        `json:"sportId" yaml:"sport_id"`
	StartDate     string        `json:"startDate" yaml:"start_date"` // YYYY-MM-DD
	EndDate       string        `json:"endDate" yaml:"end_date"`     // YYYY-MM-DD
	BufferMinutes int           `json:"bufferMinutes" yaml:"buffer_minutes"`
	Days          []DayPlanForm `json:"days" yaml:"days"`
}

// Response модели

// SlotView слот в превью
type SlotView struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// RangeView превью одного интервала
type RangeView struct {
	StartTime string     `json:"startTime"`
	EndTime   string     `json:"endTime"`
	Starts    []string   `json:"starts"`
	Slots     []SlotView `json:"slots"`
}

// DayView превью одного дня
type DayView struct {
	Day                 string      `json:"day"`
	SlotDurationMinutes int         `json:"slotDurationMinutes"`
	Price               float64     `json:"price"`
	SlotsCount          int         `json:"slotsCount"`
	Ranges              []RangeView `json:"ranges"`
}

// ScheduleView расписание одного интервала в формате сохранения
type ScheduleView struct {
	TurfID       string     `json:"turf_id"`
	SportID      string     `json:"sport_id"`
	Day          string     `json:"day"`
	StartDate    string     `json:"start_date"`
	EndDate      string     `json:"end_date"`
	StartTime    string     `json:"start_time"`
	EndTime      string     `json:"end_time"`
	SlotDuration int        `json:"slot_duration"`
	Price        float64    `json:"price"`
	Slots        []SlotView `json:"slots"`
}

// Методы конвертации

// ToDomain конвертирует форму в конфигурацию без ошибок: неразобранные поля остаются
// нулевыми (ID, даты) или как есть (время, день), их отлавливает валидация сохранения,
// а превью просто не генерирует по ним слоты
func (f *PlanForm) ToDomain() domain.SlotPlanConfig {
	cfg := domain.SlotPlanConfig{
		TurfID:        parseUUID(f.TurfID),
		SportID:       parseUUID(f.SportID),
		StartDate:     parseDate(f.StartDate),
		EndDate:       parseDate(f.EndDate),
		BufferMinutes: f.BufferMinutes,
		Days:          make([]domain.DayPlan, 0, len(f.Days)),
	}

	for _, d := range f.Days {
		cfg.Days = append(cfg.Days, d.ToDomain())
	}

	return cfg
}

// ToDomain конвертирует настройки дня
func (d *DayPlanForm) ToDomain() domain.DayPlan {
	plan := domain.DayPlan{
		Day:                 ParseDay(d.Day),
		SlotDurationMinutes: d.SlotDurationMinutes,
		Price:               d.Price,
		TimeRanges:          make([]domain.TimeRange, 0, len(d.TimeRanges)),
	}

	for _, r := range d.TimeRanges {
		plan.TimeRanges = append(plan.TimeRanges, domain.TimeRange{
			StartTime: parseTime(r.StartTime),
			EndTime:   parseTime(r.EndTime),
		})
	}

	return plan
}

// FromDomainConfig конвертирует конфигурацию обратно в форму
func FromDomainConfig(cfg domain.SlotPlanConfig) *PlanForm {
	form := &PlanForm{
		TurfID:        formatUUID(cfg.TurfID),
		SportID:       formatUUID(cfg.SportID),
		StartDate:     formatDate(cfg.StartDate),
		EndDate:       formatDate(cfg.EndDate),
		BufferMinutes: cfg.BufferMinutes,
		Days:          make([]DayPlanForm, 0, len(cfg.Days)),
	}

	for _, d := range cfg.Days {
		form.Days = append(form.Days, FromDomainDayPlan(d))
	}

	return form
}

// FromDomainDayPlan конвертирует настройки дня в форму
func FromDomainDayPlan(d domain.DayPlan) DayPlanForm {
	ranges := make([]TimeRangeForm, 0, len(d.TimeRanges))
	for _, r := range d.TimeRanges {
		ranges = append(ranges, TimeRangeForm{StartTime: r.StartTime.String(), EndTime: r.EndTime.String()})
	}

	return DayPlanForm{
		Day:                 d.Day.String(),
		SlotDurationMinutes: d.SlotDurationMinutes,
		Price:               d.Price,
		TimeRanges:          ranges,
	}
}

// FromDayPreview конвертирует превью дня
func FromDayPreview(p domain.DayPreview) DayView {
	ranges := make([]RangeView, 0, len(p.Ranges))
	for _, r := range p.Ranges {
		starts := make([]string, 0, len(r.Starts))
		for _, s := range r.Starts {
			starts = append(starts, s.String())
		}

		ranges = append(ranges, RangeView{
			StartTime: r.Range.StartTime.String(),
			EndTime:   r.Range.EndTime.String(),
			Starts:    starts,
			Slots:     fromGeneratedSlots(r.Slots),
		})
	}

	return DayView{
		Day:                 p.Plan.Day.String(),
		SlotDurationMinutes: p.Plan.SlotDurationMinutes,
		Price:               p.Plan.Price,
		SlotsCount:          p.SlotsCount(),
		Ranges:              ranges,
	}
}

// FromDayPreviews конвертирует превью нескольких дней
func FromDayPreviews(previews []domain.DayPreview) []DayView {
	days := make([]DayView, 0, len(previews))
	for _, p := range previews {
		days = append(days, FromDayPreview(p))
	}
	return days
}

// FromSchedule конвертирует расписание в формат сохранения
func FromSchedule(s domain.SlotSchedule) ScheduleView {
	return ScheduleView{
		TurfID:       formatUUID(s.TurfID),
		SportID:      formatUUID(s.SportID),
		Day:          s.Day.String(),
		StartDate:    formatDate(s.StartDate),
		EndDate:      formatDate(s.EndDate),
		StartTime:    s.StartTime.String(),
		EndTime:      s.EndTime.String(),
		SlotDuration: s.SlotDurationMinutes,
		Price:        s.Price,
		Slots:        fromGeneratedSlots(s.Slots),
	}
}

// ParseDay приводит день к каноническому виду ("monday" -> Monday); неизвестное значение остается как есть
func ParseDay(s string) domain.Weekday {
	if day, err := domain.ParseWeekday(s); err == nil {
		return day
	}
	return domain.Weekday(strings.TrimSpace(s))
}

func fromGeneratedSlots(slots []domain.GeneratedSlot) []SlotView {
	views := make([]SlotView, 0, len(slots))
	for _, s := range slots {
		views = append(views, SlotView{StartTime: s.StartTime.String(), EndTime: s.EndTime.String()})
	}
	return views
}

func parseUUID(s string) uuid.UUID {
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil
	}
	return id
}

func parseDate(s string) time.Time {
	t, err := time.Parse(domain.DateFormat, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}
	}
	return t
}

// parseTime нормализует "9:00" в "09:00"; некорректное значение сохраняется как есть
func parseTime(s string) types.TimeString {
	t, err := types.NewTimeStringFromString(s)
	if err != nil {
		return types.TimeString(strings.TrimSpace(s))
	}
	return t
}

func formatUUID(id uuid.UUID) string {
	if id == uuid.Nil {
		return ""
	}
	return id.String()
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(domain.DateFormat)
}
