package sportshouse

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/m04kA/SMC-TurfService/internal/domain"
)

// Client клиент старого backend админки площадок
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// PushSchedule отправляет сохраненное расписание в старый backend
func (c *Client) PushSchedule(ctx context.Context, schedule *domain.SlotSchedule) error {
	body, err := json.Marshal(ToSchedulePayload(schedule))
	if err != nil {
		return fmt.Errorf("%w: failed to encode payload: %v", ErrInternal, err)
	}

	url := fmt.Sprintf("%s/slots/save", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		var errResp ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Message != "" {
			return fmt.Errorf("%w: status %d: %s", ErrRejected, resp.StatusCode, errResp.Message)
		}
		return fmt.Errorf("%w: status %d", ErrRejected, resp.StatusCode)
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}
}

// PushScheduleWithGracefulDegradation отправляет расписание, не прерывая сохранение при сбое
// Любая ошибка превращается в ErrServiceDegraded: локальные данные остаются источником правды
func (c *Client) PushScheduleWithGracefulDegradation(ctx context.Context, schedule *domain.SlotSchedule) error {
	c.log.Info("Mirroring schedule id=%s (day=%s, %s-%s) to legacy backend",
		schedule.ID, schedule.Day, schedule.StartTime, schedule.EndTime)

	if err := c.PushSchedule(ctx, schedule); err != nil {
		c.log.Error("Legacy backend unavailable, schedule id=%s not mirrored: %v", schedule.ID, err)
		return fmt.Errorf("%w: schedule_id=%s, error=%v", ErrServiceDegraded, schedule.ID, err)
	}

	c.log.Info("Successfully mirrored schedule id=%s", schedule.ID)
	return nil
}

// ToSchedulePayload конвертирует расписание в тело запроса
func ToSchedulePayload(schedule *domain.SlotSchedule) *SchedulePayload {
	slots := make([]SlotPayload, 0, len(schedule.Slots))
	for _, s := range schedule.Slots {
		slots = append(slots, SlotPayload{
			StartTime: s.StartTime.String(),
			EndTime:   s.EndTime.String(),
		})
	}

	return &SchedulePayload{
		TurfID:       schedule.TurfID.String(),
		SportID:      schedule.SportID.String(),
		Day:          schedule.Day.String(),
		StartDate:    schedule.StartDate.Format(domain.DateFormat),
		EndDate:      schedule.EndDate.Format(domain.DateFormat),
		StartTime:    schedule.StartTime.String(),
		EndTime:      schedule.EndTime.String(),
		SlotDuration: schedule.SlotDurationMinutes,
		Price:        schedule.Price,
		Slots:        slots,
	}
}
