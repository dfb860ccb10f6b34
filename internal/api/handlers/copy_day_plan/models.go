package copy_day_plan

import (
	"fmt"

	"github.com/m04kA/SMC-TurfService/internal/domain"
	planModels "github.com/m04kA/SMC-TurfService/internal/service/planner/models"
	copyDayPlan "github.com/m04kA/SMC-TurfService/internal/usecase/copy_day_plan"
)

// CopyDayRequest HTTP request model
type CopyDayRequest struct {
	Plan      planModels.PlanForm `json:"plan"`
	TargetDay string              `json:"targetDay"`
	SourceDay *string             `json:"sourceDay,omitempty"` // по умолчанию предыдущий день
}

// CopyDayResponse HTTP response model
type CopyDayResponse struct {
	SourceDay string               `json:"sourceDay"`
	Plan      *planModels.PlanForm `json:"plan"`
	Preview   planModels.DayView   `json:"preview"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CopyDayRequest) ToUseCaseRequest() (*copyDayPlan.Request, error) {
	target, err := domain.ParseWeekday(r.TargetDay)
	if err != nil {
		return nil, fmt.Errorf("targetDay: %w", err)
	}

	req := &copyDayPlan.Request{
		Config:    r.Plan.ToDomain(),
		TargetDay: target,
	}

	if r.SourceDay != nil && *r.SourceDay != "" {
		source, err := domain.ParseWeekday(*r.SourceDay)
		if err != nil {
			return nil, fmt.Errorf("sourceDay: %w", err)
		}
		req.SourceDay = &source
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *copyDayPlan.Response) *CopyDayResponse {
	return &CopyDayResponse{
		SourceDay: resp.SourceDay.String(),
		Plan:      planModels.FromDomainConfig(resp.Config),
		Preview:   planModels.FromDayPreview(resp.Preview),
	}
}
