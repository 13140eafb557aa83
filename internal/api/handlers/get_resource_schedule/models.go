package get_resource_schedule

import (
	"time"

	resolveSchedule "github.com/m04kA/StudioHub-AvailabilityService/internal/usecase/resolve_schedule"
)

// ScheduleResponse HTTP response model
type ScheduleResponse struct {
	ResourceID  int64              `json:"resourceId"`
	WindowStart time.Time          `json:"windowStart"`
	WindowEnd   time.Time          `json:"windowEnd"`
	Intervals   []ScheduleInterval `json:"intervals"`
}

// ScheduleInterval интервал доступности [start, end)
type ScheduleInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// ToUseCaseRequest создает запрос use case из параметров запроса
// from/to принимаются в RFC3339 или как дата YYYY-MM-DD
func ToUseCaseRequest(resourceID int64, fromStr, toStr string) (*resolveSchedule.Request, error) {
	from, err := parseInstant(fromStr)
	if err != nil {
		return nil, err
	}

	to, err := parseInstant(toStr)
	if err != nil {
		return nil, err
	}

	return &resolveSchedule.Request{
		ResourceID:  resourceID,
		WindowStart: from,
		WindowEnd:   to,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *resolveSchedule.Response) *ScheduleResponse {
	intervals := make([]ScheduleInterval, len(resp.Intervals))
	for i, interval := range resp.Intervals {
		intervals[i] = ScheduleInterval{
			Start: interval.Start,
			End:   interval.End,
		}
	}

	return &ScheduleResponse{
		ResourceID:  resp.ResourceID,
		WindowStart: resp.WindowStart,
		WindowEnd:   resp.WindowEnd,
		Intervals:   intervals,
	}
}

func parseInstant(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
