package get_resource_schedule

import (
	"context"

	resolveSchedule "github.com/m04kA/StudioHub-AvailabilityService/internal/usecase/resolve_schedule"
)

type ResolveScheduleUseCase interface {
	Execute(ctx context.Context, req *resolveSchedule.Request) (*resolveSchedule.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
