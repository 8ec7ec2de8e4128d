package attendance

import (
	"github.com/eduverse/eduverse/internal/attendance/repository"
	"github.com/eduverse/eduverse/internal/attendance/service"
	"github.com/eduverse/eduverse/internal/notification"
	"go.uber.org/fx"
)

var Module = fx.Module("attendance.service",
	notification.Module,
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
