package student

import (
	"github.com/eduverse/eduverse/internal/student/repository"
	"github.com/eduverse/eduverse/internal/student/service"
	"go.uber.org/fx"
)

var Module = fx.Module("student.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
