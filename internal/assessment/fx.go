package assessment

import (
	"github.com/eduverse/eduverse/internal/assessment/repository"
	"github.com/eduverse/eduverse/internal/assessment/service"
	"go.uber.org/fx"
)

var Module = fx.Module("assessment.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
