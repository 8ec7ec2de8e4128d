package batch

import (
	"github.com/eduverse/eduverse/internal/batch/repository"
	"github.com/eduverse/eduverse/internal/batch/service"
	"go.uber.org/fx"
)

var Module = fx.Module("batch.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
