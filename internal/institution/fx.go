package institution

import (
	"github.com/eduverse/eduverse/internal/institution/repository"
	"github.com/eduverse/eduverse/internal/institution/service"
	"go.uber.org/fx"
)

var Module = fx.Module("institution.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
