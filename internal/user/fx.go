package user

import (
	"github.com/eduverse/eduverse/internal/user/repository"
	"github.com/eduverse/eduverse/internal/user/service"
	"go.uber.org/fx"
)

var Module = fx.Module("user.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
