package invoice

import (
	"github.com/eduverse/eduverse/internal/invoice/repository"
	"github.com/eduverse/eduverse/internal/invoice/service"
	"github.com/eduverse/eduverse/internal/payment"
	"go.uber.org/fx"
)

var Module = fx.Module("invoice.service",
	payment.Module,
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
