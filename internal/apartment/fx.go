package apartment

import (
	"github.com/praneeth8555/dairyadmin/internal/apartment/repository"
	"github.com/praneeth8555/dairyadmin/internal/apartment/service"
	"go.uber.org/fx"
)

var Module = fx.Module("apartment.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
