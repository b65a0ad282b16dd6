package order

import (
	"github.com/praneeth8555/dairyadmin/internal/order/repository"
	"github.com/praneeth8555/dairyadmin/internal/order/service"
	"go.uber.org/fx"
)

var Module = fx.Module("order.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
