package customer

import (
	"github.com/praneeth8555/dairyadmin/internal/customer/repository"
	"github.com/praneeth8555/dairyadmin/internal/customer/service"
	"go.uber.org/fx"
)

var Module = fx.Module("customer.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
