package product

import (
	"github.com/praneeth8555/dairyadmin/internal/product/repository"
	"github.com/praneeth8555/dairyadmin/internal/product/service"
	"go.uber.org/fx"
)

var Module = fx.Module("product.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
