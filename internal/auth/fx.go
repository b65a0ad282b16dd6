package auth

import (
	"github.com/praneeth8555/dairyadmin/internal/auth/repository"
	"github.com/praneeth8555/dairyadmin/internal/auth/service"
	"go.uber.org/fx"
)

var Module = fx.Module("auth.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
