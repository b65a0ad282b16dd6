package billing

import (
	"github.com/praneeth8555/dairyadmin/internal/billing/service"
	"go.uber.org/fx"
)

var Module = fx.Module("billing.service",
	fx.Provide(service.New),
)
