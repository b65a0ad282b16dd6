package summary

import (
	"github.com/praneeth8555/dairyadmin/internal/summary/service"
	"go.uber.org/fx"
)

var Module = fx.Module("summary.service",
	fx.Provide(service.New),
)
