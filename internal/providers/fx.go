package providers

import (
	"github.com/praneeth8555/dairyadmin/internal/providers/pdf"
	"go.uber.org/fx"
)

var Module = fx.Module("providers",
	pdf.Module,
)
