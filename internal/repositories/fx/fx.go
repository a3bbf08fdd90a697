package fx

import (
	"github.com/orgball2608/fb-post-importer/internal/repositories/imports"
	"go.uber.org/fx"
)

var Module = fx.Options(
	imports.Module,
)
