package opts

import (
	"github.com/walteh/typograph/pkg/config"
	"github.com/walteh/typograph/pkg/typograph"
)

// RootOpts contains shared options used by all commands. The console
// logger travels in the command context (see log.FromContext).
type RootOpts struct {
	Config    *config.Config
	Processor *typograph.Processor
	Root      string // directory relative paths are resolved against
}
