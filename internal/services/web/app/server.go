package app

import (
	"net/http"

	"github.com/louisbranch/questboard/internal/services/web/module"
	"github.com/louisbranch/questboard/internal/services/web/module/api"
	"github.com/louisbranch/questboard/internal/services/web/module/assets"
	"github.com/louisbranch/questboard/internal/services/web/module/goals"
	"github.com/louisbranch/questboard/internal/services/web/module/public"
	"github.com/louisbranch/questboard/internal/services/web/module/settings"
	"github.com/louisbranch/questboard/internal/services/web/module/tasks"
	"github.com/louisbranch/questboard/internal/services/web/routepath"
)

// BuildRootHandler composes the dashboard modules into one handler.
func BuildRootHandler(cfg Config) (http.Handler, error) {
	deps := cfg.Dependencies
	modules := []module.Module{
		public.New(),
		assets.New(),
		goals.New(deps),
		tasks.New(deps),
		settings.New(deps),
		api.New(deps),
	}
	if cfg.MCP != nil {
		modules = append(modules, handlerModule{id: "mcp", prefix: routepath.MCPPrefix, handler: cfg.MCP})
	}
	return Compose(ComposeInput{Modules: modules})
}

type handlerModule struct {
	id      string
	prefix  string
	handler http.Handler
}

func (m handlerModule) ID() string { return m.id }

func (m handlerModule) Mount() (module.Mount, error) {
	return module.Mount{Prefix: m.prefix, Handler: m.handler}, nil
}
