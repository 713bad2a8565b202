// Package module wires admin into the API using modkit
package module

import (
	"net/http"

	modkit "wordpool/internal/modkit"
	"wordpool/internal/modkit/httpkit"
	str "wordpool/internal/platform/strings"
	adminhttp "wordpool/internal/services/api/admin/http"
	adminsvc "wordpool/internal/services/api/admin/service"
	catalogdom "wordpool/internal/services/catalog/domain"
	progdom "wordpool/internal/services/progression/domain"
)

// Module implements the admin module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc adminsvc.Service
}

// Ports declares the injected service ports this API module requires
type Ports struct {
	Progress progdom.Port
	Catalog  catalogdom.Port
}

// New constructs the admin module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("admin"),
		modkit.WithPrefix("/admin"),
	}, opts...)...)

	injected, ok := b.Ports.(Ports)
	if !ok || injected.Progress == nil || injected.Catalog == nil {
		panic("admin module requires progression and catalog ports")
	}

	svc := adminsvc.New(injected.Progress, injected.Catalog)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptAdminPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		adminhttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
