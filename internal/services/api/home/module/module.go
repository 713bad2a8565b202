// Package module wires home into the API using modkit
package module

import (
	"net/http"

	modkit "wordpool/internal/modkit"
	"wordpool/internal/modkit/httpkit"
	str "wordpool/internal/platform/strings"
	homehttp "wordpool/internal/services/api/home/http"
	homesvc "wordpool/internal/services/api/home/service"
	catalogdom "wordpool/internal/services/catalog/domain"
	progdom "wordpool/internal/services/progression/domain"
	usersdom "wordpool/internal/services/users/domain"
)

// Module implements the home module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc homesvc.Service
}

// Ports declares the injected service ports this API module requires
type Ports struct {
	Progress progdom.Port
	Catalog  catalogdom.Port
	Users    usersdom.Port
}

// New constructs the home module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("home"),
		modkit.WithPrefix("/home"),
	}, opts...)...)

	injected, ok := b.Ports.(Ports)
	if !ok || injected.Progress == nil || injected.Catalog == nil || injected.Users == nil {
		panic("home module requires progression, catalog and users ports")
	}

	svc := homesvc.New(injected.Progress, injected.Catalog, injected.Users)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptHomePort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		homehttp.Register(r, m.svc)
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
