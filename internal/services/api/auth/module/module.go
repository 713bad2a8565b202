// Package module wires auth into the API using modkit
package module

import (
	"net/http"

	modkit "wordpool/internal/modkit"
	"wordpool/internal/modkit/httpkit"
	str "wordpool/internal/platform/strings"
	authhttp "wordpool/internal/services/api/auth/http"
	usersdom "wordpool/internal/services/users/domain"
)

// Module implements the auth module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	users usersdom.Port
}

// Ports declares the injected service ports this API module requires
type Ports struct {
	Users usersdom.Port
}

// New constructs the auth module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("auth"),
		modkit.WithPrefix("/auth"),
	}, opts...)...)

	injected, ok := b.Ports.(Ports)
	if !ok || injected.Users == nil {
		panic("auth module requires the users port")
	}

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		users:     injected.Users,
	}
	m.ports = injected.Users

	external := b.Register
	m.register = func(r httpkit.Router) {
		authhttp.Register(r, m.users)
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

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
