// Package api provides the HTTP API for the application
package api

import (
	"wordpool/internal/platform/config"
	"wordpool/internal/platform/logger"
	phttp "wordpool/internal/platform/net/http"
	"wordpool/internal/platform/store"

	"wordpool/internal/modkit"
	"wordpool/internal/modkit/httpkit"
	"wordpool/internal/modkit/module"
	"wordpool/internal/modkit/swaggerkit"

	adminmod "wordpool/internal/services/api/admin/module"
	authmod "wordpool/internal/services/api/auth/module"
	homemod "wordpool/internal/services/api/home/module"
	learnmod "wordpool/internal/services/api/learn/module"
	metamod "wordpool/internal/services/api/meta/module"
	practicemod "wordpool/internal/services/api/practice/module"
	reviewmod "wordpool/internal/services/api/review/module"

	alogdom "wordpool/internal/services/answerlog/domain"
	alogrepo "wordpool/internal/services/answerlog/repo"
	alogsvc "wordpool/internal/services/answerlog/service"
	catalogrepo "wordpool/internal/services/catalog/repo"
	catalogsvc "wordpool/internal/services/catalog/service"
	progrepo "wordpool/internal/services/progression/repo"
	progsvc "wordpool/internal/services/progression/service"
	usersrepo "wordpool/internal/services/users/repo"
	userssvc "wordpool/internal/services/users/service"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
		CH:  opt.Store.CH,
	}

	// domain services shared across the API modules
	users := userssvc.New(deps.PG, usersrepo.NewPG())
	catalog := catalogsvc.New(deps.PG, catalogrepo.NewPG())

	var sink alogdom.Sink = alogsvc.NopSink{}
	if deps.CH != nil {
		sink = alogsvc.NewCHSink(deps.CH)
	}
	progress := progsvc.New(deps.PG, progrepo.NewPG(),
		progsvc.WithAnswerLog(alogrepo.NewPG(), sink))

	// every module except auth sits behind the identity header
	authed := modkit.WithMiddlewares(httpkit.Auth(userssvc.HeaderAuth{}))

	mods := []module.Module{
		metamod.New(deps),
		authmod.New(deps, modkit.WithPorts(authmod.Ports{Users: users})),
		learnmod.New(deps, authed, modkit.WithPorts(learnmod.Ports{
			Progress: progress, Catalog: catalog, Users: users,
		})),
		practicemod.New(deps, authed, modkit.WithPorts(practicemod.Ports{
			Progress: progress, Catalog: catalog, Users: users,
		})),
		reviewmod.New(deps, authed, modkit.WithPorts(reviewmod.Ports{
			Progress: progress, Catalog: catalog,
		})),
		homemod.New(deps, authed, modkit.WithPorts(homemod.Ports{
			Progress: progress, Catalog: catalog, Users: users,
		})),
		adminmod.New(deps, authed, modkit.WithPorts(adminmod.Ports{
			Progress: progress, Catalog: catalog,
		})),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
