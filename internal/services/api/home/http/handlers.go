// Package http provides http transport for the home dashboard
package http

import (
	stdhttp "net/http"
	"time"

	"wordpool/internal/modkit/httpkit"
	svc "wordpool/internal/services/api/home/service"
)

// Register mounts home endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/stats", h.stats)

	// pool diagnostics, mainly for debugging
	httpkit.Get(r, "/word-pool", h.wordPool)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /home/stats Home homeStats
// @Summary Home dashboard statistics
// @Tags Home
// @Produce json
// @Success 200 {object} domain.StatsOut "ok"
// @Router /home/stats [get]
func (h *handlers) stats(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.UserUUID(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Stats(r.Context(), uid, time.Now().UTC())
}

// swagger:route GET /home/word-pool Home homeWordPool
// @Summary Words grouped by pool
// @Tags Home
// @Produce json
// @Success 200 {object} domain.WordPoolOut "ok"
// @Router /home/word-pool [get]
func (h *handlers) wordPool(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.UserUUID(r)
	if err != nil {
		return nil, err
	}
	return h.svc.WordPool(r.Context(), uid)
}
