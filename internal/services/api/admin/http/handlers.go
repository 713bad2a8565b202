// Package http provides http transport for admin maintenance
package http

import (
	stdhttp "net/http"
	"time"

	"wordpool/internal/modkit/httpkit"
	"wordpool/internal/services/api/admin/domain"
	svc "wordpool/internal/services/api/admin/service"
)

// Register mounts admin endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Post(r, "/reset-progress", h.resetProgress)
	httpkit.Post(r, "/reset-cooldown", h.resetCooldown)
	httpkit.PostJSON[domain.SeedWordsIn](r, "/seed-words", h.seedWords)
	httpkit.Get(r, "/words", h.words)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /admin/reset-progress Admin adminResetProgress
// @Summary Delete all progress for the current user
// @Tags Admin
// @Produce json
// @Success 200 {object} domain.ResetProgressOut "ok"
// @Router /admin/reset-progress [post]
func (h *handlers) resetProgress(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.UserUUID(r)
	if err != nil {
		return nil, err
	}
	return h.svc.ResetProgress(r.Context(), uid)
}

// swagger:route POST /admin/reset-cooldown Admin adminResetCooldown
// @Summary Clear all pending waits for the current user
// @Tags Admin
// @Produce json
// @Success 200 {object} domain.ResetCooldownOut "ok"
// @Router /admin/reset-cooldown [post]
func (h *handlers) resetCooldown(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.UserUUID(r)
	if err != nil {
		return nil, err
	}
	return h.svc.ResetCooldown(r.Context(), uid, time.Now().UTC())
}

// swagger:route POST /admin/seed-words Admin adminSeedWords
// @Summary Import words into the catalog
// @Tags Admin
// @Accept json
// @Produce json
// @Param payload body domain.SeedWordsIn true "Words to import"
// @Success 200 {object} domain.SeedWordsOut "ok"
// @Router /admin/seed-words [post]
func (h *handlers) seedWords(r *stdhttp.Request, in domain.SeedWordsIn) (any, error) {
	return h.svc.SeedWords(r.Context(), in)
}

// swagger:route GET /admin/words Admin adminWords
// @Summary List the full catalog
// @Tags Admin
// @Produce json
// @Success 200 {object} domain.WordsOut "ok"
// @Router /admin/words [get]
func (h *handlers) words(r *stdhttp.Request) (any, error) {
	return h.svc.Words(r.Context())
}
