// Package http provides http transport for learn sessions
package http

import (
	stdhttp "net/http"
	"time"

	"wordpool/internal/modkit/httpkit"
	"wordpool/internal/services/api/learn/domain"
	svc "wordpool/internal/services/api/learn/service"
)

// Register mounts learn endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// next batch of new words with intake exercises
	httpkit.Get(r, "/session", h.session)

	// move the shown words into the first practice pool
	httpkit.PostJSON[domain.CompleteIn](r, "/complete", h.complete)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /learn/session Learn learnSession
// @Summary Assemble a learn session
// @Tags Learn
// @Produce json
// @Success 200 {object} domain.SessionOut "ok"
// @Router /learn/session [get]
func (h *handlers) session(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.UserUUID(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Session(r.Context(), uid, time.Now().UTC())
}

// swagger:route POST /learn/complete Learn learnComplete
// @Summary Complete a learn session
// @Tags Learn
// @Accept json
// @Produce json
// @Param payload body domain.CompleteIn true "Completed word ids"
// @Success 200 {object} domain.CompleteOut "ok"
// @Router /learn/complete [post]
func (h *handlers) complete(r *stdhttp.Request, in domain.CompleteIn) (any, error) {
	uid, err := httpkit.UserUUID(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Complete(r.Context(), uid, in, time.Now().UTC())
}
