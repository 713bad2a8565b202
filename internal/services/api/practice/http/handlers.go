// Package http provides http transport for practice sessions
package http

import (
	stdhttp "net/http"
	"time"

	"wordpool/internal/modkit/httpkit"
	"wordpool/internal/services/api/practice/domain"
	svc "wordpool/internal/services/api/practice/service"
)

// Register mounts practice endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// eligible words with pool-driven exercises
	httpkit.Get(r, "/session", h.session)

	// graded answers, transactional per user
	httpkit.PostJSON[domain.SubmitIn](r, "/submit", h.submit)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /practice/session Practice practiceSession
// @Summary Assemble a practice session
// @Tags Practice
// @Produce json
// @Success 200 {object} domain.SessionOut "ok"
// @Router /practice/session [get]
func (h *handlers) session(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.UserUUID(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Session(r.Context(), uid, time.Now().UTC())
}

// swagger:route POST /practice/submit Practice practiceSubmit
// @Summary Submit practice answers
// @Tags Practice
// @Accept json
// @Produce json
// @Param payload body domain.SubmitIn true "Graded answers"
// @Success 200 {object} domain.SubmitOut "ok"
// @Router /practice/submit [post]
func (h *handlers) submit(r *stdhttp.Request, in domain.SubmitIn) (any, error) {
	uid, err := httpkit.UserUUID(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Submit(r.Context(), uid, in, time.Now().UTC())
}
