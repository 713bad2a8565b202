// Package http provides http transport for two-phase review
package http

import (
	stdhttp "net/http"
	"time"

	"wordpool/internal/modkit/httpkit"
	"wordpool/internal/services/api/review/domain"
	svc "wordpool/internal/services/api/review/service"
)

// Register mounts review endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// display-phase words with a test preview
	httpkit.Get(r, "/session", h.session)

	// flip display rows into the test stage
	httpkit.PostJSON[domain.CompleteIn](r, "/complete", h.complete)

	// graded test answers
	httpkit.PostJSON[domain.SubmitIn](r, "/submit", h.submit)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /review/session Review reviewSession
// @Summary Assemble a review session
// @Tags Review
// @Produce json
// @Success 200 {object} domain.SessionOut "ok"
// @Router /review/session [get]
func (h *handlers) session(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.UserUUID(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Session(r.Context(), uid, time.Now().UTC())
}

// swagger:route POST /review/complete Review reviewComplete
// @Summary Complete the review display phase
// @Tags Review
// @Accept json
// @Produce json
// @Param payload body domain.CompleteIn true "Displayed word ids"
// @Success 200 {object} domain.CompleteOut "ok"
// @Router /review/complete [post]
func (h *handlers) complete(r *stdhttp.Request, in domain.CompleteIn) (any, error) {
	uid, err := httpkit.UserUUID(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Complete(r.Context(), uid, in, time.Now().UTC())
}

// swagger:route POST /review/submit Review reviewSubmit
// @Summary Submit review test answers
// @Tags Review
// @Accept json
// @Produce json
// @Param payload body domain.SubmitIn true "Graded answers"
// @Success 200 {object} domain.SubmitOut "ok"
// @Router /review/submit [post]
func (h *handlers) submit(r *stdhttp.Request, in domain.SubmitIn) (any, error) {
	uid, err := httpkit.UserUUID(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Submit(r.Context(), uid, in, time.Now().UTC())
}
