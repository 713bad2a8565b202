// Package http provides http transport for login
package http

import (
	stdhttp "net/http"

	"wordpool/internal/modkit/httpkit"
	"wordpool/internal/services/api/auth/domain"
	usersdom "wordpool/internal/services/users/domain"
)

// Register mounts auth endpoints on the given router. These routes sit
// outside the identity middleware
func Register(r httpkit.Router, users usersdom.Port) {
	h := &handlers{users: users}

	httpkit.PostJSON[domain.LoginIn](r, "/login", h.login)
}

type handlers struct{ users usersdom.Port }

// swagger:route POST /auth/login Auth authLogin
// @Summary Login or auto-register by username
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body domain.LoginIn true "Username"
// @Success 200 {object} domain.LoginOut "ok"
// @Router /auth/login [post]
func (h *handlers) login(r *stdhttp.Request, in domain.LoginIn) (any, error) {
	u, err := h.users.Login(r.Context(), in.Username)
	if err != nil {
		return nil, err
	}
	return domain.LoginOut{ID: u.ID, Username: u.Username, CreatedAt: u.CreatedAt}, nil
}
