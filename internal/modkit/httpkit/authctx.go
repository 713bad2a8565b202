package httpkit

import (
	"net/http"

	"github.com/google/uuid"

	perrs "wordpool/internal/platform/errors"
	pnet "wordpool/internal/platform/net"
)

// User returns the authenticated user id from the request context
func User(r *http.Request) (string, error) {
	uid := pnet.UserID(r.Context())
	if uid == "" {
		return "", perrs.Unauthorizedf("missing user identity")
	}
	return uid, nil
}

// UserUUID returns the authenticated user id parsed as a UUID
func UserUUID(r *http.Request) (uuid.UUID, error) {
	uid, err := User(r)
	if err != nil {
		return uuid.Nil, err
	}
	id, err := uuid.Parse(uid)
	if err != nil {
		return uuid.Nil, perrs.Unauthorizedf("malformed user id")
	}
	return id, nil
}

// MustUser returns the authenticated user id or panics
// only use on routes behind the auth middleware
func MustUser(r *http.Request) string {
	uid, err := User(r)
	if err != nil {
		panic(err)
	}
	return uid
}
