package service

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	perr "wordpool/internal/platform/errors"
	"wordpool/internal/modkit/repokit"
	"wordpool/internal/services/users/domain"
)

type fakeRepo struct {
	domain.Repo

	byName map[string]domain.User
}

func (f *fakeRepo) UpsertByUsername(_ context.Context, username string) (domain.User, error) {
	if u, ok := f.byName[username]; ok {
		return u, nil
	}
	u := domain.User{ID: uuid.New(), Username: username}
	f.byName[username] = u
	return u, nil
}

type nopTx struct{}

func (nopTx) Exec(context.Context, string, ...any) (repokit.CommandTag, error) {
	panic("unexpected exec")
}
func (nopTx) Query(context.Context, string, ...any) (repokit.Rows, error) {
	panic("unexpected query")
}
func (nopTx) QueryRow(context.Context, string, ...any) repokit.Row { panic("unexpected query row") }
func (nopTx) Tx(ctx context.Context, fn func(q repokit.Queryer) error) error { return fn(nopTx{}) }

func TestLoginStableID(t *testing.T) {
	t.Parallel()

	f := &fakeRepo{byName: map[string]domain.User{}}
	svc := New(nopTx{}, repokit.BindFunc[domain.Repo](func(repokit.Queryer) domain.Repo { return f }))

	a, err := svc.Login(context.Background(), "mika")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	b, err := svc.Login(context.Background(), " mika ")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if a.ID != b.ID {
		t.Fatalf("repeat login changed id: %v vs %v", a.ID, b.ID)
	}

	if _, err := svc.Login(context.Background(), "   "); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("blank username error = %v", err)
	}
}

func TestHeaderAuthParse(t *testing.T) {
	t.Parallel()

	id := uuid.New()

	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set(UserIDHeader, id.String())
	uid, err := HeaderAuth{}.Parse(r)
	if err != nil || uid != id.String() {
		t.Fatalf("Parse = %q, %v", uid, err)
	}

	r = httptest.NewRequest("GET", "/", nil)
	if _, err := (HeaderAuth{}).Parse(r); !perr.IsCode(err, perr.ErrorCodeUnauthorized) {
		t.Fatalf("missing header error = %v", err)
	}

	r = httptest.NewRequest("GET", "/", nil)
	r.Header.Set(UserIDHeader, "not-a-uuid")
	if _, err := (HeaderAuth{}).Parse(r); !perr.IsCode(err, perr.ErrorCodeUnauthorized) {
		t.Fatalf("malformed header error = %v", err)
	}
}
