package session

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/campus-suite/campusctl/internal/api"
	"github.com/campus-suite/campusctl/internal/logging"
)

type fakeBackend struct {
	loginResults []*api.LoginResult
	loginErr     error
	loginCalls   int

	fetchUser  map[string]any
	fetchErr   error
	fetchCalls int
}

func (f *fakeBackend) Login(_ context.Context, email, password string) (*api.LoginResult, error) {
	f.loginCalls++
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	res := f.loginResults[0]
	if len(f.loginResults) > 1 {
		f.loginResults = f.loginResults[1:]
	}
	return res, nil
}

func (f *fakeBackend) FetchUser(_ context.Context, token string, id int64) (map[string]any, error) {
	f.fetchCalls++
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.fetchUser, nil
}

// memMeta is an in-memory metadata.Repository.
type memMeta struct {
	values map[string][]byte
}

func newMemMeta() *memMeta { return &memMeta{values: map[string][]byte{}} }

func (m *memMeta) Get(_ context.Context, key string) ([]byte, error) {
	return m.values[key], nil
}
func (m *memMeta) Set(_ context.Context, key string, value []byte) error {
	m.values[key] = append([]byte(nil), value...)
	return nil
}
func (m *memMeta) Delete(_ context.Context, key string) error {
	delete(m.values, key)
	return nil
}
func (m *memMeta) Clear(_ context.Context) error {
	m.values = map[string][]byte{}
	return nil
}
func (m *memMeta) List(_ context.Context) (map[string][]byte, error) {
	return m.values, nil
}

func quietLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestStore(backend Backend, meta *memMeta) *Store {
	return NewStore(backend, meta, quietLogger())
}

const (
	// payload {"id":5}
	tokenID5 = "abc.eyJpZCI6NX0.sig"
	// payload {"id":7,"role_id":3}
	tokenID7Role3 = "h.eyJpZCI6Nywicm9sZV9pZCI6M30.s"
)

func TestLogin_ExplicitUserBecomesIdentity(t *testing.T) {
	backend := &fakeBackend{loginResults: []*api.LoginResult{{
		Token: tokenID5,
		RawUser: map[string]any{
			"id": float64(5), "nombre": "Ana", "email": "ana@x.com", "role": "admin",
		},
	}}}
	meta := newMemMeta()
	s := newTestStore(backend, meta)

	require.NoError(t, s.Login(context.Background(), "ana@x.com", "pw"))

	require.Equal(t, tokenID5, s.Token())
	ident := s.Identity()
	require.NotNil(t, ident)
	require.Equal(t, Identity{ID: 5, Nombre: "Ana", Email: "ana@x.com", Role: "admin"}, *ident)

	// persisted synchronously
	require.Equal(t, tokenID5, string(meta.values["token"]))
	require.JSONEq(t, `{"id":5,"nombre":"Ana","email":"ana@x.com","role":"admin"}`, string(meta.values["user"]))
	require.Zero(t, backend.fetchCalls, "explicit identity must not trigger enrichment")
}

func TestLogin_TokenOnlyDerivesFromPayload(t *testing.T) {
	backend := &fakeBackend{
		loginResults: []*api.LoginResult{{Token: tokenID7Role3}},
		fetchErr:     errors.New("backend down"),
	}
	s := newTestStore(backend, newMemMeta())

	require.NoError(t, s.Login(context.Background(), "a@b.c", "pw"))

	ident := s.Identity()
	require.NotNil(t, ident)
	require.EqualValues(t, 7, ident.ID)
	require.Equal(t, "user", ident.Role)
	require.Empty(t, ident.Nombre, "name stays empty when enrichment fails")
	require.Equal(t, 1, backend.fetchCalls, "exactly one enrichment attempt")
}

func TestLogin_TokenOnlyEnrichmentReplacesIdentity(t *testing.T) {
	backend := &fakeBackend{
		loginResults: []*api.LoginResult{{Token: tokenID7Role3}},
		fetchUser:    map[string]any{"id": float64(7), "nombre": "Pedro", "role_id": float64(3)},
	}
	s := newTestStore(backend, newMemMeta())

	require.NoError(t, s.Login(context.Background(), "a@b.c", "pw"))

	ident := s.Identity()
	require.NotNil(t, ident)
	require.Equal(t, "Pedro", ident.Nombre)
	require.Equal(t, "user", ident.Role)
}

func TestLogin_NoTokenReceived(t *testing.T) {
	backend := &fakeBackend{loginResults: []*api.LoginResult{{Token: ""}}}
	s := newTestStore(backend, newMemMeta())

	err := s.Login(context.Background(), "a@b.c", "pw")
	var authErr *AuthenticationError
	require.ErrorAs(t, err, &authErr)
	require.Equal(t, "no token received", authErr.Message)
	require.Empty(t, s.Token())
}

func TestLogin_BackendErrorSurfacesMessage(t *testing.T) {
	backend := &fakeBackend{loginErr: &api.HTTPError{Status: 401, Message: "credenciales inválidas"}}
	s := newTestStore(backend, newMemMeta())

	err := s.Login(context.Background(), "a@b.c", "bad")
	var authErr *AuthenticationError
	require.ErrorAs(t, err, &authErr)
	require.Equal(t, "credenciales inválidas", authErr.Message)
}

func TestLogin_SecondLoginReplacesWholesale(t *testing.T) {
	backend := &fakeBackend{loginResults: []*api.LoginResult{
		{Token: "t1.p.s", RawUser: map[string]any{"id": float64(1), "nombre": "Uno", "role": "admin"}},
		{Token: "t2.p.s", RawUser: map[string]any{"id": float64(2), "email": "dos@x.com", "role": "user"}},
	}}
	meta := newMemMeta()
	s := newTestStore(backend, meta)

	require.NoError(t, s.Login(context.Background(), "uno@x.com", "pw"))
	require.NoError(t, s.Login(context.Background(), "dos@x.com", "pw"))

	ident := s.Identity()
	require.NotNil(t, ident)
	require.Equal(t, Identity{ID: 2, Email: "dos@x.com", Role: "user"}, *ident, "no merge of both logins")
	require.Equal(t, "t2.p.s", s.Token())
	require.Equal(t, "t2.p.s", string(meta.values["token"]))
}

func TestLogout_ThenInitializeYieldsEmptySession(t *testing.T) {
	backend := &fakeBackend{loginResults: []*api.LoginResult{{
		Token:   tokenID5,
		RawUser: map[string]any{"id": float64(5), "role": "admin"},
	}}}
	meta := newMemMeta()
	s := newTestStore(backend, meta)

	require.NoError(t, s.Login(context.Background(), "a@b.c", "pw"))
	s.Logout(context.Background())

	// simulate a restart
	s2 := newTestStore(backend, meta)
	require.NoError(t, s2.Initialize(context.Background()))
	s2.Reconcile(context.Background())

	require.Empty(t, s2.Token())
	require.Nil(t, s2.Identity())
}

func TestInitialize_RestoresPersistedSession(t *testing.T) {
	meta := newMemMeta()
	meta.values["token"] = []byte(tokenID5)
	meta.values["user"] = []byte(`{"id":5,"name":"Ana","role_id":1}`)

	s := newTestStore(&fakeBackend{}, meta)
	require.NoError(t, s.Initialize(context.Background()))

	ident := s.Identity()
	require.NotNil(t, ident)
	require.Equal(t, "Ana", ident.Nombre, "aliases normalized on load")
	require.Equal(t, "admin", ident.Role)
	require.Equal(t, tokenID5, s.Token())
}

func TestInitialize_CorruptIdentityStartsEmpty(t *testing.T) {
	meta := newMemMeta()
	meta.values["user"] = []byte(`{broken`)

	s := newTestStore(&fakeBackend{}, meta)
	require.NoError(t, s.Initialize(context.Background()))
	require.Nil(t, s.Identity())
}

func TestReconcile_FillsIdentityFromToken(t *testing.T) {
	meta := newMemMeta()
	meta.values["token"] = []byte(tokenID7Role3)

	backend := &fakeBackend{fetchUser: map[string]any{"id": float64(7), "nombre": "Pedro"}}
	s := newTestStore(backend, meta)
	require.NoError(t, s.Initialize(context.Background()))
	s.Reconcile(context.Background())

	ident := s.Identity()
	require.NotNil(t, ident)
	require.Equal(t, "Pedro", ident.Nombre)
	require.NotEmpty(t, meta.values["user"], "reconciled identity is persisted")
}

func TestReconcile_MalformedTokenIsSilent(t *testing.T) {
	meta := newMemMeta()
	meta.values["token"] = []byte("not-a-jwt")

	s := newTestStore(&fakeBackend{}, meta)
	require.NoError(t, s.Initialize(context.Background()))
	require.NotPanics(t, func() { s.Reconcile(context.Background()) })
	require.Nil(t, s.Identity())
}

func TestReconcile_NoopWhenIdentityPresent(t *testing.T) {
	meta := newMemMeta()
	meta.values["token"] = []byte(tokenID7Role3)
	meta.values["user"] = []byte(`{"id":7,"nombre":"Pedro","role":"user"}`)

	backend := &fakeBackend{}
	s := newTestStore(backend, meta)
	require.NoError(t, s.Initialize(context.Background()))
	s.Reconcile(context.Background())
	require.Zero(t, backend.fetchCalls)
}
