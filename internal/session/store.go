package session

import (
	"context"
	"encoding/json"

	"github.com/campus-suite/campusctl/internal/api"
	"github.com/campus-suite/campusctl/internal/logging"
	"github.com/campus-suite/campusctl/internal/storage/metadata"
)

// Persisted keys. The values mirror the source system's client-side store:
// the raw token string and the JSON-serialized identity.
const (
	tokenKey = "token"
	userKey  = "user"
)

// Backend is the slice of the API client the store needs.
type Backend interface {
	Login(ctx context.Context, email, password string) (*api.LoginResult, error)
	FetchUser(ctx context.Context, token string, id int64) (map[string]any, error)
}

// Store is the single authoritative holder of the current session. Every
// mutation of token or identity writes through to the metadata repository
// immediately, so a restart reconstructs the session without
// re-authenticating.
//
// Store is not safe for concurrent mutation. Two interleaved Login calls
// race and the last one to finish wins, matching the source system.
type Store struct {
	backend Backend
	meta    metadata.Repository
	log     logging.Logger

	token    string
	identity Identity
}

func NewStore(backend Backend, meta metadata.Repository, log logging.Logger) *Store {
	return &Store{backend: backend, meta: meta, log: log}
}

// Initialize loads any persisted token and identity. A persisted identity
// that parses is normalized and used as-is; parse failures leave the
// identity empty. Initialize never touches the network; call Reconcile
// afterwards to fill an empty identity from the token.
func (s *Store) Initialize(ctx context.Context) error {
	if raw, err := s.meta.Get(ctx, tokenKey); err != nil {
		return err
	} else if len(raw) > 0 {
		s.token = string(raw)
	}

	raw, err := s.meta.Get(ctx, userKey)
	if err != nil {
		return err
	}
	if len(raw) > 0 {
		var m map[string]any
		if err := json.Unmarshal(raw, &m); err != nil {
			s.log.Warn(ctx, "persisted identity unreadable, starting empty", "error", err)
		} else {
			s.identity = NormalizeIdentity(m)
		}
	}
	return nil
}

// Reconcile derives the identity from the token payload when a token is
// present but the identity has no recognizable fields, then persists the
// result. All failures are swallowed; the session simply stays degraded.
func (s *Store) Reconcile(ctx context.Context) {
	if s.token == "" || !s.identity.Empty() {
		return
	}
	ident, ok := s.deriveAndEnrich(ctx, s.token)
	if !ok {
		return
	}
	s.identity = ident
	s.persistIdentity(ctx)
}

// Token returns the current bearer token, "" when logged out.
func (s *Store) Token() string {
	return s.token
}

// Identity returns the current identity, nil when logged out.
func (s *Store) Identity() *Identity {
	if s.identity.Empty() {
		return nil
	}
	ident := s.identity
	return &ident
}

func (s *Store) IsAuthenticated() bool {
	return s.token != "" && !s.identity.Empty()
}

// Login authenticates against the backend and replaces the session state
// wholesale. Failures come back as *AuthenticationError with a message
// suitable for the login form; the previous session state is untouched on
// failure.
func (s *Store) Login(ctx context.Context, email, password string) error {
	res, err := s.backend.Login(ctx, email, password)
	if err != nil {
		return &AuthenticationError{Message: err.Error()}
	}
	if res.Token == "" {
		return &AuthenticationError{Message: "no token received"}
	}

	var ident Identity
	if res.RawUser != nil {
		ident = NormalizeIdentity(res.RawUser)
	} else {
		// Token-only response: fall back to the payload, enriching once via
		// the profile endpoint when the name is missing.
		ident, _ = s.deriveAndEnrich(ctx, res.Token)
	}

	s.token = res.Token
	s.identity = ident
	s.persistToken(ctx)
	s.persistIdentity(ctx)
	return nil
}

// Logout clears the session and its persisted copies.
func (s *Store) Logout(ctx context.Context) {
	s.token = ""
	s.identity = Identity{}
	if err := s.meta.Delete(ctx, tokenKey); err != nil {
		s.log.Warn(ctx, "failed to remove persisted token", "error", err)
	}
	if err := s.meta.Delete(ctx, userKey); err != nil {
		s.log.Warn(ctx, "failed to remove persisted identity", "error", err)
	}
}

// deriveAndEnrich decodes the token payload into an identity and, when the
// name is missing but an id is present, makes one profile-fetch attempt to
// fill it in. Enrichment failures keep the token-derived values. The second
// return is false when the token payload could not be decoded at all.
func (s *Store) deriveAndEnrich(ctx context.Context, token string) (Identity, bool) {
	payload, err := DecodeTokenPayload(token)
	if err != nil {
		s.log.Debug(ctx, "token payload undecodable", "error", err)
		return Identity{}, false
	}

	ident := identityFromTokenPayload(payload)
	if ident.Nombre == "" && ident.ID != 0 {
		remote, err := s.backend.FetchUser(ctx, token, ident.ID)
		if err != nil {
			s.log.Debug(ctx, "profile enrichment failed", "user_id", ident.ID, "error", err)
			return ident, true
		}
		if remote != nil {
			return NormalizeIdentity(remote), true
		}
	}
	return ident, true
}

func (s *Store) persistToken(ctx context.Context) {
	if err := s.meta.Set(ctx, tokenKey, []byte(s.token)); err != nil {
		s.log.Warn(ctx, "failed to persist token", "error", err)
	}
}

func (s *Store) persistIdentity(ctx context.Context) {
	if s.identity.Empty() {
		if err := s.meta.Delete(ctx, userKey); err != nil {
			s.log.Warn(ctx, "failed to remove persisted identity", "error", err)
		}
		return
	}
	raw, err := json.Marshal(s.identity)
	if err != nil {
		s.log.Warn(ctx, "failed to encode identity", "error", err)
		return
	}
	if err := s.meta.Set(ctx, userKey, raw); err != nil {
		s.log.Warn(ctx, "failed to persist identity", "error", err)
	}
}
