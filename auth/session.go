// Package auth holds the signed-in credential state: bearer tokens are
// written on login, read at request time through the govista.TokenSource
// interface and cleared on logout or whenever the API answers 401.
package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

const RoleUser = "user"

const RoleOperator = "operator"

// Session is one browser session's credentials and display data.
type Session struct {
	Token      string
	AdminToken string
	Role       string
	Name       string
}

func (s Session) IsOperator() bool {
	return s.Role == RoleOperator
}

// Store keeps sessions in memory with a TTL; an expired session simply
// forces a new login.
type Store struct {
	sessions *cache.Cache
	log      *slog.Logger
}

func NewStore(ttl time.Duration, log *slog.Logger) *Store {
	return &Store{
		sessions: cache.New(ttl, 10*time.Minute),
		log:      log.With("component", "auth"),
	}
}

// Create stores the session and returns its id for the cookie.
func (s *Store) Create(sess Session) string {
	id := uuid.NewString()
	s.sessions.SetDefault(id, sess)
	return id
}

func (s *Store) Get(id string) (Session, bool) {
	cached, found := s.sessions.Get(id)

	if !found {
		return Session{}, false
	}

	return cached.(Session), true
}

func (s *Store) Delete(id string) {
	s.sessions.Delete(id)
}

type contextKey struct{}

// ContextWithSessionID tags a request context with the session the
// request belongs to.
func ContextWithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

func SessionIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(contextKey{}).(string)
	return id, ok
}

// Tokens implements govista.TokenSource: it reads the tokens of the
// session carried by the request context.
func (s *Store) Tokens(ctx context.Context) (user, admin string) {
	id, ok := SessionIDFromContext(ctx)

	if !ok {
		return "", ""
	}

	sess, found := s.Get(id)

	if !found {
		return "", ""
	}

	return sess.Token, sess.AdminToken
}

// Clear implements govista.TokenSource: it drops the session carried by
// the request context after the API reported it unauthorized.
func (s *Store) Clear(ctx context.Context) {
	id, ok := SessionIDFromContext(ctx)

	if !ok {
		return
	}

	s.log.Info("clearing stored credentials", "sessionId", id)
	s.Delete(id)
}
