package session

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/frahmantamala/legaltech-workflows/internal"
)

type ctxKey string

const sessionKey ctxKey = "browser_session"

// Store keeps browser sessions server-side, keyed by the opaque id carried
// in the session cookie. Entries expire after the configured TTL; expired
// entries are purged on the cleanup interval. Nothing survives a restart.
type Store struct {
	cache      *cache.Cache
	cookieName string
	ttl        time.Duration
}

func NewStore(cfg internal.SessionConfig) *Store {
	return &Store{
		cache:      cache.New(cfg.TTL, cfg.CleanupInterval),
		cookieName: cfg.CookieName,
		ttl:        cfg.TTL,
	}
}

// Lookup returns the session referenced by the request cookie, if present
// and not expired.
func (s *Store) Lookup(r *http.Request) (*Session, bool) {
	c, err := r.Cookie(s.cookieName)
	if err != nil || c.Value == "" {
		return nil, false
	}
	if x, found := s.cache.Get(c.Value); found {
		return x.(*Session), true
	}
	return nil, false
}

// Ensure returns the request's session, creating one and setting the cookie
// when the browser has none yet.
func (s *Store) Ensure(w http.ResponseWriter, r *http.Request) *Session {
	if sess, ok := s.Lookup(r); ok {
		return sess
	}

	sess := &Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
	}
	s.cache.Set(sess.ID, sess, cache.DefaultExpiration)

	http.SetCookie(w, &http.Cookie{
		Name:     s.cookieName,
		Value:    sess.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sess
}

// Touch resets the session's TTL after a mutation.
func (s *Store) Touch(sess *Session) {
	s.cache.Set(sess.ID, sess, cache.DefaultExpiration)
}

// Clear drops the server-side session and expires the cookie.
func (s *Store) Clear(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(s.cookieName); err == nil && c.Value != "" {
		s.cache.Delete(c.Value)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     s.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Count reports live sessions, for the health endpoint.
func (s *Store) Count() int {
	return s.cache.ItemCount()
}

// ContextWith stores the resolved session in the request context.
func ContextWith(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, sessionKey, sess)
}

// FromContext returns the session placed in the context by the session
// middleware.
func FromContext(ctx context.Context) (*Session, bool) {
	sess, ok := ctx.Value(sessionKey).(*Session)
	return sess, ok && sess != nil
}
