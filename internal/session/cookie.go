package session

import (
	"fmt"
	"net/http"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
)

// CookieStore opens per-request Stores kept in a signed cookie.
type CookieStore struct {
	store *sessions.CookieStore
	name  string
}

// NewCookieStore creates a CookieStore signing cookies with secret. An
// empty secret gets a random key, so sessions do not survive a restart.
func NewCookieStore(secret, name string, secure bool) *CookieStore {
	key := []byte(secret)
	if len(key) == 0 {
		key = securecookie.GenerateRandomKey(32)
	}
	store := sessions.NewCookieStore(key)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &CookieStore{store: store, name: name}
}

// Open loads the visitor's session. A cookie that fails verification
// yields a fresh, empty session rather than an error.
func (c *CookieStore) Open(r *http.Request) (*GorillaStore, error) {
	sess, err := c.store.Get(r, c.name)
	if err != nil && sess == nil {
		return nil, fmt.Errorf("unable to get session %s: %w", c.name, err)
	}
	return &GorillaStore{session: sess, store: c.store}, nil
}

// GorillaStore implements Store on top of a gorilla session. Changes are
// written back by Save.
type GorillaStore struct {
	session *sessions.Session
	store   sessions.Store
}

func (g *GorillaStore) Get(key string) (string, bool) {
	v, ok := g.session.Values[key].(string)
	return v, ok
}

func (g *GorillaStore) Set(key, value string) {
	g.session.Values[key] = value
}

func (g *GorillaStore) Delete(key string) {
	delete(g.session.Values, key)
}

// Save writes the session cookie to w.
func (g *GorillaStore) Save(r *http.Request, w http.ResponseWriter) error {
	return g.store.Save(r, w, g.session)
}
