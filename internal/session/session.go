// Package session keeps the admin login marker and popup dismissal state
// in a small key/value store and decides whether a protected page may be
// shown.
package session

import (
	"strconv"
	"sync"
	"time"
)

// Keys used in a Store.
const (
	KeyAdminLoggedIn   = "adminLoggedIn"
	KeyAdminLoginTime  = "adminLoginTime"
	KeyClosedPopupID   = "closedPopupId"
	KeyClosedPopupTime = "closedPopupTime"
)

const (
	// MaxAge is how long an admin login stays valid.
	MaxAge = 24 * time.Hour
	// PopupDismissal is how long a closed popup stays hidden.
	PopupDismissal = 12 * time.Hour

	loggedInValue = "true"
)

// Store is a string key/value store scoped to one visitor.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Delete(key string)
}

// MemoryStore is a Store backed by a map. The zero value is ready to use.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *MemoryStore) Set(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.values == nil {
		m.values = make(map[string]string)
	}
	m.values[key] = value
}

func (m *MemoryStore) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
}

// Decision is the outcome of a guard check.
type Decision struct {
	Allowed   bool
	Redirect  string
	LoginTime time.Time
}

// Guard protects admin pages.
type Guard struct {
	MaxAge    time.Duration
	LoginPath string
}

// NewGuard returns a Guard with a 24 hour limit that redirects to /login.
func NewGuard() *Guard {
	return &Guard{MaxAge: MaxAge, LoginPath: "/login"}
}

// Check allows the visit when the store holds the login marker and a
// login time no older than MaxAge. Otherwise both keys are removed and the
// visitor is sent to LoginPath. An allowed check does not modify the store.
func (g *Guard) Check(s Store, now time.Time) Decision {
	loginTime, ok := LoginTime(s)
	if !ok || now.Sub(loginTime) > g.MaxAge {
		Clear(s)
		return Decision{Redirect: g.LoginPath}
	}
	return Decision{Allowed: true, LoginTime: loginTime}
}

// LoginTime returns the stored login time when the login marker is set.
func LoginTime(s Store) (time.Time, bool) {
	marker, ok := s.Get(KeyAdminLoggedIn)
	if !ok || marker != loggedInValue {
		return time.Time{}, false
	}
	raw, ok := s.Get(KeyAdminLoginTime)
	if !ok {
		return time.Time{}, false
	}
	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, false
	}
	return time.UnixMilli(ms), true
}

// MarkLoggedIn records a login at t.
func MarkLoggedIn(s Store, t time.Time) {
	s.Set(KeyAdminLoggedIn, loggedInValue)
	s.Set(KeyAdminLoginTime, strconv.FormatInt(t.UnixMilli(), 10))
}

// Clear removes the login marker and time.
func Clear(s Store) {
	s.Delete(KeyAdminLoggedIn)
	s.Delete(KeyAdminLoginTime)
}

// DismissPopup hides popup id for PopupDismissal from now.
func DismissPopup(s Store, id string, now time.Time) time.Time {
	until := now.Add(PopupDismissal)
	s.Set(KeyClosedPopupID, id)
	s.Set(KeyClosedPopupTime, strconv.FormatInt(until.UnixMilli(), 10))
	return until
}

// DismissedPopup returns the ID of the popup hidden at now, if any.
func DismissedPopup(s Store, now time.Time) (string, bool) {
	id, ok := s.Get(KeyClosedPopupID)
	if !ok || id == "" {
		return "", false
	}
	raw, ok := s.Get(KeyClosedPopupTime)
	if !ok {
		return "", false
	}
	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || !now.Before(time.UnixMilli(ms)) {
		return "", false
	}
	return id, true
}

// IsDismissed reports whether popup id is hidden at now.
func IsDismissed(s Store, id string, now time.Time) bool {
	dismissed, ok := DismissedPopup(s, now)
	return ok && dismissed == id
}
