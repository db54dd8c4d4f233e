package session

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuardCheck(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	ms := func(t time.Time) string { return strconv.FormatInt(t.UnixMilli(), 10) }

	tests := []struct {
		name    string
		values  map[string]string
		allowed bool
	}{
		{"empty store", nil, false},
		{"marker without time", map[string]string{KeyAdminLoggedIn: "true"}, false},
		{"time without marker", map[string]string{KeyAdminLoginTime: ms(now)}, false},
		{"marker not true", map[string]string{KeyAdminLoggedIn: "false", KeyAdminLoginTime: ms(now)}, false},
		{"unparsable time", map[string]string{KeyAdminLoggedIn: "true", KeyAdminLoginTime: "yesterday"}, false},
		{"fresh login", map[string]string{KeyAdminLoggedIn: "true", KeyAdminLoginTime: ms(now.Add(-time.Hour))}, true},
		{"exactly 24h", map[string]string{KeyAdminLoggedIn: "true", KeyAdminLoginTime: ms(now.Add(-24 * time.Hour))}, true},
		{"over 24h", map[string]string{KeyAdminLoggedIn: "true", KeyAdminLoginTime: ms(now.Add(-24*time.Hour - time.Millisecond))}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewMemoryStore()
			for k, v := range tt.values {
				s.Set(k, v)
			}

			d := NewGuard().Check(s, now)
			assert.Equal(t, tt.allowed, d.Allowed)
			if tt.allowed {
				assert.Empty(t, d.Redirect)
				for k, v := range tt.values {
					got, ok := s.Get(k)
					assert.True(t, ok)
					assert.Equal(t, v, got, "allowed check must not change %s", k)
				}
				return
			}
			assert.Equal(t, "/login", d.Redirect)
			_, ok := s.Get(KeyAdminLoggedIn)
			assert.False(t, ok)
			_, ok = s.Get(KeyAdminLoginTime)
			assert.False(t, ok)
		})
	}
}

func TestMarkLoggedIn(t *testing.T) {
	s := NewMemoryStore()
	login := time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)
	MarkLoggedIn(s, login)

	got, ok := LoginTime(s)
	require.True(t, ok)
	assert.True(t, got.Equal(login))

	assert.True(t, NewGuard().Check(s, login.Add(23*time.Hour)).Allowed)
	assert.False(t, NewGuard().Check(s, login.Add(25*time.Hour)).Allowed)
	_, ok = LoginTime(s)
	assert.False(t, ok)
}

func TestPopupDismissal(t *testing.T) {
	s := NewMemoryStore()
	now := time.Date(2024, 12, 24, 20, 0, 0, 0, time.UTC)

	until := DismissPopup(s, "popup-1", now)
	assert.Equal(t, now.Add(12*time.Hour), until)

	assert.True(t, IsDismissed(s, "popup-1", now.Add(11*time.Hour)))
	assert.False(t, IsDismissed(s, "popup-2", now.Add(time.Hour)))
	assert.False(t, IsDismissed(s, "popup-1", now.Add(12*time.Hour)))

	id, ok := DismissedPopup(s, now)
	assert.True(t, ok)
	assert.Equal(t, "popup-1", id)
}

func TestCookieStoreRoundTrip(t *testing.T) {
	cs := NewCookieStore("0123456789abcdef0123456789abcdef", "test_session", false)
	login := time.Now().Truncate(time.Millisecond)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	rec := httptest.NewRecorder()
	store, err := cs.Open(req)
	require.NoError(t, err)
	MarkLoggedIn(store, login)
	require.NoError(t, store.Save(req, rec))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "test_session", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	next := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
	next.AddCookie(cookies[0])
	reopened, err := cs.Open(next)
	require.NoError(t, err)

	d := NewGuard().Check(reopened, login.Add(time.Hour))
	assert.True(t, d.Allowed)
	assert.True(t, d.LoginTime.Equal(login))
}

func TestCookieStoreRejectsForeignCookie(t *testing.T) {
	signer := NewCookieStore("0123456789abcdef0123456789abcdef", "s", false)
	other := NewCookieStore("fedcba9876543210fedcba9876543210", "s", false)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	store, err := signer.Open(req)
	require.NoError(t, err)
	MarkLoggedIn(store, time.Now())
	require.NoError(t, store.Save(req, rec))

	next := httptest.NewRequest(http.MethodGet, "/", nil)
	next.AddCookie(rec.Result().Cookies()[0])
	reopened, err := other.Open(next)
	require.NoError(t, err)
	assert.False(t, NewGuard().Check(reopened, time.Now()).Allowed)
}
