package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/khmiq/ecommerce/catalog"
	"github.com/khmiq/ecommerce/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempSessions(t *testing.T) *Sessions {
	t.Helper()
	return NewSessions(filepath.Join(t.TempDir(), "user-storage.json"))
}

func meClient(t *testing.T, handler http.HandlerFunc) *catalog.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return catalog.New(catalog.Config{BaseURL: srv.URL, HTTPClient: srv.Client(), Retries: -1})
}

func TestInitOnFirstRunStartsLoggedOut(t *testing.T) {
	s := tempSessions(t)
	require.NoError(t, s.Init())
	assert.Nil(t, s.Current())
}

func TestSetPersistsAndHydrates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user-storage.json")
	s := NewSessions(path)
	require.NoError(t, s.Init())
	require.NoError(t, s.Set(&models.Session{Email: "ada@shop.io", Token: "tok-1"}))

	// The slot carries the session under a "user" key.
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var slot map[string]models.Session
	require.NoError(t, json.Unmarshal(raw, &slot))
	assert.Equal(t, "tok-1", slot["user"].Token)

	// A fresh store over the same slot restores the session.
	restored := NewSessions(path)
	require.NoError(t, restored.Init())
	cur := restored.Current()
	require.NotNil(t, cur)
	assert.Equal(t, "ada@shop.io", cur.Email)
	assert.Equal(t, "tok-1", cur.Token)
}

func TestLogoutEmptiesTheSlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user-storage.json")
	s := NewSessions(path)
	require.NoError(t, s.Set(&models.Session{Email: "ada@shop.io", Token: "tok-1"}))
	require.NoError(t, s.Logout())
	assert.Nil(t, s.Current())

	restored := NewSessions(path)
	require.NoError(t, restored.Init())
	assert.Nil(t, restored.Current())
}

func TestInitToleratesCorruptSlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user-storage.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	s := NewSessions(path)
	require.NoError(t, s.Init())
	assert.Nil(t, s.Current())
}

func TestCurrentReturnsACopy(t *testing.T) {
	s := tempSessions(t)
	require.NoError(t, s.Set(&models.Session{Email: "ada@shop.io", Token: "tok-1"}))

	cur := s.Current()
	cur.Token = "tampered"
	assert.Equal(t, "tok-1", s.Current().Token)
}

func TestFetchUserDetailsMergesPreservingEmailAndToken(t *testing.T) {
	client := meClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/me", r.URL.Path)
		require.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		w.Write([]byte(`{"firstname":"Ada","lastname":"Lovelace","img":"https://cdn/a.png","regionId":"r1","phoneNumber":"+99890"}`))
	})

	s := tempSessions(t)
	require.NoError(t, s.Set(&models.Session{Email: "ada@shop.io", Token: "tok-1"}))
	require.NoError(t, s.FetchUserDetails(context.Background(), client))

	cur := s.Current()
	require.NotNil(t, cur)
	assert.Equal(t, "ada@shop.io", cur.Email)
	assert.Equal(t, "tok-1", cur.Token)
	assert.Equal(t, "Ada", cur.Firstname)
	assert.Equal(t, "Lovelace", cur.Lastname)
	assert.Equal(t, "r1", cur.RegionID)
}

func TestFetchUserDetailsClearsSessionOnRejectedToken(t *testing.T) {
	client := meClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	path := filepath.Join(t.TempDir(), "user-storage.json")
	s := NewSessions(path)
	require.NoError(t, s.Set(&models.Session{Email: "ada@shop.io", Token: "stale"}))

	err := s.FetchUserDetails(context.Background(), client)
	require.ErrorIs(t, err, catalog.ErrAuthRequired)
	assert.Nil(t, s.Current())

	// The cleared state is durable too.
	restored := NewSessions(path)
	require.NoError(t, restored.Init())
	assert.Nil(t, restored.Current())
}

func TestFetchUserDetailsIsANoOpWhenLoggedOut(t *testing.T) {
	called := false
	client := meClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	s := tempSessions(t)
	require.NoError(t, s.FetchUserDetails(context.Background(), client))
	assert.False(t, called)
}

func TestFetchUserDetailsDropsResultWhenSessionChanged(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	client := meClient(t, func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-release
		w.Write([]byte(`{"firstname":"Old","lastname":"User"}`))
	})

	s := tempSessions(t)
	require.NoError(t, s.Set(&models.Session{Email: "old@shop.io", Token: "tok-old"}))

	// A re-login races the refresh: the refresh read tok-old, but by the
	// time the response lands the slot holds a different token. The stale
	// result must be dropped, not merged.
	done := make(chan error, 1)
	go func() { done <- s.FetchUserDetails(context.Background(), client) }()
	<-started
	require.NoError(t, s.Set(&models.Session{Email: "new@shop.io", Token: "tok-new"}))
	close(release)
	require.NoError(t, <-done)

	after := s.Current()
	require.NotNil(t, after)
	assert.Equal(t, "new@shop.io", after.Email)
	assert.Equal(t, "tok-new", after.Token)
	assert.Empty(t, after.Firstname)
}
