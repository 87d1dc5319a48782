// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/yazboz-plus/game"
	"github.com/danielhkuo/yazboz-plus/models"
	"github.com/danielhkuo/yazboz-plus/store"
	"github.com/danielhkuo/yazboz-plus/testutil"
)

type testEnv struct {
	db       *sql.DB
	sessions *store.Sessions
	games    *game.Service
	auth     *AuthHandler
	match    *MatchHandler
	history  *HistoryHandler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	conn := testutil.SetupTestDB(t)
	t.Cleanup(func() { conn.Close() })

	accounts := store.NewAccounts(conn)
	sessions := store.NewSessions(conn)
	games := game.NewService(store.NewMatches(conn))

	return &testEnv{
		db:       conn,
		sessions: sessions,
		games:    games,
		auth:     NewAuthHandler(accounts, sessions, games),
		match:    NewMatchHandler(games, sessions),
		history:  NewHistoryHandler(games, sessions),
	}
}

// loginTestUser creates an account with a live session and returns the token
func loginTestUser(t *testing.T, env *testEnv, username string) string {
	t.Helper()
	accountID := testutil.CreateTestAccount(t, env.db, username)
	return testutil.CreateTestSession(t, env.db, accountID)
}

func sessionHeader(token string) map[string]string {
	return map[string]string{"X-Session-Token": token}
}

func TestRegisterValidation(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name       string
		body       models.RegisterRequest
		wantStatus int
	}{
		{
			"valid",
			models.RegisterRequest{Username: "aylin", Password: "sifre123", ConfirmPassword: "sifre123"},
			201,
		},
		{
			"empty username",
			models.RegisterRequest{Username: "  ", Password: "sifre123", ConfirmPassword: "sifre123"},
			400,
		},
		{
			"short password",
			models.RegisterRequest{Username: "beste", Password: "abc", ConfirmPassword: "abc"},
			400,
		},
		{
			"confirmation mismatch",
			models.RegisterRequest{Username: "beste", Password: "sifre123", ConfirmPassword: "sifre124"},
			400,
		},
		{
			"duplicate username",
			models.RegisterRequest{Username: "Aylin", Password: "other456", ConfirmPassword: "other456"},
			409,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/auth/register", tt.body, nil)
			w := httptest.NewRecorder()
			env.auth.Register(w, req)
			testutil.AssertStatus(t, w, tt.wantStatus)
		})
	}
}

func TestRegisterReturnsAccount(t *testing.T) {
	env := newTestEnv(t)

	req := testutil.MakeRequest("POST", "/auth/register", models.RegisterRequest{
		Username:        "  Aylin  ",
		Password:        "sifre123",
		ConfirmPassword: "sifre123",
	}, nil)
	w := httptest.NewRecorder()
	env.auth.Register(w, req)
	testutil.AssertStatus(t, w, 201)

	var resp models.RegisterResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.AccountID == "" {
		t.Error("expected an account ID")
	}
	if resp.Username != "Aylin" {
		t.Errorf("username = %q, want trimmed %q", resp.Username, "Aylin")
	}
}

func TestLoginAndMe(t *testing.T) {
	env := newTestEnv(t)
	testutil.CreateTestAccount(t, env.db, "aylin")

	req := testutil.MakeRequest("POST", "/auth/login", models.LoginRequest{
		Username: "AYLIN",
		Password: "test1234",
	}, nil)
	w := httptest.NewRecorder()
	env.auth.Login(w, req)
	testutil.AssertStatus(t, w, 200)

	var resp models.LoginResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.SessionToken == "" {
		t.Fatal("expected a session token")
	}
	if resp.Account.Username != "aylin" {
		t.Errorf("account username = %q", resp.Account.Username)
	}

	// The returned token resolves via /auth/me
	req = testutil.MakeRequest("GET", "/auth/me", nil, sessionHeader(resp.SessionToken))
	w = httptest.NewRecorder()
	env.auth.Me(w, req)
	testutil.AssertStatus(t, w, 200)

	var acct models.Account
	testutil.AssertJSON(t, w, &acct)
	if acct.ID != resp.Account.ID {
		t.Errorf("me resolves to %s, want %s", acct.ID, resp.Account.ID)
	}
}

func TestLoginFailures(t *testing.T) {
	env := newTestEnv(t)
	testutil.CreateTestAccount(t, env.db, "aylin")

	tests := []struct {
		name       string
		body       models.LoginRequest
		wantStatus int
	}{
		{"wrong password", models.LoginRequest{Username: "aylin", Password: "wrong"}, 401},
		{"unknown user", models.LoginRequest{Username: "nobody", Password: "test1234"}, 401},
		{"missing fields", models.LoginRequest{}, 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/auth/login", tt.body, nil)
			w := httptest.NewRecorder()
			env.auth.Login(w, req)
			testutil.AssertStatus(t, w, tt.wantStatus)
		})
	}
}

func TestLogoutEndsSessionAndDropsMatch(t *testing.T) {
	env := newTestEnv(t)
	token := loginTestUser(t, env, "aylin")

	if _, err := env.games.Start(token, "acct", []models.TeamSetup{
		{Name: "A"}, {Name: "B"},
	}); err != nil {
		t.Fatal(err)
	}

	req := testutil.MakeRequest("POST", "/auth/logout", nil, sessionHeader(token))
	w := httptest.NewRecorder()
	env.auth.Logout(w, req)
	testutil.AssertStatus(t, w, 204)

	// Token is dead and the live match went with it
	if _, err := env.sessions.Get(token); err != store.ErrSessionNotFound {
		t.Errorf("session survived logout: %v", err)
	}
	if _, err := env.games.Scoreboard(token); err != game.ErrNoActiveMatch {
		t.Errorf("live match survived logout: %v", err)
	}
}

func TestSessionRequired(t *testing.T) {
	env := newTestEnv(t)

	// No header at all
	req := testutil.MakeRequest("GET", "/auth/me", nil, nil)
	w := httptest.NewRecorder()
	env.auth.Me(w, req)
	testutil.AssertStatus(t, w, 401)

	// Made-up token
	req = testutil.MakeRequest("GET", "/auth/me", nil, sessionHeader("bogus"))
	w = httptest.NewRecorder()
	env.auth.Me(w, req)
	testutil.AssertStatus(t, w, 401)
}
