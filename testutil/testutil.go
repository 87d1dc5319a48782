// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/yazboz-plus/auth"
	"github.com/danielhkuo/yazboz-plus/db"
	"github.com/danielhkuo/yazboz-plus/models"
)

// SetupTestDB creates a fresh in-memory sqlite database with the full schema.
// The pool is pinned to a single connection so the in-memory database lives
// for the whole test.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// CreateTestAccount inserts an account (password "test1234") and returns its ID
func CreateTestAccount(t *testing.T, db *sql.DB, username string) string {
	t.Helper()

	id, _ := auth.GenerateID(16)
	hash, err := auth.HashPassword("test1234")
	if err != nil {
		t.Fatalf("Failed to hash test password: %v", err)
	}

	_, err = db.Exec(`
		INSERT INTO account (id, username, username_lower, password_hash, email, created_at)
		VALUES ($1, $2, $3, $4, NULL, $5)
	`, id, username, username, hash, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test account: %v", err)
	}

	return id
}

// CreateTestSession opens a session for an account and returns the token
func CreateTestSession(t *testing.T, db *sql.DB, accountID string) string {
	t.Helper()

	token, _ := auth.GenerateSessionToken()
	_, err := db.Exec(`
		INSERT INTO session (token, account_id, created_at)
		VALUES ($1, $2, $3)
	`, token, accountID, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test session: %v", err)
	}

	return token
}

// InsertTestMatch writes an archived match row directly
func InsertTestMatch(t *testing.T, db *sql.DB, m models.Match) {
	t.Helper()

	teamsJSON, _ := json.Marshal(m.Teams)
	scoresJSON, _ := json.Marshal(m.Scores)

	var winner interface{}
	if m.Winner != nil {
		winner = *m.Winner
	}

	_, err := db.Exec(`
		INSERT INTO game (id, user_id, played_at, status, winner, is_draw, teams, scores)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, m.ID, m.UserID, m.PlayedAt, m.Status, winner, m.IsDraw,
		string(teamsJSON), string(scoresJSON))
	if err != nil {
		t.Fatalf("Failed to insert test match: %v", err)
	}
}

// TestMatch builds a plausible finished two-team match for a user
func TestMatch(userID, matchID string) models.Match {
	winner := "team-a"
	return models.Match{
		ID:       matchID,
		UserID:   userID,
		PlayedAt: time.Now(),
		Status:   models.StatusFinished,
		Teams: []models.Team{
			{ID: "team-a", Name: "Aylin/Beste", Players: []string{"Aylin", "Beste"}},
			{ID: "team-b", Name: "Can/Deniz", Players: []string{"Can", "Deniz"}},
		},
		Scores: []models.TeamScore{
			{TeamID: "team-a", RemainingPoints: -51, Penalties: 0, TotalScore: -51},
			{TeamID: "team-b", RemainingPoints: 30, Penalties: 101, TotalScore: 131},
		},
		Winner: &winner,
		IsDraw: false,
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
