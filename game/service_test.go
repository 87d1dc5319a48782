// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package game

import (
	"testing"
	"time"

	"github.com/danielhkuo/yazboz-plus/models"
)

// fakeStore keeps match lists in memory. Seeding rows directly allows tests
// to simulate a store that already contains another user's matches.
type fakeStore struct {
	lists map[string][]models.Match
	saves int
}

func newFakeStore() *fakeStore {
	return &fakeStore{lists: make(map[string][]models.Match)}
}

func (f *fakeStore) Load(userID string) ([]models.Match, error) {
	out := make([]models.Match, len(f.lists[userID]))
	copy(out, f.lists[userID])
	return out, nil
}

func (f *fakeStore) Save(userID string, matches []models.Match) error {
	saved := make([]models.Match, len(matches))
	copy(saved, matches)
	f.lists[userID] = saved
	f.saves++
	return nil
}

func twoTeams() []models.TeamSetup {
	return []models.TeamSetup{
		{Name: "Aylin/Beste", Players: []string{"Aylin", "Beste"}},
		{Name: "Can/Deniz", Players: []string{"Can", "Deniz"}},
	}
}

func TestStartValidation(t *testing.T) {
	svc := NewService(newFakeStore())

	tests := []struct {
		name    string
		setups  []models.TeamSetup
		wantErr error
	}{
		{"one team", []models.TeamSetup{{Name: "A"}}, ErrTeamCount},
		{"three teams", []models.TeamSetup{{Name: "A"}, {Name: "B"}, {Name: "C"}}, ErrTeamCount},
		{"empty name", []models.TeamSetup{{Name: "A"}, {Name: "  "}}, ErrEmptyTeamName},
		{"valid", twoTeams(), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Start("tok", "user1", tt.setups)
			if err != tt.wantErr {
				t.Errorf("Start() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestStartAssignsIDsAndTrimsPlayers(t *testing.T) {
	svc := NewService(newFakeStore())

	v, err := svc.Start("tok", "user1", []models.TeamSetup{
		{Name: "  Aylin/Beste  ", Players: []string{" Aylin ", "", "Beste"}},
		{Name: "Can/Deniz", Players: nil},
	})
	if err != nil {
		t.Fatal(err)
	}

	if v.MatchID == "" {
		t.Error("expected a match ID")
	}
	if len(v.Teams) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(v.Teams))
	}
	if v.Teams[0].ID == "" || v.Teams[1].ID == "" || v.Teams[0].ID == v.Teams[1].ID {
		t.Error("teams need distinct non-empty IDs")
	}
	if v.Teams[0].Name != "Aylin/Beste" {
		t.Errorf("name not trimmed: %q", v.Teams[0].Name)
	}
	if len(v.Teams[0].Players) != 2 {
		t.Errorf("empty player slots should be dropped: %+v", v.Teams[0].Players)
	}
	if len(v.Teams[1].Players) != 0 {
		t.Errorf("players may be empty: %+v", v.Teams[1].Players)
	}

	// Both teams start at zero
	for _, s := range v.Scores {
		if s.RemainingPoints != 0 || s.Penalties != 0 || s.TotalScore != 0 {
			t.Errorf("scores should start at zero: %+v", s)
		}
	}
}

func TestStartReplacesActiveMatch(t *testing.T) {
	svc := NewService(newFakeStore())

	first, _ := svc.Start("tok", "user1", twoTeams())
	second, _ := svc.Start("tok", "user1", twoTeams())

	if first.MatchID == second.MatchID {
		t.Error("restart should create a fresh match")
	}

	v, err := svc.Scoreboard("tok")
	if err != nil {
		t.Fatal(err)
	}
	if v.MatchID != second.MatchID {
		t.Error("scoreboard should show the latest match")
	}
}

func TestAddEntrySilentDiscard(t *testing.T) {
	svc := NewService(newFakeStore())
	v, _ := svc.Start("tok", "user1", twoTeams())
	teamID := v.Teams[0].ID

	accepted, after, err := svc.AddEntry("tok", teamID, models.TrackRemaining, "abc")
	if err != nil {
		t.Fatal(err)
	}
	if accepted {
		t.Error("non-numeric input should not be accepted")
	}
	if after.Scores[0].TotalScore != 0 {
		t.Errorf("discarded input changed the total: %+v", after.Scores[0])
	}

	accepted, after, err = svc.AddEntry("tok", teamID, models.TrackRemaining, " -101 ")
	if err != nil {
		t.Fatal(err)
	}
	if !accepted {
		t.Error("valid input should be accepted")
	}
	if after.Scores[0].TotalScore != -101 {
		t.Errorf("total = %d, want -101", after.Scores[0].TotalScore)
	}
}

func TestAddEntryWithoutMatch(t *testing.T) {
	svc := NewService(newFakeStore())

	if _, _, err := svc.AddEntry("tok", "x", models.TrackRemaining, "1"); err != ErrNoActiveMatch {
		t.Errorf("expected ErrNoActiveMatch, got %v", err)
	}
	if _, err := svc.Scoreboard("tok"); err != ErrNoActiveMatch {
		t.Errorf("expected ErrNoActiveMatch, got %v", err)
	}
	if _, err := svc.Finish("tok"); err != ErrNoActiveMatch {
		t.Errorf("expected ErrNoActiveMatch, got %v", err)
	}
	if _, err := svc.SaveDraft("tok"); err != ErrNoActiveMatch {
		t.Errorf("expected ErrNoActiveMatch, got %v", err)
	}
	if err := svc.Cancel("tok"); err != ErrNoActiveMatch {
		t.Errorf("expected ErrNoActiveMatch, got %v", err)
	}
}

func TestFinishResolvesAndArchives(t *testing.T) {
	fs := newFakeStore()
	svc := NewService(fs)

	v, _ := svc.Start("tok", "user1", twoTeams())
	t1, t2 := v.Teams[0].ID, v.Teams[1].ID

	svc.AddEntry("tok", t1, models.TrackRemaining, "-101")
	svc.AddEntry("tok", t1, models.TrackRemaining, "50")
	svc.AddEntry("tok", t2, models.TrackRemaining, "30")
	svc.AddEntry("tok", t2, models.TrackPenalties, "101")

	match, err := svc.Finish("tok")
	if err != nil {
		t.Fatal(err)
	}

	if match.Status != models.StatusFinished {
		t.Errorf("status = %q", match.Status)
	}
	if match.Scores[0].TotalScore != -51 || match.Scores[1].TotalScore != 131 {
		t.Errorf("totals = %d, %d; want -51, 131",
			match.Scores[0].TotalScore, match.Scores[1].TotalScore)
	}
	if match.IsDraw {
		t.Error("not a draw")
	}
	if match.Winner == nil || *match.Winner != t1 {
		t.Errorf("winner = %v, want %s", match.Winner, t1)
	}

	// Archived exactly once, live state gone
	if len(fs.lists["user1"]) != 1 {
		t.Errorf("expected 1 archived match, got %d", len(fs.lists["user1"]))
	}
	if _, err := svc.Scoreboard("tok"); err != ErrNoActiveMatch {
		t.Error("finish should clear the live match")
	}
}

func TestFinishDraw(t *testing.T) {
	svc := NewService(newFakeStore())
	v, _ := svc.Start("tok", "user1", twoTeams())

	svc.AddEntry("tok", v.Teams[0].ID, models.TrackRemaining, "300")
	svc.AddEntry("tok", v.Teams[1].ID, models.TrackRemaining, "300")

	match, err := svc.Finish("tok")
	if err != nil {
		t.Fatal(err)
	}
	if !match.IsDraw {
		t.Error("equal totals must be a draw")
	}
	if match.Winner != nil {
		t.Errorf("draw must have nil winner, got %q", *match.Winner)
	}
}

func TestSaveDraftThenFinishUpdatesInPlace(t *testing.T) {
	fs := newFakeStore()
	svc := NewService(fs)

	v, _ := svc.Start("tok", "user1", twoTeams())
	t1 := v.Teams[0].ID

	svc.AddEntry("tok", t1, models.TrackRemaining, "50")
	draft, err := svc.SaveDraft("tok")
	if err != nil {
		t.Fatal(err)
	}
	if draft.Status != models.StatusDraft || draft.Winner != nil {
		t.Errorf("draft carries an outcome: %+v", draft)
	}

	// Keep playing after the save, then finish
	svc.AddEntry("tok", t1, models.TrackRemaining, "-101")
	match, err := svc.Finish("tok")
	if err != nil {
		t.Fatal(err)
	}

	if match.ID != draft.ID {
		t.Errorf("finish must reuse the draft's ID: %s != %s", match.ID, draft.ID)
	}

	list := fs.lists["user1"]
	if len(list) != 1 {
		t.Fatalf("draft should be replaced, not duplicated: %d records", len(list))
	}
	if list[0].Status != models.StatusFinished {
		t.Errorf("archived status = %q", list[0].Status)
	}
	if list[0].Scores[0].TotalScore != -51 {
		t.Errorf("archive reflects stale scores: %+v", list[0].Scores[0])
	}
}

func TestSaveDraftTwiceKeepsOneRecord(t *testing.T) {
	fs := newFakeStore()
	svc := NewService(fs)

	v, _ := svc.Start("tok", "user1", twoTeams())
	t1 := v.Teams[0].ID

	svc.AddEntry("tok", t1, models.TrackRemaining, "10")
	svc.SaveDraft("tok")
	svc.AddEntry("tok", t1, models.TrackRemaining, "20")
	svc.SaveDraft("tok")

	list := fs.lists["user1"]
	if len(list) != 1 {
		t.Fatalf("expected 1 record, got %d", len(list))
	}
	if list[0].Scores[0].TotalScore != 30 {
		t.Errorf("second save's scores should win: %+v", list[0].Scores[0])
	}
}

func TestPersistFiltersForeignMatches(t *testing.T) {
	fs := newFakeStore()
	// A contaminated store: someone else's match sits in user1's list
	foreign := models.Match{ID: "foreign", UserID: "user2", Status: models.StatusFinished}
	fs.lists["user1"] = []models.Match{foreign}

	svc := NewService(fs)
	svc.Start("tok", "user1", twoTeams())
	if _, err := svc.Finish("tok"); err != nil {
		t.Fatal(err)
	}

	for _, m := range fs.lists["user1"] {
		if m.UserID != "user1" {
			t.Errorf("stored list still contains foreign match %s", m.ID)
		}
	}
	if len(fs.lists["user1"]) != 1 {
		t.Errorf("expected only the new match, got %d", len(fs.lists["user1"]))
	}
}

func TestCancelDiscardsWithoutPersisting(t *testing.T) {
	fs := newFakeStore()
	svc := NewService(fs)

	svc.Start("tok", "user1", twoTeams())
	if err := svc.Cancel("tok"); err != nil {
		t.Fatal(err)
	}

	if fs.saves != 0 {
		t.Error("cancel must not write to the store")
	}
	if _, err := svc.Scoreboard("tok"); err != ErrNoActiveMatch {
		t.Error("cancel should clear the live match")
	}
}

func TestHistoryNewestFirst(t *testing.T) {
	fs := newFakeStore()
	now := time.Now()
	fs.lists["user1"] = []models.Match{
		{ID: "old", UserID: "user1", PlayedAt: now.Add(-2 * time.Hour)},
		{ID: "new", UserID: "user1", PlayedAt: now},
		{ID: "mid", UserID: "user1", PlayedAt: now.Add(-time.Hour)},
	}

	svc := NewService(fs)
	matches, err := svc.History("user1")
	if err != nil {
		t.Fatal(err)
	}

	got := []string{matches[0].ID, matches[1].ID, matches[2].ID}
	want := []string{"new", "mid", "old"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("history order %v, want %v", got, want)
		}
	}
}

func TestLookup(t *testing.T) {
	fs := newFakeStore()
	fs.lists["user1"] = []models.Match{{ID: "m1", UserID: "user1"}}

	svc := NewService(fs)

	m, found, err := svc.Lookup("user1", "m1")
	if err != nil || !found {
		t.Fatalf("expected to find m1: found=%v err=%v", found, err)
	}
	if m.ID != "m1" {
		t.Errorf("wrong match: %+v", m)
	}

	_, found, err = svc.Lookup("user1", "missing")
	if err != nil {
		t.Fatal(err)
	}
	if found {
		t.Error("missing match reported as found")
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	svc := NewService(newFakeStore())

	a, _ := svc.Start("tok-a", "user1", twoTeams())
	b, _ := svc.Start("tok-b", "user2", twoTeams())

	if a.MatchID == b.MatchID {
		t.Error("sessions share a match")
	}

	svc.AddEntry("tok-a", a.Teams[0].ID, models.TrackRemaining, "50")

	vb, _ := svc.Scoreboard("tok-b")
	for _, s := range vb.Scores {
		if s.TotalScore != 0 {
			t.Errorf("entry leaked across sessions: %+v", s)
		}
	}
}
