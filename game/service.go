// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package game

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/danielhkuo/yazboz-plus/models"
	"github.com/danielhkuo/yazboz-plus/scoring"
	"github.com/google/uuid"
)

var (
	ErrNoActiveMatch = errors.New("no active match")
	ErrTeamCount     = errors.New("a match needs exactly two teams")
	ErrEmptyTeamName = errors.New("team names must not be empty")
)

// MatchStore is the slice of the persistence layer the engine needs.
// store.Matches implements it.
type MatchStore interface {
	Load(userID string) ([]models.Match, error)
	Save(userID string, matches []models.Match) error
}

// ActiveMatch is the in-memory, pre-finish state of one match. It is never
// persisted as-is; finishing or saving produces a models.Match snapshot.
type ActiveMatch struct {
	ID        string
	UserID    string
	StartedAt time.Time
	Teams     []models.Team
	Acc       *scoring.Accumulator
}

// View is the read-only projection of an active match handed to handlers.
type View struct {
	MatchID string
	UserID  string
	Teams   []models.Team
	Scores  []models.TeamScore
}

// Service owns the live matches (one per session) and turns them into
// archived records. All access to an accumulator goes through the service
// mutex, so concurrent requests on the same session cannot observe a
// partial sum.
type Service struct {
	mu      sync.Mutex
	active  map[string]*ActiveMatch // keyed by session token
	matches MatchStore
}

func NewService(matches MatchStore) *Service {
	return &Service{
		active:  make(map[string]*ActiveMatch),
		matches: matches,
	}
}

// Start creates a fresh active match for a session. Exactly two teams with
// non-empty trimmed names are required; empty player slots are dropped.
// Starting while a match is already active replaces it, matching the score
// sheet being torn off and restarted.
func (s *Service) Start(token, userID string, setups []models.TeamSetup) (View, error) {
	if len(setups) != 2 {
		return View{}, ErrTeamCount
	}

	teams := make([]models.Team, 0, len(setups))
	for _, setup := range setups {
		name := strings.TrimSpace(setup.Name)
		if name == "" {
			return View{}, ErrEmptyTeamName
		}
		players := make([]string, 0, len(setup.Players))
		for _, p := range setup.Players {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				players = append(players, trimmed)
			}
		}
		teams = append(teams, models.Team{
			ID:      uuid.NewString(),
			Name:    name,
			Players: players,
		})
	}

	teamIDs := make([]string, len(teams))
	for i, t := range teams {
		teamIDs[i] = t.ID
	}

	active := &ActiveMatch{
		ID:        uuid.NewString(),
		UserID:    userID,
		StartedAt: time.Now(),
		Teams:     teams,
		Acc:       scoring.NewAccumulator(teamIDs...),
	}

	s.mu.Lock()
	s.active[token] = active
	s.mu.Unlock()

	return view(active), nil
}

// Scoreboard returns the current state of a session's active match.
func (s *Service) Scoreboard(token string) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	active, ok := s.active[token]
	if !ok {
		return View{}, ErrNoActiveMatch
	}
	return view(active), nil
}

// AddEntry feeds one raw input value into the active match. Empty or
// non-numeric input is discarded without error and reported as not accepted;
// the returned view always reflects the post-entry totals.
func (s *Service) AddEntry(token, teamID, track, raw string) (bool, View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	active, ok := s.active[token]
	if !ok {
		return false, View{}, ErrNoActiveMatch
	}

	accepted, err := active.Acc.AddRaw(teamID, track, raw)
	if err != nil {
		return false, View{}, err
	}
	return accepted, view(active), nil
}

// Finish freezes the active match, resolves the outcome, archives it, and
// clears the session's live state. The persisted record replaces an earlier
// draft saved under the same match ID.
func (s *Service) Finish(token string) (models.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	active, ok := s.active[token]
	if !ok {
		return models.Match{}, ErrNoActiveMatch
	}

	scores := active.Acc.Scores()
	winner, isDraw := scoring.Resolve(scores)

	match := models.Match{
		ID:       active.ID,
		UserID:   active.UserID,
		PlayedAt: time.Now(),
		Status:   models.StatusFinished,
		Teams:    active.Teams,
		Scores:   scores,
		Winner:   winner,
		IsDraw:   isDraw,
	}

	if err := s.persist(match); err != nil {
		return models.Match{}, err
	}

	delete(s.active, token)
	return match, nil
}

// SaveDraft archives the current state without resolving an outcome. The
// match stays active, so play can continue and a later finish overwrites the
// draft in place.
func (s *Service) SaveDraft(token string) (models.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	active, ok := s.active[token]
	if !ok {
		return models.Match{}, ErrNoActiveMatch
	}

	match := models.Match{
		ID:       active.ID,
		UserID:   active.UserID,
		PlayedAt: time.Now(),
		Status:   models.StatusDraft,
		Teams:    active.Teams,
		Scores:   active.Acc.Scores(),
		Winner:   nil,
		IsDraw:   false,
	}

	if err := s.persist(match); err != nil {
		return models.Match{}, err
	}
	return match, nil
}

// Cancel discards the active match without persisting anything. A draft
// saved earlier stays in the archive.
func (s *Service) Cancel(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.active[token]; !ok {
		return ErrNoActiveMatch
	}
	delete(s.active, token)
	return nil
}

// Drop discards the active match if one exists. Used on logout, where a
// missing match is not an error.
func (s *Service) Drop(token string) {
	s.mu.Lock()
	delete(s.active, token)
	s.mu.Unlock()
}

// History returns a user's archived matches, newest first. Sorting here
// keeps display order out of the store.
func (s *Service) History(userID string) ([]models.Match, error) {
	matches, err := s.matches.Load(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].PlayedAt.After(matches[j].PlayedAt)
	})
	return matches, nil
}

// Lookup finds one archived match by ID within a user's history.
func (s *Service) Lookup(userID, matchID string) (models.Match, bool, error) {
	matches, err := s.matches.Load(userID)
	if err != nil {
		return models.Match{}, false, fmt.Errorf("failed to load history: %w", err)
	}
	for _, m := range matches {
		if m.ID == matchID {
			return m, true, nil
		}
	}
	return models.Match{}, false, nil
}

// persist merges one match into its owner's archive: load the list, drop any
// rows that do not belong to the user (defense against cross-user rows in
// the underlying store), replace an existing match with the same ID or
// append, then write the list back whole. The sequence is not transactional
// across sessions; concurrent writers are last-write-wins.
func (s *Service) persist(match models.Match) error {
	existing, err := s.matches.Load(match.UserID)
	if err != nil {
		return fmt.Errorf("failed to load matches: %w", err)
	}

	merged := make([]models.Match, 0, len(existing)+1)
	replaced := false
	for _, m := range existing {
		if m.UserID != match.UserID {
			continue
		}
		if m.ID == match.ID {
			merged = append(merged, match)
			replaced = true
			continue
		}
		merged = append(merged, m)
	}
	if !replaced {
		merged = append(merged, match)
	}

	if err := s.matches.Save(match.UserID, merged); err != nil {
		return fmt.Errorf("failed to save matches: %w", err)
	}
	return nil
}

func view(active *ActiveMatch) View {
	teams := make([]models.Team, len(active.Teams))
	copy(teams, active.Teams)
	return View{
		MatchID: active.ID,
		UserID:  active.UserID,
		Teams:   teams,
		Scores:  active.Acc.Scores(),
	}
}
