// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"errors"
	"strconv"
	"strings"

	"github.com/danielhkuo/yazboz-plus/models"
)

var (
	ErrUnknownTeam  = errors.New("unknown team")
	ErrUnknownTrack = errors.New("unknown track")
)

// Quick-entry preset values. These are fixed Yaz Boz conventions with no
// generalizable formula behind them, so they stay as literals.
const (
	PresetClose       = -101 // closing a hand, remaining-points track
	PresetDoubleClose = -202 // double close, remaining-points track
	PresetHead        = 808  // "kafa" penalty event, remaining-points track
	PresetPenalty     = 101  // standard penalty, penalties track
)

type teamEntries struct {
	remaining []int
	penalties []int
}

// Accumulator collects per-team point and penalty entries for one match and
// keeps the derived totals current. Only the values matter for the totals;
// the entry lists preserve insertion order for display.
//
// An Accumulator is not safe for concurrent use. A match belongs to exactly
// one session, so callers serialize access per match.
type Accumulator struct {
	order   []string
	entries map[string]*teamEntries
}

// NewAccumulator creates an accumulator tracking the given teams, all at zero.
func NewAccumulator(teamIDs ...string) *Accumulator {
	acc := &Accumulator{
		order:   make([]string, 0, len(teamIDs)),
		entries: make(map[string]*teamEntries, len(teamIDs)),
	}
	for _, id := range teamIDs {
		if _, ok := acc.entries[id]; ok {
			continue
		}
		acc.order = append(acc.order, id)
		acc.entries[id] = &teamEntries{}
	}
	return acc
}

// Add appends a signed value to one team's track. The derived totals reflect
// the new entry as soon as Add returns.
func (a *Accumulator) Add(teamID, track string, value int) error {
	te, ok := a.entries[teamID]
	if !ok {
		return ErrUnknownTeam
	}
	switch track {
	case models.TrackRemaining:
		te.remaining = append(te.remaining, value)
	case models.TrackPenalties:
		te.penalties = append(te.penalties, value)
	default:
		return ErrUnknownTrack
	}
	return nil
}

// AddRaw parses free-text input and adds it as an entry. Empty or
// non-numeric input is silently discarded and AddRaw reports false; this
// mirrors the score sheet UX where a bad keystroke is a no-op, not an error.
// An unknown team or track is still an error from Add.
func (a *Accumulator) AddRaw(teamID, track, raw string) (bool, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return false, nil
	}
	value, err := strconv.Atoi(trimmed)
	if err != nil {
		return false, nil
	}
	if err := a.Add(teamID, track, value); err != nil {
		return false, err
	}
	return true, nil
}

// Score returns the current totals for one team.
func (a *Accumulator) Score(teamID string) (models.TeamScore, error) {
	te, ok := a.entries[teamID]
	if !ok {
		return models.TeamScore{}, ErrUnknownTeam
	}
	return te.score(teamID), nil
}

// Scores returns the current totals for every team, in registration order.
func (a *Accumulator) Scores() []models.TeamScore {
	scores := make([]models.TeamScore, 0, len(a.order))
	for _, id := range a.order {
		scores = append(scores, a.entries[id].score(id))
	}
	return scores
}

// Entries returns a copy of one team's raw entry list for a track.
func (a *Accumulator) Entries(teamID, track string) ([]int, error) {
	te, ok := a.entries[teamID]
	if !ok {
		return nil, ErrUnknownTeam
	}
	var src []int
	switch track {
	case models.TrackRemaining:
		src = te.remaining
	case models.TrackPenalties:
		src = te.penalties
	default:
		return nil, ErrUnknownTrack
	}
	out := make([]int, len(src))
	copy(out, src)
	return out, nil
}

func (te *teamEntries) score(teamID string) models.TeamScore {
	remaining := sum(te.remaining)
	penalties := sum(te.penalties)
	return models.TeamScore{
		TeamID:          teamID,
		RemainingPoints: remaining,
		Penalties:       penalties,
		TotalScore:      remaining + penalties,
	}
}

func sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}
