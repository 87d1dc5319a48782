// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package scoring implements the Yaz Boz score sheet: per-team accumulation of
round entries and resolution of the final outcome.

# Accumulation

An Accumulator tracks two independent entry lists per team, remaining points
and penalties, and derives totals from them:

	acc := scoring.NewAccumulator(team1.ID, team2.ID)
	acc.Add(team1.ID, models.TrackRemaining, -101)
	acc.Add(team1.ID, models.TrackPenalties, 101)
	score, _ := acc.Score(team1.ID) // TotalScore == 0

TotalScore is always RemainingPoints + Penalties, recomputed from the entry
lists on every read. Entries are signed; drop actions subtract.

Free-text input goes through AddRaw, which silently discards empty or
non-numeric values:

	accepted, err := acc.AddRaw(teamID, models.TrackRemaining, "50")

# Presets

The standard one-tap entries are named constants:

	PresetClose       = -101  (remaining points)
	PresetDoubleClose = -202  (remaining points)
	PresetHead        = 808   (remaining points)
	PresetPenalty     = 101   (penalties)

They are ordinary entries, not a separate code path.

# Resolution

Resolve picks the winner from final totals. Lower is better; a shared minimum
is a draw:

	winner, isDraw := scoring.Resolve(acc.Scores())

The package is pure: no I/O, no clock, no storage.
*/
package scoring
