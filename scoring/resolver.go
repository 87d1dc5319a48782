// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import "github.com/danielhkuo/yazboz-plus/models"

// Resolve determines the outcome for a set of final team scores.
//
// Yaz Boz scores are a liability: penalties add to the total and closing a
// hand subtracts, so the lowest total wins. If the minimum total is shared by
// more than one team the match is a draw and the winner is nil.
func Resolve(scores []models.TeamScore) (winner *string, isDraw bool) {
	if len(scores) == 0 {
		return nil, false
	}

	min := scores[0].TotalScore
	for _, s := range scores[1:] {
		if s.TotalScore < min {
			min = s.TotalScore
		}
	}

	var winnerID string
	count := 0
	for _, s := range scores {
		if s.TotalScore == min {
			winnerID = s.TeamID
			count++
		}
	}

	if count > 1 {
		return nil, true
	}
	return &winnerID, false
}
