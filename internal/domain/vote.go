package domain

import "sort"

// VoteTally is the outcome of counting insider votes
type VoteTally struct {
	Counts   map[string]int `json:"counts"`
	TopVoted []string       `json:"topVoted"` // Sorted names sharing the highest count
	MaxVotes int            `json:"maxVotes"`
	IsTie    bool           `json:"isTie"`
	Accused  string         `json:"accused,omitempty"` // Set only when one player leads
	Winner   GameResult     `json:"winner"`
}

// TallyVotes finds the most voted players and decides the winner. A tie
// for the top count, including everyone at zero, goes to the insiders.
// Otherwise citizens win exactly when the single top-voted player is an
// insider.
func TallyVotes(players []Player, votes map[string]int) *VoteTally {
	tally := &VoteTally{
		Counts:   make(map[string]int, len(votes)),
		TopVoted: make([]string, 0),
	}

	first := true
	for name, count := range votes {
		tally.Counts[name] = count
		switch {
		case first || count > tally.MaxVotes:
			tally.MaxVotes = count
			tally.TopVoted = []string{name}
			first = false
		case count == tally.MaxVotes:
			tally.TopVoted = append(tally.TopVoted, name)
		}
	}
	sort.Strings(tally.TopVoted)

	tally.IsTie = len(tally.TopVoted) != 1
	if tally.IsTie {
		tally.Winner = ResultInsiderWin
		return tally
	}

	tally.Accused = tally.TopVoted[0]
	if p, ok := FindPlayer(players, tally.Accused); ok && p.Role.IsInsider() {
		tally.Winner = ResultCitizenWin
	} else {
		tally.Winner = ResultInsiderWin
	}
	return tally
}

// ResolveVotes returns only the winning team of TallyVotes
func ResolveVotes(players []Player, votes map[string]int) GameResult {
	return TallyVotes(players, votes).Winner
}
