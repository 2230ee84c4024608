package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveVotes(t *testing.T) {
	players := []Player{
		{Name: "A", Role: RoleInsider},
		{Name: "B", Role: RoleCitizen},
		{Name: "C", Role: RoleCitizen},
	}

	tests := []struct {
		name  string
		votes map[string]int
		want  GameResult
	}{
		{
			name:  "tie for the top goes to insiders",
			votes: map[string]int{"A": 2, "B": 2, "C": 1},
			want:  ResultInsiderWin,
		},
		{
			name:  "insider voted out",
			votes: map[string]int{"A": 3, "B": 1},
			want:  ResultCitizenWin,
		},
		{
			name:  "citizen voted out",
			votes: map[string]int{"A": 1, "B": 3, "C": 0},
			want:  ResultInsiderWin,
		},
		{
			name:  "all zero is a tie",
			votes: map[string]int{"A": 0, "B": 0},
			want:  ResultInsiderWin,
		},
		{
			name:  "no votes at all",
			votes: map[string]int{},
			want:  ResultInsiderWin,
		},
		{
			name:  "single zero entry still leads",
			votes: map[string]int{"A": 0},
			want:  ResultCitizenWin,
		},
		{
			name:  "unknown name is not an insider",
			votes: map[string]int{"Ghost": 4, "A": 1},
			want:  ResultInsiderWin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveVotes(players, tt.votes))
		})
	}
}

func TestResolveVotes_TieIgnoresRoles(t *testing.T) {
	votes := map[string]int{"A": 2, "B": 2, "C": 1}
	for _, insider := range []string{"A", "B", "C"} {
		players := []Player{
			{Name: "A", Role: RoleCitizen},
			{Name: "B", Role: RoleCitizen},
			{Name: "C", Role: RoleCitizen},
		}
		for i := range players {
			if players[i].Name == insider {
				players[i].Role = RoleInsider
			}
		}
		assert.Equal(t, ResultInsiderWin, ResolveVotes(players, votes), "insider=%s", insider)
	}
}

func TestTallyVotes(t *testing.T) {
	players := []Player{
		{Name: "A", Role: RoleInsider},
		{Name: "B", Role: RoleCitizen},
		{Name: "C", Role: RoleCitizen},
	}

	tally := TallyVotes(players, map[string]int{"C": 2, "A": 2, "B": 1})
	assert.True(t, tally.IsTie)
	assert.Equal(t, []string{"A", "C"}, tally.TopVoted)
	assert.Equal(t, 2, tally.MaxVotes)
	assert.Empty(t, tally.Accused)

	tally = TallyVotes(players, map[string]int{"A": 3, "B": 1})
	assert.False(t, tally.IsTie)
	assert.Equal(t, "A", tally.Accused)
	assert.Equal(t, ResultCitizenWin, tally.Winner)
}

func TestTallyVotes_CopiesCounts(t *testing.T) {
	players := []Player{{Name: "A", Role: RoleInsider}, {Name: "B", Role: RoleCitizen}}
	votes := map[string]int{"A": 3, "B": 1}

	tally := TallyVotes(players, votes)
	votes["A"] = 0
	votes["C"] = 9

	assert.Equal(t, map[string]int{"A": 3, "B": 1}, tally.Counts)
}
