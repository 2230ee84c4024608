package domain

import "strings"

// Machine is the game state machine. Reduce is a pure mapping from a state
// and an action to the next state; the only outside input is rng, used when
// dealing roles and drawing topics.
type Machine struct {
	topics TopicPool
	rng    Rand
}

// NewMachine creates a machine drawing topics from the given pool
func NewMachine(topics TopicPool, rng Rand) *Machine {
	return &Machine{
		topics: topics,
		rng:    rng,
	}
}

// Topics returns the pool the machine draws from
func (m *Machine) Topics() TopicPool {
	return m.topics
}

// Reduce applies one action. It never fails: actions whose preconditions
// do not hold, and actions it does not recognize, return s unchanged.
func (m *Machine) Reduce(s GameState, action Action) GameState {
	switch a := action.(type) {
	case AddPlayerName:
		name := strings.TrimSpace(a.Name)
		if !CanAddPlayerName(s, name) {
			return s
		}
		s.PlayerNames = appendName(s.PlayerNames, name)
	case RemovePlayerName:
		s.PlayerNames = without(s.PlayerNames, a.Name)
	case AddAudienceName:
		name := strings.TrimSpace(a.Name)
		if !CanAddAudienceName(s, name) {
			return s
		}
		s.AudienceNames = appendName(s.AudienceNames, name)
	case RemoveAudienceName:
		s.AudienceNames = without(s.AudienceNames, a.Name)
	case SetInsiderCount:
		s.InsiderCount = a.Count
	case SetupGame:
		s.Players = DealRoles(s.PlayerNames, s.InsiderCount, m.rng)
		s.Topic = m.topics.Draw(m.rng)
		s.Phase = PhaseRoleCheck
		s.History = []HistoryItem{}
		s.GameResult = ResultNone
		s.Timer = s.TimerDurationMinutes * 60
		s.IsTimerRunning = false
	case ChangePhase:
		s.Phase = a.Phase
		s.IsTimerRunning = a.Phase.RunsTimer()
	case SetTopic:
		s.Topic = a.Topic
	case ChangeTopicRandomly:
		s.Topic = m.topics.Draw(m.rng)
	case AddHistory:
		history := make([]HistoryItem, 0, len(s.History)+1)
		history = append(history, a.Entry)
		s.History = append(history, s.History...)
	case StartTimer:
		s.IsTimerRunning = true
	case StopTimer:
		s.IsTimerRunning = false
	case TickTimer:
		if s.Timer > 0 {
			s.Timer--
		} else {
			s.IsTimerRunning = false
		}
	case SetTimerDuration:
		minutes := max(MinTimerMinutes, a.Minutes)
		s.TimerDurationMinutes = minutes
		s.Timer = minutes * 60
		s.IsTimerRunning = false
	case SetResult:
		s.GameResult = a.Result
	case ResetGame:
		s = NewGameState()
	case GoToHome:
		next := NewGameState()
		next.PlayerNames = s.PlayerNames
		next.AudienceNames = s.AudienceNames
		s = next
	}
	return s
}

// CanAddPlayerName reports whether a trimmed name may join the roster: it
// must be non-blank and absent from both the roster and the audience.
func CanAddPlayerName(s GameState, name string) bool {
	return name != "" && !s.HasPlayerName(name) && !s.HasAudienceName(name)
}

// CanAddAudienceName applies the same rule as CanAddPlayerName to the
// audience list
func CanAddAudienceName(s GameState, name string) bool {
	return name != "" && !s.HasPlayerName(name) && !s.HasAudienceName(name)
}

// DealRoles shuffles a copy of names with an unbiased Fisher-Yates shuffle
// and makes the first insiderCount of them insiders. Players are returned
// in roster order so the shuffle itself is not observable. insiderCount is
// bounded to [0, len(names)] here only to keep slicing safe.
func DealRoles(names []string, insiderCount int, rng Rand) []Player {
	shuffled := make([]string, len(names))
	copy(shuffled, names)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	n := min(max(insiderCount, 0), len(shuffled))
	insiders := make(map[string]bool, n)
	for _, name := range shuffled[:n] {
		insiders[name] = true
	}

	players := make([]Player, 0, len(names))
	for _, name := range names {
		role := RoleCitizen
		if insiders[name] {
			role = RoleInsider
		}
		players = append(players, Player{Name: name, Role: role})
	}
	return players
}

func appendName(list []string, name string) []string {
	next := make([]string, len(list), len(list)+1)
	copy(next, list)
	return append(next, name)
}

func without(list []string, name string) []string {
	next := make([]string, 0, len(list))
	for _, v := range list {
		if v != name {
			next = append(next, v)
		}
	}
	return next
}
