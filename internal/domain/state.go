package domain

const (
	// DefaultInsiderCount is the number of insiders dealt in a fresh game
	DefaultInsiderCount = 1

	// DefaultTimerMinutes is the countdown length of a fresh game
	DefaultTimerMinutes = 5

	// MinTimerMinutes is the shortest countdown a game accepts
	MinTimerMinutes = 1
)

// GameState is the complete data of one game. A state is never modified
// after it has been produced; the Machine returns a new value for every
// action and only allocates fresh slices for the fields it changes, so
// readers holding an older snapshot always see a consistent game.
type GameState struct {
	PlayerNames          []string      `json:"playerNames"`
	AudienceNames        []string      `json:"audienceNames"`
	Players              []Player      `json:"players"`
	InsiderCount         int           `json:"insiderCount"`
	Topic                string        `json:"topic"`
	Phase                Phase         `json:"phase"`
	History              []HistoryItem `json:"history"`
	GameResult           GameResult    `json:"gameResult"`
	Timer                int           `json:"timer"`
	TimerDurationMinutes int           `json:"timerDurationMinutes"`
	IsTimerRunning       bool          `json:"isTimerRunning"`

	// QuestionPlayerIndex is reserved. No action reads or writes it.
	QuestionPlayerIndex int `json:"questionPlayerIndex"`
}

// NewGameState returns the state a game starts in
func NewGameState() GameState {
	return GameState{
		PlayerNames:          []string{},
		AudienceNames:        []string{},
		Players:              []Player{},
		InsiderCount:         DefaultInsiderCount,
		Topic:                "",
		Phase:                PhaseHome,
		History:              []HistoryItem{},
		GameResult:           ResultNone,
		Timer:                DefaultTimerMinutes * 60,
		TimerDurationMinutes: DefaultTimerMinutes,
		IsTimerRunning:       false,
		QuestionPlayerIndex:  0,
	}
}

// HasPlayerName reports whether name is on the player roster
func (s GameState) HasPlayerName(name string) bool {
	return contains(s.PlayerNames, name)
}

// HasAudienceName reports whether name is on the audience list
func (s GameState) HasAudienceName(name string) bool {
	return contains(s.AudienceNames, name)
}

// Questioners returns everyone allowed to ask a question: dealt players
// followed by the audience
func (s GameState) Questioners() []string {
	names := make([]string, 0, len(s.Players)+len(s.AudienceNames))
	for _, p := range s.Players {
		names = append(names, p.Name)
	}
	return append(names, s.AudienceNames...)
}

// MaxInsiderCount is the largest insider count the roster supports. At
// least two non-insiders are needed, one of them acting as master.
func (s GameState) MaxInsiderCount() int {
	return len(s.PlayerNames) - 2
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
