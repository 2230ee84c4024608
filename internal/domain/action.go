package domain

// ActionType identifies an action on the wire and in logs
type ActionType string

const (
	ActionAddPlayerName       ActionType = "ADD_PLAYER_NAME"
	ActionRemovePlayerName    ActionType = "REMOVE_PLAYER_NAME"
	ActionAddAudienceName     ActionType = "ADD_AUDIENCE_NAME"
	ActionRemoveAudienceName  ActionType = "REMOVE_AUDIENCE_NAME"
	ActionSetInsiderCount     ActionType = "SET_INSIDER_COUNT"
	ActionSetupGame           ActionType = "SETUP_GAME"
	ActionChangePhase         ActionType = "CHANGE_PHASE"
	ActionSetTopic            ActionType = "SET_TOPIC"
	ActionChangeTopicRandomly ActionType = "CHANGE_TOPIC_RANDOMLY"
	ActionAddHistory          ActionType = "ADD_HISTORY"
	ActionStartTimer          ActionType = "START_TIMER"
	ActionStopTimer           ActionType = "STOP_TIMER"
	ActionTickTimer           ActionType = "TICK_TIMER"
	ActionSetTimerDuration    ActionType = "SET_TIMER_DURATION"
	ActionSetResult           ActionType = "SET_RESULT"
	ActionResetGame           ActionType = "RESET_GAME"
	ActionGoToHome            ActionType = "GO_TO_HOME"
)

// Action is a single input to the Machine. The set of actions is closed:
// only types in this package implement it.
type Action interface {
	Type() ActionType
	action()
}

// AddPlayerName appends a name to the player roster
type AddPlayerName struct{ Name string }

// RemovePlayerName drops a name from the player roster
type RemovePlayerName struct{ Name string }

// AddAudienceName appends a name to the audience list
type AddAudienceName struct{ Name string }

// RemoveAudienceName drops a name from the audience list
type RemoveAudienceName struct{ Name string }

// SetInsiderCount sets how many insiders SetupGame deals
type SetInsiderCount struct{ Count int }

// SetupGame deals roles, draws a topic and opens the role check
type SetupGame struct{}

// ChangePhase moves the game to another phase
type ChangePhase struct{ Phase Phase }

// SetTopic replaces the topic verbatim
type SetTopic struct{ Topic string }

// ChangeTopicRandomly draws a new topic from the pool
type ChangeTopicRandomly struct{}

// AddHistory records a question, newest first
type AddHistory struct{ Entry HistoryItem }

// StartTimer resumes the countdown
type StartTimer struct{}

// StopTimer pauses the countdown
type StopTimer struct{}

// TickTimer consumes one second of the countdown
type TickTimer struct{}

// SetTimerDuration changes the countdown length and rewinds it
type SetTimerDuration struct{ Minutes int }

// SetResult records the winning team
type SetResult struct{ Result GameResult }

// ResetGame discards everything, roster included
type ResetGame struct{}

// GoToHome starts over but keeps the player and audience rosters
type GoToHome struct{}

func (AddPlayerName) Type() ActionType { return ActionAddPlayerName }
func (RemovePlayerName) Type() ActionType { return ActionRemovePlayerName }
func (AddAudienceName) Type() ActionType { return ActionAddAudienceName }
func (RemoveAudienceName) Type() ActionType { return ActionRemoveAudienceName }
func (SetInsiderCount) Type() ActionType { return ActionSetInsiderCount }
func (SetupGame) Type() ActionType { return ActionSetupGame }
func (ChangePhase) Type() ActionType { return ActionChangePhase }
func (SetTopic) Type() ActionType { return ActionSetTopic }
func (ChangeTopicRandomly) Type() ActionType { return ActionChangeTopicRandomly }
func (AddHistory) Type() ActionType { return ActionAddHistory }
func (StartTimer) Type() ActionType { return ActionStartTimer }
func (StopTimer) Type() ActionType { return ActionStopTimer }
func (TickTimer) Type() ActionType { return ActionTickTimer }
func (SetTimerDuration) Type() ActionType { return ActionSetTimerDuration }
func (SetResult) Type() ActionType { return ActionSetResult }
func (ResetGame) Type() ActionType { return ActionResetGame }
func (GoToHome) Type() ActionType { return ActionGoToHome }

func (AddPlayerName) action() {}
func (RemovePlayerName) action() {}
func (AddAudienceName) action() {}
func (RemoveAudienceName) action() {}
func (SetInsiderCount) action() {}
func (SetupGame) action() {}
func (ChangePhase) action() {}
func (SetTopic) action() {}
func (ChangeTopicRandomly) action() {}
func (AddHistory) action() {}
func (StartTimer) action() {}
func (StopTimer) action() {}
func (TickTimer) action() {}
func (SetTimerDuration) action() {}
func (SetResult) action() {}
func (ResetGame) action() {}
func (GoToHome) action() {}
