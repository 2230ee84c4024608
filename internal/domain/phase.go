package domain

// Phase represents the current stage of a game
type Phase string

const (
	PhaseHome         Phase = "HOME"           // Roster and insider count setup
	PhaseRoleCheck    Phase = "ROLE_CHECK"     // Roles and topic revealed to the facilitator
	PhaseQuestion     Phase = "QUESTION_PHASE" // Questions against the countdown
	PhaseGuessTopic   Phase = "GUESS_TOPIC"    // Citizens name the topic
	PhaseInsiderGuess Phase = "INSIDER_GUESS"  // Vote on who the insider is
	PhaseResult       Phase = "RESULT"         // Winning team shown
)

// Phases lists every phase in game order
var Phases = []Phase{
	PhaseHome,
	PhaseRoleCheck,
	PhaseQuestion,
	PhaseGuessTopic,
	PhaseInsiderGuess,
	PhaseResult,
}

// String returns the string representation of the phase
func (p Phase) String() string {
	return string(p)
}

// IsValid reports whether p is one of the known phases
func (p Phase) IsValid() bool {
	for _, phase := range Phases {
		if phase == p {
			return true
		}
	}
	return false
}

// RunsTimer reports whether entering this phase starts the countdown
func (p Phase) RunsTimer() bool {
	return p == PhaseQuestion
}
