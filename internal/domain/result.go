package domain

// GameResult is the winning team, or ResultNone while undecided
type GameResult string

const (
	ResultNone       GameResult = ""
	ResultCitizenWin GameResult = "CITIZEN_WIN"
	ResultInsiderWin GameResult = "INSIDER_WIN"
)

// IsValid reports whether r is a known result, including ResultNone
func (r GameResult) IsValid() bool {
	switch r {
	case ResultNone, ResultCitizenWin, ResultInsiderWin:
		return true
	}
	return false
}

// Label returns the text shown on the result screen
func (r GameResult) Label() string {
	switch r {
	case ResultCitizenWin:
		return "市民チームの勝利"
	case ResultInsiderWin:
		return "インサイダーチームの勝利"
	default:
		return ""
	}
}
