package domain

// Answers the master gives to a question. History stores answers as free
// text, so these are conventions rather than an enforced set.
const (
	AnswerYes     = "はい"
	AnswerNo      = "いいえ"
	AnswerUnknown = "わからない"
)

// HistoryItem records one question asked during the question phase
type HistoryItem struct {
	PlayerName string `json:"playerName"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
}
