package domain

import "strings"

// TopicMatches compares a guess with the topic ignoring surrounding
// whitespace and case
func TopicMatches(guess, topic string) bool {
	return strings.EqualFold(strings.TrimSpace(guess), strings.TrimSpace(topic))
}

// NextPhaseAfterGuess is where the game goes once citizens name a topic:
// on to the insider vote when they got it, back to questions otherwise
func NextPhaseAfterGuess(guess, topic string) Phase {
	if TopicMatches(guess, topic) {
		return PhaseInsiderGuess
	}
	return PhaseQuestion
}
