package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTopicMatches(t *testing.T) {
	tests := []struct {
		guess string
		topic string
		want  bool
	}{
		{guess: " Mango ", topic: "mango", want: true},
		{guess: "MANGO", topic: "Mango", want: true},
		{guess: "mango", topic: " mango\t", want: true},
		{guess: "カレンダー", topic: "カレンダー", want: true},
		{guess: "mangos", topic: "mango", want: false},
		{guess: "", topic: "mango", want: false},
		{guess: "カレンダ", topic: "カレンダー", want: false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TopicMatches(tt.guess, tt.topic), "guess=%q topic=%q", tt.guess, tt.topic)
	}
}

func TestNextPhaseAfterGuess(t *testing.T) {
	assert.Equal(t, PhaseInsiderGuess, NextPhaseAfterGuess(" Mango ", "mango"))
	assert.Equal(t, PhaseQuestion, NextPhaseAfterGuess("papaya", "mango"))
}
