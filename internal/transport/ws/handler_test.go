package ws

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOriginChecker(t *testing.T) {
	tests := []struct {
		name    string
		allowed []string
		origin  string
		want    bool
	}{
		{"wildcard", []string{"*"}, "https://evil.example", true},
		{"listed", []string{"https://game.example"}, "https://game.example", true},
		{"listed ignores case", []string{"https://game.example"}, "https://GAME.example", true},
		{"not listed", []string{"https://game.example"}, "https://evil.example", false},
		{"no origin header", []string{"https://game.example"}, "", true},
		{"empty list", nil, "https://game.example", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/ws?roomCode=ABC234", nil)
			if tt.origin != "" {
				r.Header.Set("Origin", tt.origin)
			}
			assert.Equal(t, tt.want, originChecker(tt.allowed)(r))
		})
	}
}
