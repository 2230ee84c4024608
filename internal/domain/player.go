package domain

// Player is a roster entry after roles have been dealt
type Player struct {
	Name string `json:"name"`
	Role Role   `json:"role"`
}

// FindPlayer returns the player with the given name
func FindPlayer(players []Player, name string) (Player, bool) {
	for _, p := range players {
		if p.Name == name {
			return p, true
		}
	}
	return Player{}, false
}

// Insiders returns the names of all players holding the insider role
func Insiders(players []Player) []string {
	names := make([]string, 0)
	for _, p := range players {
		if p.Role.IsInsider() {
			names = append(names, p.Name)
		}
	}
	return names
}
