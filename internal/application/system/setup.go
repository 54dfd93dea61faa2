package system

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/younwookim/earthball/internal/infrastructure/config"
)

// PlayerSetup is what the selection screen hands over for one slot
type PlayerSetup struct {
	CharacterID string `json:"character"`
	Name        string `json:"name"`
}

// Setup is the pair of choices a match is created from
type Setup struct {
	Players [2]PlayerSetup `json:"players"`
}

// DefaultSetup uses the roster's default characters and blank names
func DefaultSetup(roster config.RosterConfig) Setup {
	var s Setup
	for i := range s.Players {
		s.Players[i].CharacterID = defaultCharacter(roster, i)
	}
	return s
}

// DefaultName is the display name used for a blank slot
func DefaultName(slot int) string {
	return fmt.Sprintf("Player %d", slot+1)
}

// Normalize trims names, fills blanks with "Player N", cuts names to the
// roster limit and replaces unknown characters with the slot default.
func (s Setup) Normalize(roster config.RosterConfig) Setup {
	for i := range s.Players {
		p := &s.Players[i]

		p.Name = strings.TrimSpace(p.Name)
		if roster.MaxNameLength > 0 && utf8.RuneCountInString(p.Name) > roster.MaxNameLength {
			p.Name = strings.TrimSpace(string([]rune(p.Name)[:roster.MaxNameLength]))
		}
		if p.Name == "" {
			p.Name = DefaultName(i)
		}

		if !slices.Contains(roster.Characters, p.CharacterID) {
			p.CharacterID = defaultCharacter(roster, i)
		}
	}
	return s
}

func defaultCharacter(roster config.RosterConfig, slot int) string {
	if len(roster.Characters) == 0 {
		return ""
	}
	idx := roster.Defaults[slot] % len(roster.Characters)
	if idx < 0 {
		idx = 0
	}
	return roster.Characters[idx]
}
