package entities

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/KirkDiggler/skill-arena/internal/logging"
)

// Party is an ordered group of characters fighting as a unit
type Party struct {
	Name    string
	members []*Character
	logger  *slog.Logger
}

// NewParty creates an empty party
func NewParty(name string, logger *slog.Logger) *Party {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Party{Name: name, logger: logger}
}

// AddMember appends a character to the party
func (p *Party) AddMember(c *Character) {
	if c == nil {
		return
	}
	p.logger.Info(fmt.Sprintf("Adding member %s", c.Name))
	p.members = append(p.members, c)
}

// Member returns the character at idx or nil when out of range
func (p *Party) Member(idx int) *Character {
	if idx < 0 || idx >= len(p.members) {
		return nil
	}
	return p.members[idx]
}

// Members returns the members in order
func (p *Party) Members() []*Character {
	return append([]*Character(nil), p.members...)
}

func (p *Party) Size() int {
	return len(p.members)
}

// Alive returns the living members in party order
func (p *Party) Alive() []*Character {
	var alive []*Character
	for _, m := range p.members {
		if m.IsAlive() {
			alive = append(alive, m)
		}
	}
	return alive
}

// AllDefeated is true when no member is alive, including for an empty party
func (p *Party) AllDefeated() bool {
	for _, m := range p.members {
		if m.IsAlive() {
			return false
		}
	}
	return true
}

// CombinedPower sums the overall power of every member
func (p *Party) CombinedPower() int {
	sum := 0
	for _, m := range p.members {
		sum += m.OverallPower()
	}
	return sum
}

// ShowStatus logs the status header and writes one indented line per member to w
func (p *Party) ShowStatus(w io.Writer) {
	p.logger.Info("Party status:")
	for _, m := range p.members {
		fmt.Fprintf(w, "  %s\n", m.Status())
	}
}
