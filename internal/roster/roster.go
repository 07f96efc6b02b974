// Package roster describes the parties that take part in a skirmish and
// turns that description into live characters.
package roster

import (
	_ "embed"
	"os"

	"github.com/KirkDiggler/skill-arena/internal/entities"
	"github.com/KirkDiggler/skill-arena/internal/entities/skills"
	arenaerr "github.com/KirkDiggler/skill-arena/internal/errors"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultRoster []byte

// Roster is the top level of a roster file
type Roster struct {
	Parties []PartyEntry `yaml:"parties"`
}

// PartyEntry describes one party
type PartyEntry struct {
	Name    string        `yaml:"name"`
	Members []MemberEntry `yaml:"members"`
}

// MemberEntry describes one character. Level 0 means level 1.
type MemberEntry struct {
	Name   string          `yaml:"name"`
	Class  entities.Class  `yaml:"class"`
	Level  int             `yaml:"level,omitempty"`
	Skills []SkillEntry    `yaml:"skills,omitempty"`
	Items  []entities.Item `yaml:"items,omitempty"`
}

// SkillEntry describes an equipped skill. Zero values fall back to the
// defaults of the skill kind.
type SkillEntry struct {
	Name     string      `yaml:"name"`
	Kind     skills.Kind `yaml:"kind"`
	Power    int         `yaml:"power,omitempty"`
	ManaCost int         `yaml:"mana_cost,omitempty"`
	Modifier float64     `yaml:"modifier,omitempty"`
	Cooldown int         `yaml:"cooldown,omitempty"`
}

// Default returns the built-in two party roster
func Default() (*Roster, error) {
	return Parse(defaultRoster)
}

// Load reads and validates a roster file
func Load(path string) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, arenaerr.Wrapf(err, "reading roster %s", path)
	}

	r, err := Parse(data)
	if err != nil {
		return nil, arenaerr.Wrapf(err, "roster %s", path)
	}
	return r, nil
}

// Parse decodes and validates a roster document
func Parse(data []byte) (*Roster, error) {
	var r Roster
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, arenaerr.InvalidArgumentf("parsing roster: %v", err)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

// Validate checks that the roster can be built
func (r *Roster) Validate() error {
	if len(r.Parties) < 2 {
		return arenaerr.InvalidArgumentf("roster needs at least two parties, got %d", len(r.Parties))
	}

	for _, p := range r.Parties {
		if p.Name == "" {
			return arenaerr.InvalidArgument("party name is required")
		}
		for _, m := range p.Members {
			if err := m.validate(); err != nil {
				return arenaerr.Wrapf(err, "party %s", p.Name)
			}
		}
	}

	return nil
}

func (m MemberEntry) validate() error {
	if m.Name == "" {
		return arenaerr.InvalidArgument("member name is required")
	}

	switch m.Class {
	case entities.ClassWarrior, entities.ClassMage, entities.ClassArcher, entities.ClassAdventurer, "":
	default:
		return arenaerr.InvalidArgumentf("member %s has unknown class %q", m.Name, m.Class)
	}

	if m.Level < 0 {
		return arenaerr.InvalidArgumentf("member %s has negative level %d", m.Name, m.Level)
	}

	for _, s := range m.Skills {
		if s.Name == "" {
			return arenaerr.InvalidArgumentf("member %s has a skill without a name", m.Name)
		}
		switch s.Kind {
		case skills.KindActive, skills.KindPassive, skills.KindUltimate:
		default:
			return arenaerr.InvalidArgumentf("skill %s has unknown kind %q", s.Name, s.Kind)
		}
	}

	return nil
}

// Skill creates the described skill at level 1
func (s SkillEntry) Skill() *skills.Skill {
	switch s.Kind {
	case skills.KindPassive:
		return skills.NewPassive(s.Name,
			orDefault(s.Power, skills.DefaultPassivePower),
			orDefaultFloat(s.Modifier, skills.DefaultPassiveModifier))
	case skills.KindUltimate:
		return skills.NewUltimate(s.Name,
			orDefault(s.Power, skills.DefaultUltimatePower),
			orDefault(s.ManaCost, skills.DefaultUltimateManaCost),
			orDefault(s.Cooldown, skills.DefaultUltimateCooldown))
	default:
		return skills.NewActive(s.Name,
			orDefault(s.Power, skills.DefaultActivePower),
			orDefault(s.ManaCost, skills.DefaultActiveManaCost))
	}
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

func orDefaultFloat(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}
