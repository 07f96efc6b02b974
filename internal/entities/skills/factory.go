package skills

import (
	"fmt"

	"github.com/KirkDiggler/skill-arena/internal/dice"
	arenaerr "github.com/KirkDiggler/skill-arena/internal/errors"
)

// Factory hands out numbered random skills for tree generation. The counter
// belongs to the factory, so two trees built from two factories never share names.
type Factory struct {
	roller  dice.Roller
	counter int
}

// NewFactory creates a Factory drawing skill kinds from roller
func NewFactory(roller dice.Roller) *Factory {
	if roller == nil {
		panic("roller is required")
	}
	return &Factory{roller: roller}
}

// NewSkill creates the next skill: Active_<n>, Passive_<n> or Ult_<n>
func (f *Factory) NewSkill() (*Skill, error) {
	kind, err := dice.Pick(f.roller, 3)
	if err != nil {
		return nil, arenaerr.Wrap(err, "failed to pick skill kind")
	}

	f.counter++
	n := f.counter

	switch kind {
	case 0:
		return NewActive(fmt.Sprintf("Active_%d", n), 10+n%5, DefaultActiveManaCost), nil
	case 1:
		return NewPassive(fmt.Sprintf("Passive_%d", n), 5+n%3, DefaultPassiveModifier), nil
	default:
		return NewUltimate(fmt.Sprintf("Ult_%d", n), 25+n%8, DefaultUltimateManaCost, DefaultUltimateCooldown), nil
	}
}

// Count returns how many skills the factory has produced
func (f *Factory) Count() int {
	return f.counter
}
