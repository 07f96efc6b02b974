package skills

import (
	"fmt"

	"github.com/KirkDiggler/skill-arena/internal/dice"
	arenaerr "github.com/KirkDiggler/skill-arena/internal/errors"
)

// Kind identifies which skill variant a Skill is
type Kind string

const (
	KindActive   Kind = "active"
	KindPassive  Kind = "passive"
	KindUltimate Kind = "ultimate"
)

// Defaults for values a caller leaves unset
const (
	DefaultActivePower      = 12
	DefaultActiveManaCost   = 10
	DefaultPassivePower     = 5
	DefaultPassiveModifier  = 0.05
	DefaultUltimatePower    = 30
	DefaultUltimateManaCost = 30
	DefaultUltimateCooldown = 3
)

const (
	// variance rolled on top of active and ultimate power, 0..4
	applyVarianceSides = 5

	minActiveDamage   = 1
	minUltimateDamage = 5
)

// Target is anything a skill can be applied to. Damage only ever goes through TakeDamage.
type Target interface {
	GetName() string
	GetDefense() int
	TakeDamage(amount int)
}

// Skill is a single equipped or tree skill. Kind decides which of the
// variant fields are meaningful.
type Skill struct {
	Name      string
	Kind      Kind
	Level     int
	BasePower int

	// ManaCost is informational for active and ultimate skills; mages pay a
	// cost derived from EffectivePower instead.
	ManaCost int

	// Modifier is the passive percentage, 0.05 means 5% per level.
	Modifier float64

	// Cooldown is tracked for ultimates but not enforced by the battle loop.
	Cooldown int
}

// Effect describes what a single Apply did to its target
type Effect struct {
	Skill  string
	Target string
	Damage int
	Buff   bool
}

// NewActive creates a direct damage skill
func NewActive(name string, power, manaCost int) *Skill {
	return &Skill{Name: name, Kind: KindActive, Level: 1, BasePower: power, ManaCost: manaCost}
}

// NewPassive creates a passive skill scaled by a percentage modifier
func NewPassive(name string, power int, modifier float64) *Skill {
	return &Skill{Name: name, Kind: KindPassive, Level: 1, BasePower: power, Modifier: modifier}
}

// NewUltimate creates the strongest scaling active skill with a cooldown attribute
func NewUltimate(name string, power, manaCost, cooldown int) *Skill {
	return &Skill{Name: name, Kind: KindUltimate, Level: 1, BasePower: power, ManaCost: manaCost, Cooldown: cooldown}
}

// EffectivePower is the combat strength derived from level and base power
func (s *Skill) EffectivePower() int {
	switch s.Kind {
	case KindActive:
		return s.BasePower + s.Level*5
	case KindPassive:
		return s.BasePower + int(float64(s.Level)*(s.Modifier*100))
	case KindUltimate:
		return s.BasePower + s.Level*12
	default:
		return s.BasePower + s.Level*3
	}
}

// Upgrade raises the level and base power together
func (s *Skill) Upgrade() {
	s.Level++
	s.BasePower += 2
}

// Description renders the skill the way the tree printout lists it
func (s *Skill) Description() string {
	base := fmt.Sprintf("%s (lvl %d, pwr %d)", s.Name, s.Level, s.EffectivePower())

	switch s.Kind {
	case KindActive:
		return fmt.Sprintf("Active: %s mana:%d", base, s.ManaCost)
	case KindPassive:
		return fmt.Sprintf("Passive: %s mod: %f", base, s.Modifier)
	case KindUltimate:
		return fmt.Sprintf("Ultimate: %s cd:%d", base, s.Cooldown)
	default:
		return base
	}
}

// Apply uses the skill on target. Passive skills are a cosmetic buff and
// leave every stat untouched.
func (s *Skill) Apply(target Target, roller dice.Roller) (*Effect, error) {
	effect := &Effect{Skill: s.Name, Target: target.GetName()}

	switch s.Kind {
	case KindActive, KindUltimate:
		variance, err := dice.Pick(roller, applyVarianceSides)
		if err != nil {
			return nil, arenaerr.Wrapf(err, "failed to roll variance for %s", s.Name)
		}

		floor := minActiveDamage
		if s.Kind == KindUltimate {
			floor = minUltimateDamage
		}

		effect.Damage = max(floor, s.EffectivePower()+variance-target.GetDefense())
		target.TakeDamage(effect.Damage)
	case KindPassive:
		effect.Buff = true
	default:
		return nil, arenaerr.InvalidArgumentf("unknown skill kind %q", s.Kind)
	}

	return effect, nil
}
