package entities

import (
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/skill-arena/internal/dice"
	"github.com/KirkDiggler/skill-arena/internal/entities/skills"
	arenaerr "github.com/KirkDiggler/skill-arena/internal/errors"
	"github.com/KirkDiggler/skill-arena/internal/logging"
)

type Class string

const (
	ClassAdventurer Class = "adventurer"
	ClassWarrior    Class = "warrior"
	ClassMage       Class = "mage"
	ClassArcher     Class = "archer"
)

const (
	baseHP            = 100
	baseMana          = 50
	baseAttackPower   = 10
	baseDefense       = 5
	inventoryCapacity = 10

	rageGain      = 10
	rageMax       = 100
	rageThreshold = 50

	critChanceCap = 50
	critBonus     = 7

	minCastCost = 5
)

// Character is a combatant. Class decides how Attack and UseSkill behave;
// Rage, SpellPower and Agility only matter for their own class.
type Character struct {
	ID          string
	Name        string
	Class       Class
	HP          int
	Mana        int
	AttackPower int
	Defense     int
	Level       int
	Skills      []*skills.Skill
	Inventory   *Inventory[Item]

	Rage       int // warrior
	SpellPower int // mage
	Agility    int // archer

	roller dice.Roller
	logger *slog.Logger
}

// CharacterConfig holds what NewCharacter needs
type CharacterConfig struct {
	ID     string
	Name   string
	Class  Class
	Roller dice.Roller
	Logger *slog.Logger
}

// NewCharacter creates a level 1 character with the class stat adjustments applied
func NewCharacter(cfg *CharacterConfig) *Character {
	if cfg.Roller == nil {
		panic("roller is required")
	}

	c := &Character{
		ID:          cfg.ID,
		Name:        cfg.Name,
		Class:       cfg.Class,
		HP:          baseHP,
		Mana:        baseMana,
		AttackPower: baseAttackPower,
		Defense:     baseDefense,
		Level:       1,
		Inventory:   NewInventory[Item](inventoryCapacity),
		roller:      cfg.Roller,
		logger:      cfg.Logger,
	}

	if c.Class == "" {
		c.Class = ClassAdventurer
	}
	if c.logger == nil {
		c.logger = logging.Discard()
	}
	if c.ID != "" {
		c.logger = c.logger.With("character_id", c.ID)
	}

	switch c.Class {
	case ClassWarrior:
		c.AttackPower += 5
		c.Defense += 3
	case ClassMage:
		c.Mana += 30
		c.SpellPower = 10
	case ClassArcher:
		c.AttackPower += 2
		c.Agility = 12
	}

	return c
}

// GetName implements skills.Target
func (c *Character) GetName() string {
	return c.Name
}

// GetDefense implements skills.Target
func (c *Character) GetDefense() int {
	return c.Defense
}

// TakeDamage lowers HP, never below zero
func (c *Character) TakeDamage(amount int) {
	c.HP -= amount
	if c.HP < 0 {
		c.HP = 0
	}
}

// IsAlive returns true if the character has more than 0 HP
func (c *Character) IsAlive() bool {
	return c.HP > 0
}

// Attack hits target with a basic attack and returns the damage dealt
func (c *Character) Attack(target *Character) (int, error) {
	switch c.Class {
	case ClassWarrior:
		return c.warriorAttack(target)
	case ClassArcher:
		return c.archerAttack(target)
	default:
		return c.baseAttack(target)
	}
}

func (c *Character) baseAttack(target *Character) (int, error) {
	variance, err := dice.Pick(c.roller, c.Level+3)
	if err != nil {
		return 0, arenaerr.Wrapf(err, "failed to roll attack variance for %s", c.Name)
	}

	dmg := max(0, c.AttackPower+c.Level*2+variance-target.GetDefense())
	target.TakeDamage(dmg)
	c.logger.Info(fmt.Sprintf("%s attacks %s for %d dmg.", c.Name, target.Name, dmg))

	return dmg, nil
}

func (c *Character) warriorAttack(target *Character) (int, error) {
	c.Rage = min(rageMax, c.Rage+rageGain)

	dmg, err := c.baseAttack(target)
	if err != nil {
		return 0, err
	}

	if c.Rage >= rageThreshold {
		bonus := 5 + c.Level
		target.TakeDamage(bonus)
		c.logger.Info(fmt.Sprintf("%s uses RAGE bonus for %d extra dmg!", c.Name, bonus))
		c.Rage = 0
		return dmg + bonus, nil
	}

	return dmg, nil
}

// archerAttack reports the crit bonus on top of the base attack result
func (c *Character) archerAttack(target *Character) (int, error) {
	crit, err := dice.Percent(c.roller, min(critChanceCap, c.Agility+c.Level))
	if err != nil {
		return 0, arenaerr.Wrapf(err, "failed to roll critical chance for %s", c.Name)
	}

	dmg, err := c.baseAttack(target)
	if err != nil {
		return 0, err
	}

	if crit {
		c.logger.Info(fmt.Sprintf("%s lands a CRITICAL hit!", c.Name))
		return dmg + critBonus, nil
	}

	return dmg, nil
}

// UseSkill applies the skill at idx to target. Mages pay mana first and the
// cast is abandoned when they cannot afford it.
func (c *Character) UseSkill(idx int, target skills.Target) error {
	if idx < 0 || idx >= len(c.Skills) {
		c.logger.Warn(fmt.Sprintf("%s tried to use invalid skill index.", c.Name))
		return arenaerr.InvalidArgumentf("skill index %d out of range for %s (%d skills)", idx, c.Name, len(c.Skills))
	}

	sk := c.Skills[idx]

	if c.Class == ClassMage {
		cost := c.CastCost(sk)
		if c.Mana < cost {
			c.logger.Warn(fmt.Sprintf("%s doesn't have enough mana (%d) to cast %s", c.Name, c.Mana, sk.Name))
			return arenaerr.FailedPreconditionf("%s needs %d mana to cast %s, has %d", c.Name, cost, sk.Name, c.Mana).
				WithMeta("cost", cost)
		}
		c.Mana -= cost
		c.logger.Info(fmt.Sprintf("%s casts %s costing %d mana.", c.Name, sk.Name, cost))
	} else {
		c.logger.Info(fmt.Sprintf("%s uses %s on %s", c.Name, sk.Name, target.GetName()))
	}

	effect, err := sk.Apply(target, c.roller)
	if err != nil {
		return arenaerr.Wrapf(err, "%s failed to use %s", c.Name, sk.Name)
	}

	switch sk.Kind {
	case skills.KindPassive:
		c.logger.Info(fmt.Sprintf("PassiveSkill %s applied to %s (passive buff)", sk.Name, effect.Target))
	case skills.KindUltimate:
		c.logger.Info(fmt.Sprintf("UltimateSkill %s strikes %s for %d massive damage!", sk.Name, effect.Target, effect.Damage))
	default:
		c.logger.Info(fmt.Sprintf("ActiveSkill %s applied to %s for %d damage", sk.Name, effect.Target, effect.Damage))
	}

	return nil
}

// CastCost is the mana a mage pays for a skill
func (c *Character) CastCost(sk *skills.Skill) int {
	return max(minCastCost, sk.EffectivePower()/3)
}

// EquipSkill adds a skill to the end of the equipped list
func (c *Character) EquipSkill(sk *skills.Skill) {
	if sk == nil {
		return
	}
	c.logger.Info(fmt.Sprintf("%s equips skill %s", c.Name, sk.Name))
	c.Skills = append(c.Skills, sk)
}

// LevelUp raises level and stats by fixed amounts, with no level cap
func (c *Character) LevelUp() {
	c.Level++
	c.HP += 10
	c.Mana += 5
	c.AttackPower += 2
	c.Defense += 1
	c.logger.Info(fmt.Sprintf("%s leveled up to %d", c.Name, c.Level))
}

// BattleShout permanently raises a warrior's attack power
func (c *Character) BattleShout() {
	if c.Class != ClassWarrior {
		c.logger.Warn(fmt.Sprintf("%s cannot shout, only warriors can.", c.Name))
		return
	}
	c.AttackPower += 2
	c.logger.Info(fmt.Sprintf("%s shouts and increases attack!", c.Name))
}

// Dodge raises an archer's defense
func (c *Character) Dodge() {
	if c.Class != ClassArcher {
		c.logger.Warn(fmt.Sprintf("%s cannot dodge, only archers can.", c.Name))
		return
	}
	c.Defense += 2
	c.logger.Info(fmt.Sprintf("%s prepares to dodge, defense increased temporarily.", c.Name))
}

// OverallPower is used for rosters and comparison only
func (c *Character) OverallPower() int {
	p := c.AttackPower + c.Level*3
	for _, sk := range c.Skills {
		p += sk.EffectivePower() / 2
	}
	return p
}

func (c *Character) Status() string {
	return fmt.Sprintf("%s (lvl %d) HP:%d MP:%d", c.Name, c.Level, c.HP, c.Mana)
}
