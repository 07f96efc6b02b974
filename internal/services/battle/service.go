package battle

import (
	"log/slog"

	"github.com/KirkDiggler/skill-arena/internal/dice"
	"github.com/KirkDiggler/skill-arena/internal/entities"
	arenaerr "github.com/KirkDiggler/skill-arena/internal/errors"
	"github.com/KirkDiggler/skill-arena/internal/logging"
)

// DefaultMaxTurns caps a skirmish that nobody wins
const DefaultMaxTurns = 50

// Outcome is the terminal state of a simulation
type Outcome string

const (
	OutcomeRunning         Outcome = "running"
	OutcomePartyADefeated  Outcome = "party_a_defeated"
	OutcomePartyBDefeated  Outcome = "party_b_defeated"
	OutcomeMaxTurnsReached Outcome = "max_turns_reached"
)

// Action records one attack
type Action struct {
	Turn       int
	Side       Side
	AttackerID string
	Attacker   string
	DefenderID string
	Defender   string
	Damage     int
}

// Result is what a finished simulation reports
type Result struct {
	Outcome Outcome
	Turns   int
	Actions []Action
}

// Service runs skirmishes between two parties
type Service interface {
	// Simulate fights until one party is wiped out or the turn cap is hit.
	// Both parties are mutated in place.
	Simulate(a, b *entities.Party) (*Result, error)
}

type service struct {
	roller   dice.Roller
	logger   *slog.Logger
	maxTurns int
	policy   TurnPolicy
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Roller     dice.Roller
	Logger     *slog.Logger
	MaxTurns   int
	TurnPolicy TurnPolicy
}

// NewService creates a new battle service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Roller == nil {
		panic("roller is required")
	}

	svc := &service{
		roller:   cfg.Roller,
		logger:   cfg.Logger,
		maxTurns: cfg.MaxTurns,
		policy:   cfg.TurnPolicy,
	}

	if svc.logger == nil {
		svc.logger = logging.Discard()
	}
	if svc.maxTurns <= 0 {
		svc.maxTurns = DefaultMaxTurns
	}
	if svc.policy == nil {
		svc.policy = AlternatingPolicy{}
	}

	return svc
}

func (s *service) Simulate(a, b *entities.Party) (*Result, error) {
	if a == nil || b == nil {
		return nil, arenaerr.InvalidArgument("both parties are required")
	}

	s.logger.Info("Battle starts between two parties!")

	result := &Result{Outcome: OutcomeRunning}
	for result.Turns < s.maxTurns {
		if a.AllDefeated() {
			s.logger.Info("Party A defeated!")
			result.Outcome = OutcomePartyADefeated
			return result, nil
		}
		if b.AllDefeated() {
			s.logger.Info("Party B defeated!")
			result.Outcome = OutcomePartyBDefeated
			return result, nil
		}

		fromA, err := s.randomAlive(a)
		if err != nil {
			return result, err
		}
		fromB, err := s.randomAlive(b)
		if err != nil {
			return result, err
		}

		side := s.policy.Attacker(result.Turns)
		attacker, defender := fromA, fromB
		if side == SideB {
			attacker, defender = fromB, fromA
		}

		dmg, err := attacker.Attack(defender)
		if err != nil {
			return result, arenaerr.Wrapf(err, "turn %d", result.Turns)
		}

		result.Actions = append(result.Actions, Action{
			Turn:       result.Turns,
			Side:       side,
			AttackerID: attacker.ID,
			Attacker:   attacker.Name,
			DefenderID: defender.ID,
			Defender:   defender.Name,
			Damage:     dmg,
		})
		result.Turns++
	}

	s.logger.Info("Battle ended after max turns.")
	result.Outcome = OutcomeMaxTurnsReached
	return result, nil
}

func (s *service) randomAlive(p *entities.Party) (*entities.Character, error) {
	alive := p.Alive()
	idx, err := dice.Pick(s.roller, len(alive))
	if err != nil {
		return nil, arenaerr.Wrapf(err, "failed to pick a fighter from %s", p.Name)
	}
	return alive[idx], nil
}
