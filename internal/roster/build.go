package roster

import (
	"log/slog"

	"github.com/KirkDiggler/skill-arena/internal/dice"
	"github.com/KirkDiggler/skill-arena/internal/entities"
	arenaerr "github.com/KirkDiggler/skill-arena/internal/errors"
	"github.com/KirkDiggler/skill-arena/internal/logging"
	"github.com/KirkDiggler/skill-arena/internal/uuid"
)

// BuildConfig holds what Build hands to every character it creates
type BuildConfig struct {
	Roller dice.Roller
	Logger *slog.Logger
	IDs    uuid.Generator
}

// Build creates one party per roster entry, in roster order
func Build(r *Roster, cfg *BuildConfig) ([]*entities.Party, error) {
	if r == nil {
		return nil, arenaerr.InvalidArgument("roster is required")
	}
	if cfg == nil || cfg.Roller == nil {
		return nil, arenaerr.InvalidArgument("roller is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	ids := cfg.IDs
	if ids == nil {
		ids = uuid.NewGoogleUUIDGenerator()
	}

	parties := make([]*entities.Party, 0, len(r.Parties))
	for _, ps := range r.Parties {
		party := entities.NewParty(ps.Name, logger)
		for _, m := range ps.Members {
			c, err := buildMember(m, ids.New(), cfg.Roller, logger)
			if err != nil {
				return nil, arenaerr.Wrapf(err, "party %s", ps.Name)
			}
			party.AddMember(c)
		}
		parties = append(parties, party)
	}

	return parties, nil
}

func buildMember(m MemberEntry, id string, roller dice.Roller, logger *slog.Logger) (*entities.Character, error) {
	c := entities.NewCharacter(&entities.CharacterConfig{
		ID:     id,
		Name:   m.Name,
		Class:  m.Class,
		Roller: roller,
		Logger: logger,
	})

	for c.Level < m.Level {
		c.LevelUp()
	}

	for _, s := range m.Skills {
		c.EquipSkill(s.Skill())
	}

	for _, item := range m.Items {
		if !c.Inventory.Add(item) {
			return nil, arenaerr.FailedPreconditionf("inventory of %s is full, cannot add %s", c.Name, item.Name).
				WithMeta("capacity", c.Inventory.Capacity())
		}
	}

	return c, nil
}
