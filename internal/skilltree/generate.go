package skilltree

import (
	"github.com/KirkDiggler/skill-arena/internal/dice"
	"github.com/KirkDiggler/skill-arena/internal/entities/skills"
	arenaerr "github.com/KirkDiggler/skill-arena/internal/errors"
)

// SkillFactory produces the skills a generated tree references
type SkillFactory interface {
	NewSkill() (*skills.Skill, error)
}

type pending struct {
	id    NodeID
	level int
}

// GenerateRandom replaces the tree with a randomly shaped one. The root sits
// on level 1; every node on a level below maxDepth gets a uniform [0, maxChildren]
// number of children, expanded breadth-first.
func (t *Tree) GenerateRandom(factory SkillFactory, roller dice.Roller, maxDepth, maxChildren int) error {
	if maxChildren < 0 {
		return arenaerr.InvalidArgumentf("max children cannot be negative, got %d", maxChildren)
	}

	rootSkill, err := factory.NewSkill()
	if err != nil {
		return arenaerr.Wrap(err, "failed to create root skill")
	}

	t.nodes = nil
	t.root = t.add(rootSkill, NoNode)

	queue := []pending{{id: t.root, level: 1}}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]

		if next.level >= maxDepth {
			continue
		}

		count, err := dice.Pick(roller, maxChildren+1)
		if err != nil {
			return arenaerr.Wrap(err, "failed to roll child count")
		}

		for i := 0; i < count; i++ {
			sk, err := factory.NewSkill()
			if err != nil {
				return arenaerr.Wrap(err, "failed to create child skill")
			}
			queue = append(queue, pending{id: t.add(sk, next.id), level: next.level + 1})
		}
	}

	return nil
}
