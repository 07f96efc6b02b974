package skilltree_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/KirkDiggler/skill-arena/internal/dice"
	mockdice "github.com/KirkDiggler/skill-arena/internal/dice/mock"
	"github.com/KirkDiggler/skill-arena/internal/entities/skills"
	arenaerr "github.com/KirkDiggler/skill-arena/internal/errors"
	"github.com/KirkDiggler/skill-arena/internal/skilltree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sequentialFactory names skills S1, S2, ... in creation order
type sequentialFactory struct {
	n      int
	failAt int
}

func (f *sequentialFactory) NewSkill() (*skills.Skill, error) {
	f.n++
	if f.failAt != 0 && f.n == f.failAt {
		return nil, errors.New("out of ideas")
	}
	return skills.NewActive(fmt.Sprintf("S%d", f.n), 10, 10), nil
}

func childNames(tree *skilltree.Tree, name string) []string {
	id, found := tree.FindByName(name)
	if !found {
		return nil
	}
	var out []string
	for _, child := range tree.Children(id) {
		out = append(out, tree.Skill(child).Name)
	}
	return out
}

func TestGenerateRandom_ExpandsBreadthFirst(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	// child counts: root 2, S2 1, S3 2; level 3 is never expanded
	roller.SetRolls([]int{3, 2, 3})

	tree := skilltree.New()
	err := tree.GenerateRandom(&sequentialFactory{}, roller, 3, 2)
	require.NoError(t, err)

	assert.Equal(t, []string{"S2", "S3"}, childNames(tree, "S1"))
	assert.Equal(t, []string{"S4"}, childNames(tree, "S2"))
	assert.Equal(t, []string{"S5", "S6"}, childNames(tree, "S3"))
	assert.Equal(t, []string{"S1", "S2", "S4", "S3", "S5", "S6"}, names(tree))
	assert.Zero(t, roller.Remaining())
}

func TestGenerateRandom_ReplacesExistingTree(t *testing.T) {
	tree := skilltree.NewWithRoot(active("Old"))
	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{1})

	require.NoError(t, tree.GenerateRandom(&sequentialFactory{}, roller, 2, 3))

	assert.Equal(t, []string{"S1"}, names(tree))
	_, found := tree.FindByName("Old")
	assert.False(t, found)
}

func TestGenerateRandom_DepthOneIsRootOnly(t *testing.T) {
	roller := mockdice.NewManualMockRoller()

	tree := skilltree.New()
	require.NoError(t, tree.GenerateRandom(&sequentialFactory{}, roller, 1, 5))

	assert.Equal(t, 1, tree.Len())
	assert.Zero(t, roller.Remaining())
}

func TestGenerateRandom_RespectsBounds(t *testing.T) {
	for seed := int64(1); seed <= 200; seed++ {
		roller := dice.NewRandomRoller(seed)
		maxDepth := int(seed%4) + 1
		maxChildren := int(seed % 4)

		tree := skilltree.New()
		require.NoError(t, tree.GenerateRandom(skills.NewFactory(roller), roller, maxDepth, maxChildren))

		tree.TraverseDFS(func(id skilltree.NodeID, _ *skills.Skill) {
			assert.LessOrEqual(t, tree.Depth(id), maxDepth, "seed %d", seed)
			assert.Less(t, tree.Depth(id), maxDepth, "root counts as the first level, seed %d", seed)
			assert.LessOrEqual(t, len(tree.Children(id)), maxChildren, "seed %d", seed)
		})
	}
}

func TestGenerateRandom_Errors(t *testing.T) {
	t.Run("negative fan out", func(t *testing.T) {
		err := skilltree.New().GenerateRandom(&sequentialFactory{}, mockdice.NewManualMockRoller(), 3, -1)
		assert.True(t, arenaerr.IsInvalidArgument(err))
	})

	t.Run("root factory failure leaves tree alone", func(t *testing.T) {
		tree := skilltree.NewWithRoot(active("Old"))
		err := tree.GenerateRandom(&sequentialFactory{failAt: 1}, mockdice.NewManualMockRoller(), 3, 2)
		require.Error(t, err)
		assert.Equal(t, []string{"Old"}, names(tree))
	})

	t.Run("child factory failure", func(t *testing.T) {
		roller := mockdice.NewManualMockRoller()
		roller.SetRolls([]int{3})
		err := skilltree.New().GenerateRandom(&sequentialFactory{failAt: 3}, roller, 3, 2)
		assert.ErrorContains(t, err, "out of ideas")
	})

	t.Run("roller failure", func(t *testing.T) {
		err := skilltree.New().GenerateRandom(&sequentialFactory{}, mockdice.NewManualMockRoller(), 3, 2)
		assert.Error(t, err)
	})
}
