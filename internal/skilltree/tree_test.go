package skilltree_test

import (
	"testing"

	"github.com/KirkDiggler/skill-arena/internal/entities/skills"
	arenaerr "github.com/KirkDiggler/skill-arena/internal/errors"
	"github.com/KirkDiggler/skill-arena/internal/skilltree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func active(name string) *skills.Skill {
	return skills.NewActive(name, 12, 10)
}

func names(t *skilltree.Tree) []string {
	var out []string
	t.TraverseDFS(func(_ skilltree.NodeID, sk *skills.Skill) {
		out = append(out, sk.Name)
	})
	return out
}

func TestTree_InsertIntoEmptyBecomesRoot(t *testing.T) {
	tree := skilltree.New()
	require.True(t, tree.IsEmpty())

	id, err := tree.InsertUnder("does not matter", active("Slash"))
	require.NoError(t, err)

	assert.Equal(t, tree.Root(), id)
	assert.Equal(t, skilltree.NoNode, tree.Parent(id))
	assert.Equal(t, 0, tree.Depth(id))
	assert.Equal(t, 1, tree.Len())
}

func TestTree_InsertUnderLinksParentAndChild(t *testing.T) {
	tree := skilltree.NewWithRoot(active("Slash"))

	cleave, err := tree.InsertUnder("Slash", active("Cleave"))
	require.NoError(t, err)
	whirl, err := tree.InsertUnder("Cleave", active("Whirlwind"))
	require.NoError(t, err)
	bash, err := tree.InsertUnder("Slash", active("Bash"))
	require.NoError(t, err)

	assert.Equal(t, []skilltree.NodeID{cleave, bash}, tree.Children(tree.Root()))
	assert.Equal(t, tree.Root(), tree.Parent(cleave))
	assert.Equal(t, cleave, tree.Parent(whirl))
	assert.Equal(t, 2, tree.Depth(whirl))
	assert.Equal(t, "Whirlwind", tree.Skill(whirl).Name)

	// every child lists back to its parent
	tree.TraverseDFS(func(id skilltree.NodeID, _ *skills.Skill) {
		for _, child := range tree.Children(id) {
			assert.Equal(t, id, tree.Parent(child))
		}
	})
}

func TestTree_InsertUnderMissingParent(t *testing.T) {
	tree := skilltree.NewWithRoot(active("Slash"))

	id, err := tree.InsertUnder("Nope", active("Orphan"))

	require.Error(t, err)
	assert.True(t, arenaerr.IsNotFound(err))
	assert.Equal(t, skilltree.NoNode, id)
	assert.Equal(t, 1, tree.Len())
	_, found := tree.FindByName("Orphan")
	assert.False(t, found)
}

func TestTree_FindByNamePrefersFirstInPreOrder(t *testing.T) {
	t.Run("root shadows deeper duplicate", func(t *testing.T) {
		tree := skilltree.NewWithRoot(active("A"))
		_, err := tree.InsertUnder("A", active("B"))
		require.NoError(t, err)
		deeper, err := tree.InsertUnder("B", active("A"))
		require.NoError(t, err)

		id, found := tree.FindByName("A")
		require.True(t, found)
		assert.Equal(t, tree.Root(), id)
		assert.NotEqual(t, deeper, id)
	})

	t.Run("depth first beats breadth first", func(t *testing.T) {
		tree := skilltree.NewWithRoot(active("R"))
		_, err := tree.InsertUnder("R", active("X"))
		require.NoError(t, err)
		_, err = tree.InsertUnder("R", active("A"))
		require.NoError(t, err)
		nested, err := tree.InsertUnder("X", active("A"))
		require.NoError(t, err)

		id, found := tree.FindByName("A")
		require.True(t, found)
		assert.Equal(t, nested, id)
	})

	t.Run("missing", func(t *testing.T) {
		_, found := skilltree.New().FindByName("A")
		assert.False(t, found)
	})
}

func TestTree_TraverseDFSIsPreOrder(t *testing.T) {
	tree := skilltree.NewWithRoot(active("Root"))
	for _, step := range [][2]string{
		{"Root", "Left"},
		{"Root", "Right"},
		{"Left", "LeftLeaf"},
		{"Right", "RightLeaf"},
	} {
		_, err := tree.InsertUnder(step[0], active(step[1]))
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"Root", "Left", "LeftLeaf", "Right", "RightLeaf"}, names(tree))
	assert.Equal(t, []string{
		"Active: Root (lvl 1, pwr 17) mana:10",
		"Active: Left (lvl 1, pwr 17) mana:10",
		"Active: LeftLeaf (lvl 1, pwr 17) mana:10",
		"Active: Right (lvl 1, pwr 17) mana:10",
		"Active: RightLeaf (lvl 1, pwr 17) mana:10",
	}, tree.Descriptions())
}

func TestTree_TraverseEmpty(t *testing.T) {
	tree := skilltree.New()
	assert.Empty(t, names(tree))
	assert.Empty(t, tree.Descriptions())
	assert.Zero(t, tree.Len())
}

func TestTree_RemoveChild(t *testing.T) {
	tree := skilltree.NewWithRoot(active("Root"))
	_, err := tree.InsertUnder("Root", active("Keep"))
	require.NoError(t, err)
	drop, err := tree.InsertUnder("Root", active("Drop"))
	require.NoError(t, err)
	_, err = tree.InsertUnder("Drop", active("DropLeaf"))
	require.NoError(t, err)

	assert.True(t, tree.RemoveChild(tree.Root(), "Drop"))
	assert.False(t, tree.RemoveChild(tree.Root(), "Drop"))
	assert.False(t, tree.RemoveChild(skilltree.NodeID(99), "Drop"))

	assert.Equal(t, []string{"Root", "Keep"}, names(tree))
	assert.Equal(t, skilltree.NoNode, tree.Parent(drop))
	_, found := tree.FindByName("DropLeaf")
	assert.False(t, found)
}

func TestTree_InvalidIDs(t *testing.T) {
	tree := skilltree.New()

	assert.Nil(t, tree.Skill(skilltree.NoNode))
	assert.Nil(t, tree.Children(3))
	assert.Equal(t, skilltree.NoNode, tree.Parent(3))
	assert.Equal(t, -1, tree.Depth(3))
}
