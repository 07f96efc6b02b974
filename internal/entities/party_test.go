package entities_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/KirkDiggler/skill-arena/internal/entities"
	"github.com/KirkDiggler/skill-arena/internal/entities/skills"
	"github.com/KirkDiggler/skill-arena/internal/logging"
	"github.com/stretchr/testify/assert"
)

func TestParty_Membership(t *testing.T) {
	var logs bytes.Buffer
	party := entities.NewParty("A", logging.New(&logs, slog.LevelInfo))
	thorin := newCharacter("Thorin", entities.ClassWarrior, nil, nil)
	merlin := newCharacter("Merlin", entities.ClassMage, nil, nil)

	party.AddMember(thorin)
	party.AddMember(nil)
	party.AddMember(merlin)

	assert.Equal(t, 2, party.Size())
	assert.Same(t, thorin, party.Member(0))
	assert.Same(t, merlin, party.Member(1))
	assert.Nil(t, party.Member(2))
	assert.Nil(t, party.Member(-1))
	assert.Equal(t, "[INFO] Adding member Thorin\n[INFO] Adding member Merlin\n", logs.String())
}

func TestParty_AliveAndDefeated(t *testing.T) {
	party := entities.NewParty("B", nil)
	assert.True(t, party.AllDefeated(), "an empty party has nobody left standing")

	orc := newCharacter("Orc1", entities.ClassWarrior, nil, nil)
	witch := newCharacter("Witch", entities.ClassMage, nil, nil)
	party.AddMember(orc)
	party.AddMember(witch)

	assert.False(t, party.AllDefeated())
	assert.Equal(t, []*entities.Character{orc, witch}, party.Alive())

	orc.TakeDamage(500)
	assert.Equal(t, []*entities.Character{witch}, party.Alive())
	assert.False(t, party.AllDefeated())

	witch.TakeDamage(500)
	assert.Empty(t, party.Alive())
	assert.True(t, party.AllDefeated())
}

func TestParty_CombinedPowerAndStatus(t *testing.T) {
	party := entities.NewParty("B", nil)
	orc := newCharacter("Orc1", entities.ClassWarrior, nil, nil)
	orc.EquipSkill(skills.NewActive("Cleave", 14, 10)) // 19/2
	witch := newCharacter("Witch", entities.ClassMage, nil, nil)
	witch.EquipSkill(skills.NewActive("Shadow Bolt", 18, 10)) // 23/2
	party.AddMember(orc)
	party.AddMember(witch)

	assert.Equal(t, (15+3+9)+(10+3+11), party.CombinedPower())

	var out bytes.Buffer
	party.ShowStatus(&out)
	assert.Equal(t, "  Orc1 (lvl 1) HP:100 MP:50\n  Witch (lvl 1) HP:100 MP:80\n", out.String())
}

func TestParty_MembersIsACopy(t *testing.T) {
	party := entities.NewParty("A", nil)
	party.AddMember(newCharacter("Thorin", entities.ClassWarrior, nil, nil))

	members := party.Members()
	members[0] = nil

	assert.NotNil(t, party.Member(0))
}
