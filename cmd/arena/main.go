package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/KirkDiggler/skill-arena/internal/config"
	"github.com/KirkDiggler/skill-arena/internal/dice"
	"github.com/KirkDiggler/skill-arena/internal/entities/skills"
	"github.com/KirkDiggler/skill-arena/internal/logging"
	"github.com/KirkDiggler/skill-arena/internal/roster"
	"github.com/KirkDiggler/skill-arena/internal/services/battle"
	"github.com/KirkDiggler/skill-arena/internal/skilltree"
	"github.com/KirkDiggler/skill-arena/internal/uuid"
	"github.com/joho/godotenv"
)

func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(os.Stdout, cfg.LogLevel)
	if envErr != nil {
		logger.Debug("No .env file found")
	} else {
		logger.Debug("Loaded .env file")
	}

	if err := run(os.Stdout, cfg, logger); err != nil {
		logger.Error("Demo failed", "error", err)
		os.Exit(1)
	}
}

func run(out io.Writer, cfg *config.Config, logger *slog.Logger) error {
	roller := dice.NewRandomRoller(cfg.Seed)

	factory := skills.NewFactory(roller)
	tree := skilltree.New()
	if err := tree.GenerateRandom(factory, roller, cfg.Tree.MaxDepth, cfg.Tree.MaxChildren); err != nil {
		return err
	}
	logger.Debug("Generated skill tree", "nodes", tree.Len(), "skills", factory.Count())
	fmt.Fprintln(out, "Generated Skill Tree (DFS descriptions):")
	for _, desc := range tree.Descriptions() {
		fmt.Fprintf(out, " - %s\n", desc)
	}

	r, err := loadRoster(cfg.RosterFile)
	if err != nil {
		return err
	}
	parties, err := roster.Build(r, &roster.BuildConfig{
		Roller: roller,
		Logger: logger,
		IDs:    uuid.NewGoogleUUIDGenerator(),
	})
	if err != nil {
		return err
	}
	partyA, partyB := parties[0], parties[1]

	partyA.ShowStatus(out)
	partyB.ShowStatus(out)
	fmt.Fprintf(out, "Party A combined power: %d\n", partyA.CombinedPower())
	fmt.Fprintf(out, "Party B combined power: %d\n", partyB.CombinedPower())

	sim := battle.NewService(&battle.ServiceConfig{
		Roller:   roller,
		Logger:   logger,
		MaxTurns: cfg.Battle.MaxTurns,
	})
	result, err := sim.Simulate(partyA, partyB)
	if err != nil {
		return err
	}
	logger.Debug("Battle finished", "outcome", result.Outcome, "turns", result.Turns)
	for _, action := range result.Actions {
		logger.Debug("Battle action",
			"turn", action.Turn,
			"attacker_id", action.AttackerID,
			"defender_id", action.DefenderID,
			"damage", action.Damage)
	}

	if root := tree.Skill(tree.Root()); root != nil {
		if _, found := tree.FindByName(root.Name); found {
			fmt.Fprintf(out, "Found root skill by name: %s\n", root.Name)
		}
	}

	if first := partyA.Member(0); first != nil {
		fmt.Fprintf(out, "PartyA member 0 inventory: %s\n", first.Inventory.String())
	}

	fmt.Fprintln(out, "\n--- Demo finished ---")
	return nil
}

func loadRoster(path string) (*roster.Roster, error) {
	if path == "" {
		return roster.Default()
	}
	return roster.Load(path)
}
