package dice

import (
	arenaerr "github.com/KirkDiggler/skill-arena/internal/errors"
)

// RollResult contains detailed information about a dice roll
type RollResult struct {
	Total    int   // Sum of all dice plus bonus
	Rolls    []int // Individual die results
	Bonus    int   // Bonus applied
	Count    int   // Number of dice rolled
	Sides    int   // Number of sides on each die
	RawTotal int   // Sum of dice before bonus
}

// Pick returns a uniformly distributed value in [0, n) by rolling a single n-sided die.
func Pick(r Roller, n int) (int, error) {
	if n < 1 {
		return 0, arenaerr.InvalidArgumentf("cannot pick from %d options", n)
	}

	result, err := r.Roll(1, n, -1)
	if err != nil {
		return 0, arenaerr.Wrapf(err, "failed to pick from %d options", n)
	}

	return result.Total, nil
}

// Percent reports whether a d100 roll lands under chance percent.
func Percent(r Roller, chance int) (bool, error) {
	v, err := Pick(r, 100)
	if err != nil {
		return false, err
	}

	return v < chance, nil
}

func validate(count, sides int) error {
	if count < 1 {
		return arenaerr.InvalidArgumentf("invalid dice count %d", count)
	}
	if sides < 1 {
		return arenaerr.InvalidArgumentf("invalid dice size %d", sides)
	}
	return nil
}
