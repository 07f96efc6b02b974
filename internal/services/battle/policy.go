package battle

// Side identifies which party acts on a turn
type Side int

const (
	SideA Side = iota
	SideB
)

func (s Side) String() string {
	if s == SideA {
		return "A"
	}
	return "B"
}

// TurnPolicy decides which side attacks on a given turn
type TurnPolicy interface {
	Attacker(turn int) Side
}

// AlternatingPolicy lets party A act on even turns and party B on odd turns
type AlternatingPolicy struct{}

func (AlternatingPolicy) Attacker(turn int) Side {
	if turn%2 == 0 {
		return SideA
	}
	return SideB
}

// FixedPolicy always lets the same side act. Handy for one-sided drills.
type FixedPolicy struct {
	Side Side
}

func (p FixedPolicy) Attacker(int) Side {
	return p.Side
}
