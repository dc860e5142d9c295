package client

import "fmt"

// TickSize is the minimum price increment a market accepts. The CLOB only
// supports four tick sizes; each one fixes the rounding precision for
// prices, sizes and token amounts.
type TickSize int

const (
	TickTenth         TickSize = iota // 0.1
	TickHundredth                     // 0.01
	TickThousandth                    // 0.001
	TickTenThousandth                 // 0.0001
)

// RoundConfig holds the decimal precision applied to each component of an
// order at a given tick size.
type RoundConfig struct {
	Price  int32
	Size   int32
	Amount int32
}

var roundConfigs = map[TickSize]RoundConfig{
	TickTenth:         {Price: 1, Size: 2, Amount: 3},
	TickHundredth:     {Price: 2, Size: 2, Amount: 4},
	TickThousandth:    {Price: 3, Size: 2, Amount: 5},
	TickTenThousandth: {Price: 4, Size: 2, Amount: 6},
}

// ParseTickSize accepts exactly the four tick size strings the exchange
// reports; anything else is an error.
func ParseTickSize(s string) (TickSize, error) {
	switch s {
	case "0.1":
		return TickTenth, nil
	case "0.01":
		return TickHundredth, nil
	case "0.001":
		return TickThousandth, nil
	case "0.0001":
		return TickTenThousandth, nil
	default:
		return 0, fmt.Errorf("invalid tick size %q", s)
	}
}

func (t TickSize) String() string {
	switch t {
	case TickTenth:
		return "0.1"
	case TickHundredth:
		return "0.01"
	case TickThousandth:
		return "0.001"
	case TickTenThousandth:
		return "0.0001"
	default:
		return "unknown"
	}
}

// RoundConfig returns the precision set for this tick size.
func (t TickSize) RoundConfig() RoundConfig {
	return roundConfigs[t]
}
