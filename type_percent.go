package sitebook

import "fmt"

type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

// NearBudget is the utilization above which a project is flagged near/over budget.
const NearBudget Percent = 90

// IsNearBudget reports whether a utilization percentage crosses the alert policy.
func (p Percent) IsNearBudget() bool { return p > NearBudget }
