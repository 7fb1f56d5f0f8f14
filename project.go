package sitebook

import "fmt"

// ProjectStatus is the lifecycle state of a project.
type ProjectStatus string

const (
	// Planning is the initial state of every project.
	Planning ProjectStatus = "Planning"
	// InProgress is the active state.
	InProgress ProjectStatus = "In Progress"
	// Completed is terminal: no status change or material consumption is
	// permitted once reached.
	Completed ProjectStatus = "Completed"
	// OnHold is a side state reachable from Planning or In Progress.
	OnHold ProjectStatus = "On Hold"
)

// ParseProjectStatus parses a string into a ProjectStatus.
func ParseProjectStatus(s string) (ProjectStatus, error) {
	switch ProjectStatus(s) {
	case Planning, InProgress, Completed, OnHold:
		return ProjectStatus(s), nil
	default:
		return "", fmt.Errorf("unknown project status: %q", s)
	}
}

// transitions is the allowed set of status changes. Completed has no
// outgoing transition; OnHold resumes to either active state.
var transitions = map[ProjectStatus][]ProjectStatus{
	Planning:   {InProgress, OnHold},
	InProgress: {Completed, OnHold},
	OnHold:     {Planning, InProgress},
	Completed:  {},
}

// CanTransitionTo reports whether the status change is in the allowed set.
func (s ProjectStatus) CanTransitionTo(next ProjectStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Project types form a closed set matching the business's two trades.
const (
	Electrical = "Electrical"
	Road       = "Road"
)

// MaterialUsage is the cumulative consumption of one product by a project.
// Cost is the sum of frozen-cost debits: once recorded it is never revised,
// whatever happens to the product's average rate afterwards. The product
// name is a denormalized snapshot, kept for historical accuracy.
type MaterialUsage struct {
	ProductID   string   `json:"productId"`
	ProductName string   `json:"productName"`
	Quantity    Quantity `json:"quantity"`
	Cost        Money    `json:"cost"`
}

// Project carries the metadata, budget and material-consumption log of one
// job. Status transitions and usage-log appends are the only mutations.
type Project struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Client        string          `json:"client"`
	Type          string          `json:"type"`
	Status        ProjectStatus   `json:"status"`
	StartDate     Date            `json:"startDate"`
	Budget        Money           `json:"budget"`
	MaterialsUsed []MaterialUsage `json:"materialsUsed"`
}

// consume merges a debit into the usage log: one entry per distinct product,
// accumulating quantity and cost.
func (p *Project) consume(productID, productName string, quantity Quantity, cost Money) {
	for i, u := range p.MaterialsUsed {
		if u.ProductID == productID {
			u.Quantity = u.Quantity.Add(quantity)
			u.Cost = u.Cost.Add(cost)
			p.MaterialsUsed[i] = u
			return
		}
	}
	p.MaterialsUsed = append(p.MaterialsUsed, MaterialUsage{
		ProductID:   productID,
		ProductName: productName,
		Quantity:    quantity,
		Cost:        cost,
	})
}

// MaterialCost returns the total cost of all materials consumed so far.
func (p Project) MaterialCost() Money {
	var total Money
	for _, u := range p.MaterialsUsed {
		total = total.Add(u.Cost)
	}
	return total
}

// BudgetUtilization returns the share of the budget consumed by materials.
// Values above 90 are flagged near/over budget by policy.
func (p Project) BudgetUtilization() Percent {
	if p.Budget.IsZero() {
		return 0
	}
	return p.MaterialCost().Ratio(p.Budget)
}

// Clone returns a deep copy, usage log included.
func (p Project) Clone() Project {
	clone := p
	clone.MaterialsUsed = make([]MaterialUsage, len(p.MaterialsUsed))
	copy(clone.MaterialsUsed, p.MaterialsUsed)
	return clone
}
