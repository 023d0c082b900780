package valueobjects

import "fmt"

type Priority string

const (
	PriorityLow      Priority = "LOW"
	PriorityMedium   Priority = "MEDIUM"
	PriorityHigh     Priority = "HIGH"
	PriorityCritical Priority = "CRITICAL"
)

// DefaultPriority applies when a request is created without one.
const DefaultPriority = PriorityMedium

var priorityRanks = map[Priority]int{
	PriorityLow:      1,
	PriorityMedium:   2,
	PriorityHigh:     3,
	PriorityCritical: 4,
}

// AllPriorities returns the priorities from lowest to highest.
func AllPriorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}
}

func NewPriority(s string) (Priority, error) {
	p := Priority(s)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid priority: %s", s)
	}
	return p, nil
}

func (p Priority) String() string {
	return string(p)
}

func (p Priority) IsValid() bool {
	_, ok := priorityRanks[p]
	return ok
}

// Rank orders priorities from LOW (1) to CRITICAL (4). Invalid values rank 0.
func (p Priority) Rank() int {
	return priorityRanks[p]
}

func (p Priority) IsCritical() bool {
	return p == PriorityCritical
}

func (p Priority) IsHigherThan(other Priority) bool {
	return p.Rank() > other.Rank()
}
