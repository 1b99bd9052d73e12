package render

import (
	"fmt"
	"strings"

	"github.com/jacoelho/sdo/internal/scalar"
)

// CyclePolicy selects how the object walker treats reference edges.
type CyclePolicy uint8

const (
	// ContainmentOnly follows containment edges only. Reference slots are
	// printed by identity and never entered.
	ContainmentOnly CyclePolicy = iota
	// FollowReferences enters referenced objects too, tracking the objects on
	// the current path; a revisit is printed as a cycle marker.
	FollowReferences
	// RejectCycles checks containment and reference edges for cycles before
	// rendering and fails when one exists. References are then followed.
	RejectCycles
)

var cyclePolicyNames = [...]string{
	ContainmentOnly:  "containment",
	FollowReferences: "follow",
	RejectCycles:     "reject",
}

// String returns the policy name.
func (p CyclePolicy) String() string {
	if int(p) >= len(cyclePolicyNames) {
		return fmt.Sprintf("CyclePolicy(%d)", p)
	}
	return cyclePolicyNames[p]
}

// ParseCyclePolicy resolves a policy name.
func ParseCyclePolicy(name string) (CyclePolicy, error) {
	for i, n := range cyclePolicyNames {
		if strings.EqualFold(n, name) {
			return CyclePolicy(i), nil
		}
	}
	return ContainmentOnly, fmt.Errorf("unknown cycle policy %q (want containment, follow or reject)", name)
}

// DefaultMaxDepth bounds recursion when Options.MaxDepth is zero.
const DefaultMaxDepth = 512

// Options configures object rendering.
type Options struct {
	// Formatter renders primitive values. Defaults to scalar.Text.
	Formatter scalar.Formatter
	// MaxDepth is the deepest line depth allowed. Zero means DefaultMaxDepth.
	MaxDepth    int
	CyclePolicy CyclePolicy
}

func (o Options) withDefaults() Options {
	if o.Formatter == nil {
		o.Formatter = scalar.Text{}
	}
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	return o
}
