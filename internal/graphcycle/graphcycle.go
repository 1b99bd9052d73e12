package graphcycle

import "fmt"

type visitState uint8

const (
	stateVisiting visitState = iota + 1
	stateDone
)

// CycleError reports a cycle. Path starts and ends with the repeated node.
type CycleError[K comparable] struct {
	Path []K
}

// Error returns the error string.
func (e CycleError[K]) Error() string {
	return fmt.Sprintf("cycle detected through %d nodes", len(e.Path)-1)
}

// Config configures cycle detection.
type Config[K comparable] struct {
	Next   func(K) ([]K, error)
	Starts []K
}

type frame[K comparable] struct {
	key  K
	next []K
	pos  int
}

// Detect walks directed edges from Starts depth first and reports the first
// cycle or traversal error. The walk is iterative.
func Detect[K comparable](cfg Config[K]) error {
	if cfg.Next == nil {
		return fmt.Errorf("cycle detect: next function is nil")
	}
	states := make(map[K]visitState, len(cfg.Starts))

	for _, start := range cfg.Starts {
		if states[start] == stateDone {
			continue
		}
		next, err := cfg.Next(start)
		if err != nil {
			return err
		}
		states[start] = stateVisiting
		stack := []frame[K]{{key: start, next: next}}

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.pos == len(top.next) {
				states[top.key] = stateDone
				stack = stack[:len(stack)-1]
				continue
			}
			key := top.next[top.pos]
			top.pos++

			switch states[key] {
			case stateVisiting:
				return CycleError[K]{Path: cyclePath(stack, key)}
			case stateDone:
				continue
			}
			neighbors, err := cfg.Next(key)
			if err != nil {
				return err
			}
			states[key] = stateVisiting
			stack = append(stack, frame[K]{key: key, next: neighbors})
		}
	}
	return nil
}

func cyclePath[K comparable](stack []frame[K], key K) []K {
	i := len(stack) - 1
	for i > 0 && stack[i].key != key {
		i--
	}
	path := make([]K, 0, len(stack)-i+1)
	for _, f := range stack[i:] {
		path = append(path, f.key)
	}
	return append(path, key)
}
