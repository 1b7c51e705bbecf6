package graph

import (
	"fmt"
	"sort"
)

// Node is a draw layer. Z breaks ties between layers with no ordering constraint.
type Node struct {
	ID string
	Z  int
}

// Arrow says FromID must be drawn before ToID.
type Arrow struct {
	FromID string
	ToID   string
}

// TopologicalSort performs a topological sort using Kahn's algorithm.
// Among ready nodes the lowest Z (then ID) goes first, so the result is deterministic.
// It returns an error if a cycle is detected or an arrow names an unknown node.
func TopologicalSort(nodes []Node, arrows []Arrow) ([]string, error) {
	// Build maps
	inDegree := make(map[string]int)
	outs := make(map[string][]string)
	byID := make(map[string]Node, len(nodes))
	for _, n := range nodes {
		inDegree[n.ID] = 0
		byID[n.ID] = n
	}

	for _, a := range arrows {
		if _, ok := byID[a.FromID]; !ok {
			return nil, fmt.Errorf("unknown layer %q", a.FromID)
		}
		if _, ok := byID[a.ToID]; !ok {
			return nil, fmt.Errorf("unknown layer %q", a.ToID)
		}
		outs[a.FromID] = append(outs[a.FromID], a.ToID)
		inDegree[a.ToID]++
	}

	less := func(a, b string) bool {
		if byID[a].Z != byID[b].Z {
			return byID[a].Z < byID[b].Z
		}
		return a < b
	}

	// Initialize queue with nodes with inDegree 0
	queue := []string{}
	for id, d := range inDegree {
		if d == 0 {
			queue = append(queue, id)
		}
	}

	result := []string{}
	for len(queue) > 0 {
		sort.Slice(queue, func(i, j int) bool { return less(queue[i], queue[j]) })
		u := queue[0]
		queue = queue[1:]
		result = append(result, u)

		for _, v := range outs[u] {
			inDegree[v]--
			if inDegree[v] == 0 {
				queue = append(queue, v)
			}
		}
	}

	if len(result) != len(byID) {
		return nil, fmt.Errorf("cycle detected in layer graph")
	}
	return result, nil
}
