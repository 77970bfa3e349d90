package services

import (
	"container/heap"
	"eco-shipment-service/internal/domain"
	"errors"
	"fmt"
	"math"
)

// MinWeightPath computes the path from source to target minimizing the summed
// edge weight in the chosen dimension, using priority-queue Dijkstra over the
// network's adjacency list. All edge weights are non-negative by construction
// (factors and distances are non-negative), which Dijkstra requires.
//
// An unreachable target is not an error: the result has Reachable=false and an
// empty path. Unknown source or target locations are an error, since querying
// a location the network has never seen indicates caller misuse rather than
// mere disconnection.
//
// Tie-break rule: when two paths have equal total weight, the first-found
// predecessor is kept (relaxation is strict), and the queue orders equal
// priorities by lexicographically smaller location ID. The returned path is
// therefore deterministic for a given network.
func MinWeightPath(
	network *domain.RouteNetwork,
	source string,
	target string,
	dim domain.WeightDimension,
) (domain.PathResult, error) {
	if network == nil {
		return domain.PathResult{}, errors.New("min weight path: network must be non-nil")
	}
	if _, err := domain.ParseWeightDimension(string(dim)); err != nil {
		return domain.PathResult{}, fmt.Errorf("min weight path: %w", err)
	}
	if !network.HasLocation(source) {
		return domain.PathResult{}, fmt.Errorf("min weight path: unknown source location %q", source)
	}
	if !network.HasLocation(target) {
		return domain.PathResult{}, fmt.Errorf("min weight path: unknown target location %q", target)
	}

	dist := map[string]float64{source: 0}
	parent := make(map[string]string)
	visited := make(map[string]bool)

	pq := &locationQueue{}
	heap.Init(pq)
	heap.Push(pq, locationItem{id: source, dist: 0})

	for pq.Len() > 0 {
		u := heap.Pop(pq).(locationItem)
		if visited[u.id] {
			continue
		}
		visited[u.id] = true

		if u.id == target {
			break
		}

		for _, edge := range network.From(u.id) {
			v := edge.Target
			if visited[v] {
				continue
			}

			nd := dist[u.id] + edge.Weight(dim)
			if best, seen := dist[v]; !seen || nd < best {
				dist[v] = nd
				parent[v] = u.id
				heap.Push(pq, locationItem{id: v, dist: nd})
			}
		}
	}

	if !visited[target] {
		return domain.PathResult{Locations: []string{}, Reachable: false}, nil
	}

	// Walk the parent chain back from target to reconstruct the path.
	path := []string{target}
	for at := target; at != source; {
		at = parent[at]
		path = append(path, at)
	}
	reverse(path)

	total := dist[target]
	if math.IsInf(total, 0) || math.IsNaN(total) {
		return domain.PathResult{}, fmt.Errorf("min weight path: non-finite total weight for %q -> %q", source, target)
	}

	return domain.PathResult{Locations: path, TotalWeight: total, Reachable: true}, nil
}

func reverse(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

type locationItem struct {
	id   string
	dist float64
}

// locationQueue implements heap.Interface. Equal distances order by location
// ID so extraction order never depends on insertion order.
type locationQueue []locationItem

func (pq locationQueue) Len() int { return len(pq) }

func (pq locationQueue) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}

func (pq locationQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *locationQueue) Push(x any) {
	*pq = append(*pq, x.(locationItem))
}

func (pq *locationQueue) Pop() any {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]
	return it
}
