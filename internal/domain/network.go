package domain

import "slices"

// RouteNetwork is a directed weighted graph of routes keyed by location ID.
//
// The network is an adjacency-list aggregate built once at startup and treated
// as read-only afterwards. It is not safe for mutation concurrent with queries.
type RouteNetwork struct {
	// source -> target -> edge; last write wins for duplicate (source, target).
	outgoing  map[string]map[string]RouteEdge
	locations map[string]struct{}
}

func NewRouteNetwork() *RouteNetwork {
	return &RouteNetwork{
		outgoing:  make(map[string]map[string]RouteEdge),
		locations: make(map[string]struct{}),
	}
}

// AddRoute inserts or overwrites a directed edge with derived emission and
// cost weights. Routes are one-way; a bidirectional link must be added twice.
// No validation is performed here (duplicates overwrite silently).
func (n *RouteNetwork) AddRoute(source, target string, distance, emissionFactor, costFactor float64) {
	if n.outgoing[source] == nil {
		n.outgoing[source] = make(map[string]RouteEdge)
	}
	n.outgoing[source][target] = NewRouteEdge(source, target, distance, emissionFactor, costFactor)
	n.locations[source] = struct{}{}
	n.locations[target] = struct{}{}
}

// AddEdge inserts a pre-built edge, preserving last-write-wins semantics.
func (n *RouteNetwork) AddEdge(e RouteEdge) {
	if n.outgoing[e.Source] == nil {
		n.outgoing[e.Source] = make(map[string]RouteEdge)
	}
	n.outgoing[e.Source][e.Target] = e
	n.locations[e.Source] = struct{}{}
	n.locations[e.Target] = struct{}{}
}

// HasLocation reports whether id appears as an endpoint of any route.
func (n *RouteNetwork) HasLocation(id string) bool {
	_, ok := n.locations[id]
	return ok
}

// From returns the outgoing edges of source, ordered by target ID so that
// traversals are deterministic.
func (n *RouteNetwork) From(source string) []RouteEdge {
	targets := n.outgoing[source]
	if len(targets) == 0 {
		return nil
	}

	edges := make([]RouteEdge, 0, len(targets))
	for _, e := range targets {
		edges = append(edges, e)
	}
	slices.SortFunc(edges, func(a, b RouteEdge) int {
		if a.Target < b.Target {
			return -1
		}
		if a.Target > b.Target {
			return 1
		}
		return 0
	})

	return edges
}

// Edges returns every edge ordered by (source, target).
func (n *RouteNetwork) Edges() []RouteEdge {
	edges := make([]RouteEdge, 0, len(n.outgoing))
	for _, source := range n.Locations() {
		edges = append(edges, n.From(source)...)
	}
	return edges
}

// Locations returns all known location IDs in sorted order.
func (n *RouteNetwork) Locations() []string {
	ids := make([]string, 0, len(n.locations))
	for id := range n.locations {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
