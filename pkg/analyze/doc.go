// Package analyze implements read-only analytics over a logistics network.
//
// Three independent engines operate on an immutable [network.Network]:
//
//   - Shortest paths: [ShortestPath] and [PlanDeliveries] compute minimum-cost
//     routes with Dijkstra's algorithm.
//   - Criticality: [FindCriticalPoints] locates articulation points and
//     bridges with a single depth-first traversal.
//   - Centrality: [BetweennessCentrality] scores every node by the fraction
//     of all-pairs shortest paths that pass through it (Brandes' algorithm).
//
// None of the engines mutate the network, so they may run concurrently on
// the same instance and repeatedly without interference.
//
// Unreachability is not an error: [ShortestPath] reports it through the
// [NoRoute] value, and [PlanDeliveries] records NoRoute per destination.
// Only a query naming a node absent from the network fails, with
// [network.ErrUnknownNode].
package analyze
