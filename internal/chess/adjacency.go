package chess

// KingDeltas are the 8 unit vectors, orthogonal and diagonal.
// Their order fixes the order of adjacency edges and king destinations.
var KingDeltas = [8]Delta{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Edge links a square to one of its neighbours.
type Edge struct {
	To    Square
	Delta Delta
}

// adjacency holds the neighbours of every square, derived from the board
// dimensions alone.
var adjacency [NumSquares][]Edge

func init() {
	for i := 0; i < NumSquares; i++ {
		adjacency[i] = adjacentEdges(SquareFromIndex(i))
	}
}

// adjacentEdges computes the in-bounds neighbours of sq.
func adjacentEdges(sq Square) []Edge {
	edges := make([]Edge, 0, len(KingDeltas))
	for _, d := range KingDeltas {
		to := sq.Offset(d)
		if to.InBounds() {
			edges = append(edges, Edge{To: to, Delta: d})
		}
	}
	return edges
}

// Adjacent returns the up-to-8 neighbours of sq in KingDeltas order.
// The slice is a copy. Out-of-bounds squares have no neighbours.
func Adjacent(sq Square) []Edge {
	if !sq.InBounds() {
		return nil
	}
	edges := adjacency[sq.Index()]
	out := make([]Edge, len(edges))
	copy(out, edges)
	return out
}
