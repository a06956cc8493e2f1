package core

import "math"

// distanceMatrix holds dense all-pairs shortest-path data for a
// molecule, keyed by atom input-id (1-based; row/column 0 is unused).
// It is rebuilt from scratch by Molecule.Normalise via Floyd-Warshall.
type distanceMatrix struct {
	dist [][]int
	path [][]int // path[i][j] is the midpoint atom id on the shortest i-j path, or 0 if i,j are adjacent/identical
}

const unreachable = math.MaxInt32

func newDistanceMatrix(n int) *distanceMatrix {
	size := n + 1
	dist := make([][]int, size)
	path := make([][]int, size)
	for i := 1; i < size; i++ {
		dist[i] = make([]int, size)
		path[i] = make([]int, size)
		for j := range dist[i] {
			dist[i][j] = unreachable
		}
		dist[i][i] = 0
	}
	return &distanceMatrix{dist: dist, path: path}
}

// computeAtomicDistances rebuilds the molecule's distance and path
// matrices from its current bonds, via Floyd-Warshall.
func (m *Molecule) computeAtomicDistances() {
	maxID := 0
	for _, a := range m.atoms {
		if a.inputID > maxID {
			maxID = a.inputID
		}
	}
	dm := newDistanceMatrix(maxID)

	for _, b := range m.bonds {
		i, j := b.a1.inputID, b.a2.inputID
		dm.dist[i][j] = 1
		dm.dist[j][i] = 1
	}

	size := maxID + 1
	for k := 1; k < size; k++ {
		for i := 1; i < size; i++ {
			for j := 1; j < size; j++ {
				if k == i || k == j || i == j {
					continue
				}
				if dm.dist[i][k] == unreachable && dm.dist[k][j] == unreachable {
					continue
				}
				if dm.dist[i][k]+dm.dist[k][j] < dm.dist[i][j] {
					d := dm.dist[i][k] + dm.dist[k][j]
					dm.dist[i][j] = d
					dm.dist[j][i] = d
					dm.path[i][j] = k
					dm.path[j][i] = k
				}
			}
		}
	}
	m.dists = dm
}

// DistanceBetween returns the length of the shortest path, in bonds,
// between the atoms with the given input ids: 0 for the same atom,
// and a negative value if they are not connected.
func (m *Molecule) DistanceBetween(inputID1, inputID2 int) int {
	d := m.dists.dist[inputID1][inputID2]
	if d == unreachable {
		return -1
	}
	return d
}

// ShortestPathBetween returns the input-ids of the atoms strictly
// between inputID1 and inputID2 on the shortest path connecting them,
// excluding both endpoints: nil if they are not connected, an empty
// slice if they are directly bonded (or identical).
func (m *Molecule) ShortestPathBetween(inputID1, inputID2 int) []int {
	if m.dists.dist[inputID1][inputID2] == unreachable {
		return nil
	}
	k := m.dists.path[inputID1][inputID2]
	if k == 0 {
		return []int{}
	}
	left := m.ShortestPathBetween(inputID1, k)
	right := m.ShortestPathBetween(k, inputID2)
	out := make([]int, 0, len(left)+1+len(right))
	out = append(out, left...)
	out = append(out, k)
	out = append(out, right...)
	return out
}

// frerejacque returns the Frerejacque number |bonds| - |atoms| + 1,
// the number of independent cycles in the molecule's bond graph. A
// non-positive value means the molecule is acyclic or disconnected
// from a ring-forming standpoint.
func (m *Molecule) frerejacque() int {
	return len(m.bonds) - len(m.atoms) + 1
}
