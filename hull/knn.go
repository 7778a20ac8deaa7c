package hull

import "sort"

// nearestNeighbors returns the k points of the set closest to from, in
// ascending distance order. When fewer than k points remain, all of them
// are returned. Equidistant points land in map iteration order, so ties at
// the kth distance are non-deterministic across runs.
//
// Brute force on purpose: the point counts this algorithm targets don't
// justify a spatial index, and the flat scan keeps the working set a plain
// map. Callers feeding very large clouds should expect the full trace to
// be quadratic.
func nearestNeighbors(set PointSet, from Point, k int) []Point {
	byDist := make([]pointDistance, 0, len(set))
	for p := range set {
		byDist = append(byDist, pointDistance{point: p, dist: from.DistanceTo(p)})
	}
	sort.Slice(byDist, func(i, j int) bool {
		return byDist[i].dist < byDist[j].dist
	})

	if k > len(byDist) {
		k = len(byDist)
	}
	out := make([]Point, k)
	for i := range out {
		out[i] = byDist[i].point
	}
	return out
}
