package hull

import "math"

// DedupPoints returns points with one representative per distinct
// quantized coordinate pair, preserving first-seen order. precision is the
// number of decimal places that survive quantization; negative values are
// treated as zero.
//
// The key keeps the original tool's composite scheme: x scaled by
// 10^(6+precision) and y by 10^precision, truncated, summed into a single
// int64. The scheme can collide (an x difference can alias a y difference
// exactly) and overflows for |x| beyond about 9.2e12/10^precision. Known
// latent risk, preserved verbatim: a different quantization would change
// which near-duplicates survive, and downstream results with them.
func DedupPoints(points []Point, precision int) []Point {
	if precision < 0 {
		precision = 0
	}
	xScale := math.Pow(10, float64(6+precision))
	yScale := math.Pow(10, float64(precision))

	seen := make(map[int64]struct{}, len(points))
	out := make([]Point, 0, len(points))
	for _, p := range points {
		key := int64(p.X*xScale) + int64(p.Y*yScale)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, p)
	}
	return out
}
