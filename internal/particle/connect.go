package particle

import "math"

// Edge joins two particles closer than the connection distance.
type Edge struct {
	I, J     int // I < J
	Distance float64
	Opacity  float64
}

// Opacity fades linearly from maxOpacity at distance 0 to 0 at maxDistance.
func Opacity(distance, maxDistance, maxOpacity float64) float64 {
	return (1 - distance/maxDistance) * maxOpacity
}

// Distance is the euclidean distance between two particles.
func Distance(a, b Particle) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Connect sweeps every unordered pair and appends an edge for each pair
// strictly closer than maxDistance. Edges come out ordered by (I, J).
// It only reads the particles.
func Connect(dst []Edge, ps []Particle, maxDistance, maxOpacity float64) []Edge {
	for i := 0; i < len(ps); i++ {
		for j := i + 1; j < len(ps); j++ {
			d := Distance(ps[i], ps[j])
			if d < maxDistance {
				dst = append(dst, Edge{
					I:        i,
					J:        j,
					Distance: d,
					Opacity:  Opacity(d, maxDistance, maxOpacity),
				})
			}
		}
	}
	return dst
}
