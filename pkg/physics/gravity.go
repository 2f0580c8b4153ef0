package physics

// Stałe dostrojone do skali wizualizacji, nie do jednostek fizycznych.
const (
	// G to stała grawitacji.
	G = 1e-5

	// MinDist2 is the squared-distance cutoff below which a pair
	// contributes no force. Near-coincident bodies would otherwise blow
	// up the 1/dist² term.
	MinDist2 = 1e-4
)

// Acceleration sums the gravitational pull of every other body on bodies[i],
// reading current positions only.
func Acceleration(i int, bodies []Body) Vec2 {
	var acc Vec2
	for j := range bodies {
		if j == i {
			continue
		}
		toOther := bodies[j].Pos.Sub(bodies[i].Pos)
		dist2 := toOther.Len2()
		if dist2 < MinDist2 {
			continue
		}
		acc = acc.Add(toOther.Normalize().Mul(G * bodies[j].Mass / dist2))
	}
	return acc
}
