package physics

// --- Świat symulacji ---
// World holds the ordered set of bodies. Order does not matter to the
// physics but stays stable within a run.
type World struct {
	Bodies []Body
}

// Tick advances every body by dt using semi-implicit Euler. All
// accelerations, and from them velocities, are computed against pre-tick
// positions; only once every velocity is final do positions move. Folding
// the two loops together would let already-moved bodies bias the force on
// the ones after them.
func (w *World) Tick(dt float64) {
	for i := range w.Bodies {
		acc := Acceleration(i, w.Bodies)
		w.Bodies[i].Vel = w.Bodies[i].Vel.Add(acc.Mul(dt))
	}
	for i := range w.Bodies {
		w.Bodies[i].Pos = w.Bodies[i].Pos.Add(w.Bodies[i].Vel.Mul(dt))
	}
}
