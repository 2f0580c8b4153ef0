package simulation

import (
	"image/color"
	"math"
	"math/rand"
	"time"

	"github.com/rubendv/nbody-gl/pkg/physics"
)

// ScatterConfig opisuje losowe rozsypanie ciał po scenie.
// Positions are uniform in ±Spread on both axes, masses are 10^u with u
// uniform in [MassExp[0], MassExp[1]], velocities start at zero. Seed 0
// means a fresh layout every run; any other value reproduces the same one.
type ScatterConfig struct {
	Count   int        `json:"count"`
	Spread  float64    `json:"spread"`
	MassExp [2]float64 `json:"mass_exp"`
	Seed    int64      `json:"seed,omitempty"`
}

func (c ScatterConfig) bodies() []physics.Body {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	out := make([]physics.Body, c.Count)
	for i := range out {
		pos := physics.Vec2{
			X: (rng.Float64()*2 - 1) * c.Spread,
			Y: (rng.Float64()*2 - 1) * c.Spread,
		}
		exp := c.MassExp[0] + rng.Float64()*(c.MassExp[1]-c.MassExp[0])
		out[i] = physics.NewBody(math.Pow(10, exp), pos)
		out[i].ColorC = color.RGBA{204, 178, 178, 255}
	}
	return out
}

// DefaultEnvironment is used when no config file is given: a field of 500
// random bodies, the classic demo scene.
func DefaultEnvironment() EnvironmentConfig {
	return EnvironmentConfig{
		Name: "scatter",
		Dt:   0.01,
		Scatter: &ScatterConfig{
			Count:   500,
			Spread:  0.8,
			MassExp: [2]float64{0, 2},
		},
	}
}
