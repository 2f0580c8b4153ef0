package simulation

import (
	"fmt"

	"github.com/rubendv/nbody-gl/pkg/physics"
)

const defaultDt = 0.01

// --- Główna struktura symulatora ---
type Simulator struct {
	Name  string
	Dt    float64
	World physics.World
}

// --- Tworzenie symulatora z konfiguracji ---
// Explicit bodies come first, then the scatter field if one is configured.
func NewSimulator(cfg EnvironmentConfig) (*Simulator, error) {
	bodies := make([]physics.Body, 0, len(cfg.Bodies))

	for _, bc := range cfg.Bodies {
		if bc.Mass <= 0 {
			return nil, fmt.Errorf("środowisko %q: masa ciała musi być dodatnia, jest %v", cfg.Name, bc.Mass)
		}
		b := physics.NewBody(bc.Mass, physics.Vec2{X: bc.Pos[0], Y: bc.Pos[1]})
		b.Vel = physics.Vec2{X: bc.Vel[0], Y: bc.Vel[1]}
		b.ColorC = parseColor(bc.Color)
		bodies = append(bodies, b)
	}

	if cfg.Scatter != nil {
		bodies = append(bodies, cfg.Scatter.bodies()...)
	}

	if len(bodies) == 0 {
		return nil, fmt.Errorf("środowisko %q nie zawiera żadnych ciał", cfg.Name)
	}

	if cfg.AutoOrbit {
		setOrbitalVelocities(bodies)
	}

	dt := cfg.Dt
	if dt <= 0 {
		dt = defaultDt
	}

	return &Simulator{
		Name:  cfg.Name,
		Dt:    dt,
		World: physics.World{Bodies: bodies},
	}, nil
}

// --- Aktualizacja symulacji ---
func (s *Simulator) Step() {
	s.World.Tick(s.Dt)
}
