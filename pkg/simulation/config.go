package simulation

import (
	"encoding/json"
	"fmt"
	"image/color"
	"math"
	"os"

	"github.com/rubendv/nbody-gl/pkg/physics"
)

// --- Struktura konfiguracji środowiska ---
type EnvironmentConfig struct {
	Name      string         `json:"name"`
	Dt        float64        `json:"dt"`
	Bodies    []BodyConfig   `json:"bodies"`
	Scatter   *ScatterConfig `json:"scatter,omitempty"`
	AutoOrbit bool           `json:"auto_orbit,omitempty"`
}

type BodyConfig struct {
	Mass  float64    `json:"mass"`
	Pos   [2]float64 `json:"pos"`
	Vel   [2]float64 `json:"vel"`
	Color string     `json:"color"`
}

// --- Wczytanie pliku konfiguracyjnego ---
func LoadConfig(path string) (*Simulator, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("błąd odczytu pliku: %w", err)
	}

	var env EnvironmentConfig
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("błąd parsowania JSON: %w", err)
	}

	return NewSimulator(env)
}

// setOrbitalVelocities gives every body after the first a circular-orbit
// velocity around body 0, unless it already has one from the config.
func setOrbitalVelocities(bodies []physics.Body) {
	if len(bodies) == 0 {
		return
	}
	central := bodies[0]
	for i := 1; i < len(bodies); i++ {
		if bodies[i].Vel != (physics.Vec2{}) {
			continue
		}

		rel := bodies[i].Pos.Sub(central.Pos)
		r := rel.Len()
		if r == 0 {
			continue
		}
		v := math.Sqrt(physics.G * central.Mass / r)
		// skierowanie prędkości prostopadle do wektora pozycji
		bodies[i].Vel = physics.Vec2{X: -rel.Y / r * v, Y: rel.X / r * v}
	}
}

// --- Parser koloru HEX ---
func parseColor(hex string) color.RGBA {
	var r, g, b uint8
	if len(hex) == 7 && hex[0] == '#' {
		n, err := fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b)
		if err == nil && n == 3 {
			return color.RGBA{r, g, b, 255}
		}
	}
	return color.RGBA{200, 200, 255, 255}
}
