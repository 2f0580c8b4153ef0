package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"golang.org/x/image/font/basicfont"

	"github.com/rubendv/nbody-gl/pkg/physics"
	"github.com/rubendv/nbody-gl/pkg/simulation"
)

const (
	screenWidth  = 800
	screenHeight = 600

	// viewScale przelicza jednostki świata na piksele: okno ma 2 jednostki
	// wysokości, jak w rzutowaniu ortogonalnym oryginału.
	viewScale = screenHeight / 2

	trailMaxLife     = 20.0 // czas życia śladu w sekundach symulacji
	maxTrailSegments = 240  // ograniczenie wydajnościowe na ciało
)

// TrailSegment ---
type TrailSegment struct {
	X0, Y0, X1, Y1 float64
	Life           float64
	Color          color.RGBA
}

// Game ---
type Game struct {
	sim     *simulation.Simulator
	trails  [][]TrailSegment
	lastPos []physics.Vec2

	paused     bool
	showTrails bool
}

func newGame(sim *simulation.Simulator) *Game {
	g := &Game{
		sim:        sim,
		trails:     make([][]TrailSegment, len(sim.World.Bodies)),
		lastPos:    make([]physics.Vec2, len(sim.World.Bodies)),
		showTrails: true,
	}
	for i, b := range sim.World.Bodies {
		g.lastPos[i] = b.Pos
	}
	return g
}

// worldToScreen: środek okna to początek układu współrzędnych świata.
func worldToScreen(p physics.Vec2) (float64, float64) {
	return float64(screenWidth)/2 + p.X*viewScale, float64(screenHeight)/2 + p.Y*viewScale
}

func screenToWorld(mx, my int) physics.Vec2 {
	return physics.Vec2{
		X: (float64(mx) - float64(screenWidth)/2) / viewScale,
		Y: (float64(my) - float64(screenHeight)/2) / viewScale,
	}
}

// Update ---
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.showTrails = !g.showTrails
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) && g.paused {
		g.advanceOneStep()
	}

	if g.paused {
		return nil
	}

	g.advanceOneStep()
	return nil
}

// advanceOneStep ---
func (g *Game) advanceOneStep() {
	g.sim.Step()

	// update śladów
	for i := range g.sim.World.Bodies {
		b := g.sim.World.Bodies[i]
		x0, y0 := worldToScreen(g.lastPos[i])
		x1, y1 := worldToScreen(b.Pos)
		g.trails[i] = append(g.trails[i], TrailSegment{
			X0: x0, Y0: y0, X1: x1, Y1: y1,
			Life:  trailMaxLife,
			Color: b.ColorC,
		})
		if len(g.trails[i]) > maxTrailSegments {
			g.trails[i] = g.trails[i][len(g.trails[i])-maxTrailSegments:]
		}
		g.lastPos[i] = b.Pos

		// trim by life
		alive := g.trails[i][:0]
		for j := range g.trails[i] {
			g.trails[i][j].Life -= g.sim.Dt
			if g.trails[i][j].Life > 0 {
				alive = append(alive, g.trails[i][j])
			}
		}
		g.trails[i] = alive
	}
}

// Draw ---
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{51, 77, 77, 255})

	if g.showTrails {
		margin := 64.0
		for _, trail := range g.trails {
			for _, s := range trail {
				// pomiń segmenty poza widocznym obszarem (z marginesem)
				if (s.X0 < -margin && s.X1 < -margin) || (s.X0 > screenWidth+margin && s.X1 > screenWidth+margin) ||
					(s.Y0 < -margin && s.Y1 < -margin) || (s.Y0 > screenHeight+margin && s.Y1 > screenHeight+margin) {
					continue
				}
				// color.RGBA jest alpha-premultiplied, więc skalujemy wszystkie kanały
				f := s.Life / trailMaxLife
				c := color.RGBA{
					R: uint8(float64(s.Color.R) * f),
					G: uint8(float64(s.Color.G) * f),
					B: uint8(float64(s.Color.B) * f),
					A: uint8(200 * f),
				}
				vector.StrokeLine(screen, float32(s.X0), float32(s.Y0), float32(s.X1), float32(s.Y1), 1, c, true)
			}
		}
	}

	for i := range g.sim.World.Bodies {
		b := g.sim.World.Bodies[i]
		x, y := worldToScreen(b.Pos)
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(b.Radius*viewScale), b.ColorC, true)
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("Env: %s\nBodies: %d\nPaused: %v", g.sim.Name, len(g.sim.World.Bodies), g.paused))

	// tooltip podczas pauzy
	if g.paused {
		g.drawTooltip(screen)
	}
}

// drawTooltip pokazuje parametry ciała pod kursorem.
func (g *Game) drawTooltip(screen *ebiten.Image) {
	mx, my := ebiten.CursorPosition()
	mouse := screenToWorld(mx, my)

	var hovered *physics.Body
	minD := 1e18
	for i := range g.sim.World.Bodies {
		b := &g.sim.World.Bodies[i]
		d := b.Pos.Sub(mouse).Len()
		if d <= b.Radius && d < minD {
			hovered = b
			minD = d
		}
	}
	if hovered == nil {
		return
	}

	lines := []string{
		fmt.Sprintf("Mass: %.3e", hovered.Mass),
		fmt.Sprintf("Pos: (%.3f, %.3f)", hovered.Pos.X, hovered.Pos.Y),
		fmt.Sprintf("Vel: (%.3e, %.3e)", hovered.Vel.X, hovered.Vel.Y),
		fmt.Sprintf("Radius: %.4f", hovered.Radius),
	}
	pad := 6
	charW := 7
	lineH := 13
	maxLen := 0
	for _, l := range lines {
		if len(l) > maxLen {
			maxLen = len(l)
		}
	}
	tw := maxLen*charW + pad*2
	th := len(lines)*lineH + pad*2

	drawX := mx + 12
	drawY := my + 12
	if drawX+tw > screenWidth {
		drawX = screenWidth - tw - 8
	}
	if drawY+th > screenHeight {
		drawY = screenHeight - th - 8
	}

	tooltip := ebiten.NewImage(tw, th)
	tooltip.Fill(color.RGBA{10, 10, 10, 200})
	for i, l := range lines {
		text.Draw(tooltip, l, basicfont.Face7x13, pad, pad+(i+1)*lineH-2, color.RGBA{230, 230, 230, 255})
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(drawX), float64(drawY))
	screen.DrawImage(tooltip, op)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return screenWidth, screenHeight
}

// loadEnvironment rozwiązuje -env jako ścieżkę albo nazwę w pkg/assets;
// bez argumentu używa domyślnego rozsypania ciał.
func loadEnvironment(envName string, count int, seed int64) (*simulation.Simulator, error) {
	if envName == "" {
		cfg := simulation.DefaultEnvironment()
		if count > 0 {
			cfg.Scatter.Count = count
		}
		cfg.Scatter.Seed = seed
		return simulation.NewSimulator(cfg)
	}

	path := envName
	if _, err := os.Stat(path); err != nil {
		path = filepath.Join("pkg", "assets", envName+".json")
	}
	return simulation.LoadConfig(path)
}

func main() {
	envName := flag.String("env", "", "środowisko: ścieżka do pliku JSON albo nazwa z pkg/assets (puste = losowe rozsypanie)")
	count := flag.Int("n", 0, "liczba ciał dla domyślnego środowiska")
	seed := flag.Int64("seed", 0, "ziarno generatora dla domyślnego środowiska (0 = losowe)")
	flag.Parse()

	sim, err := loadEnvironment(*envName, *count, *seed)
	if err != nil {
		log.Fatalf("Błąd wczytywania środowiska: %v", err)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("N-Body")
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(newGame(sim)); err != nil {
		log.Fatal(err)
	}
}
