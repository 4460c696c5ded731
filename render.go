package main

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Draw renders the grid, the rod and bob for the current frame, and the
// optional phase inset and debug overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	g.drawGrid(screen)

	i, pos := g.player.Frame()
	px, py := g.toScreen(0, 0)
	bx, by := g.toScreen(pos.X, pos.Y)
	vector.StrokeLine(screen, px, py, bx, by, rodWidth, rodColor, true)
	vector.DrawFilledCircle(screen, px, py, pivotRadius, pivotColor, true)
	vector.DrawFilledCircle(screen, bx, by, bobRadius, bobColor, true)

	if g.phase != nil {
		g.drawPhaseInset(screen)
	}

	if g.showDebug {
		s := g.traj.States[i]
		tps := ebiten.ActualTPS()
		if tps < 0 {
			tps = 0
		}
		msg := fmt.Sprintf("Frame: %d/%d\nt: %.3f s\ntheta: %.4f rad\nomega: %.4f rad/s\nEnergy: %.6f J/kg\nTPS: %.1f",
			i+1, g.player.Len(), g.traj.Times[i], s.Theta, s.Omega, g.traj.Params.Energy(s), tps)
		ebitenutil.DebugPrint(screen, msg)
	}
}

// Layout reports the logical screen size used by Ebiten.
func (g *Game) Layout(_, _ int) (int, int) { return g.width, g.height }

// toScreen maps world metres to pixels; screen y grows downward.
func (g *Game) toScreen(x, y float64) (float32, float32) {
	sx := (x - g.bounds.MinX) * g.scale
	sy := (g.bounds.MaxY - y) * g.scale
	return float32(sx), float32(sy)
}

// drawGrid draws light lines every gridStep metres and darker axes through
// the pivot.
func (g *Game) drawGrid(screen *ebiten.Image) {
	b := g.bounds
	for x := math.Ceil(b.MinX/gridStep) * gridStep; x <= b.MaxX; x += gridStep {
		x0, y0 := g.toScreen(x, b.MinY)
		x1, y1 := g.toScreen(x, b.MaxY)
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, gridColor, false)
	}
	for y := math.Ceil(b.MinY/gridStep) * gridStep; y <= b.MaxY; y += gridStep {
		x0, y0 := g.toScreen(b.MinX, y)
		x1, y1 := g.toScreen(b.MaxX, y)
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, gridColor, false)
	}
	ax0, ay0 := g.toScreen(b.MinX, 0)
	ax1, ay1 := g.toScreen(b.MaxX, 0)
	vector.StrokeLine(screen, ax0, ay0, ax1, ay1, 1, axisColor, false)
	vx0, vy0 := g.toScreen(0, b.MinY)
	vx1, vy1 := g.toScreen(0, b.MaxY)
	vector.StrokeLine(screen, vx0, vy0, vx1, vy1, 1, axisColor, false)
}

// drawPhaseInset places the phase portrait in the top-right corner, shrunk
// to at most half the window width.
func (g *Game) drawPhaseInset(screen *ebiten.Image) {
	iw := g.phase.Bounds().Dx()
	s := math.Min(1, float64(g.width)/2/float64(iw))
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(s, s)
	op.GeoM.Translate(float64(g.width)-float64(iw)*s-4, 4)
	op.ColorScale.ScaleAlpha(0.85)
	screen.DrawImage(g.phase, op)
}
