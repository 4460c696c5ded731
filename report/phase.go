package report

import (
	"errors"
	"image"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"pendulumviz/pendulum"
)

// phaseDPI maps vg lengths onto screen pixels one to one at 96 DPI.
const phaseDPI = 96

// PhasePortrait plots omega against theta into a width×height pixel image.
func PhasePortrait(traj *pendulum.Trajectory, width, height int) (image.Image, error) {
	if traj == nil || traj.Len() == 0 {
		return nil, errors.New("report: empty trajectory")
	}
	if width <= 0 || height <= 0 {
		return nil, errors.New("report: phase portrait needs a positive size")
	}

	p := plot.New()
	p.Title.Text = "Phase portrait"
	p.X.Label.Text = "θ (rad)"
	p.Y.Label.Text = "ω (rad/s)"
	p.BackgroundColor = color.RGBA{16, 16, 24, 255}
	fg := color.RGBA{180, 180, 180, 255}
	for _, ax := range []*plot.Axis{&p.X, &p.Y} {
		ax.Label.TextStyle.Color = fg
		ax.Tick.Label.Color = fg
		ax.Tick.LineStyle.Color = fg
		ax.LineStyle.Color = fg
	}
	p.Title.TextStyle.Color = color.RGBA{220, 220, 220, 255}

	pts := make(plotter.XYs, traj.Len())
	for i, s := range traj.States {
		pts[i].X = s.Theta
		pts[i].Y = s.Omega
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Color = color.RGBA{0, 200, 120, 255}

	grid := plotter.NewGrid()
	grid.Vertical.Color = color.RGBA{60, 60, 70, 255}
	grid.Horizontal.Color = color.RGBA{60, 60, 70, 255}
	p.Add(grid, line)

	c := vgimg.NewWith(
		vgimg.UseWH(vg.Length(width)*vg.Inch/phaseDPI, vg.Length(height)*vg.Inch/phaseDPI),
		vgimg.UseDPI(phaseDPI),
	)
	p.Draw(draw.New(c))
	return c.Image(), nil
}
