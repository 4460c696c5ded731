// Package report renders a computed trajectory without a window: a styled
// terminal summary and an in-memory phase portrait.
package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"pendulumviz/pendulum"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(16)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
)

// chartWidth is the number of columns of the theta chart.
const chartWidth = 60

// Summary describes the run: configuration, solver effort, conservation and
// an ASCII chart of theta over time.
func Summary(conf pendulum.Config, traj *pendulum.Trajectory) string {
	var s strings.Builder
	s.WriteString(headerStyle.Render("GRAVITY PENDULUM") + "\n")

	row := func(label, format string, args ...any) {
		s.WriteString(labelStyle.Render(label) + valueStyle.Render(fmt.Sprintf(format, args...)) + "\n")
	}
	row("Length", "%g m", conf.Length)
	row("Gravity", "%g m/s²", conf.Gravity)
	row("Release", "θ=%.6f rad  ω=%.6f rad/s", conf.Theta0, conf.Omega0)
	row("Samples", "%d over %g s", traj.Len(), conf.Duration)
	row("Steps", "%d accepted, %d rejected", traj.Stats.Accepted, traj.Stats.Rejected)
	row("Evaluations", "%d", traj.Stats.Evaluations)
	row("Energy drift", "%.3e", traj.EnergyDrift())
	lo, hi := thetaRange(traj.States)
	if period, ok := traj.Period(); ok {
		// amplitude as swept, which differs from Theta0 when released with Omega0 != 0
		amplitude := math.Max(math.Abs(lo), math.Abs(hi))
		row("Period", "%.4f s (small-angle %.4f s)", period, traj.Params.SmallAnglePeriod(amplitude))
	} else {
		row("Period", "n/a")
	}
	row("Theta range", "[%.4f, %.4f] rad", lo, hi)
	row("Playback", "%d frames every %v", traj.Len(), conf.FrameInterval)

	if traj.Len() > 1 {
		thetas := make([]float64, traj.Len())
		for i, st := range traj.States {
			thetas[i] = st.Theta
		}
		chart := asciigraph.Plot(thetas,
			asciigraph.Height(10),
			asciigraph.Width(chartWidth),
			asciigraph.Caption(fmt.Sprintf("theta (rad) over %g s", conf.Duration)))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}
	return boxStyle.Render(s.String()) + "\n"
}

func thetaRange(states []pendulum.State) (lo, hi float64) {
	if len(states) == 0 {
		return 0, 0
	}
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, s := range states {
		lo = math.Min(lo, s.Theta)
		hi = math.Max(hi, s.Theta)
	}
	return lo, hi
}
