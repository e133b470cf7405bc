package components

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Meter renders a bounded value, such as the sound volume, as a bar.
type Meter struct {
	bar progress.Model
	max float64
}

// NewMeter creates a meter for values in [0, max].
func NewMeter(max float64, width int) Meter {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = width
	return Meter{bar: bar, max: max}
}

// Ratio returns value as a fraction of the meter range, clamped to [0, 1].
func (m Meter) Ratio(value float64) float64 {
	if m.max <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1.0, value/m.max))
}

// View renders the bar followed by label.
func (m Meter) View(value float64, label string) string {
	text := lipgloss.NewStyle().Bold(true).Render(label)
	return lipgloss.JoinHorizontal(lipgloss.Left, m.bar.ViewAs(m.Ratio(value)), " ", text)
}

// Percent formats a ratio as a whole percentage.
func Percent(ratio float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(ratio*100)))
}
