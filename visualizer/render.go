package visualizer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	barStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)
)

// Render produces a styled multi-line summary of the clusterer's
// current state: its kind, iteration count, convergence status, and a
// histogram of samples per label.
func (c *Clusterer) Render() string {
	var body strings.Builder

	body.WriteString(titleStyle.Render(c.kind.String()))
	body.WriteString("\n")

	status := "running"
	if c.done {
		status = "converged"
	}
	body.WriteString(labelStyle.Render(fmt.Sprintf("iteration %d · %s", c.iters, status)))
	body.WriteString("\n\n")

	body.WriteString(histogram(c.Labels()))

	return boxStyle.Render(body.String())
}

// histogram renders a one-line-per-label bar chart of how many samples
// carry each label, sorted by label value.
func histogram(labels []int) string {
	if len(labels) == 0 {
		return labelStyle.Render("(no labels yet)")
	}

	counts := map[int]int{}
	for _, label := range labels {
		counts[label]++
	}

	keys := make([]int, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	var lines []string
	for _, label := range keys {
		bar := strings.Repeat("█", counts[label])
		lines = append(lines, fmt.Sprintf("%s %s %s",
			labelStyle.Render(fmt.Sprintf("%3d", label)),
			barStyle.Render(bar),
			labelStyle.Render(fmt.Sprintf("(%d)", counts[label])),
		))
	}
	return strings.Join(lines, "\n")
}
