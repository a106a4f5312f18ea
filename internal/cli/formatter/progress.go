package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
	markBlock   = "│"
)

func clampFrac(f float64) float64 {
	if !(f > 0) {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// RenderProgress renders a progress bar like [████░░░░] 45%.
// The bar is colored based on fraction: green >66%, yellow 33-66%, red <33%.
func RenderProgress(frac float64, width int) string {
	frac = clampFrac(frac)
	if width < 2 {
		width = 2
	}
	filled := int(frac * float64(width))
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	if frac < 0.33 {
		style = StyleRed
	} else if frac < 0.66 {
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), frac*100)
}

// RenderGauge renders a bar for value with tick marks at each threshold,
// e.g. the negotiation and resolution lines on the stability gauge.
func RenderGauge(value float64, width int, marks ...float64) string {
	value = clampFrac(value)
	if width < 2 {
		width = 2
	}
	cells := make([]string, width)
	filled := int(value * float64(width))
	for i := range cells {
		if i < filled {
			cells[i] = StyleYellow.Render(filledBlock)
		} else {
			cells[i] = StyleDim.Render(emptyBlock)
		}
	}
	for _, m := range marks {
		i := int(clampFrac(m) * float64(width))
		if i >= width {
			i = width - 1
		}
		cells[i] = StyleHeader.Render(markBlock)
	}
	return fmt.Sprintf("[%s] %.3f", strings.Join(cells, ""), value)
}
