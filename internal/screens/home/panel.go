package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/iroquiz/internal/catalog"
	"github.com/abhisek/iroquiz/internal/ui/components"
	"github.com/abhisek/iroquiz/internal/ui/theme"
)

const titleFull = ` ██╗██████╗  ██████╗  ██████╗ ██╗   ██╗██╗███████╗
 ██║██╔══██╗██╔═══██╗██╔═══██╗██║   ██║██║╚══███╔╝
 ██║██████╔╝██║   ██║██║   ██║██║   ██║██║  ███╔╝
 ██║██╔══██╗██║   ██║██║▄▄ ██║██║   ██║██║ ███╔╝
 ██║██║  ██║╚██████╔╝╚██████╔╝╚██████╔╝██║███████╗
 ╚═╝╚═╝  ╚═╝ ╚═════╝  ╚══▀▀═╝  ╚═════╝ ╚═╝╚══════╝`

const titleCompact = "色 · I R O Q U I Z"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	art := titleFull
	if compact || cw < lipgloss.Width(titleFull) {
		art = titleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(theme.Title.Render(art))
}

// renderStatsBar shows catalog size, RGB coverage and where it came from.
func renderStatsBar(cat *catalog.Catalog, report *catalog.LoadReport, cw int) string {
	withRGB := 0
	for _, c := range cat.All() {
		if c.HasRGB() {
			withRGB++
		}
	}

	stats := theme.Label.Render(fmt.Sprintf("%d COLORS", cat.Len())) +
		theme.Dimmed.Render(fmt.Sprintf("   %d with RGB", withRGB))
	if src := sourcesLabel(report); src != "" {
		stats += "\n" + theme.Dimmed.Render(src)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Border).
		Width(cw).
		Align(lipgloss.Center).
		Render(stats)
}

// renderPalette draws a strip of swatches from the first records that
// carry RGB.
func renderPalette(cat *catalog.Catalog, cw int) string {
	var chips []string
	for _, c := range cat.All() {
		if len(chips)*3 >= cw-4 {
			break
		}
		if c.RGB != nil {
			chips = append(chips, components.Swatch(c.RGB.Hex(), 2))
		}
	}
	if len(chips) == 0 {
		return ""
	}
	return lipgloss.PlaceHorizontal(cw, lipgloss.Center, strings.Join(chips, " "))
}

func renderMenu(menu components.Menu, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw).
		Padding(1, 2).
		Render(menu.View())
}

func renderNote(text string, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(theme.Hint.Render(text))
}

func renderError(text string, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(theme.Incorrect.Render(text))
}

// renderFrame wraps content in a double-border frame centered in the area.
func renderFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(max(width-2, 0)).
		Height(max(height-2, 0)).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
