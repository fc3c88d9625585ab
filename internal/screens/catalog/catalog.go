package catalog

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/iroquiz/internal/catalog"
	"github.com/abhisek/iroquiz/internal/router"
	"github.com/abhisek/iroquiz/internal/screen"
	"github.com/abhisek/iroquiz/internal/ui/components"
	"github.com/abhisek/iroquiz/internal/ui/layout"
	"github.com/abhisek/iroquiz/internal/ui/theme"
)

type rowKind int

const (
	rowSourceHeader rowKind = iota
	rowColor
)

type row struct {
	kind   rowKind
	source string
	color  *catalog.Color
}

// BrowserScreen lists the catalog grouped by source, with a filter.
type BrowserScreen struct {
	colors       []catalog.Color
	rows         []row
	cursor       int
	scrollOffset int
	filter       components.FilterInput
}

var _ screen.Screen = (*BrowserScreen)(nil)
var _ screen.KeyHintProvider = (*BrowserScreen)(nil)
var _ screen.BackHandler = (*BrowserScreen)(nil)

// New creates a BrowserScreen over cat.
func New(cat *catalog.Catalog) *BrowserScreen {
	b := &BrowserScreen{
		colors: cat.All(),
		filter: components.NewFilterInput("name, family, Munsell, PCCS…", 40),
	}
	b.rebuild()
	return b
}

func (b *BrowserScreen) Init() tea.Cmd {
	return nil
}

func (b *BrowserScreen) Title() string {
	return "Color Catalog"
}

func (b *BrowserScreen) KeyHints() []layout.KeyHint {
	if b.filter.Focused() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Apply"},
			{Key: "Esc", Description: "Clear"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Tab", Description: "Next source"},
		{Key: "/", Description: "Filter"},
		{Key: "Enter", Description: "Details"},
		{Key: "Esc", Description: "Back"},
	}
}

// HandlesBack keeps Esc inside the screen while the filter is active.
func (b *BrowserScreen) HandlesBack() bool {
	return b.filter.Focused() || b.filter.Value() != ""
}

func (b *BrowserScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if b.filter.Focused() {
			var cmd tea.Cmd
			b.filter, cmd = b.filter.Update(msg)
			return b, cmd
		}
		return b, nil
	}

	if b.filter.Focused() {
		switch kmsg.String() {
		case "enter":
			b.filter.Blur()
			return b, nil
		case "esc":
			b.filter.Reset()
			b.filter.Blur()
			b.rebuild()
			return b, nil
		}
		var cmd tea.Cmd
		b.filter, cmd = b.filter.Update(msg)
		b.rebuild()
		return b, cmd
	}

	switch kmsg.String() {
	case "up", "k":
		b.moveCursor(-1)
	case "down", "j":
		b.moveCursor(1)
	case "tab":
		b.nextSource()
	case "/":
		return b, b.filter.Focus()
	case "esc":
		if b.filter.Value() != "" {
			b.filter.Reset()
			b.rebuild()
		}
	case "enter":
		return b, b.selectColor()
	case "q":
		return b, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return b, nil
}

// rebuild recomputes the visible rows from the filter and puts the cursor
// on the first color row.
func (b *BrowserScreen) rebuild() {
	b.rows = b.rows[:0]
	lastSource := ""
	for i := range b.colors {
		c := &b.colors[i]
		if !b.filter.Matches(c.Name, c.Family, c.Munsell, c.PCCS) {
			continue
		}
		if c.Source != lastSource || len(b.rows) == 0 {
			b.rows = append(b.rows, row{kind: rowSourceHeader, source: c.Source})
			lastSource = c.Source
		}
		b.rows = append(b.rows, row{kind: rowColor, source: c.Source, color: c})
	}

	b.cursor = 0
	b.scrollOffset = 0
	for i, r := range b.rows {
		if r.kind == rowColor {
			b.cursor = i
			break
		}
	}
}

// Matched returns the number of colors passing the filter.
func (b *BrowserScreen) Matched() int {
	n := 0
	for _, r := range b.rows {
		if r.kind == rowColor {
			n++
		}
	}
	return n
}

// moveCursor moves the cursor by delta, skipping source headers.
func (b *BrowserScreen) moveCursor(delta int) {
	next := b.cursor + delta
	for next >= 0 && next < len(b.rows) {
		if b.rows[next].kind == rowColor {
			b.cursor = next
			return
		}
		next += delta
	}
}

// nextSource jumps to the first color of the next source group.
func (b *BrowserScreen) nextSource() {
	if len(b.rows) == 0 {
		return
	}
	current := b.rows[b.cursor].source
	for i := b.cursor + 1; i < len(b.rows); i++ {
		if b.rows[i].kind == rowColor && b.rows[i].source != current {
			b.cursor = i
			return
		}
	}
}

func (b *BrowserScreen) selectColor() tea.Cmd {
	if len(b.rows) == 0 {
		return nil
	}
	r := b.rows[b.cursor]
	if r.kind != rowColor || r.color == nil {
		return nil
	}
	detail := newDetail(*r.color)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: detail}
	}
}

// adjustScroll ensures the cursor is visible within the viewport.
func (b *BrowserScreen) adjustScroll(height int) {
	if height <= 0 {
		return
	}
	headerRow := b.cursor
	for headerRow > 0 && b.rows[headerRow-1].kind == rowSourceHeader {
		headerRow--
	}
	if headerRow < b.scrollOffset {
		b.scrollOffset = headerRow
	}
	if b.cursor >= b.scrollOffset+height {
		b.scrollOffset = b.cursor - height + 1
	}
}

func (b *BrowserScreen) View(width, height int) string {
	var lines []string
	lines = append(lines, "  "+b.filter.View()+theme.Dimmed.Render(
		fmt.Sprintf("   %d/%d", b.Matched(), len(b.colors))))
	lines = append(lines, "")

	listHeight := height - len(lines)
	if len(b.rows) == 0 {
		lines = append(lines, theme.Hint.Render("  no colors match"))
		return strings.Join(lines, "\n")
	}

	b.adjustScroll(listHeight)
	visible := 0
	for i, r := range b.rows {
		if i < b.scrollOffset {
			continue
		}
		if visible >= listHeight {
			break
		}
		switch r.kind {
		case rowSourceHeader:
			lines = append(lines, renderSourceHeader(r.source, width))
		case rowColor:
			lines = append(lines, renderColorRow(r.color, i == b.cursor, width))
		}
		visible++
	}
	return strings.Join(lines, "\n")
}

func renderSourceHeader(source string, width int) string {
	if source == "" {
		source = "catalog"
	}
	return lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Width(width).
		PaddingLeft(2).
		Render(strings.ToUpper(source))
}

func renderColorRow(c *catalog.Color, selected bool, width int) string {
	hex := ""
	if c.RGB != nil {
		hex = c.RGB.Hex()
	}

	nameWidth := max(width-48, 12)
	name := truncate(c.Name, nameWidth)

	nameStyle := theme.Unselected
	metaStyle := theme.Dimmed
	cursor := "  "
	if selected {
		nameStyle = theme.Selected
		metaStyle = lipgloss.NewStyle().Foreground(theme.Primary)
		cursor = "▸ "
	}

	pad := strings.Repeat(" ", max(nameWidth-lipgloss.Width(name), 0))
	return fmt.Sprintf("  %s%s %s%s  %s",
		cursor,
		components.Swatch(hex, 2),
		nameStyle.Render(name),
		pad,
		metaStyle.Render(fmt.Sprintf("%-14s %-12s %s", truncate(c.Munsell, 14), truncate(c.PCCS, 12), hex)),
	)
}

// truncate cuts s to at most w display cells.
func truncate(s string, w int) string {
	if lipgloss.Width(s) <= w {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > w {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
