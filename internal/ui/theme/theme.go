package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette, loosely after traditional Japanese dyes
var (
	Primary   = lipgloss.Color("#D7003A") // 紅 Kurenai
	Secondary = lipgloss.Color("#5B8930") // 萌黄 Moegi
	Accent    = lipgloss.Color("#F8B500") // 山吹 Yamabuki
	Success   = lipgloss.Color("#3EB370") // 緑 Midori
	Error     = lipgloss.Color("#E83929") // 朱 Shu
	Text      = lipgloss.Color("#F3F3F2") // 白練 Shironeri
	TextDim   = lipgloss.Color("#A3A3A2") // 銀鼠 Ginnezumi
	BgDark    = lipgloss.Color("#1C1C1C") // 墨 Sumi
	BgCard    = lipgloss.Color("#2B2B2B") // 檳榔子黒 Binrōjiguro
	Border    = lipgloss.Color("#595455") // 鈍色 Nibiiro
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Stem = lipgloss.NewStyle().
		Foreground(Text).
		Bold(true)

	Label = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)

	CorrectCard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Success).
			Padding(0, 1)

	Badge = lipgloss.NewStyle().
		Foreground(TextDim).
		Width(10)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Dimmed = lipgloss.NewStyle().
		Foreground(TextDim)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Warning = lipgloss.NewStyle().
		Foreground(Accent)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Foreground(TextDim).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)
