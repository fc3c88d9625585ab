package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/iroquiz/internal/catalog"
	"github.com/abhisek/iroquiz/internal/router"
	"github.com/abhisek/iroquiz/internal/screen"
	catalogscreen "github.com/abhisek/iroquiz/internal/screens/catalog"
	quizscreen "github.com/abhisek/iroquiz/internal/screens/quiz"
	"github.com/abhisek/iroquiz/internal/session"
	"github.com/abhisek/iroquiz/internal/ui/components"
	"github.com/abhisek/iroquiz/internal/ui/layout"
)

// LoadFunc loads the catalog. It runs inside a tea.Cmd.
type LoadFunc func(ctx context.Context) (*catalog.Catalog, *catalog.LoadReport, error)

// Deps are the home screen's collaborators.
type Deps struct {
	Load LoadFunc

	// SessionOptions is called for every new quiz so each gets its own
	// RNG and logger fields.
	SessionOptions func() session.Options

	Logger *zap.Logger
}

// catalogLoadedMsg carries the result of the startup load.
type catalogLoadedMsg struct {
	Catalog *catalog.Catalog
	Report  *catalog.LoadReport
	Err     error
}

// HomeScreen loads the catalog and offers the main menu.
type HomeScreen struct {
	deps    Deps
	menu    components.Menu
	catalog *catalog.Catalog
	report  *catalog.LoadReport
	loading bool
	fatal   string
	errMsg  string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a HomeScreen. Loading starts on Init.
func New(deps Deps) *HomeScreen {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.SessionOptions == nil {
		deps.SessionOptions = func() session.Options { return session.Options{} }
	}

	h := &HomeScreen{deps: deps, loading: true}
	h.menu = components.NewMenu([]components.MenuItem{
		{Label: "START QUIZ", Hint: "Name the color from its description", Action: h.startQuiz},
		{Label: "BROWSE COLORS", Hint: "Search the loaded catalog", Action: h.browse},
		{Label: "QUIT", Action: func() tea.Cmd { return tea.Quit }},
	})
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	load := h.deps.Load
	return func() tea.Msg {
		cat, report, err := load(context.Background())
		return catalogLoadedMsg{Catalog: cat, Report: report, Err: err}
	}
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	if h.fatal != "" {
		return []layout.KeyHint{{Key: "any key", Description: "Quit"}}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case catalogLoadedMsg:
		h.loading = false
		if msg.Err != nil {
			h.fatal = "data load error: " + msg.Err.Error()
			h.deps.Logger.Error("catalog load failed", zap.Error(msg.Err))
			return h, nil
		}
		h.catalog = msg.Catalog
		h.report = msg.Report
		return h, nil

	case tea.KeyMsg:
		if h.fatal != "" {
			return h, tea.Quit
		}
		if h.loading {
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) startQuiz() tea.Cmd {
	sess, err := session.New(h.catalog, h.deps.SessionOptions())
	if err == nil {
		err = sess.Start()
	}
	if err != nil {
		h.errMsg = err.Error()
		return nil
	}
	h.errMsg = ""
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: quizscreen.New(sess)}
	}
}

func (h *HomeScreen) browse() tea.Cmd {
	browser := catalogscreen.New(h.catalog)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: browser}
	}
}

func (h *HomeScreen) View(width, height int) string {
	compact := layout.IsCompactWidth(width) || layout.IsCompactHeight(height+layout.HeaderHeight+layout.FooterHeight)
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))

	switch {
	case h.fatal != "":
		sections = append(sections, renderError(h.fatal, cw))
	case h.loading:
		sections = append(sections, renderNote("Loading colors…", cw))
	default:
		sections = append(sections, renderStatsBar(h.catalog, h.report, cw))
		if !compact {
			sections = append(sections, renderPalette(h.catalog, cw))
		}
		sections = append(sections, renderMenu(h.menu, cw))
		if h.errMsg != "" {
			sections = append(sections, renderError(h.errMsg, cw))
		}
	}

	return renderFrame(strings.Join(sections, "\n\n"), width, height)
}

func sourcesLabel(report *catalog.LoadReport) string {
	if report == nil || len(report.Sources) == 0 {
		return ""
	}
	if len(report.Sources) == 1 {
		return report.Sources[0]
	}
	return fmt.Sprintf("%s +%d more", report.Sources[0], len(report.Sources)-1)
}
