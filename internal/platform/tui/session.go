package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rhythm-dodger/internal/core"
	"github.com/vovakirdan/rhythm-dodger/internal/registry"
	"github.com/vovakirdan/rhythm-dodger/internal/storage"
)

// SessionOptions configures one player session.
type SessionOptions struct {
	Store  *storage.Store
	Logger *log.Logger
	Config core.RuntimeConfig
	Hold   time.Duration // how long a direction stays held after a press
	Stage  string        // start straight in this stage instead of stage select
	User   string
}

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenScores
)

// SessionModel manages the full flow: stage select -> game -> stage select,
// with the scoreboard one key away. Local play and SSH sessions both use it.
type SessionModel struct {
	opts       SessionOptions
	logger     *log.Logger
	config     core.RuntimeConfig
	screen     sessionScreen
	menu       MenuModel
	scoreboard ScoreboardModel
	gameModel  *GameModel
	quitting   bool
}

// NewSessionModel creates a session. An unknown Stage falls back to the
// stage select screen.
func NewSessionModel(opts SessionOptions) SessionModel {
	logger := opts.Logger
	if logger == nil {
		logger = discardLogger()
	}
	if opts.User != "" {
		logger = logger.With("user", opts.User)
	}

	m := SessionModel{
		opts:   opts,
		logger: logger,
		config: opts.Config,
	}
	m.menu = NewMenuModel(opts.Store, logger, m.config.ScreenW, m.config.ScreenH)

	if opts.Stage != "" {
		if !m.startGame(opts.Stage) {
			logger.Warn("unknown stage, showing stage select", "stage", opts.Stage)
		}
	}
	return m
}

// startGame switches to a fresh game of the given stage.
func (m *SessionModel) startGame(stageID string) bool {
	game, err := registry.Create(stageID)
	if err != nil {
		return false
	}

	cfg := m.config
	if m.opts.Config.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	gm := NewGameModel(game, m.opts.Store, m.logger, cfg, m.opts.Hold)
	m.gameModel = &gm
	m.screen = screenGame
	m.logger.Info("stage started", "stage", stageID)
	return true
}

func (m *SessionModel) showMenu() tea.Cmd {
	m.gameModel = nil
	m.screen = screenMenu
	m.menu = NewMenuModel(m.opts.Store, m.logger, m.config.ScreenW, m.config.ScreenH)
	return m.menu.Init()
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	if m.screen == screenGame {
		return m.gameModel.Init()
	}
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates on the stage select screen.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.scoreboard = NewScoreboardModel(m.opts.Store, m.logger, m.config.ScreenW, m.config.ScreenH)
		m.screen = screenScores
		return m, m.scoreboard.Init()

	case m.menu.Selected() != nil:
		if !m.startGame(m.menu.Selected().StageID) {
			cmd = m.showMenu()
			return m, cmd
		}
		return m, m.gameModel.Init()
	}

	return m, cmd
}

// updateGame handles updates while a stage is running.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.gameModel.BackToMenu() {
		cmd = m.showMenu()
		return m, cmd
	}

	return m, cmd
}

// updateScores handles updates on the scoreboard.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newBoard, cmd := m.scoreboard.Update(msg)
	if board, ok := newBoard.(ScoreboardModel); ok {
		m.scoreboard = board
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scoreboard.IsGoingBack() {
		cmd = m.showMenu()
		return m, cmd
	}

	return m, cmd
}

// View renders the current screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.gameModel.View()
	case screenScores:
		return m.scoreboard.View()
	default:
		return m.menu.View()
	}
}

// RunSession runs a session in the local terminal until the player quits.
func RunSession(opts SessionOptions) error {
	p := tea.NewProgram(
		NewSessionModel(opts),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
