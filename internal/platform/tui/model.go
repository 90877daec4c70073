package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rhythm-dodger/internal/config"
	"github.com/vovakirdan/rhythm-dodger/internal/core"
	"github.com/vovakirdan/rhythm-dodger/internal/registry"
	"github.com/vovakirdan/rhythm-dodger/internal/storage"
)

// GameModel runs one stage: it feeds key presses and ticks into the game,
// persists finished runs and hands control back when the player leaves.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	keys       *KeyState
	inputFrame core.InputFrame // one-shot actions for the next tick
	gameState  core.GameState
	clock      func() time.Time
	shotDir    string
	quitting   bool
	backToMenu bool
}

// NewGameModel starts a fresh run of game. The stored best score is loaded
// first; a failing store is logged and treated as no best score.
func NewGameModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig, hold time.Duration) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = discardLogger()
	}

	game.Reset(cfg)
	if store != nil {
		best, err := store.BestScore(game.ID())
		if err != nil {
			logger.Warn("could not load best score", "stage", game.ID(), "error", err)
		}
		game.SetBest(best)
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		keys:       NewKeyState(hold),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		clock:      time.Now,
		shotDir:    config.DataPath("screenshots"),
	}
}

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}

// Init starts the tick loop for the current run.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate, m.game.Run())
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The board scales to the window, so the run carries on
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.game.ChangeStage()
		return m, tea.Quit
	}

	switch {
	case action.IsMovement():
		// A fresh direction press on the game over screen starts a new run
		if m.keys.Press(action, m.clock()) && m.gameState.GameOver {
			m.inputFrame.Set(core.ActionRestart)
		}
	case action == core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			m.game.ChangeStage()
			m.backToMenu = true
		}
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleTick advances the game once, unless the tick belongs to a run that
// is no longer current.
func (m GameModel) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting || msg.Run != m.game.Run() {
		return m, nil
	}

	m.keys.Apply(&m.inputFrame, m.clock())
	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()

	if m.gameState.GameOver && !result.State.GameOver {
		m.keys.Release()
		m.logger.Debug("run restarted", "stage", m.game.ID(), "run", m.game.Run())
	}
	m.gameState = result.State

	for _, e := range result.Events {
		if e.Kind == core.EventGameOver {
			m.finishRun(e)
		}
	}

	return m, tickCmd(m.config.TickRate, m.game.Run())
}

// finishRun persists a finished run. Storage errors are logged only.
func (m GameModel) finishRun(e core.Event) {
	m.logger.Info("run finished", "stage", m.game.ID(), "score", e.Score, "new_best", e.NewBest)

	if m.store == nil || e.Score <= 0 {
		return
	}
	entry, improved, err := m.store.RecordRun(m.game.ID(), e.Score)
	if err != nil {
		m.logger.Error("could not save run", "stage", m.game.ID(), "score", e.Score, "error", err)
		return
	}
	if improved {
		m.logger.Info("new best score", "stage", m.game.ID(), "score", e.Score, "run_id", entry.RunID)
	}
}

// saveScreenshot writes the current frame as plain text.
func (m GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "dir", m.shotDir, "error", err)
		return
	}

	timestamp := m.clock().Format("20060102_150405")
	path := filepath.Join(m.shotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the game state as of the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to stage select.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}
