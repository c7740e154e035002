package cmd

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/dontpressbutton/dontpress/internal/clickgate"
	"github.com/dontpressbutton/dontpress/internal/colors"
	"github.com/dontpressbutton/dontpress/internal/config"
	"github.com/dontpressbutton/dontpress/internal/content"
	"github.com/dontpressbutton/dontpress/internal/domain"
	"github.com/dontpressbutton/dontpress/internal/errors"
	"github.com/dontpressbutton/dontpress/internal/logging"
	"github.com/dontpressbutton/dontpress/internal/storage"
	"github.com/dontpressbutton/dontpress/internal/tui"
)

// pressCmd represents the press command
var pressCmd = &cobra.Command{
	Use:   "press",
	Short: "Open the button screen",
	Long: `Open the button screen.

USAGE:
    dontpress press

Press the button with space or enter. After enough presses a payment
confirmation appears; answer with y or n. Quit with q or ctrl+c.

The press threshold, warning messages and screen text come from the content
document (see content_path and content_url in the configuration file).`,
	Run: runPress,
}

// runProgramFunc runs the assembled bubbletea program. Can be changed for testing.
var runProgramFunc = func(m *tui.Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// pressHandler reports press command failures. Can be changed for testing.
var pressHandler errors.ErrorHandler = errors.NewCLIHandler(colors.Console{})

func init() {
	rootCmd.AddCommand(pressCmd)
}

// resolveThreshold picks the press threshold: the press_to_confirm_count
// configuration key wins when set, otherwise the content document decides.
func resolveThreshold(doc content.Document) int {
	if n := config.GetInt("press_to_confirm_count", 0); n > 0 {
		return n
	}
	return doc.PressToConfirmCount
}

// openStore builds the history repository. Storage failures degrade to a
// no-op store so the button screen always opens.
func openStore() domain.Repository {
	store, err := storage.NewFromConfig()
	if err != nil {
		colors.Warning(fmt.Sprintf("history storage unavailable: %v", err))
		return storage.NewNoopStorage()
	}
	return store
}

func runPress(cmd *cobra.Command, args []string) {
	doc := content.Load()

	gate, err := clickgate.New(resolveThreshold(doc), doc.Messages)
	if err != nil {
		pressHandler.Error(fmt.Sprintf("invalid content document: %v", err))
		return
	}

	store := openStore()
	defer store.Close()

	flash := time.Duration(config.GetInt("flash_duration_ms", 1500)) * time.Millisecond
	model := tui.NewModel(gate, doc, store, flash)

	logging.Info("button screen started", "session", model.Session(), "threshold", gate.Threshold())
	if err := runProgramFunc(model); err != nil {
		pressHandler.Error(fmt.Sprintf("terminal UI failed: %v", err))
		return
	}

	state := gate.State()
	logging.Info("button screen closed",
		"session", model.Session(),
		"clicks", state.ClickCount,
		"payment_completed", state.PaymentCompleted,
	)
}
