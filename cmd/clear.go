package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dontpressbutton/dontpress/internal/colors"
	"github.com/dontpressbutton/dontpress/internal/domain"
	"github.com/dontpressbutton/dontpress/internal/storage"
)

// clearCmd represents the clear command
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded press events",
	Long: `Delete all recorded press events.

USAGE:
    dontpress clear [OPTIONS]

OPTIONS:
    --force       Clear without asking for confirmation
    -h, --help    Show this help`,
	Run: runClear,
}

var clearForce bool

// clearStoreFunc opens the history store. Can be changed for testing.
var clearStoreFunc = func() (domain.Repository, error) {
	return storage.NewFromConfig()
}

// clearConfirmFunc asks the user to confirm. Can be changed for testing.
var clearConfirmFunc = func() bool {
	fmt.Print("Delete all press history? [y/N] ")
	var answer string
	fmt.Scanln(&answer)
	return answer == "y" || answer == "Y"
}

func init() {
	rootCmd.AddCommand(clearCmd)

	clearCmd.Flags().BoolVar(&clearForce, "force", false, "Clear without asking for confirmation")
}

func runClear(cmd *cobra.Command, args []string) {
	if !clearForce && !clearConfirmFunc() {
		colors.Info("Aborted")
		return
	}

	store, err := clearStoreFunc()
	if err != nil {
		colors.Error(fmt.Sprintf("failed to open history store: %v", err))
		return
	}
	defer store.Close()

	if err := store.Clear(); err != nil {
		colors.Error(fmt.Sprintf("failed to clear history: %v", err))
		return
	}
	colors.Success("Press history cleared")
}
