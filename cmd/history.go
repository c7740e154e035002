package cmd

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dontpressbutton/dontpress/internal/colors"
	"github.com/dontpressbutton/dontpress/internal/domain"
	"github.com/dontpressbutton/dontpress/internal/storage"
)

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded press events",
	Long: `List recorded press events.

USAGE:
    dontpress history [OPTIONS]

OPTIONS:
    --session <id>    Only events from the given session
    --kind <kind>     Only events of the given kind: click, confirm-shown, accepted, declined
    --limit <n>       Show at most the n most recent events
    -h, --help        Show this help`,
	Run: runHistory,
}

var (
	historySession string
	historyKind    string
	historyLimit   int
)

// historyOutputWriter is the writer used by the history command. Can be changed for testing.
var historyOutputWriter io.Writer = os.Stdout

// historyStoreFunc opens the history store. Can be changed for testing.
var historyStoreFunc = func() (domain.Repository, error) {
	return storage.NewFromConfig()
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().StringVar(&historySession, "session", "", "Only events from the given session")
	historyCmd.Flags().StringVar(&historyKind, "kind", "", "Only events of the given kind")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 0, "Show at most the n most recent events")
}

func runHistory(cmd *cobra.Command, args []string) {
	if historyKind != "" && !domain.ValidKind(historyKind) {
		colors.Error(fmt.Sprintf("unknown event kind: %s", historyKind))
		return
	}

	store, err := historyStoreFunc()
	if err != nil {
		colors.Error(fmt.Sprintf("failed to open history store: %v", err))
		return
	}
	defer store.Close()

	events, err := store.ListEvents(domain.Filter{
		Session: historySession,
		Kind:    historyKind,
		Limit:   historyLimit,
	})
	if err != nil {
		colors.Error(fmt.Sprintf("failed to list history events: %v", err))
		return
	}

	w := historyOutputWriter
	if w == nil {
		w = os.Stdout
	}
	printHistory(events, w)
}

func printHistory(events []domain.Event, w io.Writer) {
	if len(events) == 0 {
		fmt.Fprintln(w, "No events recorded")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTIME\tSESSION\tKIND\tCOUNT\tMESSAGE")
	for _, e := range events {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\n",
			e.ID, e.Timestamp, shortSession(e.Session), e.Kind, e.ClickCount, e.Message)
	}
	tw.Flush()
}

// shortSession truncates a session UUID for display.
func shortSession(session string) string {
	if len(session) > 8 {
		return session[:8]
	}
	return session
}
