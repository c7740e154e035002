package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/dontpressbutton/dontpress/internal/colors"
	"github.com/dontpressbutton/dontpress/internal/domain"
	"github.com/dontpressbutton/dontpress/internal/storage"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show press history summary",
	Long: `Show press history summary.

USAGE:
    dontpress status [OPTIONS]

OPTIONS:
    --format=<format>    Output format: summary, sessions, json, count (default: summary)
    -h, --help           Show this help

EXAMPLES:
    dontpress status                    # Show summary
    dontpress status --format=sessions  # Show presses per session
    dontpress status --format=count     # Show total press count only`,
	Run: runStatus,
}

var statusFormat string

// statusOutputWriter is the writer used by PrintStatus. Can be changed for testing.
var statusOutputWriter io.Writer = os.Stdout

// statusStoreFunc opens the history store. Can be changed for testing.
var statusStoreFunc = func() (domain.Repository, error) {
	return storage.NewFromConfig()
}

// statusCounts aggregates the history events into the numbers the status
// formats print.
type statusCounts struct {
	Presses      int            `json:"presses"`
	ConfirmShown int            `json:"confirmShown"`
	Accepted     int            `json:"accepted"`
	Declined     int            `json:"declined"`
	Sessions     map[string]int `json:"sessions"`
}

func countEvents(events []domain.Event) statusCounts {
	counts := statusCounts{Sessions: make(map[string]int)}
	for _, e := range events {
		switch e.Kind {
		case domain.KindClick:
			counts.Presses++
			counts.Sessions[e.Session]++
		case domain.KindConfirmShown:
			counts.ConfirmShown++
		case domain.KindAccepted:
			counts.Accepted++
		case domain.KindDeclined:
			counts.Declined++
		}
	}
	return counts
}

// PrintStatus prints the history summary according to the provided format.
func PrintStatus(format string) error {
	store, err := statusStoreFunc()
	if err != nil {
		return fmt.Errorf("failed to open history store: %w", err)
	}
	defer store.Close()

	events, err := store.ListEvents(domain.Filter{})
	if err != nil {
		return fmt.Errorf("failed to list history events: %w", err)
	}

	w := statusOutputWriter
	if w == nil {
		w = os.Stdout
	}
	return printStatus(format, countEvents(events), w)
}

func printStatus(format string, counts statusCounts, w io.Writer) error {
	switch format {
	case "summary":
		formatSummary(counts, w)
	case "sessions":
		formatSessions(counts, w)
	case "json":
		return formatJSON(counts, w)
	case "count":
		fmt.Fprintf(w, "%d\n", counts.Presses)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	return nil
}

func formatSummary(counts statusCounts, w io.Writer) {
	if counts.Presses == 0 {
		fmt.Fprintf(w, "%sNo presses recorded%s\n", colors.Blue, colors.Reset)
		return
	}
	fmt.Fprintf(w, "%sTotal presses: %d%s\n", colors.Blue, counts.Presses, colors.Reset)
	fmt.Fprintf(w, "%sSessions: %d%s\n", colors.Blue, len(counts.Sessions), colors.Reset)
	fmt.Fprintf(w, "%sConfirmations shown: %d%s\n", colors.Blue, counts.ConfirmShown, colors.Reset)
	fmt.Fprintf(w, "%s  accepted: %d, declined: %d%s\n", colors.Blue, counts.Accepted, counts.Declined, colors.Reset)
}

func formatSessions(counts statusCounts, w io.Writer) {
	sessions := make([]string, 0, len(counts.Sessions))
	for session := range counts.Sessions {
		sessions = append(sessions, session)
	}
	sort.Strings(sessions)
	for _, session := range sessions {
		fmt.Fprintf(w, "%s:%d\n", session, counts.Sessions[session])
	}
}

func formatJSON(counts statusCounts, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(counts)
}

func init() {
	rootCmd.AddCommand(statusCmd)

	statusCmd.Flags().StringVar(&statusFormat, "format", "summary", "Output format: summary, sessions, json, count")
}

func runStatus(cmd *cobra.Command, args []string) {
	if err := PrintStatus(statusFormat); err != nil {
		colors.Error(err.Error())
	}
}
