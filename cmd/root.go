package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dontpressbutton/dontpress/internal/colors"
	"github.com/dontpressbutton/dontpress/internal/config"
	"github.com/dontpressbutton/dontpress/internal/logging"
)

// rootCmd represents the base command when called without any subcommands.
// Running it with no subcommand launches the button screen.
var rootCmd = &cobra.Command{
	Use:   "dontpress",
	Short: "A button you are told not to press.",
	Long:  `A button you are told not to press.`,
	Run:   runPress,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Set version for use in help output
	rootCmd.Version = Version

	// Hide the completion command
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		printHelpText(cmd)
	})

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		setup()
	}
}

// setup loads configuration and wires logging before any command runs.
func setup() {
	config.Load()

	if err := logging.InitGlobal(); err != nil {
		colors.Warning(fmt.Sprintf("failed to initialize logging: %v", err))
	}
	colors.SetLogger(logging.GetGlobal())
	colors.SetDebug(config.GetBool("debug", false))
	colors.SetQuiet(config.GetBool("quiet", false))
}

// helpOutputWriter is the writer used by printHelpText. Can be changed for testing.
var helpOutputWriter io.Writer = os.Stdout

func printHelpText(cmd *cobra.Command) {
	commandOrder := []string{
		"press",
		"status",
		"history",
		"clear",
		"help",
		"version",
	}

	var cmdLines []string
	for _, name := range commandOrder {
		var found *cobra.Command
		for _, c := range cmd.Root().Commands() {
			if c.Name() == name {
				found = c
				break
			}
		}
		if found == nil {
			continue
		}
		cmdLines = append(cmdLines, fmt.Sprintf("    %-16s %s", found.Use, found.Short))
	}

	helpText := fmt.Sprintf(`dontpress v%s

A button you are told not to press.

USAGE:
    dontpress [COMMAND] [OPTIONS]

Running dontpress without a command opens the button screen.

COMMANDS:
%s

OPTIONS:
    -h, --help      Show help message
`, Version, strings.Join(cmdLines, "\n"))
	w := helpOutputWriter
	if w == nil {
		w = os.Stdout
	}
	fmt.Fprint(w, helpText)
}
