package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-qa-board/internal/adapter"
	"github.com/MKhiriev/go-qa-board/internal/logger"
)

// App runs a single qa-client command against the API server.
type App struct {
	root    *cobra.Command
	adapter adapter.ServerAdapter
	args    []string

	logger *logger.Logger
}

// NewApp builds the command tree. args are the positional arguments left
// after the global flags were parsed by the config.
func NewApp(serverAdapter adapter.ServerAdapter, args []string, out io.Writer, logger *logger.Logger) *App {
	a := &App{
		adapter: serverAdapter,
		args:    args,
		logger:  logger,
	}

	a.root = &cobra.Command{
		Use:           "qa-client [flags] [command]",
		Short:         "Command-line client of the question/answer board",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	a.root.SetOut(out)
	a.root.AddCommand(a.questionsCmd(), a.answersCmd(), a.versionCmd())

	return a
}

// Run executes the command named by the arguments. With no arguments the
// help text is printed.
func (a *App) Run(ctx context.Context) error {
	args := a.args
	if args == nil {
		// cobra falls back to os.Args on a nil slice
		args = []string{}
	}
	a.root.SetArgs(args)

	return a.root.ExecuteContext(ctx)
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the server version",
		Args:  checkArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			info, err := a.adapter.GetServerVersion(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, info)
		},
	}
}

// groupCmd is a parent command that only dispatches to its children.
func groupCmd(use, short string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return fmt.Errorf("%w: %s needs a subcommand", ErrInvalidArguments, cmd.CommandPath())
		},
	}
}

// checkArgs tags positional argument failures with ErrInvalidArguments.
func checkArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidArguments, err)
		}
		return nil
	}
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, arg)
	}
	return id, nil
}

// joinText glues the words, so quoting the text is optional.
// Validation of the text itself is left to the server.
func joinText(args []string) string {
	return strings.Join(args, " ")
}
