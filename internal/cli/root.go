package cli

import (
	"context"
	"errors"
	"fmt"
	"raffle-tracker/internal/app"
	apperrors "raffle-tracker/pkg/app_errors"

	"github.com/spf13/cobra"
)

// Opener 建立 Application；測試時換成記憶體帳本
type Opener func(ctx context.Context) (*app.Application, error)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Format string
	Open   Opener
}

var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command of the raffle admin CLI.
func NewRootCommand(open Opener) *cobra.Command {
	opts := &RootOptions{Open: open}

	cmd := &cobra.Command{
		Use:   "raffle",
		Short: "Raffle ledger admin tool",
		Long:  "Inspect the raffle ledger, register manual sales, export reports and run the draw.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return WrapExitError(ExitCommandError, "invalid flag",
					fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewSummaryCommand(opts))
	cmd.AddCommand(NewSellersCommand(opts))
	cmd.AddCommand(NewDuplicatesCommand(opts))
	cmd.AddCommand(NewSaleCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))
	cmd.AddCommand(NewDrawCommand(opts))
	cmd.AddCommand(NewResetCommand(opts))
	cmd.AddCommand(NewAuditCommand(opts))

	return cmd
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// withApp 開啟 Application，執行完釋放連線
func withApp(cmd *cobra.Command, opts *RootOptions, run func(ctx context.Context, a *app.Application, out *OutputFormatter) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a, err := opts.Open(ctx)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open ledger", err)
	}
	defer a.Close()

	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	if err := run(ctx, a, out); err != nil {
		if werr := out.Error(err); werr != nil {
			err = errors.Join(err, fmt.Errorf("write error output: %w", werr))
		}
		return WrapExitError(exitCodeFor(err), "command failed", err)
	}
	return nil
}

func exitCodeFor(err error) int {
	if errors.Is(err, apperrors.ErrDataRead) ||
		errors.Is(err, apperrors.ErrStoreUnavailable) ||
		errors.Is(err, apperrors.ErrConnection) {
		return ExitCommandError
	}
	return ExitFailure
}
