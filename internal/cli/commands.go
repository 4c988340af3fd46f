package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"raffle-tracker/internal/app"
	"raffle-tracker/internal/model"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func NewSummaryCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show sold/available totals, revenue and top sellers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, a *app.Application, out *OutputFormatter) error {
				summary, err := a.Reports.Summary(ctx)
				if err != nil {
					return err
				}
				return out.Success(summary, func(w io.Writer) {
					fmt.Fprintf(w, "Sold:       %d\n", summary.TotalSold)
					fmt.Fprintf(w, "Available:  %d\n", summary.TotalAvailable)
					fmt.Fprintf(w, "Revenue:    %s\n", summary.GrossRevenue.StringFixed(2))
					fmt.Fprintf(w, "Progress:   %s%%\n", summary.ProgressPercent.String())
					fmt.Fprintf(w, "Sellers:    %d active\n", summary.ActiveSellers)
					for i, s := range summary.TopSellers {
						fmt.Fprintf(w, "  %d. %s (%d)\n", i+1, s.Seller, s.Count)
					}
					if len(summary.FlaggedAmounts) > 0 {
						fmt.Fprintf(w, "Warning: %d sold rows with unreadable amount counted as 0\n", len(summary.FlaggedAmounts))
					}
				})
			})
		},
	}
}

func NewSellersCommand(opts *RootOptions) *cobra.Command {
	var seller string

	cmd := &cobra.Command{
		Use:   "sellers",
		Short: "List sellers, or show one seller's count, revenue and commission",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, a *app.Application, out *OutputFormatter) error {
				if seller != "" {
					stats, err := a.Reports.SellerStats(ctx, seller)
					if err != nil {
						return err
					}
					return out.Success(stats, func(w io.Writer) {
						fmt.Fprintf(w, "%s: %d sold, revenue %s, commission %s\n",
							stats.Seller, stats.Count, stats.Revenue.StringFixed(2), stats.Commission.StringFixed(2))
					})
				}

				sellers, err := a.Reports.Sellers(ctx)
				if err != nil {
					return err
				}
				return out.Success(sellers, func(w io.Writer) {
					for _, s := range sellers {
						fmt.Fprintln(w, s)
					}
				})
			})
		},
	}

	cmd.Flags().StringVar(&seller, "seller", "", "show stats for this seller")
	return cmd
}

func NewDuplicatesCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "duplicates",
		Short: "List numbers sold more than once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, a *app.Application, out *OutputFormatter) error {
				groups, err := a.Reports.Duplicates(ctx)
				if err != nil {
					return err
				}
				return out.Success(groups, func(w io.Writer) {
					if len(groups) == 0 {
						fmt.Fprintln(w, "No duplicate sold numbers")
						return
					}
					for _, g := range groups {
						fmt.Fprintf(w, "Number %d sold %d times:\n", g.Number, len(g.Records))
						for _, r := range g.Records {
							fmt.Fprintf(w, "  row %d  %s  %s  %s\n", r.Row, r.Timestamp.Format(model.TimestampLayout), r.Seller, r.BuyerName)
						}
					}
				})
			})
		},
	}
}

// SaleOptions 手動登記的參數
type SaleOptions struct {
	Seller string
	Number int
	Name   string
	Phone  string
	Email  string
	Amount string
}

func NewSaleCommand(opts *RootOptions) *cobra.Command {
	sale := &SaleOptions{}

	cmd := &cobra.Command{
		Use:   "sale",
		Short: "Register a manual sale",
		Long: `Register a sale outside the web form. The row is marked "Venta manual".

Examples:
  raffle sale --seller Ana --number 42 --name "Juan Pérez" --phone 3001234567
  raffle sale --seller Ana --number 7 --name Luisa --phone 3019876543 --amount 10000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := model.RegisterSaleRequest{
				Seller:     sale.Seller,
				BuyerName:  sale.Name,
				BuyerPhone: sale.Phone,
				BuyerEmail: sale.Email,
			}
			if cmd.Flags().Changed("number") {
				n := sale.Number
				req.Number = &n
			}
			if sale.Amount != "" {
				amount, err := decimal.NewFromString(sale.Amount)
				if err != nil {
					return WrapExitError(ExitCommandError, "invalid --amount", err)
				}
				req.Amount = &amount
			}

			return withApp(cmd, opts, func(ctx context.Context, a *app.Application, out *OutputFormatter) error {
				record, err := a.Sales.RegisterManualSale(ctx, req)
				if err != nil {
					return err
				}
				return out.Success(record, func(w io.Writer) {
					fmt.Fprintf(w, "Registered number %d for %s (seller %s, %s)\n",
						record.Number, record.BuyerName, record.Seller, record.Amount.StringFixed(2))
				})
			})
		},
	}

	cmd.Flags().StringVar(&sale.Seller, "seller", "", "seller name")
	cmd.Flags().IntVar(&sale.Number, "number", 0, "raffle number")
	cmd.Flags().StringVar(&sale.Name, "name", "", "buyer name")
	cmd.Flags().StringVar(&sale.Phone, "phone", "", "buyer phone")
	cmd.Flags().StringVar(&sale.Email, "email", "", "buyer email")
	cmd.Flags().StringVar(&sale.Amount, "amount", "", "amount (defaults to the unit price)")
	return cmd
}

// ExportOptions 匯出的篩選條件
type ExportOptions struct {
	Output string
	Seller string
	Status string
	Date   string
}

func NewExportCommand(opts *RootOptions) *cobra.Command {
	export := &ExportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the ledger as CSV",
		Long: `Export the ledger (optionally filtered) as CSV.

Without --output the file is named reporte_rifa_<YYYYMMDD>.csv; use "-" for stdout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := model.SaleFilter{
				Seller: strings.TrimSpace(export.Seller),
				Status: model.SaleStatus(strings.ToLower(strings.TrimSpace(export.Status))),
			}
			if export.Date != "" {
				day, err := time.ParseInLocation("2006-01-02", export.Date, time.Local)
				if err != nil {
					return WrapExitError(ExitCommandError, "invalid --date", err)
				}
				filter.Day = day
			}

			return withApp(cmd, opts, func(ctx context.Context, a *app.Application, out *OutputFormatter) error {
				if export.Output == "-" {
					return a.Reports.Export(ctx, filter, cmd.OutOrStdout())
				}

				path := export.Output
				if path == "" {
					path = fmt.Sprintf("reporte_rifa_%s.csv", time.Now().Format("20060102"))
				}
				f, err := os.Create(path)
				if err != nil {
					return fmt.Errorf("create %s: %w", path, err)
				}
				if err := a.Reports.Export(ctx, filter, f); err != nil {
					f.Close()
					return err
				}
				if err := f.Close(); err != nil {
					return fmt.Errorf("close %s: %w", path, err)
				}
				return out.Success(map[string]string{"file": path}, func(w io.Writer) {
					fmt.Fprintf(w, "Exported to %s\n", path)
				})
			})
		},
	}

	cmd.Flags().StringVarP(&export.Output, "output", "o", "", "output file (\"-\" for stdout)")
	cmd.Flags().StringVar(&export.Seller, "seller", "", "only this seller")
	cmd.Flags().StringVar(&export.Status, "status", "", "only this status (vendido|reservado|cancelado)")
	cmd.Flags().StringVar(&export.Date, "date", "", "only this day (YYYY-MM-DD)")
	return cmd
}

func NewDrawCommand(opts *RootOptions) *cobra.Command {
	var actor string

	cmd := &cobra.Command{
		Use:   "draw",
		Short: "Draw a winner among the sold numbers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, a *app.Application, out *OutputFormatter) error {
				result, err := a.Draws.Draw(ctx, actor)
				if err != nil {
					return err
				}
				return out.Success(result, func(w io.Writer) {
					fmt.Fprintf(w, "Winner: number %d\n", result.Winner.Number)
					fmt.Fprintf(w, "  Buyer:  %s (%s)\n", result.Winner.BuyerName, result.Winner.BuyerPhone)
					fmt.Fprintf(w, "  Seller: %s\n", result.Winner.Seller)
					fmt.Fprintf(w, "  Drawn among %d sold numbers\n", result.EligibleCount)
					if result.HasDuplicate() {
						fmt.Fprintf(w, "Warning: %s (%d records for this number)\n", result.Warning, len(result.Duplicates))
					}
				})
			})
		},
	}

	cmd.Flags().StringVar(&actor, "actor", currentUser(), "who runs the draw (audit)")
	return cmd
}

func NewResetCommand(opts *RootOptions) *cobra.Command {
	var confirm, actor string

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Archive all ledger rows and start an empty ledger",
		Long: `Move every row of the ledger into an archive sheet named <sheet>_archivo_<timestamp>.

Requires RAFFLE_ALLOW_RESET=true and --confirm set to the ledger sheet name.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, a *app.Application, out *OutputFormatter) error {
				result, err := a.Admin.Reset(ctx, confirm, actor)
				if err != nil {
					return err
				}
				return out.Success(result, func(w io.Writer) {
					fmt.Fprintf(w, "Moved %d rows from %s to %s\n", result.MovedRows, result.Sheet, result.Archive)
				})
			})
		},
	}

	cmd.Flags().StringVar(&confirm, "confirm", "", "ledger sheet name, to confirm the reset")
	cmd.Flags().StringVar(&actor, "actor", currentUser(), "who requests the reset (audit)")
	return cmd
}

func NewAuditCommand(opts *RootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Show the most recent audit events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, a *app.Application, out *OutputFormatter) error {
				events, err := a.Admin.AuditTrail(ctx, limit)
				if err != nil {
					return err
				}
				return out.Success(events, func(w io.Writer) {
					for _, e := range events {
						fmt.Fprintf(w, "%s  %-22s  %s  %s\n", e.At.Format(time.RFC3339), e.Type, e.Actor, e.Detail)
					}
				})
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "number of events")
	return cmd
}

func currentUser() string {
	for _, key := range []string{"USER", "USERNAME"} {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return "cli"
}
