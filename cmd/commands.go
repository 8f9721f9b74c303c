package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"goldprice/internal/app"
	"goldprice/internal/config"
	"goldprice/internal/export"
	"goldprice/internal/gold"
	"goldprice/internal/pricing"

	"github.com/spf13/cobra"
)

type cli struct {
	cfg *config.AppConfig
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	rootCmd := &cobra.Command{
		Use:   "goldprice",
		Short: "Simulated gold prices, history and currency conversion",
		Long: `goldprice serves simulated gold prices per currency, purity and unit.
Without a subcommand it starts the HTTP API.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			configFile, _ := cmd.Flags().GetString("config")
			cfg, err := config.Init(configFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if level, _ := cmd.Flags().GetString("log-level"); level != "" {
				cfg.Logging.Level = level
			}
			app.SetupLogger(cfg.Logging.Level)
			c.cfg = cfg
			return nil
		},
		RunE: c.serve,
	}
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./config.yaml when present)")
	rootCmd.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Start the HTTP API",
			Args:  cobra.NoArgs,
			RunE:  c.serve,
		},
		c.priceCmd(),
		c.historyCmd(),
		c.convertCmd(),
		c.currenciesCmd(),
	)
	return rootCmd
}

func (c *cli) serve(_ *cobra.Command, _ []string) error {
	return app.Run(c.cfg)
}

func (c *cli) service() (*gold.Service, error) {
	return app.NewService(c.cfg, nil)
}

func (c *cli) priceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "price [currency]",
		Short: "Print today's price",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := gold.NormalizeCode(args[0])
			if err := gold.ValidateCode(code); err != nil {
				return err
			}
			purity, _ := cmd.Flags().GetString("purity")
			unit, _ := cmd.Flags().GetString("unit")

			svc, err := c.service()
			if err != nil {
				return err
			}
			p := svc.Price(code, gold.ParsePurity(purity), gold.ParseUnit(unit))
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s/%s: %s %s (%s, %s)\n",
				p.Currency, p.Purity, p.Unit,
				pricing.FormatAmount(p.Price), p.Symbol,
				pricing.FormatAmount(p.Change), pricing.FormatPercent(p.ChangePercentage),
			)
			return err
		},
	}
	cmd.Flags().String("purity", "", "purity label (24k, 22k, 21k, 18k, 14k, 12k, 10k)")
	cmd.Flags().String("unit", "", "unit (gram, ounce, kilo)")
	return cmd
}

func (c *cli) historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history [currency]",
		Short: "Print the daily price history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := gold.NormalizeCode(args[0])
			if err := gold.ValidateCode(code); err != nil {
				return err
			}
			rawPeriod, _ := cmd.Flags().GetString("period")
			period, err := gold.ParsePeriod(rawPeriod)
			if err != nil {
				return err
			}

			svc, err := c.service()
			if err != nil {
				return err
			}
			points, err := svc.History(code, period)
			if err != nil {
				return err
			}

			asCSV, _ := cmd.Flags().GetBool("csv")
			out, _ := cmd.Flags().GetString("out")
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", out, err)
				}
				if err = export.WriteCSV(f, points); err != nil {
					_ = f.Close()
					return err
				}
				if err = f.Close(); err != nil {
					return err
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %d points to %s\n", len(points), out)
				return err
			}
			if asCSV {
				return export.WriteCSV(cmd.OutOrStdout(), points)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(tw, "DATE\tPRICE")
			for _, p := range points {
				_, _ = fmt.Fprintf(tw, "%s\t%s\n", p.Date, pricing.FormatAmount(p.Price))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().String("period", "", "period (1d, 1w, 1m, 6m, 1y), defaults to 1m")
	cmd.Flags().Bool("csv", false, "print as CSV")
	cmd.Flags().String("out", "", "write CSV to this file, e.g. "+export.Filename("MAD", "1m"))
	return cmd
}

func (c *cli) convertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert [amount] [from] [to]",
		Short: "Convert an amount between currencies",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := gold.ParseAmount(args[0])
			if err != nil {
				return err
			}
			from, to := gold.NormalizeCode(args[1]), gold.NormalizeCode(args[2])
			if err = gold.ValidateCode(from); err != nil {
				return fmt.Errorf("from: %w", err)
			}
			if err = gold.ValidateCode(to); err != nil {
				return fmt.Errorf("to: %w", err)
			}

			svc, err := c.service()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s = %s %s\n",
				pricing.FormatAmount(amount), from, pricing.FormatAmount(svc.Convert(amount, from, to)), to)
			return err
		},
	}
}

func (c *cli) currenciesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "currencies",
		Short: "List supported currencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := c.service()
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(tw, "CODE\tSYMBOL\tNAME")
			for _, cur := range svc.Currencies() {
				_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", cur.Code, cur.Symbol, cur.Name)
			}
			return tw.Flush()
		},
	}
}
