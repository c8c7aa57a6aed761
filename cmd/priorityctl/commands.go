package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	pg "beacon/internal/adapters/postgres"
	"beacon/internal/escalation"
	"beacon/internal/jurisdiction"
	"beacon/internal/logging"
	"beacon/internal/priority"
	"beacon/internal/workers/escalationsweep"
)

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "priorityctl",
		Short:         "Missing-person case priority tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(assessCmd(), escalateCmd(), displayCmd(), validateCmd(), profilesCmd(), sweepCmd())
	return cmd
}

func assessCmd() *cobra.Command {
	var jurisdictionID, profilesDir string
	cmd := &cobra.Command{
		Use:   "assess [FILE|-]",
		Short: "Score a JSON risk factor document",
		Long: `Reads case risk factors as a JSON object from FILE, or from stdin when
FILE is "-" or omitted, and prints the assessment.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := "-"
			if len(args) == 1 {
				src = args[0]
			}
			data, err := readInput(cmd.InOrStdin(), src)
			if err != nil {
				return err
			}
			reg, err := jurisdiction.Load(profilesDir)
			if err != nil {
				return fmt.Errorf("load profiles: %w", err)
			}
			var factors priority.CaseRiskFactors
			if err := json.Unmarshal(data, &factors); err != nil {
				return fmt.Errorf("parse factors: %w", err)
			}
			if priority.UsesLegacyHoursKey(data) {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning: hourssMissing is deprecated, send hoursMissing")
			}
			a := priority.Assess(reg, factors, jurisdictionID)
			if a.JurisdictionFallback {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: unknown jurisdiction %q, used %s profile\n", jurisdictionID, a.Jurisdiction)
			}
			return printJSON(cmd.OutOrStdout(), a)
		},
	}
	cmd.Flags().StringVarP(&jurisdictionID, "jurisdiction", "j", "", "Jurisdiction profile id (generic when empty)")
	cmd.Flags().StringVar(&profilesDir, "profiles", "", "Directory of additional profile documents")
	return cmd
}

func escalateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "escalate LEVEL HOURS",
		Short: "Check whether a case at LEVEL escalates after HOURS unresolved",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := parseLevel(args[0])
			if err != nil {
				return err
			}
			hours, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid hours %q", args[1])
			}
			return printJSON(cmd.OutOrStdout(), escalation.Check(level, hours))
		},
	}
}

func displayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "display LEVEL",
		Short: "Print presentation metadata for a level",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := parseLevel(args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), priority.Display(level))
		},
	}
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE...",
		Short: "Validate jurisdiction profile documents",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			failed := 0
			for _, name := range args {
				data, err := os.ReadFile(name)
				if err == nil {
					var p jurisdiction.Profile
					p, err = jurisdiction.Decode(name, data)
					if err == nil {
						fmt.Fprintf(out, "ok      %s (%s v%d)\n", name, p.ID, p.Version)
						continue
					}
				}
				failed++
				var verr *jurisdiction.ValidationError
				if errors.As(err, &verr) {
					fmt.Fprintf(out, "invalid %s\n", name)
					for _, e := range verr.Errors {
						fmt.Fprintf(out, "  - %s\n", e)
					}
					continue
				}
				fmt.Fprintf(out, "error   %s: %v\n", name, err)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d profiles rejected", failed, len(args))
			}
			return nil
		},
	}
}

func profilesCmd() *cobra.Command {
	var profilesDir string
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List available jurisdiction profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := jurisdiction.Load(profilesDir)
			if err != nil {
				return fmt.Errorf("load profiles: %w", err)
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tVERSION\tNAME\tLANGUAGE\tTHRESHOLDS")
			for _, p := range reg.Profiles() {
				t := p.PriorityWeights.Thresholds
				fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%d/%d/%d/%d\n",
					p.ID, p.Version, p.Name, p.Language, t.Priority3, t.Priority2, t.Priority1, t.Priority0)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&profilesDir, "profiles", "", "Directory of additional profile documents")
	return cmd
}

func sweepCmd() *cobra.Command {
	var (
		databaseURL string
		batch       int
		recheck     time.Duration
		logLevel    string
	)
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Apply every escalation that is due to stored cases, then exit",
		Long: `Claims open cases from the case store and escalates each one as many
levels as its unresolved time allows, logging every escalation. The
database defaults to $DATABASE_URL.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if databaseURL == "" {
				return errors.New("no database: set --database-url or DATABASE_URL")
			}
			ctx := cmd.Context()
			db, err := pg.Connect(ctx, databaseURL)
			if err != nil {
				return fmt.Errorf("db connect: %w", err)
			}
			defer db.Close()

			logger := logging.New(cmd.ErrOrStderr(), logLevel, "text")
			sweeper := &escalationsweep.Sweeper{Repo: db, Notifier: escalationsweep.LogNotifier{Logger: logger}, Logger: logger}
			n, err := escalationsweep.SweepInline(ctx, db, sweeper, batch, recheck)
			if err != nil {
				return fmt.Errorf("sweep: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d escalation(s) applied\n", n)
			return nil
		},
	}
	cmd.Flags().StringVar(&databaseURL, "database-url", os.Getenv("DATABASE_URL"), "Postgres connection string")
	cmd.Flags().IntVar(&batch, "batch", 50, "Cases claimed per round trip")
	cmd.Flags().DurationVar(&recheck, "recheck", 0, "Skip cases swept within this window")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level")
	return cmd
}

func parseLevel(s string) (priority.Level, error) {
	n, err := strconv.Atoi(s)
	if err != nil || !priority.Level(n).Valid() {
		return 0, fmt.Errorf("invalid level %q: want %d-%d", s, priority.Critical, priority.Minimal)
	}
	return priority.Level(n), nil
}

func readInput(stdin io.Reader, src string) ([]byte, error) {
	if src == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(src)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
