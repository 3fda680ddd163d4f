// Package admin is the operator command line of the Unsaid backend. It
// talks to the server's PostgreSQL database directly and shares the server
// configuration defaults.
package admin

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/unsaid/internal/quota"
	"github.com/dmitrijs2005/unsaid/internal/server/config"
	"github.com/dmitrijs2005/unsaid/internal/server/repositories/repomanager"
	"github.com/spf13/cobra"
)

type deps struct {
	open    func(ctx context.Context, dsn string) (*sql.DB, error)
	manager repomanager.RepositoryManager
	now     func() time.Time
}

type env struct {
	cfg *config.Config
	deps
}

// NewRootCmd builds the unsaid-admin command tree. Persistent flags
// override the matching fields of cfg.
func NewRootCmd(cfg *config.Config) *cobra.Command {
	return newRootCmd(cfg, deps{
		open:    repomanager.Open,
		manager: repomanager.NewPostgresRepositoryManager(),
		now:     time.Now,
	})
}

func newRootCmd(cfg *config.Config, d deps) *cobra.Command {
	e := &env{cfg: cfg, deps: d}

	root := &cobra.Command{
		Use:           "unsaid-admin",
		Short:         "Maintenance commands for the Unsaid backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfg.DatabaseDSN, "dsn", cfg.DatabaseDSN, "PostgreSQL DSN")
	root.PersistentFlags().IntVar(&cfg.DailyLimit, "limit", cfg.DailyLimit, "companion calls per user per day")
	root.PersistentFlags().StringVar(&cfg.TimeZone, "tz", cfg.TimeZone, "time zone the quota day rolls over in")

	root.AddCommand(
		e.migrateCmd(),
		e.usageCmd(),
		e.tokensCmd(),
		promptCmd(d.now),
	)
	return root
}

// withDB opens the database for one command and closes it afterwards.
func (e *env) withDB(ctx context.Context, fn func(db *sql.DB) error) error {
	db, err := e.open(ctx, e.cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	defer db.Close()
	return fn(db)
}

func (e *env) meter(db *sql.DB) *quota.Meter {
	return quota.NewMeter(e.manager.Usage(db),
		quota.WithLimit(e.cfg.DailyLimit),
		quota.WithLocation(e.cfg.Location()),
		quota.WithClock(e.now))
}

func (e *env) migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return e.withDB(cmd.Context(), func(db *sql.DB) error {
				if err := e.manager.RunMigrations(cmd.Context(), db); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
				return nil
			})
		},
	}
}

func (e *env) usageCmd() *cobra.Command {
	usage := &cobra.Command{
		Use:   "usage",
		Short: "Inspect or reset the daily companion quota of a user",
	}

	usage.AddCommand(&cobra.Command{
		Use:   "show <user-id>",
		Short: "Print today's companion allowance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.withDB(cmd.Context(), func(db *sql.DB) error {
				a, err := e.meter(db).CheckAllowance(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				printAllowance(cmd.OutOrStdout(), args[0], a)
				return nil
			})
		},
	})

	usage.AddCommand(&cobra.Command{
		Use:   "reset <user-id>",
		Short: "Give the user their full allowance back for today",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.withDB(cmd.Context(), func(db *sql.DB) error {
				if err := e.meter(db).Reset(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "usage of %s reset\n", args[0])
				return nil
			})
		},
	})
	return usage
}

func printAllowance(w io.Writer, userID string, a quota.Allowance) {
	fmt.Fprintf(w, "user:      %s\n", userID)
	fmt.Fprintf(w, "date:      %s\n", a.Date)
	fmt.Fprintf(w, "used:      %d/%d\n", a.Limit-a.Remaining, a.Limit)
	fmt.Fprintf(w, "remaining: %d\n", a.Remaining)
	fmt.Fprintf(w, "allowed:   %t\n", a.Allowed)
}

func (e *env) tokensCmd() *cobra.Command {
	tokens := &cobra.Command{
		Use:   "tokens",
		Short: "Refresh token housekeeping",
	}
	tokens.AddCommand(&cobra.Command{
		Use:   "purge",
		Short: "Delete refresh tokens that have expired",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return e.withDB(cmd.Context(), func(db *sql.DB) error {
				n, err := e.manager.RefreshTokens(db).DeleteExpired(cmd.Context(), e.now())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d expired refresh token(s) deleted\n", n)
				return nil
			})
		},
	})
	return tokens
}
