package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pet-adoption/internal/client"
	"pet-adoption/internal/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// globals son los flags persistentes, compartidos por todos los subcomandos.
type globals struct {
	apiURL   string
	dbDriver string
	dsn      string
	verbose  bool
	timeout  time.Duration

	log *zap.Logger
}

// NewRootCmd arma el árbol de comandos. Los defaults de db salen de la config (env / .env).
func NewRootCmd() *cobra.Command {
	cfg := config.Load()
	g := &globals{}

	root := &cobra.Command{
		Use:   "petadopt",
		Short: "Pet adoption toolkit",
		Long: `petadopt administra la base (migraciones, datos de ejemplo) y
navega la API de adopción desde la terminal.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			zc := zap.NewProductionConfig()
			zc.Encoding = "console"
			zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
			if g.verbose {
				zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			log, err := zc.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			g.log = log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if g.log != nil {
				_ = g.log.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&g.apiURL, "api", "http://localhost:"+cfg.Port, "Base URL of the pet adoption API")
	pf.StringVar(&g.dbDriver, "db-driver", cfg.DBDriver, "Database driver (sqlite|pgx)")
	pf.StringVar(&g.dsn, "db", cfg.DBDSN, "Database DSN")
	pf.BoolVarP(&g.verbose, "verbose", "v", false, "Verbose output")
	pf.DurationVar(&g.timeout, "timeout", 10*time.Second, "HTTP timeout for API calls")

	root.AddCommand(
		newMigrateCmd(g),
		newSeedCmd(g),
		newBrowseCmd(g),
		newPetsCmd(g),
	)
	return root
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (g *globals) session(log *zap.Logger) (*client.Session, error) {
	api, err := client.New(g.apiURL, g.timeout)
	if err != nil {
		return nil, err
	}
	return client.NewSession(api, log), nil
}
