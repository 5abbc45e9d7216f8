package cmd

import (
	"encoding/json"
	"fmt"

	"cosmossdk.io/log"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/asamuj/nicks/app"
)

const (
	flagHome      = "home"
	flagLogLevel  = "log_level"
	flagLogFormat = "log_format"
	flagFrom      = "from"
	flagDenom     = "denom"
)

// Version is set at build time with -ldflags.
var Version = "dev"

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "nicksd",
		Short:         "nicksd runs the nicks name registry",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String(flagHome, app.DefaultNodeHome, "directory for config and data")
	rootCmd.PersistentFlags().String(flagLogLevel, "", "log level (overrides config)")
	rootCmd.PersistentFlags().String(flagLogFormat, "", "log format, plain or json (overrides config)")

	rootCmd.AddCommand(
		InitCmd(),
		TxCmd(),
		QueryCmd(),
		FundCmd(),
		ServeCmd(),
		ExportCmd(),
		PatchConfigCmd(),
		VersionCmd(),
	)
	return rootCmd
}

func VersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the nicksd version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), Version)
			return err
		},
	}
}

// loadConfig reads the config under --home with log flags taking precedence.
func loadConfig(cmd *cobra.Command) (app.Config, error) {
	home, err := cmd.Flags().GetString(flagHome)
	if err != nil {
		return app.Config{}, err
	}

	v := viper.New()
	for _, name := range []string{flagLogLevel, flagLogFormat} {
		flag := cmd.Flags().Lookup(name)
		if flag == nil || !flag.Changed {
			continue
		}
		if err := v.BindPFlag(name, flag); err != nil {
			return app.Config{}, err
		}
	}
	return app.LoadConfig(v, home)
}

func newLogger(cmd *cobra.Command, cfg app.Config) (log.Logger, error) {
	return app.NewLogger(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
}

// openHost loads config and state. The caller closes the host.
func openHost(cmd *cobra.Command) (*app.Host, app.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, app.Config{}, err
	}
	logger, err := newLogger(cmd, cfg)
	if err != nil {
		return nil, app.Config{}, err
	}

	db, err := app.OpenDB(cfg)
	if err != nil {
		return nil, app.Config{}, fmt.Errorf("failed to open database: %w", err)
	}
	host, err := app.NewHost(cfg, db, logger)
	if err != nil {
		closeDB(db, logger)
		return nil, app.Config{}, err
	}
	return host, cfg, nil
}

func closeDB(db dbm.DB, logger log.Logger) {
	if err := db.Close(); err != nil {
		logger.Error("Failed to close database", "error", err)
	}
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	bz, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(bz))
	return err
}
