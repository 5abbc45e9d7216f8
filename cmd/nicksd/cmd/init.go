package cmd

import (
	"fmt"
	"os"
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/cobra"

	"github.com/asamuj/nicks/app"
)

const (
	flagOverwrite      = "overwrite"
	flagMaxLength      = "max-length"
	flagReservationFee = "reservation-fee"
	flagAccount        = "account"
	flagDBBackend      = "db-backend"
	flagNicksGenesis   = "nicks-genesis"
)

func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file under --home",
		Long: `Write <home>/config/nicks.toml. Genesis accounts are given as
--account <bech32-address>=<coins> and are funded when the database is first opened.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			home, err := cmd.Flags().GetString(flagHome)
			if err != nil {
				return err
			}

			cfg := app.DefaultConfig()
			cfg.Home = home
			if _, err := os.Stat(cfg.ConfigFile()); err == nil {
				overwrite, _ := cmd.Flags().GetBool(flagOverwrite)
				if !overwrite {
					return fmt.Errorf("config file %s already exists, use --%s to replace it", cfg.ConfigFile(), flagOverwrite)
				}
			}

			if cfg.Nicks.MaxLength, err = cmd.Flags().GetUint32(flagMaxLength); err != nil {
				return err
			}
			if cfg.Nicks.ReservationFee, err = cmd.Flags().GetString(flagReservationFee); err != nil {
				return err
			}
			if cfg.DBBackend, err = cmd.Flags().GetString(flagDBBackend); err != nil {
				return err
			}
			if cfg.Genesis.NicksFile, err = cmd.Flags().GetString(flagNicksGenesis); err != nil {
				return err
			}
			if _, err := cfg.Nicks.Params(); err != nil {
				return err
			}

			accounts, err := cmd.Flags().GetStringArray(flagAccount)
			if err != nil {
				return err
			}
			for _, raw := range accounts {
				account, err := parseGenesisAccount(raw)
				if err != nil {
					return err
				}
				cfg.Genesis.Accounts = append(cfg.Genesis.Accounts, account)
			}

			if err := app.WriteConfig(cfg); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", cfg.ConfigFile())
			return err
		},
	}

	defaults := app.DefaultConfig()
	cmd.Flags().Bool(flagOverwrite, false, "replace an existing config file")
	cmd.Flags().Uint32(flagMaxLength, defaults.Nicks.MaxLength, "maximum name length in bytes")
	cmd.Flags().String(flagReservationFee, defaults.Nicks.ReservationFee, "deposit reserved on first naming")
	cmd.Flags().String(flagDBBackend, defaults.DBBackend, "cosmos-db backend (goleveldb or memdb)")
	cmd.Flags().String(flagNicksGenesis, "", "JSON nicks genesis to import on first start")
	cmd.Flags().StringArray(flagAccount, nil, "genesis account as <address>=<coins>, repeatable")
	return cmd
}

func parseGenesisAccount(raw string) (app.GenesisAccount, error) {
	address, coins, ok := strings.Cut(raw, "=")
	if !ok {
		return app.GenesisAccount{}, fmt.Errorf("invalid --%s %q: want <address>=<coins>", flagAccount, raw)
	}
	if _, err := sdk.AccAddressFromBech32(address); err != nil {
		return app.GenesisAccount{}, fmt.Errorf("invalid --%s address %q: %w", flagAccount, address, err)
	}
	if _, err := sdk.ParseCoinsNormalized(coins); err != nil {
		return app.GenesisAccount{}, fmt.Errorf("invalid --%s coins %q: %w", flagAccount, coins, err)
	}
	return app.GenesisAccount{Address: address, Coins: coins}, nil
}
