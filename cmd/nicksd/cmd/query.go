package cmd

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/query"
	"github.com/spf13/cobra"

	"github.com/asamuj/nicks/app"
)

const (
	flagLimit   = "limit"
	flagPageKey = "page-key"
)

func QueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "query",
		Aliases: []string{"q"},
		Short:   "Read registry state without committing anything",
	}
	cmd.AddCommand(
		QueryNameCmd(),
		QueryReservedCmd(),
		QueryBalanceCmd(),
		QueryParamsCmd(),
		QueryNamesCmd(),
	)
	return cmd
}

type nameOutput struct {
	Address string   `json:"address"`
	Name    string   `json:"name"`
	Deposit sdk.Coin `json:"deposit"`
}

func QueryNameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "name [address]",
		Short: "Show the name stored for an account, hex encoded",
		Args:  cobra.ExactArgs(1),
		RunE: withHostAndAddress(func(cmd *cobra.Command, host *app.Host, addr sdk.AccAddress) error {
			res, err := host.NameOf(addr)
			if err != nil {
				return err
			}
			return printJSON(cmd, nameOutput{Address: addr.String(), Name: hex.EncodeToString(res.Name), Deposit: res.Deposit})
		}),
	}
}

func QueryReservedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reserved [address]",
		Short: "Show the amount reserved for an account",
		Args:  cobra.ExactArgs(1),
		RunE: withHostAndAddress(func(cmd *cobra.Command, host *app.Host, addr sdk.AccAddress) error {
			denom, _ := cmd.Flags().GetString(flagDenom)
			res, err := host.Reserved(addr, denom)
			if err != nil {
				return err
			}
			return printJSON(cmd, res)
		}),
	}
	cmd.Flags().String(flagDenom, "", "denom, defaults to the reservation fee denom")
	return cmd
}

func QueryBalanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance [address]",
		Short: "Show the free and reserved balance of an account",
		Args:  cobra.ExactArgs(1),
		RunE: withHostAndAddress(func(cmd *cobra.Command, host *app.Host, addr sdk.AccAddress) error {
			denom, _ := cmd.Flags().GetString(flagDenom)
			if denom == "" {
				denom = host.Params().ReservationFee.Denom
			}
			free, err := host.Balance(addr, denom)
			if err != nil {
				return err
			}
			reserved, err := host.Reserved(addr, denom)
			if err != nil {
				return err
			}
			return printJSON(cmd, struct {
				Free     sdk.Coin `json:"free"`
				Reserved sdk.Coin `json:"reserved"`
			}{Free: free, Reserved: reserved.Amount})
		}),
	}
	cmd.Flags().String(flagDenom, "", "denom, defaults to the reservation fee denom")
	return cmd
}

func QueryParamsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "params",
		Short: "Show the registry params",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			host, _, err := openHost(cmd)
			if err != nil {
				return err
			}
			defer host.Close()
			return printJSON(cmd, host.Params())
		},
	}
}

func QueryNamesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "names",
		Short: "List named accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetUint64(flagLimit)
			rawKey, _ := cmd.Flags().GetString(flagPageKey)
			pagination := &query.PageRequest{Limit: limit, CountTotal: rawKey == ""}
			if rawKey != "" {
				key, err := base64.URLEncoding.DecodeString(rawKey)
				if err != nil {
					return fmt.Errorf("invalid --%s: %w", flagPageKey, err)
				}
				pagination.Key = key
			}

			host, _, err := openHost(cmd)
			if err != nil {
				return err
			}
			defer host.Close()

			res, err := host.AllNames(pagination)
			if err != nil {
				return err
			}
			out := struct {
				Names   []nameOutput `json:"names"`
				NextKey string       `json:"next_key,omitempty"`
				Total   uint64       `json:"total,omitempty"`
			}{Names: make([]nameOutput, 0, len(res.Names))}
			for _, named := range res.Names {
				out.Names = append(out.Names, nameOutput{Address: named.Address, Name: hex.EncodeToString(named.Name), Deposit: named.Deposit})
			}
			if res.Pagination != nil {
				if len(res.Pagination.NextKey) > 0 {
					out.NextKey = base64.URLEncoding.EncodeToString(res.Pagination.NextKey)
				}
				out.Total = res.Pagination.Total
			}
			return printJSON(cmd, out)
		},
	}
	cmd.Flags().Uint64(flagLimit, 100, "page size")
	cmd.Flags().String(flagPageKey, "", "next_key from a previous page")
	return cmd
}

func withHostAndAddress(fn func(cmd *cobra.Command, host *app.Host, addr sdk.AccAddress) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		addr, err := sdk.AccAddressFromBech32(args[0])
		if err != nil {
			return fmt.Errorf("invalid address %q: %w", args[0], err)
		}
		host, _, err := openHost(cmd)
		if err != nil {
			return err
		}
		defer host.Close()
		return fn(cmd, host, addr)
	}
}
