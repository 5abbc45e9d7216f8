package cmd

import (
	"encoding/hex"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/cobra"
)

const flagHex = "hex"

func TxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Apply a registry transition signed by --from",
	}
	cmd.PersistentFlags().String(flagFrom, "", "bech32 address of the signing account")
	_ = cmd.MarkPersistentFlagRequired(flagFrom)

	cmd.AddCommand(SetNameCmd(), GetNameCmd())
	return cmd
}

type txResult struct {
	Height int64       `json:"height"`
	Events sdk.Events  `json:"events"`
	Result interface{} `json:"result,omitempty"`
}

func SetNameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-name [name]",
		Short: "Name or rename the sender",
		Long:  "Name or rename the sender. The first naming reserves the reservation fee; renames reuse it.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := fromAddress(cmd)
			if err != nil {
				return err
			}
			name := []byte(args[0])
			if asHex, _ := cmd.Flags().GetBool(flagHex); asHex {
				if name, err = hex.DecodeString(args[0]); err != nil {
					return fmt.Errorf("invalid hex name: %w", err)
				}
			}

			host, _, err := openHost(cmd)
			if err != nil {
				return err
			}
			defer host.Close()

			res, receipt, err := host.SetName(from, name)
			if err != nil {
				return err
			}
			return printJSON(cmd, txResult{Height: receipt.Height, Events: receipt.Events, Result: res})
		},
	}
	cmd.Flags().Bool(flagHex, false, "treat [name] as hex encoded bytes")
	return cmd
}

func GetNameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get-name",
		Short: "Emit the sender's name as an event",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := fromAddress(cmd)
			if err != nil {
				return err
			}

			host, _, err := openHost(cmd)
			if err != nil {
				return err
			}
			defer host.Close()

			receipt, err := host.GetName(from)
			if err != nil {
				return err
			}
			return printJSON(cmd, txResult{Height: receipt.Height, Events: receipt.Events})
		},
	}
}

func FundCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fund [address] [coins]",
		Short: "Mint coins from the faucet into an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := sdk.AccAddressFromBech32(args[0])
			if err != nil {
				return fmt.Errorf("invalid address %q: %w", args[0], err)
			}
			coins, err := sdk.ParseCoinsNormalized(args[1])
			if err != nil {
				return fmt.Errorf("invalid coins %q: %w", args[1], err)
			}

			host, _, err := openHost(cmd)
			if err != nil {
				return err
			}
			defer host.Close()

			receipt, err := host.Fund(addr, coins)
			if err != nil {
				return err
			}
			return printJSON(cmd, txResult{Height: receipt.Height, Events: receipt.Events})
		},
	}
}

func fromAddress(cmd *cobra.Command) (sdk.AccAddress, error) {
	from, err := cmd.Flags().GetString(flagFrom)
	if err != nil {
		return nil, err
	}
	addr, err := sdk.AccAddressFromBech32(from)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s address %q: %w", flagFrom, from, err)
	}
	return addr, nil
}
