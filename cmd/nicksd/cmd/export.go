package cmd

import (
	"github.com/spf13/cobra"
)

func ExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Print the registry state as a nicks genesis JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			host, _, err := openHost(cmd)
			if err != nil {
				return err
			}
			defer host.Close()

			genState, err := host.ExportGenesis()
			if err != nil {
				return err
			}
			return printJSON(cmd, genState)
		},
	}
}
