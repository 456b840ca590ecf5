package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init <store>",
	Short: "create and seed the catalog tables without entering recipes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, catalog, err := openCatalog(cmd, args[0])
		if err != nil {
			return err
		}
		defer catalog.Close()

		fmt.Fprintf(cmd.OutOrStdout(), "Store %s is ready.\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
