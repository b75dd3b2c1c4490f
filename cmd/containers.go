package cmd

import (
	"fmt"

	"blobls/feature/enumerate"

	"github.com/spf13/cobra"
)

// containersCmd represents the containers command
var containersCmd = &cobra.Command{
	Use:   "containers",
	Short: "List container names only",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, client, err := setup(cmd)
		if err != nil {
			return err
		}
		defer logg.Sync()

		driver := enumerate.New(client, cmd.OutOrStdout(), logg, enumerate.Options{
			PageSize: int32(cfg.Storage.PageSize),
		})

		// A truncated container listing has already been logged by the pager.
		names, _ := driver.Containers(cmd.Context())
		if err := cmd.Context().Err(); err != nil {
			return err
		}
		for _, name := range names {
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(containersCmd)
	addStorageFlags(containersCmd)
}
