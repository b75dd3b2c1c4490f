package cmd

import (
	"errors"
	"fmt"

	"blobls/feature/enumerate"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errTruncated = errors.New("listing truncated by page failures")

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every container and its blobs",
	Long: `Prints each container name, a dash underline, and the blobs it holds.
Page failures are logged to stderr and cut the affected listing short; the run
still succeeds unless --strict is given.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, logg, client, err := setup(cmd)
	if err != nil {
		return err
	}
	defer logg.Sync()

	concurrency, _ := cmd.Flags().GetInt("concurrency")
	strict, _ := cmd.Flags().GetBool("strict")

	driver := enumerate.New(client, cmd.OutOrStdout(), logg, enumerate.Options{
		Prefix:      cfg.Storage.Prefix,
		PageSize:    int32(cfg.Storage.PageSize),
		Concurrency: concurrency,
	})

	report, err := driver.Run(cmd.Context())
	if err != nil {
		return err
	}

	if strict && report.Truncated() {
		for _, e := range report.Errors() {
			logg.Error("Listing incomplete", zap.Error(e))
		}
		return fmt.Errorf("%w: %d listing(s) incomplete", errTruncated, len(report.Errors()))
	}
	return nil
}

func addListFlags(c *cobra.Command) {
	addStorageFlags(c)
	c.Flags().String("prefix", "", "Only list blobs whose name starts with this prefix")
	c.Flags().String("delimiter", "", "List hierarchically with this delimiter; virtual folders are skipped")
	c.Flags().Int("concurrency", 1, "Number of containers listed in parallel")
	c.Flags().Bool("strict", false, "Exit with failure if any listing was truncated")
}

func addStorageFlags(c *cobra.Command) {
	c.Flags().String("provider", "", "Storage provider (azure, minio, s3); overrides STORAGE_PROVIDER")
	c.Flags().Int("page-size", 0, "Maximum entries per list request (0 = service default)")
}

func init() {
	RootCmd.AddCommand(listCmd)
	addListFlags(listCmd)
}
