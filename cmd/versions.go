package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/craftline/craftline/game/catalog"
)

var (
	latestOnly   bool
	snapshotOnly bool
	limit        int
)

var versionsCmd = &cobra.Command{
	Use:   "versions",
	Short: "List game versions from the upstream catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := catalog.Fetch()
		if err != nil {
			return err
		}

		if latestOnly {
			v, err := c.LatestRelease()
			if err != nil {
				return err
			}
			printVersion(*v)
			return nil
		}
		if snapshotOnly {
			v, err := c.LatestSnapshot()
			if err != nil {
				return err
			}
			printVersion(*v)
			return nil
		}

		for i, v := range c.Versions {
			if limit > 0 && i >= limit {
				break
			}
			printVersion(v)
		}
		return nil
	},
}

func printVersion(v catalog.VersionInfo) {
	switch v.Type {
	case catalog.TypeRelease:
		color.Green("%s\t%s\t%s", v.ID, v.Type, v.ReleaseTime)
	case catalog.TypeSnapshot:
		color.Yellow("%s\t%s\t%s", v.ID, v.Type, v.ReleaseTime)
	default:
		fmt.Printf("%s\t%s\t%s\n", v.ID, v.Type, v.ReleaseTime)
	}
}

func init() {
	rootCmd.AddCommand(versionsCmd)
	versionsCmd.Flags().BoolVar(&latestOnly, "latest", false, "Show only the latest release")
	versionsCmd.Flags().BoolVar(&snapshotOnly, "snapshot", false, "Show only the latest snapshot")
	versionsCmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of versions to list (0 for all)")
}
