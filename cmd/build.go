package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/FrancisHerurd/gtaverso/internal/site"
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Builds the static site from the configured content sources",
	Long: `The build command loads posts from the configured content source
(local markdown directory, remote CMS, or both), renders them through the
layouts in './layouts/', copies static assets, and writes the site plus
rss.xml and sitemap.xml into the output directory (default './public/').`,
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := newSource()
		if err != nil {
			return err
		}
		builder := site.NewBuilder(appConfig, source, siteParams)
		return builder.Build(context.Background())
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
