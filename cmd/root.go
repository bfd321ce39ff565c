package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/FrancisHerurd/gtaverso/internal/config"
	"github.com/FrancisHerurd/gtaverso/internal/content"
	"github.com/FrancisHerurd/gtaverso/internal/content/local"
	"github.com/FrancisHerurd/gtaverso/internal/content/wp"
)

var cfgFile string
var appConfig config.Config
var siteParams map[string]interface{}

var rootCmd = &cobra.Command{
	Use:   "gtaverso",
	Short: "gtaverso builds and serves the fan gaming-news portal",
	Long: `gtaverso aggregates posts from a local markdown directory and a
headless CMS, normalizes them into one model, and builds a static site
with feeds from user-supplied layouts.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
}

// Execute runs the CLI. params is the optional site.yaml map loaded by
// main, exposed to templates as .Site.Params.
func Execute(params map[string]interface{}) {
	siteParams = params
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
}

func initializeConfig(_ *cobra.Command) error {
	v := viper.New()

	v.SetDefault("siteTitle", "GTAverso")
	v.SetDefault("siteDescription", "Noticias, guias y trucos de la saga GTA")
	v.SetDefault("baseURL", "http://localhost:1313")
	v.SetDefault("outputDir", "public")
	v.SetDefault("contentDir", "content")
	v.SetDefault("layoutsDir", "layouts")
	v.SetDefault("staticDir", "static")
	v.SetDefault("source", "local")
	v.SetDefault("cms.timeout", "10s")
	v.SetDefault("cms.revalidate", "60s")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("GTAVERSO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if cfgFile != "" {
				return fmt.Errorf("config file %s not found: %w", cfgFile, err)
			}
		} else {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := v.Unmarshal(&appConfig); err != nil {
		return fmt.Errorf("unable to decode config: %w", err)
	}

	return nil
}

// newSource builds the content source the config selects: "local",
// "wp", or "all" (local wins on collisions). The CMS client validates
// its endpoint here, at startup, not on the first request.
func newSource() (content.Source, error) {
	switch appConfig.Source {
	case "local":
		return local.New(appConfig.ContentDir), nil
	case "wp":
		return newCMSClient()
	case "all":
		client, err := newCMSClient()
		if err != nil {
			return nil, err
		}
		return content.NewMulti(local.New(appConfig.ContentDir), client), nil
	default:
		return nil, fmt.Errorf("unknown content source %q (want local, wp, or all)", appConfig.Source)
	}
}

func newCMSClient() (*wp.Client, error) {
	return wp.New(wp.Config{
		Endpoint:   appConfig.CMS.Endpoint,
		Timeout:    appConfig.CMS.Timeout,
		Revalidate: appConfig.CMS.Revalidate,
	})
}
