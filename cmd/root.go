package cmd

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kasuboski/vodz/pkg/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	cfgFile string
	envFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "vodz",
	Short: "vodz cli",
	Long:  `vodz keeps a local catalog of an xtream provider's movies enriched with TMDB metadata`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
}

const (
	defaultTmdbTimeout   = time.Second * 10
	defaultXtreamTimeout = time.Second * 30
)

func initConfig() {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Get().Warnw("failed to load env file", zap.String("file", envFile), zap.Error(err))
	}

	if _, err := os.Stat(cfgFile); err == nil {
		viper.SetConfigFile(cfgFile)
	}

	viper.SetEnvPrefix("VODZ")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", ""))
	viper.AutomaticEnv()

	viper.SetDefault("tmdb.scheme", "https")
	viper.SetDefault("tmdb.host", "api.themoviedb.org")
	viper.SetDefault("tmdb.apiKey", "")
	viper.SetDefault("tmdb.backoff", time.Second)
	viper.SetDefault("tmdb.maxRetries", 3)
	viper.SetDefault("tmdb.timeout", defaultTmdbTimeout)
	viper.SetDefault("tmdb.language", "")

	viper.SetDefault("xtream.baseURL", "")
	viper.SetDefault("xtream.username", "")
	viper.SetDefault("xtream.password", "")
	viper.SetDefault("xtream.timeout", defaultXtreamTimeout)

	viper.SetDefault("server.port", 8080)

	viper.SetDefault("storage.filePath", "vodz.sqlite")

	viper.SetDefault("manager.lockFile", "vodz.lock")
	viper.SetDefault("manager.jobs.fullSync", time.Duration(0))
}
