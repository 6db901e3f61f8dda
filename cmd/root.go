/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/orgscope/orgscope/internal/config"
	"github.com/orgscope/orgscope/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	version      string
	date         string
	cfgFile      string
	apiURL       string
	token        string
	logLevel     string
	license      string
	setAsDefault bool
	waitCount    int
	maxDelay     int

	cfg    *config.Config
	logger = zap.NewNop()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "orgscope",
	Short:   "GitHub organization explorer and small typed/concurrent exercises",
	Version: version,

	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewConfigParser()
		v := parser.Viper()
		flags := cmd.Root().PersistentFlags()
		v.BindPFlag("github.api_url", flags.Lookup("api-url"))
		v.BindPFlag("github.token", flags.Lookup("token"))
		v.BindPFlag("log.level", flags.Lookup("log-level"))

		parsed, err := parser.Parse(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to parse config: %w", err)
		}

		if err := parsed.Validate(); err != nil {
			return fmt.Errorf("failed to validate config: %w", err)
		}

		log, err := logging.BuildProduction(parsed.Log.Level)
		if err != nil {
			return fmt.Errorf("failed to build logger: %w", err)
		}

		cfg = parsed
		logger = log
		logger.Debug("configuration loaded", zap.String("config_path", cfgFile), zap.String("api_url", cfg.GitHub.APIURL))
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	logger.Sync()

	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("orgscope:\nversion %s\ndate: %s\n", version, date))

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "GitHub API base URL")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "GitHub token (defaults to $GITHUB_TOKEN)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")
}
