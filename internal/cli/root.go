/*
Copyright © 2026 The bitcore authors
*/
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/bitcore-go/bitcore"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bitcore",
	Short: "Serial communication with automatic connection management",
	Long: `bitcore is a serial communication tool built on a thread-safe
connection layer with bounded retries.

Transient I/O failures are absorbed by reconnecting and retrying up to the
configured retry budget; permanent failures surface immediately. Baud rate,
timeout and retry count can be set per invocation, via environment
variables (BITCORE_*), or in a config file.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.bitcore.yaml)")
	rootCmd.PersistentFlags().IntP("baud", "b", 9600, "baud rate")
	rootCmd.PersistentFlags().DurationP("timeout", "t", time.Second, "per-operation timeout")
	rootCmd.PersistentFlags().IntP("retries", "r", 3, "retry attempts after the first failure")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log connection and retry diagnostics to stderr")

	viper.BindPFlag("baud", rootCmd.PersistentFlags().Lookup("baud"))
	viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))
	viper.BindPFlag("retries", rootCmd.PersistentFlags().Lookup("retries"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".bitcore")
	}

	viper.SetEnvPrefix("bitcore")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// serialOptions translates the resolved CLI configuration into library
// options.
func serialOptions() ([]bitcore.Option, error) {
	opts := []bitcore.Option{
		bitcore.WithBaudRate(viper.GetInt("baud")),
		bitcore.WithTimeout(viper.GetDuration("timeout")),
		bitcore.WithRetries(viper.GetInt("retries")),
	}

	if viper.GetBool("verbose") {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return nil, err
		}
		opts = append(opts, bitcore.WithLogger(logger))
	}

	return opts, nil
}
