// Package stone provides the server command line interface.
package stone

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.minekube.com/stone/pkg/config"
	"go.minekube.com/stone/pkg/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "stone",
	Version: version.String(),
	Short:   "Stone is an extensible Minecraft server runtime.",
	Long: `A plugin host for Minecraft Bedrock style servers with a
fine-grained permission model, compiled-in Go plugins and a
brigadier command tree.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
		defer func() { signal.Stop(sig); close(sig) }()

		ctx, cancel := context.WithCancel(cmd.Context())
		go func() {
			if _, ok := <-sig; !ok {
				return
			}
			cancel()
		}()
		return Run(ctx)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "The config file to use")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug mode")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	_ = viper.BindPFlag("debug", rootCmd.Flags().Lookup("debug"))

	viper.SetEnvPrefix("STONE")
	viper.AutomaticEnv() // read in environment variables that match
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	config.SetDefaults(viper.GetViper())

	viper.SetConfigFile(rootCmd.Flags().Lookup("config").Value.String())
	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}
