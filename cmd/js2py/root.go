/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package js2py

import (
	"fmt"
	"os"

	"github.com/dburkart/js2py/cmd/js2py/convert"
	"github.com/dburkart/js2py/cmd/js2py/kinds"
	"github.com/dburkart/js2py/cmd/js2py/repl"
	"github.com/dburkart/js2py/cmd/js2py/server"
	"github.com/dburkart/js2py/internal/config"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	Version        = "develop"
	CommitHash     = "n/a"
	BuildTimestamp = "n/a"

	rootCmd = &cobra.Command{
		Use:   "js2py",
		Short: "js2py translates a subset of JavaScript into Python",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initLogging()
			initLogLevel()
			initConfig(cmd.Root().PersistentFlags().Lookup("config").Value.String())
			initLogLevel()
			traceConfig()
		},
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	// Configure the root binary options
	rootCmd.PersistentFlags().CountP("verbose", "v", "-v for debug logs (-vv for trace)")
	rootCmd.PersistentFlags().Bool("local", true, "Configures the logger to print readable logs")
	rootCmd.PersistentFlags().StringP("host", "H", "local", "Converter to use: local or js2py://<host:port>")
	rootCmd.PersistentFlags().StringP("output", "o", "text", "Output format of tables [csv, json, text]")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the js2py config file (default ./config.toml)")
	config.BindConversionFlags(rootCmd.PersistentFlags())

	// Bind viper config to the root flags
	viper.BindPFlag("js2py.local", rootCmd.PersistentFlags().Lookup("local"))
	viper.BindPFlag("js2py.verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("js2py.host", rootCmd.PersistentFlags().Lookup("host"))
	viper.BindPFlag("js2py.output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	rootCmd.SetVersionTemplate(fmt.Sprintf("js2py version: %s git_commit: %s build_time: %s\n", Version, CommitHash, BuildTimestamp))

	viper.AutomaticEnv()

	// Register commands on the root binary command
	for _, cmd := range []*cobra.Command{convert.Command, repl.Command, server.Command, kinds.Command} {
		cmd.Version = rootCmd.Version
		rootCmd.AddCommand(cmd)
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("root command failed")
		os.Exit(1)
	}
}
