/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server

import (
	"github.com/dburkart/js2py/internal/config"
	"github.com/dburkart/js2py/pkg/server"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Command = &cobra.Command{
	Use:   "server",
	Short: "Serve conversions over HTTP",

	Run: func(cmd *cobra.Command, args []string) {
		logger := config.Logger()

		srv := server.New(
			logger,
			config.ConversionOptions(logger),
			viper.GetInt("js2py.port"),
			viper.GetInt("js2py.prom-port"),
		)

		// Serve the metrics endpoint
		go func() {
			if err := srv.ServeMetrics(); err != nil {
				logger.Error().Err(err).Msg("metrics endpoint stopped")
			}
		}()

		if err := srv.ServeConversions(); err != nil {
			logger.Fatal().Err(err).Msg("error listening and serving")
		}
	},
}

func init() {
	// Flags for this command
	Command.Flags().IntP("port", "p", 8001, "Port to serve conversions on")
	Command.Flags().Int("prom-port", 2112, "Set the port for /metrics")

	// Bind flags to viper
	viper.BindPFlag("js2py.port", Command.Flags().Lookup("port"))
	viper.BindPFlag("js2py.prom-port", Command.Flags().Lookup("prom-port"))
}
