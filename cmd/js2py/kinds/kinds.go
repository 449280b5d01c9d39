/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package kinds

import (
	js2py "github.com/dburkart/js2py/api"
	"github.com/dburkart/js2py/internal/config"
	"github.com/dburkart/js2py/pkg/proto"
	"github.com/dburkart/js2py/pkg/repl"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Command = &cobra.Command{
	Use:   "kinds",
	Short: "List the syntax node kinds the converter can print",

	RunE: func(cmd *cobra.Command, args []string) error {
		log := config.Logger()

		client, err := js2py.NewClient(viper.GetString("js2py.host"), config.ConversionOptions(log))
		if err != nil {
			return errors.Wrap(err, "unable to create client")
		}
		defer client.Close()

		kinds, err := client.Kinds()
		if err != nil {
			return err
		}

		writer := repl.NewOutputWriter(cmd.OutOrStdout(), viper.GetString("js2py.output"))
		return writer.Write(proto.KindsResponse{Kinds: kinds})
	},
}
