/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	js2py "github.com/dburkart/js2py/api"
	"github.com/dburkart/js2py/cmd/js2py/convert"
	"github.com/dburkart/js2py/internal/config"
	"github.com/dburkart/js2py/pkg/estree"
	"github.com/dburkart/js2py/pkg/proto"
	"github.com/dburkart/js2py/pkg/repl"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Command = &cobra.Command{
	Use:   "repl",
	Short: "Interactive terminal for converting JavaScript snippets",

	Run: func(cmd *cobra.Command, args []string) {
		log := config.Logger()
		opts := config.ConversionOptions(log)

		output := viper.GetString("js2py.output")
		if len(filterStringSlice(repl.Formats, output)) != 1 {
			log.Fatal().Msg("unsupported output format")
		}

		host := viper.GetString("js2py.host")
		client, err := js2py.NewClient(host, opts)
		if err != nil {
			log.Fatal().Err(err).Str("host", host).Msg("unable to create client")
		}
		defer client.Close()

		readlinePrompt(client, opts, log)
	},
}

func filterStringSlice(s []string, prefix string) []string {
	retList := []string{}
	for i := range s {
		if strings.HasPrefix(s[i], prefix) {
			retList = append(retList, s[i])
		}
	}
	return retList
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func makeVersionOptions() []readline.PrefixCompleterInterface {
	versions := []string{"3", "5", "6", "2015", "2017", "2020", "2022", "2024"}

	ret := []readline.PrefixCompleterInterface{}
	for i := range versions {
		ret = append(ret, readline.PcItem(versions[i]))
	}
	return ret
}

func readlinePrompt(c js2py.Client, opts js2py.Options, log zerolog.Logger) {
	// Configure the completer
	completer := readline.NewPrefixCompleter(
		readline.PcItem("help"),
		readline.PcItem("exit"),
		readline.PcItem(":ast"),
		readline.PcItem(":strict", readline.PcItem("on"), readline.PcItem("off")),
		readline.PcItem(":version", makeVersionOptions()...),
		readline.PcItem(":input", readline.PcItem(proto.InputJavaScript), readline.PcItem(proto.InputESTree)),
	)

	// Setup the readline executor
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[32mjs>\033[0m ",
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	session := repl.NewSession(opts.Input, opts.EcmaVersion, opts.Strict)

	// Handle input
	for {
		ln := rl.Line()
		if ln.CanContinue() {
			// ^C drops a partially typed block
			session.Reset()
			rl.SetPrompt("\033[32mjs>\033[0m ")
			continue
		} else if ln.CanBreak() {
			break
		}

		if !session.Pending() {
			command, err := repl.ParseREPLCommand([]byte(ln.Line))
			if err != nil {
				log.Error().Err(err).Send()
				continue
			}

			switch command.Type {
			case repl.CommandHelp:
				fmt.Println("usage:")
				fmt.Println(completer.Tree("    "))
				continue
			case repl.CommandExit:
				return
			case repl.CommandSource:
			default:
				session.Apply(command)
				printSettings(os.Stdout, session)
				continue
			}
		}

		source, done := session.Feed(ln.Line)
		if !done {
			if session.Pending() {
				rl.SetPrompt("\033[32m..>\033[0m ")
			}
			continue
		}
		rl.SetPrompt("\033[32mjs>\033[0m ")

		if session.DumpAST {
			dumpOpts := opts
			dumpOpts.Input = session.Input
			dumpOpts.EcmaVersion = session.EcmaVersion
			if root, err := js2py.NewConverter(dumpOpts).Parse(source); err == nil {
				fmt.Print(estree.Dump(root))
			}
		}

		resp, err := c.Convert(session.Request(source))
		if err != nil {
			fmt.Print(convert.FormatError(err, source))
			continue
		}
		fmt.Println(resp.Output)
	}
	rl.Clean()
}

func printSettings(w io.Writer, s *repl.Session) {
	fmt.Fprintf(w, "input=%s ecmaVersion=%d strict=%t ast=%t\n", s.Input, s.EcmaVersion, s.Strict, s.DumpAST)
}
