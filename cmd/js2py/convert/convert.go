/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package convert

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	js2py "github.com/dburkart/js2py/api"
	"github.com/dburkart/js2py/internal/config"
	"github.com/dburkart/js2py/pkg/common/parse"
	"github.com/dburkart/js2py/pkg/estree"
	"github.com/dburkart/js2py/pkg/proto"
	"github.com/dburkart/js2py/pkg/repl"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Command = &cobra.Command{
	Use:   "convert [file...]",
	Short: "Convert JavaScript files to Python (reads stdin without arguments)",

	RunE: func(cmd *cobra.Command, args []string) error {
		log := config.Logger()
		opts := config.ConversionOptions(log)

		client, err := js2py.NewClient(viper.GetString("js2py.host"), opts)
		if err != nil {
			return errors.Wrap(err, "unable to create client")
		}
		defer client.Close()

		if len(args) == 0 {
			args = []string{"-"}
		}

		sources := make([]Source, 0, len(args))
		for _, name := range args {
			src, err := readSource(name, cmd.InOrStdin())
			if err != nil {
				return err
			}
			sources = append(sources, src)
		}

		outDir := viper.GetString("convert.out-dir")
		if outDir != "" {
			if err := CheckOutputPaths(outDir, sources); err != nil {
				return err
			}
		}

		results := ConvertAll(client, opts, sources)

		failed := 0
		for _, r := range results {
			rlog := log.With().Str("id", r.ID).Str("file", r.Source.Name).Logger()

			if viper.GetBool("convert.dump-ast") {
				dumpAST(cmd.ErrOrStderr(), opts, r.Source)
			}

			if r.Err != nil {
				failed++
				rlog.Error().Err(r.Err).Msg("conversion failed")
				fmt.Fprint(cmd.ErrOrStderr(), FormatError(r.Err, r.Source.Text))
				continue
			}

			if err := writeOutput(cmd.OutOrStdout(), outDir, r); err != nil {
				return err
			}
			rlog.Debug().Dur("elapsed", r.Elapsed).Msg("converted")
		}

		if viper.GetBool("convert.summary") {
			writer := repl.NewOutputWriter(cmd.ErrOrStderr(), viper.GetString("js2py.output"))
			if err := writer.Write(Report(results)); err != nil {
				return err
			}
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d conversions failed", failed, len(results))
		}
		return nil
	},
}

func init() {
	// Flags for this command
	Command.Flags().String("out-dir", "", "Write <name>.py files here instead of printing to stdout")
	Command.Flags().Bool("dump-ast", false, "Print the syntax tree of each input to stderr")
	Command.Flags().Bool("summary", false, "Print a table summarizing the conversions to stderr")

	// Bind flags to viper
	viper.BindPFlag("convert.out-dir", Command.Flags().Lookup("out-dir"))
	viper.BindPFlag("convert.dump-ast", Command.Flags().Lookup("dump-ast"))
	viper.BindPFlag("convert.summary", Command.Flags().Lookup("summary"))
}

type Source struct {
	Name string
	Text string
}

type Result struct {
	ID      string
	Source  Source
	Output  string
	Elapsed time.Duration
	Err     error
}

// ConvertAll converts every source concurrently. Results are returned in the
// order of sources.
func ConvertAll(client js2py.Client, opts js2py.Options, sources []Source) []Result {
	results := make([]Result, len(sources))

	var wg sync.WaitGroup
	for i := range sources {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			src := sources[i]
			results[i] = Result{ID: uuid.NewString(), Source: src}

			start := time.Now()
			resp, err := client.Convert(proto.ConvertRequest{
				Source:      src.Text,
				Input:       opts.Input,
				EcmaVersion: opts.EcmaVersion,
				Strict:      proto.Bool(opts.Strict),
			})
			results[i].Elapsed = time.Since(start)
			if err != nil {
				results[i].Err = err
				return
			}
			results[i].Output = resp.Output
		}(i)
	}
	wg.Wait()

	return results
}

// FormatError renders a conversion failure for a terminal, pointing at the
// source line when the error carries a position.
func FormatError(err error, source string) string {
	var syntaxErr *parse.SyntaxError
	if errors.As(err, &syntaxErr) {
		return syntaxErr.FormatError(source)
	}

	resp := js2py.ErrResponse(err)
	if resp.Line > 0 {
		synthetic := &parse.SyntaxError{
			Position: parse.Position{Line: resp.Line, Column: resp.Column},
			Message:  resp.Message,
		}
		return synthetic.FormatError(source)
	}
	return err.Error() + "\n"
}

// Report summarizes a batch of results as a table.
type Report []Result

func (r Report) Headers() []string {
	return []string{"file", "status", "source", "output", "lines", "elapsed"}
}

func (r Report) Values() [][]string {
	ret := make([][]string, 0, len(r))
	for _, res := range r {
		status := "ok"
		output := "-"
		lines := "-"
		if res.Err != nil {
			status = js2py.ErrResponse(res.Err).Kind
		} else {
			output = humanize.Bytes(uint64(len(res.Output)))
			lines = humanize.Comma(int64(strings.Count(res.Output, "\n") + 1))
		}
		ret = append(ret, []string{
			res.Source.Name,
			status,
			humanize.Bytes(uint64(len(res.Source.Text))),
			output,
			lines,
			res.Elapsed.Round(time.Microsecond).String(),
		})
	}
	return ret
}

func readSource(name string, stdin io.Reader) (Source, error) {
	var data []byte
	var err error

	if name == "-" {
		data, err = io.ReadAll(stdin)
		name = "<stdin>"
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return Source{}, errors.Wrapf(err, "unable to read %s", name)
	}

	return Source{Name: name, Text: string(data)}, nil
}

// OutputPath maps an input file name to its .py file in dir.
func OutputPath(dir, name string) string {
	if name == "<stdin>" {
		name = "stdin"
	}
	base := filepath.Base(name)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, base+".py")
}

// CheckOutputPaths fails when two sources would be written to the same file
// in dir.
func CheckOutputPaths(dir string, sources []Source) error {
	seen := make(map[string]string, len(sources))
	for _, src := range sources {
		path := OutputPath(dir, src.Name)
		if other, ok := seen[path]; ok {
			return fmt.Errorf("%s and %s would both be written to %s", other, src.Name, path)
		}
		seen[path] = src.Name
	}
	return nil
}

func writeOutput(stdout io.Writer, outDir string, r Result) error {
	if outDir == "" {
		_, err := fmt.Fprintln(stdout, r.Output)
		return err
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return errors.Wrapf(err, "unable to create %s", outDir)
	}

	path := OutputPath(outDir, r.Source.Name)
	if err := os.WriteFile(path, []byte(r.Output+"\n"), 0644); err != nil {
		return errors.Wrapf(err, "unable to write %s", path)
	}
	return nil
}

func dumpAST(w io.Writer, opts js2py.Options, src Source) {
	root, err := js2py.NewConverter(opts).Parse(src.Text)
	if err != nil {
		return
	}
	fmt.Fprintf(w, "# %s\n%s", src.Name, estree.Dump(root))
}
