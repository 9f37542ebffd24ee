package commands

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"chartleap/internal/domain"
	"chartleap/internal/render"
	"chartleap/internal/store"
)

func plotCmd() *cobra.Command {
	var (
		exprs  []string
		file   string
		format string
		out    string
		width  float64
		height float64
	)
	cmd := &cobra.Command{
		Use:   "plot [EQUATION...]",
		Short: "Plot equations as plotly JSON or an image",
		Long: "Plot every equation given as an argument, with -e, or one per line\n" +
			"from -f (use - for stdin). Equations that fail are reported on stderr\n" +
			"and the rest are still plotted.",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := append(append([]string(nil), args...), exprs...)
			if file != "" {
				lines, err := readEquations(cmd.InOrStdin(), file)
				if err != nil {
					return err
				}
				raw = append(raw, lines...)
			}
			if !cmd.Flags().Changed("format") && out != "" {
				if ext := strings.TrimPrefix(filepath.Ext(out), "."); ext == "json" || render.SupportsFormat(ext) {
					format = ext
				}
			}
			if format != "json" && !render.SupportsFormat(format) {
				return fmt.Errorf("unknown format %q (want json, %s)", format, strings.Join(render.Formats, ", "))
			}

			res, err := runBatch(cmd, raw)
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			if format == "json" {
				b, err := json.MarshalIndent(res, "", "  ")
				if err != nil {
					return err
				}
				buf.Write(append(b, '\n'))
			} else if err := render.New(width, height).Render(&buf, res, format); err != nil {
				return err
			}

			if out == "" || out == "-" {
				_, err = cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}
			if err := store.WriteFile(out, buf.Bytes(), 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d trace(s) to %s\n", len(res.Traces), out)
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&exprs, "expr", "e", nil, "equation to plot (repeatable)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "read equations one per line from FILE (- for stdin)")
	cmd.Flags().StringVar(&format, "format", "json", "output format: json, png, svg, pdf or eps")
	cmd.Flags().StringVarP(&out, "output", "o", "", "write to PATH instead of stdout")
	cmd.Flags().Float64Var(&width, "width", 6, "image width in inches")
	cmd.Flags().Float64Var(&height, "height", 6, "image height in inches")
	return cmd
}

// runBatch plots raw, reports failed equations on stderr and fails when
// nothing could be plotted.
func runBatch(cmd *cobra.Command, raw []string) (domain.PlotResult, error) {
	w, err := appWire()
	if err != nil {
		return domain.PlotResult{}, err
	}
	res, err := w.Plots.Plot(domain.NormalizeEquations(raw))
	if err != nil {
		return domain.PlotResult{}, err
	}
	for _, rec := range res.Errors {
		fmt.Fprintln(cmd.ErrOrStderr(), rec.String())
	}
	if res.Empty() {
		msg := res.Message
		if msg == "" {
			msg = domain.MsgNothingPlotted
		}
		return res, errors.New(msg)
	}
	return res, nil
}

func readEquations(stdin io.Reader, path string) ([]string, error) {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}
