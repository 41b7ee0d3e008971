// Command skelgo computes the straight skeleton of a polygon read
// from a JSON file and prints the resulting subtrees. It is an
// external collaborator around the skel package's core — no part of
// the algorithm lives here.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-clipper/straight-skeleton/skel"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		verbose    bool
		format     string
	)

	cmd := &cobra.Command{
		Use:   "skelgo <polygon.json>",
		Short: "Compute the straight skeleton of a polygon",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if !cmd.Flags().Changed("verbose") && cfg.Verbose {
				verbose = true
			}
			if !cmd.Flags().Changed("format") && cfg.Format != "" {
				format = cfg.Format
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			outer, holes, err := parsePolygonFile(data)
			if err != nil {
				return err
			}

			var opts []skel.Option
			if verbose {
				opts = append(opts, skel.WithLogging(os.Stderr))
			}

			subtrees, err := skel.Skeletonize(outer, holes, opts...)
			if err != nil {
				return fmt.Errorf("skeletonize: %w", err)
			}

			return printSubtrees(cmd.OutOrStdout(), subtrees, format)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "optional YAML config file")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "enable algorithm trace logging")
	cmd.Flags().StringVar(&format, "format", "text", "output format: text or json")

	return cmd
}

func printSubtrees(w io.Writer, subtrees []skel.Subtree, format string) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(subtrees)
	}

	for _, st := range subtrees {
		fmt.Fprintf(w, "source (%.3f, %.3f) height=%.3f sinks=%v\n", st.Source.X, st.Source.Y, st.Height, st.Sinks)
	}
	return nil
}
