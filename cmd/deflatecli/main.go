// SPDX-License-Identifier: MIT
// Source: github.com/voxflate/deflate

// Command deflatecli compresses stdin to stdout using the deflate package.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/voxflate/deflate"
)

var log = logrus.New()

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		level      int
		windowBits int
		memLevel   int
		strategy   string
		gzip       bool
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "deflatecli",
		Short: "Compress stdin to stdout with a raw deflate or gzip stream",
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}

			strat, err := parseStrategy(strategy)
			if err != nil {
				return err
			}
			opts := &deflate.Options{
				Level:      level,
				WindowBits: windowBits,
				MemLevel:   memLevel,
				Strategy:   strat,
			}

			log.WithFields(logrus.Fields{
				"level":      level,
				"windowBits": windowBits,
				"memLevel":   memLevel,
				"strategy":   strategy,
				"gzip":       gzip,
			}).Debug("starting compression")

			return run(cmd.InOrStdin(), cmd.OutOrStdout(), opts, gzip)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&level, "level", "l", 6, "compression level 0-9")
	flags.IntVar(&windowBits, "window-bits", 15, "log2 sliding window size, 9-15")
	flags.IntVar(&memLevel, "mem-level", 8, "log2 hash/literal buffer scale, 1-9")
	flags.StringVarP(&strategy, "strategy", "s", "default", "default|filtered|huffman-only|rle|fixed")
	flags.BoolVarP(&gzip, "gzip", "z", false, "wrap the stream in gzip framing")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log debug details to stderr")

	return cmd
}

func parseStrategy(s string) (deflate.Strategy, error) {
	switch s {
	case "default", "":
		return deflate.StrategyDefault, nil
	case "filtered":
		return deflate.StrategyFiltered, nil
	case "huffman-only":
		return deflate.StrategyHuffmanOnly, nil
	case "rle":
		return deflate.StrategyRLE, nil
	case "fixed":
		return deflate.StrategyFixed, nil
	default:
		return 0, fmt.Errorf("deflatecli: unknown strategy %q", s)
	}
}

func run(in io.Reader, out io.Writer, opts *deflate.Options, gzip bool) error {
	if gzip {
		zw, err := deflate.NewGzipWriter(out, opts)
		if err != nil {
			return err
		}
		if _, err := io.Copy(zw, in); err != nil {
			return err
		}
		return zw.Close()
	}

	zw, err := deflate.NewWriter(out, opts)
	if err != nil {
		return err
	}
	if _, err := io.Copy(zw, in); err != nil {
		return err
	}
	return zw.Close()
}
