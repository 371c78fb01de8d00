package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/sonnes/jsonbig/convert"
	"github.com/sonnes/jsonbig/process"
	"github.com/urfave/cli/v3"
)

func main() {
	root := &cli.Command{
		Name:      "jsonbig",
		Usage:     "Rewrite quoted numeric id/start/end fields in JSON[L] files as unquoted integers",
		ArgsUsage: "<input-file>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output_file",
				Aliases: []string{"o"},
				Usage:   "Output file path (default: input path with a -bigint suffix)",
			},
			&cli.StringFlag{
				Name:  "keys",
				Usage: "Comma-separated object keys to convert",
				Value: strings.Join(convert.DefaultKeys, ","),
			},
			&cli.StringFlag{
				Name:  "log",
				Usage: "Log level: debug, info, warn, error",
				Value: "error",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			level, err := log.ParseLevel(cmd.String("log"))
			if err != nil {
				return ctx, err
			}
			log.SetLevel(level)
			return ctx, nil
		},
		Action: run,
	}

	if err := root.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	input := cmd.Args().First()
	if input == "" {
		return fmt.Errorf("input file is required (usage: jsonbig <input-file> [-o <output-file>])")
	}
	if cmd.Args().Len() > 1 {
		return fmt.Errorf("unexpected argument %q", cmd.Args().Get(1))
	}

	conv := convert.New(convert.Config{Keys: splitKeys(cmd.String("keys"))})

	stats, err := process.Run(input, cmd.String("output_file"), conv)
	if err != nil {
		return err
	}
	if stats != nil {
		printSummary(os.Stdout, stats)
	}
	return nil
}

// splitKeys parses the --keys flag, dropping empty entries.
func splitKeys(s string) []string {
	var keys []string
	for _, k := range strings.Split(s, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}
