package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/urfave/cli/v3"
)

func pickCommand() *cli.Command {
	return &cli.Command{
		Name:  "pick",
		Usage: "Pick one random anime released in a year range",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "start",
				Aliases: []string{"s"},
				Usage:   "first release year (defaults to sampling.min_year)",
			},
			&cli.IntFlag{
				Name:    "end",
				Aliases: []string{"e"},
				Usage:   "last release year (defaults to sampling.max_year)",
			},
			&cli.IntFlag{
				Name:  "max-attempts",
				Usage: "override sampling.retry.max_attempts",
			},
		},
		Action: runPick,
	}
}

func runPick(ctx context.Context, cmd *cli.Command) error {
	e, err := setupEnv(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	start := int(cmd.Int("start"))
	if !cmd.IsSet("start") {
		start = e.cfg.Sampling.MinYear
	}
	end := int(cmd.Int("end"))
	if !cmd.IsSet("end") {
		end = e.cfg.Sampling.MaxYear
	}

	media, err := e.sampler().SampleRandomMedia(ctx, start, end, int(cmd.Int("max-attempts")))
	if err != nil {
		return err
	}

	return writeOutput(media.Card())
}

func writeOutput(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
