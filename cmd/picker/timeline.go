package main

import (
	"context"

	"github.com/urfave/cli/v3"
)

func timelineCommand() *cli.Command {
	return &cli.Command{
		Name:      "timeline",
		Usage:     "Show the release-ordered series timeline of an anime",
		ArgsUsage: "<anilist-id>",
		Action:    runTimeline,
	}
}

func runTimeline(ctx context.Context, cmd *cli.Command) error {
	e, err := setupEnv(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	timeline, err := e.timeline().FetchTimeline(ctx, cmd.Args().First())
	if err != nil {
		return err
	}

	return writeOutput(timeline.View())
}
