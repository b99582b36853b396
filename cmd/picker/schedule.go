package main

import (
	"context"
	"errors"

	"github.com/urfave/cli/v3"

	"anime_picker/internal/scheduler"
)

func scheduleCommand() *cli.Command {
	return &cli.Command{
		Name:  "schedule",
		Usage: "Pick an anime on a fixed interval and publish each pick",
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:  "interval",
				Usage: "time between picks (overrides schedule.interval)",
			},
		},
		Action: runSchedule,
	}
}

func runSchedule(ctx context.Context, cmd *cli.Command) error {
	e, err := setupEnv(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	if e.publisher == nil {
		e.logger.Warn("rabbitmq.url is empty, picks will only be logged")
	}

	interval := e.cfg.Schedule.Interval
	if d := cmd.Duration("interval"); d > 0 {
		interval = d
	}

	sampler := e.sampler()
	filter, err := sampler.Bounds().NewFilter(e.cfg.Schedule.StartYear, e.cfg.Schedule.EndYear)
	if err != nil {
		return err
	}

	sched := scheduler.NewScheduler(sampler, filter, interval, e.logger)
	if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
