package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"bst_map/components"
	"bst_map/pkg/applog"
)

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "bst_map",
		Usage: "load a key/value dataset into an ordered map and query it",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "TOML file with defaults, flags override it",
				Sources: cli.EnvVars("BST_MAP_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "data",
				Aliases: []string{"d"},
				Usage:   "dataset file, one key,value or key<TAB>value per line",
			},
			&cli.StringFlag{
				Name:  "impl",
				Usage: "map implementation: bst or rbtree",
				Value: components.ImplBST,
			},
			&cli.StringSliceFlag{
				Name:  "lookup",
				Usage: "key to search for, may be repeated",
			},
			&cli.StringSliceFlag{
				Name:  "remove",
				Usage: "key to remove after the lookups, may be repeated",
			},
			&cli.DurationFlag{
				Name:  "progress",
				Usage: "log build progress at this interval, 0 disables it",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
		},
		Action: run,
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	cfg, err := configFrom(cmd)
	if err != nil {
		return err
	}

	logger := applog.WithScope(applog.NewLogger(cfg.Debug), "MAIN")
	report, err := components.Run(cfg, logger)
	if err != nil {
		return err
	}

	logger.Info().
		Str("impl", report.Impl).
		Int("loaded", report.Loaded).
		Int("size", report.Size).
		Msg("done")
	fmt.Println(report.Ordered)
	return nil
}

func configFrom(cmd *cli.Command) (*components.Config, error) {
	cfg := components.DefaultConfig()
	if path := cmd.String("config"); path != "" {
		loaded, err := components.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if cmd.IsSet("data") {
		cfg.DataPath = cmd.String("data")
	}
	if cmd.IsSet("impl") || cfg.Impl == "" {
		cfg.Impl = cmd.String("impl")
	}
	if cmd.IsSet("lookup") {
		cfg.Lookups = cmd.StringSlice("lookup")
	}
	if cmd.IsSet("remove") {
		cfg.Removals = cmd.StringSlice("remove")
	}
	if cmd.IsSet("progress") {
		cfg.Progress = cmd.Duration("progress")
	}
	if cmd.IsSet("debug") {
		cfg.Debug = cmd.Bool("debug")
	}

	return cfg, cfg.Validate()
}
