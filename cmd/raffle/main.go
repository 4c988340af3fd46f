package main

import (
	"context"
	"fmt"
	"os"
	"raffle-tracker/config"
	"raffle-tracker/internal/app"
	"raffle-tracker/internal/cli"
	"raffle-tracker/pkg/logger"
)

func main() {
	root := cli.NewRootCommand(func(ctx context.Context) (*app.Application, error) {
		cfg, err := config.LoadConfig()
		if err != nil {
			return nil, err
		}
		// CLI 輸出給人看，log 只留 warn 以上
		if err := logger.SetLevel("warn"); err != nil {
			return nil, err
		}
		return app.Open(ctx, cfg, logger.WithComponent("cli"))
	})

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.GetExitCode(err))
	}
}
