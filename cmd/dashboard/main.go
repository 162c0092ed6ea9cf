package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kubev2v/migration-dashboard/internal/cli"
	"github.com/kubev2v/migration-dashboard/internal/config"
	"github.com/kubev2v/migration-dashboard/pkg/log"
)

func main() {
	logLvl := log.ParseLevel("info")
	if cfg, err := config.New(); err == nil {
		logLvl = log.ParseLevel(cfg.Service.LogLevel)
	}
	logger := log.InitLog(logLvl)
	defer func() { _ = logger.Sync() }()
	undo := zap.ReplaceGlobals(logger)
	defer undo()

	command := NewDashboardCommand()
	if err := command.Execute(); err != nil {
		zap.S().Error(err)
		os.Exit(1)
	}
}

func NewDashboardCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard [flags] [options]",
		Short: "dashboard turns virtualization inventory exports into migration analytics.",
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
			os.Exit(1)
		},
	}
	cmd.AddCommand(cli.NewCmdAnalyze())
	cmd.AddCommand(cli.NewCmdSources())
	cmd.AddCommand(cli.NewCmdVersion())

	return cmd
}
