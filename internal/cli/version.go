package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kubev2v/migration-dashboard/pkg/version"
)

type VersionOptions struct{}

func NewCmdVersion() *cobra.Command {
	o := &VersionOptions{}
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print dashboard version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.Run(cmd.Context(), args)
		},
	}
	return cmd
}

func (o *VersionOptions) Run(ctx context.Context, args []string) error {
	fmt.Printf("Dashboard Version: %s\n", version.Get())
	return nil
}
