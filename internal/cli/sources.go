package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kubev2v/migration-dashboard/internal/source"
)

type SourcesOptions struct{}

func NewCmdSources() *cobra.Command {
	o := &SourcesOptions{}
	cmd := &cobra.Command{
		Use:   "sources",
		Short: "List the supported source platforms",
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.Run(cmd.Context(), args)
		},
	}
	return cmd
}

func (o *SourcesOptions) Run(ctx context.Context, args []string) error {
	for _, platform := range source.Platforms() {
		normalizer, err := source.NewNormalizer(platform)
		if err != nil {
			return err
		}
		fmt.Printf("%-10s %s\n", normalizer.Name(), normalizer.DisplayName())
	}
	return nil
}
