package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thoas/go-funk"
	"go.uber.org/zap"

	"github.com/kubev2v/migration-dashboard/internal/analytics"
	"github.com/kubev2v/migration-dashboard/internal/config"
	"github.com/kubev2v/migration-dashboard/internal/source"
)

type AnalyzeOptions struct {
	SourcePlatform string
	SheetName      string
	OutputPath     string
}

func DefaultAnalyzeOptions() *AnalyzeOptions {
	return &AnalyzeOptions{
		SourcePlatform: "",
		SheetName:      "",
		OutputPath:     "",
	}
}

func NewCmdAnalyze() *cobra.Command {
	o := DefaultAnalyzeOptions()
	cmd := &cobra.Command{
		Use:   "analyze [flags] INPUT_FILE",
		Short: "Process a virtualization export and emit the analytics bundle as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			if err := o.Validate(args); err != nil {
				return err
			}
			return o.Run(cmd.Context(), args)
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *AnalyzeOptions) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&o.SourcePlatform, "source", "s", o.SourcePlatform, "Source platform of the export (rhv, vmware)")
	fs.StringVar(&o.SheetName, "sheet", o.SheetName, "Workbook sheet to read (defaults to the platform's usual sheet)")
	fs.StringVarP(&o.OutputPath, "output", "o", o.OutputPath, "Write the bundle to this file instead of stdout")
}

func (o *AnalyzeOptions) Complete(cmd *cobra.Command, args []string) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}
	if o.SourcePlatform == "" {
		o.SourcePlatform = cfg.Service.DefaultSource
	}
	if o.SheetName == "" {
		o.SheetName = cfg.Service.SheetName
	}
	if o.SheetName == "" && o.SourcePlatform == source.PlatformVMware {
		// RVTools exports keep per-VM data on the vInfo sheet.
		o.SheetName = "vInfo"
	}
	return nil
}

func (o *AnalyzeOptions) Validate(args []string) error {
	if !funk.ContainsString(source.Platforms(), o.SourcePlatform) {
		return fmt.Errorf("unknown source platform %q (supported: %v)", o.SourcePlatform, source.Platforms())
	}
	if _, err := os.Stat(args[0]); err != nil {
		return fmt.Errorf("cannot read input file: %w", err)
	}
	return nil
}

func (o *AnalyzeOptions) Run(ctx context.Context, args []string) error {
	log := zap.S().Named("analyze")

	pipeline, err := analytics.NewPipeline(o.SourcePlatform)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	if !source.IsExcelFile(content) {
		return fmt.Errorf("%s is not an Excel workbook", args[0])
	}

	table, err := source.LoadWorkbook(content, o.SheetName)
	if err != nil {
		return err
	}

	bundle, err := pipeline.Run(table)
	if err != nil {
		return err
	}

	log.Infof("source platform: %s", bundle.SourceDisplayName)
	log.Infof("loaded %d VMs, %d vCPUs, %d GB memory",
		bundle.Stats.TotalVMs, bundle.Stats.TotalCPUs, bundle.Stats.TotalMemoryGB)
	if bundle.HasDateData {
		log.Infof("date data available for trends")
	} else {
		log.Infof("no date data, trends will be unavailable")
	}

	encoded, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode bundle: %w", err)
	}

	if o.OutputPath == "" {
		fmt.Println(string(encoded))
		return nil
	}
	if err := os.WriteFile(o.OutputPath, encoded, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", o.OutputPath, err)
	}
	log.Infof("bundle written to %s", o.OutputPath)
	return nil
}
