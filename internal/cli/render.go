package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thoas/go-funk"
)

var legalRenderFormats = []string{"html", "csv", "xlsx"}

type RenderOptions struct {
	GlobalOptions

	Format  string
	OutFile string
}

func DefaultRenderOptions() *RenderOptions {
	return &RenderOptions{
		GlobalOptions: DefaultGlobalOptions(),
		Format:        "html",
	}
}

func NewCmdRender() *cobra.Command {
	o := DefaultRenderOptions()
	cmd := &cobra.Command{
		Use:   "render report/ID",
		Short: "Download the printable rendering of a report.",
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

func (o *RenderOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.StringVarP(&o.Format, "format", "f", o.Format, fmt.Sprintf("Output format. One of: (%s).", strings.Join(legalRenderFormats, ", ")))
	fs.StringVar(&o.OutFile, "out", o.OutFile, "File to write the report to. Defaults to report-ID.FORMAT")
}

func (o *RenderOptions) Complete(cmd *cobra.Command, args []string) error {
	if err := o.GlobalOptions.Complete(cmd, args); err != nil {
		return err
	}
	o.Format = strings.ToLower(o.Format)
	return nil
}

func (o *RenderOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}

	kind, id, err := parseAndValidateKindId(args[0])
	if err != nil {
		return err
	}
	if kind != ReportKind || id == nil {
		return fmt.Errorf("only a single report can be rendered: report/ID")
	}
	if !funk.ContainsString(legalRenderFormats, o.Format) {
		return fmt.Errorf("format must be one of %s", strings.Join(legalRenderFormats, ", "))
	}
	return nil
}

func (o *RenderOptions) Run(ctx context.Context, args []string) error {
	c, err := o.Client()
	if err != nil {
		return fmt.Errorf("creating client: %w", err)
	}

	_, id, err := parseAndValidateKindId(args[0])
	if err != nil {
		return err
	}

	content, err := c.RenderReport(ctx, *id, o.Format)
	if err != nil {
		return fmt.Errorf("rendering report/%s: %w", id, err)
	}

	outFile := o.OutFile
	if outFile == "" {
		outFile = fmt.Sprintf("report-%s.%s", id, o.Format)
	}
	if err := os.WriteFile(outFile, content, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", outFile, err)
	}
	fmt.Fprintf(o.writer(), "%s\n", outFile)
	return nil
}
