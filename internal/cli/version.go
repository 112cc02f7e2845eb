package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voltcheck/voltcheck/pkg/version"
)

type VersionOptions struct{}

func DefaultVersionOptions() *VersionOptions {
	return &VersionOptions{}
}

func NewCmdVersion() *cobra.Command {
	o := DefaultVersionOptions()
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print voltcheck version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "voltcheck Version: %s\n", o.Run(cmd.Context()))
			return nil
		},
	}
	return cmd
}

func (o *VersionOptions) Run(ctx context.Context) string {
	return version.Get().String()
}
