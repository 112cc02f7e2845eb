package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	api "github.com/voltcheck/voltcheck/api/v1alpha1"
	"github.com/voltcheck/voltcheck/pkg/version"
)

type InfoOptions struct {
	GlobalOptions
	Output string
	Remote bool
}

func DefaultInfoOptions() *InfoOptions {
	return &InfoOptions{
		GlobalOptions: DefaultGlobalOptions(),
	}
}

func NewCmdInfo() *cobra.Command {
	o := DefaultInfoOptions()
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Print voltcheck information",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			if err := validateOutput(o.Output); err != nil {
				return err
			}
			return o.Run(cmd.Context())
		},
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *InfoOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)
	fs.StringVarP(&o.Output, "output", "o", o.Output, fmt.Sprintf("Output format. One of: (%s).", strings.Join(legalOutputTypes, ", ")))
	fs.BoolVar(&o.Remote, "remote", o.Remote, "Get information from the server")
}

func (o *InfoOptions) Run(ctx context.Context) error {
	versionInfo := version.Get()
	info := api.Info{GitCommit: versionInfo.GitCommit, VersionName: versionInfo.GitVersion}
	source := "Local CLI"

	if o.Remote {
		c, err := o.Client()
		if err != nil {
			return fmt.Errorf("creating client: %w", err)
		}
		remote, err := c.Info(ctx)
		if err != nil {
			return fmt.Errorf("failed to get remote info: %w", err)
		}
		info = *remote
		source = "Server"
	}

	w := o.writer()
	if done, err := printStructured(w, o.Output, info); done {
		return err
	}
	fmt.Fprintf(w, "voltcheck %s Information:\n", source)
	fmt.Fprintf(w, "  Version Name: %s\n", info.VersionName)
	fmt.Fprintf(w, "  Git Commit:   %s\n", info.GitCommit)
	return nil
}
