package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voltcheck/voltcheck/internal/client"
)

func NewCmdConfigure() *cobra.Command {
	o := DefaultGlobalOptions()
	cmd := &cobra.Command{
		Use:   "configure",
		Short: "Store the server address in the client config file.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if o.ServerUrl == "" {
				return fmt.Errorf("--server-url is required")
			}
			if err := client.WriteConfig(o.ConfigFilePath, o.ServerUrl); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", o.ConfigFilePath)
			return nil
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}
