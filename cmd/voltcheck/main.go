package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/voltcheck/voltcheck/internal/cli"
)

func main() {
	command := NewVoltcheckCommand()
	if err := command.Execute(); err != nil {
		os.Exit(1)
	}
}

func NewVoltcheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "voltcheck [flags] [options]",
		Short: "voltcheck runs field-test calculations and manages test reports.",
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
			os.Exit(1)
		},
	}
	cmd.AddCommand(cli.NewCmdCalc())
	cmd.AddCommand(cli.NewCmdGet())
	cmd.AddCommand(cli.NewCmdCreate())
	cmd.AddCommand(cli.NewCmdDelete())
	cmd.AddCommand(cli.NewCmdRender())
	cmd.AddCommand(cli.NewCmdConfigure())
	cmd.AddCommand(cli.NewCmdInfo())
	cmd.AddCommand(cli.NewCmdVersion())

	return cmd
}
