package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/voltcheck/voltcheck/internal/client"
)

const defaultServerUrl = "http://localhost:3443"

type GlobalOptions struct {
	ServerUrl      string
	ConfigFilePath string

	out io.Writer
}

func DefaultGlobalOptions() GlobalOptions {
	return GlobalOptions{
		ConfigFilePath: client.DefaultConfigPath(),
	}
}

func (o *GlobalOptions) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&o.ServerUrl, "server-url", "u", o.ServerUrl, "Address of the server. Overrides the config file.")
	fs.StringVarP(&o.ConfigFilePath, "config", "c", o.ConfigFilePath, "Path of the client config file")
}

func (o *GlobalOptions) Complete(cmd *cobra.Command, args []string) error {
	o.out = cmd.OutOrStdout()
	return nil
}

func (o *GlobalOptions) Validate(args []string) error {
	return nil
}

// Client connects to --server-url, to the server of the config file, or to the local default.
func (o *GlobalOptions) Client() (*client.Client, error) {
	if o.ServerUrl != "" {
		return client.NewFromConfig(&client.Config{Service: client.Service{Server: o.ServerUrl}})
	}

	cfg, err := client.ParseConfigFile(o.ConfigFilePath)
	switch {
	case err == nil:
		return client.NewFromConfig(cfg)
	case errors.Is(err, fs.ErrNotExist):
		return client.NewFromConfig(&client.Config{Service: client.Service{Server: defaultServerUrl}})
	default:
		return nil, fmt.Errorf("loading %s: %w", o.ConfigFilePath, err)
	}
}

func (o *GlobalOptions) writer() io.Writer {
	if o.out == nil {
		return io.Discard
	}
	return o.out
}
