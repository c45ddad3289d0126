// Package setup holds commands that prepare a machine for sage.
package setup

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/sage/internal/cli"
	"github.com/thenoetrevino/sage/internal/config"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		Long: `Write the default configuration, including every key mapping and the
theme colors, so it can be edited by hand.

The file goes to $XDG_CONFIG_HOME/sage/config.yaml, or
~/.config/sage/config.yaml. An existing file is kept unless --force is given.

Examples:
  sage init

  # Start over from the defaults
  sage init --force
`,
		Args: cli.ExactArgs(0),
		RunE: runInit,
	}
	cmd.Flags().Bool("force", false, "Overwrite an existing config file")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	f := cli.Formatter(cmd)

	path, err := config.Path()
	if err != nil {
		return cli.Fail(f, "ERROR", err)
	}

	_, err = os.Stat(path)
	switch {
	case err == nil && !force:
		return cli.Fail(f, "CONFIG_EXISTS", &cli.ExitCodeError{
			Code: cli.ExitValidation,
			Err:  fmt.Errorf("%s already exists, use --force to overwrite", path),
		})
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return cli.Fail(f, "ERROR", err)
	}

	if err := config.Default().Save(); err != nil {
		return cli.Fail(f, "ERROR", fmt.Errorf("failed to write config: %w", err))
	}

	return f.Success(cli.Result{
		ID:    path,
		Data:  map[string]any{"path": path},
		Human: "Wrote " + path,
	})
}
