package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newToolchainsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toolchains",
		Short: "Generate NDK standalone toolchains for the declared targets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := c.app.GenerateToolchains(cmd.Context(), c.configPath)
			if err != nil {
				return err
			}
			if n > 0 {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Generated %d standalone toolchain(s)\n", n)
			}
			return nil
		},
	}
}

func (c *CLI) newLinkerWrapperCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "linker-wrapper",
		Short: "Extract the linker wrapper scripts into the build directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			files, err := c.app.GenerateLinkerWrapper(c.configPath)
			if err != nil {
				return err
			}
			for _, f := range files {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), f)
			}
			return nil
		},
	}
}
