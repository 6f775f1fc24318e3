package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/cargojni/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove build records, the linker wrapper and generated toolchains",
		Long: "Remove build records, the linker wrapper and generated toolchains.\n" +
			"Without flags everything is removed.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			records, _ := cmd.Flags().GetBool("records")
			wrappers, _ := cmd.Flags().GetBool("wrappers")
			toolchains, _ := cmd.Flags().GetBool("toolchains")

			return c.app.Clean(c.configPath, app.CleanOptions{
				Records:    records,
				Wrappers:   wrappers,
				Toolchains: toolchains,
			})
		},
	}

	cmd.Flags().BoolP("records", "r", false, "Remove build records")
	cmd.Flags().BoolP("wrappers", "w", false, "Remove the extracted linker wrapper")
	cmd.Flags().BoolP("toolchains", "t", false, "Remove generated standalone toolchains")

	return cmd
}
