package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

func (c *CLI) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the last recorded build of every declared target",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			statuses, err := c.app.Status(c.configPath)
			if err != nil {
				return err
			}

			t := newTable("TARGET", "TRIPLE", "LAST BUILD", "ARTIFACTS")
			for _, s := range statuses {
				if s.Record == nil {
					t.Row(s.Toolchain.Platform, s.Toolchain.Target, "never", "-")
					continue
				}
				t.Row(
					s.Toolchain.Platform,
					s.Record.Triple,
					s.Record.Finished.Local().Format(time.DateTime),
					strconv.Itoa(len(s.Record.Artifacts)),
				)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return err
		},
	}
}
