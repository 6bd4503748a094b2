package cli

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/bjaus/yves"
)

// roleColumn is the display width of the role name column.
const roleColumn = 8

func newStylesCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "Show every role in its configured style",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions(cmd, f)
			if err != nil {
				return err
			}
			o := yves.Resolve(opts...)
			out := cmd.OutOrStdout()
			for _, role := range yves.Roles() {
				name := "-"
				if o.Styles != nil && o.Styles[role] != "" {
					name = o.Styles[role]
				}
				if _, err := fmt.Fprintf(out, "%s %s\n", runewidth.FillRight(string(role), roleColumn), yves.Stylize(name, role, o)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
