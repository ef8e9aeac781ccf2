// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/dunits/units"
	"github.com/spf13/cobra"
)

func newLookupCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <unit>",
		Short: "Print the canonical value of one unit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			v, err := a.reg.LookupUnit(name)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s = %s\n", name, v)
			fmt.Fprintf(out, "dimension: %s\n", v.Dimensions().Symbol())
			if e, ok := a.reg.Entry(name); ok {
				fmt.Fprintf(out, "family: %s\n", e.Family)
				if len(e.Abbrevs) > 0 {
					fmt.Fprintf(out, "abbreviations: %s\n", strings.Join(e.Abbrevs, ", "))
				}
			}
			return nil
		},
	}
}

func newConvertCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <value> <from> <to>",
		Short: "Convert a quantity between compatible units",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("value %q: %w", args[0], err)
			}
			q, err := a.reg.Dim(x, args[1])
			if err != nil {
				return err
			}
			got, err := a.reg.ValueIn(q, args[2])
			if err != nil {
				return err
			}
			a.logger.Debug("convert", "from", args[1], "to", args[2], "si", q)
			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(got, 'g', a.cfg.Precision, 64))
			return nil
		},
	}
}

func newUnitsCommand(a *app) *cobra.Command {
	var family string
	cmd := &cobra.Command{
		Use:   "units",
		Short: "List registered unit names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			names := a.reg.Names()
			title := "units"
			if family != "" {
				f, ok := units.ParseFamily(family)
				if !ok {
					return fmt.Errorf("unknown family %q (want si, imperial or standard)", family)
				}
				names = a.reg.NamesInFamily(f)
				title = f.String() + " units"
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, headingStyle.Render(fmt.Sprintf("%s (%d)", title, len(names))))
			for _, n := range names {
				fmt.Fprintln(out, n)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&family, "family", "", "filter by family: si, imperial, standard")
	return cmd
}

func newConstCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "const [name]",
		Short: "Print physical constants",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := a.reg.Constants()
			if len(args) == 1 {
				names = args
			}
			out := cmd.OutOrStdout()
			for _, n := range names {
				v, err := a.reg.Constant(n)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s = %s\n", n, v)
			}
			return nil
		},
	}
}
