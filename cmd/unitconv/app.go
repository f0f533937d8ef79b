package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/quanta/constants"
	"github.com/katalvlaran/quanta/equiv"
	"github.com/katalvlaran/quanta/quantity"
	"github.com/katalvlaran/quanta/unit"
)

// equivalencies names the rules the --via flag accepts. Conversion never
// applies a rule the user did not pass — same contract as the library.
var equivalencies = map[string]func() quantity.Equivalency{
	"spectral": equiv.Spectral,
	"angle":    equiv.DimensionlessAngle,
	"parallax": equiv.Parallax,
	"thermal":  equiv.ThermalEnergy,
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "unitconv",
		Short:         "dimensionally-checked unit conversion",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	cmd.AddCommand(convertCmd(), unitsCmd(), constantsCmd())

	return cmd
}

// convertCmd implements `unitconv convert VALUE FROM TO [--via RULE]...`.
func convertCmd() *cobra.Command {
	var via []string
	cmd := &cobra.Command{
		Use:   "convert VALUE FROM TO",
		Short: "convert a value between units",
		Long: "Convert VALUE from unit expression FROM to unit expression TO.\n" +
			"Incommensurable conversions need an explicit --via rule:\n" +
			"  " + strings.Join(ruleNames(), ", "),
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("VALUE %q is not a number", args[0])
			}
			reg := unit.Builtin()
			from, err := unit.Parse(reg, args[1])
			if err != nil {
				return err
			}
			to, err := unit.Parse(reg, args[2])
			if err != nil {
				return err
			}
			rules, err := resolveRules(via)
			if err != nil {
				return err
			}

			out, err := quantity.New(value, from).ConvertTo(to, rules...)
			if err != nil {
				return err
			}
			cmd.Println(out)

			return nil
		},
	}
	cmd.Flags().StringArrayVar(&via, "via", nil,
		"equivalency rule to allow, repeatable ("+strings.Join(ruleNames(), "|")+")")

	return cmd
}

// unitsCmd implements `unitconv units [--dim EXPR]`.
func unitsCmd() *cobra.Command {
	var dimExpr string
	cmd := &cobra.Command{
		Use:   "units",
		Short: "list registered units",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := unit.Builtin()
			var filter unit.Unit
			if dimExpr != "" {
				u, err := unit.Parse(reg, dimExpr)
				if err != nil {
					return err
				}
				filter = u
			}
			for _, sym := range reg.Symbols() {
				def, err := reg.Describe(sym)
				if err != nil {
					return err
				}
				if dimExpr != "" && !def.Dim.Equal(filter.Dim()) {
					continue
				}
				cmd.Printf("%-10s %-22s %-28s scale %g\n", def.Symbol, def.Name, def.Dim, def.Scale)
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&dimExpr, "dim", "",
		"only units commensurable with this unit expression, e.g. \"km / s\"")

	return cmd
}

// constantsCmd implements `unitconv constants [NAME]`.
func constantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "constants [NAME]",
		Short: "show physical constants",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				c, err := constants.Lookup(args[0])
				if err != nil {
					return err
				}
				printConstant(cmd, c)

				return nil
			}
			for _, c := range constants.All() {
				printConstant(cmd, c)
			}

			return nil
		},
	}
}

func printConstant(cmd *cobra.Command, c constants.Constant) {
	cmd.Printf("%-10s %-32s %v", c.Symbol, c.Name, c.Quantity)
	if c.Uncertainty > 0 {
		cmd.Printf(" ± %g %s", c.Uncertainty, c.Quantity.Unit().Label())
	}
	cmd.Printf("   [%s]\n", c.Reference)
}

// resolveRules maps --via names to equivalency values, keeping the order
// the user gave (first match wins downstream).
func resolveRules(via []string) ([]quantity.Equivalency, error) {
	rules := make([]quantity.Equivalency, 0, len(via))
	for _, name := range via {
		ctor, ok := equivalencies[name]
		if !ok {
			return nil, fmt.Errorf("unknown equivalency %q (have: %s)", name, strings.Join(ruleNames(), ", "))
		}
		rules = append(rules, ctor())
	}

	return rules, nil
}

// ruleNames returns the accepted --via names, sorted for stable help text.
func ruleNames() []string {
	names := make([]string, 0, len(equivalencies))
	for name := range equivalencies {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
