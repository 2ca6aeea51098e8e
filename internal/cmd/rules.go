package cmd

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/pthm/uxtone/internal/rules"
)

var rulesCategory string

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the rewrite rules",
	Long: `List the rewrite rules in table order.

The table order is the order in which selected rules are applied.

Examples:
  uxtone rules
  uxtone rules --category ending_tone
  uxtone rules --rules ./team-rules.yaml --format json`,
	Args: cobra.NoArgs,
	RunE: runRules,
}

func init() {
	categories := lo.Map(rules.Categories, func(c rules.Category, _ int) string { return c.String() })
	rulesCmd.Flags().StringVarP(&rulesCategory, "category", "c", "",
		"Only list rules in this category ("+strings.Join(categories, ", ")+")")
	RootCmd.AddCommand(rulesCmd)
}

func runRules(cmd *cobra.Command, args []string) error {
	table := eng.Rules()
	ruleSet := table.Rules()

	if rulesCategory != "" {
		cat := rules.Category(rulesCategory)
		if !cat.IsValid() {
			return fmt.Errorf("unknown category %q", rulesCategory)
		}
		ruleSet = table.ByCategory(cat)
	}

	return newReporter(GetUI()).ReportRules(ruleSet)
}
