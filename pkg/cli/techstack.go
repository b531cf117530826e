package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/getfolio/folio/pkg/portfolio"
)

var techCmd = &cobra.Command{
	Use:   "tech",
	Short: "Manage tech stack categories",
}

var techHighlights bool

var techListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tech stack categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		if err := a.set.TechStacks.Refresh(a.context()); err != nil {
			return err
		}
		snap := a.set.TechStacks.Store().Snapshot()

		if techHighlights {
			highlights := portfolio.AdvancedSkills(snap.Items)
			return printResult(highlights, func() {
				for _, s := range highlights {
					fmt.Println(s.Name)
				}
			})
		}

		return printResult(snap.Items, func() {
			if len(snap.Items) == 0 {
				fmt.Println("No tech stacks")
				return
			}
			w := table()
			fmt.Fprintln(w, "ID\tCATEGORY\tSKILLS")
			for _, stack := range snap.Items {
				names := make([]string, 0, len(stack.Skills))
				for _, s := range stack.Skills {
					names = append(names, s.Name)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", stack.ID, stack.Category, joinMax(names, 6))
			}
			_ = w.Flush()
		})
	},
}

var (
	techCategory string
	techSkills   []string
)

// parseSkills turns "Go:advanced" style arguments into skills.
func parseSkills(args []string) []portfolio.Skill {
	skills := make([]portfolio.Skill, 0, len(args))
	for _, arg := range args {
		name, level, _ := strings.Cut(arg, ":")
		skills = append(skills, portfolio.Skill{Name: name, Level: level})
	}
	return skills
}

var techAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a tech stack category",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		draft := portfolio.TechStackDraft{Category: techCategory, Skills: parseSkills(techSkills)}
		if err := a.set.TechStacks.Create(a.context(), draft); err != nil {
			return err
		}
		snap := a.set.TechStacks.Store().Snapshot()
		return printResult(snap.Items, func() {
			fmt.Println(orDefault(snap.Message, "Tech stack created"))
		})
	},
}

var techUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a tech stack category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		draft := portfolio.TechStackDraft{Category: techCategory, Skills: parseSkills(techSkills)}
		if err := a.set.TechStacks.Update(a.context(), args[0], draft); err != nil {
			return err
		}
		snap := a.set.TechStacks.Store().Snapshot()
		return printResult(snap.Items, func() {
			fmt.Println(orDefault(snap.Message, "Tech stack updated"))
		})
	},
}

var techDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a tech stack category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		if err := a.set.TechStacks.Delete(a.context(), args[0]); err != nil {
			return err
		}
		snap := a.set.TechStacks.Store().Snapshot()
		return printResult(snap.Items, func() {
			fmt.Println(orDefault(snap.Message, "Tech stack deleted"))
		})
	},
}

func init() {
	techListCmd.Flags().BoolVar(&techHighlights, "highlights", false, "Show only advanced-level skills")

	for _, cmd := range []*cobra.Command{techAddCmd, techUpdateCmd} {
		cmd.Flags().StringVar(&techCategory, "category", "", "Category name")
		cmd.Flags().StringSliceVar(&techSkills, "skill", nil, "Skill as name:level (repeatable)")
	}
	_ = techAddCmd.MarkFlagRequired("category")

	techCmd.AddCommand(techListCmd, techAddCmd, techUpdateCmd, techDeleteCmd)
	rootCmd.AddCommand(techCmd)
}
