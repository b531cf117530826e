package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/getfolio/folio/pkg/client"
	"github.com/getfolio/folio/pkg/portfolio"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage portfolio projects",
}

var (
	projectSkill    string
	projectCategory string
)

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		// Filtered queries go straight to the gateway; the synced store
		// always mirrors the unfiltered list.
		if projectSkill != "" || projectCategory != "" {
			resp, err := a.api.Projects().List(a.context(), &client.ProjectFilter{
				Skill:    projectSkill,
				Category: projectCategory,
			})
			if err != nil {
				return err
			}
			return printProjects(resp.Items)
		}

		if err := a.set.Projects.Refresh(a.context()); err != nil {
			return err
		}
		return printProjects(a.set.Projects.Store().Snapshot().Items)
	},
}

func printProjects(projects []portfolio.Project) error {
	return printResult(projects, func() {
		if len(projects) == 0 {
			fmt.Println("No projects")
			return
		}
		w := table()
		fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tTECHNOLOGIES")
		for _, p := range projects {
			names, _ := portfolio.TechnologyCounts([]portfolio.Project{p})
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.ID, p.Title, p.Category, joinMax(names, 4))
		}
		_ = w.Flush()
	})
}

var projectGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		if err := a.set.Projects.Load(a.context(), args[0]); err != nil {
			return err
		}
		snap := a.set.Projects.Store().Snapshot()
		return printResult(snap.Item, func() {
			p := snap.Item
			if p == nil {
				fmt.Println("Not found")
				return
			}
			fmt.Printf("%s\n\n%s\n", p.Title, p.Description)
			if p.LiveDemoLink != "" {
				fmt.Printf("Demo:   %s\n", p.LiveDemoLink)
			}
			if p.SourceCodeLink != "" {
				fmt.Printf("Source: %s\n", p.SourceCodeLink)
			}
		})
	},
}

var (
	projectTitle       string
	projectDescription string
	projectCat         string
	projectTechs       []string
	projectDemo        string
	projectSource      string
	projectImagePath   string
)

func projectDraftFromFlags() (portfolio.ProjectDraft, error) {
	draft := portfolio.ProjectDraft{
		Title:          projectTitle,
		Description:    projectDescription,
		Category:       projectCat,
		LiveDemoLink:   projectDemo,
		SourceCodeLink: projectSource,
	}
	for _, t := range projectTechs {
		draft.TechnologiesUsed = append(draft.TechnologiesUsed, portfolio.TechnologyRef{Raw: t})
	}
	if projectImagePath != "" {
		img, err := readImage(projectImagePath)
		if err != nil {
			return draft, err
		}
		draft.Image = img
	}
	return draft, nil
}

var projectAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a project",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		draft, err := projectDraftFromFlags()
		if err != nil {
			return err
		}
		if err := a.set.Projects.Create(a.context(), draft); err != nil {
			return err
		}
		snap := a.set.Projects.Store().Snapshot()
		return printResult(snap.Items, func() {
			fmt.Println(orDefault(snap.Message, "Project created"))
		})
	},
}

var projectUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		draft, err := projectDraftFromFlags()
		if err != nil {
			return err
		}
		if err := a.set.Projects.Update(a.context(), args[0], draft); err != nil {
			return err
		}
		snap := a.set.Projects.Store().Snapshot()
		return printResult(snap.Items, func() {
			fmt.Println(orDefault(snap.Message, "Project updated"))
		})
	},
}

var projectDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		if err := a.set.Projects.Delete(a.context(), args[0]); err != nil {
			return err
		}
		snap := a.set.Projects.Store().Snapshot()
		return printResult(snap.Items, func() {
			fmt.Println(orDefault(snap.Message, "Project deleted"))
		})
	},
}

func init() {
	projectListCmd.Flags().StringVar(&projectSkill, "skill", "", "Filter by skill name")
	projectListCmd.Flags().StringVar(&projectCategory, "category", "", "Filter by category")

	for _, cmd := range []*cobra.Command{projectAddCmd, projectUpdateCmd} {
		cmd.Flags().StringVar(&projectTitle, "title", "", "Project title")
		cmd.Flags().StringVar(&projectDescription, "description", "", "Project description")
		cmd.Flags().StringVar(&projectCat, "category", "", "Project category")
		cmd.Flags().StringSliceVar(&projectTechs, "tech", nil, "Technology tag (repeatable)")
		cmd.Flags().StringVar(&projectDemo, "demo", "", "Live demo URL")
		cmd.Flags().StringVar(&projectSource, "source", "", "Source code URL")
		cmd.Flags().StringVar(&projectImagePath, "image", "", "Path to a cover image")
	}
	_ = projectAddCmd.MarkFlagRequired("title")

	projectCmd.AddCommand(projectListCmd, projectGetCmd, projectAddCmd, projectUpdateCmd, projectDeleteCmd)
	rootCmd.AddCommand(projectCmd)
}
