package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/getfolio/folio/pkg/portfolio"
	"github.com/getfolio/folio/pkg/state"
)

// pullCmd refreshes every public resource into its store and prints a
// content overview - the closest thing the CLI has to the dashboard's
// landing page.
var pullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Fetch all site content and show an overview",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		ctx := a.context()

		// Each refresh is independent; a failing resource reports its error
		// in the overview without blocking the others.
		_ = a.set.Projects.Refresh(ctx)
		_ = a.set.Awards.Refresh(ctx)
		_ = a.set.TechStacks.Refresh(ctx)
		_ = a.set.Education.Refresh(ctx)
		_ = a.set.Experience.Refresh(ctx)
		_ = a.set.Testimonials.Refresh(ctx)

		rows := []overviewRowData{
			overviewRow("projects", a.set.Projects.Store()),
			overviewRow("awards", a.set.Awards.Store()),
			overviewRow("tech stacks", a.set.TechStacks.Store()),
			overviewRow("education", a.set.Education.Store()),
			overviewRow("experience", a.set.Experience.Store()),
			overviewRow("testimonials", a.set.Testimonials.Store()),
		}

		techSnap := a.set.TechStacks.Store().Snapshot()
		projSnap := a.set.Projects.Store().Snapshot()
		techs, _ := portfolio.TechnologyCounts(projSnap.Items)
		highlights := portfolio.AdvancedSkills(techSnap.Items)

		return printResult(rows, func() {
			w := table()
			fmt.Fprintln(w, "RESOURCE\tCOUNT\tSTATUS")
			for _, r := range rows {
				status := "ok"
				if r.Error != "" {
					status = r.Error
				}
				fmt.Fprintf(w, "%s\t%d\t%s\n", r.Resource, r.Count, status)
			}
			_ = w.Flush()
			if len(techs) > 0 {
				fmt.Printf("\nTechnologies in use: %s\n", joinMax(techs, 10))
			}
			if len(highlights) > 0 {
				names := make([]string, 0, len(highlights))
				for _, s := range highlights {
					names = append(names, s.Name)
				}
				fmt.Printf("Advanced skills: %s\n", joinMax(names, 10))
			}
		})
	},
}

// overviewRowData is one line of the pull overview.
type overviewRowData struct {
	Resource string `json:"resource"`
	Count    int    `json:"count"`
	Error    string `json:"error,omitempty"`
}

func overviewRow[T portfolio.Entity](name string, store *state.Store[T]) overviewRowData {
	snap := store.Snapshot()
	return overviewRowData{Resource: name, Count: len(snap.Items), Error: snap.Err}
}

func init() {
	rootCmd.AddCommand(pullCmd)
}
