package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/getfolio/folio/pkg/portfolio"
)

var testimonialCmd = &cobra.Command{
	Use:   "testimonial",
	Short: "Manage testimonials",
}

var testimonialListCmd = &cobra.Command{
	Use:   "list",
	Short: "List testimonials",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		if err := a.set.Testimonials.Refresh(a.context()); err != nil {
			return err
		}
		snap := a.set.Testimonials.Store().Snapshot()
		return printResult(snap.Items, func() {
			if len(snap.Items) == 0 {
				fmt.Println("No testimonials")
				return
			}
			w := table()
			fmt.Fprintln(w, "ID\tNAME\tROLE\tRATING")
			for _, t := range snap.Items {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", t.ID, t.Name, t.Role, t.Rating)
			}
			_ = w.Flush()
		})
	},
}

var (
	testimonialName      string
	testimonialRole      string
	testimonialMessage   string
	testimonialRating    int
	testimonialImagePath string
)

func testimonialDraftFromFlags() (portfolio.TestimonialDraft, error) {
	draft := portfolio.TestimonialDraft{
		Name:    testimonialName,
		Role:    testimonialRole,
		Message: testimonialMessage,
		Rating:  testimonialRating,
	}
	if testimonialImagePath != "" {
		img, err := readImage(testimonialImagePath)
		if err != nil {
			return draft, err
		}
		draft.Image = img
	}
	return draft, nil
}

var testimonialAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a testimonial",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		draft, err := testimonialDraftFromFlags()
		if err != nil {
			return err
		}
		if err := a.set.Testimonials.Create(a.context(), draft); err != nil {
			return err
		}
		snap := a.set.Testimonials.Store().Snapshot()
		return printResult(snap.Items, func() {
			fmt.Println(orDefault(snap.Message, "Testimonial created"))
		})
	},
}

var testimonialUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a testimonial",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		draft, err := testimonialDraftFromFlags()
		if err != nil {
			return err
		}
		if err := a.set.Testimonials.Update(a.context(), args[0], draft); err != nil {
			return err
		}
		snap := a.set.Testimonials.Store().Snapshot()
		return printResult(snap.Items, func() {
			fmt.Println(orDefault(snap.Message, "Testimonial updated"))
		})
	},
}

var testimonialDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a testimonial",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		if err := a.set.Testimonials.Delete(a.context(), args[0]); err != nil {
			return err
		}
		snap := a.set.Testimonials.Store().Snapshot()
		return printResult(snap.Items, func() {
			fmt.Println(orDefault(snap.Message, "Testimonial deleted"))
		})
	},
}

func init() {
	for _, cmd := range []*cobra.Command{testimonialAddCmd, testimonialUpdateCmd} {
		cmd.Flags().StringVar(&testimonialName, "name", "", "Author name")
		cmd.Flags().StringVar(&testimonialRole, "role", "", "Author role")
		cmd.Flags().StringVar(&testimonialMessage, "message", "", "Quote text")
		cmd.Flags().IntVar(&testimonialRating, "rating", 0, "Rating 1-5")
		cmd.Flags().StringVar(&testimonialImagePath, "image", "", "Path to an avatar image")
	}
	_ = testimonialAddCmd.MarkFlagRequired("name")

	testimonialCmd.AddCommand(testimonialListCmd, testimonialAddCmd, testimonialUpdateCmd, testimonialDeleteCmd)
	rootCmd.AddCommand(testimonialCmd)
}
