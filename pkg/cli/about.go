package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/getfolio/folio/pkg/portfolio"
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Manage the about section",
}

var aboutShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the about section",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		if err := a.set.About.Refresh(a.context()); err != nil {
			return err
		}
		snap := a.set.About.Store().Snapshot()
		return printResult(snap.Item, func() {
			if snap.Item == nil {
				fmt.Println("No about section set")
				return
			}
			fmt.Printf("%s\n\n%s\n", snap.Item.Title, snap.Item.Description)
		})
	},
}

var (
	aboutTitle       string
	aboutDescription string
	aboutImagePath   string
	aboutResumePath  string
)

var aboutSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Create or replace the about section",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		draft := portfolio.AboutDraft{Title: aboutTitle, Description: aboutDescription}
		if aboutImagePath != "" {
			img, err := readImage(aboutImagePath)
			if err != nil {
				return err
			}
			draft.Image = img
		}
		if aboutResumePath != "" {
			resume, err := readImage(aboutResumePath)
			if err != nil {
				return err
			}
			draft.Resume = resume
		}
		if err := a.set.About.Save(a.context(), draft); err != nil {
			return err
		}
		snap := a.set.About.Store().Snapshot()
		return printResult(snap.Item, func() {
			fmt.Println(orDefault(snap.Message, "About section saved"))
		})
	},
}

func init() {
	aboutSaveCmd.Flags().StringVar(&aboutTitle, "title", "", "Headline")
	aboutSaveCmd.Flags().StringVar(&aboutDescription, "description", "", "Biography text")
	aboutSaveCmd.Flags().StringVar(&aboutImagePath, "image", "", "Path to a portrait image")
	aboutSaveCmd.Flags().StringVar(&aboutResumePath, "resume", "", "Path to a resume file")

	aboutCmd.AddCommand(aboutShowCmd, aboutSaveCmd)
	rootCmd.AddCommand(aboutCmd)
}
