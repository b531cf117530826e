// Package cli implements the folio command tree: the admin surface for
// managing portfolio content through the backend's REST API.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Persistent flags available to all subcommands
	apiURL     string
	jsonOutput bool
	verbose    bool

	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "folio manages portfolio site content from the terminal",
	Long: `folio is the admin client for a portfolio site backend. It manages the
site's content (about, education, experience, tech stack, projects, awards,
testimonials, contact details) and reads the contact-form inbox.

The backend base URL comes from --api-url, the FOLIO_API_URL environment
variable, or a config file (.foliorc.yaml locally, ~/.config/folio/config.yaml
globally). Log in once with 'folio login'; the bearer token is stored under
the folio config dir and attached to every protected call.`,
	SilenceUsage:  true,
	SilenceErrors: true, // We handle errors in Execute()
}

// Execute runs the root command. Called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Backend base URL (default: config/env, else http://localhost:5000)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output command results in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
