package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/getfolio/folio/pkg/client"
	"github.com/getfolio/folio/pkg/credential"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate against the backend and store the bearer token",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		email, password := loginEmail, loginPassword
		if email == "" || password == "" {
			form := huh.NewForm(
				huh.NewGroup(
					huh.NewInput().
						Title("Email").
						Value(&email).
						Validate(func(s string) error {
							if s == "" {
								return errors.New("email is required")
							}
							return nil
						}),
					huh.NewInput().
						Title("Password").
						EchoMode(huh.EchoModePassword).
						Value(&password).
						Validate(func(s string) error {
							if s == "" {
								return errors.New("password is required")
							}
							return nil
						}),
				),
			)
			if err := form.Run(); err != nil {
				return err
			}
		}

		if err := a.set.Session.Login(a.context(), client.Credentials{Email: email, Password: password}); err != nil {
			return err
		}

		snap := a.set.Session.Store().Snapshot()
		return printResult(snap.Item, func() {
			name := email
			if snap.Item != nil && snap.Item.Name != "" {
				name = snap.Item.Name
			}
			fmt.Printf("Logged in as %s\n", name)
		})
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the stored bearer token",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		if err := a.set.Session.Logout(); err != nil {
			return err
		}
		fmt.Println("Logged out")
		return nil
	},
}

var whoamiRemote bool

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the identity behind the stored token",
	Long: `Show the identity behind the stored token.

By default the token's claims are read locally without contacting the
backend. With --remote the profile is fetched from the server instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		if whoamiRemote {
			if err := a.set.Session.FetchCurrentUser(a.context()); err != nil {
				return err
			}
			snap := a.set.Session.Store().Snapshot()
			return printResult(snap.Item, func() {
				if snap.Item != nil {
					fmt.Printf("%s <%s>\n", snap.Item.Name, snap.Item.Email)
				}
			})
		}

		id, err := a.creds.Identity()
		if err != nil {
			if errors.Is(err, credential.ErrNoToken) {
				return errors.New("not logged in - run: folio login")
			}
			return err
		}
		return printResult(id, func() {
			subject := id.Subject
			if id.Email != "" {
				subject = id.Email
			}
			fmt.Println(subject)
			if !id.ExpiresAt.IsZero() {
				if id.Expired() {
					fmt.Printf("Token expired %s\n", id.ExpiresAt.Format(time.RFC3339))
				} else {
					fmt.Printf("Token valid until %s\n", id.ExpiresAt.Format(time.RFC3339))
				}
			}
		})
	},
}

var (
	registerName     string
	registerEmail    string
	registerPassword string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new admin account",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		reg := client.Registration{Name: registerName, Email: registerEmail, Password: registerPassword}
		if err := a.set.Session.Register(a.context(), reg); err != nil {
			return err
		}
		snap := a.set.Session.Store().Snapshot()
		return printResult(snap.Item, func() {
			fmt.Println(orDefault(snap.Message, "Account created"))
		})
	},
}

// orDefault returns s unless it is empty.
func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Admin email (prompts when omitted)")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Admin password (prompts when omitted)")

	whoamiCmd.Flags().BoolVar(&whoamiRemote, "remote", false, "Fetch the profile from the backend")

	registerCmd.Flags().StringVar(&registerName, "name", "", "Display name")
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "Email address")
	registerCmd.Flags().StringVar(&registerPassword, "password", "", "Password")
	_ = registerCmd.MarkFlagRequired("email")
	_ = registerCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(loginCmd, logoutCmd, whoamiCmd, registerCmd)
}
