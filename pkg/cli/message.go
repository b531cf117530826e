package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/getfolio/folio/pkg/portfolio"
)

var messageCmd = &cobra.Command{
	Use:   "message",
	Short: "Read the contact-form inbox or send a message",
}

var messageInboxCmd = &cobra.Command{
	Use:   "inbox",
	Short: "List received messages (admin only)",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		if err := a.set.Messages.Refresh(a.context()); err != nil {
			return err
		}
		snap := a.set.Messages.Store().Snapshot()
		return printResult(snap.Items, func() {
			if len(snap.Items) == 0 {
				fmt.Println("Inbox empty")
				return
			}
			w := table()
			fmt.Fprintln(w, "FROM\tEMAIL\tSUBJECT")
			for _, m := range snap.Items {
				fmt.Fprintf(w, "%s\t%s\t%s\n", m.Name, m.Email, m.Subject)
			}
			_ = w.Flush()
		})
	},
}

var (
	msgName    string
	msgEmail   string
	msgSubject string
	msgBody    string
)

var messageSendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send a contact-form message (no login required)",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		draft := portfolio.MessageDraft{
			Name:    msgName,
			Email:   msgEmail,
			Subject: msgSubject,
			Message: msgBody,
		}
		if err := a.set.Messages.Create(a.context(), draft); err != nil {
			return err
		}
		snap := a.set.Messages.Store().Snapshot()
		return printResult(snap.Items, func() {
			fmt.Println(orDefault(snap.Message, "Message sent"))
		})
	},
}

func init() {
	messageSendCmd.Flags().StringVar(&msgName, "name", "", "Sender name")
	messageSendCmd.Flags().StringVar(&msgEmail, "email", "", "Sender email")
	messageSendCmd.Flags().StringVar(&msgSubject, "subject", "", "Subject line")
	messageSendCmd.Flags().StringVar(&msgBody, "message", "", "Message body")
	_ = messageSendCmd.MarkFlagRequired("email")
	_ = messageSendCmd.MarkFlagRequired("message")

	messageCmd.AddCommand(messageInboxCmd, messageSendCmd)
	rootCmd.AddCommand(messageCmd)
}
