package main

import (
	"fmt"
	"os"
	"time"

	"github.com/Jnyanu18/portfolio/internal/form"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

var serverURL string

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Portfolio CLI",
	Long:  `Portfolio CLI talks to the portfolio backend: check its health, browse content, and send a contact message.`,
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that the backend is up",
	Run: func(cmd *cobra.Command, args []string) {
		client := form.NewClient(serverURL)
		health, err := client.Health()
		if err != nil {
			fmt.Printf("Backend unreachable: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%s: %s\n", health.Status, health.Message)
	},
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the portfolio document",
	Run: func(cmd *cobra.Command, args []string) {
		client := form.NewClient(serverURL)
		doc, err := client.Portfolio()
		if err != nil {
			fmt.Printf("Failed to fetch portfolio: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("%s — %s\n%s\n\n", doc.Personal.Name, doc.Personal.Title, doc.Personal.Bio)
		fmt.Println("Projects:")
		for _, p := range doc.Projects {
			marker := " "
			if p.Featured {
				marker = "*"
			}
			fmt.Printf("  %s %s (%s)\n", marker, p.Title, p.Category)
		}
	},
}

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Send a message through the contact form",
	Run: func(cmd *cobra.Command, args []string) {
		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		subject, _ := cmd.Flags().GetString("subject")
		message, _ := cmd.Flags().GetString("message")

		controller := form.NewController(form.NewClient(serverURL))
		controller.SetName(name)
		controller.SetEmail(email)
		controller.SetSubject(subject)
		controller.SetMessage(message)

		s := spinner.New(spinner.CharSets[14], 120*time.Millisecond)
		s.Suffix = " Sending message..."
		s.Start()
		status, err := controller.Submit()
		s.Stop()

		if err != nil {
			fmt.Printf("Submission not sent: %v\n", err)
			os.Exit(1)
		}

		switch status.Phase {
		case form.Succeeded:
			fmt.Println(status.Message)
		default:
			fmt.Printf("Failed: %s\n", status.Message)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:5000", "Base URL of the portfolio backend")

	contactCmd.Flags().String("name", "", "Your name")
	contactCmd.Flags().String("email", "", "Your email address")
	contactCmd.Flags().String("subject", "", "Message subject")
	contactCmd.Flags().String("message", "", "Message body")
	contactCmd.MarkFlagRequired("name")
	contactCmd.MarkFlagRequired("email")
	contactCmd.MarkFlagRequired("subject")
	contactCmd.MarkFlagRequired("message")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(contactCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
