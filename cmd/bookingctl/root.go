package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ttsbooking/consult-platform/pkg/client"
)

var rootFlags struct {
	serverURL   string
	sessionPath string
}

var rootCmd = &cobra.Command{
	Use:   "bookingctl",
	Short: "Terminal client for the booking platform API",
	Long: `bookingctl talks to the booking platform REST API.

Sessions are stored under the user config dir, so login survives between
invocations until the token expires or you log out.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootFlags.serverURL, "server", "http://localhost:5000", "API base URL")
	rootCmd.PersistentFlags().StringVar(&rootFlags.sessionPath, "session-file", "", "override session file location")
}

func newClient() (*client.Client, error) {
	store, err := client.NewFileStore(rootFlags.sessionPath)
	if err != nil {
		return nil, err
	}
	return client.New(rootFlags.serverURL, store), nil
}
