package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var loginFlags struct {
	email    string
	password string
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and store the session",
	RunE:  runLogin,
}

func init() {
	rootCmd.AddCommand(loginCmd)

	loginCmd.Flags().StringVar(&loginFlags.email, "email", "", "account email")
	loginCmd.Flags().StringVar(&loginFlags.password, "password", "", "account password")
	_ = loginCmd.MarkFlagRequired("email")
	_ = loginCmd.MarkFlagRequired("password")
}

func runLogin(cmd *cobra.Command, args []string) error {
	if loginFlags.email == "" || loginFlags.password == "" {
		return errors.New("email and password are required")
	}

	c, err := newClient()
	if err != nil {
		return err
	}

	user, err := c.Login(cmd.Context(), loginFlags.email, loginFlags.password)
	if err != nil {
		return err
	}

	fmt.Printf("Logged in as %s (%s)\n", user.FullName, user.Email)
	return nil
}
