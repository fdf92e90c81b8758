package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ttsbooking/consult-platform/pkg/client"
)

var registerFlags struct {
	email           string
	password        string
	confirmPassword string
	fullName        string
	phone           string
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account and log in",
	RunE:  runRegister,
}

func init() {
	rootCmd.AddCommand(registerCmd)

	registerCmd.Flags().StringVar(&registerFlags.email, "email", "", "account email")
	registerCmd.Flags().StringVar(&registerFlags.password, "password", "", "account password")
	registerCmd.Flags().StringVar(&registerFlags.confirmPassword, "confirm-password", "", "repeat the password")
	registerCmd.Flags().StringVar(&registerFlags.fullName, "name", "", "full name")
	registerCmd.Flags().StringVar(&registerFlags.phone, "phone", "", "phone number")
	_ = registerCmd.MarkFlagRequired("email")
	_ = registerCmd.MarkFlagRequired("password")
	_ = registerCmd.MarkFlagRequired("confirm-password")
	_ = registerCmd.MarkFlagRequired("name")
}

func runRegister(cmd *cobra.Command, args []string) error {
	// Same checks the web form runs before touching the network.
	if len(registerFlags.password) < 6 {
		return errors.New("password must be at least 6 characters")
	}
	if registerFlags.password != registerFlags.confirmPassword {
		return errors.New("passwords do not match")
	}

	c, err := newClient()
	if err != nil {
		return err
	}

	user, err := c.Register(cmd.Context(), client.RegisterInput{
		Email:    registerFlags.email,
		Password: registerFlags.password,
		FullName: registerFlags.fullName,
		Phone:    registerFlags.phone,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Registered and logged in as %s (%s)\n", user.FullName, user.Email)
	return nil
}
