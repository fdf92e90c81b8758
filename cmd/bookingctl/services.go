package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var servicesCmd = &cobra.Command{
	Use:   "services",
	Short: "Browse the service catalog",
}

var servicesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List active services",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}

		services, err := c.Services(cmd.Context())
		if err != nil {
			return err
		}

		if len(services) == 0 {
			fmt.Println("No services available.")
			return nil
		}

		for _, s := range services {
			fmt.Printf("#%d  %s by %s (%d min, %.2f) [%s]\n",
				s.ID, s.Title, s.ConsultantName, s.Duration, s.Price, s.Category)
		}
		return nil
	},
}

var servicesGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one service",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid service id %q", args[0])
		}

		c, err := newClient()
		if err != nil {
			return err
		}

		s, err := c.Service(cmd.Context(), uint(id))
		if err != nil {
			return err
		}

		fmt.Printf("#%d %s\n", s.ID, s.Title)
		fmt.Printf("Consultant: %s\n", s.ConsultantName)
		fmt.Printf("Duration:   %d min\n", s.Duration)
		fmt.Printf("Price:      %.2f\n", s.Price)
		fmt.Printf("Category:   %s\n", s.Category)
		if s.Description != "" {
			fmt.Printf("\n%s\n", s.Description)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(servicesCmd)
	servicesCmd.AddCommand(servicesListCmd)
	servicesCmd.AddCommand(servicesGetCmd)
}
