package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ttsbooking/consult-platform/pkg/client"
)

var bookingsCmd = &cobra.Command{
	Use:   "bookings",
	Short: "Create and manage bookings",
}

var createBookingFlags struct {
	serviceID uint
	date      string
	timeSlot  string
	notes     string
}

var bookingsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Book a service slot",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}

		id, err := c.CreateBooking(cmd.Context(), client.CreateBookingInput{
			ServiceID:   createBookingFlags.serviceID,
			BookingDate: createBookingFlags.date,
			BookingTime: createBookingFlags.timeSlot,
			Notes:       createBookingFlags.notes,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Booking #%d created (pending confirmation).\n", id)
		return nil
	},
}

var bookingsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your bookings",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}

		user := c.CurrentUser()
		if user == nil {
			return errors.New("not logged in")
		}

		bookings, err := c.UserBookings(cmd.Context(), user.ID)
		if err != nil {
			return err
		}

		if len(bookings) == 0 {
			fmt.Println("No bookings yet.")
			return nil
		}

		for _, b := range bookings {
			fmt.Printf("#%d  %s %s  %s with %s (%s)\n",
				b.ID, b.BookingDate, b.BookingTime, b.ServiceTitle, b.ConsultantName, b.Status)
		}
		return nil
	},
}

func bookingActionCmd(use, short, action string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid booking id %q", args[0])
			}

			c, err := newClient()
			if err != nil {
				return err
			}

			var b *client.Booking
			switch action {
			case "confirm":
				b, err = c.ConfirmBooking(cmd.Context(), uint(id))
			case "cancel":
				b, err = c.CancelBooking(cmd.Context(), uint(id))
			case "complete":
				b, err = c.CompleteBooking(cmd.Context(), uint(id))
			}
			if err != nil {
				return err
			}

			fmt.Printf("Booking #%d is now %s.\n", b.ID, b.Status)
			return nil
		},
	}
}

func init() {
	bookingsCreateCmd.Flags().UintVar(&createBookingFlags.serviceID, "service", 0, "service id")
	bookingsCreateCmd.Flags().StringVar(&createBookingFlags.date, "date", "", "booking date (YYYY-MM-DD)")
	bookingsCreateCmd.Flags().StringVar(&createBookingFlags.timeSlot, "time", "", "booking time (HH:MM)")
	bookingsCreateCmd.Flags().StringVar(&createBookingFlags.notes, "notes", "", "optional notes")
	_ = bookingsCreateCmd.MarkFlagRequired("service")
	_ = bookingsCreateCmd.MarkFlagRequired("date")
	_ = bookingsCreateCmd.MarkFlagRequired("time")

	rootCmd.AddCommand(bookingsCmd)
	bookingsCmd.AddCommand(bookingsCreateCmd)
	bookingsCmd.AddCommand(bookingsListCmd)
	bookingsCmd.AddCommand(bookingActionCmd("confirm", "Confirm a pending booking (consultant)", "confirm"))
	bookingsCmd.AddCommand(bookingActionCmd("cancel", "Cancel a booking", "cancel"))
	bookingsCmd.AddCommand(bookingActionCmd("complete", "Mark a booking completed (consultant)", "complete"))
}
