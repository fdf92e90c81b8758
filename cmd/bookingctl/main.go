// Bookingctl is a terminal client for the booking platform API.
//
// Usage:
//
//	# Log in and persist the session
//	bookingctl login --email you@example.com --password secret1
//
//	# Browse the catalog
//	bookingctl services list
//
//	# Book a slot
//	bookingctl bookings create --service 3 --date 2026-09-15 --time 10:00
package main

func main() {
	Execute()
}
