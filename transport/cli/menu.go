// Package cli is the interactive front desk console. It drives the same
// services as the HTTP transport, one menu action per service operation.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	bookingDto "innkeep/internal/domains/booking/model/dto"
	bookingService "innkeep/internal/domains/booking/service"
	roomModel "innkeep/internal/domains/room/model"
	roomDto "innkeep/internal/domains/room/model/dto"
	roomService "innkeep/internal/domains/room/service"

	"github.com/shopspring/decimal"
)

const banner = "\n----------------------------------------------------\n" +
	"               ROOM BOOKING SYSTEM\n" +
	"----------------------------------------------------"

type Menu struct {
	rooms    roomService.Room
	bookings bookingService.Booking
	in       *bufio.Scanner
	out      io.Writer
}

func New(rooms roomService.Room, bookings bookingService.Booking, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		rooms:    rooms,
		bookings: bookings,
		in:       bufio.NewScanner(in),
		out:      out,
	}
}

// NewStdio wires the menu to the process terminal.
func NewStdio(rooms roomService.Room, bookings bookingService.Booking) *Menu {
	return New(rooms, bookings, os.Stdin, os.Stdout)
}

// Run loops over the menu until the operator exits or input ends.
func (m *Menu) Run(ctx context.Context) {
	for {
		fmt.Fprintln(m.out, banner)
		fmt.Fprintln(m.out, "1. List occupied rooms for the next 2 days")
		fmt.Fprintln(m.out, "2. Display rooms by category")
		fmt.Fprintln(m.out, "3. List rooms by rate")
		fmt.Fprintln(m.out, "4. Search room by booking ID")
		fmt.Fprintln(m.out, "5. Display unoccupied rooms")
		fmt.Fprintln(m.out, "6. Book a room")
		fmt.Fprintln(m.out, "7. Exit")

		choice, ok := m.prompt("Enter your choice (1-7): ")
		if !ok {
			return
		}

		switch choice {
		case "1":
			m.listSoonOccupied(ctx)
		case "2":
			m.listByCategory(ctx)
		case "3":
			m.listByRate(ctx)
		case "4":
			m.searchBooking(ctx)
		case "5":
			m.listUnoccupied(ctx)
		case "6":
			m.bookRoom(ctx)
		case "7":
			fmt.Fprintln(m.out, "Exiting Room Booking System.")

			return
		default:
			fmt.Fprintln(m.out, "Invalid choice. Please try again.")
		}
	}
}

func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)

	if !m.in.Scan() {
		return "", false
	}

	return strings.TrimSpace(m.in.Text()), true
}

func (m *Menu) listSoonOccupied(ctx context.Context) {
	res, err := m.bookings.GetSoonOccupied(ctx)
	if err != nil {
		fmt.Fprintf(m.out, "Error fetching occupied rooms: %v\n", err)

		return
	}

	if len(res.Records) == 0 {
		fmt.Fprintln(m.out, "No rooms are occupied in the next 2 days.")

		return
	}

	fmt.Fprintln(m.out, "Rooms occupied in the next 2 days:")

	for _, record := range res.Records {
		fmt.Fprintf(m.out, "Room No: %s, Category: %s, Occupied from: %s, Duration: %s\n",
			record.RoomNo, record.Category, record.OccupancyDate, record.Duration)
	}
}

func (m *Menu) listByCategory(ctx context.Context) {
	category, ok := m.prompt("Enter room category (Single, Double, Suite, Convention Hall, Ballroom): ")
	if !ok {
		return
	}

	if !roomModel.Category(category).Valid() {
		fmt.Fprintln(m.out, "Invalid category. Please try again.")

		return
	}

	res, err := m.rooms.ListByCategory(ctx, category)
	if err != nil {
		fmt.Fprintf(m.out, "Error fetching rooms by category: %v\n", err)

		return
	}

	if len(res.Rooms) == 0 {
		fmt.Fprintf(m.out, "No rooms available for category: %s\n", category)

		return
	}

	fmt.Fprintf(m.out, "%s Rooms:\n", category)

	for _, room := range res.Rooms {
		m.printRate(room)
	}
}

func (m *Menu) listByRate(ctx context.Context) {
	res, err := m.rooms.ListByRate(ctx)
	if err != nil {
		fmt.Fprintf(m.out, "Error fetching room data: %v\n", err)

		return
	}

	if len(res.Rooms) == 0 {
		fmt.Fprintln(m.out, "No rooms available in the database.")

		return
	}

	fmt.Fprintln(m.out, "Rooms sorted by rate:")

	for _, room := range res.Rooms {
		m.printRate(room)
	}
}

func (m *Menu) printRate(room roomDto.RoomRateResponse) {
	if room.Category.IsHourly() {
		fmt.Fprintf(m.out, "Room No: %s, Category: %s, Rate per hour: %s\n",
			room.RoomNo, room.Category, room.PricePerHour)

		return
	}

	fmt.Fprintf(m.out, "Room No: %s, Category: %s, Rate per day: %s\n",
		room.RoomNo, room.Category, room.PricePerDay)
}

func (m *Menu) searchBooking(ctx context.Context) {
	id, ok := m.prompt("Enter Booking ID: ")
	if !ok {
		return
	}

	detail, err := m.bookings.GetDetail(ctx, id)
	if err != nil {
		fmt.Fprintf(m.out, "No details found for Booking ID: %s\n", id)

		return
	}

	fmt.Fprintf(m.out, "Booking ID: %s\n", detail.BookingID)
	fmt.Fprintf(m.out, "Room No: %s\n", detail.RoomNo)
	fmt.Fprintf(m.out, "Customer Name: %s\n", detail.CustomerName)
	fmt.Fprintf(m.out, "Date of Booking: %s\n", detail.BookingDate)
	fmt.Fprintf(m.out, "Date of Occupancy: %s\n", detail.OccupancyDate)
	fmt.Fprintf(m.out, "Duration: %s\n", detail.Duration)
}

func (m *Menu) listUnoccupied(ctx context.Context) {
	res, err := m.rooms.ListUnoccupied(ctx)
	if err != nil {
		fmt.Fprintf(m.out, "Error fetching unoccupied rooms: %v\n", err)

		return
	}

	if len(res.Rooms) == 0 {
		fmt.Fprintln(m.out, "All rooms are currently occupied.")

		return
	}

	fmt.Fprintln(m.out, "Unoccupied Rooms:")

	for _, room := range res.Rooms {
		fmt.Fprintf(m.out, "Room No: %s, Category: %s\n", room.RoomNo, room.Category)
	}
}

func (m *Menu) bookRoom(ctx context.Context) {
	req, ok := m.collectBookingRequest()
	if !ok {
		return
	}

	confirmation, err := m.bookings.Book(ctx, req)
	if err != nil {
		fmt.Fprintf(m.out, "Error during room booking: %v\n", err)

		return
	}

	fmt.Fprintf(m.out, "Room %s booked successfully. Booking ID: %s\n",
		confirmation.RoomNo, confirmation.BookingID)
	fmt.Fprintf(m.out, "Total amount due: %s\n", confirmation.TotalAmount)
}

func (m *Menu) collectBookingRequest() (bookingDto.BookRoomRequest, bool) {
	req := bookingDto.BookRoomRequest{}

	customerID, ok := m.promptInt("Enter Customer ID: ")
	if !ok {
		return req, false
	}

	roomID, ok := m.promptInt("Enter Room ID: ")
	if !ok {
		return req, false
	}

	occupancyDate, ok := m.prompt("Enter date of occupancy (YYYY-MM-DD): ")
	if !ok {
		return req, false
	}

	days, ok := m.promptOptionalInt("Enter number of days (Leave blank if booking hourly): ")
	if !ok {
		return req, false
	}

	hours, ok := m.promptOptionalInt("Enter number of hours (Leave blank if booking daily): ")
	if !ok {
		return req, false
	}

	advanceRaw, ok := m.prompt("Enter advance received: ")
	if !ok {
		return req, false
	}

	advance, err := decimal.NewFromString(advanceRaw)
	if err != nil {
		fmt.Fprintln(m.out, "Advance must be a number.")

		return req, false
	}

	req.CustomerID = customerID
	req.RoomID = roomID
	req.OccupancyDate = occupancyDate
	req.Days = days
	req.Hours = hours
	req.AdvanceReceived = advance

	return req, true
}

func (m *Menu) promptInt(label string) (int64, bool) {
	raw, ok := m.prompt(label)
	if !ok {
		return 0, false
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		fmt.Fprintln(m.out, "Please enter a number.")

		return 0, false
	}

	return value, true
}

func (m *Menu) promptOptionalInt(label string) (*int64, bool) {
	raw, ok := m.prompt(label)
	if !ok {
		return nil, false
	}

	if raw == "" {
		return nil, true
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		fmt.Fprintln(m.out, "Please enter a number or leave blank.")

		return nil, false
	}

	return &value, true
}
