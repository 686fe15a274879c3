package model

import (
	"pororo/shared/model"
)

const (
	EntityName = "booking"

	FieldName       = "name"
	FieldPhone      = "phone"
	FieldAddress    = "address"
	FieldCheckIn    = "check_in"
	FieldCheckOut   = "check_out"
	FieldPackage    = "package"
	FieldRoomNumber = "room_number"
	FieldCustomerID = "customer_id"
)

// Booking is one customer's stay. RoomNumber and CustomerID are assigned by
// the ledger when the booking is inserted and never change afterwards.
type Booking struct {
	Name       string
	Phone      string
	Address    string
	CheckIn    Date
	CheckOut   Date
	Package    Package
	Nights     int
	RoomNumber int
	CustomerID int
	model.Metadata
}

// TotalPrice is the nightly price of the package times the nights stayed.
func (b Booking) TotalPrice() int {
	return b.Package.NightlyPrice() * b.Nights
}

// SetStay replaces both stay dates and recomputes Nights.
// The booking is left untouched when checkOut is not after checkIn.
func (b *Booking) SetStay(checkIn, checkOut Date) error {
	nights := NightsBetween(checkIn, checkOut)
	if nights <= 0 {
		return ErrCheckOutNotAfterCheckIn
	}

	b.CheckIn = checkIn
	b.CheckOut = checkOut
	b.Nights = nights

	return nil
}
