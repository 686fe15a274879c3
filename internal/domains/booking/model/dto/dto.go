package dto

import (
	"iter"
	"pororo/internal/domains/booking/model"
	gDto "pororo/shared/dto"
	"strings"
)

type CreateBookingRequest struct {
	Name          string `json:"name"           validate:"notblank"`
	Phone         string `json:"phone"          validate:"notblank"`
	Address       string `json:"address"        validate:"notblank"`
	CheckIn       string `json:"check_in"       validate:"date_dmy"`
	CheckOut      string `json:"check_out"      validate:"date_dmy"`
	PackageChoice int    `json:"package_choice"`
}

// UpdateBookingRequest carries replacement values. A nil or blank field keeps
// the current value.
type UpdateBookingRequest struct {
	Name          *string `json:"name,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Address       *string `json:"address,omitempty"`
	CheckIn       *string `json:"check_in,omitempty"       validate:"omitnil,date_dmy"`
	CheckOut      *string `json:"check_out,omitempty"      validate:"omitnil,date_dmy"`
	PackageChoice *int    `json:"package_choice,omitempty"`
}

// Normalize drops blank replacement values so they read as "keep".
func (r *UpdateBookingRequest) Normalize() {
	r.Name = nilIfBlank(r.Name)
	r.Phone = nilIfBlank(r.Phone)
	r.Address = nilIfBlank(r.Address)
	r.CheckIn = nilIfBlank(r.CheckIn)
	r.CheckOut = nilIfBlank(r.CheckOut)
}

// IsEmpty reports whether the request replaces nothing.
func (r UpdateBookingRequest) IsEmpty() bool {
	r.Normalize()

	return r == UpdateBookingRequest{}
}

// Apply writes the replacement values onto booking. The dates are re-validated
// as a pair; on any error booking is left exactly as it was.
func (r UpdateBookingRequest) Apply(booking *model.Booking) error {
	r.Normalize()

	next := *booking

	if r.Name != nil {
		next.Name = *r.Name
	}

	if r.Phone != nil {
		next.Phone = *r.Phone
	}

	if r.Address != nil {
		next.Address = *r.Address
	}

	checkIn, checkOut := next.CheckIn, next.CheckOut

	if r.CheckIn != nil {
		date, err := model.ParseDate(*r.CheckIn)
		if err != nil {
			return err
		}

		checkIn = date
	}

	if r.CheckOut != nil {
		date, err := model.ParseDate(*r.CheckOut)
		if err != nil {
			return err
		}

		checkOut = date
	}

	if err := next.SetStay(checkIn, checkOut); err != nil {
		return err
	}

	if r.PackageChoice != nil {
		pkg, err := model.PackageFromChoice(*r.PackageChoice)
		if err != nil {
			return err
		}

		next.Package = pkg
	}

	*booking = next

	return nil
}

func nilIfBlank(value *string) *string {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil
	}

	return value
}

type PackageResponse struct {
	Choice       int    `json:"choice"`
	Code         string `json:"code"`
	Name         string `json:"name"`
	NightlyPrice int    `json:"nightly_price"`
}

func (r *PackageResponse) FromModel(p model.Package) {
	r.Choice = p.Choice()
	r.Code = string(p)
	r.Name = p.DisplayName()
	r.NightlyPrice = p.NightlyPrice()
}

type BookingResponse struct {
	CustomerID int             `json:"customer_id"`
	RoomNumber int             `json:"room_number"`
	Name       string          `json:"name"`
	Phone      string          `json:"phone"`
	Address    string          `json:"address"`
	CheckIn    string          `json:"check_in"`
	CheckOut   string          `json:"check_out"`
	Package    PackageResponse `json:"package"`
	Nights     int             `json:"nights"`
	TotalPrice int             `json:"total_price"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.CustomerID = model.CustomerID
	r.RoomNumber = model.RoomNumber
	r.Name = model.Name
	r.Phone = model.Phone
	r.Address = model.Address
	r.CheckIn = model.CheckIn.String()
	r.CheckOut = model.CheckOut.String()
	r.Package.FromModel(model.Package)
	r.Nights = model.Nights
	r.TotalPrice = model.TotalPrice()
	r.Metadata.FromModel(model.Metadata)
}

type CreateBookingResponse struct {
	RoomNumber int             `json:"room_number"`
	CustomerID int             `json:"customer_id"`
	Booking    BookingResponse `json:"booking"`
}

func (r *CreateBookingResponse) FromModel(model model.Booking) {
	r.RoomNumber = model.RoomNumber
	r.CustomerID = model.CustomerID
	r.Booking.FromModel(model)
}

// BookingList is a finite, restartable view of the ledger in insertion order.
// Each pass over All converts records to responses as it goes.
type BookingList struct {
	records iter.Seq[model.Booking]
	total   int
}

func NewBookingList(records iter.Seq[model.Booking], total int) BookingList {
	return BookingList{
		records: records,
		total:   total,
	}
}

func (l BookingList) Empty() bool {
	return l.total == 0
}

func (l BookingList) Len() int {
	return l.total
}

func (l BookingList) All() iter.Seq[BookingResponse] {
	return func(yield func(BookingResponse) bool) {
		if l.records == nil {
			return
		}

		for record := range l.records {
			var res BookingResponse
			res.FromModel(record)

			if !yield(res) {
				return
			}
		}
	}
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromList(list BookingList) {
	r.TotalData = list.Len()
	r.Bookings = make([]BookingResponse, 0, list.Len())

	for res := range list.All() {
		r.Bookings = append(r.Bookings, res)
	}
}
