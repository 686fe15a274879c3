package service

import (
	"context"
	"pororo/infras/otel"
	"pororo/internal/domains/booking/event"
	"pororo/internal/domains/booking/model"
	"pororo/internal/domains/booking/model/dto"
	"pororo/internal/domains/booking/repository"
	"pororo/shared/constant"
	"pororo/shared/validator"
	"slices"

	"github.com/rs/zerolog/log"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error)
	List(ctx context.Context) (dto.BookingList, error)
	Get(ctx context.Context, phone string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, phone string) (dto.BookingResponse, error)
	Delete(ctx context.Context, phone string) error
	Packages(ctx context.Context) []dto.PackageResponse
}

type serviceImpl struct {
	repo      repository.Booking
	publisher event.Publisher
	otel      otel.Otel
}

func New(repo repository.Booking, publisher event.Publisher, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:      repo,
		publisher: publisher,
		otel:      otel,
	}
}

// Create validates the request, books the stay and reports the room number
// and customer id the ledger assigned. Nothing is stored when any check fails.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.CreateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		log.Error().Err(err).Msg("invalid booking request")

		return res, err
	}

	checkIn, err := model.ParseDate(req.CheckIn)
	if err != nil {
		return res, err
	}

	checkOut, err := model.ParseDate(req.CheckOut)
	if err != nil {
		return res, err
	}

	booking := model.Booking{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
	}

	if err = booking.SetStay(checkIn, checkOut); err != nil {
		log.Error().Err(err).Str(model.FieldCheckIn, req.CheckIn).Str(model.FieldCheckOut, req.CheckOut).Msg("booking dates out of order")

		return res, err
	}

	booking.Package, err = model.PackageFromChoice(req.PackageChoice)
	if err != nil {
		log.Error().Err(err).Int("package_choice", req.PackageChoice).Msg("unknown package choice")

		return res, err
	}

	booking, err = s.repo.Insert(ctx, booking)
	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, err
	}

	log.Info().
		Int(model.FieldRoomNumber, booking.RoomNumber).
		Int(model.FieldCustomerID, booking.CustomerID).
		Int("nights", booking.Nights).
		Msg("booking created")

	s.publish(ctx, event.TypeCreated, booking)

	res.FromModel(booking)

	return res, nil
}

// List returns every booking in insertion order. The returned list is a
// snapshot: later changes to the ledger do not show up in it.
func (s *serviceImpl) List(ctx context.Context) (res dto.BookingList, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()

	records := slices.Collect(s.repo.All(ctx))

	scope.SetAttribute("bookings.count", len(records))

	return dto.NewBookingList(slices.Values(records), len(records)), nil
}

func (s *serviceImpl) Get(ctx context.Context, phone string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.repo.GetByPhone(ctx, phone)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, err
	}

	res.FromModel(booking)

	return res, nil
}

// Update replaces the non-blank fields of req on the first booking made with
// phone. Room number and customer id never change. On any error the booking
// keeps all of its previous values.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, phone string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.Normalize()

	if err = validator.ValidateStruct(&req); err != nil {
		log.Error().Err(err).Msg("invalid update request")

		return res, err
	}

	if req.IsEmpty() {
		return s.Get(ctx, phone)
	}

	booking, err := s.repo.UpdateByPhone(ctx, phone, req.Apply)
	if err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return res, err
	}

	log.Info().Int(model.FieldCustomerID, booking.CustomerID).Msg("booking updated")

	s.publish(ctx, event.TypeUpdated, booking)

	res.FromModel(booking)

	return res, nil
}

// Delete removes the first booking made with phone and frees its room number
// and customer id for new bookings.
func (s *serviceImpl) Delete(ctx context.Context, phone string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.repo.DeleteByPhone(ctx, phone)
	if err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return err
	}

	log.Info().
		Int(model.FieldRoomNumber, booking.RoomNumber).
		Int(model.FieldCustomerID, booking.CustomerID).
		Msg("booking deleted")

	s.publish(ctx, event.TypeDeleted, booking)

	return nil
}

func (s *serviceImpl) Packages(_ context.Context) []dto.PackageResponse {
	packages := model.Packages()

	res := make([]dto.PackageResponse, len(packages))
	for i, p := range packages {
		res[i].FromModel(p)
	}

	return res
}

// publish never fails the operation: the ledger change is already committed.
func (s *serviceImpl) publish(ctx context.Context, eventType event.Type, booking model.Booking) {
	if err := s.publisher.Publish(ctx, event.New(eventType, booking)); err != nil {
		log.Warn().Err(err).Str("event", string(eventType)).Msg("failed to publish booking event")
	}
}
