package booking

import (
	"net/http"
	"net/url"
	"pororo/infras/otel"
	"pororo/internal/domains/booking/model/dto"
	"pororo/internal/domains/booking/service"
	"pororo/shared/constant"
	"pororo/shared/failure"
	"pororo/shared/validator"
	"pororo/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

const messageNoBookings = "No bookings found."

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/{phone}", handler.GetBookingByPhone)
		routerGroup.Patch("/{phone}", handler.UpdateBooking)
		routerGroup.Delete("/{phone}", handler.DeleteBooking)
	})

	router.Get("/packages", handler.GetPackages)
}

// CreateBooking handles the creation of a new booking.
// @Summary Create a new booking
// @Description Book a holiday package. The ledger assigns a free room number and customer ID.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.CreateBookingResponse] "Assigned room number and customer ID"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/bookings [post]
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking created successfully")

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetBookings lists every booking in the order it was made.
// @Summary Get all bookings
// @Description Retrieve every booking with its total price.
// @Tags Booking
// @Produce json
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of bookings"
// @Success 200 {object} response.Message "No bookings found."
// @Router /v1/bookings [get]
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	list, err := handler.service.List(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	if list.Empty() {
		response.WithMessage(w, http.StatusOK, messageNoBookings)

		return
	}

	res := dto.GetBookingsResponse{}
	res.FromList(list)

	response.WithJSON(w, http.StatusOK, res)
}

// GetBookingByPhone retrieves the first booking made with a phone number.
// @Summary Get a booking by phone number
// @Tags Booking
// @Produce json
// @Param phone path string true "Phone number"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking details"
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{phone} [get]
func (handler *Handler) GetBookingByPhone(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByPhone")
	defer scope.End()

	phone, err := phoneParam(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Get(ctx, phone)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking by phone")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}

// UpdateBooking replaces the given fields of the first booking made with a phone number.
// @Summary Update a booking by phone number
// @Description Omitted fields keep their values. Room number and customer ID never change.
// @Tags Booking
// @Accept json
// @Produce json
// @Param phone path string true "Phone number"
// @Param request body dto.UpdateBookingRequest true "Update Booking Request"
// @Success 200 {object} response.Data[dto.BookingResponse] "Updated booking"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/bookings/{phone} [patch]
func (handler *Handler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBooking")
	defer scope.End()

	phone, err := phoneParam(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	req := dto.UpdateBookingRequest{}
	if err = validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Update(ctx, req, phone)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking updated successfully")

	response.WithJSON(w, http.StatusOK, booking)
}

// DeleteBooking removes the first booking made with a phone number.
// @Summary Delete a booking by phone number
// @Tags Booking
// @Produce json
// @Param phone path string true "Phone number"
// @Success 200 {object} response.Message "Booking deleted successfully"
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{phone} [delete]
func (handler *Handler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBooking")
	defer scope.End()

	phone, err := phoneParam(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	if err = handler.service.Delete(ctx, phone); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking deleted successfully")

	response.WithMessage(w, http.StatusOK, "Booking deleted successfully")
}

// GetPackages lists the holiday packages in menu order.
// @Summary Get holiday packages
// @Tags Package
// @Produce json
// @Success 200 {object} response.Data[[]dto.PackageResponse] "Package catalogue"
// @Router /v1/packages [get]
func (handler *Handler) GetPackages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPackages")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, handler.service.Packages(ctx))
}

// phoneParam returns the phone path segment. chi matches on the raw path only
// when the request carried escapes the default encoding would not produce, as
// in "%2B60123"; only then is the segment still escaped.
func phoneParam(r *http.Request) (string, error) {
	phone := chi.URLParam(r, constant.RequestParamPhone)
	if r.URL.RawPath == "" {
		return phone, nil
	}

	phone, err := url.PathUnescape(phone)
	if err != nil {
		return "", failure.BadRequestFromString("phone is not a valid path segment")
	}

	return phone, nil
}
