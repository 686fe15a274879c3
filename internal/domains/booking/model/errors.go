package model

import (
	"net/http"
	"pororo/shared/failure"
)

var (
	ErrBookingNotFound         = failure.New(http.StatusNotFound, "no booking found with that phone number")
	ErrInvalidDate             = failure.New(http.StatusBadRequest, "date must be a valid date in DD/MM/YYYY format")
	ErrUnknownPackage          = failure.New(http.StatusBadRequest, "package choice must be between 1 and 4")
	ErrCheckOutNotAfterCheckIn = failure.New(http.StatusUnprocessableEntity, "check-out date must be after check-in date")
	ErrPoolExhausted           = failure.New(http.StatusConflict, "no room numbers or customer ids left to assign")
)
