package storage

import "errors"

var (
	ErrClassNotFound    = errors.New("fitness class not found")
	ErrClassFull        = errors.New("fitness class is fully booked")
	ErrDuplicateBooking = errors.New("client already booked this class")
	ErrBookingNotFound  = errors.New("booking not found")
)
