package models

import "time"

type Booking struct {
	ID             string    `json:"id"`
	FitnessClassID int       `json:"fitness_class_id"`
	ClientName     string    `json:"client_name"`
	ClientEmail    string    `json:"client_email"`
	CreatedAt      time.Time `json:"created_at"`
}

type BookingWithClass struct {
	Booking
	FitnessClass FitnessClass `json:"fitness_class"`
}

func (b BookingWithClass) In(loc *time.Location) BookingWithClass {
	b.CreatedAt = b.CreatedAt.In(loc)
	b.FitnessClass = b.FitnessClass.In(loc)

	return b
}
