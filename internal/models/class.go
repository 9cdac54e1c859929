package models

import "time"

type FitnessClass struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Instructor  string    `json:"instructor"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Timezone    string    `json:"timezone"`
	Capacity    int       `json:"capacity"`
	BookedCount int       `json:"booked_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (c *FitnessClass) AvailableSlots() int {
	return c.Capacity - c.BookedCount
}

func (c *FitnessClass) IsFull() bool {
	return c.BookedCount >= c.Capacity
}

// In returns a copy of the class with its times converted to loc.
// The instants stay the same, only the wall-clock representation changes.
func (c FitnessClass) In(loc *time.Location) FitnessClass {
	c.StartTime = c.StartTime.In(loc)
	c.EndTime = c.EndTime.In(loc)
	c.CreatedAt = c.CreatedAt.In(loc)
	c.UpdatedAt = c.UpdatedAt.In(loc)
	c.Timezone = loc.String()

	return c
}
