package model

import "time"

// Event is a dated happening hosted by a college.
type Event struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Date         time.Time `json:"date"`
	CollegeID    int       `json:"college_id"`
	Participants int       `json:"participants"`
}
