package model

import "time"

// Student is a scored participant belonging to a college.
// Rating is the 1-based position in the descending score order over the whole
// collection; it is assigned at seed time and only changes on a full reseed.
type Student struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	CollegeID    int       `json:"college_id"`
	Score        int       `json:"score"`
	EventsCount  int       `json:"events_count"`
	Rating       int       `json:"rating"`
	LastActivity time.Time `json:"last_activity"`
	JoinedDate   time.Time `json:"joined_date"`
}

// StudentSort enumerates the accepted listing sort keys. Anything else
// falls back to SortByScore.
type StudentSort string

const (
	SortByScore  StudentSort = "score"
	SortByRating StudentSort = "rating"
	SortByName   StudentSort = "name"
)

// ParseStudentSort maps a raw query value onto a supported sort key.
func ParseStudentSort(raw string) StudentSort {
	switch StudentSort(raw) {
	case SortByRating:
		return SortByRating
	case SortByName:
		return SortByName
	default:
		return SortByScore
	}
}

// ActivityPeriod is the recency window filter on Student.LastActivity.
type ActivityPeriod string

const (
	PeriodAll   ActivityPeriod = "all"
	PeriodWeek  ActivityPeriod = "week"
	PeriodMonth ActivityPeriod = "month"
)

// ParseActivityPeriod maps a raw query value onto a supported period,
// defaulting to PeriodAll.
func ParseActivityPeriod(raw string) ActivityPeriod {
	switch ActivityPeriod(raw) {
	case PeriodWeek:
		return PeriodWeek
	case PeriodMonth:
		return PeriodMonth
	default:
		return PeriodAll
	}
}

// Window returns the lower bound on LastActivity implied by the period,
// relative to now. The second return is false for PeriodAll (no bound).
func (p ActivityPeriod) Window(now time.Time) (time.Time, bool) {
	switch p {
	case PeriodWeek:
		return now.AddDate(0, 0, -7), true
	case PeriodMonth:
		return now.AddDate(0, 0, -30), true
	default:
		return time.Time{}, false
	}
}

// StudentFilter narrows a student listing. Zero values mean "no constraint".
type StudentFilter struct {
	CollegeID   *int
	ActiveSince *time.Time
}

// SearchStudentsRequest is the payload for POST /students/search.
type SearchStudentsRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit" binding:"omitempty,min=1"`
}
