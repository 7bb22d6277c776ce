package model

// College is a grouping entity students and events reference by id.
// StudentsCount is a seed-time snapshot; the authoritative count is always
// derived from the students collection.
type College struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	City          string `json:"city"`
	StudentsCount int    `json:"students_count"`
}

// UnknownCollegeName is reported when a student or event references a
// college id with no matching College record. Dangling references are
// tolerated, not rejected.
const UnknownCollegeName = "Unknown"

// CollegeRollup is the derived summary for a single college's students.
// AvgScore uses integer floor division and is 0 when the college has no
// students.
type CollegeRollup struct {
	StudentsCount int `json:"students_count"`
	AvgScore      int `json:"avg_score"`
	TotalScore    int `json:"total_score"`
}

// LeaderboardEntry is one ranked college group in the leaderboard.
type LeaderboardEntry struct {
	CollegeID     int     `json:"college_id"`
	CollegeName   string  `json:"college_name"`
	StudentsCount int     `json:"students_count"`
	TotalScore    int     `json:"total_score"`
	AvgScore      float64 `json:"avg_score"`
	Rank          int     `json:"rank"`
}

// CollegeStats is one per-college group in /stats/by-college.
type CollegeStats struct {
	CollegeID     int     `json:"college_id"`
	CollegeName   string  `json:"college_name"`
	StudentsCount int     `json:"students_count"`
	TotalScore    int     `json:"total_score"`
	AvgScore      float64 `json:"avg_score"`
	EventsCount   int     `json:"events_count"`
}
