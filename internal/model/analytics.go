package model

// ScoreBucketBounds are the half-open [low, high) histogram boundaries for
// the score distribution. Scores outside every interval land in the "Other"
// bucket rather than being dropped.
var ScoreBucketBounds = []int{0, 200, 400, 600, 800, 1000, 1200, 1400, 1600}

// OtherBucketLabel marks the catch-all histogram bucket.
const OtherBucketLabel = "Other"

// ScoreBucket is one non-empty histogram bucket. Low/High are nil for the
// catch-all bucket.
type ScoreBucket struct {
	Range string `json:"range"`
	Low   *int   `json:"low,omitempty"`
	High  *int   `json:"high,omitempty"`
	Count int    `json:"count"`
}

// CollegeTopStudent is the best scorer within one college.
type CollegeTopStudent struct {
	CollegeID   int    `json:"college_id"`
	CollegeName string `json:"college_name"`
	Student     string `json:"student"`
	Score       int    `json:"score"`
}
