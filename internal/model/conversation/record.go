package conversation

import "time"

// InteractionRecord is one appended entry in a session's interaction log.
// Records are immutable once written; the latest record for a session carries
// the authoritative state for the next dispatch.
type InteractionRecord struct {
	SessionID         string    `json:"session_id"`
	Name              string    `json:"name"`
	Timestamp         time.Time `json:"timestamp"`
	State             State     `json:"current_state"`
	MajorSelected     string    `json:"major_selected"`
	CollegeResearched string    `json:"college_researched"`
}
