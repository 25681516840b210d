package models

// Entry is one processed capture enriched for display: the top
// classification normalized to a word, its confidence as a percentage
// string, and the dictionary definition (or an inline failure
// message).
type Entry struct {
	ImageID       string `json:"image_id"`
	TopClass      string `json:"top_class"`
	Confidence    string `json:"confidence"`
	Definition    string `json:"definition"`
	Timestamp     int64  `json:"timestamp"`
	FormattedTime string `json:"formatted_time"`
	CapturedAt    string `json:"captured_at"`
}
