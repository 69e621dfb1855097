package model

// Handout is one week's course handout. Content sections are static course
// material; the handler attaches per-request user and instructor data.
type Handout struct {
	Week     int      `json:"week"`
	Title    string   `json:"title"`
	Summary  string   `json:"summary"`
	Topics   []string `json:"topics"`
	Sections []HandoutSection `json:"sections,omitempty"`
}

// HandoutSection is a titled block of handout content.
type HandoutSection struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}
