package model

type NotesRequestBody struct {
	Formula string `json:"formula"`
	Root    string `json:"root"`
}

type NotesResponse struct {
	Notes    []string  `json:"notes"`
	Midi     []int     `json:"midi"`
	Freqs    []float64 `json:"frequencies"`
	Key      string    `json:"key"`
	Degraded bool      `json:"degraded"`
}

type TransposeRequestBody struct {
	Notes     []string `json:"notes"`
	HalfSteps int      `json:"half_steps"`
}

type TransposeResponse struct {
	Notes []string `json:"notes"`
	Midi  []int    `json:"midi"`
}

type DegreeResponse struct {
	Key    string `json:"key"`
	Degree string `json:"degree"`
	Root   string `json:"root"`
}

type ProgressionRequestBody struct {
	Key     string              `json:"key"`
	Minor   bool                `json:"minor"`
	Variant int                 `json:"variant"`
	Chords  []ChordVoicingEntry `json:"chords"`
	Rhythm  []string            `json:"rhythm"`
}

type ProgressionResponse struct {
	Chords    []ChordVoicingEntry `json:"chords"`
	Durations []string            `json:"durations"`
	Pitches   [][]string          `json:"pitches"`
	Degraded  bool                `json:"degraded"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
