package model

type Notes = []uint8

// Chord is a set of notes sounding together in a MIDI file.
type Chord struct {
	TicksOffset uint64
	Notes       Notes
}

type ReducedEvent struct {
	TicksOffset uint64
	IsNoteOff   bool
	Note        uint8
}

// ChordVoicingEntry is one chord of a progression template, e.g.
// {"Dm7", "D3", "1 b3 b7 9"}.
type ChordVoicingEntry struct {
	Label   string `json:"label"`
	Root    string `json:"root"`
	Voicing string `json:"voicing"`
}
