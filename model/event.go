package model

// Event is a note or chord placed in time, ready to be written to a track.
type Event struct {
	StartTicks    uint32
	DurationTicks uint32
	Pitches       []int
	Velocity      uint8
}

// Part is a named sequence of events, written as one track.
type Part struct {
	Name    string
	Channel uint8
	Events  []Event
}
