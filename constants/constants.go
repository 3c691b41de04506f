package constants

import (
	"os"
	"strconv"
)

func GetOutDir() string {
	path := os.Getenv("SCALEDEGREE_OUT_DIR")
	if path != "" {
		return path
	}
	return "./out"
}

func GetPort() string {
	port := os.Getenv("SCALEDEGREE_PORT")
	if port != "" {
		return port
	}
	return "8080"
}

func GetLogLevel() string {
	level := os.Getenv("SCALEDEGREE_LOG_LEVEL")
	if level != "" {
		return level
	}
	return "info"
}

// GetBPM falls back to DefaultBPM when the variable is unset or not a
// positive number.
func GetBPM() float64 {
	raw := os.Getenv("SCALEDEGREE_BPM")
	if raw == "" {
		return DefaultBPM
	}
	bpm, err := strconv.ParseFloat(raw, 64)
	if err != nil || bpm <= 0 {
		return DefaultBPM
	}
	return bpm
}

func GetSentryDSN() string {
	return os.Getenv("SENTRY_DSN")
}

// MIDI note numbers the spelling table covers
const MinMIDI = 0
const MaxMIDI = 127

const ConcertA = 440.0

const TicksPerQuarter = 960

const BeatsPerBar = 4

const DefaultBPM = 120.0

const DefaultVelocity = 90

// octave used for walking bass lines
const BassOctave = 3
