package rhythm

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jsphweid/scaledegree/constants"
	"github.com/jsphweid/scaledegree/model"
)

const BarBreak = "|"

type DurationError struct {
	Duration string
}

func (e *DurationError) Error() string {
	return fmt.Sprintf("cannot parse duration: %q", e.Duration)
}

type MismatchError struct {
	Slots   int
	Pitches int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%d sounding slots but %d pitch groups", e.Slots, e.Pitches)
}

func IsBarBreak(d string) bool {
	return strings.TrimSpace(d) == BarBreak
}

// IsRest reports whether d is a rest such as "8nr" or "2nr".
func IsRest(d string) bool {
	return strings.HasSuffix(strings.TrimSpace(d), "r")
}

func parsePart(p string) (uint32, bool) {
	if len(p) < 2 {
		return 0, false
	}
	dotted := strings.HasSuffix(p, ".")
	p = strings.TrimSuffix(p, ".")

	unit := p[len(p)-1]
	n, err := strconv.Atoi(p[:len(p)-1])
	if err != nil || n <= 0 {
		return 0, false
	}

	whole := uint64(4 * constants.TicksPerQuarter)
	count := uint64(n)
	var ticks uint64
	switch unit {
	case 'n':
		if whole%count != 0 {
			return 0, false
		}
		ticks = whole / count
	case 't':
		if count > whole || (whole*2)%(count*3) != 0 {
			return 0, false
		}
		ticks = whole * 2 / (count * 3)
	case 'm':
		if count > math.MaxUint32 {
			return 0, false
		}
		ticks = count * constants.BeatsPerBar * constants.TicksPerQuarter
	default:
		return 0, false
	}
	if dotted {
		ticks += ticks / 2
	}
	if ticks > math.MaxUint32 {
		return 0, false
	}
	return uint32(ticks), true
}

// Ticks converts a duration such as "4n", "8n+4n", "4n.", "8t", "1m" or a
// rest like "2nr" into ticks.
func Ticks(d string) (uint32, error) {
	s := strings.TrimSuffix(strings.TrimSpace(d), "r")
	if s == "" {
		return 0, &DurationError{Duration: d}
	}
	var total uint64
	for _, part := range strings.Split(s, "+") {
		ticks, ok := parsePart(part)
		if !ok {
			return 0, &DurationError{Duration: d}
		}
		total += uint64(ticks)
		if total > math.MaxUint32 {
			return 0, &DurationError{Duration: d}
		}
	}
	return uint32(total), nil
}

// Merge lays pitches out along durations. Every sounding slot takes the next
// pitch group; rests only move time forward. Bar breaks are skipped.
func Merge(durations []string, pitches [][]int, velocity uint8, startTicks uint32) ([]model.Event, error) {
	slots := 0
	for _, d := range durations {
		if !IsBarBreak(d) && !IsRest(d) {
			slots++
		}
	}
	if slots != len(pitches) {
		return nil, &MismatchError{Slots: slots, Pitches: len(pitches)}
	}

	var events []model.Event
	pos := startTicks
	next := 0
	for _, d := range durations {
		if IsBarBreak(d) {
			continue
		}
		ticks, err := Ticks(d)
		if err != nil {
			return nil, err
		}
		if uint64(pos)+uint64(ticks) > math.MaxUint32 {
			return nil, &DurationError{Duration: d}
		}
		if !IsRest(d) {
			events = append(events, model.Event{
				StartTicks:    pos,
				DurationTicks: ticks,
				Pitches:       pitches[next],
				Velocity:      velocity,
			})
			next++
		}
		pos += ticks
	}
	return events, nil
}
