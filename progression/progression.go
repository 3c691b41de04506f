package progression

import (
	"github.com/jsphweid/scaledegree/chord"
	"github.com/jsphweid/scaledegree/model"
	"github.com/jsphweid/scaledegree/pitch"
	"github.com/jsphweid/scaledegree/rhythm"
	"github.com/jsphweid/scaledegree/scale"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type EmptyError struct{}

func (e *EmptyError) Error() string {
	return "progression has no chords"
}

func countBars(rhythmTemplate []string) int {
	bars := 1
	for _, d := range rhythmTemplate {
		if rhythm.IsBarBreak(d) {
			bars++
		}
	}
	return bars
}

// Build pairs a rhythm template with chords, one chord per bar. Bars are
// separated by "|" and each sounding slot of a bar repeats that bar's chord.
// With fewer chords than bars the last chord carries on; extra chords are
// ignored. The returned durations have the bar breaks removed.
func Build(entries []model.ChordVoicingEntry, rhythmTemplate []string) ([]string, []pitch.Notes, error) {
	if len(entries) == 0 {
		return nil, nil, &EmptyError{}
	}

	bars := countBars(rhythmTemplate)
	if bars > len(entries) {
		logrus.WithFields(logrus.Fields{"bars": bars, "chords": len(entries)}).
			Warn("fewer chords than bars, repeating the last chord")
	} else if bars < len(entries) {
		logrus.WithFields(logrus.Fields{"bars": bars, "chords": len(entries)}).
			Warn("more chords than bars, ignoring the rest")
	}

	voiced := make(map[int]pitch.Notes)
	voice := func(i int) (pitch.Notes, error) {
		if i >= len(entries) {
			i = len(entries) - 1
		}
		if notes, ok := voiced[i]; ok {
			return notes, nil
		}
		notes, err := chord.BuildNotes(entries[i].Voicing, entries[i].Root)
		if err != nil {
			return nil, errors.Wrapf(err, "chord %s", entries[i].Label)
		}
		voiced[i] = notes
		return notes, nil
	}

	var durations []string
	var groups []pitch.Notes
	played := 0
	bar := 0
	flush := func() error {
		if played == 0 {
			return nil
		}
		notes, err := voice(bar)
		if err != nil {
			return err
		}
		for j := 0; j < played; j++ {
			groups = append(groups, notes)
		}
		played = 0
		return nil
	}

	for _, d := range rhythmTemplate {
		if rhythm.IsBarBreak(d) {
			if err := flush(); err != nil {
				return nil, nil, err
			}
			bar++
			continue
		}
		durations = append(durations, d)
		if !rhythm.IsRest(d) {
			played++
		}
	}
	if err := flush(); err != nil {
		return nil, nil, err
	}
	return durations, groups, nil
}

// Events places built chords along their durations.
func Events(durations []string, groups []pitch.Notes, velocity uint8, startTicks uint32) ([]model.Event, error) {
	pitches := make([][]int, len(groups))
	for i, g := range groups {
		pitches[i] = g.MIDI()
	}
	return rhythm.Merge(durations, pitches, velocity, startTicks)
}

// Melody spells a formula from root and lays one note on each sounding slot.
func Melody(formula string, root string, rhythmTemplate []string, velocity uint8, startTicks uint32) ([]model.Event, error) {
	notes, err := scale.BuildNotes(formula, root)
	if err != nil {
		return nil, err
	}
	pitches := make([][]int, len(notes))
	for i, n := range notes {
		pitches[i] = []int{n.MIDI}
	}
	return rhythm.Merge(rhythmTemplate, pitches, velocity, startTicks)
}
