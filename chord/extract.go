package chord

import (
	"sort"

	"github.com/jsphweid/scaledegree/model"
	"gitlab.com/gomidi/midi/v2/smf"
)

func getChord(offset uint64, pressed map[uint8]bool) model.Chord {
	c := model.Chord{TicksOffset: offset}
	for note := range pressed {
		c.Notes = append(c.Notes, note)
	}
	sort.Slice(c.Notes, func(i, j int) bool {
		return c.Notes[i] < c.Notes[j]
	})
	return c
}

// GetChords lists the sets of sounding notes of a MIDI file, one per tick
// where the set changes, in time order. Empty sets are dropped.
func GetChords(s *smf.SMF) []model.Chord {
	var reducedEvents []model.ReducedEvent
	for _, events := range s.Tracks {
		var absTicks uint64
		for _, event := range events {
			absTicks += uint64(event.Delta)
			var channel, key, velocity uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity) && velocity > 0:
				reducedEvents = append(reducedEvents, model.ReducedEvent{TicksOffset: absTicks, Note: key})
			case event.Message.GetNoteOn(&channel, &key, &velocity),
				event.Message.GetNoteOff(&channel, &key, &velocity):
				reducedEvents = append(reducedEvents, model.ReducedEvent{TicksOffset: absTicks, IsNoteOff: true, Note: key})
			}
		}
	}

	// earlier first, and note offs before note ons at the same tick
	sort.SliceStable(reducedEvents, func(i, j int) bool {
		if reducedEvents[i].TicksOffset != reducedEvents[j].TicksOffset {
			return reducedEvents[i].TicksOffset < reducedEvents[j].TicksOffset
		}
		return reducedEvents[i].IsNoteOff && !reducedEvents[j].IsNoteOff
	})

	var chords []model.Chord
	pressed := make(map[uint8]bool)
	for i, evt := range reducedEvents {
		if evt.IsNoteOff {
			delete(pressed, evt.Note)
		} else {
			pressed[evt.Note] = true
		}
		last := i == len(reducedEvents)-1
		if !last && reducedEvents[i+1].TicksOffset == evt.TicksOffset {
			continue
		}
		if len(pressed) > 0 {
			chords = append(chords, getChord(evt.TicksOffset, pressed))
		}
	}
	return chords
}

// Notes widens a chord's note numbers for spelling.
func Notes(c model.Chord) []int {
	res := make([]int, len(c.Notes))
	for i, n := range c.Notes {
		res[i] = int(n)
	}
	return res
}
