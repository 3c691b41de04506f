package midi

import (
	"sort"

	"github.com/jsphweid/scaledegree/model"
	"gitlab.com/gomidi/midi/v2/smf"
)

type held struct {
	start    uint32
	velocity uint8
}

// Notes pairs note ons with their note offs across all tracks. Each note
// becomes a single-pitch event; notes left hanging at the end are dropped.
func Notes(s *smf.SMF) []model.Event {
	var res []model.Event
	for _, track := range s.Tracks {
		var absTicks uint32
		sounding := make(map[[2]uint8]held)
		for _, event := range track {
			absTicks += event.Delta
			var channel, key, velocity uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity) && velocity > 0:
				sounding[[2]uint8{channel, key}] = held{start: absTicks, velocity: velocity}
			case event.Message.GetNoteOn(&channel, &key, &velocity),
				event.Message.GetNoteOff(&channel, &key, &velocity):
				id := [2]uint8{channel, key}
				h, ok := sounding[id]
				if !ok {
					continue
				}
				delete(sounding, id)
				res = append(res, model.Event{
					StartTicks:    h.start,
					DurationTicks: absTicks - h.start,
					Pitches:       []int{int(key)},
					Velocity:      h.velocity,
				})
			}
		}
	}

	sort.SliceStable(res, func(i, j int) bool {
		if res[i].StartTicks != res[j].StartTicks {
			return res[i].StartTicks < res[j].StartTicks
		}
		return res[i].Pitches[0] < res[j].Pitches[0]
	})
	return res
}

func ReadNotes(path string) ([]model.Event, error) {
	s, err := ReadMidiFile(path)
	if err != nil {
		return nil, err
	}
	return Notes(s), nil
}
