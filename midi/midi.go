package midi

import (
	"bytes"
	"os"
	"sort"

	"github.com/jsphweid/scaledegree/constants"
	"github.com/jsphweid/scaledegree/model"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			s = &blank
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return &blank, errors.Wrap(err, "Error reading midi file")
	}
	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return &blank, errors.Wrap(err, "Error parsing midi file")
	}

	return res, nil
}

type timedMessage struct {
	ticks   uint32
	isOff   bool
	message smf.Message
}

func partTrack(part model.Part) smf.Track {
	var msgs []timedMessage
	for _, evt := range part.Events {
		for _, p := range evt.Pitches {
			key := uint8(p)
			msgs = append(msgs,
				timedMessage{ticks: evt.StartTicks, message: smf.Message(midi.NoteOn(part.Channel, key, evt.Velocity))},
				timedMessage{ticks: evt.StartTicks + evt.DurationTicks, isOff: true, message: smf.Message(midi.NoteOff(part.Channel, key))},
			)
		}
	}

	// note offs first so repeated notes retrigger
	sort.SliceStable(msgs, func(i, j int) bool {
		if msgs[i].ticks != msgs[j].ticks {
			return msgs[i].ticks < msgs[j].ticks
		}
		return msgs[i].isOff && !msgs[j].isOff
	})

	var track smf.Track
	if part.Name != "" {
		track.Add(0, smf.MetaTrackSequenceName(part.Name))
	}
	var pos uint32
	for _, m := range msgs {
		track.Add(m.ticks-pos, m.message)
		pos = m.ticks
	}
	track.Close(0)
	return track
}

// Build lays each part on its own track after a tempo track in 4/4.
func Build(parts []model.Part, bpm float64) (*smf.SMF, error) {
	sm := smf.New()
	sm.TimeFormat = smf.MetricTicks(constants.TicksPerQuarter)

	var tempo smf.Track
	tempo.Add(0, smf.MetaMeter(constants.BeatsPerBar, 4))
	tempo.Add(0, smf.MetaTempo(bpm))
	tempo.Close(0)
	if err := sm.Add(tempo); err != nil {
		return nil, errors.Wrap(err, "adding tempo track")
	}

	for _, part := range parts {
		if err := sm.Add(partTrack(part)); err != nil {
			return nil, errors.Wrapf(err, "adding track %q", part.Name)
		}
	}
	return sm, nil
}

func WriteFile(path string, parts []model.Part, bpm float64) error {
	sm, err := Build(parts, bpm)
	if err != nil {
		return err
	}
	if err := sm.WriteFile(path); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	logrus.WithFields(logrus.Fields{"path": path, "tracks": len(sm.Tracks), "bpm": bpm}).Info("wrote midi file")
	return nil
}
