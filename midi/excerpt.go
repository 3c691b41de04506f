package midi

import (
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// Excerpt copies a file from ticksOffset on, keeping at most maxNotes note
// messages per track. Meta and controller events before the offset are kept
// at the start so tempo and programs still apply.
func Excerpt(mf *smf.SMF, ticksOffset uint64, maxNotes int) *smf.SMF {
	res := smf.New()
	res.TimeFormat = mf.TimeFormat

	for _, track := range mf.Tracks {
		var newTrack smf.Track
		var absTicks uint64
		var last uint64
		var numNoteOnOff int
	TrackEventLoop:
		for _, evt := range track {
			absTicks += uint64(evt.Delta)
			if evt.Message.Is(smf.MetaEndOfTrackMsg) {
				continue
			}
			switch {
			case evt.Message.Is(midi.NoteOnMsg), evt.Message.Is(midi.NoteOffMsg):
				if absTicks < ticksOffset {
					continue
				}
				rel := absTicks - ticksOffset
				newTrack.Add(uint32(rel-last), evt.Message)
				last = rel
				numNoteOnOff++
				if maxNotes > 0 && numNoteOnOff >= maxNotes {
					break TrackEventLoop
				}
			default:
				if absTicks < ticksOffset {
					newTrack.Add(0, evt.Message)
					continue
				}
				rel := absTicks - ticksOffset
				newTrack.Add(uint32(rel-last), evt.Message)
				last = rel
			}
		}
		newTrack.Close(0)
		res.Tracks = append(res.Tracks, newTrack)
	}

	return res
}
