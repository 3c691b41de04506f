package progression

// walking bass lines over a II-V-I, two bars of II-V then two of I, read
// from the key's root
var MajorWalkBass = []string{
	"2 4 6 4 5 4 3 2 1 2 3 5 8 7 5 3",
	"2 1 ,7 ,6 ,5 ,6 ,b7 ,7 1 2 b3 3 1 ,7 ,6 ,5",
	"2 3 4 #4 5 6 b7 7 8 7 6 5 4 3 2 1",
	"2 1 ,7 ,6 ,5 4 3 2 1 ,7 ,6 ,5 ,6 3 2 1",
	"2 4 6 b6 5 4 2 ,7 1 3 5 4 3 2 1 3",
}

var MinorWalkBass = []string{
	"2 4 b6 4 5 4 b3 2 1 2 b3 5 8 5 4 b3",
	"2 4 5 b6 5 4 b3 2 1 b3 5 4 b3 2 1 ,5",
	"2 b3 4 #4 5 6 b7 7 8 b7 b6 5 4 b3 2 1",
	"2 1 ,b7 ,b6 ,5 4 b3 2 1 ,5 1 2 b3 5 4 b3",
	"2 4 b6 #4 5 4 2 ,7 1 b3 5 4 b3 2 1 b3",
}

var DominantWalk2Bars = []string{
	"1 3 5 6 8 6 5 3",
	"1 3 5 6 b7 6 5 3",
	"8 b7 6 b6 5 4 b3 3",
	"1 8 b7 5 1 5 4 3",
	"1 3 4 #4 5 4 b3 2",
}

var DominantWalk1Bar = []string{
	"1 8 b7 5",
	"1 2 b3 3",
	"1 3 4 5",
	"1 3 5 6",
}

var BluesTurnarounds = []string{
	"1 b7 6 b6 5 4 b3 2",
	"1 b7 6 b6 5 b3 2 b2",
	"1 3 4 #4 5 6 b7 7",
	"1 b7 6 b3 2 b6 5 b2",
	"1 #5 6 #1 2 #4 5 ,7",
}

var Dom9Voicings = []string{
	"1 3 b7 9 12",
	"1 3 b7 9",
	"3 b7 9 12",
	"b7 10 12 15",
}

var Dom13Voicings = []string{
	"1 b7 10 13",
	"b7 10 13 15",
	"3 b7 9 13",
	"b7 10 13 u9",
}

// Library groups the bass and voicing formulas by name.
var Library = map[string][]string{
	"walk-major":       MajorWalkBass,
	"walk-minor":       MinorWalkBass,
	"dominant-2bar":    DominantWalk2Bars,
	"dominant-1bar":    DominantWalk1Bar,
	"blues-turnaround": BluesTurnarounds,
	"dom9-voicings":    Dom9Voicings,
	"dom13-voicings":   Dom13Voicings,
}
