package cmd

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/gorilla/mux"
	"github.com/jsphweid/scaledegree/chord"
	"github.com/jsphweid/scaledegree/constants"
	"github.com/jsphweid/scaledegree/formula"
	"github.com/jsphweid/scaledegree/model"
	"github.com/jsphweid/scaledegree/pitch"
	"github.com/jsphweid/scaledegree/progression"
	"github.com/jsphweid/scaledegree/scale"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const sentryFlushTimeout = 2 * time.Second

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the spelling engine over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Error("could not encode response")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	logrus.WithFields(logrus.Fields{"path": r.URL.Path, "error": err}).Info("bad request")
	writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
}

func decode(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.Wrap(err, "Could not unmarshal request body")
	}
	return nil
}

func notesResponse(notes pitch.Notes) model.NotesResponse {
	midis := notes.MIDI()
	freqs := make([]float64, len(midis))
	for i, m := range midis {
		freqs[i] = pitch.Frequency(m)
	}
	return model.NotesResponse{
		Notes:    notes.Strings(),
		Midi:     midis,
		Freqs:    freqs,
		Key:      chord.Key(midis),
		Degraded: notes.Degraded(),
	}
}

func HandleScale(w http.ResponseWriter, r *http.Request) {
	var input model.NotesRequestBody
	if err := decode(r, &input); err != nil {
		writeError(w, r, err)
		return
	}
	notes, err := scale.BuildNotes(input.Formula, input.Root)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, notesResponse(notes))
}

func HandleChord(w http.ResponseWriter, r *http.Request) {
	var input model.NotesRequestBody
	if err := decode(r, &input); err != nil {
		writeError(w, r, err)
		return
	}
	notes, err := chord.BuildNotes(input.Formula, input.Root)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, notesResponse(notes))
}

func HandleTranspose(w http.ResponseWriter, r *http.Request) {
	var input model.TransposeRequestBody
	if err := decode(r, &input); err != nil {
		writeError(w, r, err)
		return
	}
	names, err := pitch.Transpose(input.Notes, input.HalfSteps)
	if err != nil {
		writeError(w, r, err)
		return
	}
	res := model.TransposeResponse{Notes: make([]string, len(names)), Midi: make([]int, len(names))}
	for i, n := range names {
		res.Notes[i] = n.String()
		res.Midi[i] = n.MIDI()
	}
	writeJSON(w, http.StatusOK, res)
}

func HandleDegree(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	token := r.URL.Query().Get("degree")
	root, err := formula.RootOf(key, token)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, model.DegreeResponse{Key: key, Degree: token, Root: root.String()})
}

// HandleProgression voices the given chords, or a II-V-I template when none
// are given, over the rhythm (the default comping rhythm if empty).
func HandleProgression(w http.ResponseWriter, r *http.Request) {
	var input model.ProgressionRequestBody
	if err := decode(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	entries := input.Chords
	if len(entries) == 0 {
		var err error
		entries, err = progression.TwoFiveOne(input.Key, input.Minor, input.Variant)
		if err != nil {
			writeError(w, r, err)
			return
		}
	}
	rhythmTemplate := input.Rhythm
	if len(rhythmTemplate) == 0 {
		rhythmTemplate = progression.DefaultChordRhythm
	}

	durations, groups, err := progression.Build(entries, rhythmTemplate)
	if err != nil {
		writeError(w, r, err)
		return
	}
	res := model.ProgressionResponse{Chords: entries, Durations: durations, Pitches: make([][]string, len(groups))}
	for i, g := range groups {
		res.Pitches[i] = g.Strings()
		res.Degraded = res.Degraded || g.Degraded()
	}
	writeJSON(w, http.StatusOK, res)
}

func Router() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/scale", HandleScale).Methods("POST")
	router.HandleFunc("/chord", HandleChord).Methods("POST")
	router.HandleFunc("/transpose", HandleTranspose).Methods("POST")
	router.HandleFunc("/degree", HandleDegree).Methods("GET")
	router.HandleFunc("/progression", HandleProgression).Methods("POST")
	return cors.Default().Handler(router)
}

func initSentry() bool {
	dsn := constants.GetSentryDSN()
	if dsn == "" {
		logrus.Debug("SENTRY_DSN not set, not reporting errors")
		return false
	}
	if err := sentry.Init(sentry.ClientOptions{Dsn: dsn}); err != nil {
		logrus.WithError(err).Warn("Failed to initialize Sentry")
		return false
	}
	return true
}

func serve() error {
	handler := Router()
	if initSentry() {
		defer sentry.Flush(sentryFlushTimeout)
		handler = sentryhttp.New(sentryhttp.Options{Repanic: true}).Handle(handler)
	}

	addr := ":" + constants.GetPort()
	logrus.WithField("addr", addr).Info("serving")
	return http.ListenAndServe(addr, handler)
}
