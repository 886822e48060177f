package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

var (
	errMissingGameID = errors.New("missing game ID")
	errInvalidSeat   = errors.New("invalid seat")
	errMissingBody   = errors.New("missing body")
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	bytes, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(bytes)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, ErrorRes{Error: err.Error()})
}

func (g *GameServer) writeParseError(err error, w http.ResponseWriter) {
	if errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, errMissingBody)
		return
	}

	g.log.WithError(err).Debug("could not parse request body")
	writeError(w, http.StatusBadRequest, err)
}
