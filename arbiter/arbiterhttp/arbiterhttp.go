// Package arbiterhttp exposes a read-only HTTP JSON view of an arbiter's
// channels, for off-chain observers such as wallets, indexers, and
// dispute-monitoring agents.
package arbiterhttp

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/cors"

	"github.com/openchan/openchan/arbiter"
	"github.com/openchan/openchan/state"
)

func New(a *arbiter.Arbiter) http.Handler {
	m := http.NewServeMux()
	m.HandleFunc("/channels", handleChannels(a))
	m.HandleFunc("/channels/", handleChannel(a))
	return cors.Default().Handler(m)
}

func handleChannels(a *arbiter.Arbiter) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, struct {
			Channels []state.Snapshot
		}{
			Channels: a.Channels(),
		})
	}
}

func handleChannel(a *arbiter.Arbiter) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		idText := strings.TrimPrefix(r.URL.Path, "/channels/")
		id := state.ChannelID{}
		if err := id.UnmarshalText([]byte(idText)); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		snapshot, err := a.Channel(id)
		if errors.Is(err, arbiter.ErrNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, snapshot)
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	err := enc.Encode(v)
	if err != nil {
		panic(err)
	}
}
