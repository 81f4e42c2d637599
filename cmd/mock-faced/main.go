// mock-faced is a stand-in for the external face-recognition backend. It
// implements the two-route contract the wallet client depends on: a
// multipart /register that associates an image with a name, and a
// multipart /verify that reports whether the image matches a registered
// face. Matching is exact byte equality hashed with SHA-256; good enough
// for local development and end-to-end tests, nothing more.
package main

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"os"
	"sync"

	"github.com/tapwallet/walletd/internal/logging"
)

const maxImageBytes = 10 << 20

type registry struct {
	mu    sync.RWMutex
	faces map[string]string // image hash -> name
}

func (r *registry) register(hash, name string) {
	r.mu.Lock()
	r.faces[hash] = name
	r.mu.Unlock()
}

func (r *registry) match(hash string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	name, ok := r.faces[hash]
	return name, ok
}

func main() {
	logging.Init("mock-faced", "info", os.Getenv("APP_ENV"))

	reg := &registry{faces: make(map[string]string)}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("POST /register", func(w http.ResponseWriter, r *http.Request) {
		name := r.FormValue("name")
		hash, ok := readImageHash(w, r)
		if !ok {
			return
		}
		if name == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name is required"})
			return
		}

		reg.register(hash, name)
		slog.Info("face registered", "name", name)
		writeJSON(w, http.StatusOK, map[string]string{"status": "registered", "name": name})
	})
	mux.HandleFunc("POST /verify", func(w http.ResponseWriter, r *http.Request) {
		hash, ok := readImageHash(w, r)
		if !ok {
			return
		}

		name, matched := reg.match(hash)
		slog.Info("face verified", "match", matched, "name", name)
		writeJSON(w, http.StatusOK, map[string]any{"match": matched, "name": name})
	})

	addr := ":8082"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	slog.Info("mock face backend started", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

func readImageHash(w http.ResponseWriter, r *http.Request) (string, bool) {
	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid multipart form"})
		return "", false
	}
	file, _, err := r.FormFile("image")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "image is required"})
		return "", false
	}
	defer file.Close()

	h := sha256.New()
	if _, err := io.Copy(h, io.LimitReader(file, maxImageBytes)); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "read failed"})
		return "", false
	}
	return hex.EncodeToString(h.Sum(nil)), true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
