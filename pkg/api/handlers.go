package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/dixieflatline76/Wallfetch/config"
	"github.com/dixieflatline76/Wallfetch/util/log"
)

const defaultHistoryLimit = 20

type urlRequest struct {
	URL string `json:"url"`
}

type pathRequest struct {
	Path string `json:"path"`
}

type pathResponse struct {
	Path string `json:"path"`
}

type successResponse struct {
	Success bool   `json:"success"`
	Path    string `json:"path,omitempty"`
}

// handleHealth returns the server health status.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "running",
		"version": config.AppVersion,
	})
}

// handleWebSocket upgrades the connection to WebSocket.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	s.clientsMu.Lock()
	s.clients[conn] = true
	s.clientsMu.Unlock()
	log.Debugf("[%s] websocket client connected", requestID(r.Context()))

	defer func() {
		s.clientsMu.Lock()
		delete(s.clients, conn)
		s.clientsMu.Unlock()
	}()

	// Clients only send keepalives; reading keeps close frames flowing.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (s *Server) handleData(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	records, err := s.svc.GetData(r.Context(), q.Get("atleast"), q.Get("apikey"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	var req urlRequest
	if !decode(w, r, &req) {
		return
	}
	if req.URL == "" {
		writeBadRequest(w, r, "url is required")
		return
	}

	path, err := s.svc.DownloadImage(r.Context(), req.URL)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, pathResponse{Path: path})
}

func (s *Server) handleLoad(w http.ResponseWriter, r *http.Request) {
	var req urlRequest
	if !decode(w, r, &req) {
		return
	}
	if req.URL == "" {
		writeBadRequest(w, r, "url is required")
		return
	}

	path, ok, err := s.svc.LoadAndSetWallpaper(r.Context(), req.URL)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: ok, Path: path})
}

func (s *Server) handleSetWallpaper(w http.ResponseWriter, r *http.Request) {
	var req pathRequest
	if !decode(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: s.svc.SetWallpaper(req.Path)})
}

func (s *Server) handleSetDirectory(w http.ResponseWriter, r *http.Request) {
	var req pathRequest
	if !decode(w, r, &req) {
		return
	}
	if req.Path == "" {
		writeBadRequest(w, r, "path is required")
		return
	}
	if err := s.svc.SetDirectory(req.Path); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGetDirectory(w http.ResponseWriter, r *http.Request) {
	dir, err := s.svc.GetDirectory()
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, pathResponse{Path: dir})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit := defaultHistoryLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeBadRequest(w, r, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	entries, err := s.svc.History(r.Context(), limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// decode reads a JSON body into v, answering 400 itself on failure.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeBadRequest(w, r, "invalid request body")
		return false
	}
	return true
}
