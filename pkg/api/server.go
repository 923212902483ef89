package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/dixieflatline76/Wallfetch/pkg/history"
	"github.com/dixieflatline76/Wallfetch/pkg/wallhaven"
	"github.com/dixieflatline76/Wallfetch/util/log"
	"github.com/gorilla/websocket"
)

// WallpaperService is the set of operations exposed over HTTP.
type WallpaperService interface {
	GetData(ctx context.Context, minResolution, apiKey string) ([]wallhaven.ImageRecord, error)
	DownloadImage(ctx context.Context, url string) (string, error)
	LoadAndSetWallpaper(ctx context.Context, url string) (string, bool, error)
	SetWallpaper(path string) bool
	SetDirectory(path string) error
	GetDirectory() (string, error)
	History(ctx context.Context, limit int) ([]history.Entry, error)
}

// ErrNoClients is returned by BroadcastWallpaper when no extension is
// connected to take the command.
var ErrNoClients = errors.New("api: no websocket clients connected")

// Server represents the local REST/WebSocket server.
type Server struct {
	httpServer *http.Server
	mux        *http.ServeMux
	upgrader   websocket.Upgrader
	svc        WallpaperService
	addr       string

	// WebSocket management
	clients   map[*websocket.Conn]bool
	clientsMu sync.Mutex
}

// NewServer creates a new API server that will listen on 127.0.0.1:port.
func NewServer(svc WallpaperService, port int) *Server {
	s := &Server{
		mux: http.NewServeMux(),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		svc:     svc,
		addr:    fmt.Sprintf("127.0.0.1:%d", port),
		clients: make(map[*websocket.Conn]bool),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /ws", s.handleWebSocket)
	s.mux.HandleFunc("GET /data", s.handleData)
	s.mux.HandleFunc("POST /download", s.handleDownload)
	s.mux.HandleFunc("POST /wallpaper/load", s.handleLoad)
	s.mux.HandleFunc("POST /wallpaper", s.handleSetWallpaper)
	s.mux.HandleFunc("PUT /directory", s.handleSetDirectory)
	s.mux.HandleFunc("GET /directory", s.handleGetDirectory)
	s.mux.HandleFunc("GET /history", s.handleHistory)
	s.mux.HandleFunc("GET /images", s.handleImageListing)
	s.mux.HandleFunc("GET /images/{name}", s.handleImage)
}

// enableCORS adds CORS headers to the handler.
func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Allow extensions to access localhost
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		w.Header().Set("Access-Control-Expose-Headers", RequestIDHeader)

		// Handle preflight requests
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Handler returns the HTTP handler for the server.
func (s *Server) Handler() http.Handler {
	return withRequestID(enableCORS(s.mux))
}

// Addr returns the address Start listens on.
func (s *Server) Addr() string {
	return s.addr
}

// Start starts the server. It blocks until Stop is called.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	log.Printf("Listening on http://%s", s.addr)
	err := s.httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Stop gracefully shuts the server down and disconnects websocket clients.
func (s *Server) Stop(ctx context.Context) error {
	s.clientsMu.Lock()
	for client := range s.clients {
		client.Close()
		delete(s.clients, client)
	}
	s.clientsMu.Unlock()

	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// NotifyWallpaperSet tells every connected client that path is now the
// wallpaper.
func (s *Server) NotifyWallpaperSet(path string) {
	s.broadcast(map[string]string{
		"type": "wallpaper_set",
		"path": path,
	})
}

// BroadcastWallpaper sends a "set_wallpaper" command to all connected
// clients. It is the ChromeOS bridge: the extension fetches imageURL and
// applies it. It fails when nobody is listening.
func (s *Server) BroadcastWallpaper(imageURL string) error {
	sent := s.broadcast(map[string]string{
		"type": "set_wallpaper",
		"url":  imageURL,
	})
	if sent == 0 {
		return ErrNoClients
	}
	return nil
}

func (s *Server) broadcast(msg map[string]string) int {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()

	sent := 0
	for client := range s.clients {
		if err := client.WriteJSON(msg); err != nil {
			log.Printf("Failed to broadcast to client: %v", err)
			client.Close()
			delete(s.clients, client)
			continue
		}
		sent++
	}
	return sent
}

func (s *Server) clientCount() int {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	return len(s.clients)
}
