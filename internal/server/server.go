package server

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/tartampluch/go-folio/internal/config"
)

// document stores one rendered artifact and its HTTP caching metadata.
type document struct {
	data         []byte
	mime         string
	etag         string
	lastModified string // RFC1123 format required by HTTP headers
}

// ShareServer serves the rendered résumé timeline (iCalendar) and the
// owner's contact card (vCard) on localhost.
type ShareServer struct {
	// Documents use atomic.Pointer for lock-free reads. They are read on
	// every request but replaced only when the UI re-renders, so this
	// avoids RWMutex contention on the hot path.
	timeline atomic.Pointer[document]
	card     atomic.Pointer[document]

	Port string
}

// NewShareServer creates a new instance of the server.
func NewShareServer(port string) *ShareServer {
	return &ShareServer{
		Port: port,
	}
}

// Start initializes the HTTP server and blocks until the context is cancelled.
func (s *ShareServer) Start(ctx context.Context) error {
	if s.Port == "" {
		return errors.New(config.ErrPortRequired)
	}

	mux := http.NewServeMux()
	mux.HandleFunc(config.RouteTimeline, s.handleTimeline)
	mux.HandleFunc(config.RouteContactCard, s.handleContactCard)

	srv := &http.Server{
		Addr:         config.LocalhostBindAddr + config.AddrSeparator + s.Port,
		Handler:      mux,
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: config.ServerWriteTimeout,
		IdleTimeout:  config.ServerIdleTimeout,
	}

	serverError := make(chan error, config.ChannelBufferSize)

	go func() {
		slog.Info(config.MsgServerListen,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyPort, s.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverError <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info(config.MsgServerStop, config.LogKeyComponent, config.CompServer)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("%s: %w", config.ErrServerShutdown, err)
		}
		return nil

	case err := <-serverError:
		return fmt.Errorf("%s: %w", config.ErrServerStartup, err)
	}
}

// UpdateTimeline atomically replaces the served timeline document.
func (s *ShareServer) UpdateTimeline(data []byte) {
	s.timeline.Store(newDocument(data, config.MimeTextCalendar, config.RouteTimeline))
}

// UpdateContactCard atomically replaces the served contact card document.
func (s *ShareServer) UpdateContactCard(data []byte) {
	s.card.Store(newDocument(data, config.MimeTextVCard, config.RouteContactCard))
}

func newDocument(data []byte, mime, route string) *document {
	hash := sha256.Sum256(data)
	etag := fmt.Sprintf(config.FormatETag, hex.EncodeToString(hash[:]))
	lastMod := time.Now().UTC().Format(http.TimeFormat)

	slog.Debug(config.MsgCacheUpdated,
		config.LogKeyComponent, config.CompServer,
		config.LogKeyRoute, route,
		config.LogKeySizeBytes, len(data),
		config.LogKeyETag, etag,
	)

	return &document{
		data:         data,
		mime:         mime,
		etag:         etag,
		lastModified: lastMod,
	}
}

func (s *ShareServer) handleTimeline(w http.ResponseWriter, r *http.Request) {
	s.serveDocument(w, r, s.timeline.Load())
}

func (s *ShareServer) handleContactCard(w http.ResponseWriter, r *http.Request) {
	s.serveDocument(w, r, s.card.Load())
}

// serveDocument writes one cached artifact with HTTP caching support.
func (s *ShareServer) serveDocument(w http.ResponseWriter, r *http.Request, item *document) {
	// 1. Method Validation
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set(config.HeaderAllow, config.AllowedMethods)
		http.Error(w, config.HTTPMsgMethodNotAll, http.StatusMethodNotAllowed)
		return
	}

	// 2. Readiness Check
	if item == nil {
		w.Header().Set(config.HeaderRetryAfter, config.RetryAfterSeconds)
		http.Error(w, config.HTTPMsgInitializing, http.StatusServiceUnavailable)
		return
	}

	// 3. Set Response Headers
	w.Header().Set(config.HeaderContentType, item.mime)
	w.Header().Set(config.HeaderXContentType, config.MimeNoSniff)
	w.Header().Set(config.HeaderCacheControl, config.CacheControlPrivate)
	w.Header().Set(config.HeaderETag, item.etag)
	w.Header().Set(config.HeaderLastModified, item.lastModified)

	// 4. Check Conditional Headers (Client Caching)
	if match := r.Header.Get(config.HeaderIfNoneMatch); match == item.etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	if since := r.Header.Get(config.HeaderIfModifiedSince); since != "" {
		if clientTime, err := time.Parse(http.TimeFormat, since); err == nil {
			if serverTime, err := time.Parse(http.TimeFormat, item.lastModified); err == nil {
				// If server content is not newer than client cache, return 304.
				if !serverTime.After(clientTime) {
					w.WriteHeader(http.StatusNotModified)
					return
				}
			}
		}
	}

	// 5. Serve Content
	if r.Method == http.MethodGet {
		if _, err := io.Copy(w, bytes.NewReader(item.data)); err != nil {
			slog.Error(config.ErrWriteResp,
				config.LogKeyComponent, config.CompServer,
				config.LogKeyError, err,
			)
		}
	}
}
