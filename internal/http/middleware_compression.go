package httpx

import (
	"bufio"
	"compress/gzip"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
)

// CompressionConfig holds configuration for the compression middleware.
type CompressionConfig struct {
	Level   int // Compression level (1-9)
	MinSize int // Minimum response size to compress in bytes, 0 = always compress
	Logger  *slog.Logger

	writerPool    *gzipWriterPool
	compressTypes map[string]bool
}

// gzipWriterPool keeps one sync.Pool of gzip writers per compression level.
type gzipWriterPool struct {
	mu    sync.Mutex
	pools map[int]*sync.Pool
}

func newGzipWriterPool() *gzipWriterPool {
	return &gzipWriterPool{pools: make(map[int]*sync.Pool)}
}

func (p *gzipWriterPool) levelPool(level int) *sync.Pool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if pool, ok := p.pools[level]; ok {
		return pool
	}
	pool := &sync.Pool{New: func() any { return newGzipWriter(level) }}
	p.pools[level] = pool
	return pool
}

func (p *gzipWriterPool) get(level int) *gzip.Writer {
	if w, ok := p.levelPool(level).Get().(*gzip.Writer); ok {
		return w
	}
	return newGzipWriter(level)
}

func (p *gzipWriterPool) put(w *gzip.Writer, level int) {
	w.Reset(io.Discard)
	p.levelPool(level).Put(w)
}

func newGzipWriter(level int) *gzip.Writer {
	w, err := gzip.NewWriterLevel(io.Discard, level)
	if err != nil {
		return gzip.NewWriter(io.Discard)
	}
	return w
}

func defaultCompressibleTypes() map[string]bool {
	return map[string]bool{
		"text/html":              true,
		"text/css":               true,
		"text/plain":             true,
		"text/javascript":        true,
		"application/javascript": true,
		"application/json":       true,
		"image/svg+xml":          true,
	}
}

// Compression returns a middleware that gzips text responses for clients that
// accept it. HEAD requests, 1xx/204/304 responses and responses that already
// carry a Content-Encoding pass through untouched.
func Compression(cfg CompressionConfig) func(http.Handler) http.Handler {
	if cfg.writerPool == nil {
		cfg.writerPool = newGzipWriterPool()
	}
	if cfg.compressTypes == nil {
		cfg.compressTypes = defaultCompressibleTypes()
	}
	if cfg.Level < gzip.BestSpeed || cfg.Level > gzip.BestCompression {
		cfg.Level = gzip.DefaultCompression
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodHead || !acceptsGzip(r.Header.Get("Accept-Encoding")) {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Add("Vary", "Accept-Encoding")
			gzw := &gzipResponseWriter{ResponseWriter: w, request: r, config: &cfg}
			next.ServeHTTP(gzw, r)
			gzw.finish()
		})
	}
}

// acceptsGzip checks if the client accepts gzip encoding, honoring q=0.
func acceptsGzip(acceptEncoding string) bool {
	for _, part := range strings.Split(acceptEncoding, ",") {
		name, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		if !strings.EqualFold(strings.TrimSpace(name), "gzip") {
			continue
		}
		q := strings.ReplaceAll(strings.TrimSpace(params), " ", "")
		return q != "q=0" && q != "q=0.0" && q != "q=0.00" && q != "q=0.000"
	}
	return false
}

func isCompressibleContentType(contentType string, compressTypes map[string]bool) bool {
	mediaType, _, _ := strings.Cut(contentType, ";")
	return compressTypes[strings.ToLower(strings.TrimSpace(mediaType))]
}

// gzipResponseWriter decides at WriteHeader time whether to compress.
type gzipResponseWriter struct {
	http.ResponseWriter
	request       *http.Request
	config        *CompressionConfig
	gzipWriter    *gzip.Writer
	headerWritten bool
	status        int
	buffered      []byte
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.headerWritten {
		return
	}
	w.headerWritten = true
	w.status = statusCode

	if statusCode < 200 || statusCode == http.StatusNoContent || statusCode == http.StatusNotModified ||
		w.Header().Get("Content-Encoding") != "" {
		w.ResponseWriter.WriteHeader(statusCode)
		return
	}
	if ct := w.Header().Get("Content-Type"); ct != "" && !isCompressibleContentType(ct, w.config.compressTypes) {
		w.ResponseWriter.WriteHeader(statusCode)
		return
	}
	if w.config.MinSize > 0 {
		// Headers are held back until MinSize bytes arrive or the handler finishes.
		w.buffered = make([]byte, 0, w.config.MinSize)
		return
	}
	w.startGzip()
}

func (w *gzipResponseWriter) startGzip() {
	w.gzipWriter = w.config.writerPool.get(w.config.Level)
	w.gzipWriter.Reset(w.ResponseWriter)
	w.Header().Set("Content-Encoding", "gzip")
	w.Header().Del("Content-Length")
	w.ResponseWriter.WriteHeader(w.status)
}

func (w *gzipResponseWriter) Write(b []byte) (int, error) {
	if !w.headerWritten {
		if w.Header().Get("Content-Type") == "" {
			w.Header().Set("Content-Type", http.DetectContentType(b))
		}
		w.WriteHeader(http.StatusOK)
	}

	if w.buffered != nil {
		w.buffered = append(w.buffered, b...)
		if len(w.buffered) < w.config.MinSize {
			return len(b), nil
		}
		w.startGzip()
		pending := w.buffered
		w.buffered = nil
		if _, err := w.gzipWriter.Write(pending); err != nil {
			return 0, err
		}
		return len(b), nil
	}

	if w.gzipWriter != nil {
		return w.gzipWriter.Write(b)
	}
	return w.ResponseWriter.Write(b)
}

// finish flushes a small buffered body uncompressed and returns the gzip writer to the pool.
func (w *gzipResponseWriter) finish() {
	if w.buffered != nil {
		w.ResponseWriter.WriteHeader(w.status)
		if _, err := w.ResponseWriter.Write(w.buffered); err != nil {
			w.config.Logger.DebugContext(w.request.Context(), "writing buffered response failed", "error", err)
		}
		w.buffered = nil
	}
	if w.gzipWriter == nil {
		return
	}
	if err := w.gzipWriter.Close(); err != nil {
		w.config.Logger.ErrorContext(w.request.Context(), "closing gzip writer failed", "error", err)
	}
	w.config.writerPool.put(w.gzipWriter, w.config.Level)
	w.gzipWriter = nil
}

// Flush implements http.Flusher for streaming support.
func (w *gzipResponseWriter) Flush() {
	if w.gzipWriter != nil {
		if err := w.gzipWriter.Flush(); err != nil {
			w.config.Logger.ErrorContext(w.request.Context(), "flushing gzip writer failed", "error", err)
		}
	}
	if flusher, ok := w.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

// Hijack implements http.Hijacker.
func (w *gzipResponseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	if hijacker, ok := w.ResponseWriter.(http.Hijacker); ok {
		return hijacker.Hijack()
	}
	return nil, nil, errors.New("http.Hijacker not supported")
}

// Unwrap exposes the underlying writer to http.ResponseController.
func (w *gzipResponseWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }
