package httpx

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const contentEncodingGzip = "gzip"

func TestCompression(t *testing.T) {
	testContent := strings.Repeat("Müşteri listesi ", 500)

	tests := []struct {
		name           string
		method         string
		acceptEncoding string
		contentType    string
		status         int
		minSize        int
		body           string
		expectGzip     bool
	}{
		{name: "client accepts gzip", acceptEncoding: "gzip, deflate", contentType: "text/html", body: testContent, expectGzip: true},
		{name: "client does not accept gzip", acceptEncoding: "deflate", contentType: "text/html", body: testContent},
		{name: "gzip disabled with q=0", acceptEncoding: "gzip;q=0, br", contentType: "text/html", body: testContent},
		{name: "head request", method: http.MethodHead, acceptEncoding: "gzip", contentType: "text/html"},
		{name: "binary content", acceptEncoding: "gzip", contentType: "image/png", body: testContent},
		{name: "json", acceptEncoding: "gzip", contentType: "application/json; charset=utf-8", body: testContent, expectGzip: true},
		{name: "below min size", acceptEncoding: "gzip", contentType: "text/html", minSize: 1024, body: "short"},
		{name: "above min size", acceptEncoding: "gzip", contentType: "text/html", minSize: 1024, body: testContent, expectGzip: true},
		{name: "not modified", acceptEncoding: "gzip", contentType: "text/html", status: http.StatusNotModified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := Compression(CompressionConfig{Level: 6, MinSize: tt.minSize})(
				http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
					w.Header().Set("Content-Type", tt.contentType)
					status := tt.status
					if status == 0 {
						status = http.StatusOK
					}
					w.WriteHeader(status)
					if tt.body != "" {
						_, _ = w.Write([]byte(tt.body))
					}
				}))

			method := tt.method
			if method == "" {
				method = http.MethodGet
			}
			req := httptest.NewRequest(method, "/customers", nil)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			gotGzip := rec.Header().Get("Content-Encoding") == contentEncodingGzip
			if gotGzip != tt.expectGzip {
				t.Fatalf("gzip = %v, want %v", gotGzip, tt.expectGzip)
			}
			if !tt.expectGzip {
				if rec.Body.String() != tt.body {
					t.Errorf("body mismatch: got %d bytes, want %d", rec.Body.Len(), len(tt.body))
				}
				return
			}

			gr, err := gzip.NewReader(rec.Body)
			if err != nil {
				t.Fatalf("gzip reader: %v", err)
			}
			defer gr.Close()
			plain, err := io.ReadAll(gr)
			if err != nil {
				t.Fatalf("read gzip body: %v", err)
			}
			if string(plain) != tt.body {
				t.Error("decompressed content does not match")
			}
			if rec.Body.Len() >= len(tt.body) {
				t.Error("compressed body is not smaller than the original")
			}
		})
	}
}

func TestAcceptsGzip(t *testing.T) {
	tests := map[string]bool{
		"":                    false,
		"gzip":                true,
		"GZIP":                true,
		"deflate, gzip;q=0.5": true,
		"gzip; q=0":           false,
		"gzip;q=0.000":        false,
		"br":                  false,
	}
	for in, want := range tests {
		if got := acceptsGzip(in); got != want {
			t.Errorf("acceptsGzip(%q) = %v, want %v", in, got, want)
		}
	}
}
