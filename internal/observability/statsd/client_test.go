package statsd

import (
	"net"
	"strings"
	"testing"
	"time"
)

func TestMetricName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		prefix, name, want string
	}{
		{"kampus_admin", "api.request", "kampus_admin.api.request"},
		{"", " api/request ", "api_request"},
		{"kampus_admin", "..api..error..", "kampus_admin.api.error"},
		{"kampus_admin", "  ", ""},
	}
	for _, tt := range tests {
		if got := metricName(tt.prefix, tt.name); got != tt.want {
			t.Errorf("metricName(%q, %q) = %q, want %q", tt.prefix, tt.name, got, tt.want)
		}
	}
}

func TestLine_MergesTags(t *testing.T) {
	t.Parallel()

	c, err := NewClient(Config{Prefix: ".kampus_admin.", Tags: map[string]string{"env": "prod", " ": "x"}})
	if err != nil {
		t.Fatal(err)
	}
	got := c.Line("api.request", "12.5", "ms", map[string]string{"status": " 200 ", "env": "dev"})
	want := "kampus_admin.api.request:12.5|ms|#env:dev,status:200"
	if got != want {
		t.Fatalf("Line() = %q, want %q", got, want)
	}
	if c.Line("api.request", "1", "c", nil) != "kampus_admin.api.request:1|c|#env:prod" {
		t.Fatal("global tags missing")
	}
}

func TestDisabledClientIsNoop(t *testing.T) {
	t.Parallel()

	c, err := NewClient(Config{Enabled: false, Address: "127.0.0.1:8125"})
	if err != nil {
		t.Fatal(err)
	}
	if c.Enabled() {
		t.Fatal("disabled client reports enabled")
	}
	c.Count("x", 1, nil)
	if err := c.Close(); err != nil {
		t.Fatal(err)
	}

	var nilClient *Client
	nilClient.Timing("x", time.Second, nil)
	if nilClient.Enabled() {
		t.Fatal("nil client reports enabled")
	}
}

func TestClientSendsUDP(t *testing.T) {
	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	if err != nil {
		t.Skipf("udp unavailable: %v", err)
	}
	defer pc.Close()

	c, err := NewClient(Config{Enabled: true, Address: pc.LocalAddr().String(), Prefix: "kampus_admin"})
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	c.Count("api.error", 2, map[string]string{"code": "timeout"})

	buf := make([]byte, 512)
	_ = pc.SetReadDeadline(time.Now().Add(2 * time.Second))
	n, _, err := pc.ReadFrom(buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got := string(buf[:n]); !strings.HasPrefix(got, "kampus_admin.api.error:2|c|#code:timeout") {
		t.Fatalf("unexpected datagram %q", got)
	}
}
