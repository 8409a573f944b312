package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestTrafficClientSegmentsFor(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("route") != "280" || r.URL.Query().Get("direction") != "fwd" {
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"segments":[
			{"level":1,"path":[[23.32,42.69],[23.33,42.70]]},
			{"level":3,"path":[[23.33,42.70],[23.34,42.71]]}
		]}`))
	}))
	defer srv.Close()

	c := NewTrafficClient(srv.URL, 2*time.Second)
	segs, err := c.SegmentsFor(context.Background(), "280", "fwd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(segs) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segs))
	}
	if segs[0].Level != 1 || segs[1].Level != 3 {
		t.Errorf("levels not preserved in order: %+v", segs)
	}
	if len(segs[1].Path) != 2 {
		t.Errorf("segment path lost: %+v", segs[1])
	}
}

func TestTrafficClientErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("<html>not json</html>"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			c := NewTrafficClient(srv.URL, 2*time.Second)
			segs, err := c.SegmentsFor(context.Background(), "280", "fwd")
			if err == nil {
				t.Error("expected an error at the feed boundary")
			}
			if len(segs) != 0 {
				t.Errorf("failed fetch should carry no segments, got %+v", segs)
			}
		})
	}
}

func TestTrafficClientWithoutBaseURL(t *testing.T) {
	c := NewTrafficClient("", 0)
	segs, err := c.SegmentsFor(context.Background(), "280", "fwd")
	if err != nil || segs != nil {
		t.Errorf("unconfigured client should be a silent no-op, got %v, %v", segs, err)
	}
}
