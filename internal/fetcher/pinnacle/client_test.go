package pinnacle

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/oddscout/oddscout/internal/pkg/models"
)

const eventJSON = `{
	"data": {
		"home": "Red Sox",
		"away": "Yankees",
		"league": "MLB",
		"starts": "2026-09-01T23:10:00Z",
		"periods": {
			"num_0": {
				"money_line": {"home": 1.60, "away": 2.45},
				"spreads": {"-1.5": {"hdp": -1.5, "home": 2.10, "away": 1.75}},
				"totals": {"8.5": {"points": 8.5, "over": 1.91, "under": 1.91}}
			},
			"num_1": {
				"money_line": {"home": 1.70, "away": 2.20}
			}
		}
	}
}`

func TestFetchEvent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/events/1609669590" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Origin") == "" {
			t.Error("relay headers not set")
		}
		w.Write([]byte(eventJSON))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", time.Second)
	snap, err := c.FetchEvent(context.Background(), "1609669590")
	if err != nil {
		t.Fatal(err)
	}

	if snap.EventID != "1609669590" {
		t.Errorf("EventID = %q", snap.EventID)
	}
	if snap.Home != "Red Sox" || snap.Away != "Yankees" {
		t.Errorf("teams = %q / %q", snap.Home, snap.Away)
	}
	full := snap.Period(models.FullGame)
	if full == nil || full.MoneyLine == nil || full.MoneyLine.Home != 1.60 {
		t.Fatalf("full game markets not decoded: %+v", full)
	}
	if full.Spreads["-1.5"].Hdp != -1.5 {
		t.Errorf("spread not decoded: %+v", full.Spreads)
	}
	if full.Totals["8.5"].Points != 8.5 {
		t.Errorf("total not decoded: %+v", full.Totals)
	}
	if snap.Period(models.FirstHalf) == nil {
		t.Error("first half missing")
	}
}

func TestFetchEventUnwrapped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"home": "A", "away": "B", "periods": {"num_0": {"money_line": {"home": 1.9, "away": 1.9}}}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", time.Second)
	snap, err := c.FetchEvent(context.Background(), "7")
	if err != nil {
		t.Fatal(err)
	}
	if snap.Home != "A" {
		t.Errorf("top-level payload not decoded: %+v", snap)
	}
}

func TestFetchEventErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/events/gone":
			http.Error(w, "not found", http.StatusNotFound)
		case "/events/empty":
			w.Write([]byte(`{"data": {"home": "A", "away": "B", "periods": {}}}`))
		default:
			w.Write([]byte(`{invalid`))
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", time.Second)
	for _, id := range []string{"gone", "empty", "garbled"} {
		if _, err := c.FetchEvent(context.Background(), id); err == nil {
			t.Errorf("FetchEvent(%q) succeeded, want error", id)
		}
	}
}
