package bustracker

import (
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/theoremus-urban-solutions/bus-tracker/formatter"
	"github.com/theoremus-urban-solutions/bus-tracker/utils"
)

func (a *App) handleItinerariesJSON(w http.ResponseWriter, r *http.Request) {
	a.handleItineraries(w, r, "json")
}

func (a *App) handleItinerariesXML(w http.ResponseWriter, r *http.Request) {
	a.handleItineraries(w, r, "xml")
}

func (a *App) handleItineraries(w http.ResponseWriter, r *http.Request, format string) {
	if format == "xml" {
		w.Header().Set("Content-Type", "application/xml")
	} else {
		w.Header().Set("Content-Type", "application/json")
	}

	q := r.URL.Query()
	from := q.Get("from")
	to := q.Get("to")
	withTraffic := q.Get("traffic") != "0"
	requestID := uuid.NewString()

	if from == "" || to == "" {
		w.WriteHeader(400)
		_, _ = w.Write(formatter.BuildErrorPayload("itineraries", format, "missing from or to parameter"))
		return
	}
	// Unknown ids are a client error at the HTTP boundary even though the
	// planner itself treats them as an empty result.
	if _, ok := a.Net.Stop(from); !ok {
		w.WriteHeader(400)
		_, _ = w.Write(formatter.BuildErrorPayload("itineraries", format, "unknown stop: "+from))
		return
	}
	if _, ok := a.Net.Stop(to); !ok {
		w.WriteHeader(400)
		_, _ = w.Write(formatter.BuildErrorPayload("itineraries", format, "unknown stop: "+to))
		return
	}

	results := a.Planner.FindItineraries(from, to)
	if withTraffic && len(results) > 0 {
		results = a.Planner.EnrichWithTraffic(r.Context(), results, a.Traffic)
	}
	log.Printf("itineraries request %s: %s -> %s, %d results", requestID, from, to, len(results))

	d := formatter.ItineraryDelivery{
		ResponseTimestamp: utils.Iso8601Now(),
		RequestID:         requestID,
		From:              from,
		To:                to,
		Itineraries:       results,
	}
	if format == "xml" {
		_, _ = w.Write(formatter.BuildItineraryXML(d))
		return
	}
	_, _ = w.Write(formatter.BuildJSON(d))
}
