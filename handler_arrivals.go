package bustracker

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/theoremus-urban-solutions/bus-tracker/feed"
	"github.com/theoremus-urban-solutions/bus-tracker/formatter"
	"github.com/theoremus-urban-solutions/bus-tracker/tracking"
	"github.com/theoremus-urban-solutions/bus-tracker/transit"
	"github.com/theoremus-urban-solutions/bus-tracker/utils"
)

const displayedArrivals = 2

func (a *App) handleArrivalsJSON(w http.ResponseWriter, r *http.Request) {
	a.handleArrivals(w, r, "json")
}

func (a *App) handleArrivalsXML(w http.ResponseWriter, r *http.Request) {
	a.handleArrivals(w, r, "xml")
}

func (a *App) handleArrivals(w http.ResponseWriter, r *http.Request, format string) {
	if format == "xml" {
		w.Header().Set("Content-Type", "application/xml")
	} else {
		w.Header().Set("Content-Type", "application/json")
	}

	q := r.URL.Query()
	stopID := q.Get("stop")
	routeName := q.Get("route")
	direction := q.Get("direction")
	requestID := uuid.NewString()

	if stopID == "" || routeName == "" || direction == "" {
		w.WriteHeader(400)
		_, _ = w.Write(formatter.BuildErrorPayload("arrivals", format, "missing stop, route or direction parameter"))
		return
	}
	routeID := transit.RouteID(routeName, direction)
	if _, ok := a.Net.Route(routeID); !ok {
		w.WriteHeader(400)
		_, _ = w.Write(formatter.BuildErrorPayload("arrivals", format, "unknown route: "+routeID))
		return
	}
	if _, ok := a.Net.StopIndexOn(routeID, stopID); !ok {
		w.WriteHeader(400)
		_, _ = w.Write(formatter.BuildErrorPayload("arrivals", format, "stop "+stopID+" is not on route "+routeID))
		return
	}

	// Both live feeds are best effort; a failure costs accuracy, not the
	// response.
	vehicles, err := a.Vehicles.VehiclesOn(r.Context(), routeName, direction)
	if err != nil {
		log.Printf("arrivals request %s: vehicle feed unavailable for %s: %v", requestID, routeID, err)
		vehicles = nil
	}
	var segs []feed.Segment
	if segsFetched, err := a.Traffic.SegmentsFor(r.Context(), routeName, direction); err != nil {
		log.Printf("arrivals request %s: traffic feed unavailable for %s: %v", requestID, routeID, err)
	} else {
		segs = segsFetched
	}

	arrivals := a.Estimator.EstimateArrivals(stopID, routeID, vehicles, segs)
	log.Printf("arrivals request %s: stop %s route %s, %d vehicles approaching", requestID, stopID, routeID, len(arrivals))

	d := formatter.ArrivalDelivery{
		ResponseTimestamp: utils.Iso8601Now(),
		ValidUntil:        utils.ValidUntilFrom(time.Now().Unix(), a.ReadIntervalMS),
		RequestID:         requestID,
		Stop:              stopID,
		Route:             routeName,
		Direction:         direction,
		VehicleAtStop:     tracking.AnyAtStop(arrivals),
		Arrivals:          tracking.Nearest(arrivals, displayedArrivals),
	}
	if s, ok := a.Net.Stop(stopID); ok {
		d.StopName = s.Name(a.Lang)
	}
	if format == "xml" {
		_, _ = w.Write(formatter.BuildArrivalXML(d))
		return
	}
	_, _ = w.Write(formatter.BuildJSON(d))
}
