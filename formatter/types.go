package formatter

import (
	"github.com/theoremus-urban-solutions/bus-tracker/routing"
	"github.com/theoremus-urban-solutions/bus-tracker/tracking"
)

// ItineraryDelivery is the trip-planning response envelope.
type ItineraryDelivery struct {
	ResponseTimestamp string                `json:"responseTimestamp"`
	RequestID         string                `json:"requestId,omitempty"`
	From              string                `json:"from"`
	To                string                `json:"to"`
	Itineraries       []routing.RouteResult `json:"itineraries"`
}

// ArrivalDelivery is the live-tracking response envelope. Arrivals holds
// the nearest vehicles for display; VehicleAtStop reflects the full
// estimate set. ValidUntil marks the moment the snapshot goes stale,
// one feed poll interval past the response time.
type ArrivalDelivery struct {
	ResponseTimestamp string             `json:"responseTimestamp"`
	ValidUntil        string             `json:"validUntil,omitempty"`
	RequestID         string             `json:"requestId,omitempty"`
	Stop              string             `json:"stop"`
	StopName          string             `json:"stopName,omitempty"`
	Route             string             `json:"route"`
	Direction         string             `json:"direction"`
	VehicleAtStop     bool               `json:"vehicleAtStop"`
	Arrivals          []tracking.Arrival `json:"arrivals"`
}

// ErrorDelivery is the error response envelope.
type ErrorDelivery struct {
	ResponseTimestamp string `json:"responseTimestamp"`
	Endpoint          string `json:"endpoint"`
	Error             string `json:"error"`
}
