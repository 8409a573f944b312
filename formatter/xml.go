package formatter

import (
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/bus-tracker/routing"
	"github.com/theoremus-urban-solutions/bus-tracker/tracking"
)

// BuildItineraryXML serializes an itinerary delivery to XML
func BuildItineraryXML(d ItineraryDelivery) []byte {
	var b strings.Builder
	b.WriteString("<ItineraryDelivery>")
	writeTextElement(&b, "ResponseTimestamp", d.ResponseTimestamp)
	writeTextElement(&b, "RequestId", d.RequestID)
	writeTextElement(&b, "From", d.From)
	writeTextElement(&b, "To", d.To)
	for _, it := range d.Itineraries {
		writeItineraryXML(&b, it)
	}
	b.WriteString("</ItineraryDelivery>")
	return []byte(b.String())
}

func writeItineraryXML(b *strings.Builder, it routing.RouteResult) {
	b.WriteString("<Itinerary>")
	writeIntElement(b, "StopCount", it.StopCount)
	writeIntElement(b, "Transfers", it.Transfers)
	writeIntElement(b, "DurationMinutes", it.DurationMin)
	for _, l := range it.Legs {
		b.WriteString("<Leg>")
		writeTextElement(b, "RouteName", l.RouteName)
		writeTextElement(b, "Direction", l.Direction)
		writeTextElement(b, "BoardStop", l.BoardStop)
		writeTextElement(b, "AlightStop", l.AlightStop)
		writeIntElement(b, "DurationMinutes", l.DurationMin)
		b.WriteString("</Leg>")
	}
	b.WriteString("</Itinerary>")
}

// BuildArrivalXML serializes an arrival delivery to XML
func BuildArrivalXML(d ArrivalDelivery) []byte {
	var b strings.Builder
	b.WriteString("<ArrivalDelivery>")
	writeTextElement(&b, "ResponseTimestamp", d.ResponseTimestamp)
	writeTextElement(&b, "ValidUntil", d.ValidUntil)
	writeTextElement(&b, "RequestId", d.RequestID)
	writeTextElement(&b, "Stop", d.Stop)
	writeTextElement(&b, "StopName", d.StopName)
	writeTextElement(&b, "Route", d.Route)
	writeTextElement(&b, "Direction", d.Direction)
	writeTextElement(&b, "VehicleAtStop", strconv.FormatBool(d.VehicleAtStop))
	for _, a := range d.Arrivals {
		writeArrivalXML(&b, a)
	}
	b.WriteString("</ArrivalDelivery>")
	return []byte(b.String())
}

func writeArrivalXML(b *strings.Builder, a tracking.Arrival) {
	b.WriteString("<Arrival>")
	writeTextElement(b, "Plate", a.Plate)
	writeIntElement(b, "StopsAway", a.StopsAway)
	writeIntElement(b, "EtaMinutes", a.ETAMinutes)
	if a.AtStop {
		writeTextElement(b, "AtStop", "true")
	}
	if a.EnRoute {
		writeTextElement(b, "EnRoute", "true")
	}
	b.WriteString("</Arrival>")
}

// BuildErrorXML serializes an error delivery to XML
func BuildErrorXML(e ErrorDelivery) []byte {
	var b strings.Builder
	b.WriteString("<ErrorDelivery>")
	writeTextElement(&b, "ResponseTimestamp", e.ResponseTimestamp)
	writeTextElement(&b, "Endpoint", e.Endpoint)
	writeTextElement(&b, "Error", e.Error)
	b.WriteString("</ErrorDelivery>")
	return []byte(b.String())
}

func writeTextElement(b *strings.Builder, tag, value string) {
	if value == "" {
		return
	}
	b.WriteString("<")
	b.WriteString(tag)
	b.WriteString(">")
	b.WriteString(xmlEscape(value))
	b.WriteString("</")
	b.WriteString(tag)
	b.WriteString(">")
}

func writeIntElement(b *strings.Builder, tag string, value int) {
	b.WriteString("<")
	b.WriteString(tag)
	b.WriteString(">")
	b.WriteString(strconv.Itoa(value))
	b.WriteString("</")
	b.WriteString(tag)
	b.WriteString(">")
}

func xmlEscape(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		"\"", "&quot;",
		"'", "&apos;",
	)
	return r.Replace(s)
}
