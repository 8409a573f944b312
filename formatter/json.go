package formatter

import (
	"encoding/json"

	"github.com/theoremus-urban-solutions/bus-tracker/utils"
)

// BuildJSON serializes a delivery envelope to JSON
func BuildJSON(v any) []byte {
	b, _ := json.Marshal(v)
	return b
}

// BuildErrorPayload builds an error response in the requested format
func BuildErrorPayload(endpoint, format, msg string) []byte {
	e := ErrorDelivery{
		ResponseTimestamp: utils.Iso8601Now(),
		Endpoint:          endpoint,
		Error:             msg,
	}
	if format == "xml" {
		return BuildErrorXML(e)
	}
	return BuildJSON(e)
}
