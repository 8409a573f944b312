/*
Package transit provides the static stop/route network loading and indexing.

This package is data-source agnostic - it accepts raw JSON bytes or a
file path/URL via NewNetworkFromConfig and builds an in-memory index.
The network is immutable after load and safe for unlimited concurrent
readers.

# Basic Usage

Load from raw bytes:

	netBytes := fetchDatasetFromYourSource()
	net, err := transit.NewNetworkFromBytes(netBytes)
	if err != nil {
	    log.Fatal(err)
	}

	stop, ok := net.Stop("1287")
	routes := net.RoutesServing("1287")

# Performance: Load Once

Parse the dataset once at startup and keep the network in memory. The
itinerary search performs many repeated lookups; every accessor is an
O(1) average map lookup over an arena of structs.

# Data Structure

The index provides fast lookups for:

- Stops (stop_id → names, lat/lon, serving routes)
- Routes (route_id → line name, direction tag, ordered stop_ids)
- Stop position on a route (route_id + stop_id → index)

# Route Identifiers

A route identifier is the line name plus a direction tag, one of two
directions per physical line: "280:forward", "280:return". Traversal
along a route is always by increasing stop index.

# Missing Geodata

Some stops lack coordinates. The loader tolerates that; Stop.HasGeo
reports availability and duration math substitutes a fixed fallback
segment length.
*/
package transit
