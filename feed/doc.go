/*
Package feed contains clients for the live collaborator feeds: per-route
traffic segments and per-stop vehicle presence.

Feed data is fetched per poll cycle and never cached here; snapshots go
stale within seconds and the polling cadence belongs to the caller.
Failures at this boundary are partial-data conditions: an empty result
with a logged error, never a crash. The operator's vehicle endpoint
requires a route-type discriminator that is not knowable in advance, so
the vehicle client probes every configured value concurrently and keeps
the response reporting the most vehicles.

Deployments with a standards-compliant operator can skip the probing
client and decode a GTFS-RT VehiclePositions feed into the same per-stop
snapshot model via VehiclesFromGTFSRT.
*/
package feed
