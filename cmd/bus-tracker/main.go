package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	lib "github.com/theoremus-urban-solutions/bus-tracker"
	"github.com/theoremus-urban-solutions/bus-tracker/feed"
	"github.com/theoremus-urban-solutions/bus-tracker/formatter"
	"github.com/theoremus-urban-solutions/bus-tracker/tracking"
	"github.com/theoremus-urban-solutions/bus-tracker/transit"
	"github.com/theoremus-urban-solutions/bus-tracker/utils"
)

func main() {
	mode := flag.String("mode", "serve", "serve|plan|arrivals")
	format := flag.String("format", "json", "json|xml")
	from := flag.String("from", "", "start stop id (plan mode)")
	to := flag.String("to", "", "end stop id (plan mode)")
	stop := flag.String("stop", "", "target stop id (arrivals mode)")
	route := flag.String("route", "", "line name (arrivals mode)")
	direction := flag.String("direction", "", "direction tag (arrivals mode)")
	traffic := flag.Bool("traffic", true, "refine durations with live traffic")
	flag.Parse()

	lib.InitLogging()
	if err := lib.LoadAppConfig(); err != nil {
		panic(err)
	}

	app, err := lib.NewApp()
	if err != nil {
		log.Fatalf("startup failed: %v", err)
	}

	switch *mode {
	case "serve":
		lib.StartServer(app)
		lib.HandleGracefulShutdown()
	case "plan":
		if *from == "" || *to == "" {
			fmt.Fprintln(os.Stderr, "plan mode requires -from and -to")
			os.Exit(2)
		}
		runPlan(app, *from, *to, *format, *traffic)
	case "arrivals":
		if *stop == "" || *route == "" || *direction == "" {
			fmt.Fprintln(os.Stderr, "arrivals mode requires -stop, -route and -direction")
			os.Exit(2)
		}
		runArrivals(app, *stop, *route, *direction, *format)
	default:
		fmt.Fprintf(os.Stderr, "unknown mode %q\n", *mode)
		os.Exit(2)
	}
}

func runPlan(app *lib.App, from, to, format string, withTraffic bool) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	results := app.Planner.FindItineraries(from, to)
	if withTraffic && len(results) > 0 {
		results = app.Planner.EnrichWithTraffic(ctx, results, app.Traffic)
	}

	d := formatter.ItineraryDelivery{
		ResponseTimestamp: utils.Iso8601Now(),
		From:              from,
		To:                to,
		Itineraries:       results,
	}
	if format == "xml" {
		fmt.Println(string(formatter.BuildItineraryXML(d)))
		return
	}
	fmt.Println(string(formatter.BuildJSON(d)))
}

func runArrivals(app *lib.App, stop, route, direction, format string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	routeID := transit.RouteID(route, direction)
	vehicles, err := app.Vehicles.VehiclesOn(ctx, route, direction)
	if err != nil {
		log.Printf("vehicle feed unavailable for %s: %v", routeID, err)
	}
	var segs []feed.Segment
	if segsFetched, err := app.Traffic.SegmentsFor(ctx, route, direction); err != nil {
		log.Printf("traffic feed unavailable for %s: %v", routeID, err)
	} else {
		segs = segsFetched
	}

	arrivals := app.Estimator.EstimateArrivals(stop, routeID, vehicles, segs)
	d := formatter.ArrivalDelivery{
		ResponseTimestamp: utils.Iso8601Now(),
		ValidUntil:        utils.ValidUntilFrom(time.Now().Unix(), app.ReadIntervalMS),
		Stop:              stop,
		Route:             route,
		Direction:         direction,
		VehicleAtStop:     tracking.AnyAtStop(arrivals),
		Arrivals:          tracking.Nearest(arrivals, 2),
	}
	if s, ok := app.Net.Stop(stop); ok {
		d.StopName = s.Name(app.Lang)
	}
	if format == "xml" {
		fmt.Println(string(formatter.BuildArrivalXML(d)))
		return
	}
	fmt.Println(string(formatter.BuildJSON(d)))
}
