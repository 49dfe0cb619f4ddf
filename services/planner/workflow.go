package planner

import (
	"time"

	"go.uber.org/zap"

	"tripwise/models"
	"tripwise/monitoring"
)

// Node names in the travel planning graph.
const (
	nodeClassify  = "classify_intent"
	nodeSearch    = "search" // fan-out/fan-in over the four service nodes
	nodeItinerary = "generate_itinerary"
	nodeRespond   = "response_generator"
)

// routeAfterIntent decides where to go once classification has run.
// Unrecognized intents (which includes the missing-query path, since that
// also collapses to the general intent) skip straight to the responder.
func routeAfterIntent(state *models.PlanningState) string {
	if state.Intent == models.IntentGeneral {
		return nodeRespond
	}
	return nodeSearch
}

// routeAfterSearch decides what happens after the service nodes complete.
// Single-category searches answer directly; a full trip plan gets an
// itinerary when there is anything to build one from.
func routeAfterSearch(state *models.PlanningState) string {
	if state.Intent.IsSingleSearch() {
		return nodeRespond
	}
	if state.Intent == models.IntentPlanTrip &&
		(len(state.FlightOptions) > 0 || len(state.HotelOptions) > 0) {
		return nodeItinerary
	}
	return nodeRespond
}

// BuildTravelGraph wires the planning workflow:
//
//	classify_intent ─┬─> search (flights ∥ hotels ∥ weather ∥ activities) ─┬─> generate_itinerary ─> response_generator ─> END
//	                 └────────────────────────────────────────────────────┴─> response_generator ─> END
//
// The four service nodes are mutually independent once the routing flags
// are known, so they run as a parallel stage joined before the second
// routing decision. Every path terminates at the responder.
func BuildTravelGraph(nodes *Nodes, nodeTimeout time.Duration, metrics *monitoring.Metrics, logger *zap.Logger) *Graph {
	g := NewGraph(nodeClassify, nodeTimeout, metrics, logger)

	g.AddNode(nodeClassify, nodes.ClassifyIntent)
	g.AddParallelGroup(nodeSearch,
		[]string{StepFlightSearch, StepHotelSearch, StepWeatherCheck, StepActivitySearch},
		[]NodeFunc{nodes.SearchFlights, nodes.SearchHotels, nodes.CheckWeather, nodes.SearchActivities},
	)
	g.AddNode(nodeItinerary, nodes.GenerateItinerary)
	g.AddNode(nodeRespond, nodes.GenerateResponse)

	g.AddConditionalEdge(nodeClassify, routeAfterIntent)
	g.AddConditionalEdge(nodeSearch, routeAfterSearch)
	g.AddEdge(nodeItinerary, nodeRespond)
	g.AddEdge(nodeRespond, End)

	return g
}
