package planner

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"tripwise/models"
	"tripwise/monitoring"
)

// End is the terminal pseudo-node every path must reach.
const End = "__end__"

// NodeFunc is a single workflow step. It reads the shared planning record
// and returns a patch; it never mutates the record directly and never
// returns a Go error. Failures are recorded as error strings inside the
// patch so the workflow can degrade instead of aborting.
type NodeFunc func(ctx context.Context, state *models.PlanningState) Update

// RouterFunc picks the next node name after a decision point.
type RouterFunc func(state *models.PlanningState) string

// Update is a partial patch against the planning record. Pointer fields are
// applied only when non-nil; slice fields are appended, never replaced, so
// no node can discard another node's errors or steps.
type Update struct {
	Intent             *models.Intent
	Origin             *string
	Destination        *string
	DepartureDate      *string
	ReturnDate         *string
	Passengers         *int
	Budget             *float64
	Preferences        map[string]any
	RequiresFlights    *bool
	RequiresHotels     *bool
	RequiresActivities *bool
	RequiresWeather    *bool

	FlightOptions   []models.FlightOption
	HotelOptions    []models.HotelOption
	ActivityOptions []models.ActivityOption
	WeatherForecast []models.WeatherDay

	Itinerary       *string
	TotalCost       *float64
	Recommendations []string
	Response        *string

	CurrentStep    string
	CompletedSteps []string
	Errors         []string
}

type parallelMember struct {
	name string
	fn   NodeFunc
}

// Graph is a small directed workflow over a PlanningState: named nodes,
// fixed edges, conditional routing and one level of fan-out/fan-in groups.
type Graph struct {
	entry       string
	nodes       map[string]NodeFunc
	edges       map[string]string
	conditional map[string]RouterFunc
	parallel    map[string][]parallelMember

	nodeTimeout time.Duration
	metrics     *monitoring.Metrics
	logger      *zap.Logger
}

// NewGraph creates an empty graph with the given entry node name.
func NewGraph(entry string, nodeTimeout time.Duration, metrics *monitoring.Metrics, logger *zap.Logger) *Graph {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Graph{
		entry:       entry,
		nodes:       make(map[string]NodeFunc),
		edges:       make(map[string]string),
		conditional: make(map[string]RouterFunc),
		parallel:    make(map[string][]parallelMember),
		nodeTimeout: nodeTimeout,
		metrics:     metrics,
		logger:      logger,
	}
}

// AddNode registers a named node.
func (g *Graph) AddNode(name string, fn NodeFunc) {
	g.nodes[name] = fn
}

// AddEdge wires a fixed transition.
func (g *Graph) AddEdge(from, to string) {
	g.edges[from] = to
}

// AddConditionalEdge wires a decision point; the router's return value is
// the next node name (or End).
func (g *Graph) AddConditionalEdge(from string, router RouterFunc) {
	g.conditional[from] = router
}

// AddParallelGroup registers a fan-out/fan-in stage: all members run
// concurrently against a read-only view of the state and their patches are
// merged in member order, so the outcome is deterministic regardless of
// completion order.
func (g *Graph) AddParallelGroup(name string, memberNames []string, fns []NodeFunc) {
	members := make([]parallelMember, 0, len(memberNames))
	for i, n := range memberNames {
		members = append(members, parallelMember{name: n, fn: fns[i]})
	}
	g.parallel[name] = members
}

// Run executes the graph to End, mutating and returning the given state.
// Every step's patch is merged by the engine; nodes never touch the record.
func (g *Graph) Run(ctx context.Context, state *models.PlanningState) *models.PlanningState {
	start := time.Now()
	defer g.metrics.ObserveWorkflow(start)

	const maxSteps = 50 // cycle guard; the travel graph is a short DAG

	current := g.entry
	for steps := 0; current != End && steps < maxSteps; steps++ {
		if members, ok := g.parallel[current]; ok {
			g.runParallel(ctx, members, state)
		} else if fn, ok := g.nodes[current]; ok {
			g.apply(state, g.runNode(ctx, current, fn, state))
		} else {
			g.logger.Error("workflow reached unknown node", zap.String("node", current))
			break
		}

		if router, ok := g.conditional[current]; ok {
			current = router(state)
		} else if next, ok := g.edges[current]; ok {
			current = next
		} else {
			current = End
		}
	}
	return state
}

func (g *Graph) runNode(ctx context.Context, name string, fn NodeFunc, state *models.PlanningState) Update {
	nodeCtx, cancel := context.WithTimeout(ctx, g.nodeTimeout)
	defer cancel()

	start := time.Now()
	u := fn(nodeCtx, state)
	g.metrics.ObserveNode(name, start, len(u.Errors))
	g.logger.Debug("workflow node finished",
		zap.String("node", name),
		zap.Duration("took", time.Since(start)),
		zap.Int("errors", len(u.Errors)))
	return u
}

// runParallel fans the members out over goroutines and joins before
// merging. Members only read the state, so no locking is needed until the
// ordered merge.
func (g *Graph) runParallel(ctx context.Context, members []parallelMember, state *models.PlanningState) {
	updates := make([]Update, len(members))
	var wg sync.WaitGroup
	for i, m := range members {
		wg.Add(1)
		go func(i int, m parallelMember) {
			defer wg.Done()
			updates[i] = g.runNode(ctx, m.name, m.fn, state)
		}(i, m)
	}
	wg.Wait()

	for _, u := range updates {
		g.apply(state, u)
	}
}

func (g *Graph) apply(state *models.PlanningState, u Update) {
	if u.Intent != nil {
		state.Intent = *u.Intent
	}
	if u.Origin != nil {
		state.Origin = u.Origin
	}
	if u.Destination != nil {
		state.Destination = u.Destination
	}
	if u.DepartureDate != nil {
		state.DepartureDate = u.DepartureDate
	}
	if u.ReturnDate != nil {
		state.ReturnDate = u.ReturnDate
	}
	if u.Passengers != nil {
		state.Passengers = *u.Passengers
	}
	if u.Budget != nil {
		state.Budget = u.Budget
	}
	if len(u.Preferences) > 0 {
		if state.Preferences == nil {
			state.Preferences = map[string]any{}
		}
		for k, v := range u.Preferences {
			state.Preferences[k] = v
		}
	}
	if u.RequiresFlights != nil {
		state.RequiresFlights = *u.RequiresFlights
	}
	if u.RequiresHotels != nil {
		state.RequiresHotels = *u.RequiresHotels
	}
	if u.RequiresActivities != nil {
		state.RequiresActivities = *u.RequiresActivities
	}
	if u.RequiresWeather != nil {
		state.RequiresWeather = *u.RequiresWeather
	}

	state.FlightOptions = append(state.FlightOptions, u.FlightOptions...)
	state.HotelOptions = append(state.HotelOptions, u.HotelOptions...)
	state.ActivityOptions = append(state.ActivityOptions, u.ActivityOptions...)
	state.WeatherForecast = append(state.WeatherForecast, u.WeatherForecast...)

	if u.Itinerary != nil {
		state.Itinerary = u.Itinerary
	}
	if u.TotalCost != nil {
		state.TotalCost = *u.TotalCost
	}
	state.Recommendations = append(state.Recommendations, u.Recommendations...)
	if u.Response != nil {
		state.Response = u.Response
	}

	if u.CurrentStep != "" {
		state.CurrentStep = u.CurrentStep
	}
	state.CompletedSteps = append(state.CompletedSteps, u.CompletedSteps...)
	state.Errors = append(state.Errors, u.Errors...)
}
