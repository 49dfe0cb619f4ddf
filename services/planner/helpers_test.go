package planner

import (
	"context"
	"time"

	"go.uber.org/zap"

	"tripwise/models"
	"tripwise/services/providers"
)

// fakeLLM scripts the completion service: each call consumes the next
// reply, or invokes fn when set.
type fakeLLM struct {
	fn      func(prompt string) (string, error)
	replies []string
	err     error
	calls   int
	prompts []string
}

func (f *fakeLLM) Complete(_ context.Context, prompt string) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	if f.fn != nil {
		return f.fn(prompt)
	}
	if f.err != nil {
		return "", f.err
	}
	if len(f.replies) == 0 {
		return "ok", nil
	}
	reply := f.replies[0]
	if len(f.replies) > 1 {
		f.replies = f.replies[1:]
	}
	return reply, nil
}

type fakeFlights struct {
	result any
	err    error
	calls  int
}

func (f *fakeFlights) SearchFlights(_ context.Context, _ providers.FlightParams) (any, error) {
	f.calls++
	return f.result, f.err
}

type fakeHotels struct {
	result any
	err    error
	calls  int
	params providers.HotelParams
}

func (f *fakeHotels) SearchHotels(_ context.Context, params providers.HotelParams) (any, error) {
	f.calls++
	f.params = params
	return f.result, f.err
}

type fakeWeather struct {
	result any
	err    error
	calls  int
}

func (f *fakeWeather) GetForecast(_ context.Context, _ providers.WeatherParams) (any, error) {
	f.calls++
	return f.result, f.err
}

type fakeActivities struct {
	result any
	err    error
	calls  int
}

func (f *fakeActivities) SearchActivities(_ context.Context, _ providers.ActivityParams) (any, error) {
	f.calls++
	return f.result, f.err
}

func testNodes(llm *fakeLLM, fl *fakeFlights, ho *fakeHotels, we *fakeWeather, ac *fakeActivities) *Nodes {
	if llm == nil {
		llm = &fakeLLM{}
	}
	if fl == nil {
		fl = &fakeFlights{result: []map[string]any{}}
	}
	if ho == nil {
		ho = &fakeHotels{result: []map[string]any{}}
	}
	if we == nil {
		we = &fakeWeather{result: []map[string]any{}}
	}
	if ac == nil {
		ac = &fakeActivities{result: []map[string]any{}}
	}
	return NewNodes(llm, fl, ho, we, ac, DefaultNodeConfig(), nil, zap.NewNop())
}

func testGraph(nodes *Nodes) *Graph {
	return BuildTravelGraph(nodes, 5*time.Second, nil, zap.NewNop())
}

func planState(query string) *models.PlanningState {
	return models.NewPlanningState(query)
}

func ptr[T any](v T) *T { return &v }
