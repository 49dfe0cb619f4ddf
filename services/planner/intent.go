package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"tripwise/models"
)

// extractedIntent is the constrained response schema enforced at the
// extraction boundary. The intent string is validated into a typed value;
// nothing downstream ever sniffs substrings of completion output.
type extractedIntent struct {
	Intent             string         `json:"intent"`
	Origin             *string        `json:"origin"`
	Destination        *string        `json:"destination"`
	DepartureDate      *string        `json:"departure_date"`
	ReturnDate         *string        `json:"return_date"`
	NumPassengers      int            `json:"num_passengers"`
	Budget             *float64       `json:"budget"`
	RequiresFlights    bool           `json:"requires_flights"`
	RequiresHotels     bool           `json:"requires_hotels"`
	RequiresActivities bool           `json:"requires_activities"`
	RequiresWeather    bool           `json:"requires_weather"`
	Preferences        map[string]any `json:"preferences"`
}

var fencedJSON = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")

// extractJSON pulls a JSON object out of completion output that may be
// wrapped in a fenced code block or surrounded by explanatory prose.
func extractJSON(text string, v any) error {
	candidate := ""
	if m := fencedJSON.FindStringSubmatch(text); m != nil {
		candidate = m[1]
	} else {
		start := strings.Index(text, "{")
		end := strings.LastIndex(text, "}")
		if start >= 0 && end > start {
			candidate = text[start : end+1]
		}
	}
	if candidate == "" {
		return fmt.Errorf("no JSON object found in response")
	}
	return json.Unmarshal([]byte(strings.TrimSpace(candidate)), v)
}

// ClassifyIntent analyzes the user query, extracts travel parameters and
// sets the routing flags for the rest of the workflow. On any failure it
// falls back to the general intent and records the error; it never halts
// the run.
func (n *Nodes) ClassifyIntent(ctx context.Context, state *models.PlanningState) Update {
	if strings.TrimSpace(state.Query) == "" {
		return Update{
			Intent:             intentPtr(models.IntentGeneral),
			RequiresFlights:    boolPtr(false),
			RequiresHotels:     boolPtr(false),
			RequiresActivities: boolPtr(false),
			RequiresWeather:    boolPtr(false),
			Errors:             []string{"no user query provided"},
			CurrentStep:        StepIntentClassification,
			CompletedSteps:     []string{StepIntentClassification},
		}
	}

	prompt := fmt.Sprintf(intentPrompt, state.Query, time.Now().Format("2006-01-02"))
	raw, err := n.LLM.Complete(ctx, prompt)
	if err != nil {
		n.Logger.Warn("intent classification call failed", zap.Error(err))
		return Update{
			Intent:         intentPtr(models.IntentGeneral),
			Errors:         []string{fmt.Sprintf("intent classification error: %v", err)},
			CurrentStep:    StepIntentClassification,
			CompletedSteps: []string{StepIntentClassification},
		}
	}

	var result extractedIntent
	if err := extractJSON(raw, &result); err != nil {
		n.Logger.Warn("intent classification produced unparseable output", zap.Error(err))
		return Update{
			Intent:         intentPtr(models.IntentGeneral),
			Errors:         []string{fmt.Sprintf("intent classification error: %v", err)},
			CurrentStep:    StepIntentClassification,
			CompletedSteps: []string{StepIntentClassification},
		}
	}

	u := Update{
		Intent:             intentPtr(models.ParseIntent(result.Intent)),
		Origin:             result.Origin,
		Destination:        result.Destination,
		DepartureDate:      result.DepartureDate,
		ReturnDate:         result.ReturnDate,
		Budget:             result.Budget,
		Preferences:        result.Preferences,
		RequiresFlights:    boolPtr(result.RequiresFlights),
		RequiresHotels:     boolPtr(result.RequiresHotels),
		RequiresActivities: boolPtr(result.RequiresActivities),
		RequiresWeather:    boolPtr(result.RequiresWeather),
		CurrentStep:        StepIntentClassification,
		CompletedSteps:     []string{StepIntentClassification},
	}
	if result.NumPassengers > 0 {
		u.Passengers = intPtr(result.NumPassengers)
	}
	return u
}
