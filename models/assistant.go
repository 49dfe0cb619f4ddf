package models

// AssistantRequest is the payload coming from the frontend into the chat endpoint.
type AssistantRequest struct {
	UserID string `json:"user_id" binding:"required"` // unique user identifier
	Text   string `json:"text" binding:"required"`    // user's message
}

// AssistantAction is a single follow-up action offered to the user.
type AssistantAction struct {
	Label       string `json:"label"`                 // text on the button
	Type        string `json:"type"`                  // e.g. "plan_trip", "select_flight", "chat"
	OptionID    string `json:"option_id,omitempty"`   // when selecting a flight/hotel
	Description string `json:"description,omitempty"` // extra info
}

// AssistantResponse is what the chat handler returns to the frontend.
type AssistantResponse struct {
	Intent       Intent            `json:"intent"`
	ResponseText string            `json:"response"`
	Plan         *TripPlanResult   `json:"plan,omitempty"`    // set when a workflow run happened
	Actions      []AssistantAction `json:"actions,omitempty"` // only non-nil during multi-step flows
}

// AssistantContext is the per-user conversation state kept between turns.
type AssistantContext struct {
	LastIntent      Intent   `json:"lastIntent,omitempty"`
	LastDestination string   `json:"lastDestination,omitempty"`
	LastFlightID    string   `json:"lastFlightId,omitempty"`
	History         []string `json:"history,omitempty"` // recent user messages, newest last
}
