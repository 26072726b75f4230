package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// testUser is the identity the HTTP helpers forward on every request.
const testUser = "traveller@example.com"

// ────────────────────────────────────────────────────────────
// Canned LLM outputs for a deterministic single-day generation
// ────────────────────────────────────────────────────────────

// A one-day trip keeps generation deterministic with one canned response per
// schema: each population worker asks once, for day 1 only.
const (
	cannedSkeleton = `{"days":[{"number":1,"theme":"Old town and the river","nodes":[
		{"title":"Morning attraction","type":"attraction","start_time":"09:00","duration_minutes":120},
		{"title":"Lunch","type":"meal","start_time":"12:30","duration_minutes":75},
		{"title":"Transfer to river district","type":"transit","start_time":"14:00","duration_minutes":20},
		{"title":"Afternoon activity","type":"activity","start_time":"14:30","duration_minutes":150}
	]}]}`

	cannedAttractions = `{"nodes":[
		{"id":"day1_node1","title":"Alcázar Royal Palace","description":"Mudéjar palace complex with tiered gardens.","address":"Patio de Banderas s/n","duration_minutes":120,"tips":["Book a timed slot","Gardens are quietest before 10am"]},
		{"id":"day1_node4","title":"River kayak tour","description":"Guided paddle past the old port.","address":"Muelle de la Sal","duration_minutes":150,"tips":["Bring a dry bag"]}
	]}`

	cannedMeals = `{"nodes":[
		{"id":"day1_node2","title":"Bodega Santa Cruz","cuisine":"Andalusian tapas","address":"Calle Rodrigo Caro 1","price_level":"budget","tips":["Order at the bar"]}
	]}`

	cannedTransport = `{"legs":[
		{"id":"day1_node3","mode":"tram","duration_minutes":15,"cost_amount":1.4,"instructions":"T1 towards the river, three stops."}
	]}`
)

// RegisterSingleDayGeneration loads the canned outputs the four LLM-backed
// generation workers need for a one-day trip.
func (app *TestApp) RegisterSingleDayGeneration() {
	app.LLM.Respond("skeleton", cannedSkeleton)
	app.LLM.Respond("populate_attractions", cannedAttractions)
	app.LLM.Respond("populate_meals", cannedMeals)
	app.LLM.Respond("populate_transport", cannedTransport)
}

// ────────────────────────────────────────────────────────────
// HTTP client helpers
// ────────────────────────────────────────────────────────────

// CreateTrip posts a one-day trip request and returns the itinerary ID and
// execution ID from the 201 response.
func (app *TestApp) CreateTrip(t *testing.T, destination string) (itineraryID, executionID string) {
	t.Helper()
	body := map[string]any{
		"destination": destination,
		"start_date":  "2026-10-02",
		"end_date":    "2026-10-02",
		"party":       map[string]int{"adults": 2},
		"interests":   []string{"history", "food"},
	}
	resp := app.postJSON(t, "/api/v1/itineraries", body, http.StatusCreated)

	it, ok := resp["itinerary"].(map[string]any)
	require.True(t, ok, "create response missing itinerary: %v", resp)
	itineraryID, _ = it["id"].(string)
	executionID, _ = resp["execution_id"].(string)
	require.NotEmpty(t, itineraryID)
	require.NotEmpty(t, executionID)
	return itineraryID, executionID
}

// GetItinerary fetches the itinerary document.
func (app *TestApp) GetItinerary(t *testing.T, id string) map[string]any {
	t.Helper()
	return app.getJSON(t, "/api/v1/itineraries/"+id, http.StatusOK)
}

// WaitForStatus polls until the itinerary reaches the expected status and
// returns the final document. Fails the test on "failed" unless that is the
// expected status.
func (app *TestApp) WaitForStatus(t *testing.T, id, expected string) map[string]any {
	t.Helper()
	deadline := time.Now().Add(20 * time.Second)
	for {
		last := app.GetItinerary(t, id)
		status, _ := last["status"].(string)
		if status == expected {
			return last
		}
		if status == "failed" && expected != "failed" {
			t.Fatalf("itinerary %s failed while waiting for %q", id, expected)
		}
		if time.Now().After(deadline) {
			t.Fatalf("itinerary %s still %q after 20s, want %q", id, status, expected)
		}
		time.Sleep(50 * time.Millisecond)
	}
}

// ApplyChanges posts a changeset and asserts the response status.
func (app *TestApp) ApplyChanges(t *testing.T, id string, changeset map[string]any, expectedStatus int) map[string]any {
	t.Helper()
	return app.postJSON(t, fmt.Sprintf("/api/v1/itineraries/%s/changes", id), changeset, expectedStatus)
}

// ProposeChanges posts a changeset with dry_run=true; nothing persists.
func (app *TestApp) ProposeChanges(t *testing.T, id string, changeset map[string]any) map[string]any {
	t.Helper()
	return app.postJSON(t, fmt.Sprintf("/api/v1/itineraries/%s/changes?dry_run=true", id), changeset, http.StatusOK)
}

// ListRevisions fetches the revision history page.
func (app *TestApp) ListRevisions(t *testing.T, id string) map[string]any {
	t.Helper()
	return app.getJSON(t, fmt.Sprintf("/api/v1/itineraries/%s/revisions", id), http.StatusOK)
}

// Rollback undoes everything after the given revision number.
func (app *TestApp) Rollback(t *testing.T, id string, number int) map[string]any {
	t.Helper()
	return app.postJSON(t, fmt.Sprintf("/api/v1/itineraries/%s/revisions/%d/rollback", id, number), nil, http.StatusOK)
}

// SendChat posts one conversational turn.
func (app *TestApp) SendChat(t *testing.T, id, text string) map[string]any {
	t.Helper()
	body := map[string]any{"text": text}
	return app.postJSON(t, fmt.Sprintf("/api/v1/itineraries/%s/chat", id), body, http.StatusOK)
}

func (app *TestApp) postJSON(t *testing.T, path string, body any, expectedStatus int) map[string]any {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, app.BaseURL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return app.do(t, req, expectedStatus)
}

func (app *TestApp) getJSON(t *testing.T, path string, expectedStatus int) map[string]any {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, app.BaseURL+path, nil)
	require.NoError(t, err)
	return app.do(t, req, expectedStatus)
}

func (app *TestApp) do(t *testing.T, req *http.Request, expectedStatus int) map[string]any {
	t.Helper()
	req.Header.Set("X-Forwarded-User", testUser)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, expectedStatus, resp.StatusCode, "%s %s: %s", req.Method, req.URL.Path, data)

	if len(data) == 0 {
		return nil
	}
	var parsed map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed), "response body: %s", data)
	return parsed
}

// nodeByID digs a node out of the itinerary document by its identifier.
func nodeByID(t *testing.T, it map[string]any, nodeID string) map[string]any {
	t.Helper()
	days, _ := it["days"].([]any)
	for _, d := range days {
		day, _ := d.(map[string]any)
		nodes, _ := day["nodes"].([]any)
		for _, n := range nodes {
			node, _ := n.(map[string]any)
			if node["id"] == nodeID {
				return node
			}
		}
	}
	return nil
}

// nodeIDs lists every node identifier in day order.
func nodeIDs(it map[string]any) []string {
	var out []string
	days, _ := it["days"].([]any)
	for _, d := range days {
		day, _ := d.(map[string]any)
		nodes, _ := day["nodes"].([]any)
		for _, n := range nodes {
			node, _ := n.(map[string]any)
			if id, ok := node["id"].(string); ok {
				out = append(out, id)
			}
		}
	}
	return out
}
