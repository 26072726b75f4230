package e2e

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ────────────────────────────────────────────────────────────
// Chat tests — classification, the edit path through the change engine,
// the read-only explain path, and the clarification guardrail, with the
// transcript persisted alongside.
// ────────────────────────────────────────────────────────────

func TestE2E_ChatEdit(t *testing.T) {
	app := NewTestApp(t)
	id, it := createReadyTrip(t, app)
	base := version(t, it)

	app.LLM.Respond("chat_intent", `{"intent":"edit","confidence":0.92}`)
	app.LLM.Respond("changeset", `{
		"ops":[{"op":"update","id":"day1_node2","patch":{"title":"Casa Morales"}}],
		"reason":"swap the lunch spot"
	}`)

	resp := app.SendChat(t, id, "swap lunch for somewhere with better wine")
	assert.Equal(t, "edit", resp["intent"])
	assert.NotEmpty(t, resp["message"])
	assert.EqualValues(t, base+1, resp["new_version"])

	it = app.GetItinerary(t, id)
	assert.Equal(t, "Casa Morales", nodeByID(t, it, "day1_node2")["title"])
	assert.Equal(t, base+1, version(t, it))

	// Both turns landed in the transcript; the assistant turn records what
	// was applied.
	transcript, err := app.ChatService.GetTranscript(context.Background(), id, 10)
	require.NoError(t, err)
	require.Len(t, transcript, 2)
	assert.Equal(t, "user", string(transcript[0].Role))
	assert.Equal(t, "swap lunch for somewhere with better wine", transcript[0].Content)
	assert.Equal(t, "assistant", string(transcript[1].Role))
	assert.Equal(t, "edit", transcript[1].Intent)
	require.NotNil(t, transcript[1].AppliedVersion)
	assert.Equal(t, base+1, *transcript[1].AppliedVersion)
}

func TestE2E_ChatExplain(t *testing.T) {
	app := NewTestApp(t)
	id, it := createReadyTrip(t, app)
	base := version(t, it)

	app.LLM.Respond("chat_intent", `{"intent":"explain","confidence":0.95}`)
	app.LLM.Respond("explain", `{"answer":"Lunch on day 1 is at Bodega Santa Cruz in the old town."}`)

	resp := app.SendChat(t, id, "where are we eating lunch?")
	assert.Equal(t, "explain", resp["intent"])
	assert.Contains(t, resp["message"], "Bodega Santa Cruz")
	assert.NotContains(t, resp, "new_version", "explain never mutates")

	it = app.GetItinerary(t, id)
	assert.Equal(t, base, version(t, it))
}

func TestE2E_ChatLowConfidenceAsksToClarify(t *testing.T) {
	app := NewTestApp(t)
	id, it := createReadyTrip(t, app)
	base := version(t, it)

	app.LLM.Respond("chat_intent", `{"intent":"edit","confidence":0.3}`)

	resp := app.SendChat(t, id, "hmm maybe change something?")
	clarify, _ := resp["clarify"].(bool)
	assert.True(t, clarify)
	assert.NotEmpty(t, resp["message"])

	it = app.GetItinerary(t, id)
	assert.Equal(t, base, version(t, it), "clarification leaves the itinerary alone")
}

func TestE2E_ChatEmptyTextRejected(t *testing.T) {
	app := NewTestApp(t)
	id, _ := createReadyTrip(t, app)

	resp := app.postJSON(t, "/api/v1/itineraries/"+id+"/chat",
		map[string]any{"text": "   "}, http.StatusBadRequest)
	assert.Equal(t, "invalid_input", resp["code"])
}
