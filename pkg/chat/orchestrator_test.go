package chat

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderplan/wanderplan/ent"
	"github.com/wanderplan/wanderplan/pkg/events"
	"github.com/wanderplan/wanderplan/pkg/identity"
	"github.com/wanderplan/wanderplan/pkg/llm"
	"github.com/wanderplan/wanderplan/pkg/models"
	"github.com/wanderplan/wanderplan/pkg/worker"
)

// recordingPublisher captures warning events.
type recordingPublisher struct {
	warnings []events.WarningPayload
}

func (p *recordingPublisher) PublishWarning(_ context.Context, _ string, e events.WarningPayload) error {
	p.warnings = append(p.warnings, e)
	return nil
}
func (p *recordingPublisher) PublishProgress(context.Context, string, events.ProgressPayload) error {
	return nil
}
func (p *recordingPublisher) PublishPhaseStart(context.Context, string, events.PhaseStartPayload) error {
	return nil
}
func (p *recordingPublisher) PublishPhaseComplete(context.Context, string, events.PhaseCompletePayload) error {
	return nil
}
func (p *recordingPublisher) PublishPatchApplied(context.Context, string, events.PatchAppliedPayload) error {
	return nil
}
func (p *recordingPublisher) PublishDayCompleted(context.Context, string, events.DayCompletedPayload) error {
	return nil
}
func (p *recordingPublisher) PublishNodeEnhanced(context.Context, string, events.NodeEnhancedPayload) error {
	return nil
}
func (p *recordingPublisher) PublishGenerationComplete(context.Context, string, events.GenerationCompletePayload) error {
	return nil
}
func (p *recordingPublisher) PublishItineraryStatus(context.Context, string, events.ItineraryStatusPayload) error {
	return nil
}
func (p *recordingPublisher) PublishError(context.Context, string, events.ErrorPayload) error {
	return nil
}

// memoryTranscript is an in-memory Transcript.
type memoryTranscript struct {
	turns []*ent.ChatMessage
}

func (m *memoryTranscript) AppendUserMessage(_ context.Context, itineraryID, content string) (*ent.ChatMessage, error) {
	msg := &ent.ChatMessage{ItineraryID: itineraryID, Role: "user", Content: content}
	m.turns = append(m.turns, msg)
	return msg, nil
}

func (m *memoryTranscript) AppendAssistantMessage(_ context.Context, itineraryID, content, intent string, cs *models.ChangeSet, appliedVersion *int) (*ent.ChatMessage, error) {
	msg := &ent.ChatMessage{ItineraryID: itineraryID, Role: "assistant", Content: content, Intent: intent, AppliedVersion: appliedVersion}
	if cs != nil {
		msg.ChangeSet = *cs
	}
	m.turns = append(m.turns, msg)
	return msg, nil
}

func (m *memoryTranscript) GetTranscript(_ context.Context, _ string, limit int) ([]*ent.ChatMessage, error) {
	if len(m.turns) > limit {
		return m.turns[len(m.turns)-limit:], nil
	}
	return m.turns, nil
}

// scriptApplier fakes the change engine.
type scriptApplier struct {
	applied *models.ChangeSet
	version int
	err     error
}

func (a *scriptApplier) Apply(_ context.Context, it *models.Itinerary, cs *models.ChangeSet) (models.ApplyChangesResult, error) {
	if a.err != nil {
		return models.ApplyChangesResult{}, a.err
	}
	a.applied = cs
	it.Version = a.version
	return models.ApplyChangesResult{
		Version: a.version,
		Diff:    models.Diff{Updated: []models.NodeUpdate{{}}},
	}, nil
}

// scriptWorker answers one task type with a canned result or error.
type scriptWorker struct {
	caps    worker.Capabilities
	result  *worker.Result
	err     error
	calls   int
	lastReq *worker.Request
}

func (w *scriptWorker) Capabilities() worker.Capabilities { return w.caps }
func (w *scriptWorker) Execute(_ context.Context, req *worker.Request) (*worker.Result, error) {
	w.calls++
	w.lastReq = req
	if w.err != nil {
		return nil, w.err
	}
	return w.result, nil
}

func chatItinerary() *models.Itinerary {
	return &models.Itinerary{
		ID:      "01CHATITINERARY00000000000",
		OwnerID: "traveller-1",
		Version: 2,
		Status:  models.StatusReady,
		Trip: models.TripMeta{
			Destination: "Paris",
			StartDate:   "2026-05-01",
			EndDate:     "2026-05-03",
			Party:       models.Party{Adults: 2},
			Budget:      models.BudgetMid,
		},
		Days: []models.Day{
			{Number: 1, Date: "2026-05-01", Nodes: []models.Node{
				{ID: "day1_node1", Title: "Louvre Museum", Type: models.NodeAttraction},
				{ID: "day1_node2", Title: "Chez Janou", Type: models.NodeMeal},
			}},
			{Number: 2, Date: "2026-05-02", Nodes: []models.Node{
				{ID: "day2_node1", Title: "Orsay Museum", Type: models.NodeAttraction},
			}},
			{Number: 3, Date: "2026-05-03", Nodes: []models.Node{
				{ID: "day3_node1", Title: "Seine Cruise", Type: models.NodeActivity},
			}},
		},
	}
}

// classifier builds a structured client that answers intent classification
// with the given JSON.
func classifier(t *testing.T, intentJSON string) llm.Client {
	t.Helper()
	provider := llm.NewNoopProvider()
	provider.Respond("chat_intent", intentJSON)
	client, err := llm.NewStructuredClient(provider)
	require.NoError(t, err)
	return client
}

type chatRig struct {
	orch       *Orchestrator
	pub        *recordingPublisher
	transcript *memoryTranscript
	applier    *scriptApplier
	editor     *scriptWorker
	explainer  *scriptWorker
	booker     *scriptWorker
}

func newChatRig(t *testing.T, intentJSON string) *chatRig {
	t.Helper()

	registry := worker.NewRegistry()
	editor := &scriptWorker{
		caps: worker.Capabilities{TaskType: worker.TaskEdit, Priority: 10, ChatEnabled: true, ProducesChangeSet: true},
		result: &worker.Result{
			ChangeSet: &models.ChangeSet{
				Ops:    []models.Operation{{Op: models.OpDelete, NodeID: "day1_node2"}},
				Reason: "requested via chat",
			},
			Message: "Proposed changes: 1 delete",
		},
	}
	explainer := &scriptWorker{
		caps:   worker.Capabilities{TaskType: worker.TaskExplain, Priority: 10, ChatEnabled: true},
		result: &worker.Result{Message: "The Louvre opens at 09:00."},
	}
	booker := &scriptWorker{
		caps: worker.Capabilities{TaskType: worker.TaskBook, Priority: 10, ChatEnabled: true, ProducesChangeSet: true},
		result: &worker.Result{
			ChangeSet: &models.ChangeSet{Ops: []models.Operation{{Op: models.OpUpdate, NodeID: "day1_node1"}}},
			Message:   "Booked.",
		},
	}
	registry.MustRegister(editor, explainer, booker)

	pub := &recordingPublisher{}
	transcript := &memoryTranscript{}
	applier := &scriptApplier{version: 3}

	orch := New(classifier(t, intentJSON), registry, applier, identity.NewService(nil), pub, transcript, Config{})
	return &chatRig{orch: orch, pub: pub, transcript: transcript, applier: applier, editor: editor, explainer: explainer, booker: booker}
}

func TestHandleMessage_EditFlow(t *testing.T) {
	rig := newChatRig(t, `{"intent": "edit", "confidence": 0.92, "node_reference": "chez janou"}`)
	it := chatItinerary()

	resp, err := rig.orch.HandleMessage(context.Background(), it, models.ChatRequest{
		ItineraryID: it.ID,
		Text:        "drop the dinner at Chez Janou",
	})
	require.NoError(t, err)

	assert.Equal(t, IntentEdit, resp.Intent)
	assert.InDelta(t, 0.92, resp.Confidence, 0.001)
	assert.False(t, resp.Clarify)
	require.NotNil(t, resp.ChangeSet)
	assert.Equal(t, 3, resp.NewVersion)
	require.NotNil(t, resp.Diff)

	// Worker saw the resolved referent and the current itinerary object.
	require.Equal(t, 1, rig.editor.calls)
	assert.Equal(t, "day1_node2", rig.editor.lastReq.TargetNodeID)
	assert.Same(t, it, rig.editor.lastReq.Itinerary)

	// ChangeSet went through the engine, and the transcript recorded both turns.
	require.NotNil(t, rig.applier.applied)
	require.Len(t, rig.transcript.turns, 2)
	assistant := rig.transcript.turns[1]
	assert.Equal(t, "edit", assistant.Intent)
	require.NotNil(t, assistant.AppliedVersion)
	assert.Equal(t, 3, *assistant.AppliedVersion)
}

func TestHandleMessage_LowConfidenceClarifies(t *testing.T) {
	rig := newChatRig(t, `{"intent": "edit", "confidence": 0.35}`)
	it := chatItinerary()

	resp, err := rig.orch.HandleMessage(context.Background(), it, models.ChatRequest{Text: "hmm maybe change something"})
	require.NoError(t, err)

	assert.True(t, resp.Clarify)
	assert.Zero(t, rig.editor.calls)
	assert.Nil(t, rig.applier.applied)
	assert.Equal(t, 2, it.Version, "itinerary must be untouched")
}

func TestHandleMessage_UnknownIntentClarifies(t *testing.T) {
	rig := newChatRig(t, `{"intent": "unknown", "confidence": 0.95}`)

	resp, err := rig.orch.HandleMessage(context.Background(), chatItinerary(), models.ChatRequest{Text: "what is the meaning of travel"})
	require.NoError(t, err)
	assert.True(t, resp.Clarify)
}

func TestHandleMessage_CreateIntentRedirects(t *testing.T) {
	rig := newChatRig(t, `{"intent": "create", "confidence": 0.9}`)

	resp, err := rig.orch.HandleMessage(context.Background(), chatItinerary(), models.ChatRequest{Text: "plan me a week in Tokyo"})
	require.NoError(t, err)

	assert.Equal(t, IntentCreate, resp.Intent)
	assert.False(t, resp.Clarify)
	assert.Contains(t, resp.Message, "trips page")
	assert.Zero(t, rig.editor.calls)
}

func TestHandleMessage_AmbiguousMentionDisambiguates(t *testing.T) {
	rig := newChatRig(t, `{"intent": "edit", "confidence": 0.9, "node_reference": "the museum"}`)
	it := chatItinerary()

	resp, err := rig.orch.HandleMessage(context.Background(), it, models.ChatRequest{Text: "move the museum to the afternoon"})
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(resp.Candidates), 2)
	titles := []string{resp.Candidates[0].Title, resp.Candidates[1].Title}
	assert.Contains(t, titles, "Louvre Museum")
	assert.Contains(t, titles, "Orsay Museum")
	assert.Contains(t, resp.Message, "which one")
	assert.Zero(t, rig.editor.calls, "no mutation on ambiguity")
	assert.Nil(t, rig.applier.applied)
}

func TestHandleMessage_ScopeDayBreaksAmbiguity(t *testing.T) {
	rig := newChatRig(t, `{"intent": "edit", "confidence": 0.9, "node_reference": "the museum"}`)
	it := chatItinerary()

	resp, err := rig.orch.HandleMessage(context.Background(), it, models.ChatRequest{
		Text:  "move the museum to the afternoon",
		Scope: "day2",
	})
	require.NoError(t, err)

	assert.Empty(t, resp.Candidates)
	require.Equal(t, 1, rig.editor.calls)
	assert.Equal(t, "day2_node1", rig.editor.lastReq.TargetNodeID)
	assert.Equal(t, 2, rig.editor.lastReq.Day)
}

func TestHandleMessage_BookUnresolvedReferenceClarifies(t *testing.T) {
	rig := newChatRig(t, `{"intent": "book", "confidence": 0.9, "node_reference": "the opera"}`)

	resp, err := rig.orch.HandleMessage(context.Background(), chatItinerary(), models.ChatRequest{Text: "book the opera for us"})
	require.NoError(t, err)

	assert.True(t, resp.Clarify)
	assert.Contains(t, resp.Message, "the opera")
	assert.Zero(t, rig.booker.calls)
}

func TestHandleMessage_ExplainIsReadOnly(t *testing.T) {
	rig := newChatRig(t, `{"intent": "explain", "confidence": 0.88}`)
	it := chatItinerary()

	resp, err := rig.orch.HandleMessage(context.Background(), it, models.ChatRequest{Text: "when does the Louvre open?"})
	require.NoError(t, err)

	assert.Equal(t, "The Louvre opens at 09:00.", resp.Message)
	assert.Nil(t, resp.ChangeSet)
	assert.Nil(t, rig.applier.applied)
	assert.Equal(t, 1, rig.explainer.calls)
}

func TestHandleMessage_WorkerFailureApologizes(t *testing.T) {
	rig := newChatRig(t, `{"intent": "edit", "confidence": 0.9}`)
	rig.editor.err = worker.Errorf(worker.KindLLMFailure, "provider down")
	it := chatItinerary()

	resp, err := rig.orch.HandleMessage(context.Background(), it, models.ChatRequest{Text: "remove dinner"})
	require.NoError(t, err)

	assert.Contains(t, resp.Message, "Sorry")
	assert.Nil(t, resp.ChangeSet)
	require.Len(t, rig.pub.warnings, 1)
	assert.Equal(t, "chat_worker_failed", rig.pub.warnings[0].Code)
	assert.Equal(t, 2, it.Version, "itinerary must be untouched")
}

func TestHandleMessage_ApplyFailureApologizes(t *testing.T) {
	rig := newChatRig(t, `{"intent": "edit", "confidence": 0.9}`)
	rig.applier.err = errors.New("version conflict: have 3, changeset built against 2")

	resp, err := rig.orch.HandleMessage(context.Background(), chatItinerary(), models.ChatRequest{Text: "remove dinner"})
	require.NoError(t, err)

	assert.Contains(t, resp.Message, "Sorry")
	require.Len(t, rig.pub.warnings, 1)
	assert.Equal(t, "chat_apply_failed", rig.pub.warnings[0].Code)
}

func TestHandleMessage_ClassificationFailureApologizes(t *testing.T) {
	// No canned response registered: classification fails.
	provider := llm.NewNoopProvider()
	client, err := llm.NewStructuredClient(provider)
	require.NoError(t, err)

	pub := &recordingPublisher{}
	orch := New(client, worker.NewRegistry(), &scriptApplier{}, identity.NewService(nil), pub, nil, Config{})

	resp, err := orch.HandleMessage(context.Background(), chatItinerary(), models.ChatRequest{Text: "hello"})
	require.NoError(t, err)

	assert.Contains(t, resp.Message, "Sorry")
	require.Len(t, pub.warnings, 1)
	assert.Equal(t, "classification_failed", pub.warnings[0].Code)
}

func TestHandleMessage_EmptyTextRejected(t *testing.T) {
	rig := newChatRig(t, `{"intent": "edit", "confidence": 0.9}`)

	_, err := rig.orch.HandleMessage(context.Background(), chatItinerary(), models.ChatRequest{Text: "   "})
	require.Error(t, err)
	assert.True(t, worker.IsKind(err, worker.KindInvalidInput))
}

func TestHandleMessage_ConfigurableThreshold(t *testing.T) {
	registry := worker.NewRegistry()
	explainer := &scriptWorker{
		caps:   worker.Capabilities{TaskType: worker.TaskExplain, Priority: 10, ChatEnabled: true},
		result: &worker.Result{Message: "It is close to the river."},
	}
	registry.MustRegister(explainer)

	// 0.5 confidence passes a lowered threshold but would fail the default.
	orch := New(classifier(t, `{"intent": "explain", "confidence": 0.5}`),
		registry, &scriptApplier{}, identity.NewService(nil), nil, nil,
		Config{ConfidenceThreshold: 0.4})

	resp, err := orch.HandleMessage(context.Background(), chatItinerary(), models.ChatRequest{Text: "where is it?"})
	require.NoError(t, err)
	assert.False(t, resp.Clarify)
	assert.Equal(t, 1, explainer.calls)
}

func TestRecentNodeIDs_FromTranscript(t *testing.T) {
	rig := newChatRig(t, `{"intent": "edit", "confidence": 0.9}`)

	applied := 3
	_, err := rig.transcript.AppendAssistantMessage(context.Background(), "01CHATITINERARY00000000000",
		"done", "edit",
		&models.ChangeSet{Ops: []models.Operation{{Op: models.OpUpdate, NodeID: "day2_node1"}}},
		&applied)
	require.NoError(t, err)

	ids := rig.orch.recentNodeIDs(context.Background(), "01CHATITINERARY00000000000")
	require.Len(t, ids, 1)
	assert.Equal(t, "day2_node1", ids[0])
}

func TestParseScopeDay(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"day3", 3},
		{"Day2", 2},
		{"4", 4},
		{"", 0},
		{"dayzero", 0},
		{"day0", 0},
		{"day-1", 0},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.in), func(t *testing.T) {
			assert.Equal(t, tt.want, parseScopeDay(tt.in))
		})
	}
}
