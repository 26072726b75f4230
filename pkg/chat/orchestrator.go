// Package chat turns free-text traveller requests into classified intents,
// resolves ambiguous node references, dispatches exactly one chat-capable
// worker, and applies resulting changesets through the change engine. No
// mutation ever happens outside the engine; failures surface as apologies
// plus warning events, never partial state.
package chat

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/wanderplan/wanderplan/ent"
	"github.com/wanderplan/wanderplan/pkg/events"
	"github.com/wanderplan/wanderplan/pkg/identity"
	"github.com/wanderplan/wanderplan/pkg/llm"
	"github.com/wanderplan/wanderplan/pkg/models"
	"github.com/wanderplan/wanderplan/pkg/worker"
)

// Intent tags recognised by classification.
const (
	IntentCreate  = "create"
	IntentEdit    = "edit"
	IntentExplain = "explain"
	IntentBook    = "book"
	IntentUnknown = "unknown"
)

var intentSchema = llm.SchemaFor("chat_intent", `{
	"type": "object",
	"required": ["intent", "confidence"],
	"properties": {
		"intent": {"type": "string", "enum": ["create", "edit", "explain", "book", "unknown"]},
		"confidence": {"type": "number", "minimum": 0, "maximum": 1},
		"node_reference": {"type": "string"},
		"day": {"type": "integer", "minimum": 1}
	}
}`)

const classifierSystem = `You classify a traveller's message about their itinerary.
Pick the single best intent: "edit" changes the plan, "explain" asks a question, "book" reserves a specific activity, "create" asks for a whole new trip, "unknown" fits nothing.
When the message refers to a specific itinerary item, copy the words used to refer to it into "node_reference" and the day number into "day" when one is named.
Report honest confidence: vague or multi-intent messages get low scores.`

const summaryCharBudget = 6000

// Applier is the change-engine surface the orchestrator needs.
type Applier interface {
	Apply(ctx context.Context, it *models.Itinerary, cs *models.ChangeSet) (models.ApplyChangesResult, error)
}

// Transcript persists conversation turns. Satisfied by services.ChatService;
// nil disables persistence.
type Transcript interface {
	AppendUserMessage(ctx context.Context, itineraryID, content string) (*ent.ChatMessage, error)
	AppendAssistantMessage(ctx context.Context, itineraryID, content, intent string, cs *models.ChangeSet, appliedVersion *int) (*ent.ChatMessage, error)
	GetTranscript(ctx context.Context, itineraryID string, limit int) ([]*ent.ChatMessage, error)
}

// Config tunes the orchestrator.
type Config struct {
	// ConfidenceThreshold below which classification asks for clarification.
	ConfidenceThreshold float64
	// TranscriptWindow is how many prior turns feed recency ranking.
	TranscriptWindow int
}

func (c Config) withDefaults() Config {
	if c.ConfidenceThreshold <= 0 {
		c.ConfidenceThreshold = 0.6
	}
	if c.TranscriptWindow <= 0 {
		c.TranscriptWindow = 20
	}
	return c
}

// Response is the outcome of one chat turn. Exactly one of Candidates,
// Clarify, or the applied-change fields is meaningful; Message is always set.
type Response struct {
	Intent     string      `json:"intent"`
	Confidence float64     `json:"confidence"`
	Message    string      `json:"message"`
	Clarify    bool        `json:"clarify,omitempty"`
	Candidates []Candidate `json:"candidates,omitempty"`

	ChangeSet  *models.ChangeSet `json:"changeset,omitempty"`
	NewVersion int               `json:"new_version,omitempty"`
	Diff       *models.Diff      `json:"diff,omitempty"`
}

// Orchestrator coordinates one chat turn end to end.
type Orchestrator struct {
	client     llm.Client
	registry   *worker.Registry
	applier    Applier
	ident      *identity.Service
	pub        events.Publisher
	transcript Transcript
	cfg        Config
}

// New creates a chat orchestrator. pub and transcript may be nil.
func New(client llm.Client, registry *worker.Registry, applier Applier, ident *identity.Service, pub events.Publisher, transcript Transcript, cfg Config) *Orchestrator {
	return &Orchestrator{
		client:     client,
		registry:   registry,
		applier:    applier,
		ident:      ident,
		pub:        pub,
		transcript: transcript,
		cfg:        cfg.withDefaults(),
	}
}

// HandleMessage processes one traveller turn against the itinerary. The
// itinerary object is migrated in place and threaded unchanged through
// worker dispatch and engine apply.
func (o *Orchestrator) HandleMessage(ctx context.Context, it *models.Itinerary, req models.ChatRequest) (*Response, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, worker.Errorf(worker.KindInvalidInput, "chat message has no text")
	}

	o.recordUser(ctx, it.ID, req.Text)

	migrated, err := o.ident.MigrateIfNeeded(ctx, it)
	if err != nil {
		return nil, fmt.Errorf("migrating itinerary %s for chat: %w", it.ID, err)
	}
	*it = *migrated

	cls, err := o.classify(ctx, it, req)
	if err != nil {
		slog.Warn("Intent classification failed", "itinerary_id", it.ID, "error", err)
		return o.apologize(ctx, it, IntentUnknown, 0,
			"Sorry, I could not work out what you meant just now. Please try again in a moment.",
			"classification_failed", err), nil
	}

	if cls.Intent == IntentUnknown || cls.Confidence < o.cfg.ConfidenceThreshold {
		return o.finish(ctx, it, &Response{
			Intent:     cls.Intent,
			Confidence: cls.Confidence,
			Clarify:    true,
			Message:    "I want to be sure I change the right thing. Could you say which activity or day you mean, and what should happen to it?",
		}, nil, nil)
	}

	if cls.Intent == IntentCreate {
		return o.finish(ctx, it, &Response{
			Intent:     cls.Intent,
			Confidence: cls.Confidence,
			Message:    "Planning a brand-new trip starts from the trips page — this conversation can only change the current itinerary. Tell me what to adjust here, or create a new trip for the other destination.",
		}, nil, nil)
	}

	scopeDay := parseScopeDay(req.Scope)
	if scopeDay == 0 {
		scopeDay = cls.Day
	}

	// Resolve an ambiguous mention before anything mutates.
	var targetNodeID string
	if cls.NodeReference != "" {
		candidates := resolveNodes(it, cls.NodeReference, scopeDay, o.recentNodeIDs(ctx, it.ID))
		switch {
		case len(candidates) == 0 && cls.Intent == IntentBook:
			return o.finish(ctx, it, &Response{
				Intent:     cls.Intent,
				Confidence: cls.Confidence,
				Clarify:    true,
				Message:    fmt.Sprintf("I could not find %q in this itinerary. Which activity should I book?", cls.NodeReference),
			}, nil, nil)
		case ambiguous(candidates):
			return o.finish(ctx, it, &Response{
				Intent:     cls.Intent,
				Confidence: cls.Confidence,
				Candidates: candidates,
				Message:    disambiguationMessage(cls.NodeReference, candidates),
			}, nil, nil)
		case len(candidates) > 0:
			targetNodeID = candidates[0].NodeID
		}
	}

	task, ok := taskForIntent(cls.Intent)
	if !ok {
		return o.apologize(ctx, it, cls.Intent, cls.Confidence,
			"Sorry, I cannot help with that from here.", "unsupported_intent", nil), nil
	}

	plan, err := o.registry.Plan(task)
	if err != nil {
		return o.apologize(ctx, it, cls.Intent, cls.Confidence,
			"Sorry, that capability is not available right now. Please try again later.",
			"worker_unavailable", err), nil
	}
	// The chat path always plans to exactly one worker.
	w := plan[0]
	if !w.Capabilities().ChatEnabled {
		return o.apologize(ctx, it, cls.Intent, cls.Confidence,
			"Sorry, that capability is not available right now. Please try again later.",
			"worker_unavailable", nil), nil
	}

	result, err := w.Execute(ctx, &worker.Request{
		TaskType:     task,
		Itinerary:    it,
		Text:         req.Text,
		TargetNodeID: targetNodeID,
		Scope:        scopeMap(scopeDay),
		Day:          scopeDay,
	})
	if err != nil {
		slog.Warn("Chat worker failed",
			"itinerary_id", it.ID, "task", task, "kind", worker.KindOf(err), "error", err)
		return o.apologize(ctx, it, cls.Intent, cls.Confidence,
			"Sorry, I could not complete that change. Your itinerary is untouched — please try rephrasing or try again shortly.",
			"chat_worker_failed", err), nil
	}

	resp := &Response{
		Intent:     cls.Intent,
		Confidence: cls.Confidence,
		Message:    result.Message,
	}

	// Read-only workers are done here.
	if result.ChangeSet == nil {
		return o.finish(ctx, it, resp, nil, nil)
	}

	applied, err := o.applier.Apply(ctx, it, result.ChangeSet)
	if err != nil {
		slog.Warn("Chat apply failed", "itinerary_id", it.ID, "task", task, "error", err)
		return o.apologize(ctx, it, cls.Intent, cls.Confidence,
			"Sorry, I could not apply that change — the itinerary may have been modified meanwhile. Please reload and try again.",
			"chat_apply_failed", err), nil
	}

	resp.ChangeSet = result.ChangeSet
	resp.NewVersion = applied.Version
	resp.Diff = &applied.Diff
	if resp.Message == "" {
		resp.Message = fmt.Sprintf("Done — your itinerary is now at version %d.", applied.Version)
	}
	return o.finish(ctx, it, resp, result.ChangeSet, &applied.Version)
}

// classification is the decoded intent payload.
type classification struct {
	Intent        string  `json:"intent"`
	Confidence    float64 `json:"confidence"`
	NodeReference string  `json:"node_reference"`
	Day           int     `json:"day"`
}

func (o *Orchestrator) classify(ctx context.Context, it *models.Itinerary, req models.ChatRequest) (*classification, error) {
	var b strings.Builder
	b.WriteString(o.ident.SummarizeForWorker(it, "chat", summaryCharBudget))
	if req.Scope != "" {
		fmt.Fprintf(&b, "\nThe traveller limited the request to %s.\n", req.Scope)
	}
	fmt.Fprintf(&b, "\nTraveller message: %s\n", req.Text)

	raw, err := o.client.GenerateStructured(ctx, llm.Request{
		System:      classifierSystem,
		Prompt:      b.String(),
		Schema:      intentSchema,
		Temperature: 0.1,
	})
	if err != nil {
		return nil, err
	}

	var cls classification
	if err := llm.Decode(raw, &cls); err != nil {
		return nil, err
	}
	return &cls, nil
}

// recentNodeIDs extracts node identifiers from the latest transcript turns,
// newest first, for recency ranking.
func (o *Orchestrator) recentNodeIDs(ctx context.Context, itineraryID string) []string {
	if o.transcript == nil {
		return nil
	}
	turns, err := o.transcript.GetTranscript(ctx, itineraryID, o.cfg.TranscriptWindow)
	if err != nil {
		slog.Warn("Failed to load transcript for recency ranking",
			"itinerary_id", itineraryID, "error", err)
		return nil
	}

	var ids []string
	for i := len(turns) - 1; i >= 0; i-- {
		for _, op := range turns[i].ChangeSet.Ops {
			if op.NodeID != "" {
				ids = append(ids, op.NodeID)
			}
		}
	}
	return ids
}

// finish records the assistant turn and returns the response.
func (o *Orchestrator) finish(ctx context.Context, it *models.Itinerary, resp *Response, cs *models.ChangeSet, appliedVersion *int) (*Response, error) {
	o.recordAssistant(ctx, it.ID, resp, cs, appliedVersion)
	return resp, nil
}

// apologize emits a warning event and returns an apology response. The
// itinerary is unchanged by contract.
func (o *Orchestrator) apologize(ctx context.Context, it *models.Itinerary, intent string, confidence float64, message, code string, cause error) *Response {
	if o.pub != nil {
		detail := message
		if cause != nil {
			detail = cause.Error()
		}
		if err := o.pub.PublishWarning(ctx, it.ID, events.WarningPayload{
			BasePayload:  events.NewBase(events.EventTypeWarning, it.ID, ""),
			Code:         code,
			Message:      detail,
			RecoveryHint: "retry the chat request",
		}); err != nil {
			slog.Warn("Failed to publish chat warning", "itinerary_id", it.ID, "code", code, "error", err)
		}
	}
	resp := &Response{Intent: intent, Confidence: confidence, Message: message}
	o.recordAssistant(ctx, it.ID, resp, nil, nil)
	return resp
}

func (o *Orchestrator) recordUser(ctx context.Context, itineraryID, text string) {
	if o.transcript == nil {
		return
	}
	if _, err := o.transcript.AppendUserMessage(ctx, itineraryID, text); err != nil {
		slog.Warn("Failed to persist user chat turn", "itinerary_id", itineraryID, "error", err)
	}
}

func (o *Orchestrator) recordAssistant(ctx context.Context, itineraryID string, resp *Response, cs *models.ChangeSet, appliedVersion *int) {
	if o.transcript == nil {
		return
	}
	if _, err := o.transcript.AppendAssistantMessage(ctx, itineraryID, resp.Message, resp.Intent, cs, appliedVersion); err != nil {
		slog.Warn("Failed to persist assistant chat turn", "itinerary_id", itineraryID, "error", err)
	}
}

// taskForIntent maps a classified intent onto its single chat worker.
func taskForIntent(intent string) (worker.TaskType, bool) {
	switch intent {
	case IntentEdit:
		return worker.TaskEdit, true
	case IntentExplain:
		return worker.TaskExplain, true
	case IntentBook:
		return worker.TaskBook, true
	default:
		return "", false
	}
}

// parseScopeDay accepts "day3" or "3".
func parseScopeDay(scope string) int {
	s := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(scope)), "day")
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0
	}
	return n
}

func scopeMap(day int) map[string]string {
	if day == 0 {
		return nil
	}
	return map[string]string{"day": strconv.Itoa(day)}
}

func disambiguationMessage(reference string, candidates []Candidate) string {
	var b strings.Builder
	fmt.Fprintf(&b, "I found a few matches for %q — which one do you mean?", reference)
	for i, c := range candidates {
		fmt.Fprintf(&b, "\n%d. %s (day %d)", i+1, c.Title, c.Day)
	}
	return b.String()
}
