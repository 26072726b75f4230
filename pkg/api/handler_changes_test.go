package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderplan/wanderplan/pkg/chat"
	"github.com/wanderplan/wanderplan/pkg/engine"
	"github.com/wanderplan/wanderplan/pkg/models"
	"github.com/wanderplan/wanderplan/pkg/worker"
)

func changesServer(eng *fakeEngine) (*gin.Engine, *models.Itinerary) {
	it := testItinerary()
	server := NewServer(Options{
		Itineraries: &fakeItineraries{getFn: ownedGetter(it)},
		Engine:      eng,
	})
	return server.Router(), it
}

func TestApplyChanges(t *testing.T) {
	var gotBase int
	router, _ := changesServer(&fakeEngine{
		applyFn: func(_ context.Context, it *models.Itinerary, cs *models.ChangeSet) (models.ApplyChangesResult, error) {
			gotBase = cs.BaseVersion
			return models.ApplyChangesResult{
				Version: it.Version + 1,
				Diff:    models.Diff{Removed: []models.Node{{ID: "n1"}}},
			}, nil
		},
	})

	cs := models.ChangeSet{
		BaseVersion: 3,
		Ops:         []models.Operation{{Op: models.OpDelete, NodeID: "n1"}},
	}
	rec := doRequest(t, router, http.MethodPost, "/api/v1/itineraries/it_test1/changes", "alice", cs)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, gotBase)

	var result models.ApplyChangesResult
	decodeBody(t, rec, &result)
	assert.Equal(t, 4, result.Version)
	require.Len(t, result.Diff.Removed, 1)
	assert.Equal(t, "n1", result.Diff.Removed[0].ID)
}

func TestApplyChanges_DryRunProposes(t *testing.T) {
	applied := false
	router, _ := changesServer(&fakeEngine{
		proposeFn: func(context.Context, *models.Itinerary, *models.ChangeSet) (models.Diff, error) {
			return models.Diff{Removed: []models.Node{{ID: "n1"}}}, nil
		},
		applyFn: func(context.Context, *models.Itinerary, *models.ChangeSet) (models.ApplyChangesResult, error) {
			applied = true
			return models.ApplyChangesResult{}, nil
		},
	})

	cs := models.ChangeSet{Ops: []models.Operation{{Op: models.OpDelete, NodeID: "n1"}}}
	rec := doRequest(t, router, http.MethodPost, "/api/v1/itineraries/it_test1/changes?dry_run=true", "alice", cs)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, applied)

	// Dry run reports the current version, not a new one.
	var result models.ApplyChangesResult
	decodeBody(t, rec, &result)
	assert.Equal(t, 3, result.Version)
}

func TestApplyChanges_EngineErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        *engine.Error
		wantStatus int
		wantNodeID string
	}{
		{
			name:       "stale base version",
			err:        &engine.Error{Kind: engine.KindVersionConflict, Message: "base version 2 is stale"},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "missing node",
			err:        &engine.Error{Kind: engine.KindNodeNotFound, Message: "node n9 does not exist", NodeID: "n9"},
			wantStatus: http.StatusNotFound,
			wantNodeID: "n9",
		},
		{
			name:       "locked node",
			err:        &engine.Error{Kind: engine.KindLockedTarget, Message: "node n1 is locked", NodeID: "n1"},
			wantStatus: http.StatusConflict,
			wantNodeID: "n1",
		},
		{
			name:       "invalid operation",
			err:        &engine.Error{Kind: engine.KindInvalidInput, Message: "unknown op"},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := changesServer(&fakeEngine{
				applyFn: func(context.Context, *models.Itinerary, *models.ChangeSet) (models.ApplyChangesResult, error) {
					return models.ApplyChangesResult{}, tt.err
				},
			})

			cs := models.ChangeSet{Ops: []models.Operation{{Op: models.OpDelete, NodeID: "n1"}}}
			rec := doRequest(t, router, http.MethodPost, "/api/v1/itineraries/it_test1/changes", "alice", cs)

			require.Equal(t, tt.wantStatus, rec.Code)

			var body errorBody
			decodeBody(t, rec, &body)
			assert.Equal(t, string(tt.err.Kind), body.Code)
			assert.Equal(t, tt.wantNodeID, body.NodeID)
		})
	}
}

func TestApplyChanges_UnknownItinerary(t *testing.T) {
	router, _ := changesServer(&fakeEngine{})

	cs := models.ChangeSet{Ops: []models.Operation{{Op: models.OpDelete, NodeID: "n1"}}}
	rec := doRequest(t, router, http.MethodPost, "/api/v1/itineraries/missing/changes", "alice", cs)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListRevisions(t *testing.T) {
	it := testItinerary()
	server := NewServer(Options{
		Itineraries: &fakeItineraries{getFn: ownedGetter(it)},
		Revisions: &fakeRevisions{
			listFn: func(_ context.Context, itineraryID string, page, pageSize int) (*models.RevisionPage, error) {
				assert.Equal(t, it.ID, itineraryID)
				return &models.RevisionPage{
					Revisions:  []models.Revision{{Number: 2}, {Number: 1}},
					TotalCount: 2,
					Page:       page,
					PageSize:   pageSize,
				}, nil
			},
		},
	})

	rec := doRequest(t, server.Router(), http.MethodGet, "/api/v1/itineraries/it_test1/revisions", "alice", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var page models.RevisionPage
	decodeBody(t, rec, &page)
	require.Len(t, page.Revisions, 2)
	assert.Equal(t, 2, page.Revisions[0].Number)
}

func TestGetRevision(t *testing.T) {
	it := testItinerary()
	server := NewServer(Options{
		Itineraries: &fakeItineraries{getFn: ownedGetter(it)},
		Revisions: &fakeRevisions{
			getFn: func(_ context.Context, itineraryID string, number int) (*models.Revision, error) {
				return &models.Revision{Number: number, Reason: "chat edit"}, nil
			},
		},
	})
	router := server.Router()

	t.Run("by number", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/api/v1/itineraries/it_test1/revisions/5", "alice", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var rev models.Revision
		decodeBody(t, rec, &rev)
		assert.Equal(t, 5, rev.Number)
	})

	t.Run("non-numeric number", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/api/v1/itineraries/it_test1/revisions/latest", "alice", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("zero number", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/api/v1/itineraries/it_test1/revisions/0", "alice", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRollback(t *testing.T) {
	it := testItinerary()
	server := NewServer(Options{
		Itineraries: &fakeItineraries{getFn: ownedGetter(it)},
		Engine: &fakeEngine{
			undoFn: func(_ context.Context, itineraryID string, revisionNumber int) (int, error) {
				assert.Equal(t, it.ID, itineraryID)
				assert.Equal(t, 2, revisionNumber)
				return 7, nil
			},
		},
	})

	rec := doRequest(t, server.Router(), http.MethodPost, "/api/v1/itineraries/it_test1/revisions/2/rollback", "alice", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp RollbackResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, 7, resp.Version)
	assert.Equal(t, it.ID, resp.ItineraryID)
}

func TestChat(t *testing.T) {
	it := testItinerary()
	server := NewServer(Options{
		Itineraries: &fakeItineraries{getFn: ownedGetter(it)},
		Chat: &fakeChat{
			handleFn: func(_ context.Context, got *models.Itinerary, req models.ChatRequest) (*chat.Response, error) {
				assert.Equal(t, it.ID, req.ItineraryID)
				assert.Equal(t, "move the museum to day 2", req.Text)
				return &chat.Response{Intent: "edit", Confidence: 0.9, Message: "Done.", NewVersion: 4}, nil
			},
		},
	})

	rec := doRequest(t, server.Router(), http.MethodPost, "/api/v1/itineraries/it_test1/chat", "alice",
		models.ChatRequest{Text: "move the museum to day 2"})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp chat.Response
	decodeBody(t, rec, &resp)
	assert.Equal(t, "edit", resp.Intent)
	assert.Equal(t, 4, resp.NewVersion)
}

func TestChat_EmptyText(t *testing.T) {
	it := testItinerary()
	server := NewServer(Options{
		Itineraries: &fakeItineraries{getFn: ownedGetter(it)},
		Chat: &fakeChat{
			handleFn: func(context.Context, *models.Itinerary, models.ChatRequest) (*chat.Response, error) {
				return nil, worker.Errorf(worker.KindInvalidInput, "message text is required")
			},
		},
	})

	rec := doRequest(t, server.Router(), http.MethodPost, "/api/v1/itineraries/it_test1/chat", "alice",
		models.ChatRequest{Text: ""})

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body errorBody
	decodeBody(t, rec, &body)
	assert.Equal(t, "invalid_input", body.Code)
}

func TestChat_TransientFailure(t *testing.T) {
	it := testItinerary()
	server := NewServer(Options{
		Itineraries: &fakeItineraries{getFn: ownedGetter(it)},
		Chat: &fakeChat{
			handleFn: func(context.Context, *models.Itinerary, models.ChatRequest) (*chat.Response, error) {
				return nil, worker.Errorf(worker.KindTransient, "event store unavailable")
			},
		},
	})

	rec := doRequest(t, server.Router(), http.MethodPost, "/api/v1/itineraries/it_test1/chat", "alice",
		models.ChatRequest{Text: "hello"})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
