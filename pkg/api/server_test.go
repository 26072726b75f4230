package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderplan/wanderplan/pkg/chat"
	"github.com/wanderplan/wanderplan/pkg/models"
	"github.com/wanderplan/wanderplan/pkg/pipeline"
	"github.com/wanderplan/wanderplan/pkg/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// Function-field fakes so each test scripts exactly the calls it exercises.

type fakeItineraries struct {
	createFn     func(ctx context.Context, ownerID string, req models.CreateItineraryRequest) (*models.Itinerary, error)
	getFn        func(ctx context.Context, id, ownerID string) (*models.Itinerary, error)
	deleteFn     func(ctx context.Context, id, ownerID string) error
	listFn       func(ctx context.Context, userID string, limit, offset int) ([]*models.Itinerary, int, error)
	regenerateFn func(ctx context.Context, id, ownerID string) (*models.Itinerary, error)
}

func (f *fakeItineraries) CreateItinerary(ctx context.Context, ownerID string, req models.CreateItineraryRequest) (*models.Itinerary, error) {
	return f.createFn(ctx, ownerID, req)
}

func (f *fakeItineraries) GetForOwner(ctx context.Context, id, ownerID string) (*models.Itinerary, error) {
	return f.getFn(ctx, id, ownerID)
}

func (f *fakeItineraries) DeleteItinerary(ctx context.Context, id, ownerID string) error {
	return f.deleteFn(ctx, id, ownerID)
}

func (f *fakeItineraries) ListTrips(ctx context.Context, userID string, limit, offset int) ([]*models.Itinerary, int, error) {
	return f.listFn(ctx, userID, limit, offset)
}

func (f *fakeItineraries) Regenerate(ctx context.Context, id, ownerID string) (*models.Itinerary, error) {
	return f.regenerateFn(ctx, id, ownerID)
}

type fakeRevisions struct {
	listFn func(ctx context.Context, itineraryID string, page, pageSize int) (*models.RevisionPage, error)
	getFn  func(ctx context.Context, itineraryID string, number int) (*models.Revision, error)
}

func (f *fakeRevisions) ListRevisions(ctx context.Context, itineraryID string, page, pageSize int) (*models.RevisionPage, error) {
	return f.listFn(ctx, itineraryID, page, pageSize)
}

func (f *fakeRevisions) GetRevision(ctx context.Context, itineraryID string, number int) (*models.Revision, error) {
	return f.getFn(ctx, itineraryID, number)
}

type fakeEngine struct {
	proposeFn func(ctx context.Context, it *models.Itinerary, cs *models.ChangeSet) (models.Diff, error)
	applyFn   func(ctx context.Context, it *models.Itinerary, cs *models.ChangeSet) (models.ApplyChangesResult, error)
	undoFn    func(ctx context.Context, itineraryID string, revisionNumber int) (int, error)
}

func (f *fakeEngine) Propose(ctx context.Context, it *models.Itinerary, cs *models.ChangeSet) (models.Diff, error) {
	return f.proposeFn(ctx, it, cs)
}

func (f *fakeEngine) Apply(ctx context.Context, it *models.Itinerary, cs *models.ChangeSet) (models.ApplyChangesResult, error) {
	return f.applyFn(ctx, it, cs)
}

func (f *fakeEngine) Undo(ctx context.Context, itineraryID string, revisionNumber int) (int, error) {
	return f.undoFn(ctx, itineraryID, revisionNumber)
}

type fakePipeline struct {
	runFn       func(ctx context.Context, it *models.Itinerary) (*pipeline.Handle, error)
	cancelFn    func(executionID string) bool
	activeCount int
}

func (f *fakePipeline) Run(ctx context.Context, it *models.Itinerary) (*pipeline.Handle, error) {
	return f.runFn(ctx, it)
}

func (f *fakePipeline) Cancel(executionID string) bool { return f.cancelFn(executionID) }
func (f *fakePipeline) ActiveCount() int               { return f.activeCount }

type fakeChat struct {
	handleFn func(ctx context.Context, it *models.Itinerary, req models.ChatRequest) (*chat.Response, error)
}

func (f *fakeChat) HandleMessage(ctx context.Context, it *models.Itinerary, req models.ChatRequest) (*chat.Response, error) {
	return f.handleFn(ctx, it, req)
}

func testItinerary() *models.Itinerary {
	return &models.Itinerary{
		ID:      "it_test1",
		OwnerID: "alice",
		Version: 3,
		Status:  models.StatusReady,
		Days:    []models.Day{{Number: 1}},
	}
}

// ownedGetter scripts GetForOwner the way the real service behaves: unknown
// id is ErrNotFound, wrong owner is ErrNotOwner.
func ownedGetter(it *models.Itinerary) func(ctx context.Context, id, ownerID string) (*models.Itinerary, error) {
	return func(_ context.Context, id, ownerID string) (*models.Itinerary, error) {
		if id != it.ID {
			return nil, services.ErrNotFound
		}
		if ownerID != it.OwnerID {
			return nil, services.ErrNotOwner
		}
		return it, nil
	}
}

func doRequest(t *testing.T, router *gin.Engine, method, path, user string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if user != "" {
		req.Header.Set("X-Forwarded-User", user)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, target any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), target))
}

func TestCreateItinerary(t *testing.T) {
	var gotOwner string
	server := NewServer(Options{
		Itineraries: &fakeItineraries{
			createFn: func(_ context.Context, ownerID string, req models.CreateItineraryRequest) (*models.Itinerary, error) {
				gotOwner = ownerID
				assert.Equal(t, "Lisbon", req.Destination)
				it := testItinerary()
				it.Status = models.StatusGenerating
				return it, nil
			},
		},
		Pipeline: &fakePipeline{
			runFn: func(_ context.Context, it *models.Itinerary) (*pipeline.Handle, error) {
				return &pipeline.Handle{ExecutionID: "exec_1", ItineraryID: it.ID}, nil
			},
		},
	})

	rec := doRequest(t, server.Router(), http.MethodPost, "/api/v1/itineraries", "alice", models.CreateItineraryRequest{
		Destination: "Lisbon",
		StartDate:   "2026-09-01",
		EndDate:     "2026-09-03",
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "alice", gotOwner)

	var resp CreateItineraryResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "exec_1", resp.ExecutionID)
	assert.Equal(t, models.StatusGenerating, resp.Itinerary.Status)
}

func TestCreateItinerary_InvalidBody(t *testing.T) {
	server := NewServer(Options{Itineraries: &fakeItineraries{}})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/itineraries", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body errorBody
	decodeBody(t, rec, &body)
	assert.Equal(t, "invalid_input", body.Code)
}

func TestCreateItinerary_ValidationError(t *testing.T) {
	server := NewServer(Options{
		Itineraries: &fakeItineraries{
			createFn: func(context.Context, string, models.CreateItineraryRequest) (*models.Itinerary, error) {
				return nil, services.NewValidationError("end_date", "end date precedes start date")
			},
		},
	})

	rec := doRequest(t, server.Router(), http.MethodPost, "/api/v1/itineraries", "alice",
		models.CreateItineraryRequest{Destination: "Lisbon"})

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body errorBody
	decodeBody(t, rec, &body)
	assert.Equal(t, "invalid_input", body.Code)
	assert.Contains(t, body.Message, "end_date")
}

func TestGetItinerary(t *testing.T) {
	it := testItinerary()
	server := NewServer(Options{Itineraries: &fakeItineraries{getFn: ownedGetter(it)}})
	router := server.Router()

	t.Run("owner gets it", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/api/v1/itineraries/it_test1", "alice", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var got models.Itinerary
		decodeBody(t, rec, &got)
		assert.Equal(t, it.ID, got.ID)
		assert.Equal(t, it.Version, got.Version)
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/api/v1/itineraries/missing", "alice", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("other user is 403", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/api/v1/itineraries/it_test1", "mallory", nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)

		var body errorBody
		decodeBody(t, rec, &body)
		assert.Equal(t, "not_owned", body.Code)
	})

	t.Run("no auth header is anonymous, 403", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/api/v1/itineraries/it_test1", "", nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestDeleteItinerary(t *testing.T) {
	var deleted string
	server := NewServer(Options{
		Itineraries: &fakeItineraries{
			deleteFn: func(_ context.Context, id, ownerID string) error {
				deleted = id
				assert.Equal(t, "alice", ownerID)
				return nil
			},
		},
	})

	rec := doRequest(t, server.Router(), http.MethodDelete, "/api/v1/itineraries/it_test1", "alice", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "it_test1", deleted)
}

func TestListItineraries_Paging(t *testing.T) {
	var gotLimit, gotOffset int
	server := NewServer(Options{
		Itineraries: &fakeItineraries{
			listFn: func(_ context.Context, userID string, limit, offset int) ([]*models.Itinerary, int, error) {
				gotLimit, gotOffset = limit, offset
				return []*models.Itinerary{testItinerary()}, 41, nil
			},
		},
	})
	router := server.Router()

	t.Run("defaults", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/api/v1/itineraries", "alice", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, defaultPageSize, gotLimit)
		assert.Equal(t, 0, gotOffset)

		var resp ListTripsResponse
		decodeBody(t, rec, &resp)
		assert.Equal(t, 41, resp.TotalCount)
		assert.Equal(t, 1, resp.Page)
	})

	t.Run("explicit page", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/api/v1/itineraries?page=3&page_size=10", "alice", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 10, gotLimit)
		assert.Equal(t, 20, gotOffset)
	})

	t.Run("page size clamped", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/api/v1/itineraries?page_size=9999", "alice", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, maxPageSize, gotLimit)
	})

	t.Run("garbage paging falls back", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/api/v1/itineraries?page=-2&page_size=zero", "alice", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, defaultPageSize, gotLimit)
		assert.Equal(t, 0, gotOffset)
	})
}

func TestRegenerate(t *testing.T) {
	server := NewServer(Options{
		Itineraries: &fakeItineraries{
			regenerateFn: func(_ context.Context, id, ownerID string) (*models.Itinerary, error) {
				it := testItinerary()
				it.Status = models.StatusGenerating
				return it, nil
			},
		},
		Pipeline: &fakePipeline{
			runFn: func(_ context.Context, it *models.Itinerary) (*pipeline.Handle, error) {
				return &pipeline.Handle{ExecutionID: "exec_2", ItineraryID: it.ID}, nil
			},
		},
	})

	rec := doRequest(t, server.Router(), http.MethodPost, "/api/v1/itineraries/it_test1/regenerate", "alice", nil)
	require.Equal(t, http.StatusAccepted, rec.Code)

	var resp CreateItineraryResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "exec_2", resp.ExecutionID)
}

func TestCancelGeneration(t *testing.T) {
	it := testItinerary()
	server := NewServer(Options{
		Itineraries: &fakeItineraries{getFn: ownedGetter(it)},
		Pipeline: &fakePipeline{
			cancelFn: func(executionID string) bool { return executionID == "exec_live" },
		},
	})
	router := server.Router()

	t.Run("running execution", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodPost, "/api/v1/itineraries/it_test1/cancel", "alice",
			cancelRequest{ExecutionID: "exec_live"})
		require.Equal(t, http.StatusOK, rec.Code)

		var resp CancelResponse
		decodeBody(t, rec, &resp)
		assert.True(t, resp.Cancelled)
	})

	t.Run("finished execution", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodPost, "/api/v1/itineraries/it_test1/cancel", "alice",
			cancelRequest{ExecutionID: "exec_done"})
		require.Equal(t, http.StatusOK, rec.Code)

		var resp CancelResponse
		decodeBody(t, rec, &resp)
		assert.False(t, resp.Cancelled)
	})

	t.Run("missing execution id", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodPost, "/api/v1/itineraries/it_test1/cancel", "alice",
			cancelRequest{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHealth_NoOptionalDeps(t *testing.T) {
	server := NewServer(Options{Pipeline: &fakePipeline{activeCount: 2}})

	rec := doRequest(t, server.Router(), http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp healthResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, 2, resp.ActiveGenerations)
}

func TestWebSocket_StreamingDisabled(t *testing.T) {
	server := NewServer(Options{})

	rec := doRequest(t, server.Router(), http.MethodGet, "/api/v1/ws", "alice", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestSecurityHeaders(t *testing.T) {
	server := NewServer(Options{Pipeline: &fakePipeline{}})

	rec := doRequest(t, server.Router(), http.MethodGet, "/health", "", nil)
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func TestExtractUser(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{"forwarded user wins", map[string]string{"X-Forwarded-User": "alice", "X-Forwarded-Email": "a@x.io"}, "alice"},
		{"email next", map[string]string{"X-Forwarded-Email": "a@x.io", "X-Remote-User": "bob"}, "a@x.io"},
		{"remote user last", map[string]string{"X-Remote-User": "bob"}, "bob"},
		{"anonymous fallback", nil, "anonymous"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				c.Request.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, extractUser(c))
		})
	}
}
