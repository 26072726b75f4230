package events

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncateIfNeeded(t *testing.T) {
	t.Run("passes through normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(PhaseStartPayload{
			BasePayload: BasePayload{
				Type:        EventTypePhaseStart,
				ItineraryID: "01J8ABC",
			},
			Phase: "population",
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, EventTypePhaseStart)
		assert.Contains(t, result, "01J8ABC")
	})

	t.Run("truncates oversized payload", func(t *testing.T) {
		payload, _ := json.Marshal(WarningPayload{
			BasePayload: BasePayload{
				Type:        EventTypeWarning,
				ItineraryID: "01J8ABC",
			},
			Code:    "worker_failed",
			Message: strings.Repeat("a", 8000),
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, "truncated")
		assert.Less(t, len(result), 8000)
	})

	t.Run("does not truncate small payload", func(t *testing.T) {
		payload, _ := json.Marshal(ProgressPayload{
			BasePayload: BasePayload{Type: EventTypeProgress},
			Phase:       "skeleton",
			Percent:     10,
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.NotContains(t, result, "truncated")
	})

	t.Run("truncated payload preserves routing fields", func(t *testing.T) {
		payload, _ := json.Marshal(WarningPayload{
			BasePayload: BasePayload{
				Type:        EventTypeWarning,
				ItineraryID: "01J8XYZ",
				ExecutionID: "exec-456",
			},
			Message: strings.Repeat("x", 8000),
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)

		assert.Contains(t, result, EventTypeWarning)
		assert.Contains(t, result, "01J8XYZ")
		assert.Contains(t, result, "exec-456")
		assert.Contains(t, result, `"truncated":true`)
		assert.NotContains(t, result, "xxxx")
	})

	t.Run("empty JSON object", func(t *testing.T) {
		result, err := truncateIfNeeded("{}")
		require.NoError(t, err)
		assert.Equal(t, "{}", result)
	})
}

func TestInjectDBEventIDAndTruncate(t *testing.T) {
	t.Run("injects db_event_id into normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(PhaseCompletePayload{
			BasePayload: BasePayload{
				Type:        EventTypePhaseComplete,
				ItineraryID: "01J8ABC",
			},
			Phase:      "enrichment",
			DurationMS: 1200,
		})

		result, err := injectDBEventIDAndTruncate(payload, 42)
		require.NoError(t, err)
		assert.Contains(t, result, `"db_event_id":42`)
		assert.Contains(t, result, "enrichment")
	})

	t.Run("truncated payload preserves db_event_id", func(t *testing.T) {
		payload, _ := json.Marshal(WarningPayload{
			BasePayload: BasePayload{
				Type:        EventTypeWarning,
				ItineraryID: "01J8XYZ",
			},
			Message: strings.Repeat("x", 8000),
		})

		result, err := injectDBEventIDAndTruncate(payload, 42)
		require.NoError(t, err)
		assert.Contains(t, result, `"truncated":true`)
		assert.Contains(t, result, `"db_event_id":42`)
		assert.Contains(t, result, "01J8XYZ")
	})

	t.Run("truncated payload without execution_id omits it", func(t *testing.T) {
		payload, _ := json.Marshal(WarningPayload{
			BasePayload: BasePayload{Type: EventTypeWarning},
			Message:     strings.Repeat("x", 8000),
		})

		result, err := injectDBEventIDAndTruncate(payload, 99)
		require.NoError(t, err)
		assert.Contains(t, result, `"truncated":true`)
		assert.Contains(t, result, `"db_event_id":99`)
		assert.NotContains(t, result, "execution_id")
	})
}

func TestNewEventPublisher(t *testing.T) {
	publisher := NewEventPublisher(nil)
	assert.NotNil(t, publisher)
	assert.Nil(t, publisher.db)
}

func TestItineraryChannel(t *testing.T) {
	assert.Equal(t, "itinerary:01J8ABC", ItineraryChannel("01J8ABC"))
}

func TestProgressPayload_JSON(t *testing.T) {
	payload := ProgressPayload{
		BasePayload: BasePayload{
			Type:        EventTypeProgress,
			ItineraryID: "01J8ABC",
			ExecutionID: "exec-1",
			Timestamp:   "2026-08-25T12:00:00Z",
		},
		Phase:      "population",
		Percent:    55,
		Message:    "Day 2 of 4",
		WorkerKind: "activity",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded ProgressPayload
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, EventTypeProgress, decoded.Type)
	assert.Equal(t, "01J8ABC", decoded.ItineraryID)
	assert.Equal(t, "population", decoded.Phase)
	assert.Equal(t, 55, decoded.Percent)
	assert.Equal(t, "activity", decoded.WorkerKind)
	assert.Equal(t, "2026-08-25T12:00:00Z", decoded.Timestamp)
}

func TestPatchAppliedPayload_JSON(t *testing.T) {
	payload := PatchAppliedPayload{
		BasePayload: BasePayload{
			Type:        EventTypePatchApplied,
			ItineraryID: "01J8DEF",
			Timestamp:   "2026-08-25T12:00:00Z",
		},
		NewVersion: 7,
		Revision:   6,
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded PatchAppliedPayload
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, EventTypePatchApplied, decoded.Type)
	assert.Equal(t, 7, decoded.NewVersion)
	assert.Equal(t, 6, decoded.Revision)
}

func TestWarningPayload_OmitsEmptyOptionalFields(t *testing.T) {
	payload := WarningPayload{
		BasePayload: BasePayload{
			Type:        EventTypeWarning,
			ItineraryID: "01J8GHI",
			Timestamp:   "2026-08-25T12:00:00Z",
		},
		Code:    "worker_failed",
		Message: "meal worker failed for day 3",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "recovery_hint")
	assert.NotContains(t, string(data), "worker_kind")
	assert.NotContains(t, string(data), "execution_id")
}
