package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderplan/wanderplan/ent/chatmessage"
	"github.com/wanderplan/wanderplan/pkg/models"
)

func TestChatService_AppendAndTranscript(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()

	it := seedItinerary(t, ts)

	user, err := ts.chat.AppendUserMessage(ctx, it.ID, "make day 2 less packed")
	require.NoError(t, err)
	assert.Equal(t, chatmessage.RoleUser, user.Role)
	assert.NotEmpty(t, user.ID)

	applied := 3
	cs := &models.ChangeSet{
		BaseVersion: 2,
		Ops:         []models.Operation{{Op: models.OpDelete, NodeID: "day2_node4"}},
		Reason:      "make day 2 less packed",
	}
	assistant, err := ts.chat.AppendAssistantMessage(ctx, it.ID,
		"I removed the evening market visit to lighten day 2.", "edit", cs, &applied)
	require.NoError(t, err)
	assert.Equal(t, chatmessage.RoleAssistant, assistant.Role)
	assert.Equal(t, "edit", assistant.Intent)
	require.NotNil(t, assistant.AppliedVersion)
	assert.Equal(t, 3, *assistant.AppliedVersion)
	require.Len(t, assistant.ChangeSet.Ops, 1)

	transcript, err := ts.chat.GetTranscript(ctx, it.ID, 10)
	require.NoError(t, err)
	require.Len(t, transcript, 2)
	assert.Equal(t, chatmessage.RoleUser, transcript[0].Role)
	assert.Equal(t, chatmessage.RoleAssistant, transcript[1].Role)
}

func TestChatService_AssistantWithoutApply(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()

	it := seedItinerary(t, ts)

	msg, err := ts.chat.AppendAssistantMessage(ctx, it.ID,
		"The Uprising Museum opens at 10:00.", "explain", nil, nil)
	require.NoError(t, err)
	assert.Nil(t, msg.AppliedVersion)
	assert.Empty(t, msg.ChangeSet.Ops)
}

func TestChatService_EmptyContentRejected(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()

	it := seedItinerary(t, ts)

	_, err := ts.chat.AppendUserMessage(ctx, it.ID, "")
	assert.True(t, IsValidationError(err))

	_, err = ts.chat.AppendAssistantMessage(ctx, it.ID, "", "", nil, nil)
	assert.True(t, IsValidationError(err))
}

func TestChatService_TranscriptLimitKeepsLatest(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()

	it := seedItinerary(t, ts)

	for i := 1; i <= 6; i++ {
		_, err := ts.chat.AppendUserMessage(ctx, it.ID, fmt.Sprintf("turn %d", i))
		require.NoError(t, err)
	}

	transcript, err := ts.chat.GetTranscript(ctx, it.ID, 3)
	require.NoError(t, err)
	require.Len(t, transcript, 3)
	assert.Equal(t, "turn 4", transcript[0].Content)
	assert.Equal(t, "turn 6", transcript[2].Content)
}
