package google

import (
	"testing"
	"time"

	"nativoseo/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateStore_IssueAndConsume(t *testing.T) {
	store := NewStateStore()
	userID := uuid.New()

	state, err := store.Issue(service.OAuthFlowBound, &userID)
	require.NoError(t, err)
	assert.Len(t, state.Value, 64)

	got, err := store.Consume(state.Value)
	require.NoError(t, err)
	assert.Equal(t, service.OAuthFlowBound, got.Flow)
	assert.Equal(t, userID, *got.UserID)
}

func TestStateStore_SingleUse(t *testing.T) {
	store := NewStateStore()

	state, err := store.Issue(service.OAuthFlowTest, nil)
	require.NoError(t, err)

	_, err = store.Consume(state.Value)
	require.NoError(t, err)

	_, err = store.Consume(state.Value)
	assert.ErrorIs(t, err, ErrStateInvalid)
}

func TestStateStore_Expired(t *testing.T) {
	now := time.Now()
	store := newStateStore(10*time.Minute, func() time.Time { return now })

	state, err := store.Issue(service.OAuthFlowTest, nil)
	require.NoError(t, err)

	now = now.Add(11 * time.Minute)
	_, err = store.Consume(state.Value)
	assert.ErrorIs(t, err, ErrStateInvalid)
}

func TestStateStore_UnknownState(t *testing.T) {
	_, err := NewStateStore().Consume("nope")
	assert.ErrorIs(t, err, ErrStateInvalid)
}

func TestStateStore_IssueCleansExpired(t *testing.T) {
	now := time.Now()
	store := newStateStore(time.Minute, func() time.Time { return now })

	_, err := store.Issue(service.OAuthFlowTest, nil)
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	_, err = store.Issue(service.OAuthFlowTest, nil)
	require.NoError(t, err)

	assert.Len(t, store.states, 1)
}
