package state_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genvault/genvault/internal/state"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func TestExecuteGiveawayPreconditions(t *testing.T) {
	t.Parallel()

	t.Run("disabled", func(t *testing.T) {
		t.Parallel()

		s := newTestState(t)
		_, err := s.ExecuteGiveaway(testRand())
		assert.ErrorIs(t, err, state.ErrGiveawayDisabled)
	})

	t.Run("no services selected", func(t *testing.T) {
		t.Parallel()

		s := newTestState(t)
		s.SetGiveawayEnabled(true)

		_, err := s.ExecuteGiveaway(testRand())
		assert.ErrorIs(t, err, state.ErrNoServicesSelected)
	})

	t.Run("no eligible users", func(t *testing.T) {
		t.Parallel()

		s := newTestState(t)
		s.SetGiveawayEnabled(true)
		s.SetGiveawayServices([]string{"service_1"})
		bumpMessages(s, "user_a", 10)

		_, err := s.ExecuteGiveaway(testRand())
		assert.ErrorIs(t, err, state.ErrNoEligibleUsers)
	})
}

func TestExecuteGiveawayDeterministicWinners(t *testing.T) {
	t.Parallel()

	s := newTestState(t)
	s.AddService("service_1", "Streamflix", false, "")
	seedAccounts(t, s, "service_1", 5)

	bumpMessages(s, "user_a", 150)
	bumpMessages(s, "user_b", 120)
	bumpMessages(s, "user_c", 90)

	s.SetGiveawayEnabled(true)
	require.NoError(t, s.SetGiveawayParameters(100, 2, 1, state.AccountTypeFree))
	s.SetGiveawayServices([]string{"service_1"})

	result, err := s.ExecuteGiveaway(testRand())
	require.NoError(t, err)

	require.Len(t, result.Winners, 2)
	assert.Equal(t, "user_a", result.Winners[0].UserID)
	assert.Equal(t, 150, result.Winners[0].MessageCount)
	assert.Equal(t, "user_b", result.Winners[1].UserID)
	assert.Equal(t, 2, result.AccountsSent)

	for _, winner := range result.Winners {
		require.Len(t, winner.AccountsReceived, 1)
		assert.Equal(t, "Streamflix", winner.AccountsReceived[0].ServiceName)
		assert.NotEmpty(t, winner.AccountsReceived[0].Email)
	}
}

func TestExecuteGiveawayPartialAllocation(t *testing.T) {
	t.Parallel()

	s := newTestState(t)
	s.AddService("service_1", "Streamflix", false, "")
	seedAccounts(t, s, "service_1", 1)

	bumpMessages(s, "user_a", 150)

	s.SetGiveawayEnabled(true)
	require.NoError(t, s.SetGiveawayParameters(100, 1, 2, state.AccountTypeFree))
	s.SetGiveawayServices([]string{"service_1"})

	// Entitled to two accounts with only one in stock: the draw still
	// succeeds with a single grant.
	result, err := s.ExecuteGiveaway(testRand())
	require.NoError(t, err)
	require.Len(t, result.Winners, 1)
	assert.Len(t, result.Winners[0].AccountsReceived, 1)
	assert.Equal(t, 1, result.AccountsSent)
}

func TestExecuteGiveawayNothingDistributed(t *testing.T) {
	t.Parallel()

	s := newTestState(t)
	s.AddService("service_1", "Streamflix", false, "")

	bumpMessages(s, "user_a", 150)

	s.SetGiveawayEnabled(true)
	require.NoError(t, s.SetGiveawayParameters(100, 1, 1, state.AccountTypeFree))
	s.SetGiveawayServices([]string{"service_1"})

	_, err := s.ExecuteGiveaway(testRand())
	assert.ErrorIs(t, err, state.ErrNothingDistributed)
	assert.Empty(t, s.GiveawayHistory())
}

func TestExecuteGiveawayAccountTypeFilter(t *testing.T) {
	t.Parallel()

	s := newTestState(t)
	s.AddService("service_1", "Streamflix", false, "")
	s.AddService("service_2", "Cinemax VIP", true, "")
	seedAccounts(t, s, "service_1", 3)
	seedAccounts(t, s, "service_2", 3)

	bumpMessages(s, "user_a", 150)

	s.SetGiveawayEnabled(true)
	require.NoError(t, s.SetGiveawayParameters(100, 1, 2, state.AccountTypeVIP))
	s.SetGiveawayServices([]string{"service_1", "service_2"})

	result, err := s.ExecuteGiveaway(testRand())
	require.NoError(t, err)

	// Only the VIP-only service may be drawn from under the vip filter.
	require.Len(t, result.Winners, 1)
	for _, grant := range result.Winners[0].AccountsReceived {
		assert.Equal(t, "service_2", grant.ServiceID)
	}
	assert.Equal(t, 3, s.AvailableAccountCount("service_1"))
	assert.Equal(t, 1, s.AvailableAccountCount("service_2"))
}

func TestExecuteGiveawayRecordsHistory(t *testing.T) {
	t.Parallel()

	s := newTestState(t)
	s.AddService("service_1", "Streamflix", false, "")
	seedAccounts(t, s, "service_1", 2)

	bumpMessages(s, "user_a", 150)

	s.SetGiveawayEnabled(true)
	require.NoError(t, s.SetGiveawayParameters(100, 1, 1, state.AccountTypeBoth))
	s.SetGiveawayServices([]string{"service_1"})

	_, err := s.ExecuteGiveaway(testRand())
	require.NoError(t, err)

	history := s.GiveawayHistory()
	require.Len(t, history, 1)
	assert.NotEmpty(t, history[0].ID)
	assert.NotEmpty(t, history[0].Date)
	require.Len(t, history[0].Winners, 1)
	assert.Equal(t, "user_a", history[0].Winners[0].UserID)
	assert.Equal(t, state.AccountTypeBoth, history[0].Config.AccountType)

	assert.Equal(t, history[0].Date, s.GiveawaySettings().LastGiveawayDate)
}
