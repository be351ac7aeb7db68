package state_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/genvault/genvault/internal/state"
)

func newTestState(t *testing.T) *state.State {
	t.Helper()

	s, err := state.New(t.TempDir(), zap.NewNop())
	require.NoError(t, err)
	return s
}

func seedAccounts(t *testing.T, s *state.State, serviceID string, count int) []*state.Account {
	t.Helper()

	accounts := make([]*state.Account, count)
	for i := range accounts {
		accounts[i] = &state.Account{
			ID:       fmt.Sprintf("acc_%d", i),
			Email:    fmt.Sprintf("user%d@example.com", i),
			Password: fmt.Sprintf("pass%d", i),
		}
	}
	require.NoError(t, s.AddAccounts(serviceID, accounts))
	return accounts
}

func TestInventoryRoundTrip(t *testing.T) {
	t.Parallel()

	s := newTestState(t)
	s.AddService("service_1", "Streamflix", false, "")

	seedAccounts(t, s, "service_1", 5)
	assert.Equal(t, 5, s.AvailableAccountCount("service_1"))

	removed, err := s.RemoveAccounts("service_1", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, removed)
	assert.Equal(t, 0, s.AvailableAccountCount("service_1"))
}

func TestAddAccountsUnknownService(t *testing.T) {
	t.Parallel()

	s := newTestState(t)
	err := s.AddAccounts("missing", []*state.Account{{ID: "acc_0"}})
	assert.ErrorIs(t, err, state.ErrServiceNotFound)
}

func TestClaimAccountExclusivity(t *testing.T) {
	t.Parallel()

	const stock = 8

	s := newTestState(t)
	s.AddService("service_1", "Streamflix", false, "")
	seedAccounts(t, s, "service_1", stock)

	// stock+1 concurrent claims must yield exactly stock successes and one
	// stock-exhausted failure; no account may be granted twice.
	var wg sync.WaitGroup

	results := make(chan *state.Account, stock+1)
	failures := make(chan error, stock+1)

	for i := 0; i < stock+1; i++ {
		wg.Add(1)
		go func(userID string) {
			defer wg.Done()

			account, err := s.ClaimAccount("service_1", userID)
			if err != nil {
				failures <- err
				return
			}
			results <- account
		}(fmt.Sprintf("user_%d", i))
	}

	wg.Wait()
	close(results)
	close(failures)

	granted := make(map[string]bool)
	for account := range results {
		assert.False(t, granted[account.ID], "account %s granted twice", account.ID)
		granted[account.ID] = true
	}
	assert.Len(t, granted, stock)

	var errs []error
	for err := range failures {
		errs = append(errs, err)
	}
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], state.ErrNoStock)

	assert.Equal(t, 0, s.AvailableAccountCount("service_1"))
}

func TestClaimAccountRecordsGrant(t *testing.T) {
	t.Parallel()

	s := newTestState(t)
	s.AddService("service_1", "Streamflix", false, "")
	seedAccounts(t, s, "service_1", 1)

	account, err := s.ClaimAccount("service_1", "user_1")
	require.NoError(t, err)
	assert.True(t, account.IsUsed)
	assert.Equal(t, "user_1", account.UsedBy)
	assert.NotEmpty(t, account.UsedAt)

	stored, ok := s.AccountByID("service_1", account.ID)
	require.True(t, ok)
	assert.True(t, stored.IsUsed)
	assert.Equal(t, "user_1", stored.UsedBy)
}

func TestRemoveAccountsPartial(t *testing.T) {
	t.Parallel()

	s := newTestState(t)
	s.AddService("service_1", "Streamflix", false, "")
	seedAccounts(t, s, "service_1", 3)

	// FIFO truncation ignores used state and caps at the pool size.
	_, err := s.ClaimAccount("service_1", "user_1")
	require.NoError(t, err)

	removed, err := s.RemoveAccounts("service_1", 10)
	require.NoError(t, err)
	assert.Equal(t, 3, removed)

	service, ok := s.Service("service_1")
	require.True(t, ok)
	assert.Empty(t, service.Accounts)
}

func TestResetUsedAccounts(t *testing.T) {
	t.Parallel()

	s := newTestState(t)
	s.AddService("service_1", "Streamflix", false, "")
	seedAccounts(t, s, "service_1", 3)

	_, err := s.ClaimAccount("service_1", "user_1")
	require.NoError(t, err)
	_, err = s.ClaimAccount("service_1", "user_2")
	require.NoError(t, err)
	assert.Equal(t, 1, s.AvailableAccountCount("service_1"))

	reset, err := s.ResetUsedAccounts("service_1")
	require.NoError(t, err)
	assert.Equal(t, 2, reset)
	assert.Equal(t, 3, s.AvailableAccountCount("service_1"))

	service, ok := s.Service("service_1")
	require.True(t, ok)
	for _, account := range service.Accounts {
		assert.False(t, account.IsUsed)
		assert.Empty(t, account.UsedBy)
	}
}

func TestRemoveServiceDeletesAccounts(t *testing.T) {
	t.Parallel()

	s := newTestState(t)
	s.AddService("service_1", "Streamflix", false, "")
	seedAccounts(t, s, "service_1", 2)

	require.NoError(t, s.RemoveService("service_1"))

	_, ok := s.Service("service_1")
	assert.False(t, ok)
	assert.Equal(t, 0, s.AvailableAccountCount("service_1"))
	assert.ErrorIs(t, s.RemoveService("service_1"), state.ErrServiceNotFound)
}

func TestServicesOrder(t *testing.T) {
	t.Parallel()

	s := newTestState(t)
	s.AddService("service_2", "Beta", false, "")
	s.AddService("service_1", "Alpha", true, "")
	s.AddService("service_3", "Gamma", false, "")

	services := s.Services()
	require.Len(t, services, 3)
	assert.Equal(t, "Beta", services[0].Name)
	assert.Equal(t, "Alpha", services[1].Name)
	assert.Equal(t, "Gamma", services[2].Name)
}
