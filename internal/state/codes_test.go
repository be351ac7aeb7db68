package state_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genvault/genvault/internal/state"
)

func TestGenerateCodeFormat(t *testing.T) {
	t.Parallel()

	s := newTestState(t)
	pattern := regexp.MustCompile(`^[A-Za-z0-9]{13}$`)

	seen := make(map[string]bool)
	for range 50 {
		code := s.GenerateCode("service_1", "user_1", "acc_0")
		assert.Regexp(t, pattern, code)
		assert.False(t, seen[code], "code %s issued twice", code)
		seen[code] = true
	}
}

func TestRedeemCodeSingleUse(t *testing.T) {
	t.Parallel()

	s := newTestState(t)
	s.AddService("service_1", "Streamflix", false, "")
	accounts := seedAccounts(t, s, "service_1", 1)

	require.NoError(t, s.MarkAccountUsed("service_1", accounts[0].ID, "user_1"))
	code := s.GenerateCode("service_1", "user_1", accounts[0].ID)

	grant, err := s.RedeemCode(code, "user_1")
	require.NoError(t, err)
	assert.Equal(t, "Streamflix", grant.ServiceName)
	assert.Equal(t, "user0@example.com", grant.Email)
	assert.Equal(t, "pass0", grant.Password)

	_, err = s.RedeemCode(code, "user_1")
	assert.ErrorIs(t, err, state.ErrCodeUsed)
}

func TestRedeemCodeFailures(t *testing.T) {
	t.Parallel()

	t.Run("unknown code", func(t *testing.T) {
		t.Parallel()

		s := newTestState(t)
		_, err := s.RedeemCode("nope", "user_1")
		assert.ErrorIs(t, err, state.ErrCodeNotFound)
	})

	t.Run("owner mismatch", func(t *testing.T) {
		t.Parallel()

		s := newTestState(t)
		s.AddService("service_1", "Streamflix", false, "")
		accounts := seedAccounts(t, s, "service_1", 1)
		code := s.GenerateCode("service_1", "user_1", accounts[0].ID)

		_, err := s.RedeemCode(code, "user_2")
		assert.ErrorIs(t, err, state.ErrCodeOwnerMismatch)

		// The failed attempt must not consume the code.
		_, err = s.RedeemCode(code, "user_1")
		assert.NoError(t, err)
	})

	t.Run("service deleted after issuance", func(t *testing.T) {
		t.Parallel()

		s := newTestState(t)
		s.AddService("service_1", "Streamflix", false, "")
		accounts := seedAccounts(t, s, "service_1", 1)
		code := s.GenerateCode("service_1", "user_1", accounts[0].ID)

		require.NoError(t, s.RemoveService("service_1"))

		_, err := s.RedeemCode(code, "user_1")
		assert.ErrorIs(t, err, state.ErrServiceNotFound)
	})

	t.Run("account removed after issuance", func(t *testing.T) {
		t.Parallel()

		s := newTestState(t)
		s.AddService("service_1", "Streamflix", false, "")
		accounts := seedAccounts(t, s, "service_1", 1)
		code := s.GenerateCode("service_1", "user_1", accounts[0].ID)

		_, err := s.RemoveAccounts("service_1", 1)
		require.NoError(t, err)

		_, err = s.RedeemCode(code, "user_1")
		assert.ErrorIs(t, err, state.ErrAccountNotFound)
	})
}

func TestCodeInfo(t *testing.T) {
	t.Parallel()

	s := newTestState(t)
	code := s.GenerateCode("service_1", "user_1", "acc_0")

	info, ok := s.CodeInfo(code)
	require.True(t, ok)
	assert.Equal(t, "service_1", info.ServiceID)
	assert.Equal(t, "user_1", info.UserID)
	assert.Equal(t, "acc_0", info.AccountID)
	assert.False(t, info.Used)

	_, ok = s.CodeInfo("missing")
	assert.False(t, ok)
}
