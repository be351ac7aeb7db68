package state_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genvault/genvault/internal/state"
)

func TestParseAccountList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "single pair",
			input: "alice@mail.test:hunter2",
			want:  []string{"alice@mail.test"},
		},
		{
			name:  "multiple lines with blanks",
			input: "a@x.test:pw1\n\n  b@x.test:pw2  \n",
			want:  []string{"a@x.test", "b@x.test"},
		},
		{
			name:  "skips malformed lines",
			input: "no-separator\na@x.test:pw\ntoo:many:colons\n:empty-email\nempty-pw:",
			want:  []string{"a@x.test"},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			accounts := state.ParseAccountList(tt.input)
			require.Len(t, accounts, len(tt.want))
			for i, email := range tt.want {
				assert.Equal(t, email, accounts[i].Email)
				assert.NotEmpty(t, accounts[i].Password)
				assert.NotEmpty(t, accounts[i].ID)
				assert.False(t, accounts[i].IsUsed)
			}
		})
	}
}

func TestIdentifierFormats(t *testing.T) {
	t.Parallel()

	assert.Regexp(t, regexp.MustCompile(`^service_\d+$`), state.NewServiceID())
	assert.Regexp(t, regexp.MustCompile(`^acc_[0-9a-f-]{36}$`), state.NewAccountID())
	assert.NotEqual(t, state.NewAccountID(), state.NewAccountID())
}
