package state

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewServiceID returns a fresh service identifier. The embedded timestamp
// keeps lexicographic order aligned with creation order.
func NewServiceID() string {
	return fmt.Sprintf("service_%d", time.Now().UnixMilli())
}

// NewAccountID returns a fresh account identifier.
func NewAccountID() string {
	return "acc_" + uuid.NewString()
}

// ParseAccountList parses supplier input with one "email:password" pair per
// line into fresh accounts. Lines that do not contain exactly one colon are
// skipped.
func ParseAccountList(text string) []*Account {
	var accounts []*Account

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		parts := strings.Split(line, ":")
		if len(parts) != 2 {
			continue
		}

		email := strings.TrimSpace(parts[0])
		password := strings.TrimSpace(parts[1])
		if email == "" || password == "" {
			continue
		}

		accounts = append(accounts, &Account{
			ID:       NewAccountID(),
			Email:    email,
			Password: password,
			IsUsed:   false,
		})
	}

	return accounts
}
