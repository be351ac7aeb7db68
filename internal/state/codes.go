package state

import (
	"math/rand"
	"time"
)

const (
	codeLength  = 13
	codeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// Grant is the credential release produced by a successful redemption.
type Grant struct {
	ServiceID   string
	ServiceName string
	Email       string
	Password    string
}

// GenerateCode issues a one-time redemption code binding the user to the
// reserved account. Codes are kept in memory for the process lifetime and are
// never pruned; at 62^13 possible values collisions are not checked for.
func (s *State) GenerateCode(serviceID, userID, accountID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	buf := make([]byte, codeLength)
	for i := range buf {
		buf[i] = codeCharset[rand.Intn(len(codeCharset))]
	}
	code := string(buf)

	s.codes[code] = &RedemptionCode{
		Code:      code,
		ServiceID: serviceID,
		UserID:    userID,
		AccountID: accountID,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Used:      false,
	}

	return code
}

// CodeInfo returns a copy of the stored code record.
func (s *State) CodeInfo(code string) (*RedemptionCode, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	info, exists := s.codes[code]
	if !exists {
		return nil, false
	}
	c := *info
	return &c, true
}

// RedeemCode validates and consumes a redemption code for the given user,
// releasing the credentials it is bound to. The checks run in a fixed order:
// existence, prior use, ownership, then the continued existence of the
// referenced service and account. Only when all pass is the code marked used.
func (s *State) RedeemCode(code, userID string) (*Grant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	info, exists := s.codes[code]
	if !exists {
		return nil, ErrCodeNotFound
	}
	if info.Used {
		return nil, ErrCodeUsed
	}
	if info.UserID != userID {
		return nil, ErrCodeOwnerMismatch
	}

	service, exists := s.services[info.ServiceID]
	if !exists {
		return nil, ErrServiceNotFound
	}

	var account *Account
	for _, a := range service.Accounts {
		if a.ID == info.AccountID {
			account = a
			break
		}
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}

	info.Used = true

	return &Grant{
		ServiceID:   service.ID,
		ServiceName: service.Name,
		Email:       account.Email,
		Password:    account.Password,
	}, nil
}
