package state

import (
	"fmt"
	"time"
)

// AddService registers a new service with an empty account pool.
func (s *State) AddService(id, name string, isVIPOnly bool, emoji string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.services[id]; !exists {
		s.serviceOrder = append(s.serviceOrder, id)
	}
	s.services[id] = &Service{
		ID:        id,
		Name:      name,
		Emoji:     emoji,
		IsVIPOnly: isVIPOnly,
		Accounts:  []*Account{},
	}
	s.saveServices()
}

// RemoveService deletes a service and every account it owns.
func (s *State) RemoveService(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.services[id]; !exists {
		return ErrServiceNotFound
	}

	delete(s.services, id)
	for i, sid := range s.serviceOrder {
		if sid == id {
			s.serviceOrder = append(s.serviceOrder[:i], s.serviceOrder[i+1:]...)
			break
		}
	}
	s.saveServices()
	return nil
}

// Service returns a copy of the service with the given id.
func (s *State) Service(id string) (*Service, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	service, exists := s.services[id]
	if !exists {
		return nil, false
	}
	return cloneService(service), true
}

// Services returns copies of all services in registration order.
func (s *State) Services() []*Service {
	s.mu.RLock()
	defer s.mu.RUnlock()

	services := make([]*Service, 0, len(s.serviceOrder))
	for _, id := range s.serviceOrder {
		if service, exists := s.services[id]; exists {
			services = append(services, cloneService(service))
		}
	}
	return services
}

// AddAccounts appends accounts to a service's pool.
func (s *State) AddAccounts(serviceID string, accounts []*Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	service, exists := s.services[serviceID]
	if !exists {
		return ErrServiceNotFound
	}

	service.Accounts = append(service.Accounts, accounts...)
	s.saveServices()
	return nil
}

// AccountByID returns a copy of the identified account.
func (s *State) AccountByID(serviceID, accountID string) (*Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	service, exists := s.services[serviceID]
	if !exists {
		return nil, false
	}
	for _, account := range service.Accounts {
		if account.ID == accountID {
			c := *account
			return &c, true
		}
	}
	return nil, false
}

// ClaimAccount atomically reserves the first unused account of a service for
// a user: the availability check and the used marking happen under one
// critical section so two concurrent claims can never receive the same
// account.
func (s *State) ClaimAccount(serviceID, userID string) (*Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	service, exists := s.services[serviceID]
	if !exists {
		return nil, ErrServiceNotFound
	}

	account := s.claimLocked(service, userID)
	if account == nil {
		return nil, ErrNoStock
	}
	return account, nil
}

// MarkAccountUsed stamps an account as consumed by a user. Not idempotent:
// a second call overwrites the grant metadata.
func (s *State) MarkAccountUsed(serviceID, accountID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	service, exists := s.services[serviceID]
	if !exists {
		return ErrServiceNotFound
	}

	for _, account := range service.Accounts {
		if account.ID == accountID {
			account.IsUsed = true
			account.UsedBy = userID
			account.UsedAt = time.Now().UTC().Format(time.RFC3339)
			s.saveServices()
			return nil
		}
	}

	return ErrAccountNotFound
}

// AvailableAccountCount returns the number of unused accounts in a service.
func (s *State) AvailableAccountCount(serviceID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.availableCountLocked(serviceID)
}

// availableCountLocked counts unused accounts. Callers must hold s.mu.
func (s *State) availableCountLocked(serviceID string) int {
	service, exists := s.services[serviceID]
	if !exists {
		return 0
	}

	count := 0
	for _, account := range service.Accounts {
		if !account.IsUsed {
			count++
		}
	}
	return count
}

// RemoveAccounts drops the first count accounts of a service regardless of
// their used state and returns how many were actually removed.
func (s *State) RemoveAccounts(serviceID string, count int) (int, error) {
	if count < 0 {
		return 0, fmt.Errorf("%w: negative count", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	service, exists := s.services[serviceID]
	if !exists {
		return 0, ErrServiceNotFound
	}

	removed := min(count, len(service.Accounts))
	service.Accounts = service.Accounts[removed:]
	s.saveServices()
	return removed, nil
}

// ClearAccounts removes every account of a service and returns the count.
func (s *State) ClearAccounts(serviceID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	service, exists := s.services[serviceID]
	if !exists {
		return 0, ErrServiceNotFound
	}

	count := len(service.Accounts)
	service.Accounts = []*Account{}
	s.saveServices()
	return count, nil
}

// ResetUsedAccounts clears the used flag and grant metadata of every consumed
// account in a service, returning them to the available pool.
func (s *State) ResetUsedAccounts(serviceID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	service, exists := s.services[serviceID]
	if !exists {
		return 0, ErrServiceNotFound
	}

	count := 0
	for _, account := range service.Accounts {
		if account.IsUsed {
			account.IsUsed = false
			account.UsedBy = ""
			account.UsedAt = ""
			count++
		}
	}
	s.saveServices()
	return count, nil
}

// cloneService deep-copies a service so callers never alias live accounts.
func cloneService(service *Service) *Service {
	c := *service
	c.Accounts = make([]*Account, len(service.Accounts))
	for i, account := range service.Accounts {
		ac := *account
		c.Accounts[i] = &ac
	}
	return &c
}
