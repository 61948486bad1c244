package auth

import (
	"strings"
	"sync"
)

// CredentialStore abstracts the credential list so tests can substitute a
// fixed fixture. Lookups are case-insensitive on email.
type CredentialStore interface {
	FindByEmail(email string) (*Credential, bool)
	Append(cred Credential)
}

// MemoryCredentialStore keeps credentials in process memory. It is seeded at
// construction and appended to on sign-up; contents reset on restart.
type MemoryCredentialStore struct {
	mu    sync.RWMutex
	creds []Credential
}

// NewMemoryCredentialStore creates a store holding the given credentials.
func NewMemoryCredentialStore(seed []Credential) *MemoryCredentialStore {
	creds := make([]Credential, len(seed))
	copy(creds, seed)

	return &MemoryCredentialStore{creds: creds}
}

func (s *MemoryCredentialStore) FindByEmail(email string) (*Credential, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.creds {
		if strings.EqualFold(s.creds[i].Email, email) {
			cred := s.creds[i]
			return &cred, true
		}
	}

	return nil, false
}

func (s *MemoryCredentialStore) Append(cred Credential) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.creds = append(s.creds, cred)
}

// SeedCredentials returns the demo credential list.
func SeedCredentials() []Credential {
	return []Credential{
		{
			User: User{
				ID:        "user_demo_001",
				Email:     "demo@streetleague.org",
				FirstName: "Demo",
				LastName:  "User",
				Role:      "admin",
			},
			Password: "Demo123!",
		},
		{
			User: User{
				ID:        "user_trainer_001",
				Email:     "trainer@streetleague.org",
				FirstName: "Sarah",
				LastName:  "Johnson",
				Role:      "trainer",
			},
			Password: "Trainer123!",
		},
		{
			User: User{
				ID:        "user_participant_001",
				Email:     "participant@streetleague.org",
				FirstName: "John",
				LastName:  "Smith",
				Role:      "participant",
			},
			Password: "Participant123!",
		},
	}
}
