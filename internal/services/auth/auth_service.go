package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	json "github.com/bytedance/sonic"

	"github.com/streetleague/skillbuilder/internal/sessionstore"
)

// AuthService is the mock session store. It authenticates against an injected
// credential store, keeps the current session state, and persists the
// signed-in user (password stripped) under a single key in the injected
// persistence port. This is a demo-only provider: passwords are compared in
// plain text and no token is issued.
type AuthService struct {
	creds CredentialStore
	kv    sessionstore.Store
	delay time.Duration

	mu       sync.Mutex
	state    State
	hydrated bool
}

// NewAuthService constructs the mock session store. delay is the simulated
// network latency applied on every sign-in/sign-up attempt, success or not.
func NewAuthService(creds CredentialStore, kv sessionstore.Store, delay time.Duration) *AuthService {
	return &AuthService{
		creds: creds,
		kv:    kv,
		delay: delay,
	}
}

// State returns the current session state, rehydrating from the persistence
// port on first use. A stored record that fails to decode counts as signed
// out, not as an error.
func (s *AuthService) State(ctx context.Context) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.hydrateLocked(ctx)
	return s.state
}

// SignIn matches email (case-insensitive) and password (exact) against the
// credential store. Credential failures come back in the Result; only
// infrastructure problems (cancelled context, persistence failure) surface as
// an error.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (Result, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return Result{}, err
	}

	cred, ok := s.creds.FindByEmail(email)
	if !ok || cred.Password != password {
		return Result{Success: false, Error: "Invalid email or password"}, nil
	}

	user := cred.User
	if err := s.persist(ctx, &user); err != nil {
		return Result{}, err
	}

	s.setSignedIn(&user)
	return Result{Success: true}, nil
}

// SignUp registers a new participant. Duplicate emails fail; no password
// strength check happens here (that belongs to the request edge).
func (s *AuthService) SignUp(ctx context.Context, req SignUpRequest) (Result, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return Result{}, err
	}

	if _, exists := s.creds.FindByEmail(req.Email); exists {
		return Result{Success: false, Error: "An account with this email already exists"}, nil
	}

	user := User{
		ID:        fmt.Sprintf("user_%d", time.Now().UnixMilli()),
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      "participant",
	}

	s.creds.Append(Credential{User: user, Password: req.Password})

	if err := s.persist(ctx, &user); err != nil {
		return Result{}, err
	}

	s.setSignedIn(&user)
	return Result{Success: true}, nil
}

// SignOut clears the persisted session and resets the in-memory state.
func (s *AuthService) SignOut(ctx context.Context) error {
	if err := s.kv.Clear(ctx, StorageKey); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.hydrated = true
	s.state = State{IsLoaded: true, IsSignedIn: false, User: nil}

	return nil
}

func (s *AuthService) simulateLatency(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}

	t := time.NewTimer(s.delay)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (s *AuthService) persist(ctx context.Context, user *User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode session user: %w", err)
	}

	if err := s.kv.Save(ctx, StorageKey, payload); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}

	return nil
}

func (s *AuthService) setSignedIn(user *User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hydrated = true
	s.state = State{IsLoaded: true, IsSignedIn: true, User: user}
}

func (s *AuthService) hydrateLocked(ctx context.Context) {
	if s.hydrated {
		return
	}
	s.hydrated = true

	// A missing key and unreadable storage both count as signed out.
	stored, err := s.kv.Load(ctx, StorageKey)
	if err != nil {
		s.state = State{IsLoaded: true, IsSignedIn: false, User: nil}
		return
	}

	var user User
	if err := json.Unmarshal(stored, &user); err != nil {
		s.state = State{IsLoaded: true, IsSignedIn: false, User: nil}
		return
	}

	s.state = State{IsLoaded: true, IsSignedIn: true, User: &user}
}
