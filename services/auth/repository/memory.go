package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/masarify/authsvc/internal/pkg/apperror"
	"github.com/masarify/authsvc/internal/pkg/models"
	"github.com/masarify/authsvc/services/auth"
)

type memoryState struct {
	users  map[string]models.User
	otps   map[string]models.OtpRequest
	tokens map[string]models.VerificationToken
	rates  map[string][]time.Time
}

func newMemoryState() *memoryState {
	return &memoryState{
		users:  make(map[string]models.User),
		otps:   make(map[string]models.OtpRequest),
		tokens: make(map[string]models.VerificationToken),
		rates:  make(map[string][]time.Time),
	}
}

func (s *memoryState) clone() *memoryState {
	c := newMemoryState()
	for k, v := range s.users {
		c.users[k] = v
	}
	for k, v := range s.otps {
		c.otps[k] = v
	}
	for k, v := range s.tokens {
		c.tokens[k] = v
	}
	for k, v := range s.rates {
		c.rates[k] = append([]time.Time(nil), v...)
	}
	return c
}

// MemoryRepo implements auth.AuthRepo and auth.RateLedger in process memory.
// State is lost on restart and is not shared between replicas.
type MemoryRepo struct {
	mu    *sync.Mutex
	state *memoryState
	inTx  bool
}

// NewMemoryRepo creates an empty in-memory auth repository
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		mu:    &sync.Mutex{},
		state: newMemoryState(),
	}
}

// lock is a no-op inside Atomic, which already holds the mutex
func (r *MemoryRepo) lock() func() {
	if r.inTx {
		return func() {}
	}
	r.mu.Lock()
	return r.mu.Unlock
}

// Atomic runs fn while holding the store lock and restores the previous state if fn fails
func (r *MemoryRepo) Atomic(ctx context.Context, fn func(repo auth.AuthRepo) error) error {
	if r.inTx {
		return fn(r)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot := r.state.clone()
	if err := fn(&MemoryRepo{mu: r.mu, state: r.state, inTx: true}); err != nil {
		*r.state = *snapshot
		return err
	}
	return nil
}

// Ping always succeeds
func (r *MemoryRepo) Ping(ctx context.Context) error {
	return nil
}

func (r *MemoryRepo) GetUserByMobile(ctx context.Context, mobile string) (*models.User, error) {
	defer r.lock()()

	user, ok := r.state.users[mobile]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (r *MemoryRepo) CreateUser(ctx context.Context, user *models.User) error {
	defer r.lock()()

	if _, ok := r.state.users[user.Mobile]; ok {
		return apperror.AlreadyExists("User already exists")
	}
	r.state.users[user.Mobile] = *user
	return nil
}

func (r *MemoryRepo) UpdatePassword(ctx context.Context, mobile, passwordHash string, updatedAt time.Time) (*models.User, error) {
	defer r.lock()()

	user, ok := r.state.users[mobile]
	if !ok {
		return nil, nil
	}
	user.PasswordHash = passwordHash
	user.UpdatedAt = updatedAt
	r.state.users[mobile] = user
	return &user, nil
}

func (r *MemoryRepo) CreateOtpRequest(ctx context.Context, req *models.OtpRequest) error {
	defer r.lock()()

	if _, ok := r.state.otps[req.RequestID]; ok {
		return fmt.Errorf("OTP request %s already exists", req.RequestID)
	}
	r.state.otps[req.RequestID] = *req
	return nil
}

func (r *MemoryRepo) GetOtpRequest(ctx context.Context, requestID string) (*models.OtpRequest, error) {
	defer r.lock()()

	req, ok := r.state.otps[requestID]
	if !ok {
		return nil, nil
	}
	return &req, nil
}

func (r *MemoryRepo) IncrementOtpAttempts(ctx context.Context, requestID string) error {
	defer r.lock()()

	if req, ok := r.state.otps[requestID]; ok {
		req.VerifyAttempts++
		r.state.otps[requestID] = req
	}
	return nil
}

func (r *MemoryRepo) DeleteOtpRequest(ctx context.Context, requestID string) error {
	defer r.lock()()

	delete(r.state.otps, requestID)
	return nil
}

func (r *MemoryRepo) CreateVerificationToken(ctx context.Context, token *models.VerificationToken) error {
	defer r.lock()()

	if _, ok := r.state.tokens[token.Token]; ok {
		return fmt.Errorf("verification token already exists")
	}
	r.state.tokens[token.Token] = *token
	return nil
}

func (r *MemoryRepo) GetVerificationToken(ctx context.Context, token string) (*models.VerificationToken, error) {
	defer r.lock()()

	record, ok := r.state.tokens[token]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

func (r *MemoryRepo) DeleteVerificationToken(ctx context.Context, token string) (bool, error) {
	defer r.lock()()

	if _, ok := r.state.tokens[token]; !ok {
		return false, nil
	}
	delete(r.state.tokens, token)
	return true, nil
}

// Admit drops events older than now-window, then records one at now unless max remain
func (r *MemoryRepo) Admit(ctx context.Context, mobile string, now time.Time, window time.Duration, max int) (bool, error) {
	defer r.lock()()

	cutoff := now.Add(-window)
	events := r.state.rates[mobile]
	kept := events[:0]
	for _, at := range events {
		if !at.Before(cutoff) {
			kept = append(kept, at)
		}
	}

	if len(kept) >= max {
		r.state.rates[mobile] = kept
		return false, nil
	}

	r.state.rates[mobile] = append(kept, now)
	return true, nil
}
