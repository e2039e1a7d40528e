package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/2beens/fittrack/internal/api"
	"github.com/2beens/fittrack/internal/gymstats/viewstate"

	"github.com/golang-jwt/jwt/v5"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

const MinPasswordLength = 6

var (
	ErrMissingFields    = errors.New("please fill in all fields")
	ErrPasswordTooShort = fmt.Errorf("password must be at least %d characters", MinPasswordLength)
	ErrNoExpiry         = errors.New("token carries no expiry")
)

//go:generate mockgen -source=$GOFILE -destination=session_mocks_test.go -package=session_test

// Authenticator performs the remote register and login calls.
type Authenticator interface {
	Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResponse, error)
	Login(ctx context.Context, email, password string) (*api.AuthResponse, error)
}

type RegisterParams struct {
	Firstname string
	Lastname  string
	Email     string
	Password  string
}

func (p RegisterParams) Validate() error {
	if p.Firstname == "" || p.Lastname == "" || p.Email == "" || p.Password == "" {
		return ErrMissingFields
	}
	if len(p.Password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}

// Manager holds the current user and bearer token, backed by Storage.
// It implements api.TokenSource.
type Manager struct {
	viewstate.Notifier

	storage Storage
	auth    Authenticator

	mu            sync.RWMutex
	token         string
	user          *api.User
	authenticated bool
}

func NewManager(storage Storage, auth Authenticator) *Manager {
	return &Manager{
		storage: storage,
		auth:    auth,
	}
}

func (m *Manager) Register(ctx context.Context, params RegisterParams) (*api.User, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	resp, err := m.auth.Register(ctx, api.RegisterRequest{
		Firstname: params.Firstname,
		Lastname:  params.Lastname,
		Email:     params.Email,
		Password:  params.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	if err := m.handleAuthResponse(ctx, resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

func (m *Manager) Login(ctx context.Context, email, password string) (*api.User, error) {
	resp, err := m.auth.Login(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	if err := m.handleAuthResponse(ctx, resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

func (m *Manager) handleAuthResponse(ctx context.Context, resp *api.AuthResponse) error {
	userJSON, err := json.Marshal(resp.User)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}

	if err := m.storage.SetItems(ctx, map[string]string{
		KeyToken: resp.Token,
		KeyUser:  string(userJSON),
	}); err != nil {
		return fmt.Errorf("store session: %w", err)
	}

	user := resp.User
	m.mu.Lock()
	m.token = resp.Token
	m.user = &user
	m.authenticated = true
	m.mu.Unlock()

	log.Debugf("session: user [%s] authenticated", user.Email)
	m.Notify()
	return nil
}

// Logout clears both storage keys and resets the state, even when storage fails.
func (m *Manager) Logout(ctx context.Context) error {
	var err error
	if removeErr := m.storage.RemoveItem(ctx, KeyToken); removeErr != nil {
		err = multierr.Append(err, removeErr)
	}
	if removeErr := m.storage.RemoveItem(ctx, KeyUser); removeErr != nil {
		err = multierr.Append(err, removeErr)
	}

	m.mu.Lock()
	m.token = ""
	m.user = nil
	m.authenticated = false
	m.mu.Unlock()

	m.Notify()
	return err
}

// Restore rehydrates the session from storage. Malformed stored data forces a logout.
func (m *Manager) Restore(ctx context.Context) error {
	token, tokenFound, err := m.storage.GetItem(ctx, KeyToken)
	if err != nil {
		return m.restoreFailed(ctx, fmt.Errorf("restore token: %w", err))
	}
	userStr, userFound, err := m.storage.GetItem(ctx, KeyUser)
	if err != nil {
		return m.restoreFailed(ctx, fmt.Errorf("restore user: %w", err))
	}

	if !tokenFound || !userFound || token == "" || userStr == "" {
		return nil
	}

	user := &api.User{}
	if err := json.Unmarshal([]byte(userStr), user); err != nil {
		log.Warnf("session: stored user is malformed, logging out: %s", err)
		if logoutErr := m.Logout(ctx); logoutErr != nil {
			return fmt.Errorf("logout after malformed session: %w", logoutErr)
		}
		return nil
	}

	m.mu.Lock()
	m.token = token
	m.user = user
	m.authenticated = true
	m.mu.Unlock()

	m.Notify()
	return nil
}

// restoreFailed clears a corrupt storage so the next login starts clean.
func (m *Manager) restoreFailed(ctx context.Context, err error) error {
	if !errors.Is(err, ErrCorruptStorage) {
		return err
	}
	log.Warnf("session: %s, logging out", err)
	if logoutErr := m.Logout(ctx); logoutErr != nil {
		return fmt.Errorf("logout after corrupt session: %w", logoutErr)
	}
	return nil
}

func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

func (m *Manager) CurrentUser() *api.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return nil
	}
	user := *m.user
	return &user
}

func (m *Manager) IsAuthenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.authenticated
}

// TokenExpiry reads the exp claim of the bearer token without verifying it.
// Display only, nothing refreshes or expires the session.
func (m *Manager) TokenExpiry() (time.Time, error) {
	token := m.Token()
	if token == "" {
		return time.Time{}, errors.New("not authenticated")
	}
	return tokenExpiry(token)
}

func tokenExpiry(token string) (time.Time, error) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(strings.TrimSpace(token), claims); err != nil {
		return time.Time{}, fmt.Errorf("parse token: %w", err)
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, ErrNoExpiry
	}
	return claims.ExpiresAt.Time, nil
}

func sortedKeys(items map[string]string) []string {
	keys := make([]string, 0, len(items))
	for k := range items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
