package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/YuvaneshV12/chrono-gift/internal/domain"
	"github.com/YuvaneshV12/chrono-gift/internal/infrastructure/google"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mocks ---

type mockVerifier struct{ mock.Mock }

func (m *mockVerifier) Verify(ctx context.Context, token string) (*google.Payload, error) {
	args := m.Called(ctx, token)
	if p, _ := args.Get(0).(*google.Payload); p != nil {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockUserStore struct{ mock.Mock }

func (m *mockUserStore) GetBySub(ctx context.Context, googleSub string) (*domain.User, error) {
	args := m.Called(ctx, googleSub)
	if u, _ := args.Get(0).(*domain.User); u != nil {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserStore) Put(ctx context.Context, u *domain.User) error {
	return m.Called(ctx, u).Error(0)
}
func (m *mockUserStore) Update(ctx context.Context, userID string, updates map[string]interface{}) error {
	return m.Called(ctx, userID, updates).Error(0)
}

// --- helpers ---

func validPayload() *google.Payload {
	return &google.Payload{
		Sub:     "google-sub-123",
		Email:   "Alice@Example.com",
		Name:    "Alice Smith",
		Picture: "https://example.com/alice.png",
	}
}

// --- Resolve tests ---

func TestResolve_InvalidToken(t *testing.T) {
	gv := &mockVerifier{}
	gv.On("Verify", mock.Anything, "bad").Return(nil, domain.ErrInvalidCredential)

	_, err := NewService(gv, &mockUserStore{}).Resolve(context.Background(), "bad")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidCredential))
}

func TestResolve_FirstSight_CreatesIdentity(t *testing.T) {
	gv := &mockVerifier{}
	us := &mockUserStore{}
	gv.On("Verify", mock.Anything, "tok").Return(validPayload(), nil)
	us.On("GetBySub", mock.Anything, "google-sub-123").Return(nil, domain.ErrNotFound)

	var created *domain.User
	us.On("Put", mock.Anything, mock.AnythingOfType("*domain.User")).
		Run(func(args mock.Arguments) { created = args.Get(1).(*domain.User) }).
		Return(nil)

	u, err := NewService(gv, us).Resolve(context.Background(), "tok")
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, "google-sub-123", created.GoogleSub)
	assert.Equal(t, "alice@example.com", created.Email) // canonicalized
	assert.Equal(t, "Alice Smith", created.Name)
	assert.NotEmpty(t, created.UserID)
	assert.Equal(t, created.UserID, u.UserID)
	us.AssertExpectations(t)
}

func TestResolve_ExistingIdentity_NoWrites(t *testing.T) {
	gv := &mockVerifier{}
	us := &mockUserStore{}
	gv.On("Verify", mock.Anything, "tok").Return(validPayload(), nil)
	us.On("GetBySub", mock.Anything, "google-sub-123").Return(&domain.User{
		UserID:    "user-1",
		GoogleSub: "google-sub-123",
		Email:     "alice@example.com",
		Name:      "Alice Smith",
		Picture:   "https://example.com/alice.png",
	}, nil)

	u, err := NewService(gv, us).Resolve(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, "user-1", u.UserID)
	us.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
	us.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestResolve_ExistingIdentity_RefreshesDisplayFields(t *testing.T) {
	gv := &mockVerifier{}
	us := &mockUserStore{}
	gv.On("Verify", mock.Anything, "tok").Return(validPayload(), nil)
	us.On("GetBySub", mock.Anything, "google-sub-123").Return(&domain.User{
		UserID:    "user-1",
		GoogleSub: "google-sub-123",
		Email:     "alice@example.com",
		Name:      "Old Name",
		Picture:   "https://example.com/old.png",
	}, nil)
	us.On("Update", mock.Anything, "user-1", map[string]interface{}{
		"name":    "Alice Smith",
		"picture": "https://example.com/alice.png",
	}).Return(nil)

	u, err := NewService(gv, us).Resolve(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, "Alice Smith", u.Name)
	us.AssertExpectations(t)
}

func TestResolve_DisplayRefreshFailureIsNonFatal(t *testing.T) {
	gv := &mockVerifier{}
	us := &mockUserStore{}
	gv.On("Verify", mock.Anything, "tok").Return(validPayload(), nil)
	us.On("GetBySub", mock.Anything, "google-sub-123").Return(&domain.User{
		UserID:    "user-1",
		GoogleSub: "google-sub-123",
		Email:     "alice@example.com",
		Name:      "Old Name",
	}, nil)
	us.On("Update", mock.Anything, "user-1", mock.Anything).Return(errors.New("dynamo down"))

	u, err := NewService(gv, us).Resolve(context.Background(), "tok")
	require.NoError(t, err)
	// Stale fields returned rather than failing the login.
	assert.Equal(t, "Old Name", u.Name)
}

func TestResolve_EmailAlwaysLowercased(t *testing.T) {
	gv := &mockVerifier{}
	us := &mockUserStore{}
	gv.On("Verify", mock.Anything, "tok").Return(validPayload(), nil)
	// A legacy record stored before canonicalization.
	us.On("GetBySub", mock.Anything, "google-sub-123").Return(&domain.User{
		UserID:    "user-1",
		GoogleSub: "google-sub-123",
		Email:     "Alice@Example.com",
		Name:      "Alice Smith",
		Picture:   "https://example.com/alice.png",
	}, nil)

	u, err := NewService(gv, us).Resolve(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", u.Email)
}
