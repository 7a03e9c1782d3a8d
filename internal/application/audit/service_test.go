package audit

import (
	"context"
	"errors"
	"testing"

	"github.com/YuvaneshV12/chrono-gift/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockTxStore struct{ mock.Mock }

func (m *mockTxStore) Put(ctx context.Context, tx *domain.Transaction) error {
	return m.Called(ctx, tx).Error(0)
}
func (m *mockTxStore) Scan(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Transaction), args.Error(1)
}
func (m *mockTxStore) ListByGift(ctx context.Context, giftID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, giftID)
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func TestRecord_AppendsEvent(t *testing.T) {
	store := &mockTxStore{}
	var saved *domain.Transaction
	store.On("Put", mock.Anything, mock.AnythingOfType("*domain.Transaction")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*domain.Transaction) }).
		Return(nil)

	receiver := "user-2"
	NewRecorder(store).Record(context.Background(), "gift-1", "user-1", &receiver, domain.TxOpened)

	require.NotNil(t, saved)
	assert.Equal(t, "gift-1", saved.GiftID)
	assert.Equal(t, "user-1", saved.Sender)
	require.NotNil(t, saved.Receiver)
	assert.Equal(t, "user-2", *saved.Receiver)
	assert.Equal(t, domain.TxOpened, saved.Status)
	assert.NotEmpty(t, saved.TransactionID)
}

func TestRecord_SwallowsStoreFailure(t *testing.T) {
	store := &mockTxStore{}
	store.On("Put", mock.Anything, mock.Anything).Return(errors.New("dynamo down"))

	// Must not panic or surface the error: recording is best-effort.
	NewRecorder(store).Record(context.Background(), "gift-1", "user-1", nil, domain.TxCreated)
	store.AssertExpectations(t)
}

func TestList_PassesThrough(t *testing.T) {
	store := &mockTxStore{}
	store.On("Scan", mock.Anything).Return([]domain.Transaction{{TransactionID: "tx-1"}}, nil)

	txs, err := NewRecorder(store).List(context.Background())
	require.NoError(t, err)
	assert.Len(t, txs, 1)
}
