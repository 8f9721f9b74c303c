package language

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"goldprice/internal/adapters/memory"
	"goldprice/internal/domain"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPreferenceStore struct{ mock.Mock }

func (m *MockPreferenceStore) Get(ctx context.Context, key string) (string, bool, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockPreferenceStore) Set(ctx context.Context, key string, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func TestLoad_DefaultsToEnglish(t *testing.T) {
	a, err := Load(context.Background(), memory.NewPreferenceStore())
	require.NoError(t, err)
	require.Equal(t, domain.English, a.Get())
}

func TestLoad_ReadsPersistedValue(t *testing.T) {
	ctx := context.Background()
	store := memory.NewPreferenceStore()
	require.NoError(t, store.Set(ctx, PreferenceKey, "ar"))

	a, err := Load(ctx, store)
	require.NoError(t, err)
	require.Equal(t, domain.Arabic, a.Get())
}

func TestLoad_IgnoresUnsupportedStoredValue(t *testing.T) {
	ctx := context.Background()
	store := memory.NewPreferenceStore()
	require.NoError(t, store.Set(ctx, PreferenceKey, "klingon"))

	a, err := Load(ctx, store)
	require.NoError(t, err)
	require.Equal(t, domain.English, a.Get())
}

func TestLoad_StoreError(t *testing.T) {
	store := new(MockPreferenceStore)
	store.On("Get", mock.Anything, PreferenceKey).Return("", false, errors.New("conn refused")).Once()

	a, err := Load(context.Background(), store)
	require.Error(t, err)
	require.Nil(t, a)
	require.Contains(t, err.Error(), "conn refused")
	store.AssertExpectations(t)
}

func TestAccessor_SetPersistsAndNotifies(t *testing.T) {
	ctx := context.Background()
	store := memory.NewPreferenceStore()
	a, err := Load(ctx, store)
	require.NoError(t, err)

	var got []domain.Language
	a.Subscribe(func(l domain.Language) { got = append(got, l) })

	require.NoError(t, a.Set(ctx, "fr"))

	require.Equal(t, domain.French, a.Get())
	require.Equal(t, []domain.Language{domain.French}, got)
	stored, ok, err := store.Get(ctx, PreferenceKey)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "fr", stored)

	reloaded, err := Load(ctx, store)
	require.NoError(t, err)
	require.Equal(t, domain.French, reloaded.Get())
}

func TestAccessor_SetUnsupported(t *testing.T) {
	store := new(MockPreferenceStore)
	store.On("Get", mock.Anything, PreferenceKey).Return("", false, nil).Once()
	a, err := Load(context.Background(), store)
	require.NoError(t, err)

	err = a.Set(context.Background(), "de")

	require.ErrorIs(t, err, domain.ErrUnsupportedLanguage)
	require.Equal(t, domain.English, a.Get())
	store.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
}

func TestAccessor_SetStoreFailureKeepsCurrent(t *testing.T) {
	store := new(MockPreferenceStore)
	store.On("Get", mock.Anything, PreferenceKey).Return("", false, nil).Once()
	store.On("Set", mock.Anything, PreferenceKey, "ar").Return(errors.New("read only")).Once()
	a, err := Load(context.Background(), store)
	require.NoError(t, err)

	notified := false
	a.Subscribe(func(domain.Language) { notified = true })

	err = a.Set(context.Background(), "ar")

	require.Error(t, err)
	require.Equal(t, domain.English, a.Get())
	require.False(t, notified)
	store.AssertExpectations(t)
}

func TestAccessor_Unsubscribe(t *testing.T) {
	ctx := context.Background()
	a, err := Load(ctx, memory.NewPreferenceStore())
	require.NoError(t, err)

	calls := 0
	unsubscribe := a.Subscribe(func(domain.Language) { calls++ })

	require.NoError(t, a.Set(ctx, "fr"))
	unsubscribe()
	unsubscribe()
	require.NoError(t, a.Set(ctx, "ar"))

	require.Equal(t, 1, calls)
}

// slowAckStore writes immediately but holds the "fr" call open for a while
// after the write landed, signalling on written once it has.
type slowAckStore struct {
	*memory.PreferenceStore
	written chan struct{}
}

func (s *slowAckStore) Set(ctx context.Context, key string, value string) error {
	if err := s.PreferenceStore.Set(ctx, key, value); err != nil {
		return err
	}
	if value == string(domain.French) {
		close(s.written)
		time.Sleep(50 * time.Millisecond)
	}
	return nil
}

func TestAccessor_ConcurrentSetKeepsStoreAndMemoryInSync(t *testing.T) {
	ctx := context.Background()
	store := &slowAckStore{PreferenceStore: memory.NewPreferenceStore(), written: make(chan struct{})}
	a, err := Load(ctx, store)
	require.NoError(t, err)

	var wg sync.WaitGroup
	var frErr, arErr error
	wg.Add(2)
	go func() {
		defer wg.Done()
		frErr = a.Set(ctx, "fr")
	}()
	go func() {
		defer wg.Done()
		<-store.written
		arErr = a.Set(ctx, "ar")
	}()
	wg.Wait()
	require.NoError(t, frErr)
	require.NoError(t, arErr)

	stored, ok, err := store.Get(ctx, PreferenceKey)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, domain.Language(stored), a.Get())
	require.Equal(t, domain.Arabic, a.Get())
}
