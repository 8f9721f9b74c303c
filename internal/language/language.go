// Package language keeps the active UI language, persisted under a single
// preference key, and resolves translated messages.
package language

import (
	"context"
	"fmt"
	"sync"

	"goldprice/internal/adapters"
	"goldprice/internal/domain"

	"github.com/sirupsen/logrus"
)

// PreferenceKey is the only key the accessor reads or writes.
const PreferenceKey = "goldprice.language"

type Listener func(domain.Language)

type Accessor struct {
	store adapters.PreferenceStore

	// writeMu serializes Set so the stored and in-memory values agree.
	writeMu sync.Mutex

	mu        sync.RWMutex
	current   domain.Language
	listeners map[uint64]Listener
	nextID    uint64
}

// Load reads the persisted language once. A missing or unrecognised value
// yields the default language.
func Load(ctx context.Context, store adapters.PreferenceStore) (*Accessor, error) {
	raw, ok, err := store.Get(ctx, PreferenceKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read language preference: %w", err)
	}

	current := domain.DefaultLanguage
	if ok {
		if parsed, parseErr := domain.ParseLanguage(raw); parseErr == nil {
			current = parsed
		} else {
			logrus.WithField("stored", raw).Warn("Ignoring unsupported stored language")
		}
	}

	return &Accessor{
		store:     store,
		current:   current,
		listeners: make(map[uint64]Listener),
	}, nil
}

func (a *Accessor) Get() domain.Language {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.current
}

// Set persists code and then notifies subscribers. The in-memory value is
// only changed once the write succeeded, and concurrent calls are applied
// one at a time, so the last stored value is also the current one.
func (a *Accessor) Set(ctx context.Context, code string) error {
	lang, err := domain.ParseLanguage(code)
	if err != nil {
		return err
	}

	listeners, err := a.persist(ctx, lang)
	if err != nil {
		return err
	}
	for _, l := range listeners {
		l(lang)
	}
	return nil
}

func (a *Accessor) persist(ctx context.Context, lang domain.Language) ([]Listener, error) {
	a.writeMu.Lock()
	defer a.writeMu.Unlock()

	if err := a.store.Set(ctx, PreferenceKey, string(lang)); err != nil {
		return nil, fmt.Errorf("failed to persist language %q: %w", lang, err)
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.current = lang
	listeners := make([]Listener, 0, len(a.listeners))
	for _, l := range a.listeners {
		listeners = append(listeners, l)
	}
	return listeners, nil
}

// Subscribe registers l for future changes. The returned func removes it and
// is safe to call more than once.
func (a *Accessor) Subscribe(l Listener) (unsubscribe func()) {
	a.mu.Lock()
	id := a.nextID
	a.nextID++
	a.listeners[id] = l
	a.mu.Unlock()

	return func() {
		a.mu.Lock()
		delete(a.listeners, id)
		a.mu.Unlock()
	}
}
