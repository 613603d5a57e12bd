package metrics

import (
	"context"
	"time"

	"github.com/marceldopr/Volleyball-stats-definitiu/internal/store"
)

// Store call outcomes.
const (
	OutcomeOK     = "ok"
	OutcomeNoRows = "no_rows"
	OutcomeError  = "error"
)

// StoreObserver records remote store calls.
type StoreObserver interface {
	ObserveStoreCall(collection, operation, outcome string, elapsed time.Duration)
}

type instrumentedClient struct {
	next     store.Client
	observer StoreObserver
}

// InstrumentStore decorates c so every call is counted and timed. The
// result stays transactional when c is.
func InstrumentStore(c store.Client, observer StoreObserver) store.Client {
	return &instrumentedClient{next: c, observer: observer}
}

func (i *instrumentedClient) observe(collection, operation string, start time.Time, err error) {
	outcome := OutcomeOK
	switch {
	case store.IsNoRows(err):
		outcome = OutcomeNoRows
	case err != nil:
		outcome = OutcomeError
	}
	i.observer.ObserveStoreCall(collection, operation, outcome, time.Since(start))
}

func (i *instrumentedClient) Select(ctx context.Context, q store.Query, dest any) error {
	start := time.Now()
	err := i.next.Select(ctx, q, dest)
	i.observe(q.Collection, "select", start, err)
	return err
}

func (i *instrumentedClient) SelectOne(ctx context.Context, q store.Query, dest any) error {
	start := time.Now()
	err := i.next.SelectOne(ctx, q, dest)
	i.observe(q.Collection, "select_one", start, err)
	return err
}

func (i *instrumentedClient) Insert(ctx context.Context, collection string, record any) error {
	start := time.Now()
	err := i.next.Insert(ctx, collection, record)
	i.observe(collection, "insert", start, err)
	return err
}

func (i *instrumentedClient) Update(ctx context.Context, q store.Query, patch map[string]any, dest any) error {
	start := time.Now()
	err := i.next.Update(ctx, q, patch, dest)
	i.observe(q.Collection, "update", start, err)
	return err
}

func (i *instrumentedClient) Delete(ctx context.Context, q store.Query) error {
	start := time.Now()
	err := i.next.Delete(ctx, q)
	i.observe(q.Collection, "delete", start, err)
	return err
}

// Transaction delegates to the wrapped client when it is transactional and
// runs fn directly otherwise, matching store.InTransaction.
func (i *instrumentedClient) Transaction(ctx context.Context, fn func(tx store.Client) error) error {
	t, ok := i.next.(store.Transactor)
	if !ok {
		return fn(i)
	}
	return t.Transaction(ctx, func(tx store.Client) error {
		return fn(&instrumentedClient{next: tx, observer: i.observer})
	})
}
