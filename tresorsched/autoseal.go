// Package tresorsched provides an optional periodic-reseal convenience on
// top of github.com/robfig/cron/v3. It is a thin wrapper around
// Store.Seal: the single-shot seal contract is unchanged, this just calls
// it on a schedule instead of the embedder having to wire their own
// ticker.
package tresorsched

import (
	"io"
	"sync"

	"github.com/robfig/cron/v3"

	"github.com/armorclaw/tresor"
)

// WriterFactory opens a fresh writer for each scheduled seal (e.g. create
// or truncate the backing file). AutoSealer closes it via the returned
// io.Closer if the writer implements one.
type WriterFactory func() (io.Writer, error)

// FailureHandler is invoked with any error a scheduled Seal returns. If
// nil, failures are silently dropped — set one to observe them.
type FailureHandler func(error)

// AutoSealer re-seals a Store on a cron schedule.
type AutoSealer struct {
	mu       sync.Mutex
	store    *tresor.Store
	password string
	newWriter WriterFactory
	onFailure FailureHandler

	cron *cron.Cron
}

// New builds an AutoSealer; store and password are sealed together on
// every tick. The schedule itself is given to Start.
func New(store *tresor.Store, password string, newWriter WriterFactory, onFailure FailureHandler) *AutoSealer {
	return &AutoSealer{
		store:     store,
		password:  password,
		newWriter: newWriter,
		onFailure: onFailure,
		cron:      cron.New(),
	}
}

// Start schedules seals according to spec, a standard 5-field cron
// expression (see github.com/robfig/cron/v3's documentation), and begins
// running them in the background. Returns an error if spec fails to parse.
func (a *AutoSealer) Start(spec string) error {
	_, err := a.cron.AddFunc(spec, a.sealOnce)
	if err != nil {
		return err
	}
	a.cron.Start()
	return nil
}

// Stop halts the schedule and waits for any in-flight seal to finish.
func (a *AutoSealer) Stop() {
	ctx := a.cron.Stop()
	<-ctx.Done()
}

func (a *AutoSealer) sealOnce() {
	a.mu.Lock()
	defer a.mu.Unlock()

	w, err := a.newWriter()
	if err != nil {
		a.fail(err)
		return
	}
	if err := a.store.Seal(w, a.password); err != nil {
		if closer, ok := w.(io.Closer); ok {
			closer.Close()
		}
		a.fail(err)
		return
	}
	if closer, ok := w.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			a.fail(err)
		}
	}
}

func (a *AutoSealer) fail(err error) {
	if a.onFailure != nil {
		a.onFailure(err)
	}
}
