package queue

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/societyhub/society-api/internal/core/domain"
)

type recordingRepo struct {
	mu     sync.Mutex
	events []domain.AuditEvent
	fail   bool
	block  chan struct{}
}

func (r *recordingRepo) Insert(_ context.Context, e *domain.AuditEvent) error {
	if r.block != nil {
		<-r.block
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return errors.New("insert failed")
	}
	r.events = append(r.events, *e)
	return nil
}

func (r *recordingRepo) snapshot() []domain.AuditEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.AuditEvent(nil), r.events...)
}

func TestAuditDispatcher_PersistsAllEvents(t *testing.T) {
	repo := &recordingRepo{}
	d := NewAuditDispatcher(3, repo, zerolog.Nop())
	d.Start(context.Background())

	for i := 0; i < 20; i++ {
		d.Enqueue(domain.AuditEvent{Subject: fmt.Sprintf("user-%d@b.com", i%5), Action: domain.AuditUserRegistered})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, d.Close(ctx))
	assert.Len(t, repo.snapshot(), 20)
}

func TestAuditDispatcher_PreservesOrderPerSubject(t *testing.T) {
	repo := &recordingRepo{}
	d := NewAuditDispatcher(4, repo, zerolog.Nop())
	d.Start(context.Background())

	actions := []string{domain.AuditComplaintCreated, domain.AuditComplaintAssigned, domain.AuditComplaintStatus}
	for _, a := range actions {
		d.Enqueue(domain.AuditEvent{Subject: "CMP-1", Action: a})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, d.Close(ctx))

	var got []string
	for _, e := range repo.snapshot() {
		got = append(got, e.Action)
	}
	assert.Equal(t, actions, got)
}

func TestAuditDispatcher_ShardIndexIsStable(t *testing.T) {
	d := NewAuditDispatcher(8, &recordingRepo{}, zerolog.Nop())
	for _, subject := range []string{"a@b.com", "CMP-01H", ""} {
		first := d.shardIndex(subject)
		assert.Equal(t, first, d.shardIndex(subject))
		assert.GreaterOrEqual(t, first, 0)
		assert.Less(t, first, 8)
	}
}

func TestAuditDispatcher_DropsWhenFull(t *testing.T) {
	repo := &recordingRepo{block: make(chan struct{})}
	d := NewAuditDispatcher(1, repo, zerolog.Nop())
	d.Start(context.Background())

	// One event is held by the blocked worker, channelBuffer fill the queue,
	// and the rest must be dropped without blocking the caller.
	done := make(chan struct{})
	go func() {
		for i := 0; i < channelBuffer+10; i++ {
			d.Enqueue(domain.AuditEvent{Subject: "same", Action: domain.AuditUserProfileUpdated})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Enqueue blocked on a full queue")
	}

	close(repo.block)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, d.Close(ctx))
	assert.Less(t, len(repo.snapshot()), channelBuffer+10)
}

func TestAuditDispatcher_EnqueueAfterCloseIsDropped(t *testing.T) {
	repo := &recordingRepo{}
	d := NewAuditDispatcher(1, repo, zerolog.Nop())
	d.Start(context.Background())
	require.NoError(t, d.Close(context.Background()))

	assert.NotPanics(t, func() {
		d.Enqueue(domain.AuditEvent{Subject: "late"})
	})
	assert.Empty(t, repo.snapshot())
}

func TestAuditDispatcher_FailedInsertsDoNotStopWorker(t *testing.T) {
	repo := &recordingRepo{fail: true}
	d := NewAuditDispatcher(1, repo, zerolog.Nop())
	d.Start(context.Background())

	d.Enqueue(domain.AuditEvent{Subject: "x"})
	d.Enqueue(domain.AuditEvent{Subject: "x"})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	assert.NoError(t, d.Close(ctx))
}
