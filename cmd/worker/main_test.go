package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakePurger struct {
	cutoff time.Time
	calls  int
	err    error
}

func (f *fakePurger) PurgeOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	f.calls++
	f.cutoff = cutoff
	return 3, f.err
}

func TestRunAuditPurge_UsesRetentionCutoff(t *testing.T) {
	repo := &fakePurger{}
	before := time.Now()

	runAuditPurge(context.Background(), repo, 24*time.Hour, zap.NewNop())

	assert.Equal(t, 1, repo.calls)
	assert.WithinDuration(t, before.Add(-24*time.Hour), repo.cutoff, time.Second)
}

func TestRunAuditPurge_DisabledRetention(t *testing.T) {
	repo := &fakePurger{}
	runAuditPurge(context.Background(), repo, 0, zap.NewNop())
	assert.Zero(t, repo.calls)
}

func TestRunAuditPurge_ErrorIsLogged(t *testing.T) {
	repo := &fakePurger{err: errors.New("db down")}
	assert.NotPanics(t, func() {
		runAuditPurge(context.Background(), repo, time.Hour, zap.NewNop())
	})
	assert.Equal(t, 1, repo.calls)
}
