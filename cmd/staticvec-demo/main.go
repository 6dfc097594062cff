// cmd/staticvec-demo/main.go
//
// Walks through the staticvec surface with a bounded buffer of request
// records: fill to capacity, get refused, drain, compare.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/FairForge/staticvec"
)

// request is the kind of small record a fixed-capacity buffer typically
// holds: recent work items kept without ever growing the heap footprint.
type request struct {
	ID       uuid.UUID
	Tenant   string
	Received time.Time
}

func main() {
	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()

	capacity := 3
	if c := os.Getenv("DEMO_CAPACITY"); c != "" {
		if _, err := fmt.Sscanf(c, "%d", &capacity); err != nil || capacity < 1 {
			logger.Error("invalid capacity", zap.String("value", c))
			capacity = 3
		}
	}

	recent := staticvec.New[request](capacity, staticvec.WithDrop[request](func(r request) {
		logger.Info("record dropped", zap.String("id", r.ID.String()))
	}))
	logger.Info("created bounded buffer",
		zap.Int("capacity", recent.Cap()),
		zap.Int("len", recent.Len()))

	// Fill to capacity, then one past: the final push must be refused
	// without touching the buffer.
	for i := 0; i <= capacity; i++ {
		r := request{ID: uuid.New(), Tenant: fmt.Sprintf("tenant-%d", i), Received: time.Now().UTC()}
		if err := recent.PushBack(r); err != nil {
			if errors.Is(err, staticvec.ErrCapacity) {
				logger.Warn("buffer full, request refused",
					zap.String("id", r.ID.String()),
					zap.Int("len", recent.Len()))
				continue
			}
			logger.Fatal("push failed", zap.Error(err))
		}
		logger.Info("request buffered",
			zap.String("id", r.ID.String()),
			zap.Int("len", recent.Len()))
	}

	// Newest first, without destroying anything.
	for i, r := range recent.Backward() {
		logger.Info("replaying newest first",
			zap.Int("slot", i),
			zap.String("tenant", r.Tenant))
	}

	// Snapshots compare by contents, not capacity.
	snapshot := recent.Clone()
	logger.Info("snapshot taken",
		zap.Bool("equal", staticvec.EqualFunc(recent, snapshot, func(a, b request) bool {
			return a.ID == b.ID
		})))

	latest := recent.PopBack()
	logger.Info("handed off latest request",
		zap.String("id", latest.ID.String()),
		zap.Int("len", recent.Len()))

	// Teardown runs newest first through the drop hook.
	recent.Clear()
	logger.Info("buffer cleared", zap.Int("len", recent.Len()))
}
