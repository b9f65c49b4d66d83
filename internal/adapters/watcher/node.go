package watcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/melt/internal/adapters/logger"
	"go.trai.ch/melt/internal/core/ports"
)

// FactoryNodeID is the unique identifier for the watcher factory Graft node.
const FactoryNodeID graft.ID = "adapter.watcher_factory"

// Factory creates a fresh watcher for every watch run.
type Factory func() (ports.Watcher, error)

func init() {
	graft.Register(graft.Node[Factory]{
		ID:        FactoryNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (Factory, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return func() (ports.Watcher, error) {
				w, err := NewWatcher(log)
				if err != nil {
					return nil, err
				}
				return w, nil
			}, nil
		},
	})
}
