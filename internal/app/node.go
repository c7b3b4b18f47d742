package app

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/differ/internal/adapters/binexport" //nolint:depguard // Wired in app layer
	"go.trai.ch/differ/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/differ/internal/adapters/database"  //nolint:depguard // Wired in app layer
	"go.trai.ch/differ/internal/adapters/differ"    //nolint:depguard // Wired in app layer
	"go.trai.ch/differ/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/differ/internal/adapters/linear"    //nolint:depguard // Wired in app layer
	"go.trai.ch/differ/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/differ/internal/adapters/resultlog" //nolint:depguard // Wired in app layer
	"go.trai.ch/differ/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/differ/internal/core/ports"
	"go.trai.ch/differ/internal/engine/cancel"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// SignalNodeID is the unique identifier for the cancellation signal Graft node.
	SignalNodeID graft.ID = "app.signal"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*cancel.Signal]{
		ID:        SignalNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{linear.NodeID},
		Run: func(ctx context.Context) (*cancel.Signal, error) {
			reporter, err := graft.Dep[ports.Reporter](ctx)
			if err != nil {
				return nil, err
			}
			return cancel.New(reporter.Warn, os.Exit), nil
		},
	})

	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			binexport.NodeID,
			differ.EngineNodeID,
			fs.CollectorNodeID,
			logger.NodeID,
			linear.NodeID,
			telemetry.TracerNodeID,
			SignalNodeID,
			database.NodeID,
			resultlog.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			SignalNodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	reader, err := graft.Dep[ports.Reader](ctx)
	if err != nil {
		return nil, err
	}
	engine, err := graft.Dep[ports.DiffEngine](ctx)
	if err != nil {
		return nil, err
	}
	collector, err := graft.Dep[ports.ExportCollector](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	reporter, err := graft.Dep[ports.Reporter](ctx)
	if err != nil {
		return nil, err
	}
	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}
	signal, err := graft.Dep[*cancel.Signal](ctx)
	if err != nil {
		return nil, err
	}
	databaseSink, err := graft.Dep[*database.Sink](ctx)
	if err != nil {
		return nil, err
	}
	logSink, err := graft.Dep[*resultlog.Sink](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, reader, engine, collector, log, reporter, tracer, signal, logSink, databaseSink), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	signal, err := graft.Dep[*cancel.Signal](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    app,
		Logger: log,
		Signal: signal,
	}, nil
}
