package app

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/grindlemire/graft"
	"go.trai.ch/cargojni/internal/adapters/cas"           //nolint:depguard // Wired in app layer
	"go.trai.ch/cargojni/internal/adapters/config"        //nolint:depguard // Wired in app layer
	"go.trai.ch/cargojni/internal/adapters/detector"      //nolint:depguard // Wired in app layer
	"go.trai.ch/cargojni/internal/adapters/fs"            //nolint:depguard // Wired in app layer
	"go.trai.ch/cargojni/internal/adapters/linear"        //nolint:depguard // Wired in app layer
	"go.trai.ch/cargojni/internal/adapters/linkerwrapper" //nolint:depguard // Wired in app layer
	"go.trai.ch/cargojni/internal/adapters/logger"        //nolint:depguard // Wired in app layer
	"go.trai.ch/cargojni/internal/adapters/ndk"           //nolint:depguard // Wired in app layer
	"go.trai.ch/cargojni/internal/adapters/rustc"         //nolint:depguard // Wired in app layer
	"go.trai.ch/cargojni/internal/adapters/shell"         //nolint:depguard // Wired in app layer
	"go.trai.ch/cargojni/internal/adapters/tui"           //nolint:depguard // Wired in app layer
	"go.trai.ch/cargojni/internal/core/ports"
	"go.trai.ch/cargojni/internal/engine/invocation"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
	// RendererNodeID is the unique identifier for the progress renderer Graft node.
	RendererNodeID graft.ID = "app.renderer"
)

// Components contains the initialized application components the CLI needs.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[ports.Renderer]{
		ID:        RendererNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Renderer, error) {
			return newRenderer(os.Getenv(shell.OutputModeEnv), detector.DetectEnvironment()), nil
		},
	})

	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			ndk.LocatorNodeID,
			ndk.GeneratorNodeID,
			linkerwrapper.NodeID,
			shell.NodeID,
			rustc.NodeID,
			invocation.NodeID,
			fs.CopierNodeID,
			fs.HasherNodeID,
			cas.NodeID,
			RendererNodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

//nolint:cyclop // one lookup per dependency
func runAppNode(ctx context.Context) (*App, error) {
	var (
		deps Deps
		err  error
	)

	if deps.Loader, err = graft.Dep[ports.ConfigLoader](ctx); err != nil {
		return nil, err
	}
	if deps.Locator, err = graft.Dep[ports.NdkLocator](ctx); err != nil {
		return nil, err
	}
	if deps.Generator, err = graft.Dep[ports.ToolchainGenerator](ctx); err != nil {
		return nil, err
	}
	if deps.Wrapper, err = graft.Dep[ports.LinkerWrapperGenerator](ctx); err != nil {
		return nil, err
	}
	if deps.Executor, err = graft.Dep[ports.Executor](ctx); err != nil {
		return nil, err
	}
	if deps.Probe, err = graft.Dep[ports.HostTripleProbe](ctx); err != nil {
		return nil, err
	}
	if deps.Builder, err = graft.Dep[*invocation.Builder](ctx); err != nil {
		return nil, err
	}
	if deps.Copier, err = graft.Dep[ports.ArtifactCopier](ctx); err != nil {
		return nil, err
	}
	if deps.Hasher, err = graft.Dep[ports.Hasher](ctx); err != nil {
		return nil, err
	}
	if deps.Store, err = graft.Dep[ports.BuildRecordStore](ctx); err != nil {
		return nil, err
	}
	if deps.Renderer, err = graft.Dep[ports.Renderer](ctx); err != nil {
		return nil, err
	}
	if deps.Logger, err = graft.Dep[ports.Logger](ctx); err != nil {
		return nil, err
	}

	return New(deps), nil
}

// newRenderer picks the interactive view when cargo output goes through a
// terminal and plain prefixed lines otherwise.
func newRenderer(flag string, detected detector.OutputMode) ports.Renderer {
	if detector.ResolveMode(flag, detected) == detector.ModePTY {
		return tui.NewRenderer(tui.NewModel(os.Stderr), tea.WithOutput(os.Stderr))
	}
	return linear.NewRenderer(os.Stderr)
}
