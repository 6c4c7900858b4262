package injector

import (
	"github.com/google/uuid"
	"github.com/google/wire"

	"github.com/zeusync/spacedrift/internal/config"
	"github.com/zeusync/spacedrift/internal/core/cull"
	"github.com/zeusync/spacedrift/internal/core/events/bus"
	"github.com/zeusync/spacedrift/internal/core/factory"
	"github.com/zeusync/spacedrift/internal/core/observability/log"
	"github.com/zeusync/spacedrift/internal/core/trajectory"
	"github.com/zeusync/spacedrift/internal/core/world"
	"github.com/zeusync/spacedrift/internal/server"
)

// App is everything the host binary drives.
type App struct {
	Config *config.Config
	Logger *log.Logger
	Bus    bus.EventBus
	Loop   *world.Loop
	Server *server.Server
}

var ProviderSet = wire.NewSet(
	ProvideLogger,
	wire.Bind(new(log.Log), new(*log.Logger)),
	ProvideSource,
	ProvideFactory,
	trajectory.New,
	ProvideCuller,
	ProvideSpawnSystem,
	ProvideMotionSystem,
	world.NewCullSystem,
	world.NewRegistry,
	bus.New,
	ProvideLoop,
	ProvideServer,
)

func ProvideLogger(cfg *config.Config) (*log.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	return log.New(level), nil
}

// ProvideSource seeds the factory randomness from cfg.Seed, or randomly when it is empty.
func ProvideSource(cfg *config.Config) factory.Source {
	seed := cfg.Seed
	if seed == "" {
		seed = uuid.NewString()
	}
	return factory.NewLockedSource(factory.NewSeededSource(seed))
}

func ProvideFactory(cfg *config.Config, src factory.Source) (*factory.Factory, error) {
	profiles, err := cfg.SpaceProfiles()
	if err != nil {
		return nil, err
	}
	return factory.New(profiles, src)
}

func ProvideCuller(cfg *config.Config) (*cull.Culler, error) {
	return cull.New(cfg.Cull.Threshold)
}

func ProvideSpawnSystem(cfg *config.Config, f *factory.Factory, engine *trajectory.Engine, src factory.Source, logger log.Log) (*world.SpawnSystem, error) {
	scheduler, err := cfg.Scheduler()
	if err != nil {
		return nil, err
	}
	weights, err := cfg.KindWeights()
	if err != nil {
		return nil, err
	}
	return world.NewSpawnSystem(world.SpawnOptions{
		Scheduler: scheduler,
		FOV:       cfg.FOV,
		Weights:   weights,
	}, f, engine, src, logger)
}

func ProvideMotionSystem(cfg *config.Config, engine *trajectory.Engine) *world.MotionSystem {
	return world.NewMotionSystem(engine, cfg.Workers, 0)
}

func ProvideLoop(registry *world.Registry, eventBus bus.EventBus, logger log.Log, spawn *world.SpawnSystem, motion *world.MotionSystem, culling *world.CullSystem) (*world.Loop, error) {
	return world.NewLoop(registry, eventBus, logger, spawn, motion, culling)
}

// ProvideServer creates the frame stream server and attaches it to the loop's ticks.
func ProvideServer(cfg *config.Config, logger log.Log, eventBus bus.EventBus, loop *world.Loop) (*server.Server, error) {
	sc := server.DefaultServerConfig()
	sc.ListenAddr = cfg.Server.ListenAddr
	sc.SendBuffer = cfg.Server.SendBuffer

	srv, err := server.NewServer(sc, logger)
	if err != nil {
		return nil, err
	}
	if err = srv.Attach(eventBus, loop); err != nil {
		return nil, err
	}
	return srv, nil
}
