package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	jRPC "github.com/0xPolygon/cdk-rpc/rpc"
	hoprelay "github.com/hop-protocol/hop-relay"
	"github.com/hop-protocol/hop-relay/chains"
	hopcommon "github.com/hop-protocol/hop-relay/common"
	"github.com/hop-protocol/hop-relay/config"
	"github.com/hop-protocol/hop-relay/indexer"
	"github.com/hop-protocol/hop-relay/log"
	"github.com/hop-protocol/hop-relay/relay"
	"github.com/hop-protocol/hop-relay/relayer"
	"github.com/hop-protocol/hop-relay/rpc"
	"github.com/hop-protocol/hop-relay/storage"
	"github.com/hop-protocol/hop-relay/transferroot"
	"github.com/hop-protocol/hop-relay/withdrawal"
	"github.com/urfave/cli/v2"
)

func start(cliCtx *cli.Context) error {
	c, err := config.Load(cliCtx)
	if err != nil {
		return err
	}

	log.Init(c.Log)

	if c.Log.Environment == log.EnvironmentDevelopment {
		hoprelay.PrintVersion(os.Stdout)
		log.Info("Starting application")
	} else if c.Log.Environment == log.EnvironmentProduction {
		logVersion()
	}

	ctx, cancel := context.WithCancel(cliCtx.Context)
	components := cliCtx.StringSlice(config.FlagComponents)

	store := newStorage(c.Relayer.DBPath)
	registry := runRegistryIfNeeded(ctx, components, c)
	msgRelayer := createRelayer(*c, store, registry)

	for _, component := range components {
		switch component {
		case hopcommon.RELAYER:
			go msgRelayer.Start(ctx)

		case hopcommon.RPC:
			roots, proofs := createProofBuilder(*c, store)
			server := createRPC(c.RPC, proofs, roots, store, msgRelayer, registry)
			go func() {
				if err := server.Start(); err != nil {
					log.Fatal(err)
				}
			}()

		default:
			log.Warnf("unknown component %s, ignored", component)
		}
	}

	waitSignal([]context.CancelFunc{cancel}, store)

	return nil
}

func newStorage(dbPath string) *storage.SQLStorage {
	store, err := storage.New(log.WithFields("module", "storage"), dbPath)
	if err != nil {
		log.Fatalf("error opening storage at %s: %v", dbPath, err)
	}
	return store
}

// runRegistryIfNeeded dials every configured chain, only messages need them
func runRegistryIfNeeded(ctx context.Context, components []string, c *config.Config) *chains.Registry {
	logger := log.WithFields("module", "chains")
	registry := chains.NewRegistry(logger, chains.NewFactory())
	if !isNeeded([]string{hopcommon.RELAYER, hopcommon.RPC}, components) {
		return registry
	}
	for _, chainCfg := range c.Chains {
		if err := registry.Add(ctx, chainCfg); err != nil {
			log.Fatalf("error adding chain %d (%s): %v", chainCfg.ChainID, chainCfg.Slug, err)
		}
		logger.Infof("chain %d (%s) added as %s", chainCfg.ChainID, chainCfg.Slug, chainCfg.Family)
	}
	return registry
}

func createRelayer(c config.Config, store *storage.SQLStorage, registry *chains.Registry) *relayer.Relayer {
	logger := log.WithFields("module", hopcommon.RELAYER)
	poller := relay.NewPoller(log.WithFields("module", "poller"), registry, c.L1ChainID,
		c.Relayer.ResubmitAfter.Duration)
	return relayer.New(logger, store, poller, c.Relayer)
}

func createProofBuilder(c config.Config, store *storage.SQLStorage) (*transferroot.CachedReconstructor,
	*withdrawal.Builder) {
	index, err := indexer.New(log.WithFields("module", "indexer"), c.Indexer, c.L1ChainID)
	if err != nil {
		log.Fatalf("error creating indexer client: %v", err)
	}
	logger := log.WithFields("module", "transferroot")
	roots := transferroot.NewCachedReconstructor(logger, store,
		transferroot.NewReconstructor(logger, index, c.TransferRoot))
	proofs := withdrawal.NewBuilder(log.WithFields("module", "withdrawal"), index, roots, c.Withdrawal)
	return roots, proofs
}

func createRPC(
	cfg jRPC.Config,
	proofs rpc.ProofBuilder,
	roots rpc.RootReconstructor,
	messages rpc.MessageStorage,
	poller rpc.MessagePoller,
	locators rpc.InclusionLocators,
) *jRPC.Server {
	logger := log.WithFields("module", hopcommon.RPC)
	services := []jRPC.Service{
		{
			Name: rpc.HOP,
			Service: rpc.NewHopEndpoints(
				logger,
				cfg.WriteTimeout.Duration,
				cfg.ReadTimeout.Duration,
				proofs,
				roots,
				messages,
				poller,
				locators,
			),
		},
	}

	return jRPC.NewServer(cfg, services, jRPC.WithLogger(logger.GetSugaredLogger()))
}

func logVersion() {
	log.Infow("Starting application", hoprelay.GetVersion().KeyValues()...)
}

func waitSignal(cancelFuncs []context.CancelFunc, store *storage.SQLStorage) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

	for sig := range signals {
		switch sig {
		case os.Interrupt, syscall.SIGTERM:
			log.Info("terminating application gracefully...")

			for _, cancel := range cancelFuncs {
				cancel()
			}
			if err := store.Close(); err != nil {
				log.Errorf("error closing storage: %v", err)
			}
			os.Exit(0)
		}
	}
}

func isNeeded(casesWhereNeeded, actualCases []string) bool {
	for _, actualCase := range actualCases {
		for _, caseWhereNeeded := range casesWhereNeeded {
			if actualCase == caseWhereNeeded {
				return true
			}
		}
	}
	return false
}
