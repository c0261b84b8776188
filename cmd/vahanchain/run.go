package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/vahanchain/vahanchain/internal/chain"
	"github.com/vahanchain/vahanchain/internal/duckdb"
	"github.com/vahanchain/vahanchain/internal/flow"
	"github.com/vahanchain/vahanchain/internal/httpserver"
	"github.com/vahanchain/vahanchain/internal/model"
	"github.com/vahanchain/vahanchain/internal/permissions"
	"github.com/vahanchain/vahanchain/internal/tui"
	"github.com/vahanchain/vahanchain/internal/wallet"
	"golang.org/x/sync/errgroup"
)

// walletProvider is a provider that owns background resources.
type walletProvider interface {
	wallet.Provider
	Close()
}

// run wires the store, wallet provider, bridge and chain client into the
// TUI and blocks until the program exits.
func run(cfg appConfig) error {
	cleanupLogger := configureRuntimeLogger(cfg.LogLevel)
	defer cleanupLogger()

	log.Info("starting", "version", version, "config", cfg.ConfigPath, "provider", cfg.WalletProvider)

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	provider, bridge, err := newProvider(cfg)
	if err != nil {
		return err
	}
	defer provider.Close()

	bridgeAddr := ""
	if bridge != nil && cfg.BridgeEnabled {
		srv := httpserver.NewServer(cfg.BridgeAddr, bridge)
		if err := srv.Start(); err != nil {
			log.Warn("wallet bridge unavailable", "addr", cfg.BridgeAddr, "err", err)
		} else {
			defer srv.Stop()
			bridgeAddr = srv.Addr()
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var balances tui.BalanceFetcher
	if client, err := chain.Dial(ctx, cfg.RPCURL); err != nil {
		log.Warn("chain client unavailable, balances disabled", "rpc", cfg.RPCURL, "err", err)
	} else {
		defer client.Close()
		balances = client
	}

	mainDeps := tui.MainDeps{
		Provider:   provider,
		Documents:  store,
		Prefs:      store,
		Sessions:   store,
		Balances:   balances,
		Timings:    cfg.timings(),
		ChainID:    cfg.ChainID,
		Profile:    model.DefaultProfile(),
		BridgeAddr: bridgeAddr,
	}
	if sess, ok, err := store.LastWalletSession(); err != nil {
		log.Warn("reading last wallet session failed", "err", err)
	} else if ok {
		log.Info("last wallet session", "address", wallet.ShortAddress(sess.Address), "chain_id", sess.ChainID)
	}

	pages := tui.NewPages(tui.Deps{
		Main:        mainDeps,
		Permissions: permissions.NewSimulated(cfg.PermissionsDelay),
		Policy:      permissions.Policy{RequireAll: cfg.RequireAllPermissions},
	})
	ctrl := flow.NewController(cfg.flowConfig())
	ctrl.OnEnter(func(s flow.State) { log.Debug("state", "state", s.String()) })
	app := tui.NewApp(ctrl, pages...)

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			if strings.Contains(err.Error(), "TTY") || strings.Contains(err.Error(), "/dev/tty") {
				return fmt.Errorf("TUI requires a real terminal")
			}
			return fmt.Errorf("error running TUI: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		p.Quit()
		return nil
	})

	err = g.Wait()
	for _, page := range pages {
		if c, ok := page.(interface{ Close() }); ok {
			c.Close()
		}
	}
	log.Info("stopped", "state", ctrl.State().String())
	return err
}

func openStore(cfg appConfig) (*duckdb.Store, error) {
	store, err := duckdb.NewStore(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize DuckDB: %w", err)
	}

	docs := model.DefaultDocuments()
	if cfg.DocumentsFile != "" {
		docs, err = model.LoadDocuments(cfg.DocumentsFile)
		if err != nil {
			store.Close()
			return nil, err
		}
	}
	seeded, err := store.SeedDocuments(docs)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("seeding documents: %w", err)
	}
	if seeded {
		log.Info("seeded documents", "count", len(docs))
	} else if cfg.DocumentsFile != "" {
		// an existing database follows later edits to the documents file
		for _, d := range docs {
			if err := store.UpsertDocument(d); err != nil {
				store.Close()
				return nil, fmt.Errorf("syncing documents: %w", err)
			}
		}
		log.Info("synced documents", "count", len(docs), "file", cfg.DocumentsFile)
	}
	if err := store.SeedPreferences(model.DefaultPreferences); err != nil {
		store.Close()
		return nil, fmt.Errorf("seeding preferences: %w", err)
	}
	return store, nil
}

// newProvider returns the configured wallet provider and, for the bridge
// provider, the bridge the HTTP server reports into.
func newProvider(cfg appConfig) (walletProvider, *wallet.Bridge, error) {
	switch cfg.WalletProvider {
	case "simulated":
		sim, err := wallet.NewSimulated(cfg.SimulatedAddress, cfg.ChainID, cfg.SimulatedDelay)
		if err != nil {
			return nil, nil, fmt.Errorf("simulated wallet: %w", err)
		}
		return sim, nil, nil
	default:
		b := wallet.NewBridge(cfg.ProjectID, cfg.metadata())
		return b, b, nil
	}
}
