package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/galleria-network/galleria-daemon/config"
	"github.com/galleria-network/galleria-daemon/internal/core/application"
	"github.com/galleria-network/galleria-daemon/internal/core/ports"
	ledgerinmemory "github.com/galleria-network/galleria-daemon/internal/infrastructure/ledger/inmemory"
	dbbadger "github.com/galleria-network/galleria-daemon/internal/infrastructure/storage/db/badger"
	dbinmemory "github.com/galleria-network/galleria-daemon/internal/infrastructure/storage/db/inmemory"
	httpinterface "github.com/galleria-network/galleria-daemon/internal/interfaces/http"
	"github.com/galleria-network/galleria-daemon/pkg/stats"
)

func main() {
	log.SetLevel(log.Level(config.GetInt(config.LogLevelKey)))

	repoManager, err := createRepoManager()
	if err != nil {
		log.WithError(err).Panic("error while opening storage")
	}
	defer repoManager.Close()

	ledger := ledgerinmemory.NewLedger()

	operatorSvc := application.NewOperatorService(repoManager, ledger)
	tradeSvc := application.NewTradeService(repoManager, ledger)

	addr := config.GetString(config.ListenAddrKey)
	server := httpinterface.NewServer(
		operatorSvc, tradeSvc, config.GetInt(config.RequestRateLimitKey),
	)
	srv := &http.Server{Addr: addr, Handler: server.Router()}

	log.Debug("starting daemon")

	g, ctx := errgroup.WithContext(context.Background())

	if interval := config.GetInt(config.StatsIntervalKey); interval > 0 {
		stats.EnableMemoryStatistics(
			ctx, time.Duration(interval)*time.Second,
		)
	}

	g.Go(func() error {
		log.Infof("marketplace interface is listening on %s", addr)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

		select {
		case <-sigChan:
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(), 5*time.Second,
		)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.WithError(err).Error("shut down with error")
	}
	log.Debug("exiting")
}

func createRepoManager() (ports.RepoManager, error) {
	if config.GetString(config.DbTypeKey) == config.DbTypeInMemory {
		return dbinmemory.NewRepoManager(), nil
	}
	return dbbadger.NewRepoManager(config.GetDbDir(), nil)
}
