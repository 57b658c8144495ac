package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"

	_ "github.com/joho/godotenv/autoload"

	"github.com/signalsfoundry/mission-planner/core"
	"github.com/signalsfoundry/mission-planner/internal/logging"
	"github.com/signalsfoundry/mission-planner/internal/observability"
	"github.com/signalsfoundry/mission-planner/internal/server"
	"github.com/signalsfoundry/mission-planner/kb"
)

func main() {
	addr := flag.String("addr", ":8080", "TCP address the HTTP server listens on")
	catalogPath := flag.String("catalog", "configs/catalog.json", "Path to the JSON vehicle and body catalog")
	flag.Parse()

	log := logging.NewFromEnv()
	ctx := context.Background()

	shutdown, err := observability.InitTracing(ctx, observability.TracingConfigFromEnv(), log)
	if err != nil {
		log.Error(ctx, "failed to initialise tracing", logging.String("error", err.Error()))
		os.Exit(1)
	}
	defer observability.ShutdownWithTimeout(context.Background(), shutdown, log)

	collector, err := observability.NewPlannerCollector(nil)
	if err != nil {
		log.Error(ctx, "failed to initialise metrics collector", logging.String("error", err.Error()))
		os.Exit(1)
	}

	catalog := kb.NewCatalog()
	loadCatalog(ctx, log, catalog, *catalogPath)
	vehicles, bodies := catalog.Counts()
	collector.SetCatalogCounts(vehicles, bodies)

	planner := core.NewMissionPlanner(catalog, log, core.WithMetricsRecorder(collector))

	srv := server.New(server.Config{Addr: *addr}, planner, catalog, log, collector)

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := srv.ListenAndServe(runCtx); err != nil && err != http.ErrServerClosed {
		log.Error(ctx, "http server exited", logging.String("error", err.Error()))
		os.Exit(1)
	}
}

func loadCatalog(ctx context.Context, log logging.Logger, catalog *kb.Catalog, path string) {
	f, err := os.Open(path)
	if err != nil {
		log.Error(ctx, "failed to open catalog", logging.String("path", path), logging.String("error", err.Error()))
		os.Exit(1)
	}
	defer f.Close()

	summary, err := core.LoadCatalog(catalog, f)
	if err != nil {
		log.Error(ctx, "failed to load catalog", logging.String("path", path), logging.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info(ctx, "catalog loaded",
		logging.String("path", path),
		logging.Int("vehicles", len(summary.VehicleNames)),
		logging.Int("bodies", len(summary.BodyNames)),
	)
}
