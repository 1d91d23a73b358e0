package main

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"growsphere/config"
	"growsphere/database"
	"growsphere/pkg/logger"
	"growsphere/pkg/middleware"
	"growsphere/pkg/sim"
	"growsphere/router"

	// Store
	kvRepoImp "growsphere/pkg/store/repositoryImp"

	// Plants + plans
	planCtrlImp "growsphere/pkg/plan/controllerImp"
	planRepoImp "growsphere/pkg/plan/repositoryImp"
	planSvcImp "growsphere/pkg/plan/serviceImp"
	plantCtrlImp "growsphere/pkg/plant/controllerImp"
	plantRepoImp "growsphere/pkg/plant/repositoryImp"
	plantSvcImp "growsphere/pkg/plant/serviceImp"
	schedCtrlImp "growsphere/pkg/schedule/controllerImp"

	// Settings + client state
	"growsphere/pkg/appstate"
	stateCtrlImp "growsphere/pkg/appstate/controllerImp"
	settingsCtrlImp "growsphere/pkg/settings/controllerImp"
	settingsSvc "growsphere/pkg/settings/service"
	settingsSvcImp "growsphere/pkg/settings/serviceImp"

	// Simulated capabilities
	"growsphere/pkg/ai"
	aiCtrlImp "growsphere/pkg/ai/controllerImp"
	diagCtrlImp "growsphere/pkg/diagnostics/controllerImp"
	diagSvcImp "growsphere/pkg/diagnostics/serviceImp"
	marketCtrlImp "growsphere/pkg/market/controllerImp"
	marketSvcImp "growsphere/pkg/market/serviceImp"
	"growsphere/pkg/research"
	researchCtrlImp "growsphere/pkg/research/controllerImp"
	researchSvcImp "growsphere/pkg/research/serviceImp"
	"growsphere/pkg/sprinkler"
	sprinklerCtrlImp "growsphere/pkg/sprinkler/controllerImp"
	sprinklerSvcImp "growsphere/pkg/sprinkler/serviceImp"

	// Health
	healthCtrlImp "growsphere/pkg/health/controllerImp"
)

const chatTranscriptLimit = 100

func scaled(l sim.Latency, on bool) sim.Latency {
	l.Scale = sim.Scale(on)
	return l
}

// persistState writes theme and test mode back to settings when they change.
func persistState(svc settingsSvc.SettingsService) func(prev, next appstate.State) {
	lg := logger.L().With("component", "appstate")
	return func(prev, next appstate.State) {
		if prev.Theme == next.Theme && prev.TestMode == next.TestMode {
			return
		}
		cur, err := svc.Get()
		if err != nil {
			lg.Warn("load settings", "error", err)
		}
		cur.Theme = next.Theme
		cur.TestMode = next.TestMode
		if _, err := svc.Update(cur); err != nil {
			lg.Warn("persist settings", "error", err)
		}
	}
}

func main() {
	// 1) Config + logging
	cfg := config.Load()
	lg, err := logger.Init(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, File: cfg.LogFile})
	if err != nil {
		log.Fatalf("logger: %v", err)
	}

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)
	defer database.Close(db)
	kv := kvRepoImp.New(db)

	// 3) Catalog, plans, settings
	histRepo := planRepoImp.New(kv)
	plantSvc := plantSvcImp.NewPlantService(plantRepoImp.New(kv), histRepo)
	planSvc := planSvcImp.NewPlanService(plantSvc, histRepo)
	setSvc := settingsSvcImp.NewSettingsService(kv)

	initial := appstate.Initial()
	if s, err := setSvc.Get(); err == nil {
		initial.Theme = s.Theme
		initial.TestMode = s.TestMode
	}
	store := appstate.NewStore(initial, persistState(setSvc))

	// 4) Simulated providers
	table, err := research.LoadTable()
	if err != nil {
		lg.Error("research table", "error", err)
		os.Exit(1)
	}
	images := researchSvcImp.NewMockImageSearch(scaled(researchSvcImp.ImageLatency, cfg.SimLatency))
	researcher := researchSvcImp.NewMockResearcher(table, images, scaled(researchSvcImp.ResearchLatency, cfg.SimLatency))
	resSvc := researchSvcImp.NewResearchService(researcher)

	book, err := ai.LoadResponses()
	if err != nil {
		lg.Error("assistant responses", "error", err)
		os.Exit(1)
	}
	var llm ai.Client = ai.NewMock(book, scaled(ai.ThinkingLatency, cfg.SimLatency))
	if cfg.LLMEndpoint != "" && cfg.LLMAPIKey != "" {
		llm = ai.NewOpenAI(cfg.LLMEndpoint, cfg.LLMAPIKey, cfg.LLMModel, llm)
	}
	assistant := ai.NewAssistant(llm, book.Fallback, chatTranscriptLimit)

	seed := time.Now().UnixNano()
	minute := time.Minute
	if cfg.SprinklerDemo {
		minute = time.Second
	}
	sprSvc := sprinklerSvcImp.NewSprinklerService(sprinkler.NewSimulated(rand.New(rand.NewSource(seed))), minute)
	mktSvc := marketSvcImp.NewMarketService(rand.New(rand.NewSource(seed+1)), scaled(marketSvcImp.CheckLatency, cfg.SimLatency))
	diagSvc := diagSvcImp.NewDiagnosticsService(plantSvc, planSvc, store, kv, scaled(diagSvcImp.StepLatency, cfg.SimLatency))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go sprSvc.Run(ctx, cfg.SensorInterval)
	go mktSvc.Run(ctx, cfg.MarketInterval)

	// 5) Echo
	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	e.Use(middleware.RequestLog(lg.With("component", "http")))
	e.Use(middleware.Metrics())
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.Static("/static", cfg.StaticDir)
	if _, err := os.Stat(cfg.StaticDir); err != nil {
		lg.Warn("static dir not found", "dir", cfg.StaticDir, "error", err)
	}

	// 6) Router
	router.New(e, router.Controllers{
		Plants:      plantCtrlImp.New(plantSvc),
		Plans:       planCtrlImp.NewPlanCtrl(planSvc),
		Schedule:    schedCtrlImp.New(),
		Settings:    settingsCtrlImp.New(setSvc),
		Research:    researchCtrlImp.New(resSvc),
		State:       stateCtrlImp.New(store),
		Chat:        aiCtrlImp.New(assistant),
		Sprinkler:   sprinklerCtrlImp.New(sprSvc),
		Market:      marketCtrlImp.New(mktSvc),
		Diagnostics: diagCtrlImp.New(diagSvc),
		Health:      healthCtrlImp.NewHealthCtrl(db),
	})

	// 7) Start + graceful shutdown
	go func() {
		lg.Info("listening", "port", cfg.Port)
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Error("server stopped", "error", err)
			stop()
		}
	}()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		lg.Error("shutdown", "error", err)
	}
	lg.Info("bye")
}
