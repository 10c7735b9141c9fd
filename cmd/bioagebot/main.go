package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	api "github.com/biovozrast/bioage-bot/internal/api/http"
	"github.com/biovozrast/bioage-bot/internal/bot"
	"github.com/biovozrast/bioage-bot/internal/config"
	"github.com/biovozrast/bioage-bot/internal/logger"
	"github.com/biovozrast/bioage-bot/internal/metrics"
	"github.com/biovozrast/bioage-bot/internal/quiz"
)

const botName = "БиоВозраст Бот"

func main() {
	cfg := config.FromEnv()
	log := logger.New("bioage-bot")

	// An invalid bank means the process must not accept traffic.
	bank, err := quiz.LoadBank(cfg.QuestionsPath)
	if err != nil {
		log.WithError(err).Fatal("load question bank")
	}
	if bank.Len() != cfg.TotalQuestions {
		log.WithFields(logrus.Fields{
			"expected": cfg.TotalQuestions,
			"loaded":   bank.Len(),
		}).Warn("question bank length differs from configured expectation")
	}

	m := metrics.New("bot")
	store := quiz.NewInMemoryStore()
	metrics.RegisterActiveSessions("bot", func() float64 { return float64(store.Len()) })

	engine := quiz.NewEngine(bank, store, quiz.Config{MinAge: cfg.MinAge, MaxAge: cfg.MaxAge}, log, m)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go quiz.StartSweeper(ctx, store, cfg.SessionTTL, cfg.SweepInterval, log)

	// --- HTTP front end: health, metrics, web chat, static assets ---
	authSvc := api.NewAuthService(cfg.AuthSecret)

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/healthz", api.HealthHandler(botName))
	r.Method(http.MethodGet, "/metrics", metrics.Handler())
	r.Route("/api/chat", func(cr chi.Router) {
		cr.Post("/session", api.NewChatSessionHandler(authSvc))
		cr.With(api.JWTMiddleware(authSvc)).Post("/message", api.ChatMessageHandler(engine))
	})
	r.Handle("/*", http.FileServer(http.Dir(cfg.StaticDir)))

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: r}
	go func() {
		log.WithField("addr", cfg.HTTPAddr).Info("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("http server")
		}
	}()

	// --- Telegram front end, only when a token is configured ---
	if cfg.TelegramToken != "" {
		tg, err := bot.New(cfg.TelegramToken, engine, log, m)
		if err != nil {
			log.WithError(err).Error("telegram bot disabled: connect failed")
		} else {
			go tg.Run(ctx)
			log.Info("telegram bot started")
		}
	} else {
		log.Warn("TELEGRAM_BOT_TOKEN not set — telegram front end disabled")
	}

	<-ctx.Done()
	log.Info("shutting down")

	shCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		log.WithError(err).Error("http shutdown")
	}
	log.Info("shutdown complete")
}
