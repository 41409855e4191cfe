package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	"github.com/tu-usuario/groundnut-admin/internal/application/importer"
	"github.com/tu-usuario/groundnut-admin/internal/application/reports"
	"github.com/tu-usuario/groundnut-admin/internal/infrastructure/localstore"
	infrapdf "github.com/tu-usuario/groundnut-admin/internal/infrastructure/pdf"
	"github.com/tu-usuario/groundnut-admin/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/groundnut-admin/internal/interfaces/http"
	"github.com/tu-usuario/groundnut-admin/internal/notify"
	"github.com/tu-usuario/groundnut-admin/internal/store"
	"github.com/tu-usuario/groundnut-admin/pkg/config"
	"github.com/tu-usuario/groundnut-admin/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	kv, err := localstore.New(cfg.Store.DataDir, log)
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.Store.DataDir).Msg("almacén local")
	}

	// Transportes de notificación entre sesiones: watcher de archivos siempre;
	// Redis pub/sub solo si está configurado. Cualquier transporte que falle al
	// arrancar se descarta y la convergencia queda a cargo del poll.
	transports := []notify.Transport{notify.NewFileTransport(cfg.Store.DataDir, log)}

	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()
		transports = append(transports, notify.NewRedisTransport(redisClient, cfg.Sync.Channel, log))
	}

	hub := notify.NewHub(log, transports...)
	s := store.New(store.Options{
		KV:       kv,
		Log:      log,
		Notifier: hub,
	})

	hub.Start(ctx)
	defer hub.Close()

	// Al recibir una notificación de otra sesión se reconcilia contra el
	// almacén durable; la operación es idempotente, los ecos no molestan.
	unsubscribe := hub.Subscribe(func(notify.Event) {
		s.ResyncAlerts()
	})
	defer unsubscribe()

	poller := notify.NewPoller(kv, s, cfg.Sync.PollInterval, log)
	poller.Start(ctx)

	// Datastore remoto opcional: importación inicial y re-importación al
	// recibir NOTIFY del canal configurado.
	if cfg.DB.Enabled() {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()

		imp := importer.New(postgres.NewSource(pool), s, log)
		summary := imp.Run(ctx)
		log.Info().
			Interface("added", summary.Added).
			Int("failed", len(summary.Failed)).
			Msg("importación inicial completada")

		listener := postgres.NewListener(pool, cfg.Sync.Channel, log)
		stopListener := listener.Start(ctx, func(string) {
			imp.Run(ctx)
		})
		defer stopListener()
	}

	reportsSvc := reports.NewService(s, nil)
	pdfGenerator := infrapdf.NewSummaryGenerator(cfg.App.Name)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		Store:      s,
		Reports:    reportsSvc,
		PDF:        pdfGenerator,
		JWTSecret:  cfg.JWT.Secret,
		JWTIssuer:  cfg.JWT.Issuer,
		JWTExpMins: cfg.JWT.Expiration,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	stop()
	poller.Wait()

	log.Info().Msg("aplicación detenida")
}
