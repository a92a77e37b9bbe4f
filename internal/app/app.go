package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexedwards/scs/goredisstore"
	"github.com/alexedwards/scs/v2"
	"github.com/exaring/otelpgx"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/ticket-service/internal/domain"
	"github.com/metinatakli/ticket-service/internal/repository"
	"github.com/metinatakli/ticket-service/internal/service"
	"github.com/metinatakli/ticket-service/internal/session"
	appvalidator "github.com/metinatakli/ticket-service/internal/validator"
	"github.com/metinatakli/ticket-service/internal/vcs"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel"
)

const serviceName = "ticket-service"

var (
	version = vcs.Version()
)

type Application struct {
	config         Config
	logger         *slog.Logger
	db             *pgxpool.Pool
	redis          redis.UniversalClient
	validator      *validator.Validate
	sessionManager *scs.SessionManager
	sessions       domain.SessionProvider
	metrics        *metrics

	userService      *service.UserService
	movieService     *service.MovieService
	roomService      *service.RoomService
	screeningService *service.ScreeningService
	pricingService   *service.PricingService
	bookingService   *service.BookingService
}

type Config struct {
	Port             int
	Env              string
	DB               DBConfig
	Redis            RedisConfig
	OtelCollectorUrl string
	BasePrice        int
	AdminPassword    string
	SingleSession    bool
}

type DBConfig struct {
	DSN          string
	MaxOpenConns int
	MaxIdleTime  time.Duration
}

type RedisConfig struct {
	URL          string
	MaxOpenConns int
	MaxIdleConns int
	MaxIdleTime  time.Duration
}

func Run() error {
	var cfg Config

	flag.IntVar(&cfg.Port, "port", 3000, "server port")
	flag.StringVar(&cfg.Env, "env", "dev", "Environment (dev|staging|prod)")

	flag.StringVar(&cfg.DB.DSN, "db-dsn", "", "PostgreSQL DSN")
	flag.IntVar(&cfg.DB.MaxOpenConns, "db-max-open-conns", 25, "PostgreSQL max open connections")
	flag.DurationVar(&cfg.DB.MaxIdleTime, "db-max-idle-time", 15*time.Minute, "PostgreSQL max idle time for connections")

	flag.StringVar(&cfg.Redis.URL, "redis-url", "", "Redis URL (empty keeps sessions and base price in memory)")
	flag.IntVar(&cfg.Redis.MaxOpenConns, "redis-max-open-conns", 25, "Redis max open connections")
	flag.IntVar(&cfg.Redis.MaxIdleConns, "redis-max-idle-conns", 10, "Redis max idle connections")
	flag.DurationVar(&cfg.Redis.MaxIdleTime, "redis-max-idle-time", 2*time.Minute, "Redis max idle time for connections")

	flag.StringVar(&cfg.OtelCollectorUrl, "otel-collector-url", "", "OpenTelemetry collector gRPC endpoint")

	flag.IntVar(&cfg.BasePrice, "base-price", domain.DefaultBasePrice, "Initial base price of a ticket in HUF")
	flag.StringVar(&cfg.AdminPassword, "admin-password", "password", "Password of the seeded admin account")

	flag.BoolVar(&cfg.SingleSession, "single-session", false, "Share one signed in identity between all clients (single operator mode)")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	shutdownTelemetry, err := (&Application{config: cfg, logger: logger}).InitTelemetry()
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	if cfg.OtelCollectorUrl != "" {
		logger = slog.New(NewMultiHandler(logger.Handler(), otelslog.NewHandler(serviceName)))
	}

	app, cleanup, err := New(cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	return app.serve()
}

// New connects to the stores named in cfg, wires the services and seeds the
// admin account. The returned cleanup closes every connection.
func New(cfg Config, logger *slog.Logger) (*Application, func(), error) {
	db, err := newDatabasePool(cfg)
	if err != nil {
		return nil, nil, err
	}

	m, err := newMetrics(otel.Meter(serviceName))
	if err != nil {
		db.Close()
		return nil, nil, err
	}

	app := &Application{
		config:         cfg,
		logger:         logger,
		db:             db,
		validator:      appvalidator.NewValidator(),
		sessionManager: scs.New(),
		metrics:        m,
	}

	cleanup := func() {
		db.Close()
	}

	var (
		basePrice domain.BasePriceStore = service.NewBasePrice(cfg.BasePrice)
		locker    domain.SeatLocker     = service.NopSeatLocker{}
	)

	if cfg.Redis.URL != "" {
		redisClient, err := newRedisClient(cfg)
		if err != nil {
			db.Close()
			return nil, nil, err
		}

		app.redis = redisClient
		app.sessionManager = newSessionManager(redisClient)

		basePrice = repository.NewRedisBasePriceStore(redisClient, cfg.BasePrice)
		locker = repository.NewRedisSeatLocker(redisClient)

		cleanup = func() {
			redisClient.Close()
			db.Close()
		}
	} else {
		logger.Warn("redis url not set, sessions and base price are kept in memory")
		app.sessionManager.Cookie.Name = "session_id"
	}

	app.sessions = newSessionProvider(cfg, app.sessionManager, logger)

	movieRepo := repository.NewPostgresMovieRepository(db)
	roomRepo := repository.NewPostgresRoomRepository(db)
	screeningRepo := repository.NewPostgresScreeningRepository(db)
	componentRepo := repository.NewPostgresPricingComponentRepository(db)
	bookingRepo := repository.NewPostgresBookingRepository(db)
	userRepo := repository.NewPostgresUserRepository(db)

	app.userService = service.NewUserService(userRepo, app.sessions, logger)
	app.movieService = service.NewMovieService(movieRepo, app.sessions, logger)
	app.roomService = service.NewRoomService(roomRepo, app.sessions, logger)
	app.screeningService = service.NewScreeningService(screeningRepo, movieRepo, roomRepo, app.sessions, logger)
	app.pricingService = service.NewPricingService(
		componentRepo, movieRepo, roomRepo, screeningRepo, basePrice, app.sessions, logger)
	app.bookingService = service.NewBookingService(
		bookingRepo, screeningRepo, app.pricingService, locker, app.sessions, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = app.userService.EnsureAdmin(ctx, cfg.AdminPassword)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	return app, cleanup, nil
}

func newSessionProvider(cfg Config, sm *scs.SessionManager, logger *slog.Logger) domain.SessionProvider {
	if cfg.SingleSession {
		logger.Warn("single session mode, all clients share the signed in identity")
		return session.NewLocal()
	}

	return session.NewManager(sm)
}

func newSessionManager(client *redis.Client) *scs.SessionManager {
	sessionManager := scs.New()

	sessionManager.Store = goredisstore.New(client)
	sessionManager.IdleTimeout = 20 * time.Minute
	sessionManager.Cookie.Name = "session_id"

	return sessionManager
}

func newRedisClient(cfg Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:            cfg.Redis.URL,
		MaxIdleConns:    cfg.Redis.MaxIdleConns,
		MaxActiveConns:  cfg.Redis.MaxOpenConns,
		ConnMaxIdleTime: cfg.Redis.MaxIdleTime,
	})

	err := errors.Join(redisotel.InstrumentTracing(rdb), redisotel.InstrumentMetrics(rdb))
	if err != nil {
		rdb.Close()
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = rdb.Ping(ctx).Err()
	if err != nil {
		rdb.Close()
		return nil, err
	}

	return rdb, nil
}

func newDatabasePool(cfg Config) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	config.MaxConnIdleTime = cfg.DB.MaxIdleTime
	config.MaxConns = int32(cfg.DB.MaxOpenConns)
	config.ConnConfig.Tracer = otelpgx.NewTracer()

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = db.Ping(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func (app *Application) serve() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		shutdownError <- srv.Shutdown(ctx)
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.Env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}
