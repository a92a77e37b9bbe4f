package integration_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/golang-migrate/migrate/v4"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	pgxstd "github.com/jackc/pgx/v5/stdlib"
	"github.com/metinatakli/ticket-service/internal/domain"
	"github.com/metinatakli/ticket-service/internal/repository"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/testcontainers/testcontainers-go/wait"
)

// seedUser is an account created right after the migrations and kept across
// the per-test truncation.
type seedUser struct {
	Username string
	Password string
	Role     domain.Role
}

type dbOptions struct {
	Image          string
	Database       string
	User           string
	Password       string
	MigrationsPath string
	Seeds          []seedUser
}

func defaultDbOptions() dbOptions {
	return dbOptions{
		Image:          dbImageName,
		Database:       dbName,
		User:           dbUser,
		Password:       dbPassword,
		MigrationsPath: "file://../../migrations",
		Seeds: []seedUser{
			{Username: TestUsername, Password: TestUserPassword, Role: domain.RoleUser},
		},
	}
}

func (o dbOptions) seededUsernames() []string {
	names := make([]string, len(o.Seeds))
	for i, seed := range o.Seeds {
		names[i] = seed.Username
	}

	return names
}

type PostgresContainer struct {
	Container        *postgres.PostgresContainer
	ConnectionString string
}

type RedisContainer struct {
	Container        *tcredis.RedisContainer
	ConnectionString string
}

func getDbContainer(ctx context.Context, opts dbOptions) (*PostgresContainer, error) {
	dsn := func(host string, port nat.Port) string {
		return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
			opts.User, opts.Password, host, port.Port(), opts.Database)
	}

	container, err := postgres.Run(ctx, opts.Image,
		postgres.WithDatabase(opts.Database),
		postgres.WithUsername(opts.User),
		postgres.WithPassword(opts.Password),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
			wait.ForSQL("5432/tcp", "pgx", dsn).WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start DB container: %w", err)
	}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, fmt.Errorf("failed to get connection string: %w", err)
	}

	err = runMigrations(connStr, opts.MigrationsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	err = seedUsers(ctx, connStr, opts.Seeds)
	if err != nil {
		return nil, fmt.Errorf("failed to seed users: %w", err)
	}

	return &PostgresContainer{
		Container:        container,
		ConnectionString: connStr,
	}, nil
}

func runMigrations(dsn string, migrationsPath string) error {
	config, err := pgx.ParseConfig(dsn)
	if err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	db := pgxstd.OpenDB(*config)
	defer db.Close()

	driver, err := pgxmigrate.WithInstance(db, &pgxmigrate.Config{})
	if err != nil {
		return fmt.Errorf("pgx migration driver error: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(migrationsPath, "pgx", driver)
	if err != nil {
		return fmt.Errorf("migrate.New error: %w", err)
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration failed: %w", err)
	}

	return nil
}

// seedUsers goes through the user repository so the stored hashes are the
// ones sign in expects.
func seedUsers(ctx context.Context, dsn string, seeds []seedUser) error {
	db, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	users := repository.NewPostgresUserRepository(db)

	for _, seed := range seeds {
		user := domain.User{Username: seed.Username, Role: seed.Role}

		err = user.Password.Set(seed.Password)
		if err != nil {
			return err
		}

		err = users.Create(ctx, &user)
		if err != nil && !errors.Is(err, domain.ErrAlreadyExists) {
			return fmt.Errorf("seed %s: %w", seed.Username, err)
		}
	}

	return nil
}

func getCacheContainer(ctx context.Context) (*RedisContainer, error) {
	container, err := tcredis.Run(ctx, cacheImageName)
	if err != nil {
		return nil, fmt.Errorf("failed to start cache container: %w", err)
	}

	connStr, err := container.ConnectionString(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get cache connection string: %w", err)
	}

	// go-redis Options.Addr wants host:port
	return &RedisContainer{
		Container:        container,
		ConnectionString: strings.TrimPrefix(connStr, "redis://"),
	}, nil
}
