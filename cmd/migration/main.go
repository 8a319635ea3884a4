package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/riskibarqy/fantasy-golf/db/migrations"
	"github.com/riskibarqy/fantasy-golf/internal/app"
	"github.com/riskibarqy/fantasy-golf/internal/config"
	"github.com/riskibarqy/fantasy-golf/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fantasy-golf/internal/infrastructure/repository/postgres"
)

func main() {
	_ = godotenv.Load()

	cliApp := &cli.App{
		Name:  "migration",
		Usage: "manage the fantasy golf database schema",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "db-url",
				Usage:   "postgres connection url",
				EnvVars: []string{"DB_URL"},
			},
			&cli.BoolFlag{
				Name:    "disable-prepared-binary-result",
				Usage:   "append disable_prepared_binary_result=yes to the url",
				Value:   true,
				EnvVars: []string{"DB_DISABLE_PREPARED_BINARY_RESULT"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "up",
				Usage: "apply all pending migrations",
				Action: withMigrator(func(m *migrate.Migrate, _ *cli.Context) error {
					if err := ignoreNoChange(m.Up()); err != nil {
						return err
					}
					log.Printf("migrations applied")
					return nil
				}),
			},
			{
				Name:      "down",
				Usage:     "roll back the last N migrations",
				ArgsUsage: "[steps]",
				Action: withMigrator(func(m *migrate.Migrate, c *cli.Context) error {
					steps, err := parseSteps(c.Args().First())
					if err != nil {
						return err
					}
					if err := ignoreNoChange(m.Steps(-steps)); err != nil {
						return err
					}
					log.Printf("rolled back %d migration(s)", steps)
					return nil
				}),
			},
			{
				Name:  "version",
				Usage: "print the current schema version",
				Action: withMigrator(func(m *migrate.Migrate, _ *cli.Context) error {
					version, dirty, err := m.Version()
					if errors.Is(err, migrate.ErrNilVersion) {
						fmt.Println("version: none")
						fmt.Println("dirty: false")
						return nil
					}
					if err != nil {
						return fmt.Errorf("read version: %w", err)
					}
					fmt.Printf("version: %d\n", version)
					fmt.Printf("dirty: %t\n", dirty)
					return nil
				}),
			},
			{
				Name:      "force",
				Usage:     "set the schema version without running migrations",
				ArgsUsage: "<version>",
				Action: withMigrator(func(m *migrate.Migrate, c *cli.Context) error {
					version, err := parseVersion(c.Args().First())
					if err != nil {
						return err
					}
					if err := m.Force(version); err != nil {
						return fmt.Errorf("force version %d: %w", version, err)
					}
					log.Printf("forced version to %d", version)
					return nil
				}),
			},
			{
				Name:      "goto",
				Aliases:   []string{"migrate"},
				Usage:     "migrate up or down to a target version",
				ArgsUsage: "<version>",
				Action: withMigrator(func(m *migrate.Migrate, c *cli.Context) error {
					target, err := parseTarget(c.Args().First())
					if err != nil {
						return err
					}
					if err := ignoreNoChange(m.Migrate(target)); err != nil {
						return err
					}
					log.Printf("migrated to version %d", target)
					return nil
				}),
			},
			{
				Name:  "seed",
				Usage: "load a league dataset, skipping rows that already exist",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "file",
						Usage:   "seed yaml; the embedded dataset when empty",
						EnvVars: []string{"SEED_FILE"},
					},
				},
				Action: runSeed,
			},
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func databaseURL(c *cli.Context) (string, error) {
	raw := strings.TrimSpace(c.String("db-url"))
	if raw == "" {
		return "", errors.New("DB_URL is required")
	}
	return app.NormalizeDBURL(raw, c.Bool("disable-prepared-binary-result")), nil
}

func withMigrator(fn func(*migrate.Migrate, *cli.Context) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		dbURL, err := databaseURL(c)
		if err != nil {
			return err
		}
		m, err := migrations.NewMigrator(dbURL)
		if err != nil {
			return err
		}
		defer closeMigrator(m)
		return fn(m, c)
	}
}

func runSeed(c *cli.Context) error {
	dbURL, err := databaseURL(c)
	if err != nil {
		return err
	}
	ds, err := memory.LoadDatasetFile(c.String("file"))
	if err != nil {
		return err
	}

	db, err := app.OpenDB(c.Context, config.Config{DBURL: dbURL, DBMaxOpenConns: 2})
	if err != nil {
		return err
	}
	defer db.Close()

	result, err := postgres.Seed(c.Context, db, ds)
	if err != nil {
		return err
	}
	log.Printf("seed complete: inserted=%d skipped=%d", result.Inserted, result.Skipped)
	return nil
}

func parseSteps(raw string) (int, error) {
	if strings.TrimSpace(raw) == "" {
		return 1, nil
	}

	steps, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid down steps %q: %w", raw, err)
	}
	if steps <= 0 {
		return 0, fmt.Errorf("down steps must be > 0")
	}
	return steps, nil
}

func parseVersion(raw string) (int, error) {
	if strings.TrimSpace(raw) == "" {
		return 0, errors.New("force requires a version argument")
	}
	value, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid version %q: %w", raw, err)
	}
	if value < -1 {
		return 0, fmt.Errorf("version must be >= -1")
	}
	if value > int64(^uint(0)>>1) {
		return 0, fmt.Errorf("version is too large for this platform")
	}
	return int(value), nil
}

func parseTarget(raw string) (uint, error) {
	if strings.TrimSpace(raw) == "" {
		return 0, errors.New("goto requires a target version argument")
	}
	value, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid target version %q: %w", raw, err)
	}
	return uint(value), nil
}

func ignoreNoChange(err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		log.Printf("no migration changes")
		return nil
	}
	return err
}

func closeMigrator(m *migrate.Migrate) {
	srcErr, dbErr := m.Close()
	if srcErr != nil {
		log.Printf("close migration source: %v", srcErr)
	}
	if dbErr != nil {
		log.Printf("close migration db: %v", dbErr)
	}
}
