package db

import (
	"database/sql"
	"embed"
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"
)

const (
	maxOpenConns = 300
	maxIdleConns = 100
	connMaxLife  = time.Minute * 15

	databaseName  = "battleship"
	migrationPath = "migration"
)

//go:embed migration/*.sql
var migrationFS embed.FS

func MustMigrate(db *sql.DB) {
	if err := Migrate(db); err != nil {
		panic(err)
	}
}

// Applies the embedded migrations. Already being at the latest
// version is not an error.
func Migrate(db *sql.DB) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{
		DatabaseName: databaseName,
	})
	if err != nil {
		return err
	}

	source, err := iofs.New(migrationFS, migrationPath)
	if err != nil {
		return err
	}

	m, err := migrate.NewWithInstance("iofs", source, databaseName, driver)
	if err != nil {
		return err
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return err
	}
	if dirty {
		return errors.New("database is dirty")
	}
	log.Info("migration version", "version", version)

	if err = m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return nil
		}
		return err
	}
	log.Info("migration successful")
	return nil
}

func MustConnectToDb(psqlUrl string) *sql.DB {
	// Open may just validate its arguments without creating a connection to the database
	db, err := sql.Open("postgres", psqlUrl)
	if err != nil {
		panic(err)
	}

	if err := db.Ping(); err != nil {
		panic(err)
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxLifetime(connMaxLife)

	MustMigrate(db)
	return db
}
