package mysql

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	db2 "github.com/chirper-app/chirper-be/db"
	"github.com/golang-migrate/migrate/v4"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/upper/db/v4"
	uppermysql "github.com/upper/db/v4/adapter/mysql"
)

type Config struct {
	User string
	Pass string
	Host string
	Name string
}

type MySQLDB struct {
	*PostDB
	sess  db.Session
	sqlDB *sql.DB
}

//go:embed migrations/*.sql
var migrationsFS embed.FS

func GetDatabase(cfg *Config) (db2.Database, error) {
	sqlDB, err := sql.Open("mysql",
		fmt.Sprintf("%s:%s@tcp(%s)/%s?tls=true&parseTime=true&multiStatements=true",
			cfg.User, cfg.Pass, cfg.Host, cfg.Name))
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(50)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxIdleTime(0)

	if err := runMigrations(sqlDB, cfg.Name); err != nil {
		return nil, fmt.Errorf("error running migrations: %w", err)
	}

	sess, err := uppermysql.New(sqlDB)
	if err != nil {
		return nil, err
	}

	return &MySQLDB{
		PostDB: getPostDB(sess),
		sess:   sess,
		sqlDB:  sqlDB,
	}, nil
}

func runMigrations(sqlDB *sql.DB, dbName string) error {
	driver, err := migratemysql.WithInstance(sqlDB, &migratemysql.Config{})
	if err != nil {
		return err
	}
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return err
	}
	m, err := migrate.NewWithInstance("iofs", src, dbName, driver)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

func (mdb *MySQLDB) GetSQLDB() *sql.DB {
	return mdb.sqlDB
}

func (mdb *MySQLDB) Close() error {
	return mdb.sess.Close()
}
