package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Database struct {
	Username string
	Password string
	Host     string
	Port     uint16
	DBName   string
	SSLMode  string
}

func lookup(key string) (string, error) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return "", fmt.Errorf("no %s env variable set", key)
	}
	return value, nil
}

func loadPassword() (string, error) {
	if password, ok := os.LookupEnv("POSTGRES_PASSWORD"); ok {
		return password, nil
	}
	passwordFile, err := lookup("POSTGRES_PASSWORD_FILE")
	if err != nil {
		return "", fmt.Errorf("no POSTGRES_PASSWORD set; %w", err)
	}
	data, err := os.ReadFile(passwordFile)
	if err != nil {
		return "", fmt.Errorf("unable to read from password file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func NewDatabase() (*Database, error) {
	username, err := lookup("POSTGRES_USER")
	if err != nil {
		return nil, err
	}

	password, err := loadPassword()
	if err != nil {
		return nil, fmt.Errorf("unable to load password: %w", err)
	}

	host, err := lookup("POSTGRES_HOST")
	if err != nil {
		return nil, err
	}

	portStr, err := lookup("POSTGRES_PORT")
	if err != nil {
		return nil, err
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("unable to convert port to int: %w", err)
	}

	dbName, err := lookup("POSTGRES_DB")
	if err != nil {
		return nil, err
	}

	sslMode, err := lookup("POSTGRES_SSLMODE")
	if err != nil {
		return nil, err
	}

	return &Database{
		Username: username,
		Password: password,
		Host:     host,
		Port:     uint16(port),
		DBName:   dbName,
		SSLMode:  sslMode,
	}, nil
}

func (c Database) URL() string {
	return fmt.Sprintf(
		"postgresql://%s:%s@%s:%d/%s?sslmode=%s",
		c.Username,
		url.QueryEscape(c.Password),
		c.Host,
		c.Port,
		c.DBName,
		c.SSLMode,
	)
}

func (c Database) DSN() string {
	return fmt.Sprintf(
		"user=%s password=%s host=%s port=%d dbname=%s sslmode=%s",
		c.Username, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func DbURL() (string, error) {
	if dbURL, ok := os.LookupEnv("DATABASE_URL"); ok {
		return dbURL, nil
	}
	cfg, err := NewDatabase()
	if err != nil {
		return "", fmt.Errorf("no DATABASE_URL set; %w", err)
	}
	return cfg.URL(), nil
}

func NewPgxpoolConfig() (*pgxpool.Config, error) {
	if dbURL, ok := os.LookupEnv("DATABASE_URL"); ok {
		return pgxpool.ParseConfig(dbURL)
	}
	cfg, err := NewDatabase()
	if err != nil {
		return nil, fmt.Errorf("no DATABASE_URL set; %w", err)
	}
	return pgxpool.ParseConfig(cfg.DSN())
}
