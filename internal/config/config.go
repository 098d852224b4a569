// internal/config/config.go
package config

import (
	"fmt"
	"net"
	"net/url"

	"github.com/caarlos0/env/v11"
)

// Default database hosts for each service.
const (
	ViewerDBHost = "customer-db"
	APIDBHost    = "database-crm"
)

// Database holds the connection settings shared by both services.
// DB_HOST has no tag default because each service has its own.
type Database struct {
	Host     string `env:"DB_HOST"`
	Port     string `env:"DB_PORT"     envDefault:"5432"`
	Name     string `env:"DB_NAME"     envDefault:"demo_db"`
	User     string `env:"DB_USER"     envDefault:"postgres"`
	Password string `env:"DB_PASSWORD" envDefault:"postgres123"`
	SSLMode  string `env:"DB_SSLMODE"  envDefault:"disable"`
}

// DSN builds a lib/pq connection URL. Credentials are escaped.
func (d Database) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     net.JoinHostPort(d.Host, d.Port),
		Path:     "/" + d.Name,
		RawQuery: url.Values{"sslmode": {d.SSLMode}}.Encode(),
	}
	return u.String()
}

// Target is the host:port/name triple, safe to log.
func (d Database) Target() string {
	return fmt.Sprintf("%s:%s/%s", d.Host, d.Port, d.Name)
}

type Viewer struct {
	Port string `env:"PORT" envDefault:"8080"`
	DB   Database
}

type API struct {
	Port      string `env:"PORT"       envDefault:"8080"`
	StaticDir string `env:"STATIC_DIR" envDefault:"/app/static"`
	DB        Database
}

type Seeder struct {
	SeedDir string `env:"SEED_DIR" envDefault:"seed"`
	DB      Database
}

// LoadViewer reads the HTML service configuration from the environment.
func LoadViewer() (*Viewer, error) {
	var cfg Viewer
	if err := parse(&cfg); err != nil {
		return nil, err
	}
	cfg.DB.defaultHost(ViewerDBHost)
	return &cfg, nil
}

// LoadAPI reads the JSON/API service configuration from the environment.
func LoadAPI() (*API, error) {
	var cfg API
	if err := parse(&cfg); err != nil {
		return nil, err
	}
	cfg.DB.defaultHost(APIDBHost)
	return &cfg, nil
}

// LoadSeeder reads the seeder configuration. It targets the viewer's
// database unless DB_HOST says otherwise.
func LoadSeeder() (*Seeder, error) {
	var cfg Seeder
	if err := parse(&cfg); err != nil {
		return nil, err
	}
	cfg.DB.defaultHost(ViewerDBHost)
	return &cfg, nil
}

func (d *Database) defaultHost(host string) {
	if d.Host == "" {
		d.Host = host
	}
}

func parse(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
