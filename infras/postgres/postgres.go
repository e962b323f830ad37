package postgres

//nolint:revive
import (
	"desk/config"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	StoreDriver = config.StoreDriverPostgres

	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
)

type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

// New connects only when postgres is the selected store driver; with the
// csv driver the connection is nil.
func New(config *config.Config) *Connection {
	if config.Store.Driver != StoreDriver {
		log.Debug().Str("driver", config.Store.Driver).Msg("Postgres store disabled")

		return nil
	}

	pg := config.DB.Postgres

	read := Connect("read", pg.Read, pg.Prefix, pg.MaxRetry, pg.RetryWaitTime)
	write := Connect("write", pg.Write, pg.Prefix, pg.MaxRetry, pg.RetryWaitTime)

	if read == nil || write == nil {
		log.Error().Msg("Postgres store unavailable after retries")

		return nil
	}

	return &Connection{
		Read:  read,
		Write: write,
	}
}

// Close releases both pools.
func (c *Connection) Close() error {
	if c == nil {
		return nil
	}

	if err := c.Read.Close(); err != nil {
		return fmt.Errorf("failed to close read connection: %w", err)
	}

	if err := c.Write.Close(); err != nil {
		return fmt.Errorf("failed to close write connection: %w", err)
	}

	return nil
}

// Connect opens a pool to endpoint, retrying maxRetry times waitTime seconds
// apart. It returns nil when every attempt failed.
func Connect(name string, endpoint config.PostgresEndpoint, prefix string, maxRetry, waitTime int) *sqlx.DB {
	dbName := prefix + endpoint.Name
	logger := log.With().
		Str("name", name).
		Str("host", endpoint.Host).
		Str("port", endpoint.Port).
		Str("dbName", dbName).
		Logger()

	for attempt := 1; attempt <= maxRetry; attempt++ {
		db, err := sqlx.Connect("postgres", endpoint.URL(prefix, nil))
		if err == nil {
			logger.Info().Msg("Connected to database")
			db.SetMaxIdleConns(postgresMaxIdleConnection)
			db.SetMaxOpenConns(postgresMaxOpenConnection)

			return db
		}

		logger.Error().Err(err).Int("attempt", attempt).Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	return nil
}
