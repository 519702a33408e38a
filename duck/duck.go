//go:build duckdb_arrow

// Package duck opens DuckDB databases and materializes query results as
// Arrow record batches through the driver's Arrow interface. The interface
// is only compiled into the driver with the duckdb_arrow build tag; without
// it this package falls back to stubs that fail at Open.
package duck

import (
	"context"
	"database/sql/driver"

	"github.com/apache/arrow-go/v18/arrow"
	duckdb "github.com/marcboeker/go-duckdb/v2"
	"github.com/pkg/errors"
)

// DB is a single DuckDB connection with its Arrow query interface.
type DB struct {
	connector *duckdb.Connector
	conn      driver.Conn
	arrow     *duckdb.Arrow
}

// Open opens the DuckDB database at path. An empty path opens an in-memory
// database.
func Open(path string) (*DB, error) {
	connector, err := duckdb.NewConnector(path, nil)
	if err != nil {
		return nil, errors.Wrap(err, "opening duckdb database")
	}
	conn, err := connector.Connect(context.Background())
	if err != nil {
		connector.Close()
		return nil, errors.Wrap(err, "connecting to duckdb")
	}
	ar, err := duckdb.NewArrowFromConn(conn)
	if err != nil {
		conn.Close()
		connector.Close()
		return nil, errors.Wrap(err, "creating arrow interface")
	}
	return &DB{connector: connector, conn: conn, arrow: ar}, nil
}

// QueryRecords executes the query and returns the full sequence of result
// record batches in engine order. The records are retained so they stay valid
// after the underlying reader is released; the caller owns them.
func (db *DB) QueryRecords(ctx context.Context, query string) ([]arrow.Record, error) {
	reader, err := db.arrow.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer reader.Release()

	var recs []arrow.Record
	for reader.Next() {
		rec := reader.Record()
		rec.Retain()
		recs = append(recs, rec)
	}
	if err := reader.Err(); err != nil {
		for _, rec := range recs {
			rec.Release()
		}
		return nil, err
	}
	return recs, nil
}

func (db *DB) Close() error {
	err := db.conn.Close()
	if cerr := db.connector.Close(); err == nil {
		err = cerr
	}
	return err
}
