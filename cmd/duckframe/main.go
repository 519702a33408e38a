package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	_ "net/http/pprof"

	"github.com/apache/arrow/go/v10/arrow/array"
	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gopkg.in/alecthomas/kingpin.v2"

	"duckframe/duck"
	"duckframe/frame"
)

type Options struct {
	// SQL query to run.
	SQL string
	// Path to a DuckDB database file. Empty opens an in-memory database.
	DBPath string
	// Expose metrics and pprof on localhost:8080.
	Debug bool
}

func (o *Options) BindFlags(app *kingpin.Application) error {
	app.Flag("sql", "SQL query to run.").Required().StringVar(&o.SQL)
	app.Flag("db", "Path to a DuckDB database file. Empty opens an in-memory database.").
		Default("").StringVar(&o.DBPath)
	app.Flag("debug", "Expose metrics and pprof on localhost:8080.").BoolVar(&o.Debug)

	_, err := app.Parse(os.Args[1:])
	return err
}

func main() {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))

	app := kingpin.New("duckframe", "Run a SQL query against DuckDB and materialize the result as an Arrow table.")
	opts := Options{}
	if err := (&opts).BindFlags(app); err != nil {
		level.Error(logger).Log("msg", "parsing flags", "err", err)
		os.Exit(1)
	}

	if opts.Debug {
		go func() {
			http.Handle("/metrics", promhttp.Handler())
			level.Error(logger).Log("err", http.ListenAndServe("localhost:8080", nil))
		}()
	}

	db, err := duck.Open(opts.DBPath)
	if err != nil {
		level.Error(logger).Log("msg", "opening database", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	level.Info(logger).Log("msg", "running query", "sql", opts.SQL)
	table, err := frame.Query(context.Background(), db, opts.SQL)
	if err != nil {
		level.Error(logger).Log("msg", "materializing result", "err", err)
		os.Exit(1)
	}
	defer table.Release()

	level.Info(logger).Log("msg", "query complete", "rows", table.NumRows(), "columns", table.NumCols())
	for _, field := range table.Schema().Fields() {
		level.Info(logger).Log("column", field.Name, "type", field.Type)
	}

	reader := array.NewTableReader(table, 1024)
	defer reader.Release()
	for reader.Next() {
		fmt.Println(reader.Record())
	}
}
