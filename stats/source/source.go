// Package source loads scouting records exported by the scouting app.
// JSON and CSV exports are read from files; submissions stored by the intake
// server are read from SQLite.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Mahadih534/FalconVis/stats"
	"github.com/sirupsen/logrus"
)

var (
	// ErrMissingColumn is returned when a required structural column is absent.
	ErrMissingColumn = errors.New("missing required column")

	// ErrUnsupportedFormat is returned by Load for unknown file extensions.
	ErrUnsupportedFormat = errors.New("unsupported dataset format")
)

// Load reads the dataset at path, picking the reader by extension, and builds
// a stats.Dataset from it. eventKey filters SQLite sources and is ignored for
// files that hold a single event.
func Load(ctx context.Context, path, eventKey string) (*stats.Dataset, error) {
	records, err := loadRecords(ctx, path, eventKey)
	if err != nil {
		return nil, err
	}
	ds, err := stats.NewDataset(records)
	if err != nil {
		return nil, fmt.Errorf("building dataset from %s: %w", path, err)
	}
	logrus.Infof("loaded %d records for %d teams from %s", ds.Len(), len(ds.TeamRoster()), path)
	return ds, nil
}

func loadRecords(ctx context.Context, path, eventKey string) ([]stats.Record, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return loadFile(path, LoadJSON)
	case ".csv":
		return loadFile(path, LoadCSV)
	case ".db", ".sqlite", ".sqlite3":
		return LoadSQLite(ctx, path, eventKey)
	default:
		return nil, fmt.Errorf("%w: %q (want .json, .csv, .db or .sqlite)", ErrUnsupportedFormat, ext)
	}
}

func loadFile(path string, decode func(io.Reader) ([]stats.Record, error)) ([]stats.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()
	records, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return records, nil
}

// structural splits the structural columns out of a raw row.
func structural(row map[string]any) (stats.Record, error) {
	for _, col := range stats.RequiredFields {
		if _, ok := row[col]; !ok {
			return stats.Record{}, fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
	}
	team, err := stats.ParseTeamNumber(row[stats.FieldTeamNumber])
	if err != nil {
		return stats.Record{}, err
	}
	key, _ := row[stats.FieldMatchKey].(string)
	if key == "" && row[stats.FieldMatchKey] != nil {
		key = fmt.Sprint(row[stats.FieldMatchKey])
	}
	fields := make(map[string]any, len(row))
	for k, v := range row {
		switch k {
		case stats.FieldMatchKey, stats.FieldTeamNumber, stats.FieldMatchNumber:
			continue
		}
		fields[k] = v
	}
	return stats.Record{MatchKey: strings.TrimSpace(key), TeamNumber: team, Fields: fields}, nil
}
