package sqlite

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/avbrief/avbrief/pkg/logger"
)

// Import logger functions
var (
	String = logger.String
	Int    = logger.Int
	Error  = logger.Error
)

// StationRecord represents an airport entry in the station directory
type StationRecord struct {
	ICAO        string  `json:"icao"`
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	ElevationFt int     `json:"elevation_ft"`
}

// StationStorage handles the SQLite station directory, a local copy of the
// OurAirports dataset used to resolve station names and coordinates
type StationStorage struct {
	db     *sql.DB
	logger *logger.Logger
}

// NewStationStorage creates a new SQLite station storage
func NewStationStorage(db *sql.DB, logger *logger.Logger) *StationStorage {
	storage := &StationStorage{
		db:     db,
		logger: logger.Named("sqlite-stations"),
	}

	// Initialize database
	if err := storage.initDB(); err != nil {
		logger.Error("Failed to initialize station storage", Error(err))
	}

	return storage
}

// initDB initializes the database tables
func (s *StationStorage) initDB() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS stations (
			icao TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			latitude REAL NOT NULL,
			longitude REAL NOT NULL,
			elevation_ft INTEGER
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create stations table: %w", err)
	}

	return nil
}

// ImportCSV loads the OurAirports airports.csv file into the directory,
// replacing any rows that already exist. Rows without usable coordinates
// are skipped. Returns the number of imported stations.
func (s *StationStorage) ImportCSV(path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open airports CSV: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.LazyQuotes = true

	// Skip header
	if _, err := reader.Read(); err != nil {
		return 0, fmt.Errorf("failed to read CSV header: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin import transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO stations (icao, name, latitude, longitude, elevation_ft)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	count := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("failed to read CSV row: %w", err)
		}
		if len(record) < 7 {
			continue
		}

		// OurAirports columns: ident=1, name=3, lat=4, lon=5, elevation=6
		icao := record[1]
		if icao == "" {
			continue
		}
		lat, err := strconv.ParseFloat(record[4], 64)
		if err != nil {
			continue
		}
		lon, err := strconv.ParseFloat(record[5], 64)
		if err != nil {
			continue
		}
		elevFt := 0
		if record[6] != "" {
			if elev, err := strconv.ParseFloat(record[6], 64); err == nil {
				elevFt = int(elev)
			}
		}

		if _, err := stmt.Exec(icao, record[3], lat, lon, elevFt); err != nil {
			return 0, fmt.Errorf("failed to insert station %s: %w", icao, err)
		}
		count++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit import: %w", err)
	}

	s.logger.Info("Imported station directory", Int("stations", count), String("source", path))
	return count, nil
}

// GetStation looks up a station by its ICAO identifier. Returns nil with no
// error when the station is not in the directory.
func (s *StationStorage) GetStation(icao string) (*StationRecord, error) {
	row := s.db.QueryRow(
		`SELECT icao, name, latitude, longitude, elevation_ft FROM stations WHERE icao = ?`,
		icao,
	)

	var record StationRecord
	err := row.Scan(&record.ICAO, &record.Name, &record.Latitude, &record.Longitude, &record.ElevationFt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query station %s: %w", icao, err)
	}

	return &record, nil
}

// Count returns the number of stations in the directory
func (s *StationStorage) Count() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM stations`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count stations: %w", err)
	}
	return count, nil
}
