package probecache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"mediascan/internal/config"
	"mediascan/internal/media/codecs"
	"mediascan/internal/media/probe"
)

// Entry is one cached probe result.
type Entry struct {
	ID          string
	SourceSize  int64
	SourceMtime int64
	ProbedAt    time.Time
	Info        probe.Info
}

// Store manages probe result persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the cache database.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := filepath.Join(cfg.Paths.CacheDir, "probecache.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Save upserts a probe result for the file identified by size and mtime.
// The returned entry carries the generated identifier.
func (s *Store) Save(ctx context.Context, info probe.Info, size, mtime int64) (*Entry, error) {
	entry := &Entry{
		ID:          uuid.NewString(),
		SourceSize:  size,
		SourceMtime: mtime,
		ProbedAt:    time.Now().UTC(),
		Info:        info,
	}

	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO probe_results (
            id, source_path, source_size, source_mtime, probed_at,
            duration_ms, container, video_codec, video_resolution,
            video_bitrate_kbps, video_framerate, audio_codec,
            audio_sample_rate_hz, audio_bitrate_kbps, audio_channels
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT (source_path, source_size, source_mtime) DO UPDATE SET
            id = excluded.id,
            probed_at = excluded.probed_at,
            duration_ms = excluded.duration_ms,
            container = excluded.container,
            video_codec = excluded.video_codec,
            video_resolution = excluded.video_resolution,
            video_bitrate_kbps = excluded.video_bitrate_kbps,
            video_framerate = excluded.video_framerate,
            audio_codec = excluded.audio_codec,
            audio_sample_rate_hz = excluded.audio_sample_rate_hz,
            audio_bitrate_kbps = excluded.audio_bitrate_kbps,
            audio_channels = excluded.audio_channels`,
		entry.ID,
		info.SourcePath,
		size,
		mtime,
		entry.ProbedAt.Format(time.RFC3339Nano),
		info.DurationMs,
		nullableString(info.Container.Token()),
		nullableString(info.VideoCodec.Token()),
		nullableString(info.VideoResolution),
		nullableString(info.VideoBitrateKbps),
		nullableString(info.VideoFramerate),
		nullableString(info.AudioCodec.Token()),
		nullableString(info.AudioSampleRateHz),
		nullableString(info.AudioBitrateKbps),
		info.AudioChannels,
	)
	if err != nil {
		return nil, fmt.Errorf("save probe result: %w", err)
	}
	return entry, nil
}

// Lookup fetches the cached result for the file identified by path, size,
// and mtime. A cache miss returns (nil, nil).
func (s *Store) Lookup(ctx context.Context, path string, size, mtime int64) (*Entry, error) {
	row := s.db.QueryRowContext(
		ctx,
		selectColumns+` FROM probe_results
         WHERE source_path = ? AND source_size = ? AND source_mtime = ?`,
		path, size, mtime,
	)
	entry, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lookup probe result: %w", err)
	}
	return entry, nil
}

// List returns all cached results, most recently probed first.
func (s *Store) List(ctx context.Context) ([]*Entry, error) {
	rows, err := s.db.QueryContext(ctx, selectColumns+" FROM probe_results ORDER BY probed_at DESC")
	if err != nil {
		return nil, fmt.Errorf("list probe results: %w", err)
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan probe result: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate probe results: %w", err)
	}
	return entries, nil
}

// Clear removes every cached result and reports how many were dropped.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM probe_results")
	if err != nil {
		return 0, fmt.Errorf("clear probe results: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("count cleared results: %w", err)
	}
	return affected, nil
}

const selectColumns = `SELECT id, source_path, source_size, source_mtime, probed_at,
        duration_ms, container, video_codec, video_resolution,
        video_bitrate_kbps, video_framerate, audio_codec,
        audio_sample_rate_hz, audio_bitrate_kbps, audio_channels`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*Entry, error) {
	var (
		entry        Entry
		probedAt     string
		container    sql.NullString
		videoCodec   sql.NullString
		resolution   sql.NullString
		videoBitrate sql.NullString
		framerate    sql.NullString
		audioCodec   sql.NullString
		sampleRate   sql.NullString
		audioBitrate sql.NullString
	)

	err := row.Scan(
		&entry.ID,
		&entry.Info.SourcePath,
		&entry.SourceSize,
		&entry.SourceMtime,
		&probedAt,
		&entry.Info.DurationMs,
		&container,
		&videoCodec,
		&resolution,
		&videoBitrate,
		&framerate,
		&audioCodec,
		&sampleRate,
		&audioBitrate,
		&entry.Info.AudioChannels,
	)
	if err != nil {
		return nil, err
	}

	if parsed, err := time.Parse(time.RFC3339Nano, probedAt); err == nil {
		entry.ProbedAt = parsed
	}

	// Tokens written by older builds whose enumerations have since moved on
	// resolve to absent, preserving the closed-enum invariant.
	if container.Valid {
		entry.Info.Container, _ = codecs.ContainerFromToken(container.String)
	}
	if videoCodec.Valid {
		entry.Info.VideoCodec, _ = codecs.VideoCodecFromToken(videoCodec.String)
	}
	if audioCodec.Valid {
		entry.Info.AudioCodec, _ = codecs.AudioCodecFromToken(audioCodec.String)
	}
	entry.Info.VideoResolution = resolution.String
	entry.Info.VideoBitrateKbps = videoBitrate.String
	entry.Info.VideoFramerate = framerate.String
	entry.Info.AudioSampleRateHz = sampleRate.String
	entry.Info.AudioBitrateKbps = audioBitrate.String

	return &entry, nil
}

func nullableString(value string) any {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return value
}
