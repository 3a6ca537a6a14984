package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/clancybot/clancy/backend/internal/model/conversation"
)

// interactionRow is the persisted shape of a record; the autoincrement id
// exists only to preserve insertion order across restarts.
type interactionRow struct {
	ID                uint   `gorm:"primaryKey;autoIncrement"`
	SessionID         string `gorm:"index"`
	Name              string
	Timestamp         time.Time
	State             string
	MajorSelected     string
	CollegeResearched string
}

func (interactionRow) TableName() string { return "interactions" }

// SQLite implements InteractionLog on a local SQLite database via gorm.
type SQLite struct {
	db *gorm.DB
}

// NewSQLite opens (creating if needed) the database at path and migrates the
// interactions table.
func NewSQLite(path string) (*SQLite, error) {
	gormLog := gormLogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormLogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormLogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: gormLog})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	if err := db.AutoMigrate(&interactionRow{}); err != nil {
		return nil, fmt.Errorf("failed to migrate interactions table: %w", err)
	}

	return &SQLite{db: db}, nil
}

// Append adds a record to the log.
func (s *SQLite) Append(ctx context.Context, record conversation.InteractionRecord) error {
	row := interactionRow{
		SessionID:         record.SessionID,
		Name:              record.Name,
		Timestamp:         record.Timestamp,
		State:             string(record.State),
		MajorSelected:     record.MajorSelected,
		CollegeResearched: record.CollegeResearched,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to append interaction: %w", err)
	}
	return nil
}

// LastFor returns the latest record for the session.
func (s *SQLite) LastFor(ctx context.Context, sessionID string) (conversation.InteractionRecord, error) {
	var row interactionRow
	err := s.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("id DESC").
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return conversation.InteractionRecord{}, ErrSessionNotFound
	}
	if err != nil {
		return conversation.InteractionRecord{}, fmt.Errorf("failed to read last interaction: %w", err)
	}
	return row.toRecord(), nil
}

// AllFor returns the session's records in insertion order.
func (s *SQLite) AllFor(ctx context.Context, sessionID string) ([]conversation.InteractionRecord, error) {
	var rows []interactionRow
	err := s.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to read interactions: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrSessionNotFound
	}
	return toRecords(rows), nil
}

// MajorsFor returns the session's non-empty MajorSelected values in order.
func (s *SQLite) MajorsFor(ctx context.Context, sessionID string) ([]string, error) {
	var majors []string
	err := s.db.WithContext(ctx).
		Model(&interactionRow{}).
		Where("session_id = ? AND major_selected <> ''", sessionID).
		Order("id ASC").
		Pluck("major_selected", &majors).Error
	if err != nil {
		return nil, fmt.Errorf("failed to read selected majors: %w", err)
	}
	return majors, nil
}

// All returns every record in the log in insertion order.
func (s *SQLite) All(ctx context.Context) ([]conversation.InteractionRecord, error) {
	var rows []interactionRow
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to read interactions: %w", err)
	}
	return toRecords(rows), nil
}

// DeleteSession removes the session's records and reports whether any existed.
func (s *SQLite) DeleteSession(ctx context.Context, sessionID string) (bool, error) {
	result := s.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Delete(&interactionRow{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete session: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r interactionRow) toRecord() conversation.InteractionRecord {
	return conversation.InteractionRecord{
		SessionID:         r.SessionID,
		Name:              r.Name,
		Timestamp:         r.Timestamp,
		State:             conversation.State(r.State),
		MajorSelected:     r.MajorSelected,
		CollegeResearched: r.CollegeResearched,
	}
}

func toRecords(rows []interactionRow) []conversation.InteractionRecord {
	records := make([]conversation.InteractionRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.toRecord())
	}
	return records
}
