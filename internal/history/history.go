package history

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const DATABASE_FILE_NAME = "history.db"

// Session outcomes.
const (
	OUTCOME_RUNNING   = "running"
	OUTCOME_SUCCEEDED = "succeeded"
	OUTCOME_FAILED    = "failed"
)

// Session is one launcher invocation.
type Session struct {
	ID         string `gorm:"primaryKey"`
	StartedAt  time.Time
	FinishedAt sql.NullTime
	Outcome    string `gorm:"not null"`
	ExitCode   int
}

// StepResult is the recorded outcome of a single bootstrap step of a session.
type StepResult struct {
	ID         uint   `gorm:"primaryKey;autoIncrement"`
	SessionID  string `gorm:"not null;index"`
	StepID     string `gorm:"not null"`
	Status     string `gorm:"not null"`
	Detail     sql.NullString
	DurationMS int64
}

// Store persists launch sessions and their step results in a SQLite database
// under the launcher data folder.
type Store struct {
	database *gorm.DB
}

func OpenStore(basePath string) (instance *Store, err error) {
	if err = os.MkdirAll(basePath, 0755); err != nil {
		return
	}
	dialector := sqlite.Open(filepath.Join(basePath, DATABASE_FILE_NAME))
	var database *gorm.DB
	if database, err = gorm.Open(dialector, &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	}); err != nil {
		return
	}
	instance = &Store{database: database}
	if err = instance.migrate(); err != nil {
		instance = nil
		return
	}
	return
}

func (store *Store) migrate() (err error) {
	return store.database.AutoMigrate(&Session{}, &StepResult{})
}

func (store *Store) Close() (err error) {
	if store.database == nil {
		return
	}
	var database *sql.DB
	if database, err = store.database.DB(); err != nil {
		return
	}
	return database.Close()
}

// BeginSession stores a new running session and returns it.
func (store *Store) BeginSession(startedAt time.Time) (session *Session, err error) {
	session = &Session{
		ID:        uuid.NewString(),
		StartedAt: startedAt,
		Outcome:   OUTCOME_RUNNING,
	}
	if result := store.database.Create(session); result.Error != nil {
		return nil, result.Error
	}
	return
}

// RecordStep appends a step result to the session.
func (store *Store) RecordStep(session *Session, stepID string, status string, detail string, duration time.Duration) (err error) {
	stepResult := &StepResult{
		SessionID:  session.ID,
		StepID:     stepID,
		Status:     status,
		DurationMS: duration.Milliseconds(),
	}
	if detail != "" {
		stepResult.Detail = sql.NullString{String: detail, Valid: true}
	}
	if result := store.database.Create(stepResult); result.Error != nil {
		return result.Error
	}
	return
}

// CloseSession marks the session finished with the given outcome and exit code.
func (store *Store) CloseSession(session *Session, outcome string, exitCode int) (err error) {
	session.FinishedAt = sql.NullTime{Time: time.Now(), Valid: true}
	session.Outcome = outcome
	session.ExitCode = exitCode
	if result := store.database.Save(session); result.Error != nil {
		return result.Error
	}
	return
}

// Sessions returns all stored sessions, most recent first.
func (store *Store) Sessions() (sessions []Session, err error) {
	if result := store.database.Order("started_at desc").Find(&sessions); result.Error != nil {
		return nil, result.Error
	}
	return
}

// StepResults returns the step results of a session in execution order.
func (store *Store) StepResults(sessionID string) (stepResults []StepResult, err error) {
	if result := store.database.Where("session_id = ?", sessionID).Order("id asc").Find(&stepResults); result.Error != nil {
		return nil, result.Error
	}
	return
}
