package credstore

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"tacgear/internal/api"
)

// Store persists bearer tokens across process restarts. It is a passive
// key/value side-store: tokens are not inspected or validated here; whether
// a token is still good is decided by the next profile fetch.
type Store struct{ db *sqlx.DB }

func Open(dsn string) (*Store, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS credentials(
  session_id TEXT NOT NULL,
  kind       TEXT NOT NULL CHECK (kind IN ('user','dealer')),
  token      TEXT NOT NULL,
  updated_at TEXT DEFAULT CURRENT_TIMESTAMP,
  PRIMARY KEY (session_id, kind)
);
CREATE INDEX IF NOT EXISTS idx_credentials_session ON credentials(session_id);
`
	_, err := db.Exec(schema)
	return err
}

func (s *Store) Put(sessionID string, kind api.Kind, token string) error {
	_, err := s.db.Exec(`
		INSERT INTO credentials(session_id, kind, token, updated_at)
		VALUES(?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(session_id, kind) DO UPDATE
		SET token = excluded.token, updated_at = CURRENT_TIMESTAMP
	`, sessionID, string(kind), token)
	return err
}

func (s *Store) Get(sessionID string, kind api.Kind) (string, bool) {
	var token string
	err := s.db.Get(&token, `SELECT token FROM credentials WHERE session_id = ? AND kind = ?`,
		sessionID, string(kind))
	if err == sql.ErrNoRows {
		return "", false
	}
	if err != nil {
		return "", false
	}
	return token, true
}

func (s *Store) Clear(sessionID string, kind api.Kind) error {
	_, err := s.db.Exec(`DELETE FROM credentials WHERE session_id = ? AND kind = ?`,
		sessionID, string(kind))
	return err
}

// ClearAll drops every credential held for the session; logout uses this for
// its total reset.
func (s *Store) ClearAll(sessionID string) error {
	_, err := s.db.Exec(`DELETE FROM credentials WHERE session_id = ?`, sessionID)
	return err
}

// Sessions lists session ids that still hold at least one credential, used
// to restore sessions after a restart.
func (s *Store) Sessions() ([]string, error) {
	var out []string
	err := s.db.Select(&out, `SELECT DISTINCT session_id FROM credentials`)
	return out, err
}

func (s *Store) Close() error { return s.db.Close() }
