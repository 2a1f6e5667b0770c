// store/postgres.go
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// PostgresStore keeps each document as one jsonb row. Patches use jsonb
// concatenation for sets and the `-` operator for field deletion, so a deleted
// field is truly absent afterward.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore connects using the DB_* environment variables and ensures
// the documents table exists
func NewPostgresStore() (*PostgresStore, error) {
	host := getEnvOrDefault("DB_HOST", "localhost")
	port := getEnvOrDefault("DB_PORT", "5432")
	user := getEnvOrDefault("DB_USER", "postgres")
	password := getEnvOrDefault("DB_PASSWORD", "postgres")
	dbname := getEnvOrDefault("DB_NAME", "topvan")

	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %v", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS documents (
        collection TEXT NOT NULL,
        id TEXT NOT NULL,
        data JSONB NOT NULL,
        PRIMARY KEY (collection, id)
    )`)
	if err != nil {
		return nil, fmt.Errorf("failed to create documents table: %v", err)
	}

	log.Println("Successfully connected to the database")
	return &PostgresStore{db: db}, nil
}

// Close closes the database connection
func (s *PostgresStore) Close() {
	if s.db != nil {
		s.db.Close()
	}
}

// List returns every document in a collection
func (s *PostgresStore) List(collection string) ([]Record, error) {
	rows, err := s.db.Query(
		"SELECT id, data FROM documents WHERE collection = $1",
		collection,
	)
	if err != nil {
		return nil, unavailable("list", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// Query returns documents containing every field/value pair in filter, using
// jsonb containment so equality is typed (strings, numbers, booleans)
func (s *PostgresStore) Query(collection string, filter map[string]interface{}) ([]Record, error) {
	filterJSON, err := json.Marshal(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal filter: %v", err)
	}

	rows, err := s.db.Query(
		"SELECT id, data FROM documents WHERE collection = $1 AND data @> $2::jsonb",
		collection, string(filterJSON),
	)
	if err != nil {
		return nil, unavailable("query", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// Add stores a new document under a fresh id
func (s *PostgresStore) Add(collection string, doc map[string]interface{}) (string, error) {
	docJSON, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to marshal document: %v", err)
	}

	id := uuid.New().String()
	_, err = s.db.Exec(
		"INSERT INTO documents (collection, id, data) VALUES ($1, $2, $3)",
		collection, id, string(docJSON),
	)
	if err != nil {
		return "", unavailable("add", err)
	}
	return id, nil
}

// Patch applies a partial update to one document
func (s *PostgresStore) Patch(collection, id string, update Update) error {
	return s.patch(s.db, collection, id, update)
}

// Delete removes one document
func (s *PostgresStore) Delete(collection, id string) error {
	return s.delete(s.db, collection, id)
}

// Batch applies every operation in a single transaction
func (s *PostgresStore) Batch(ops []WriteOp) error {
	tx, err := s.db.Begin()
	if err != nil {
		return unavailable("batch", err)
	}
	defer tx.Rollback()

	for _, op := range ops {
		switch op.Kind {
		case OpPatch:
			if err := s.patch(tx, op.Collection, op.ID, op.Patch); err != nil {
				return err
			}
		case OpDelete:
			if err := s.delete(tx, op.Collection, op.ID); err != nil {
				return err
			}
		}
	}
	return tx.Commit()
}

// execer covers *sql.DB and *sql.Tx
type execer interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
}

func (s *PostgresStore) patch(e execer, collection, id string, update Update) error {
	set := update.Set
	if set == nil {
		set = map[string]interface{}{}
	}
	setJSON, err := json.Marshal(set)
	if err != nil {
		return fmt.Errorf("failed to marshal patch: %v", err)
	}

	deleted := update.Delete
	if deleted == nil {
		deleted = []string{}
	}

	result, err := e.Exec(
		"UPDATE documents SET data = (data || $3::jsonb) - $4::text[] WHERE collection = $1 AND id = $2",
		collection, id, string(setJSON), pq.Array(deleted),
	)
	if err != nil {
		return unavailable("patch", err)
	}
	return checkAffected(result, collection, id, "patch")
}

func (s *PostgresStore) delete(e execer, collection, id string) error {
	result, err := e.Exec(
		"DELETE FROM documents WHERE collection = $1 AND id = $2",
		collection, id,
	)
	if err != nil {
		return unavailable("delete", err)
	}
	return checkAffected(result, collection, id, "delete")
}

func checkAffected(result sql.Result, collection, id, op string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return unavailable(op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s %s/%s: %w", op, collection, id, ErrNotFound)
	}
	return nil
}

func scanRecords(rows *sql.Rows) ([]Record, error) {
	var records []Record
	for rows.Next() {
		var id string
		var raw []byte
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, unavailable("scan", err)
		}
		var data map[string]interface{}
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("failed to unmarshal document %s: %v", id, err)
		}
		records = append(records, Record{ID: id, Data: data})
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("rows", err)
	}
	return records, nil
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %v: %w", op, err, ErrUnavailable)
}

// Helper function to get environment variable with default value
func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
