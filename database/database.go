package database

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"

	"todoapi/models"

	"github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// ErrDuplicateID is returned by CreateTodo when the id is already taken.
var ErrDuplicateID = errors.New("todo id already exists")

// InitDB opens the sqlite database at path and applies the schema.
// The handle is limited to a single connection, which also keeps
// ":memory:" databases consistent across calls.
func InitDB(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("error opening sqlite db at %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to execute schema: %w", err)
	}

	return db, nil
}

// GetTodos returns the todos matching filter ordered by id. It never
// returns a nil slice on success.
func GetTodos(ctx context.Context, db *sql.DB, filter TodoFilter) ([]models.Todo, error) {
	where, args := filter.Where()
	query := "SELECT id, todo, priority, status FROM todo WHERE " + where + " ORDER BY id"

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error loading todos: %w", err)
	}
	defer rows.Close()

	todos := []models.Todo{}
	for rows.Next() {
		var todo models.Todo
		if err := rows.Scan(&todo.ID, &todo.Todo, &todo.Priority, &todo.Status); err != nil {
			return nil, fmt.Errorf("error scanning todo: %w", err)
		}
		todos = append(todos, todo)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error scanning todos: %w", err)
	}

	return todos, nil
}

// GetTodo retrieves a single todo by its ID. A missing row is reported as
// sql.ErrNoRows.
func GetTodo(ctx context.Context, db *sql.DB, id int64) (models.Todo, error) {
	var todo models.Todo
	err := db.QueryRowContext(ctx, "SELECT id, todo, priority, status FROM todo WHERE id = ?", id).
		Scan(&todo.ID, &todo.Todo, &todo.Priority, &todo.Status)
	if err != nil {
		return models.Todo{}, err
	}
	return todo, nil
}

// CreateTodo inserts todo with its caller-supplied ID.
func CreateTodo(ctx context.Context, db *sql.DB, todo models.Todo) error {
	stmt, err := db.PrepareContext(ctx, "INSERT INTO todo(id, todo, priority, status) VALUES(?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	if _, err := stmt.ExecContext(ctx, todo.ID, todo.Todo, todo.Priority, todo.Status); err != nil {
		if isConstraintViolation(err) {
			return fmt.Errorf("%w: %d", ErrDuplicateID, todo.ID)
		}
		return fmt.Errorf("error adding todo: %w", err)
	}
	return nil
}

// UpdateTodo overwrites todo, priority and status of the row with todo.ID.
// It returns sql.ErrNoRows when no row has that ID.
func UpdateTodo(ctx context.Context, db *sql.DB, todo models.Todo) (int64, error) {
	stmt, err := db.PrepareContext(ctx, "UPDATE todo SET todo = ?, priority = ?, status = ? WHERE id = ?")
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx, todo.Todo, todo.Priority, todo.Status, todo.ID)
	if err != nil {
		return 0, fmt.Errorf("error updating todo %d: %w", todo.ID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	if rowsAffected == 0 {
		return 0, sql.ErrNoRows
	}
	return rowsAffected, nil
}

// DeleteTodo removes the todo with the given ID if it exists and reports
// how many rows were removed.
func DeleteTodo(ctx context.Context, db *sql.DB, id int64) (int64, error) {
	result, err := db.ExecContext(ctx, "DELETE FROM todo WHERE id = ?", id)
	if err != nil {
		return 0, fmt.Errorf("error deleting todo %d: %w", id, err)
	}
	return result.RowsAffected()
}

func isConstraintViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey ||
		sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}
