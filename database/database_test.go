package database

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"todoapi/models"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB initializes an in-memory SQLite database for testing.
// It returns the database connection and a teardown function to close the DB.
func setupTestDB(t *testing.T) (*sql.DB, func()) {
	db, err := InitDB(context.Background(), ":memory:")
	require.NoError(t, err, "Failed to initialize test database")

	teardown := func() {
		err := db.Close()
		require.NoError(t, err, "Failed to close test database")
	}

	return db, teardown
}

func seed(t *testing.T, db *sql.DB, todos ...models.Todo) {
	for _, todo := range todos {
		require.NoError(t, CreateTodo(context.Background(), db, todo))
	}
}

func strPtr(s string) *string { return &s }

func TestInitDB(t *testing.T) {
	t.Run("schema is idempotent", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "todos.db")

		db, err := InitDB(context.Background(), path)
		require.NoError(t, err)
		seed(t, db, models.Todo{ID: 1, Todo: "Buy milk", Priority: "HIGH", Status: "TO DO"})
		require.NoError(t, db.Close())

		db, err = InitDB(context.Background(), path)
		require.NoError(t, err)
		defer db.Close()

		todo, err := GetTodo(context.Background(), db, 1)
		require.NoError(t, err)
		assert.Equal(t, "Buy milk", todo.Todo)
	})

	t.Run("unreachable file", func(t *testing.T) {
		db, err := InitDB(context.Background(), "/alwfkjasfd/asdflkjdsal.sqlite")
		assert.Nil(t, db)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to execute schema")
	})
}

func TestCreateTodo(t *testing.T) {
	db, teardown := setupTestDB(t)
	defer teardown()

	todo := models.Todo{ID: 1, Todo: "Buy milk", Priority: "HIGH", Status: "TO DO"}
	require.NoError(t, CreateTodo(context.Background(), db, todo), "CreateTodo should not produce an error")

	var fetched models.Todo
	err := db.QueryRow("SELECT id, todo, priority, status FROM todo WHERE id = ?", 1).Scan(
		&fetched.ID, &fetched.Todo, &fetched.Priority, &fetched.Status,
	)
	require.NoError(t, err, "Failed to fetch created todo for verification")
	assert.Equal(t, todo, fetched)

	t.Run("duplicate id", func(t *testing.T) {
		err := CreateTodo(context.Background(), db, models.Todo{ID: 1, Todo: "again", Priority: "LOW", Status: "DONE"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrDuplicateID), "Error should be ErrDuplicateID, got %v", err)
	})

	t.Run("values are bound, not interpolated", func(t *testing.T) {
		hostile := models.Todo{ID: 2, Todo: "x'); DROP TABLE todo; --", Priority: "HIGH", Status: "TO DO"}
		require.NoError(t, CreateTodo(context.Background(), db, hostile))

		fetched, err := GetTodo(context.Background(), db, 2)
		require.NoError(t, err)
		assert.Equal(t, hostile.Todo, fetched.Todo)
	})
}

func TestGetTodo(t *testing.T) {
	db, teardown := setupTestDB(t)
	defer teardown()

	created := models.Todo{ID: 7, Todo: "Read a book", Priority: "MEDIUM", Status: "IN PROGRESS"}
	seed(t, db, created)

	t.Run("successful retrieval", func(t *testing.T) {
		fetched, err := GetTodo(context.Background(), db, 7)
		require.NoError(t, err, "GetTodo should not error for existing ID")
		assert.Equal(t, created, fetched)
	})

	t.Run("non-existent todo", func(t *testing.T) {
		_, err := GetTodo(context.Background(), db, 99999)
		require.Error(t, err, "GetTodo should error for non-existent ID")
		assert.True(t, errors.Is(err, sql.ErrNoRows), "Error should be sql.ErrNoRows")
	})
}

func TestGetTodos(t *testing.T) {
	db, teardown := setupTestDB(t)
	defer teardown()

	t.Run("empty database", func(t *testing.T) {
		todos, err := GetTodos(context.Background(), db, TodoFilter{})
		require.NoError(t, err, "GetTodos should not error on empty DB")
		assert.NotNil(t, todos)
		assert.Empty(t, todos)
	})

	learnGo := models.Todo{ID: 1, Todo: "Learn Go", Priority: "HIGH", Status: "DONE"}
	buyMilk := models.Todo{ID: 2, Todo: "Buy milk", Priority: "HIGH", Status: "TO DO"}
	learnSQL := models.Todo{ID: 3, Todo: "Learn SQL", Priority: "LOW", Status: "DONE"}
	discount := models.Todo{ID: 4, Todo: "Find 50% discount", Priority: "LOW", Status: "IN PROGRESS"}
	seed(t, db, learnSQL, buyMilk, learnGo, discount)

	tests := map[string]struct {
		filter   TodoFilter
		expected []models.Todo
	}{
		"no filter returns all ordered by id": {
			filter:   TodoFilter{},
			expected: []models.Todo{learnGo, buyMilk, learnSQL, discount},
		},
		"search only": {
			filter:   TodoFilter{SearchQ: "Learn"},
			expected: []models.Todo{learnGo, learnSQL},
		},
		"priority only": {
			filter:   TodoFilter{Priority: strPtr("HIGH")},
			expected: []models.Todo{learnGo, buyMilk},
		},
		"status only": {
			filter:   TodoFilter{Status: strPtr("DONE")},
			expected: []models.Todo{learnGo, learnSQL},
		},
		"priority and status": {
			filter:   TodoFilter{Priority: strPtr("HIGH"), Status: strPtr("DONE")},
			expected: []models.Todo{learnGo},
		},
		"priority, status and search": {
			filter:   TodoFilter{SearchQ: "SQL", Priority: strPtr("LOW"), Status: strPtr("DONE")},
			expected: []models.Todo{learnSQL},
		},
		"empty priority is still a filter": {
			filter:   TodoFilter{Priority: strPtr("")},
			expected: []models.Todo{},
		},
		"percent sign is literal": {
			filter:   TodoFilter{SearchQ: "50%"},
			expected: []models.Todo{discount},
		},
		"underscore is literal": {
			filter:   TodoFilter{SearchQ: "_"},
			expected: []models.Todo{},
		},
		"no match": {
			filter:   TodoFilter{Status: strPtr("ARCHIVED")},
			expected: []models.Todo{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			todos, err := GetTodos(context.Background(), db, tt.filter)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.expected, todos); diff != "" {
				t.Errorf("Unexpected todos (-expected +actual):\n%s", diff)
			}
		})
	}
}

func TestUpdateTodo(t *testing.T) {
	db, teardown := setupTestDB(t)
	defer teardown()

	seed(t, db, models.Todo{ID: 1, Todo: "Original", Priority: "LOW", Status: "TO DO"})

	t.Run("successful update", func(t *testing.T) {
		updated := models.Todo{ID: 1, Todo: "Updated", Priority: "HIGH", Status: "DONE"}
		rowsAffected, err := UpdateTodo(context.Background(), db, updated)
		require.NoError(t, err, "UpdateTodo should not error for existing ID")
		assert.Equal(t, int64(1), rowsAffected, "UpdateTodo should affect 1 row")

		fetched, err := GetTodo(context.Background(), db, 1)
		require.NoError(t, err)
		assert.Equal(t, updated, fetched)
	})

	t.Run("update non-existent todo", func(t *testing.T) {
		rowsAffected, err := UpdateTodo(context.Background(), db, models.Todo{ID: 99999, Todo: "nope"})
		require.Error(t, err, "UpdateTodo should error for non-existent ID")
		assert.True(t, errors.Is(err, sql.ErrNoRows), "Error should be sql.ErrNoRows for non-existent update")
		assert.Equal(t, int64(0), rowsAffected)
	})
}

func TestDeleteTodo(t *testing.T) {
	db, teardown := setupTestDB(t)
	defer teardown()

	seed(t, db, models.Todo{ID: 1, Todo: "To Be Deleted", Priority: "LOW", Status: "DONE"})

	t.Run("successful deletion", func(t *testing.T) {
		rowsAffected, err := DeleteTodo(context.Background(), db, 1)
		require.NoError(t, err, "DeleteTodo should not error for existing ID")
		assert.Equal(t, int64(1), rowsAffected, "DeleteTodo should affect 1 row")

		_, err = GetTodo(context.Background(), db, 1)
		assert.True(t, errors.Is(err, sql.ErrNoRows), "Error should be sql.ErrNoRows after deletion")
	})

	t.Run("delete non-existent todo", func(t *testing.T) {
		rowsAffected, err := DeleteTodo(context.Background(), db, 99999)
		require.NoError(t, err, "DeleteTodo should not error for non-existent ID")
		assert.Equal(t, int64(0), rowsAffected)
	})
}

func TestCanceledContext(t *testing.T) {
	db, teardown := setupTestDB(t)
	defer teardown()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := GetTodos(ctx, db, TodoFilter{})
	assert.Error(t, err)
}
