package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"todoapi/database"
	"todoapi/internal/generated/openapi"
	"todoapi/models"

	"github.com/rs/zerolog"
)

// Fixed confirmation bodies.
const (
	msgTodoAdded   = "Todo Successfully Added"
	msgTodoDeleted = "Todo Deleted"
	msgNotFound    = "Todo not found"
)

// TodoAPIServer implements the openapi.ServerInterface
type TodoAPIServer struct {
	DB *sql.DB
}

var _ openapi.ServerInterface = (*TodoAPIServer)(nil)

// NewTodoAPIServer creates a new TodoAPIServer.
func NewTodoAPIServer(db *sql.DB) *TodoAPIServer {
	return &TodoAPIServer{DB: db}
}

// ListTodos handles GET /todos. Which of priority and status filter the
// result depends on which of them are present in the query, not on their
// values.
func (s *TodoAPIServer) ListTodos(w http.ResponseWriter, r *http.Request, params openapi.ListTodosParams) {
	filter := database.TodoFilter{
		Priority: params.Priority,
		Status:   params.Status,
	}
	if params.SearchQ != nil {
		filter.SearchQ = *params.SearchQ
	}

	zerolog.Ctx(r.Context()).Debug().Str("filter", filter.Kind().String()).Str("search_q", filter.SearchQ).Msg("listing todos")

	todos, err := database.GetTodos(r.Context(), s.DB, filter)
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("listing todos failed")
		writeError(w, r, http.StatusInternalServerError, "Failed to retrieve todos: "+err.Error())
		return
	}

	apiTodos := make([]openapi.Todo, len(todos))
	for i, todo := range todos {
		apiTodos[i] = toAPITodo(todo)
	}

	writeJSON(w, r, http.StatusOK, apiTodos)
}

// GetTodoById handles GET /todos/{todoId}.
func (s *TodoAPIServer) GetTodoById(w http.ResponseWriter, r *http.Request, todoId int64) {
	todo, err := database.GetTodo(r.Context(), s.DB, todoId)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, r, http.StatusNotFound, msgNotFound)
			return
		}
		zerolog.Ctx(r.Context()).Error().Err(err).Int64("todo_id", todoId).Msg("retrieving todo failed")
		writeError(w, r, http.StatusInternalServerError, "Failed to retrieve todo: "+err.Error())
		return
	}

	writeJSON(w, r, http.StatusOK, toAPITodo(todo))
}

// CreateTodo handles POST /todos. The id is supplied by the caller.
func (s *TodoAPIServer) CreateTodo(w http.ResponseWriter, r *http.Request) {
	var requestBody openapi.CreateTodoJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&requestBody); err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	defer r.Body.Close()

	todo := models.Todo{
		ID:       requestBody.Id,
		Todo:     requestBody.Todo,
		Priority: requestBody.Priority,
		Status:   requestBody.Status,
	}

	if err := database.CreateTodo(r.Context(), s.DB, todo); err != nil {
		if errors.Is(err, database.ErrDuplicateID) {
			writeError(w, r, http.StatusConflict, fmt.Sprintf("Todo with id %d already exists", todo.ID))
			return
		}
		zerolog.Ctx(r.Context()).Error().Err(err).Int64("todo_id", todo.ID).Msg("creating todo failed")
		writeError(w, r, http.StatusInternalServerError, "Failed to create todo: "+err.Error())
		return
	}

	writeText(w, http.StatusOK, msgTodoAdded)
}

// UpdateTodoById handles PUT /todos/{todoId}. Omitted fields keep their
// stored values, all three columns are written back, and the reply names a
// single column: status, then priority, then todo.
func (s *TodoAPIServer) UpdateTodoById(w http.ResponseWriter, r *http.Request, todoId int64) {
	var requestBody openapi.UpdateTodoByIdJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&requestBody); err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	defer r.Body.Close()

	patch := models.TodoPatch{
		Todo:     requestBody.Todo,
		Priority: requestBody.Priority,
		Status:   requestBody.Status,
	}

	column, ok := patch.UpdatedColumn()
	if !ok {
		writeError(w, r, http.StatusBadRequest, "Request body must set at least one of todo, priority or status")
		return
	}

	// Not transactional: a concurrent update between this read and the
	// write below is lost.
	current, err := database.GetTodo(r.Context(), s.DB, todoId)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, r, http.StatusNotFound, msgNotFound)
			return
		}
		zerolog.Ctx(r.Context()).Error().Err(err).Int64("todo_id", todoId).Msg("retrieving todo for update failed")
		writeError(w, r, http.StatusInternalServerError, "Failed to retrieve todo: "+err.Error())
		return
	}

	if _, err := database.UpdateTodo(r.Context(), s.DB, patch.ApplyTo(current)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, r, http.StatusNotFound, msgNotFound)
			return
		}
		zerolog.Ctx(r.Context()).Error().Err(err).Int64("todo_id", todoId).Msg("updating todo failed")
		writeError(w, r, http.StatusInternalServerError, "Failed to update todo: "+err.Error())
		return
	}

	writeText(w, http.StatusOK, column+" Updated")
}

// DeleteTodoById handles DELETE /todos/{todoId}. Deleting an id that does
// not exist is not an error.
func (s *TodoAPIServer) DeleteTodoById(w http.ResponseWriter, r *http.Request, todoId int64) {
	removed, err := database.DeleteTodo(r.Context(), s.DB, todoId)
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Int64("todo_id", todoId).Msg("deleting todo failed")
		writeError(w, r, http.StatusInternalServerError, "Failed to delete todo: "+err.Error())
		return
	}

	zerolog.Ctx(r.Context()).Debug().Int64("todo_id", todoId).Int64("removed", removed).Msg("delete done")
	writeText(w, http.StatusOK, msgTodoDeleted)
}

func toAPITodo(todo models.Todo) openapi.Todo {
	return openapi.Todo{
		Id:       todo.ID,
		Todo:     todo.Todo,
		Priority: todo.Priority,
		Status:   todo.Status,
	}
}
