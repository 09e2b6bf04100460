package boardsdk

import "time"

// ============================================================================
// Resources
// ============================================================================

// User is the public view of an account. The password hash never leaves the
// service.
type User struct {
	ID    string `json:"id" example:"01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV"`
	Name  string `json:"name" example:"Ada Lovelace"`
	Email string `json:"email" example:"ada@example.com"`
}

// Todo is a single item on a board.
type Todo struct {
	ID          string    `json:"id" example:"01HQ7T4A9R3C2GZ8P6KX1WJ0NB"`
	BoardID     string    `json:"board_id" example:"01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV"`
	TodoTitle   string    `json:"todo_title" example:"Draft"`
	IsCompleted bool      `json:"is_completed" example:"false"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Board is a named list of todos. IsCompleted is true exactly when the board
// has at least one todo and all of them are complete, unless it was
// overridden through SetBoardCompletion since the last todo change.
type Board struct {
	ID          string    `json:"id" example:"01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV"`
	UserID      string    `json:"user_id" example:"01HQ7T2Y8E4V6D1QF9M3KZ7TRA"`
	BoardName   string    `json:"board_name" example:"Work"`
	IsCompleted bool      `json:"is_completed" example:"false"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BoardWithTodos is a board plus its todos, oldest first. Todos is always
// present, as [] when the board is empty.
type BoardWithTodos struct {
	Board

	Todos []Todo `json:"todos"`
}

// ============================================================================
// Requests
// ============================================================================

type RegisterRequest struct {
	Name     string `json:"name" example:"Ada Lovelace"`
	Email    string `json:"email" example:"ada@example.com"`
	Password string `json:"password" example:"correct-horse"`
}

type LoginRequest struct {
	Email    string `json:"email" example:"ada@example.com"`
	Password string `json:"password" example:"correct-horse"`
}

// CreateBoardRequest creates a board together with its first todo.
type CreateBoardRequest struct {
	BoardName string `json:"board_name" example:"Work"`
	TodoTitle string `json:"todo_title" example:"Draft"`
}

type RenameBoardRequest struct {
	BoardName string `json:"board_name" example:"Home"`
}

// SetCompletionRequest is shared by the board and todo completion endpoints.
// IsCompleted is a pointer so a missing field can be told apart from false.
type SetCompletionRequest struct {
	IsCompleted *bool `json:"is_completed" example:"true"`
}

type CreateTodoRequest struct {
	BoardID   string `json:"board_id" example:"01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV"`
	TodoTitle string `json:"todo_title" example:"Review"`
}

type RenameTodoRequest struct {
	TodoTitle string `json:"todo_title" example:"Final review"`
}

// ============================================================================
// Responses
// ============================================================================

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Successfully logged in"`
	Token   string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	User    User   `json:"user"`
}

type BoardListResponse struct {
	Success bool             `json:"success" example:"true"`
	Boards  []BoardWithTodos `json:"boards"`
}

// BoardDetailResponse is one board with its todos.
type BoardDetailResponse struct {
	Success bool           `json:"success" example:"true"`
	Board   BoardWithTodos `json:"board"`
}

type CreateBoardResponse struct {
	Success bool           `json:"success" example:"true"`
	Message string         `json:"message" example:"Board created successfully"`
	Board   BoardWithTodos `json:"board"`
}

type BoardResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Board updated successfully"`
	Board   Board  `json:"board"`
}

type TodoResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Todo updated successfully"`
	Todo    Todo   `json:"todo"`
}

// TodoCompletionResponse carries the recomputed state of the parent board.
type TodoCompletionResponse struct {
	Success        bool   `json:"success" example:"true"`
	Message        string `json:"message" example:"Todo completion status updated"`
	Todo           Todo   `json:"todo"`
	BoardCompleted bool   `json:"boardCompleted" example:"false"`
}

// MessageResponse is returned by deletes.
type MessageResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Board deleted successfully"`
}

// FieldError names one input field that failed validation.
type FieldError struct {
	Path string `json:"path" example:"email"`
	Msg  string `json:"msg" example:"Please enter a valid email"`
}

// ErrorResponse is the failure envelope. Validation failures fill Errors,
// everything else sets Message.
type ErrorResponse struct {
	Success bool         `json:"success" example:"false"`
	Message string       `json:"message,omitempty" example:"Board not found or unauthorized"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse is returned by /livez and /readyz (readyz adds Checks).
type HealthResponse struct {
	Status  string        `json:"status" example:"ok"`
	Uptime  string        `json:"uptime,omitempty" example:"1h23m45s"`
	Version string        `json:"version,omitempty" example:"v1.0.0"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports each dependency readyz looked at.
type HealthChecks struct {
	Database string `json:"database" example:"ok"`
}
