/*
Package boardsdk is a Go client for the BarTab boards service, and the home of
the JSON types its HTTP API speaks.

# SDKClient vs Session

SDKClient covers the public endpoints. A Session carries a bearer token and
covers everything scoped to a user:

	client := boardsdk.NewSDKClient("http://localhost:8080")

	session, err := client.RegisterAndAuthenticate(ctx, boardsdk.RegisterRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "correct-horse",
	})

	board, err := session.CreateBoard(ctx, "Work", "Draft")
	todo, err := session.CreateTodo(ctx, board.ID, "Review")
	res, err := session.SetTodoCompletion(ctx, todo.ID, true)
	// res.BoardCompleted is false: "Draft" is still open.

# Errors

Every non-2xx response becomes an *APIError. Field validation failures are
in APIError.Errors, keyed by request field name:

	var apiErr *boardsdk.APIError
	if errors.As(err, &apiErr) && apiErr.IsNotFound() {
		// missing, or owned by someone else
	}
*/
package boardsdk
