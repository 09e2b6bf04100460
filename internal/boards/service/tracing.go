package service

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/aussiebroadwan/boards/internal/boards/service"

// startSpan starts a child span of whatever is in ctx. The global provider
// is looked up on every call so spans follow otelx.Setup even when the
// services were built first.
func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, name, trace.WithAttributes(attrs...))
}

// endSpan records err on span, unless it is a caller mistake such as a
// validation failure or a missing board, and ends it.
func endSpan(span trace.Span, err error) {
	if err != nil && isInternal(err) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func attrUser(id string) attribute.KeyValue  { return attribute.String("boards.user_id", id) }
func attrBoard(id string) attribute.KeyValue { return attribute.String("boards.board_id", id) }
func attrTodo(id string) attribute.KeyValue  { return attribute.String("boards.todo_id", id) }
