package view

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// startSpan opens a span for a lifecycle operation when a tracer is
// configured. The returned func records the outcome and ends the span.
func (n *Node) startSpan(op string) func(err error) {
	if n.env.Tracer == nil {
		return func(error) {}
	}

	_, span := n.env.Tracer.Start(context.Background(), "viewkit."+op)
	span.SetAttributes(
		attribute.String("viewkit.node", n.Name()),
		attribute.String("viewkit.op", op),
		attribute.Int("viewkit.children", len(n.items)),
	)

	return func(err error) {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, "")
		}
		span.End()
	}
}
