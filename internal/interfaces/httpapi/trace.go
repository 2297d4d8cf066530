package httpapi

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const handlerSpanPrefix = "httpapi.Handler."

var (
	apiTracer = otel.Tracer("kicker-league/internal/interfaces/httpapi")
	noopSpan  = trace.SpanFromContext(context.Background())
)

// startSpan opens child spans for handler methods only, and only under the
// otelhttp request span. Filtered routes such as /healthz get no span at all.
func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if !shouldCreateHTTPAPISpan(name) || !trace.SpanFromContext(ctx).SpanContext().IsValid() {
		return ctx, noopSpan
	}
	return apiTracer.Start(ctx, name)
}

func shouldCreateHTTPAPISpan(name string) bool {
	return strings.HasPrefix(name, handlerSpanPrefix)
}

func annotateSeasonWeek(span trace.Span, season, week int) {
	if !span.IsRecording() {
		return
	}
	span.SetAttributes(
		attribute.Int("kicker.season", season),
		attribute.Int("kicker.week", week),
	)
}

func annotateLeague(span trace.Span, leagueID string) {
	if !span.IsRecording() {
		return
	}
	span.SetAttributes(attribute.String("kicker.league_id", leagueID))
}
