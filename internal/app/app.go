package app

import (
	"context"
	"io"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/xenking/order-discounts/internal/domain/order"
)

const instrumentationName = "github.com/xenking/order-discounts/internal/app"

// Run prices the configured order total against every configured strategy,
// in order, and writes one JSON quote per line to w. A single Order is
// reused and its strategy swapped between quotes.
func Run(
	ctx context.Context,
	lg *zap.Logger,
	tp trace.TracerProvider,
	mp metric.MeterProvider,
	cfg *Config,
	w io.Writer,
) error {
	total, strategies, err := cfg.Build()
	if err != nil {
		return errors.Wrap(err, "build config")
	}

	tracer := tp.Tracer(instrumentationName)
	quotes, err := mp.Meter(instrumentationName).Int64Counter("discount.quotes",
		metric.WithDescription("Number of priced quotes"),
	)
	if err != nil {
		return errors.Wrap(err, "create quotes counter")
	}

	lg.Info("Pricing order",
		zap.String("total", total.String()),
		zap.Int("strategies", len(strategies)),
	)

	o := order.New(total, nil)
	var e jx.Encoder
	for _, s := range strategies {
		o.SetDiscountStrategy(s)

		kind := attribute.String("discount.kind", string(s.Kind()))
		_, span := tracer.Start(ctx, "order.Quote", trace.WithAttributes(kind))
		q := order.NewQuote(o, time.Now())
		span.SetAttributes(
			attribute.String("discount.strategy", q.Strategy),
			attribute.String("order.final_price", q.FinalPrice.String()),
		)

		e.Reset()
		q.Encode(&e)
		if _, err := w.Write(append(e.Bytes(), '\n')); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "write quote")
			span.End()
			return errors.Wrap(err, "write quote")
		}
		span.End()

		quotes.Add(ctx, 1, metric.WithAttributes(kind))
		lg.Info("Quote",
			zap.String("id", q.ID),
			zap.String("strategy", q.Strategy),
			zap.String("discount", q.Discount.String()),
			zap.String("final_price", q.FinalPrice.String()),
		)
	}

	return nil
}
