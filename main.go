package main

import (
	"school-hub/biz/adaptor"
	"school-hub/biz/infrastructure/util/log"
	"school-hub/provider"

	"github.com/cloudwego/hertz/pkg/app/server"
	prometheus "github.com/hertz-contrib/monitor-prometheus"
	"github.com/hertz-contrib/obs-opentelemetry/tracing"
	"go.opentelemetry.io/contrib/propagators/b3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

func main() {
	provider.Init()
	c := provider.Get().Config

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		b3.New(),
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	tracer, cfg := tracing.NewServerTracer()
	h := server.Default(
		server.WithHostPorts(c.ListenOn),
		tracer,
		server.WithTracer(prometheus.NewServerTracer(c.Metrics.Addr, c.Metrics.Path)),
	)
	h.Use(tracing.ServerMiddleware(cfg), adaptor.AccessLog())

	customizedRegister(h)
	log.Info("server listen on %s", c.ListenOn)
	h.Spin()
}
