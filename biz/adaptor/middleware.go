package adaptor

import (
	"context"
	"time"

	"school-hub/biz/infrastructure/config"
	"school-hub/biz/infrastructure/consts"
	"school-hub/biz/infrastructure/util/log"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel/trace"
)

// AccessLog 为请求分配 X-Request-ID 并记录访问日志
func AccessLog() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		start := time.Now()
		rid := string(c.GetHeader(consts.RequestIDHeader))
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Response.Header.Set(consts.RequestIDHeader, rid)

		c.Next(ctx)

		path := string(c.Path())
		if cfg := config.GetConfig(); cfg != nil && lo.Contains(cfg.Log.NoLogPaths, path) {
			return
		}
		traceID := ""
		if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
			traceID = sc.TraceID().String()
		}
		log.CtxInfo(ctx, "[access] rid=%s method=%s path=%s status=%d latency=%s trace=%s",
			rid, c.Method(), path, c.Response.StatusCode(), time.Since(start), traceID)
	}
}

// Authenticate 要求请求携带有效令牌, 解析出的用户写入 ctx
func Authenticate() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		meta, err := ParseUserMeta(string(c.GetHeader(consts.Authorization)))
		if err != nil {
			log.CtxInfo(ctx, "authenticate fail, path=%s, err=%v", c.Path(), err)
			PostProcess(ctx, c, nil, nil, consts.ErrNotAuthentication)
			c.Abort()
			return
		}
		ctx = InjectContext(ctx, c)
		c.Next(WithUserMeta(ctx, meta))
	}
}
