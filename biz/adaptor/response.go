package adaptor

import (
	"context"
	"errors"
	"net/http"

	"school-hub/biz/infrastructure/consts"
	"school-hub/biz/infrastructure/util"
	"school-hub/biz/infrastructure/util/log"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"google.golang.org/grpc/codes"
)

// PostProcess 统一输出 {success, data} 或 {success:false, error, details}
func PostProcess(ctx context.Context, c *app.RequestContext, req, resp any, err error) {
	postProcess(ctx, c, req, resp, err, http.StatusOK)
}

// PostProcessCreated 创建成功时返回 201
func PostProcessCreated(ctx context.Context, c *app.RequestContext, req, resp any, err error) {
	postProcess(ctx, c, req, resp, err, http.StatusCreated)
}

func postProcess(ctx context.Context, c *app.RequestContext, req, resp any, err error, okStatus int) {
	log.CtxInfo(ctx, "[%s] req=%s, resp=%s, err=%v", c.Path(), util.JSONF(req), util.JSONF(resp), err)

	if err == nil {
		c.JSON(okStatus, utils.H{"success": true, "data": resp})
		return
	}

	var en *consts.Errno
	if !errors.As(err, &en) {
		log.CtxError(ctx, "[%s] internal error: %v", c.Path(), err)
		c.JSON(http.StatusInternalServerError, utils.H{"success": false, "error": consts.ErrCall.Error()})
		return
	}
	body := utils.H{"success": false, "error": en.Error()}
	if len(en.Details()) > 0 {
		body["details"] = en.Details()
	}
	c.JSON(StatusOf(en), body)
}

// StatusOf 错误码到 HTTP 状态码
func StatusOf(err error) int {
	var en *consts.Errno
	if !errors.As(err, &en) {
		return http.StatusInternalServerError
	}
	switch en.Code() {
	case codes.InvalidArgument:
		return http.StatusBadRequest
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	case codes.PermissionDenied:
		return http.StatusForbidden
	case codes.NotFound:
		return http.StatusNotFound
	case consts.CodeScheduleConflict, consts.CodeScheduleBusy, consts.CodeEmailExists:
		return http.StatusConflict
	case consts.CodeSignIn:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
