package show

import (
	"context"

	"school-hub/biz/adaptor"
	"school-hub/biz/application/dto/school/show"
	"school-hub/biz/infrastructure/consts"
	"school-hub/provider"

	"github.com/cloudwego/hertz/pkg/app"
)

// ListSchedules .
// @router /api/schedules [GET]
// @router /api/schedules/class/:classId [GET]
func ListSchedules(ctx context.Context, c *app.RequestContext) {
	var err error
	var req show.ListSchedulesReq
	err = c.Bind(&req)
	if err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams.WithMessage(err.Error()))
		return
	}

	p := provider.Get()
	resp, err := p.ScheduleService.ListSchedules(ctx, adaptor.ExtractUserMeta(ctx), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GetSchedule .
// @router /api/schedules/:id [GET]
func GetSchedule(ctx context.Context, c *app.RequestContext) {
	req := show.ScheduleReq{Id: c.Param("id")}
	p := provider.Get()
	resp, err := p.ScheduleService.GetSchedule(ctx, adaptor.ExtractUserMeta(ctx), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// CreateSchedule .
// @router /api/schedules [POST]
func CreateSchedule(ctx context.Context, c *app.RequestContext) {
	var err error
	var req show.CreateScheduleReq
	err = c.Bind(&req)
	if err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams.WithMessage(err.Error()))
		return
	}

	p := provider.Get()
	resp, err := p.ScheduleService.CreateSchedule(ctx, adaptor.ExtractUserMeta(ctx), &req)
	adaptor.PostProcessCreated(ctx, c, &req, resp, err)
}

// UpdateSchedule .
// @router /api/schedules/:id [PUT]
func UpdateSchedule(ctx context.Context, c *app.RequestContext) {
	var err error
	var req show.UpdateScheduleReq
	err = c.Bind(&req)
	if err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams.WithMessage(err.Error()))
		return
	}

	p := provider.Get()
	resp, err := p.ScheduleService.UpdateSchedule(ctx, adaptor.ExtractUserMeta(ctx), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// DeleteSchedule .
// @router /api/schedules/:id [DELETE]
func DeleteSchedule(ctx context.Context, c *app.RequestContext) {
	req := show.ScheduleReq{Id: c.Param("id")}
	p := provider.Get()
	err := p.ScheduleService.DeleteSchedule(ctx, adaptor.ExtractUserMeta(ctx), &req)
	adaptor.PostProcess(ctx, c, &req, nil, err)
}
