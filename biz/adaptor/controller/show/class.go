package show

import (
	"context"

	"school-hub/biz/adaptor"
	"school-hub/biz/application/dto/school/show"
	"school-hub/biz/infrastructure/consts"
	"school-hub/provider"

	"github.com/cloudwego/hertz/pkg/app"
)

// ListClasses .
// @router /api/classes [GET]
func ListClasses(ctx context.Context, c *app.RequestContext) {
	var err error
	var req show.ListClassesReq
	err = c.Bind(&req)
	if err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams.WithMessage(err.Error()))
		return
	}

	p := provider.Get()
	resp, err := p.ClassService.ListClasses(ctx, adaptor.ExtractUserMeta(ctx), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// CreateClass .
// @router /api/classes [POST]
func CreateClass(ctx context.Context, c *app.RequestContext) {
	var err error
	var req show.CreateClassReq
	err = c.Bind(&req)
	if err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams.WithMessage(err.Error()))
		return
	}

	p := provider.Get()
	resp, err := p.ClassService.CreateClass(ctx, adaptor.ExtractUserMeta(ctx), &req)
	adaptor.PostProcessCreated(ctx, c, &req, resp, err)
}

// GetClass .
// @router /api/classes/:id [GET]
func GetClass(ctx context.Context, c *app.RequestContext) {
	req := show.ClassReq{Id: c.Param("id")}
	p := provider.Get()
	resp, err := p.ClassService.GetClass(ctx, adaptor.ExtractUserMeta(ctx), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// UpdateClass .
// @router /api/classes/:id [PUT]
func UpdateClass(ctx context.Context, c *app.RequestContext) {
	var err error
	var req show.UpdateClassReq
	err = c.Bind(&req)
	if err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams.WithMessage(err.Error()))
		return
	}

	p := provider.Get()
	resp, err := p.ClassService.UpdateClass(ctx, adaptor.ExtractUserMeta(ctx), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// DeleteClass .
// @router /api/classes/:id [DELETE]
func DeleteClass(ctx context.Context, c *app.RequestContext) {
	req := show.ClassReq{Id: c.Param("id")}
	p := provider.Get()
	err := p.ClassService.DeleteClass(ctx, adaptor.ExtractUserMeta(ctx), &req)
	adaptor.PostProcess(ctx, c, &req, nil, err)
}

// AddStudent .
// @router /api/classes/:id/students [POST]
func AddStudent(ctx context.Context, c *app.RequestContext) {
	var err error
	var req show.AddStudentReq
	err = c.Bind(&req)
	if err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams.WithMessage(err.Error()))
		return
	}

	p := provider.Get()
	resp, err := p.ClassService.AddStudent(ctx, adaptor.ExtractUserMeta(ctx), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// RemoveStudent .
// @router /api/classes/:id/students [DELETE]
func RemoveStudent(ctx context.Context, c *app.RequestContext) {
	var err error
	var req show.RemoveStudentReq
	err = c.Bind(&req)
	if err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams.WithMessage(err.Error()))
		return
	}

	p := provider.Get()
	resp, err := p.ClassService.RemoveStudent(ctx, adaptor.ExtractUserMeta(ctx), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
