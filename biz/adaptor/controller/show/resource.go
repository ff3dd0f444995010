package show

import (
	"context"

	"school-hub/biz/adaptor"
	"school-hub/biz/application/dto/school/show"
	"school-hub/biz/infrastructure/consts"
	"school-hub/provider"

	"github.com/cloudwego/hertz/pkg/app"
)

// ListResources .
// @router /api/resources [GET]
// @router /api/resources/class/:classId [GET]
func ListResources(ctx context.Context, c *app.RequestContext) {
	var err error
	var req show.ListResourcesReq
	err = c.Bind(&req)
	if err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams.WithMessage(err.Error()))
		return
	}

	p := provider.Get()
	resp, err := p.ResourceService.ListResources(ctx, adaptor.ExtractUserMeta(ctx), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GetResource .
// @router /api/resources/:id [GET]
func GetResource(ctx context.Context, c *app.RequestContext) {
	req := show.ResourceReq{Id: c.Param("id")}
	p := provider.Get()
	resp, err := p.ResourceService.GetResource(ctx, adaptor.ExtractUserMeta(ctx), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// CreateResource .
// @router /api/resources [POST]
func CreateResource(ctx context.Context, c *app.RequestContext) {
	var err error
	var req show.CreateResourceReq
	err = c.Bind(&req)
	if err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams.WithMessage(err.Error()))
		return
	}

	p := provider.Get()
	resp, err := p.ResourceService.CreateResource(ctx, adaptor.ExtractUserMeta(ctx), &req)
	adaptor.PostProcessCreated(ctx, c, &req, resp, err)
}

// UpdateResource .
// @router /api/resources/:id [PUT]
func UpdateResource(ctx context.Context, c *app.RequestContext) {
	var err error
	var req show.UpdateResourceReq
	err = c.Bind(&req)
	if err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams.WithMessage(err.Error()))
		return
	}

	p := provider.Get()
	resp, err := p.ResourceService.UpdateResource(ctx, adaptor.ExtractUserMeta(ctx), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// DeleteResource .
// @router /api/resources/:id [DELETE]
func DeleteResource(ctx context.Context, c *app.RequestContext) {
	req := show.ResourceReq{Id: c.Param("id")}
	p := provider.Get()
	err := p.ResourceService.DeleteResource(ctx, adaptor.ExtractUserMeta(ctx), &req)
	adaptor.PostProcess(ctx, c, &req, nil, err)
}
