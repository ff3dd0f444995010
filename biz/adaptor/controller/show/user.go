package show

import (
	"context"

	"school-hub/biz/adaptor"
	"school-hub/biz/application/dto/school/show"
	"school-hub/biz/infrastructure/consts"
	"school-hub/provider"

	"github.com/cloudwego/hertz/pkg/app"
)

// Register .
// @router /api/auth/register [POST]
func Register(ctx context.Context, c *app.RequestContext) {
	var err error
	var req show.RegisterReq
	err = c.Bind(&req)
	if err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams.WithMessage(err.Error()))
		return
	}

	p := provider.Get()
	resp, err := p.UserService.Register(ctx, &req)
	adaptor.PostProcessCreated(ctx, c, &req, resp, err)
}

// SignIn .
// @router /api/auth/sign_in [POST]
func SignIn(ctx context.Context, c *app.RequestContext) {
	var err error
	var req show.SignInReq
	err = c.Bind(&req)
	if err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams.WithMessage(err.Error()))
		return
	}

	p := provider.Get()
	resp, err := p.UserService.SignIn(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// ListUsers .
// @router /api/users [GET]
func ListUsers(ctx context.Context, c *app.RequestContext) {
	var err error
	var req show.ListUsersReq
	err = c.Bind(&req)
	if err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams.WithMessage(err.Error()))
		return
	}

	p := provider.Get()
	resp, err := p.UserService.ListUsers(ctx, adaptor.ExtractUserMeta(ctx), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GetProfile .
// @router /api/profile [GET]
func GetProfile(ctx context.Context, c *app.RequestContext) {
	p := provider.Get()
	resp, err := p.UserService.GetProfile(ctx, adaptor.ExtractUserMeta(ctx))
	adaptor.PostProcess(ctx, c, nil, resp, err)
}

// UpdateProfile .
// @router /api/profile [PUT]
func UpdateProfile(ctx context.Context, c *app.RequestContext) {
	var err error
	var req show.UpdateProfileReq
	err = c.Bind(&req)
	if err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams.WithMessage(err.Error()))
		return
	}

	p := provider.Get()
	resp, err := p.UserService.UpdateProfile(ctx, adaptor.ExtractUserMeta(ctx), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// LinkChild .
// @router /api/profile/link-child [POST]
func LinkChild(ctx context.Context, c *app.RequestContext) {
	var err error
	var req show.LinkChildReq
	err = c.Bind(&req)
	if err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams.WithMessage(err.Error()))
		return
	}

	p := provider.Get()
	resp, err := p.UserService.LinkChild(ctx, adaptor.ExtractUserMeta(ctx), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
