package show

import (
	"context"

	"school-hub/biz/adaptor"
	"school-hub/biz/application/dto/school/show"
	"school-hub/biz/infrastructure/consts"
	"school-hub/provider"

	"github.com/cloudwego/hertz/pkg/app"
)

// ListConversations .
// @router /api/messages [GET]
func ListConversations(ctx context.Context, c *app.RequestContext) {
	p := provider.Get()
	resp, err := p.MessageService.ListConversations(ctx, adaptor.ExtractUserMeta(ctx))
	adaptor.PostProcess(ctx, c, nil, resp, err)
}

// SendMessage .
// @router /api/messages [POST]
func SendMessage(ctx context.Context, c *app.RequestContext) {
	var err error
	var req show.SendMessageReq
	err = c.Bind(&req)
	if err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, consts.ErrInvalidParams.WithMessage(err.Error()))
		return
	}

	p := provider.Get()
	resp, err := p.MessageService.SendMessage(ctx, adaptor.ExtractUserMeta(ctx), &req)
	adaptor.PostProcessCreated(ctx, c, &req, resp, err)
}

// GetThread .
// @router /api/messages/conversation/:userId [GET]
func GetThread(ctx context.Context, c *app.RequestContext) {
	req := show.GetThreadReq{UserId: c.Param("userId")}
	p := provider.Get()
	resp, err := p.MessageService.GetThread(ctx, adaptor.ExtractUserMeta(ctx), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// MarkRead .
// @router /api/messages/:id/read [PUT]
func MarkRead(ctx context.Context, c *app.RequestContext) {
	req := show.MessageReq{Id: c.Param("id")}
	p := provider.Get()
	resp, err := p.MessageService.MarkRead(ctx, adaptor.ExtractUserMeta(ctx), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// DeleteMessage .
// @router /api/messages/:id [DELETE]
func DeleteMessage(ctx context.Context, c *app.RequestContext) {
	req := show.MessageReq{Id: c.Param("id")}
	p := provider.Get()
	err := p.MessageService.DeleteMessage(ctx, adaptor.ExtractUserMeta(ctx), &req)
	adaptor.PostProcess(ctx, c, &req, nil, err)
}
