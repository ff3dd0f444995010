package service

import (
	"context"
	"strings"

	"school-hub/biz/application/dto/basic"
	"school-hub/biz/application/dto/school/show"
	"school-hub/biz/domain/messaging"
	"school-hub/biz/infrastructure/consts"
	"school-hub/biz/infrastructure/repository/message"
	"school-hub/biz/infrastructure/repository/user"
	"school-hub/biz/infrastructure/util"
	"school-hub/biz/infrastructure/util/log"
	"school-hub/biz/infrastructure/util/validate"

	"github.com/google/wire"
	"github.com/samber/lo"
)

type IMessageService interface {
	ListConversations(ctx context.Context, meta *basic.UserMeta) (*show.ListConversationsResp, error)
	SendMessage(ctx context.Context, meta *basic.UserMeta, req *show.SendMessageReq) (*show.MessageInfo, error)
	GetThread(ctx context.Context, meta *basic.UserMeta, req *show.GetThreadReq) (*show.GetThreadResp, error)
	MarkRead(ctx context.Context, meta *basic.UserMeta, req *show.MessageReq) (*show.MessageInfo, error)
	DeleteMessage(ctx context.Context, meta *basic.UserMeta, req *show.MessageReq) error
}

type MessageService struct {
	MessageMapper message.IMongoMapper
	UserMapper    user.IMongoMapper
}

var MessageServiceSet = wire.NewSet(
	wire.Struct(new(MessageService), "*"),
	wire.Bind(new(IMessageService), new(*MessageService)),
)

func toDomainMessage(m *message.Message) messaging.Message {
	return messaging.Message{
		ID:          m.ID.Hex(),
		SenderID:    m.SenderID,
		ReceiverID:  m.ReceiverID,
		Content:     m.Content,
		Attachments: m.Attachments,
		Read:        m.Read,
		CreateTime:  m.CreateTime,
	}
}

// toMessageInfo 入参可以是存储模型也可以是聚合后的消息
func toMessageInfo(m any) *show.MessageInfo {
	info := new(show.MessageInfo)
	if err := util.Copy(info, m); err != nil {
		log.Error("copy message fail, err=%v", err)
	}
	if info.Attachments == nil {
		info.Attachments = []string{}
	}
	return info
}

// ListConversations 当前用户的会话列表, 最近活跃的在前
func (s *MessageService) ListConversations(ctx context.Context, meta *basic.UserMeta) (*show.ListConversationsResp, error) {
	uid, err := currentUser(meta)
	if err != nil {
		return nil, err
	}
	msgs, err := s.MessageMapper.FindByParticipant(ctx, uid)
	if err != nil {
		log.CtxError(ctx, "find messages of %s fail, err=%v", uid, err)
		return nil, err
	}
	convs := messaging.BuildConversations(uid, lo.Map(msgs, func(m *message.Message, _ int) messaging.Message {
		return toDomainMessage(m)
	}))

	others, err := s.UserMapper.FindByIDs(ctx, lo.Map(convs, func(c messaging.Conversation, _ int) string { return c.OtherUserID }))
	if err != nil {
		return nil, err
	}
	byID := lo.KeyBy(others, func(u *user.User) string { return u.ID.Hex() })

	infos := lo.Map(convs, func(c messaging.Conversation, _ int) *show.ConversationInfo {
		return &show.ConversationInfo{
			OtherUserId: c.OtherUserID,
			OtherUser:   profileOf(byID, c.OtherUserID),
			LastMessage: toMessageInfo(&c.LastMessage),
			UnreadCount: c.UnreadCount,
		}
	})
	return &show.ListConversationsResp{Conversations: infos, Total: int64(len(infos))}, nil
}

// SendMessage 校验 -> 双方存在 -> 角色是否允许 -> 写入
func (s *MessageService) SendMessage(ctx context.Context, meta *basic.UserMeta, req *show.SendMessageReq) (*show.MessageInfo, error) {
	uid, err := currentUser(meta)
	if err != nil {
		return nil, err
	}
	if err = validate.Struct(req); err != nil {
		return nil, err
	}
	sender, err := s.UserMapper.FindOne(ctx, uid)
	if err != nil {
		return nil, err
	}
	receiver, err := s.UserMapper.FindOne(ctx, req.ReceiverId)
	if err != nil {
		return nil, err
	}
	if !messaging.CanMessage(sender.Role, receiver.Role) {
		log.CtxInfo(ctx, "message denied, %s(%s) -> %s(%s)", uid, sender.Role, req.ReceiverId, receiver.Role)
		return nil, consts.ErrPermissionDenied
	}

	msg := &message.Message{
		SenderID:    uid,
		ReceiverID:  req.ReceiverId,
		Content:     strings.TrimSpace(req.Content),
		Attachments: lo.Ternary(req.Attachments == nil, []string{}, req.Attachments),
	}
	if err = s.MessageMapper.Insert(ctx, msg); err != nil {
		log.CtxError(ctx, "insert message fail, err=%v", err)
		return nil, consts.ErrSendMessage
	}
	return toMessageInfo(msg), nil
}

// GetThread 与某个用户的全部往来消息, 按时间正序
func (s *MessageService) GetThread(ctx context.Context, meta *basic.UserMeta, req *show.GetThreadReq) (*show.GetThreadResp, error) {
	uid, err := currentUser(meta)
	if err != nil {
		return nil, err
	}
	if err = validate.Struct(req); err != nil {
		return nil, err
	}
	msgs, err := s.MessageMapper.FindThread(ctx, uid, req.UserId)
	if err != nil {
		return nil, err
	}
	users, err := s.UserMapper.FindByIDs(ctx, []string{uid, req.UserId})
	if err != nil {
		return nil, err
	}
	byID := lo.KeyBy(users, func(u *user.User) string { return u.ID.Hex() })

	return &show.GetThreadResp{
		Messages: lo.Map(msgs, func(m *message.Message, _ int) *show.MessageInfo {
			info := toMessageInfo(m)
			info.Sender = profileOf(byID, m.SenderID)
			info.Receiver = profileOf(byID, m.ReceiverID)
			return info
		}),
		Total: int64(len(msgs)),
	}, nil
}

// MarkRead 仅接收方可以标记已读
func (s *MessageService) MarkRead(ctx context.Context, meta *basic.UserMeta, req *show.MessageReq) (*show.MessageInfo, error) {
	uid, err := currentUser(meta)
	if err != nil {
		return nil, err
	}
	if err = validate.Struct(req); err != nil {
		return nil, err
	}
	msg, err := s.MessageMapper.FindOne(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	if msg.ReceiverID != uid {
		return nil, consts.ErrForbidden.WithMessage("only the receiver can mark a message as read")
	}
	if !msg.Read {
		if err = s.MessageMapper.MarkRead(ctx, req.Id); err != nil {
			return nil, err
		}
		msg.Read = true
	}
	return toMessageInfo(msg), nil
}

// DeleteMessage 仅发送方可以删除
func (s *MessageService) DeleteMessage(ctx context.Context, meta *basic.UserMeta, req *show.MessageReq) error {
	uid, err := currentUser(meta)
	if err != nil {
		return err
	}
	if err = validate.Struct(req); err != nil {
		return err
	}
	msg, err := s.MessageMapper.FindOne(ctx, req.Id)
	if err != nil {
		return err
	}
	if msg.SenderID != uid {
		return consts.ErrForbidden.WithMessage("only the sender can delete a message")
	}
	return s.MessageMapper.Delete(ctx, req.Id)
}
