package show

type MessageInfo struct {
	Id          string    `json:"id"`
	SenderId    string    `json:"senderId"`
	ReceiverId  string    `json:"receiverId"`
	Content     string    `json:"content"`
	Attachments []string  `json:"attachments"`
	Read        bool      `json:"read"`
	CreateTime  int64     `json:"createTime"`
	Sender      *UserInfo `json:"sender,omitempty"`
	Receiver    *UserInfo `json:"receiver,omitempty"`
}

type ConversationInfo struct {
	OtherUserId string       `json:"otherUserId"`
	OtherUser   *UserInfo    `json:"otherUser"`
	LastMessage *MessageInfo `json:"lastMessage"`
	UnreadCount int64        `json:"unreadCount"`
}

type ListConversationsResp struct {
	Conversations []*ConversationInfo `json:"conversations"`
	Total         int64               `json:"total"`
}

type SendMessageReq struct {
	ReceiverId  string   `form:"receiverId" json:"receiverId" query:"receiverId" validate:"required,mongodb"`
	Content     string   `form:"content" json:"content" query:"content" validate:"required,notblank"`
	Attachments []string `form:"attachments" json:"attachments" query:"attachments" validate:"omitempty,dive,url"`
}

type GetThreadReq struct {
	UserId string `path:"userId" json:"-" validate:"required,mongodb"`
}

type GetThreadResp struct {
	Messages []*MessageInfo `json:"messages"`
	Total    int64          `json:"total"`
}

type MessageReq struct {
	Id string `path:"id" json:"-" validate:"required,mongodb"`
}
