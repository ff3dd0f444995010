package messaging

import (
	"sort"
	"time"
)

// Message 聚合所需的消息字段
type Message struct {
	ID          string
	SenderID    string
	ReceiverID  string
	Content     string
	Attachments []string
	Read        bool
	CreateTime  time.Time
}

// Conversation 以对方用户为键的会话摘要, 不落库
type Conversation struct {
	OtherUserID string
	LastMessage Message
	UnreadCount int64
}

// Newer createTime 更大者更新; 时间相同时 id 更大者更新
func Newer(a, b Message) bool {
	if !a.CreateTime.Equal(b.CreateTime) {
		return a.CreateTime.After(b.CreateTime)
	}
	return a.ID > b.ID
}

// Counterparty 返回相对 userID 的另一方, 与 userID 无关的消息返回 false
func Counterparty(userID string, m Message) (string, bool) {
	switch userID {
	case m.SenderID:
		return m.ReceiverID, true
	case m.ReceiverID:
		return m.SenderID, true
	default:
		return "", false
	}
}

// BuildConversations 按对方用户分组, 取最新消息并统计发给 userID 的未读数, 最近活跃的会话在前
func BuildConversations(userID string, messages []Message) []Conversation {
	index := make(map[string]int)
	convs := make([]Conversation, 0)
	for _, m := range messages {
		other, ok := Counterparty(userID, m)
		if !ok {
			continue
		}
		i, seen := index[other]
		if !seen {
			i = len(convs)
			index[other] = i
			convs = append(convs, Conversation{OtherUserID: other, LastMessage: m})
		} else if Newer(m, convs[i].LastMessage) {
			convs[i].LastMessage = m
		}
		if m.ReceiverID == userID && !m.Read {
			convs[i].UnreadCount++
		}
	}
	SortConversations(convs)
	return convs
}

func SortConversations(convs []Conversation) {
	sort.SliceStable(convs, func(i, j int) bool {
		return Newer(convs[i].LastMessage, convs[j].LastMessage)
	})
}
