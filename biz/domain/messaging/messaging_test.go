package messaging

import (
	"testing"
	"time"

	"school-hub/biz/infrastructure/consts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanMessage(t *testing.T) {
	tests := []struct {
		sender   consts.Role
		receiver consts.Role
		want     bool
	}{
		{consts.RoleTeacher, consts.RoleStudent, true},
		{consts.RoleTeacher, consts.RoleParent, true},
		{consts.RoleTeacher, consts.RoleTeacher, false},
		{consts.RoleStudent, consts.RoleTeacher, true},
		{consts.RoleStudent, consts.RoleStudent, false},
		{consts.RoleStudent, consts.RoleParent, false},
		{consts.RoleParent, consts.RoleTeacher, true},
		{consts.RoleParent, consts.RoleStudent, false},
		{consts.RoleParent, consts.RoleParent, false},
	}
	allowed := 0
	for _, tt := range tests {
		t.Run(string(tt.sender)+"->"+string(tt.receiver), func(t *testing.T) {
			assert.Equal(t, tt.want, CanMessage(tt.sender, tt.receiver))
		})
		if CanMessage(tt.sender, tt.receiver) {
			allowed++
		}
	}
	assert.Equal(t, 4, allowed)
}

func TestCanMessage_UnknownRole(t *testing.T) {
	assert.False(t, CanMessage("Admin", consts.RoleTeacher))
	assert.False(t, CanMessage(consts.RoleTeacher, ""))
}

func TestBuildConversations_Scenario(t *testing.T) {
	t1 := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	msgs := []Message{
		{ID: "m1", SenderID: "A", ReceiverID: "B", CreateTime: t1},
		{ID: "m2", SenderID: "B", ReceiverID: "A", Read: true, CreateTime: t1.Add(time.Minute)},
		{ID: "m3", SenderID: "A", ReceiverID: "B", CreateTime: t1.Add(2 * time.Minute)},
	}

	convs := BuildConversations("B", msgs)
	require.Len(t, convs, 1)
	assert.Equal(t, "A", convs[0].OtherUserID)
	assert.Equal(t, "m3", convs[0].LastMessage.ID)
	assert.Equal(t, int64(2), convs[0].UnreadCount)

	// 发送方自己的视角下没有未读
	convs = BuildConversations("A", msgs)
	require.Len(t, convs, 1)
	assert.Equal(t, "B", convs[0].OtherUserID)
	assert.Equal(t, int64(0), convs[0].UnreadCount)
}

func TestBuildConversations_OrderingAndScope(t *testing.T) {
	base := time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC)
	msgs := []Message{
		{ID: "01", SenderID: "T", ReceiverID: "S1", CreateTime: base},
		{ID: "02", SenderID: "P", ReceiverID: "T", CreateTime: base.Add(time.Hour)},
		{ID: "03", SenderID: "S2", ReceiverID: "X", CreateTime: base.Add(2 * time.Hour)},
		{ID: "04", SenderID: "S1", ReceiverID: "T", CreateTime: base.Add(30 * time.Minute)},
		{ID: "05", SenderID: "T", ReceiverID: "P", Read: true, CreateTime: base.Add(3 * time.Hour)},
	}

	convs := BuildConversations("T", msgs)
	require.Len(t, convs, 2)
	assert.Equal(t, "P", convs[0].OtherUserID)
	assert.Equal(t, "05", convs[0].LastMessage.ID)
	assert.Equal(t, int64(1), convs[0].UnreadCount)
	assert.Equal(t, "S1", convs[1].OtherUserID)
	assert.Equal(t, "04", convs[1].LastMessage.ID)
	assert.Equal(t, int64(1), convs[1].UnreadCount)

	for _, c := range convs {
		other, ok := Counterparty("T", c.LastMessage)
		assert.True(t, ok)
		assert.Equal(t, c.OtherUserID, other)
	}
}

func TestBuildConversations_TieBreak(t *testing.T) {
	at := time.Date(2024, 5, 6, 10, 0, 0, 0, time.UTC)
	msgs := []Message{
		{ID: "65f000000000000000000002", SenderID: "A", ReceiverID: "B", CreateTime: at},
		{ID: "65f000000000000000000001", SenderID: "B", ReceiverID: "A", CreateTime: at},
	}
	convs := BuildConversations("A", msgs)
	require.Len(t, convs, 1)
	assert.Equal(t, "65f000000000000000000002", convs[0].LastMessage.ID)

	// 输入顺序不影响结果
	msgs[0], msgs[1] = msgs[1], msgs[0]
	convs = BuildConversations("A", msgs)
	assert.Equal(t, "65f000000000000000000002", convs[0].LastMessage.ID)
}

func TestBuildConversations_SendingDoesNotChangeUnread(t *testing.T) {
	at := time.Date(2024, 5, 6, 10, 0, 0, 0, time.UTC)
	msgs := []Message{
		{ID: "1", SenderID: "T", ReceiverID: "S", CreateTime: at},
		{ID: "2", SenderID: "T", ReceiverID: "S", CreateTime: at.Add(time.Second)},
	}
	before := BuildConversations("S", msgs)[0].UnreadCount

	msgs = append(msgs, Message{ID: "3", SenderID: "S", ReceiverID: "T", CreateTime: at.Add(2 * time.Second)})
	after := BuildConversations("S", msgs)[0]
	assert.Equal(t, before, after.UnreadCount)
	assert.Equal(t, "3", after.LastMessage.ID)
}

func TestBuildConversations_Empty(t *testing.T) {
	assert.Empty(t, BuildConversations("A", nil))
}
