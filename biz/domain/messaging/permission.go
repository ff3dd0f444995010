package messaging

import "school-hub/biz/infrastructure/consts"

// allowedReceivers 发送方角色 -> 允许的接收方角色, 不做对称推导
var allowedReceivers = map[consts.Role]map[consts.Role]bool{
	consts.RoleTeacher: {consts.RoleStudent: true, consts.RoleParent: true},
	consts.RoleStudent: {consts.RoleTeacher: true},
	consts.RoleParent:  {consts.RoleTeacher: true},
}

// CanMessage 判断 sender 是否可以给 receiver 发消息
func CanMessage(sender, receiver consts.Role) bool {
	return allowedReceivers[sender][receiver]
}
