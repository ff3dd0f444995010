package consts

import "strings"

// Role 用户角色, 只允许以下三种
type Role string

const (
	RoleTeacher Role = "Teacher"
	RoleStudent Role = "Student"
	RoleParent  Role = "Parent"
)

var Roles = []Role{RoleTeacher, RoleStudent, RoleParent}

// ParseRole 忽略大小写解析角色, 返回规范写法
func ParseRole(s string) (Role, bool) {
	s = strings.TrimSpace(s)
	for _, r := range Roles {
		if strings.EqualFold(s, string(r)) {
			return r, true
		}
	}
	return "", false
}

func (r Role) Valid() bool {
	for _, x := range Roles {
		if r == x {
			return true
		}
	}
	return false
}

func (r Role) String() string { return string(r) }
