package basic

// UserMeta 从访问令牌中解析出的当前用户
type UserMeta struct {
	UserId string `json:"userId" mapstructure:"userId"`
	Role   string `json:"role" mapstructure:"role"`
}

func (x *UserMeta) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *UserMeta) GetRole() string {
	if x != nil {
		return x.Role
	}
	return ""
}

type PaginationOptions struct {
	Page  string `form:"page" json:"page" query:"page" validate:"omitempty,numeric"`
	Limit string `form:"limit" json:"limit" query:"limit" validate:"omitempty,numeric"`
}
