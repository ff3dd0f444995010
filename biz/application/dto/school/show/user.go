package show

import (
	"school-hub/biz/application/dto/basic"
)

type UserInfo struct {
	Id             string   `json:"id"`
	Email          string   `json:"email,omitempty"`
	Name           string   `json:"name"`
	Role           string   `json:"role,omitempty"`
	ParentId       string   `json:"parentId,omitempty"`
	LinkedChildren []string `json:"linkedChildren,omitempty"`
	ProfilePicture string   `json:"profilePicture,omitempty"`
	Deleted        bool     `json:"deleted,omitempty"`
	CreateTime     int64    `json:"createTime,omitempty"`
	UpdateTime     int64    `json:"updateTime,omitempty"`
}

type RegisterReq struct {
	Email    string  `form:"email" json:"email" query:"email" validate:"required,email"`
	Password string  `form:"password" json:"password" query:"password" validate:"required,min=6"`
	Name     string  `form:"name" json:"name" query:"name" validate:"required,notblank,min=2"`
	Role     string  `form:"role" json:"role" query:"role" validate:"required,role"`
	ParentId *string `form:"parentId" json:"parentId,omitempty" query:"parentId" validate:"omitempty,mongodb"`
}

type SignInReq struct {
	Email    string `form:"email" json:"email" query:"email" validate:"required,email"`
	Password string `form:"password" json:"password" query:"password" validate:"required"`
}

type SignInResp struct {
	Id           string `json:"id"`
	AccessToken  string `json:"accessToken"`
	AccessExpire int64  `json:"accessExpire"`
	Name         string `json:"name"`
	Role         string `json:"role"`
}

type ListUsersReq struct {
	Email string `form:"email" json:"email" query:"email" validate:"omitempty,email"`
	Role  string `form:"role" json:"role" query:"role" validate:"omitempty,role"`
	basic.PaginationOptions
}

type ListUsersResp struct {
	Users []*UserInfo `json:"users"`
	Total int64       `json:"total"`
}

type UpdateProfileReq struct {
	Name           *string `form:"name" json:"name,omitempty" query:"name" validate:"omitempty,notblank,min=2"`
	ProfilePicture *string `form:"profilePicture" json:"profilePicture,omitempty" query:"profilePicture" validate:"omitempty,url"`
}

type LinkChildReq struct {
	ChildId string `form:"childId" json:"childId" query:"childId" validate:"required,mongodb"`
}
