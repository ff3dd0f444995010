package user

import (
	"time"

	"school-hub/biz/infrastructure/consts"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email          string             `bson:"email" json:"email"`
	PasswordHash   string             `bson:"password_hash" json:"-"`
	Name           string             `bson:"name" json:"name"`
	Role           consts.Role        `bson:"role" json:"role"`
	ParentID       string             `bson:"parent_id,omitempty" json:"parentId,omitempty"` // 仅学生
	LinkedChildren []string           `bson:"linked_children" json:"linkedChildren"`         // 仅家长
	ProfilePicture string             `bson:"profile_picture,omitempty" json:"profilePicture,omitempty"`
	CreateTime     time.Time          `bson:"create_time" json:"createTime"`
	UpdateTime     time.Time          `bson:"update_time" json:"updateTime"`
}

// Filter 用户列表筛选条件, 空值表示不筛选
type Filter struct {
	Email string
	Role  consts.Role
}

// ProfileUpdate 用户可自行修改的字段, nil 表示不修改
type ProfileUpdate struct {
	Name           *string
	ProfilePicture *string
}
