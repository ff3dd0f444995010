package class

import (
	"time"

	"school-hub/biz/infrastructure/consts"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ClassMember struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ClassID    string             `bson:"class_id" json:"classId"`
	UserID     string             `bson:"user_id" json:"userId"`
	Role       consts.Role        `bson:"role" json:"role"`
	JoinTime   time.Time          `bson:"join_time" json:"joinTime"`
	CreateTime time.Time          `bson:"create_time" json:"createTime"`
	UpdateTime time.Time          `bson:"update_time" json:"updateTime"`
}
