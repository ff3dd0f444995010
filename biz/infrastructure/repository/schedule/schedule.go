package schedule

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Session 一节固定的每周课程, 时间统一存为 HH:MM
type Session struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ClassID    string             `bson:"class_id" json:"classId"`
	DayOfWeek  string             `bson:"day_of_week" json:"dayOfWeek"`
	StartTime  string             `bson:"start_time" json:"startTime"`
	EndTime    string             `bson:"end_time" json:"endTime"`
	Subject    string             `bson:"subject" json:"subject"`
	Room       string             `bson:"room,omitempty" json:"room,omitempty"`
	CreateTime time.Time          `bson:"create_time" json:"createTime"`
	UpdateTime time.Time          `bson:"update_time" json:"updateTime"`
}
