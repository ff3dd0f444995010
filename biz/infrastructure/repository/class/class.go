package class

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Class struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Subject     string             `bson:"subject" json:"subject"`
	GradeLevel  string             `bson:"grade_level" json:"gradeLevel"`
	TeacherID   string             `bson:"teacher_id" json:"teacherId"`
	MemberCount int64              `bson:"member_count" json:"memberCount"` // 已加入的学生数
	CreateTime  time.Time          `bson:"create_time" json:"createTime"`
	UpdateTime  time.Time          `bson:"update_time" json:"updateTime"`
}
