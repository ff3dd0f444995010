package resource

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Resource struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	FileURL     string             `bson:"file_url" json:"fileUrl"`
	FileType    string             `bson:"file_type" json:"fileType"`
	FileSize    int64              `bson:"file_size,omitempty" json:"fileSize,omitempty"`
	ClassID     string             `bson:"class_id" json:"classId"`
	UploadedBy  string             `bson:"uploaded_by" json:"uploadedBy"`
	Tags        []string           `bson:"tags" json:"tags"`
	CreateTime  time.Time          `bson:"create_time" json:"createTime"`
	UpdateTime  time.Time          `bson:"update_time" json:"updateTime"`
}
