package message

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Message struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SenderID    string             `bson:"sender_id" json:"senderId"`
	ReceiverID  string             `bson:"receiver_id" json:"receiverId"`
	Content     string             `bson:"content" json:"content"`
	Attachments []string           `bson:"attachments" json:"attachments"`
	Read        bool               `bson:"read" json:"read"`
	CreateTime  time.Time          `bson:"create_time" json:"createTime"`
}
