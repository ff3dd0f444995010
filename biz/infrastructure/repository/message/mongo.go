package message

import (
	"context"
	"errors"
	"time"

	"school-hub/biz/infrastructure/config"
	"school-hub/biz/infrastructure/consts"
	"school-hub/biz/infrastructure/util/log"

	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CollectionName = "message"
)

type IMongoMapper interface {
	Insert(ctx context.Context, msg *Message) error
	FindOne(ctx context.Context, id string) (*Message, error)
	// FindByParticipant 返回用户作为发送方或接收方的全部消息
	FindByParticipant(ctx context.Context, userID string) ([]*Message, error)
	// FindThread 返回两人之间的消息, 按时间正序
	FindThread(ctx context.Context, userID, otherID string) ([]*Message, error)
	MarkRead(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewMessageMongoMapper collection: %s", CollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, CollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, msg *Message) error {
	if msg.ID.IsZero() {
		msg.ID = primitive.NewObjectID()
		msg.CreateTime = time.Now()
	}
	if msg.Attachments == nil {
		msg.Attachments = []string{}
	}
	_, err := m.conn.InsertOneNoCache(ctx, msg)
	return err
}

func (m *MongoMapper) FindOne(ctx context.Context, id string) (*Message, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	var msg Message
	err = m.conn.FindOneNoCache(ctx, &msg, bson.M{consts.ID: oid})
	switch {
	case err == nil:
		return &msg, nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return nil, consts.ErrNotFound
	default:
		return nil, err
	}
}

func (m *MongoMapper) FindByParticipant(ctx context.Context, userID string) ([]*Message, error) {
	var msgs []*Message
	err := m.conn.Find(ctx, &msgs, bson.M{
		consts.Or: bson.A{
			bson.M{consts.SenderID: userID},
			bson.M{consts.ReceiverID: userID},
		},
	})
	if err != nil {
		return nil, err
	}
	return msgs, nil
}

func (m *MongoMapper) FindThread(ctx context.Context, userID, otherID string) ([]*Message, error) {
	var msgs []*Message
	err := m.conn.Find(ctx, &msgs, bson.M{
		consts.Or: bson.A{
			bson.M{consts.SenderID: userID, consts.ReceiverID: otherID},
			bson.M{consts.SenderID: otherID, consts.ReceiverID: userID},
		},
	}, &options.FindOptions{
		Sort: bson.D{{Key: consts.CreateTime, Value: 1}, {Key: consts.ID, Value: 1}},
	})
	if err != nil {
		return nil, err
	}
	return msgs, nil
}

func (m *MongoMapper) MarkRead(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	res, err := m.conn.UpdateByIDNoCache(ctx, oid, bson.M{consts.Set: bson.M{"read": true}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return consts.ErrNotFound
	}
	return nil
}

func (m *MongoMapper) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	_, err = m.conn.DeleteOneNoCache(ctx, bson.M{consts.ID: oid})
	return err
}
