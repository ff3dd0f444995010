package schedule

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
)

const (
	CollectionName = "schedule"
)

type IMongoMapper interface {
	Insert(ctx context.Context, s *Session) error
	Update(ctx context.Context, s *Session) error
	FindOne(ctx context.Context, id string) (*Session, error)
	// FindMany 按班级筛选, classID 为空时返回全部
	FindMany(ctx context.Context, classID string) ([]*Session, error)
	FindByClassAndDay(ctx context.Context, classID, day string) ([]*Session, error)
	Delete(ctx context.Context, id string) error
	DeleteByClassID(ctx context.Context, classID string) error
}

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewScheduleMongoMapper collection: %s", CollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, CollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, s *Session) error {
	if s.ID.IsZero() {
		s.ID = primitive.NewObjectID()
		s.CreateTime = time.Now()
		s.UpdateTime = s.CreateTime
	}
	_, err := m.conn.InsertOneNoCache(ctx, s)
	return err
}

func (m *MongoMapper) Update(ctx context.Context, s *Session) error {
	s.UpdateTime = time.Now()
	res, err := m.conn.UpdateByIDNoCache(ctx, s.ID, bson.M{consts.Set: s})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return consts.ErrNotFound
	}
	return nil
}

func (m *MongoMapper) FindOne(ctx context.Context, id string) (*Session, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	var s Session
	err = m.conn.FindOneNoCache(ctx, &s, bson.M{consts.ID: oid})
	switch {
	case err == nil:
		return &s, nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return nil, consts.ErrNotFound
	default:
		return nil, err
	}
}

func (m *MongoMapper) FindMany(ctx context.Context, classID string) ([]*Session, error) {
	var sessions []*Session
	filter := bson.M{}
	if classID != "" {
		filter[consts.ClassID] = classID
	}
	if err := m.conn.Find(ctx, &sessions, filter); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (m *MongoMapper) FindByClassAndDay(ctx context.Context, classID, day string) ([]*Session, error) {
	var sessions []*Session
	err := m.conn.Find(ctx, &sessions, bson.M{
		consts.ClassID:   classID,
		consts.DayOfWeek: day,
	})
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func (m *MongoMapper) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	_, err = m.conn.DeleteOneNoCache(ctx, bson.M{consts.ID: oid})
	return err
}

func (m *MongoMapper) DeleteByClassID(ctx context.Context, classID string) error {
	_, err := m.conn.DeleteMany(ctx, bson.M{consts.ClassID: classID})
	return err
}
