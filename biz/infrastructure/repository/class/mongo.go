package class

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
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	ClassCollectionName = "class"
)

type IMongoMapper interface {
	Insert(ctx context.Context, class *Class) error
	Update(ctx context.Context, class *Class) error
	FindOne(ctx context.Context, id string) (*Class, error)
	FindByIDs(ctx context.Context, ids []string) ([]*Class, error)
	FindMany(ctx context.Context, teacherID string) ([]*Class, error)
	UpdateMemberCount(ctx context.Context, id string, increment int64) error
	Delete(ctx context.Context, id string) error
}

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewClassMongoMapper collection: %s", ClassCollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, ClassCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, class *Class) error {
	if class.ID.IsZero() {
		class.ID = primitive.NewObjectID()
		class.CreateTime = time.Now()
		class.UpdateTime = class.CreateTime
	}
	_, err := m.conn.InsertOneNoCache(ctx, class)
	return err
}

func (m *MongoMapper) Update(ctx context.Context, class *Class) error {
	class.UpdateTime = time.Now()
	_, err := m.conn.UpdateByIDNoCache(ctx, class.ID, bson.M{consts.Set: class})
	return err
}

func (m *MongoMapper) FindOne(ctx context.Context, id string) (*Class, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	var c Class
	err = m.conn.FindOneNoCache(ctx, &c, bson.M{
		consts.ID: oid,
	})
	switch {
	case err == nil:
		return &c, nil
	case errors.Is(err, monc.ErrNotFound):
		return nil, consts.ErrNotFound
	default:
		return nil, err
	}
}

func (m *MongoMapper) FindByIDs(ctx context.Context, ids []string) ([]*Class, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			oids = append(oids, oid)
		}
	}
	var classes []*Class
	if len(oids) == 0 {
		return classes, nil
	}
	err := m.conn.Find(ctx, &classes, bson.M{consts.ID: bson.M{consts.In: oids}}, &options.FindOptions{
		Sort: bson.M{consts.CreateTime: -1},
	})
	if err != nil {
		return nil, err
	}
	return classes, nil
}

// FindMany 按教师筛选, teacherID 为空时返回全部
func (m *MongoMapper) FindMany(ctx context.Context, teacherID string) ([]*Class, error) {
	var classes []*Class
	filter := bson.M{}
	if teacherID != "" {
		filter = bson.M{"teacher_id": teacherID}
	}

	err := m.conn.Find(ctx, &classes, filter, &options.FindOptions{
		Sort: bson.M{consts.CreateTime: -1},
	})
	if err != nil {
		return nil, err
	}
	return classes, nil
}

func (m *MongoMapper) UpdateMemberCount(ctx context.Context, id string, increment int64) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	_, err = m.conn.UpdateByIDNoCache(ctx, oid, bson.M{
		consts.Inc: bson.M{
			"member_count": increment,
		},
		consts.Set: bson.M{
			consts.UpdateTime: time.Now(),
		},
	})
	return err
}

func (m *MongoMapper) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	_, err = m.conn.DeleteOneNoCache(ctx, bson.M{consts.ID: oid})
	return err
}
