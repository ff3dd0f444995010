package resource

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
	CollectionName = "resource"
)

type IMongoMapper interface {
	Insert(ctx context.Context, r *Resource) error
	Update(ctx context.Context, r *Resource) error
	FindOne(ctx context.Context, id string) (*Resource, error)
	FindMany(ctx context.Context, classID string) ([]*Resource, error)
	Delete(ctx context.Context, id string) error
	DeleteByClassID(ctx context.Context, classID string) error
}

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewResourceMongoMapper collection: %s", CollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, CollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, r *Resource) error {
	if r.ID.IsZero() {
		r.ID = primitive.NewObjectID()
		r.CreateTime = time.Now()
		r.UpdateTime = r.CreateTime
	}
	if r.Tags == nil {
		r.Tags = []string{}
	}
	_, err := m.conn.InsertOneNoCache(ctx, r)
	return err
}

func (m *MongoMapper) Update(ctx context.Context, r *Resource) error {
	r.UpdateTime = time.Now()
	_, err := m.conn.UpdateByIDNoCache(ctx, r.ID, bson.M{consts.Set: r})
	return err
}

func (m *MongoMapper) FindOne(ctx context.Context, id string) (*Resource, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	var r Resource
	err = m.conn.FindOneNoCache(ctx, &r, bson.M{consts.ID: oid})
	switch {
	case err == nil:
		return &r, nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return nil, consts.ErrNotFound
	default:
		return nil, err
	}
}

// FindMany 按班级筛选, 最新上传的在前
func (m *MongoMapper) FindMany(ctx context.Context, classID string) ([]*Resource, error) {
	var resources []*Resource
	filter := bson.M{}
	if classID != "" {
		filter[consts.ClassID] = classID
	}
	err := m.conn.Find(ctx, &resources, filter, &options.FindOptions{
		Sort: bson.M{consts.CreateTime: -1},
	})
	if err != nil {
		return nil, err
	}
	return resources, nil
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
