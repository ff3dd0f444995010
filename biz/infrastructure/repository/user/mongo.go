package user

import (
	"context"
	"errors"
	"time"

	"school-hub/biz/infrastructure/config"
	"school-hub/biz/infrastructure/consts"
	"school-hub/biz/infrastructure/util/log"

	"github.com/samber/lo"
	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	prefixUserCacheKey = "cache:user:"
	CollectionName     = "user"
)

type IMongoMapper interface {
	Insert(ctx context.Context, u *User) error
	UpdateProfile(ctx context.Context, id string, p ProfileUpdate) error
	FindOne(ctx context.Context, id string) (*User, error)
	FindOneByEmail(ctx context.Context, email string) (*User, error)
	FindByIDs(ctx context.Context, ids []string) ([]*User, error)
	FindMany(ctx context.Context, filter Filter) ([]*User, error)
	SetParent(ctx context.Context, childID, parentID string) error
	AddChild(ctx context.Context, parentID, childID string) error
	RemoveChild(ctx context.Context, parentID, childID string) error
	Delete(ctx context.Context, id string) error
}

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewUserMongoMapper collection: %s", CollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, CollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func cacheKey(id string) string {
	return prefixUserCacheKey + id
}

func (m *MongoMapper) Insert(ctx context.Context, u *User) error {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
		u.CreateTime = time.Now()
		u.UpdateTime = u.CreateTime
	}
	if u.LinkedChildren == nil {
		u.LinkedChildren = []string{}
	}
	_, err := m.conn.InsertOneNoCache(ctx, u)
	return err
}

// UpdateProfile 只写入资料字段, 不覆盖家长/子女关联
func (m *MongoMapper) UpdateProfile(ctx context.Context, id string, p ProfileUpdate) error {
	set := bson.M{consts.UpdateTime: time.Now()}
	if p.Name != nil {
		set["name"] = *p.Name
	}
	if p.ProfilePicture != nil {
		set["profile_picture"] = *p.ProfilePicture
	}
	return m.updateByHex(ctx, id, bson.M{consts.Set: set})
}

// FindOne 按 id 查询, 走缓存
func (m *MongoMapper) FindOne(ctx context.Context, id string) (*User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	var u User
	err = m.conn.FindOne(ctx, cacheKey(id), &u, bson.M{
		consts.ID: oid,
	})
	switch {
	case err == nil:
		return &u, nil
	case errors.Is(err, monc.ErrNotFound):
		return nil, consts.ErrNotFound
	default:
		return nil, err
	}
}

func (m *MongoMapper) FindOneByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := m.conn.FindOneNoCache(ctx, &u, bson.M{
		consts.Email: email,
	})
	switch {
	case err == nil:
		return &u, nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return nil, consts.ErrNotFound
	default:
		return nil, err
	}
}

// FindByIDs 批量查询, 非法 id 和不存在的用户直接忽略
func (m *MongoMapper) FindByIDs(ctx context.Context, ids []string) ([]*User, error) {
	oids := lo.FilterMap(lo.Uniq(ids), func(id string, _ int) (primitive.ObjectID, bool) {
		oid, err := primitive.ObjectIDFromHex(id)
		return oid, err == nil
	})
	if len(oids) == 0 {
		return []*User{}, nil
	}
	var users []*User
	err := m.conn.Find(ctx, &users, bson.M{consts.ID: bson.M{consts.In: oids}})
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (m *MongoMapper) FindMany(ctx context.Context, filter Filter) ([]*User, error) {
	var users []*User
	q := bson.M{}
	if filter.Email != "" {
		q[consts.Email] = filter.Email
	}
	if filter.Role != "" {
		q[consts.RoleKey] = filter.Role
	}
	err := m.conn.Find(ctx, &users, q, &options.FindOptions{
		Sort: bson.M{consts.CreateTime: -1},
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (m *MongoMapper) SetParent(ctx context.Context, childID, parentID string) error {
	return m.updateByHex(ctx, childID, bson.M{
		consts.Set: bson.M{"parent_id": parentID, consts.UpdateTime: time.Now()},
	})
}

func (m *MongoMapper) AddChild(ctx context.Context, parentID, childID string) error {
	return m.updateByHex(ctx, parentID, bson.M{
		consts.AddToSet: bson.M{"linked_children": childID},
		consts.Set:      bson.M{consts.UpdateTime: time.Now()},
	})
}

func (m *MongoMapper) RemoveChild(ctx context.Context, parentID, childID string) error {
	return m.updateByHex(ctx, parentID, bson.M{
		consts.Pull: bson.M{"linked_children": childID},
		consts.Set:  bson.M{consts.UpdateTime: time.Now()},
	})
}

func (m *MongoMapper) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	_, err = m.conn.DeleteOne(ctx, cacheKey(id), bson.M{consts.ID: oid})
	return err
}

func (m *MongoMapper) updateByHex(ctx context.Context, id string, update bson.M) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	res, err := m.conn.UpdateByID(ctx, cacheKey(id), oid, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return consts.ErrNotFound
	}
	return nil
}
