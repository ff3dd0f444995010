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
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	MemberCollectionName = "class_member"
)

type IMemberMongoMapper interface {
	Insert(ctx context.Context, member *ClassMember) error
	FindByClassID(ctx context.Context, classID string) ([]*ClassMember, error)
	FindByStuID(ctx context.Context, userID string) ([]*ClassMember, error)
	FindByClassIDAndStuID(ctx context.Context, classID, userID string) (*ClassMember, error)
	Delete(ctx context.Context, id string) error
	DeleteByClassID(ctx context.Context, classID string) error
}

type MemberMongoMapper struct {
	conn *monc.Model
}

func NewMemberMongoMapper(config *config.Config) *MemberMongoMapper {
	log.Info("NewMemberMongoMapper collection: %s", MemberCollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, MemberCollectionName, config.Cache)
	return &MemberMongoMapper{
		conn: conn,
	}
}

func (m *MemberMongoMapper) Insert(ctx context.Context, member *ClassMember) error {
	if member.ID.IsZero() {
		member.ID = primitive.NewObjectID()
		member.CreateTime = time.Now()
		member.UpdateTime = member.CreateTime
	}
	_, err := m.conn.InsertOneNoCache(ctx, member)
	return err
}

func (m *MemberMongoMapper) FindByClassID(ctx context.Context, classID string) ([]*ClassMember, error) {
	var members []*ClassMember
	filter := bson.M{consts.ClassID: classID}

	err := m.conn.Find(ctx, &members, filter, &options.FindOptions{
		Sort: bson.M{"join_time": 1},
	})
	if err != nil {
		return nil, err
	}
	return members, nil
}

func (m *MemberMongoMapper) FindByStuID(ctx context.Context, userID string) ([]*ClassMember, error) {
	var members []*ClassMember
	filter := bson.M{consts.UserID: userID, consts.RoleKey: consts.RoleStudent}

	err := m.conn.Find(ctx, &members, filter, &options.FindOptions{
		Sort: bson.M{"join_time": -1},
	})
	if err != nil {
		return nil, err
	}
	return members, nil
}

func (m *MemberMongoMapper) FindByClassIDAndStuID(ctx context.Context, classID, userID string) (*ClassMember, error) {
	var member ClassMember
	filter := bson.M{
		consts.ClassID: classID,
		consts.UserID:  userID,
		consts.RoleKey: consts.RoleStudent,
	}

	err := m.conn.FindOneNoCache(ctx, &member, filter)
	switch {
	case err == nil:
		return &member, nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return nil, consts.ErrNotFound
	default:
		return nil, err
	}
}

func (m *MemberMongoMapper) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}

	_, err = m.conn.DeleteOneNoCache(ctx, bson.M{consts.ID: oid})
	return err
}

func (m *MemberMongoMapper) DeleteByClassID(ctx context.Context, classID string) error {
	_, err := m.conn.DeleteMany(ctx, bson.M{consts.ClassID: classID})
	return err
}
