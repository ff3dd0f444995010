package util

import (
	"errors"
	"time"

	"github.com/jinzhu/copier"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var copyOption = copier.Option{
	IgnoreEmpty: false,
	DeepCopy:    true,
	Converters: []copier.TypeConverter{
		{
			SrcType: primitive.ObjectID{},
			DstType: "",
			Fn: func(src any) (any, error) {
				oid, ok := src.(primitive.ObjectID)
				if !ok {
					return nil, errors.New("src type not matching")
				}
				return oid.Hex(), nil
			},
		},
		{
			SrcType: time.Time{},
			DstType: int64(0),
			Fn: func(src any) (any, error) {
				t, ok := src.(time.Time)
				if !ok {
					return nil, errors.New("src type not matching")
				}
				return t.Unix(), nil
			},
		},
	},
}

// Copy 数据库模型转换为响应结构, ObjectID 转 hex, 时间转秒级时间戳
func Copy(to, from any) error {
	return copier.CopyWithOption(to, from, copyOption)
}
