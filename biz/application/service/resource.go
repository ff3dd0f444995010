package service

import (
	"context"
	"strings"

	"school-hub/biz/application/dto/basic"
	"school-hub/biz/application/dto/school/show"
	"school-hub/biz/infrastructure/consts"
	"school-hub/biz/infrastructure/repository/class"
	"school-hub/biz/infrastructure/repository/resource"
	"school-hub/biz/infrastructure/repository/user"
	"school-hub/biz/infrastructure/util"
	"school-hub/biz/infrastructure/util/log"
	"school-hub/biz/infrastructure/util/validate"

	"github.com/google/wire"
	"github.com/samber/lo"
	"github.com/spf13/cast"
)

type IResourceService interface {
	ListResources(ctx context.Context, meta *basic.UserMeta, req *show.ListResourcesReq) (*show.ListResourcesResp, error)
	GetResource(ctx context.Context, meta *basic.UserMeta, req *show.ResourceReq) (*show.ResourceInfo, error)
	CreateResource(ctx context.Context, meta *basic.UserMeta, req *show.CreateResourceReq) (*show.ResourceInfo, error)
	UpdateResource(ctx context.Context, meta *basic.UserMeta, req *show.UpdateResourceReq) (*show.ResourceInfo, error)
	DeleteResource(ctx context.Context, meta *basic.UserMeta, req *show.ResourceReq) error
}

type ResourceService struct {
	ResourceMapper resource.IMongoMapper
	ClassMapper    class.IMongoMapper
	UserMapper     user.IMongoMapper
}

var ResourceServiceSet = wire.NewSet(
	wire.Struct(new(ResourceService), "*"),
	wire.Bind(new(IResourceService), new(*ResourceService)),
)

func toResourceInfo(r *resource.Resource) *show.ResourceInfo {
	info := new(show.ResourceInfo)
	if err := util.Copy(info, r); err != nil {
		log.Error("copy resource %s fail, err=%v", r.ID.Hex(), err)
	}
	return info
}

// parseFileSize 空值视为未提供
func parseFileSize(v show.FlexString) (int64, error) {
	if v == "" {
		return 0, nil
	}
	size, err := cast.ToInt64E(strings.TrimSpace(string(v)))
	if err != nil || size < 0 {
		return 0, validate.Field("fileSize", "fileSize must be a non-negative integer")
	}
	return size, nil
}

func (s *ResourceService) ListResources(ctx context.Context, meta *basic.UserMeta, req *show.ListResourcesReq) (*show.ListResourcesResp, error) {
	if _, err := currentUser(meta); err != nil {
		return nil, err
	}
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	resources, err := s.ResourceMapper.FindMany(ctx, req.ClassId)
	if err != nil {
		return nil, err
	}
	uploaders, err := s.UserMapper.FindByIDs(ctx, lo.Map(resources, func(r *resource.Resource, _ int) string { return r.UploadedBy }))
	if err != nil {
		return nil, err
	}
	byID := lo.KeyBy(uploaders, func(u *user.User) string { return u.ID.Hex() })

	infos := lo.Map(resources, func(r *resource.Resource, _ int) *show.ResourceInfo {
		info := toResourceInfo(r)
		if u, ok := byID[r.UploadedBy]; ok {
			info.Uploader = publicProfile(u)
		} else {
			info.Uploader = deletedProfile(r.UploadedBy)
		}
		return info
	})
	return &show.ListResourcesResp{Resources: infos, Total: int64(len(infos))}, nil
}

func (s *ResourceService) GetResource(ctx context.Context, meta *basic.UserMeta, req *show.ResourceReq) (*show.ResourceInfo, error) {
	if _, err := currentUser(meta); err != nil {
		return nil, err
	}
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	r, err := s.ResourceMapper.FindOne(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	info := toResourceInfo(r)
	if u, err := s.UserMapper.FindOne(ctx, r.UploadedBy); err == nil {
		info.Uploader = publicProfile(u)
	} else {
		info.Uploader = deletedProfile(r.UploadedBy)
	}
	return info, nil
}

// CreateResource 上传者为当前用户, 班级必须存在
func (s *ResourceService) CreateResource(ctx context.Context, meta *basic.UserMeta, req *show.CreateResourceReq) (*show.ResourceInfo, error) {
	uid, err := currentUser(meta)
	if err != nil {
		return nil, err
	}
	if err = validate.Struct(req); err != nil {
		return nil, err
	}
	size, err := parseFileSize(req.FileSize)
	if err != nil {
		return nil, err
	}
	if _, err = s.ClassMapper.FindOne(ctx, req.ClassId); err != nil {
		return nil, err
	}

	r := &resource.Resource{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		FileURL:     req.FileUrl,
		FileType:    strings.TrimSpace(req.FileType),
		FileSize:    size,
		ClassID:     req.ClassId,
		UploadedBy:  uid,
		Tags:        lo.Uniq(lo.Map(req.Tags, func(t string, _ int) string { return strings.TrimSpace(t) })),
	}
	if err = s.ResourceMapper.Insert(ctx, r); err != nil {
		log.CtxError(ctx, "insert resource fail, err=%v", err)
		return nil, consts.ErrCreateResource
	}
	return toResourceInfo(r), nil
}

// ownedResource 只有上传者可以修改或删除
func (s *ResourceService) ownedResource(ctx context.Context, uid, id string) (*resource.Resource, error) {
	r, err := s.ResourceMapper.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	if r.UploadedBy != uid {
		return nil, consts.ErrForbidden.WithMessage("only the uploader can modify this resource")
	}
	return r, nil
}

func (s *ResourceService) UpdateResource(ctx context.Context, meta *basic.UserMeta, req *show.UpdateResourceReq) (*show.ResourceInfo, error) {
	uid, err := currentUser(meta)
	if err != nil {
		return nil, err
	}
	if err = validate.Struct(req); err != nil {
		return nil, err
	}
	r, err := s.ownedResource(ctx, uid, req.Id)
	if err != nil {
		return nil, err
	}
	if req.FileSize != "" {
		if r.FileSize, err = parseFileSize(req.FileSize); err != nil {
			return nil, err
		}
	}
	if req.Title != nil {
		r.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		r.Description = *req.Description
	}
	if req.FileUrl != nil {
		r.FileURL = *req.FileUrl
	}
	if req.FileType != nil {
		r.FileType = strings.TrimSpace(*req.FileType)
	}
	if req.Tags != nil {
		r.Tags = lo.Uniq(req.Tags)
	}
	if err = s.ResourceMapper.Update(ctx, r); err != nil {
		log.CtxError(ctx, "update resource %s fail, err=%v", req.Id, err)
		return nil, consts.ErrUpdate
	}
	return toResourceInfo(r), nil
}

func (s *ResourceService) DeleteResource(ctx context.Context, meta *basic.UserMeta, req *show.ResourceReq) error {
	uid, err := currentUser(meta)
	if err != nil {
		return err
	}
	if err = validate.Struct(req); err != nil {
		return err
	}
	if _, err = s.ownedResource(ctx, uid, req.Id); err != nil {
		return err
	}
	return s.ResourceMapper.Delete(ctx, req.Id)
}
