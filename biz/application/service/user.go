package service

import (
	"context"
	"errors"
	"strings"

	"school-hub/biz/adaptor"
	"school-hub/biz/application/dto/basic"
	"school-hub/biz/application/dto/school/show"
	"school-hub/biz/infrastructure/consts"
	"school-hub/biz/infrastructure/repository/user"
	"school-hub/biz/infrastructure/util/log"
	"school-hub/biz/infrastructure/util/page"
	"school-hub/biz/infrastructure/util/validate"

	"github.com/google/wire"
	"github.com/samber/lo"
	"golang.org/x/crypto/bcrypt"
)

type IUserService interface {
	Register(ctx context.Context, req *show.RegisterReq) (*show.UserInfo, error)
	SignIn(ctx context.Context, req *show.SignInReq) (*show.SignInResp, error)
	ListUsers(ctx context.Context, meta *basic.UserMeta, req *show.ListUsersReq) (*show.ListUsersResp, error)
	GetProfile(ctx context.Context, meta *basic.UserMeta) (*show.UserInfo, error)
	UpdateProfile(ctx context.Context, meta *basic.UserMeta, req *show.UpdateProfileReq) (*show.UserInfo, error)
	LinkChild(ctx context.Context, meta *basic.UserMeta, req *show.LinkChildReq) (*show.UserInfo, error)
}

type UserService struct {
	UserMapper user.IMongoMapper
}

var UserServiceSet = wire.NewSet(
	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),
)

// Register 注册用户, 学生可在注册时关联家长
func (s *UserService) Register(ctx context.Context, req *show.RegisterReq) (*show.UserInfo, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	role, _ := consts.ParseRole(req.Role)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	_, err := s.UserMapper.FindOneByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, consts.ErrEmailExists
	case !errors.Is(err, consts.ErrNotFound):
		return nil, err
	}

	var parent *user.User
	if parentID := lo.FromPtr(req.ParentId); parentID != "" {
		if role != consts.RoleStudent {
			return nil, validate.Field("parentId", "only students can be linked to a parent")
		}
		parent, err = s.UserMapper.FindOne(ctx, parentID)
		if errors.Is(err, consts.ErrNotFound) {
			return nil, validate.Field("parentId", "parent not found")
		} else if err != nil {
			return nil, err
		}
		if parent.Role != consts.RoleParent {
			return nil, validate.Field("parentId", "user is not a parent")
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.CtxError(ctx, "hash password fail, err=%v", err)
		return nil, consts.ErrSignUp
	}
	u := &user.User{
		Email:          email,
		PasswordHash:   string(hash),
		Name:           strings.TrimSpace(req.Name),
		Role:           role,
		LinkedChildren: []string{},
	}
	if parent != nil {
		u.ParentID = parent.ID.Hex()
	}
	if err = s.UserMapper.Insert(ctx, u); err != nil {
		log.CtxError(ctx, "insert user fail, err=%v", err)
		return nil, consts.ErrSignUp
	}
	if parent != nil {
		if err = s.UserMapper.AddChild(ctx, parent.ID.Hex(), u.ID.Hex()); err != nil {
			log.CtxError(ctx, "link child %s to parent %s fail, err=%v", u.ID.Hex(), parent.ID.Hex(), err)
			rollback(ctx, "insert user "+u.ID.Hex(), func() error { return s.UserMapper.Delete(ctx, u.ID.Hex()) })
			return nil, consts.ErrSignUp
		}
	}
	return toUserInfo(u), nil
}

// SignIn 邮箱密码登录, 签发访问令牌
func (s *UserService) SignIn(ctx context.Context, req *show.SignInReq) (*show.SignInResp, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	u, err := s.UserMapper.FindOneByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if errors.Is(err, consts.ErrNotFound) {
		return nil, consts.ErrSignIn
	} else if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return nil, consts.ErrSignIn
	}

	accessToken, accessExpire, err := adaptor.GenerateJwtToken(u.ID.Hex(), u.Role)
	if err != nil {
		log.CtxError(ctx, "generate token fail, err=%v", err)
		return nil, consts.ErrCall
	}
	return &show.SignInResp{
		Id:           u.ID.Hex(),
		AccessToken:  accessToken,
		AccessExpire: accessExpire,
		Name:         u.Name,
		Role:         u.Role.String(),
	}, nil
}

func (s *UserService) ListUsers(ctx context.Context, meta *basic.UserMeta, req *show.ListUsersReq) (*show.ListUsersResp, error) {
	if _, err := currentUser(meta); err != nil {
		return nil, err
	}
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	filter := user.Filter{Email: strings.ToLower(strings.TrimSpace(req.Email))}
	if req.Role != "" {
		filter.Role, _ = consts.ParseRole(req.Role)
	}
	users, err := s.UserMapper.FindMany(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &show.ListUsersResp{
		Users: lo.Map(page.Slice(users, req.Page, req.Limit), func(u *user.User, _ int) *show.UserInfo { return publicProfile(u) }),
		Total: int64(len(users)),
	}, nil
}

func (s *UserService) GetProfile(ctx context.Context, meta *basic.UserMeta) (*show.UserInfo, error) {
	uid, err := currentUser(meta)
	if err != nil {
		return nil, err
	}
	u, err := s.UserMapper.FindOne(ctx, uid)
	if err != nil {
		return nil, err
	}
	return toUserInfo(u), nil
}

func (s *UserService) UpdateProfile(ctx context.Context, meta *basic.UserMeta, req *show.UpdateProfileReq) (*show.UserInfo, error) {
	uid, err := currentUser(meta)
	if err != nil {
		return nil, err
	}
	if err = validate.Struct(req); err != nil {
		return nil, err
	}
	update := user.ProfileUpdate{ProfilePicture: req.ProfilePicture}
	if req.Name != nil {
		update.Name = lo.ToPtr(strings.TrimSpace(*req.Name))
	}
	err = s.UserMapper.UpdateProfile(ctx, uid, update)
	if errors.Is(err, consts.ErrNotFound) {
		return nil, err
	} else if err != nil {
		log.CtxError(ctx, "update user %s fail, err=%v", uid, err)
		return nil, consts.ErrUpdate
	}
	return s.GetProfile(ctx, meta)
}

// LinkChild 家长关联学生, 学生原先关联的家长会被解除
func (s *UserService) LinkChild(ctx context.Context, meta *basic.UserMeta, req *show.LinkChildReq) (*show.UserInfo, error) {
	uid, err := currentUser(meta)
	if err != nil {
		return nil, err
	}
	if err = validate.Struct(req); err != nil {
		return nil, err
	}
	parent, err := s.UserMapper.FindOne(ctx, uid)
	if err != nil {
		return nil, err
	}
	if parent.Role != consts.RoleParent {
		return nil, consts.ErrForbidden.WithMessage("only parents can link children")
	}
	child, err := s.UserMapper.FindOne(ctx, req.ChildId)
	if err != nil {
		return nil, err
	}
	if child.Role != consts.RoleStudent {
		return nil, validate.Field("childId", "user is not a student")
	}

	// 先写家长侧, 任一步失败时撤销已完成的写入
	listed := lo.Contains(parent.LinkedChildren, req.ChildId)
	unlist := func() error {
		if listed {
			return nil
		}
		return s.UserMapper.RemoveChild(ctx, uid, req.ChildId)
	}
	if err = s.UserMapper.AddChild(ctx, uid, req.ChildId); err != nil {
		log.CtxError(ctx, "add child %s to parent %s fail, err=%v", req.ChildId, uid, err)
		return nil, err
	}
	if err = s.UserMapper.SetParent(ctx, req.ChildId, uid); err != nil {
		log.CtxError(ctx, "set parent of %s fail, err=%v", req.ChildId, err)
		rollback(ctx, "add child "+req.ChildId, unlist)
		return nil, err
	}
	if old := child.ParentID; old != "" && old != uid {
		err = s.UserMapper.RemoveChild(ctx, old, req.ChildId)
		if err != nil && !errors.Is(err, consts.ErrNotFound) {
			log.CtxError(ctx, "unlink child %s from parent %s fail, err=%v", req.ChildId, old, err)
			rollback(ctx, "set parent of "+req.ChildId, func() error { return s.UserMapper.SetParent(ctx, req.ChildId, old) })
			rollback(ctx, "add child "+req.ChildId, unlist)
			return nil, err
		}
	}
	return s.GetProfile(ctx, meta)
}
