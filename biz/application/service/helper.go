package service

import (
	"context"

	"school-hub/biz/application/dto/basic"
	"school-hub/biz/application/dto/school/show"
	"school-hub/biz/infrastructure/consts"
	"school-hub/biz/infrastructure/repository/user"
	"school-hub/biz/infrastructure/util"
	"school-hub/biz/infrastructure/util/log"
)

// currentUser 未登录时返回 ErrNotAuthentication
func currentUser(meta *basic.UserMeta) (string, error) {
	if meta.GetUserId() == "" {
		return "", consts.ErrNotAuthentication
	}
	return meta.GetUserId(), nil
}

func toUserInfo(u *user.User) *show.UserInfo {
	info := new(show.UserInfo)
	if err := util.Copy(info, u); err != nil {
		log.Error("copy user %s fail, err=%v", u.ID.Hex(), err)
	}
	return info
}

// publicProfile 其他用户可见的资料, 不含关联关系
func publicProfile(u *user.User) *show.UserInfo {
	return &show.UserInfo{
		Id:             u.ID.Hex(),
		Email:          u.Email,
		Name:           u.Name,
		Role:           u.Role.String(),
		ProfilePicture: u.ProfilePicture,
	}
}

// deletedProfile 对方账号已删除时的占位资料
func deletedProfile(id string) *show.UserInfo {
	return &show.UserInfo{
		Id:      id,
		Name:    consts.DeletedUserName,
		Deleted: true,
	}
}

// profileOf 从批量查询结果中取公开资料, 查不到时返回占位
func profileOf(byID map[string]*user.User, id string) *show.UserInfo {
	if u, ok := byID[id]; ok {
		return publicProfile(u)
	}
	return deletedProfile(id)
}

// rollback 撤销已完成的写入, 失败只记录日志
func rollback(ctx context.Context, what string, undo func() error) {
	if err := undo(); err != nil {
		log.CtxError(ctx, "rollback %s fail, err=%v", what, err)
	}
}
