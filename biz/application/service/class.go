package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"school-hub/biz/application/dto/basic"
	"school-hub/biz/application/dto/school/show"
	"school-hub/biz/infrastructure/consts"
	"school-hub/biz/infrastructure/repository/class"
	"school-hub/biz/infrastructure/repository/resource"
	"school-hub/biz/infrastructure/repository/schedule"
	"school-hub/biz/infrastructure/repository/user"
	"school-hub/biz/infrastructure/util"
	"school-hub/biz/infrastructure/util/log"
	"school-hub/biz/infrastructure/util/validate"

	"github.com/bytedance/gopkg/util/gopool"
	"github.com/google/wire"
	"github.com/samber/lo"
)

type IClassService interface {
	ListClasses(ctx context.Context, meta *basic.UserMeta, req *show.ListClassesReq) (*show.ListClassesResp, error)
	CreateClass(ctx context.Context, meta *basic.UserMeta, req *show.CreateClassReq) (*show.ClassInfo, error)
	GetClass(ctx context.Context, meta *basic.UserMeta, req *show.ClassReq) (*show.ClassDetail, error)
	UpdateClass(ctx context.Context, meta *basic.UserMeta, req *show.UpdateClassReq) (*show.ClassInfo, error)
	DeleteClass(ctx context.Context, meta *basic.UserMeta, req *show.ClassReq) error
	AddStudent(ctx context.Context, meta *basic.UserMeta, req *show.AddStudentReq) (*show.ClassDetail, error)
	RemoveStudent(ctx context.Context, meta *basic.UserMeta, req *show.RemoveStudentReq) (*show.ClassDetail, error)
}

type ClassService struct {
	ClassMapper    class.IMongoMapper
	MemberMapper   class.IMemberMongoMapper
	UserMapper     user.IMongoMapper
	ScheduleMapper schedule.IMongoMapper
	ResourceMapper resource.IMongoMapper
}

var ClassServiceSet = wire.NewSet(
	wire.Struct(new(ClassService), "*"),
	wire.Bind(new(IClassService), new(*ClassService)),
)

func toClassInfo(c *class.Class) *show.ClassInfo {
	info := new(show.ClassInfo)
	if err := util.Copy(info, c); err != nil {
		log.Error("copy class %s fail, err=%v", c.ID.Hex(), err)
	}
	return info
}

// ListClasses 获取班级列表, 可按教师或学生筛选
func (s *ClassService) ListClasses(ctx context.Context, meta *basic.UserMeta, req *show.ListClassesReq) (*show.ListClassesResp, error) {
	if _, err := currentUser(meta); err != nil {
		return nil, err
	}
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	var classes []*class.Class
	var err error
	if req.StudentId != "" {
		var members []*class.ClassMember
		members, err = s.MemberMapper.FindByStuID(ctx, req.StudentId)
		if err != nil {
			return nil, err
		}
		classes, err = s.ClassMapper.FindByIDs(ctx, lo.Map(members, func(m *class.ClassMember, _ int) string { return m.ClassID }))
		if err == nil && req.TeacherId != "" {
			classes = lo.Filter(classes, func(c *class.Class, _ int) bool { return c.TeacherID == req.TeacherId })
		}
	} else {
		classes, err = s.ClassMapper.FindMany(ctx, req.TeacherId)
	}
	if err != nil {
		log.CtxError(ctx, "list classes fail, err=%v", err)
		return nil, err
	}
	return &show.ListClassesResp{
		Classes: lo.Map(classes, func(c *class.Class, _ int) *show.ClassInfo { return toClassInfo(c) }),
		Total:   int64(len(classes)),
	}, nil
}

// CreateClass 创建班级, 仅教师可用
func (s *ClassService) CreateClass(ctx context.Context, meta *basic.UserMeta, req *show.CreateClassReq) (*show.ClassInfo, error) {
	uid, err := currentUser(meta)
	if err != nil {
		return nil, err
	}
	if err = validate.Struct(req); err != nil {
		return nil, err
	}
	teacher, err := s.UserMapper.FindOne(ctx, uid)
	if err != nil {
		return nil, err
	}
	if teacher.Role != consts.RoleTeacher {
		return nil, consts.ErrForbidden.WithMessage("only teachers can create classes")
	}

	c := &class.Class{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Subject:     strings.TrimSpace(req.Subject),
		GradeLevel:  strings.TrimSpace(req.GradeLevel),
		TeacherID:   uid,
	}
	if err = s.ClassMapper.Insert(ctx, c); err != nil {
		log.CtxError(ctx, "创建班级失败: %v", err)
		return nil, consts.ErrCreateClass
	}
	return toClassInfo(c), nil
}

// GetClass 班级详情, 附带教师和学生名单
func (s *ClassService) GetClass(ctx context.Context, meta *basic.UserMeta, req *show.ClassReq) (*show.ClassDetail, error) {
	if _, err := currentUser(meta); err != nil {
		return nil, err
	}
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	c, err := s.ClassMapper.FindOne(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	return s.detail(ctx, c)
}

func (s *ClassService) detail(ctx context.Context, c *class.Class) (*show.ClassDetail, error) {
	var (
		wg       sync.WaitGroup
		teacher  *user.User
		students []*user.User
		tErr     error
		sErr     error
	)
	wg.Add(2)
	gopool.CtxGo(ctx, func() {
		defer wg.Done()
		teacher, tErr = s.UserMapper.FindOne(ctx, c.TeacherID)
	})
	gopool.CtxGo(ctx, func() {
		defer wg.Done()
		members, err := s.MemberMapper.FindByClassID(ctx, c.ID.Hex())
		if err != nil {
			sErr = err
			return
		}
		students, sErr = s.UserMapper.FindByIDs(ctx, lo.Map(members, func(m *class.ClassMember, _ int) string { return m.UserID }))
	})
	wg.Wait()

	if sErr != nil {
		return nil, sErr
	}
	d := &show.ClassDetail{
		ClassInfo: toClassInfo(c),
		Students:  lo.Map(students, func(u *user.User, _ int) *show.UserInfo { return publicProfile(u) }),
	}
	switch {
	case tErr == nil:
		d.Teacher = publicProfile(teacher)
	case errors.Is(tErr, consts.ErrNotFound):
		d.Teacher = deletedProfile(c.TeacherID)
	default:
		return nil, tErr
	}
	return d, nil
}

// ownedClass 读取班级并校验当前用户是班级教师
func (s *ClassService) ownedClass(ctx context.Context, uid, classID string) (*class.Class, error) {
	c, err := s.ClassMapper.FindOne(ctx, classID)
	if err != nil {
		return nil, err
	}
	if c.TeacherID != uid {
		return nil, consts.ErrForbidden.WithMessage("only the class teacher can modify this class")
	}
	return c, nil
}

func (s *ClassService) UpdateClass(ctx context.Context, meta *basic.UserMeta, req *show.UpdateClassReq) (*show.ClassInfo, error) {
	uid, err := currentUser(meta)
	if err != nil {
		return nil, err
	}
	if err = validate.Struct(req); err != nil {
		return nil, err
	}
	c, err := s.ownedClass(ctx, uid, req.Id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		c.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		c.Description = *req.Description
	}
	if req.Subject != nil {
		c.Subject = strings.TrimSpace(*req.Subject)
	}
	if req.GradeLevel != nil {
		c.GradeLevel = strings.TrimSpace(*req.GradeLevel)
	}
	if err = s.ClassMapper.Update(ctx, c); err != nil {
		log.CtxError(ctx, "update class %s fail, err=%v", req.Id, err)
		return nil, consts.ErrUpdate
	}
	return toClassInfo(c), nil
}

// DeleteClass 删除班级及其课表、资源和成员
func (s *ClassService) DeleteClass(ctx context.Context, meta *basic.UserMeta, req *show.ClassReq) error {
	uid, err := currentUser(meta)
	if err != nil {
		return err
	}
	if err = validate.Struct(req); err != nil {
		return err
	}
	if _, err = s.ownedClass(ctx, uid, req.Id); err != nil {
		return err
	}
	if err = s.ScheduleMapper.DeleteByClassID(ctx, req.Id); err != nil {
		return err
	}
	if err = s.ResourceMapper.DeleteByClassID(ctx, req.Id); err != nil {
		return err
	}
	if err = s.MemberMapper.DeleteByClassID(ctx, req.Id); err != nil {
		return err
	}
	return s.ClassMapper.Delete(ctx, req.Id)
}

// AddStudent 学生加入班级, 重复加入不报错
func (s *ClassService) AddStudent(ctx context.Context, meta *basic.UserMeta, req *show.AddStudentReq) (*show.ClassDetail, error) {
	uid, err := currentUser(meta)
	if err != nil {
		return nil, err
	}
	if err = validate.Struct(req); err != nil {
		return nil, err
	}
	c, err := s.ownedClass(ctx, uid, req.Id)
	if err != nil {
		return nil, err
	}
	stu, err := s.UserMapper.FindOne(ctx, req.StudentId)
	if err != nil {
		return nil, err
	}
	if stu.Role != consts.RoleStudent {
		return nil, validate.Field("studentId", "user is not a student")
	}

	_, err = s.MemberMapper.FindByClassIDAndStuID(ctx, req.Id, req.StudentId)
	switch {
	case err == nil:
		return s.detail(ctx, c)
	case !errors.Is(err, consts.ErrNotFound):
		return nil, err
	}

	now := time.Now()
	member := &class.ClassMember{
		ClassID:  req.Id,
		UserID:   req.StudentId,
		Role:     consts.RoleStudent,
		JoinTime: now,
	}
	if err = s.MemberMapper.Insert(ctx, member); err != nil {
		log.CtxError(ctx, "添加班级成员失败: %v", err)
		return nil, err
	}
	if err = s.ClassMapper.UpdateMemberCount(ctx, req.Id, 1); err != nil {
		log.CtxError(ctx, "更新班级人数失败: %v", err)
	}
	c.MemberCount++
	return s.detail(ctx, c)
}

func (s *ClassService) RemoveStudent(ctx context.Context, meta *basic.UserMeta, req *show.RemoveStudentReq) (*show.ClassDetail, error) {
	uid, err := currentUser(meta)
	if err != nil {
		return nil, err
	}
	if err = validate.Struct(req); err != nil {
		return nil, err
	}
	c, err := s.ownedClass(ctx, uid, req.Id)
	if err != nil {
		return nil, err
	}
	member, err := s.MemberMapper.FindByClassIDAndStuID(ctx, req.Id, req.StudentId)
	if err != nil {
		return nil, err
	}
	if err = s.MemberMapper.Delete(ctx, member.ID.Hex()); err != nil {
		return nil, err
	}
	if err = s.ClassMapper.UpdateMemberCount(ctx, req.Id, -1); err != nil {
		log.CtxError(ctx, "更新班级人数失败: %v", err)
	}
	c.MemberCount--
	return s.detail(ctx, c)
}
