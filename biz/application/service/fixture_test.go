package service

import (
	"context"
	"testing"

	"school-hub/biz/application/dto/basic"
	"school-hub/biz/infrastructure/consts"
	"school-hub/biz/infrastructure/redis"
	"school-hub/biz/infrastructure/repository/class"
	"school-hub/biz/infrastructure/repository/user"

	"github.com/stretchr/testify/require"
)

type fixture struct {
	users     *userRepo
	classes   *classRepo
	members   *memberRepo
	schedules *scheduleRepo
	resources *resourceRepo
	messages  *messageRepo

	userSvc     *UserService
	classSvc    *ClassService
	resourceSvc *ResourceService
	scheduleSvc *ScheduleService
	messageSvc  *MessageService
}

func newFixture() *fixture {
	f := &fixture{
		users:     newUserRepo(),
		classes:   newClassRepo(),
		members:   newMemberRepo(),
		schedules: newScheduleRepo(),
		resources: newResourceRepo(),
		messages:  newMessageRepo(),
	}
	f.userSvc = &UserService{UserMapper: f.users}
	f.classSvc = &ClassService{
		ClassMapper:    f.classes,
		MemberMapper:   f.members,
		UserMapper:     f.users,
		ScheduleMapper: f.schedules,
		ResourceMapper: f.resources,
	}
	f.resourceSvc = &ResourceService{ResourceMapper: f.resources, ClassMapper: f.classes, UserMapper: f.users}
	f.scheduleSvc = &ScheduleService{ScheduleMapper: f.schedules, ClassMapper: f.classes, Locker: redis.NewLocalLocker()}
	f.messageSvc = &MessageService{MessageMapper: f.messages, UserMapper: f.users}
	return f
}

func (f *fixture) addUser(t *testing.T, name string, role consts.Role) *user.User {
	t.Helper()
	u := &user.User{Email: name + "@school.test", Name: name, Role: role, LinkedChildren: []string{}}
	require.NoError(t, f.users.Insert(context.Background(), u))
	return u
}

func (f *fixture) addClass(t *testing.T, teacher *user.User) *class.Class {
	t.Helper()
	c := &class.Class{Name: "Algebra", Subject: "Math", GradeLevel: "9", TeacherID: teacher.ID.Hex()}
	require.NoError(t, f.classes.Insert(context.Background(), c))
	return c
}

func metaOf(u *user.User) *basic.UserMeta {
	return &basic.UserMeta{UserId: u.ID.Hex(), Role: u.Role.String()}
}
