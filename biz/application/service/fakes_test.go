package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"school-hub/biz/infrastructure/consts"
	"school-hub/biz/infrastructure/repository/class"
	"school-hub/biz/infrastructure/repository/message"
	"school-hub/biz/infrastructure/repository/resource"
	"school-hub/biz/infrastructure/repository/schedule"
	"school-hub/biz/infrastructure/repository/user"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func checkHex(id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return consts.ErrInvalidObjectId
	}
	return nil
}

type userRepo struct {
	mu    sync.RWMutex
	users map[string]user.User

	// 按 "方法" 或 "方法:文档id" 注入写入失败
	failOn map[string]error
	// beforeProfileUpdate 在写入资料前执行, 用于模拟并发写
	beforeProfileUpdate func()
}

func newUserRepo() *userRepo {
	return &userRepo{users: map[string]user.User{}, failOn: map[string]error{}}
}

func (r *userRepo) fail(method, id string) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if err, ok := r.failOn[method+":"+id]; ok {
		return err
	}
	return r.failOn[method]
}

func (r *userRepo) Insert(_ context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
		u.CreateTime = time.Now()
		u.UpdateTime = u.CreateTime
	}
	r.users[u.ID.Hex()] = *u
	return nil
}

func (r *userRepo) UpdateProfile(_ context.Context, id string, p user.ProfileUpdate) error {
	if r.beforeProfileUpdate != nil {
		r.beforeProfileUpdate()
	}
	return r.mutate(id, func(u *user.User) {
		if p.Name != nil {
			u.Name = *p.Name
		}
		if p.ProfilePicture != nil {
			u.ProfilePicture = *p.ProfilePicture
		}
		u.UpdateTime = time.Now()
	})
}

func (r *userRepo) FindOne(_ context.Context, id string) (*user.User, error) {
	if err := checkHex(id); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, consts.ErrNotFound
	}
	u.LinkedChildren = append([]string{}, u.LinkedChildren...)
	return &u, nil
}

func (r *userRepo) FindOneByEmail(_ context.Context, email string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, consts.ErrNotFound
}

func (r *userRepo) FindByIDs(ctx context.Context, ids []string) ([]*user.User, error) {
	var out []*user.User
	for _, id := range lo.Uniq(ids) {
		if u, err := r.FindOne(ctx, id); err == nil {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *userRepo) FindMany(_ context.Context, filter user.Filter) ([]*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*user.User
	for _, u := range r.users {
		if filter.Email != "" && u.Email != filter.Email {
			continue
		}
		if filter.Role != "" && u.Role != filter.Role {
			continue
		}
		u := u
		out = append(out, &u)
	}
	return out, nil
}

func (r *userRepo) mutate(id string, fn func(u *user.User)) error {
	if err := checkHex(id); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return consts.ErrNotFound
	}
	fn(&u)
	r.users[id] = u
	return nil
}

func (r *userRepo) SetParent(_ context.Context, childID, parentID string) error {
	if err := r.fail("SetParent", childID); err != nil {
		return err
	}
	return r.mutate(childID, func(u *user.User) { u.ParentID = parentID })
}

func (r *userRepo) AddChild(_ context.Context, parentID, childID string) error {
	if err := r.fail("AddChild", parentID); err != nil {
		return err
	}
	return r.mutate(parentID, func(u *user.User) {
		if !lo.Contains(u.LinkedChildren, childID) {
			u.LinkedChildren = append(u.LinkedChildren, childID)
		}
	})
}

func (r *userRepo) RemoveChild(_ context.Context, parentID, childID string) error {
	if err := r.fail("RemoveChild", parentID); err != nil {
		return err
	}
	return r.mutate(parentID, func(u *user.User) {
		u.LinkedChildren = lo.Without(u.LinkedChildren, childID)
	})
}

func (r *userRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	return nil
}

type classRepo struct {
	mu      sync.RWMutex
	classes map[string]class.Class
}

func newClassRepo() *classRepo { return &classRepo{classes: map[string]class.Class{}} }

func (r *classRepo) Insert(_ context.Context, c *class.Class) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
		c.CreateTime = time.Now()
		c.UpdateTime = c.CreateTime
	}
	r.classes[c.ID.Hex()] = *c
	return nil
}

func (r *classRepo) Update(_ context.Context, c *class.Class) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.classes[c.ID.Hex()] = *c
	return nil
}

func (r *classRepo) FindOne(_ context.Context, id string) (*class.Class, error) {
	if err := checkHex(id); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.classes[id]
	if !ok {
		return nil, consts.ErrNotFound
	}
	return &c, nil
}

func (r *classRepo) FindByIDs(ctx context.Context, ids []string) ([]*class.Class, error) {
	var out []*class.Class
	for _, id := range ids {
		if c, err := r.FindOne(ctx, id); err == nil {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *classRepo) FindMany(_ context.Context, teacherID string) ([]*class.Class, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*class.Class
	for _, c := range r.classes {
		if teacherID == "" || c.TeacherID == teacherID {
			c := c
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *classRepo) UpdateMemberCount(_ context.Context, id string, increment int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.classes[id]
	if !ok {
		return consts.ErrNotFound
	}
	c.MemberCount += increment
	r.classes[id] = c
	return nil
}

func (r *classRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.classes, id)
	return nil
}

type memberRepo struct {
	mu      sync.RWMutex
	members map[string]class.ClassMember
}

func newMemberRepo() *memberRepo { return &memberRepo{members: map[string]class.ClassMember{}} }

func (r *memberRepo) Insert(_ context.Context, m *class.ClassMember) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if m.ID.IsZero() {
		m.ID = primitive.NewObjectID()
	}
	r.members[m.ID.Hex()] = *m
	return nil
}

func (r *memberRepo) filter(fn func(m class.ClassMember) bool) []*class.ClassMember {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*class.ClassMember
	for _, m := range r.members {
		if fn(m) {
			m := m
			out = append(out, &m)
		}
	}
	return out
}

func (r *memberRepo) FindByClassID(_ context.Context, classID string) ([]*class.ClassMember, error) {
	return r.filter(func(m class.ClassMember) bool { return m.ClassID == classID }), nil
}

func (r *memberRepo) FindByStuID(_ context.Context, userID string) ([]*class.ClassMember, error) {
	return r.filter(func(m class.ClassMember) bool { return m.UserID == userID }), nil
}

func (r *memberRepo) FindByClassIDAndStuID(_ context.Context, classID, userID string) (*class.ClassMember, error) {
	found := r.filter(func(m class.ClassMember) bool { return m.ClassID == classID && m.UserID == userID })
	if len(found) == 0 {
		return nil, consts.ErrNotFound
	}
	return found[0], nil
}

func (r *memberRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.members, id)
	return nil
}

func (r *memberRepo) DeleteByClassID(_ context.Context, classID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, m := range r.members {
		if m.ClassID == classID {
			delete(r.members, id)
		}
	}
	return nil
}

type scheduleRepo struct {
	mu       sync.RWMutex
	sessions map[string]schedule.Session
	writes   int
}

func newScheduleRepo() *scheduleRepo { return &scheduleRepo{sessions: map[string]schedule.Session{}} }

func (r *scheduleRepo) Insert(_ context.Context, s *schedule.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s.ID.IsZero() {
		s.ID = primitive.NewObjectID()
		s.CreateTime = time.Now()
		s.UpdateTime = s.CreateTime
	}
	r.sessions[s.ID.Hex()] = *s
	r.writes++
	return nil
}

func (r *scheduleRepo) Update(_ context.Context, s *schedule.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[s.ID.Hex()]; !ok {
		return consts.ErrNotFound
	}
	r.sessions[s.ID.Hex()] = *s
	r.writes++
	return nil
}

func (r *scheduleRepo) FindOne(_ context.Context, id string) (*schedule.Session, error) {
	if err := checkHex(id); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, consts.ErrNotFound
	}
	return &s, nil
}

func (r *scheduleRepo) FindMany(_ context.Context, classID string) ([]*schedule.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*schedule.Session
	for _, s := range r.sessions {
		if classID == "" || s.ClassID == classID {
			s := s
			out = append(out, &s)
		}
	}
	// map 遍历无序, 固定成插入顺序
	sort.Slice(out, func(i, j int) bool { return out[i].ID.Hex() < out[j].ID.Hex() })
	return out, nil
}

func (r *scheduleRepo) FindByClassAndDay(ctx context.Context, classID, day string) ([]*schedule.Session, error) {
	all, _ := r.FindMany(ctx, classID)
	return lo.Filter(all, func(s *schedule.Session, _ int) bool { return s.DayOfWeek == day }), nil
}

func (r *scheduleRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}

func (r *scheduleRepo) DeleteByClassID(_ context.Context, classID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, s := range r.sessions {
		if s.ClassID == classID {
			delete(r.sessions, id)
		}
	}
	return nil
}

type resourceRepo struct {
	mu        sync.RWMutex
	resources map[string]resource.Resource
}

func newResourceRepo() *resourceRepo { return &resourceRepo{resources: map[string]resource.Resource{}} }

func (r *resourceRepo) Insert(_ context.Context, res *resource.Resource) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if res.ID.IsZero() {
		res.ID = primitive.NewObjectID()
		res.CreateTime = time.Now()
		res.UpdateTime = res.CreateTime
	}
	r.resources[res.ID.Hex()] = *res
	return nil
}

func (r *resourceRepo) Update(_ context.Context, res *resource.Resource) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resources[res.ID.Hex()] = *res
	return nil
}

func (r *resourceRepo) FindOne(_ context.Context, id string) (*resource.Resource, error) {
	if err := checkHex(id); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	res, ok := r.resources[id]
	if !ok {
		return nil, consts.ErrNotFound
	}
	return &res, nil
}

func (r *resourceRepo) FindMany(_ context.Context, classID string) ([]*resource.Resource, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*resource.Resource
	for _, res := range r.resources {
		if classID == "" || res.ClassID == classID {
			res := res
			out = append(out, &res)
		}
	}
	return out, nil
}

func (r *resourceRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.resources, id)
	return nil
}

func (r *resourceRepo) DeleteByClassID(_ context.Context, classID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, res := range r.resources {
		if res.ClassID == classID {
			delete(r.resources, id)
		}
	}
	return nil
}

type messageRepo struct {
	mu   sync.RWMutex
	msgs map[string]message.Message
}

func newMessageRepo() *messageRepo { return &messageRepo{msgs: map[string]message.Message{}} }

func (r *messageRepo) Insert(_ context.Context, m *message.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if m.ID.IsZero() {
		m.ID = primitive.NewObjectID()
		m.CreateTime = time.Now()
	}
	r.msgs[m.ID.Hex()] = *m
	return nil
}

func (r *messageRepo) FindOne(_ context.Context, id string) (*message.Message, error) {
	if err := checkHex(id); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.msgs[id]
	if !ok {
		return nil, consts.ErrNotFound
	}
	return &m, nil
}

func (r *messageRepo) filter(fn func(m message.Message) bool) []*message.Message {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*message.Message
	for _, m := range r.msgs {
		if fn(m) {
			m := m
			out = append(out, &m)
		}
	}
	return out
}

func (r *messageRepo) FindByParticipant(_ context.Context, userID string) ([]*message.Message, error) {
	return r.filter(func(m message.Message) bool { return m.SenderID == userID || m.ReceiverID == userID }), nil
}

func (r *messageRepo) FindThread(_ context.Context, userID, otherID string) ([]*message.Message, error) {
	out := r.filter(func(m message.Message) bool {
		return (m.SenderID == userID && m.ReceiverID == otherID) || (m.SenderID == otherID && m.ReceiverID == userID)
	})
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreateTime.Equal(out[j].CreateTime) {
			return out[i].CreateTime.Before(out[j].CreateTime)
		}
		return out[i].ID.Hex() < out[j].ID.Hex()
	})
	return out, nil
}

func (r *messageRepo) MarkRead(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.msgs[id]
	if !ok {
		return consts.ErrNotFound
	}
	m.Read = true
	r.msgs[id] = m
	return nil
}

func (r *messageRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.msgs, id)
	return nil
}

func (r *messageRepo) count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.msgs)
}
