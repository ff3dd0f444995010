package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"school-hub/biz/application/dto/basic"
	"school-hub/biz/application/dto/school/show"
	dschedule "school-hub/biz/domain/schedule"
	"school-hub/biz/infrastructure/consts"
	"school-hub/biz/infrastructure/redis"
	"school-hub/biz/infrastructure/repository/class"
	"school-hub/biz/infrastructure/repository/schedule"
	"school-hub/biz/infrastructure/util"
	"school-hub/biz/infrastructure/util/log"
	"school-hub/biz/infrastructure/util/validate"

	"github.com/google/wire"
	"github.com/samber/lo"
)

type IScheduleService interface {
	ListSchedules(ctx context.Context, meta *basic.UserMeta, req *show.ListSchedulesReq) (*show.ListSchedulesResp, error)
	GetSchedule(ctx context.Context, meta *basic.UserMeta, req *show.ScheduleReq) (*show.SessionInfo, error)
	CreateSchedule(ctx context.Context, meta *basic.UserMeta, req *show.CreateScheduleReq) (*show.SessionInfo, error)
	UpdateSchedule(ctx context.Context, meta *basic.UserMeta, req *show.UpdateScheduleReq) (*show.SessionInfo, error)
	DeleteSchedule(ctx context.Context, meta *basic.UserMeta, req *show.ScheduleReq) error
}

type ScheduleService struct {
	ScheduleMapper schedule.IMongoMapper
	ClassMapper    class.IMongoMapper
	Locker         redis.Locker
}

var ScheduleServiceSet = wire.NewSet(
	wire.Struct(new(ScheduleService), "*"),
	wire.Bind(new(IScheduleService), new(*ScheduleService)),
)

func init() {
	validate.RegisterRule("hhmm", dschedule.ErrInvalidClock.Error(), func(s string) bool {
		_, err := dschedule.ParseClock(s)
		return err == nil
	})
	validate.RegisterRule("weekday", dschedule.ErrInvalidDay.Error(), func(s string) bool {
		_, err := dschedule.ParseDay(s)
		return err == nil
	})
}

// slotFinder 将课表集合适配为冲突检查的数据源
type slotFinder struct {
	mapper schedule.IMongoMapper
}

func (f slotFinder) FindSlots(ctx context.Context, classID string, day dschedule.Day) ([]dschedule.Slot, error) {
	sessions, err := f.mapper.FindByClassAndDay(ctx, classID, day.String())
	if err != nil {
		return nil, err
	}
	slots := make([]dschedule.Slot, 0, len(sessions))
	for _, s := range sessions {
		slot, err := toSlot(s)
		if err != nil {
			return nil, fmt.Errorf("stored session %s is malformed: %w", s.ID.Hex(), err)
		}
		slots = append(slots, slot)
	}
	return slots, nil
}

func toSlot(s *schedule.Session) (dschedule.Slot, error) {
	return dschedule.NewSlot(s.ID.Hex(), s.ClassID, s.DayOfWeek, s.StartTime, s.EndTime)
}

func toSessionInfo(s *schedule.Session) *show.SessionInfo {
	info := new(show.SessionInfo)
	if err := util.Copy(info, s); err != nil {
		log.Error("copy session %s fail, err=%v", s.ID.Hex(), err)
	}
	return info
}

// slotError 时间段解析失败转为字段级校验错误
func slotError(err error) error {
	switch {
	case errors.Is(err, dschedule.ErrInvertedSlot):
		return validate.Field("endTime", err.Error())
	case errors.Is(err, dschedule.ErrInvalidDay):
		return validate.Field("dayOfWeek", err.Error())
	default:
		return validate.Field("startTime", err.Error())
	}
}

func (s *ScheduleService) ListSchedules(ctx context.Context, meta *basic.UserMeta, req *show.ListSchedulesReq) (*show.ListSchedulesResp, error) {
	if _, err := currentUser(meta); err != nil {
		return nil, err
	}
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	sessions, err := s.ScheduleMapper.FindMany(ctx, req.ClassId)
	if err != nil {
		return nil, err
	}
	dschedule.SortBy(sessions, func(x *schedule.Session) dschedule.Slot {
		slot, _ := toSlot(x)
		return slot
	})
	return &show.ListSchedulesResp{
		Schedules: lo.Map(sessions, func(x *schedule.Session, _ int) *show.SessionInfo { return toSessionInfo(x) }),
		Total:     int64(len(sessions)),
	}, nil
}

func (s *ScheduleService) GetSchedule(ctx context.Context, meta *basic.UserMeta, req *show.ScheduleReq) (*show.SessionInfo, error) {
	if _, err := currentUser(meta); err != nil {
		return nil, err
	}
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	session, err := s.ScheduleMapper.FindOne(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	return toSessionInfo(session), nil
}

// ownedClass 课表只能由班级教师维护
func (s *ScheduleService) ownedClass(ctx context.Context, uid, classID string) (*class.Class, error) {
	c, err := s.ClassMapper.FindOne(ctx, classID)
	if err != nil {
		return nil, err
	}
	if c.TeacherID != uid {
		return nil, consts.ErrForbidden.WithMessage("only the class teacher can manage its schedule")
	}
	return c, nil
}

// checkAndWrite 在 (班级, 星期) 锁内检查冲突, 无冲突时执行 write
func (s *ScheduleService) checkAndWrite(ctx context.Context, candidate dschedule.Slot, excludeID string, write func() error) error {
	unlock, err := s.Locker.Lock(ctx, redis.ScheduleLockKey(candidate.ClassID, candidate.Day.String()))
	if err != nil {
		return err
	}
	defer unlock()

	conflict, err := dschedule.NewChecker(slotFinder{mapper: s.ScheduleMapper}).CheckConflict(ctx, candidate, excludeID)
	if err != nil {
		log.CtxError(ctx, "check schedule conflict fail, err=%v", err)
		return err
	}
	if conflict {
		return consts.ErrScheduleConflict
	}
	return write()
}

// CreateSchedule 校验 -> 班级存在 -> 班级教师 -> 冲突检查 -> 写入
func (s *ScheduleService) CreateSchedule(ctx context.Context, meta *basic.UserMeta, req *show.CreateScheduleReq) (*show.SessionInfo, error) {
	uid, err := currentUser(meta)
	if err != nil {
		return nil, err
	}
	if err = validate.Struct(req); err != nil {
		return nil, err
	}
	candidate, err := dschedule.NewSlot("", req.ClassId, req.DayOfWeek, req.StartTime, req.EndTime)
	if err != nil {
		return nil, slotError(err)
	}
	if _, err = s.ownedClass(ctx, uid, req.ClassId); err != nil {
		return nil, err
	}

	session := &schedule.Session{
		ClassID:   req.ClassId,
		DayOfWeek: candidate.Day.String(),
		StartTime: candidate.Start.String(),
		EndTime:   candidate.End.String(),
		Subject:   strings.TrimSpace(req.Subject),
		Room:      strings.TrimSpace(req.Room),
	}
	err = s.checkAndWrite(ctx, candidate, "", func() error {
		if err := s.ScheduleMapper.Insert(ctx, session); err != nil {
			log.CtxError(ctx, "insert session fail, err=%v", err)
			return consts.ErrCreateSchedule
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toSessionInfo(session), nil
}

// UpdateSchedule 与创建相同的流程, 冲突检查排除自身
func (s *ScheduleService) UpdateSchedule(ctx context.Context, meta *basic.UserMeta, req *show.UpdateScheduleReq) (*show.SessionInfo, error) {
	uid, err := currentUser(meta)
	if err != nil {
		return nil, err
	}
	if err = validate.Struct(req); err != nil {
		return nil, err
	}
	session, err := s.ScheduleMapper.FindOne(ctx, req.Id)
	if err != nil {
		return nil, err
	}

	classID := lo.FromPtrOr(req.ClassId, session.ClassID)
	candidate, err := dschedule.NewSlot(session.ID.Hex(), classID,
		lo.FromPtrOr(req.DayOfWeek, session.DayOfWeek),
		lo.FromPtrOr(req.StartTime, session.StartTime),
		lo.FromPtrOr(req.EndTime, session.EndTime))
	if err != nil {
		return nil, slotError(err)
	}
	if _, err = s.ownedClass(ctx, uid, session.ClassID); err != nil {
		return nil, err
	}
	if classID != session.ClassID {
		if _, err = s.ownedClass(ctx, uid, classID); err != nil {
			return nil, err
		}
	}

	updated := *session
	updated.ClassID = classID
	updated.DayOfWeek = candidate.Day.String()
	updated.StartTime = candidate.Start.String()
	updated.EndTime = candidate.End.String()
	if req.Subject != nil {
		updated.Subject = strings.TrimSpace(*req.Subject)
	}
	if req.Room != nil {
		updated.Room = strings.TrimSpace(*req.Room)
	}
	err = s.checkAndWrite(ctx, candidate, session.ID.Hex(), func() error {
		if err := s.ScheduleMapper.Update(ctx, &updated); err != nil {
			log.CtxError(ctx, "update session %s fail, err=%v", req.Id, err)
			return consts.ErrUpdate
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toSessionInfo(&updated), nil
}

func (s *ScheduleService) DeleteSchedule(ctx context.Context, meta *basic.UserMeta, req *show.ScheduleReq) error {
	uid, err := currentUser(meta)
	if err != nil {
		return err
	}
	if err = validate.Struct(req); err != nil {
		return err
	}
	session, err := s.ScheduleMapper.FindOne(ctx, req.Id)
	if err != nil {
		return err
	}
	if _, err = s.ownedClass(ctx, uid, session.ClassID); err != nil {
		return err
	}
	return s.ScheduleMapper.Delete(ctx, req.Id)
}
