package show

type SessionInfo struct {
	Id         string `json:"id"`
	ClassId    string `json:"classId"`
	DayOfWeek  string `json:"dayOfWeek"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	Subject    string `json:"subject"`
	Room       string `json:"room,omitempty"`
	CreateTime int64  `json:"createTime"`
	UpdateTime int64  `json:"updateTime"`
}

type ScheduleReq struct {
	Id string `path:"id" json:"-" validate:"required,mongodb"`
}

type ListSchedulesReq struct {
	ClassId string `path:"classId" form:"classId" json:"classId" query:"classId" validate:"omitempty,mongodb"`
}

type ListSchedulesResp struct {
	Schedules []*SessionInfo `json:"schedules"`
	Total     int64          `json:"total"`
}

type CreateScheduleReq struct {
	ClassId   string `form:"classId" json:"classId" query:"classId" validate:"required,mongodb"`
	DayOfWeek string `form:"dayOfWeek" json:"dayOfWeek" query:"dayOfWeek" validate:"required,weekday"`
	StartTime string `form:"startTime" json:"startTime" query:"startTime" validate:"required,hhmm"`
	EndTime   string `form:"endTime" json:"endTime" query:"endTime" validate:"required,hhmm"`
	Subject   string `form:"subject" json:"subject" query:"subject" validate:"required,notblank"`
	Room      string `form:"room" json:"room" query:"room"`
}

type UpdateScheduleReq struct {
	Id        string  `path:"id" json:"-" validate:"required,mongodb"`
	ClassId   *string `form:"classId" json:"classId,omitempty" validate:"omitempty,mongodb"`
	DayOfWeek *string `form:"dayOfWeek" json:"dayOfWeek,omitempty" validate:"omitempty,weekday"`
	StartTime *string `form:"startTime" json:"startTime,omitempty" validate:"omitempty,hhmm"`
	EndTime   *string `form:"endTime" json:"endTime,omitempty" validate:"omitempty,hhmm"`
	Subject   *string `form:"subject" json:"subject,omitempty" validate:"omitempty,notblank"`
	Room      *string `form:"room" json:"room,omitempty"`
}
