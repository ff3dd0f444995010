package show

type ClassInfo struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Subject     string `json:"subject"`
	GradeLevel  string `json:"gradeLevel"`
	TeacherId   string `json:"teacherId"`
	MemberCount int64  `json:"memberCount"`
	CreateTime  int64  `json:"createTime"`
	UpdateTime  int64  `json:"updateTime"`
}

type ClassDetail struct {
	*ClassInfo
	Teacher  *UserInfo   `json:"teacher"`
	Students []*UserInfo `json:"students"`
}

type ClassReq struct {
	Id string `path:"id" json:"-" validate:"required,mongodb"`
}

type ListClassesReq struct {
	TeacherId string `form:"teacherId" json:"teacherId" query:"teacherId" validate:"omitempty,mongodb"`
	StudentId string `form:"studentId" json:"studentId" query:"studentId" validate:"omitempty,mongodb"`
}

type ListClassesResp struct {
	Classes []*ClassInfo `json:"classes"`
	Total   int64        `json:"total"`
}

type CreateClassReq struct {
	Name        string `form:"name" json:"name" query:"name" validate:"required,notblank,min=2"`
	Description string `form:"description" json:"description" query:"description"`
	Subject     string `form:"subject" json:"subject" query:"subject" validate:"required,notblank"`
	GradeLevel  string `form:"gradeLevel" json:"gradeLevel" query:"gradeLevel" validate:"required,notblank"`
}

type UpdateClassReq struct {
	Id          string  `path:"id" json:"-" validate:"required,mongodb"`
	Name        *string `form:"name" json:"name,omitempty" validate:"omitempty,notblank,min=2"`
	Description *string `form:"description" json:"description,omitempty"`
	Subject     *string `form:"subject" json:"subject,omitempty" validate:"omitempty,notblank"`
	GradeLevel  *string `form:"gradeLevel" json:"gradeLevel,omitempty" validate:"omitempty,notblank"`
}

type AddStudentReq struct {
	Id        string `path:"id" json:"-" validate:"required,mongodb"`
	StudentId string `form:"studentId" json:"studentId" query:"studentId" validate:"required,mongodb"`
}

type RemoveStudentReq struct {
	Id        string `path:"id" json:"-" validate:"required,mongodb"`
	StudentId string `form:"studentId" json:"studentId" query:"studentId" validate:"required,mongodb"`
}
