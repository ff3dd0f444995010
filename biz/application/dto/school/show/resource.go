package show

import "encoding/json"

// FlexString 兼容 JSON 数字和字符串, 空值表示未传
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

type ResourceInfo struct {
	Id          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	FileUrl     string    `json:"fileUrl"`
	FileType    string    `json:"fileType"`
	FileSize    int64     `json:"fileSize,omitempty"`
	ClassId     string    `json:"classId"`
	UploadedBy  string    `json:"uploadedBy"`
	Uploader    *UserInfo `json:"uploader,omitempty"`
	Tags        []string  `json:"tags"`
	CreateTime  int64     `json:"createTime"`
	UpdateTime  int64     `json:"updateTime"`
}

type ResourceReq struct {
	Id string `path:"id" json:"-" validate:"required,mongodb"`
}

type ListResourcesReq struct {
	ClassId string `path:"classId" form:"classId" json:"classId" query:"classId" validate:"omitempty,mongodb"`
}

type ListResourcesResp struct {
	Resources []*ResourceInfo `json:"resources"`
	Total     int64           `json:"total"`
}

type CreateResourceReq struct {
	Title       string     `form:"title" json:"title" query:"title" validate:"required,notblank"`
	Description string     `form:"description" json:"description" query:"description"`
	ClassId     string     `form:"classId" json:"classId" query:"classId" validate:"required,mongodb"`
	FileUrl     string     `form:"fileUrl" json:"fileUrl" query:"fileUrl" validate:"required,url"`
	FileType    string     `form:"fileType" json:"fileType" query:"fileType" validate:"required,notblank"`
	FileSize    FlexString `form:"fileSize" json:"fileSize,omitempty" query:"fileSize"`
	Tags        []string   `form:"tags" json:"tags" query:"tags" validate:"omitempty,dive,notblank"`
}

type UpdateResourceReq struct {
	Id          string     `path:"id" json:"-" validate:"required,mongodb"`
	Title       *string    `form:"title" json:"title,omitempty" validate:"omitempty,notblank"`
	Description *string    `form:"description" json:"description,omitempty"`
	FileUrl     *string    `form:"fileUrl" json:"fileUrl,omitempty" validate:"omitempty,url"`
	FileType    *string    `form:"fileType" json:"fileType,omitempty" validate:"omitempty,notblank"`
	FileSize    FlexString `form:"fileSize" json:"fileSize,omitempty"`
	Tags        []string   `form:"tags" json:"tags,omitempty" validate:"omitempty,dive,notblank"`
}
