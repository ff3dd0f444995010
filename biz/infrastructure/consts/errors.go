package consts

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Errno struct {
	err     error
	code    codes.Code
	details map[string]string
}

// GRPCStatus 实现 GRPCStatus 方法
func (en *Errno) GRPCStatus() *status.Status {
	return status.New(en.code, en.err.Error())
}

// 实现 Error 方法
func (en *Errno) Error() string {
	return en.err.Error()
}

// Is 同一错误码视为同一种错误, 便于 WithMessage 之后仍可 errors.Is
func (en *Errno) Is(target error) bool {
	var t *Errno
	if !errors.As(target, &t) {
		return false
	}
	return en.code == t.code
}

func (en *Errno) Code() codes.Code {
	return en.code
}

func (en *Errno) Details() map[string]string {
	return en.details
}

// WithMessage 保留错误码, 替换提示信息
func (en *Errno) WithMessage(msg string) *Errno {
	return &Errno{err: errors.New(msg), code: en.code, details: en.details}
}

// WithDetails 附带字段级别的错误信息
func (en *Errno) WithDetails(details map[string]string) *Errno {
	return &Errno{err: en.err, code: en.code, details: details}
}

// NewErrno 创建自定义错误
func NewErrno(code codes.Code, err error) *Errno {
	return &Errno{
		err:  err,
		code: code,
	}
}

// 业务错误码
const (
	CodeScheduleConflict codes.Code = 1101
	CodeScheduleBusy     codes.Code = 1102
	CodeEmailExists      codes.Code = 1103
	CodeSignIn           codes.Code = 1104
	CodeCreateClass      codes.Code = 1105
	CodeCreateResource   codes.Code = 1106
	CodeCreateSchedule   codes.Code = 1107
	CodeSendMessage      codes.Code = 1108
	CodeSignUp           codes.Code = 1109
)

// 定义常量错误
var (
	ErrForbidden         = NewErrno(codes.PermissionDenied, errors.New("forbidden"))
	ErrPermissionDenied  = NewErrno(codes.PermissionDenied, errors.New("messaging not allowed between these users"))
	ErrNotAuthentication = NewErrno(codes.Unauthenticated, errors.New("not authentication"))
	ErrScheduleConflict  = NewErrno(CodeScheduleConflict, errors.New("time conflict detected"))
	ErrScheduleBusy      = NewErrno(CodeScheduleBusy, errors.New("schedule is being modified, please try again"))
	ErrEmailExists       = NewErrno(CodeEmailExists, errors.New("user with this email already exists"))
	ErrSignIn            = NewErrno(CodeSignIn, errors.New("invalid email or password"))
	ErrSignUp            = NewErrno(CodeSignUp, errors.New("failed to register user"))
	ErrCreateClass       = NewErrno(CodeCreateClass, errors.New("failed to create class"))
	ErrCreateResource    = NewErrno(CodeCreateResource, errors.New("failed to create resource"))
	ErrCreateSchedule    = NewErrno(CodeCreateSchedule, errors.New("failed to save schedule"))
	ErrSendMessage       = NewErrno(CodeSendMessage, errors.New("failed to send message"))
)

// ErrInvalidParams 调用时错误
var (
	ErrInvalidParams = NewErrno(codes.InvalidArgument, errors.New("validation error"))
	ErrCall          = NewErrno(codes.Unknown, errors.New("internal server error"))
)

// 数据库相关错误
var (
	ErrNotFound        = NewErrno(codes.NotFound, errors.New("not found"))
	ErrInvalidObjectId = NewErrno(codes.InvalidArgument, errors.New("invalid id"))
	ErrUpdate          = NewErrno(codes.Code(2001), errors.New("update failed"))
)
