package validate

import (
	"errors"
	"reflect"
	"strings"

	"school-hub/biz/infrastructure/consts"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var (
	Validate   *validator.Validate
	Translator ut.Translator

	// 自定义校验标签对应的错误信息
	customMsgs = map[string]string{}
)

func init() {
	Validate = validator.New()

	_en := en.New()
	uni := ut.New(_en, _en)
	Translator, _ = uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(Validate, Translator)

	// 错误信息中使用 json 字段名, 路径参数使用 path 名
	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Tag.Get("path")
		}
		return name
	})

	RegisterRule("notblank", "this field cannot be blank", func(s string) bool {
		return strings.TrimSpace(s) != ""
	})
	RegisterRule("role", "role must be one of Teacher, Student, Parent", func(s string) bool {
		_, ok := consts.ParseRole(s)
		return ok
	})
}

// RegisterRule 注册字符串字段的自定义校验标签, 只在 init 阶段调用
func RegisterRule(tag, msg string, ok func(string) bool) {
	customMsgs[tag] = msg
	_ = Validate.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		if fl.Field().Kind() != reflect.String {
			return false
		}
		return ok(fl.Field().String())
	})
	_ = Validate.RegisterTranslation(tag, Translator,
		func(ut.Translator) error { return nil },
		func(_ ut.Translator, fe validator.FieldError) string { return customMsgs[fe.Tag()] },
	)
}

// Struct 校验请求, 失败时返回带字段明细的 ErrInvalidParams
func Struct(req any) error {
	err := Validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return consts.ErrInvalidParams.WithMessage(err.Error())
	}
	details := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		details[fe.Field()] = fe.Translate(Translator)
	}
	return consts.ErrInvalidParams.WithDetails(details)
}

// Field 用于单个字段的业务校验失败
func Field(field, msg string) error {
	return consts.ErrInvalidParams.WithDetails(map[string]string{field: msg})
}
