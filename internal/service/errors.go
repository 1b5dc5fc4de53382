package service

import (
	"errors"
	"net/http"
)

// 错误响应里的 type 字段
const (
	TypeMissingData  = "missing data"
	TypeNotSignin    = "not signin"
	TypeTokenExpired = "token expired"
	TypeUnauthorized = "unauthorized request"
	TypeNotFound     = "not found"
	TypeDataConflict = "data conflict"
	TypeServerError  = "server error"
)

var (
	ErrMissingData = errors.New("请求缺少必要数据")

	ErrNotSignin         = errors.New("未登录")
	ErrInvalidCredential = errors.New("用户名或密码错误")

	ErrTokenExpired = errors.New("token 无效或已过期")
	ErrUnauthorized = errors.New("没有操作权限")

	ErrUserNotFound       = errors.New("用户不存在")
	ErrCategoryNotFound   = errors.New("板块不存在")
	ErrProfileNotFound    = errors.New("身份不存在")
	ErrPostNotFound       = errors.New("帖子不存在")
	ErrCommentNotFound    = errors.New("评论不存在")
	ErrSubcommentNotFound = errors.New("回复不存在")

	ErrUsernameExist = errors.New("用户名已存在")
	ErrEmailExist    = errors.New("邮箱已被注册")
	ErrCategoryExist = errors.New("板块已存在")
	ErrProfileExist  = errors.New("该板块下已有同名身份")
	ErrCategoryInUse = errors.New("板块下仍有帖子，无法删除")
)

// ErrorCode 把业务错误映射到 HTTP 状态码
var ErrorCode = map[error]int{
	ErrMissingData: http.StatusBadRequest,

	ErrNotSignin:         http.StatusUnauthorized,
	ErrInvalidCredential: http.StatusUnauthorized,

	ErrTokenExpired: http.StatusForbidden,
	ErrUnauthorized: http.StatusForbidden,

	ErrUserNotFound:       http.StatusNotFound,
	ErrCategoryNotFound:   http.StatusNotFound,
	ErrProfileNotFound:    http.StatusNotFound,
	ErrPostNotFound:       http.StatusNotFound,
	ErrCommentNotFound:    http.StatusNotFound,
	ErrSubcommentNotFound: http.StatusNotFound,

	ErrUsernameExist: http.StatusConflict,
	ErrEmailExist:    http.StatusConflict,
	ErrCategoryExist: http.StatusConflict,
	ErrProfileExist:  http.StatusConflict,
	ErrCategoryInUse: http.StatusConflict,
}

// ErrorType 把业务错误映射到响应里的 type 字段
var ErrorType = map[error]string{
	ErrMissingData: TypeMissingData,

	ErrNotSignin:         TypeNotSignin,
	ErrInvalidCredential: TypeNotSignin,

	ErrTokenExpired: TypeTokenExpired,
	ErrUnauthorized: TypeUnauthorized,

	ErrUserNotFound:       TypeNotFound,
	ErrCategoryNotFound:   TypeNotFound,
	ErrProfileNotFound:    TypeNotFound,
	ErrPostNotFound:       TypeNotFound,
	ErrCommentNotFound:    TypeNotFound,
	ErrSubcommentNotFound: TypeNotFound,

	ErrUsernameExist: TypeDataConflict,
	ErrEmailExist:    TypeDataConflict,
	ErrCategoryExist: TypeDataConflict,
	ErrProfileExist:  TypeDataConflict,
	ErrCategoryInUse: TypeDataConflict,
}
