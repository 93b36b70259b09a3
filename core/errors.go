package core

import (
	"errors"
	"fmt"
)

// DomainError 是领域层的统一错误类型。
//
// 设计原则：
//   - 所有领域层错误都使用此类型
//   - 提供错误代码（Code）和消息（Message）
//   - 支持错误检查函数（IsXXX）
//   - 核心层从不向调用方 panic：所有失败都转换为 DomainError 返回
//
// 使用场景：
//   - Catalog 错误：NOT_FOUND（片名不存在）
//   - Similarity 错误：INDEX_OUT_OF_RANGE（行号越界）、MALFORMED_ROW（行数据损坏）
//   - Store 错误：NOT_FOUND, NOT_SUPPORTED
type DomainError struct {
	Code    string // 错误代码（如 "NOT_FOUND", "INDEX_OUT_OF_RANGE"）
	Message string // 错误消息
	Module  string // 模块名称（如 "catalog", "similarity", "store"）
}

func (e *DomainError) Error() string {
	return e.Message
}

// GetDomainError 获取 DomainError，如果不是则返回 nil。
// 沿 %w 包装链查找：中间层用 fmt.Errorf 包装后类型检查依然有效。
func GetDomainError(err error) *DomainError {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return nil
}

// NewDomainError 创建新的领域错误
func NewDomainError(module, code, message string) *DomainError {
	return &DomainError{
		Module:  module,
		Code:    code,
		Message: message,
	}
}

// 错误代码常量
const (
	ErrorCodeNotFound        = "NOT_FOUND"          // 资源不存在（片名不在目录中）
	ErrorCodeIndexOutOfRange = "INDEX_OUT_OF_RANGE" // 行号超出相似度矩阵范围
	ErrorCodeMalformedRow    = "MALFORMED_ROW"      // 行长度错误或含非数值内容
	ErrorCodeNotSupported    = "NOT_SUPPORTED"      // 操作不支持
	ErrorCodeInvalidInput    = "INVALID_INPUT"      // 输入无效
)

// 模块名称常量
const (
	ModuleCatalog    = "catalog"    // 片名目录模块
	ModuleSimilarity = "similarity" // 相似度矩阵模块
	ModuleStore      = "store"      // 存储模块
	ModuleFeature    = "feature"    // 特征模块
)

// NewTitleNotFound 片名不存在于目录。
// 注意：查找失败必须显式报错，绝不返回默认下标。
func NewTitleNotFound(title string) *DomainError {
	return NewDomainError(ModuleCatalog, ErrorCodeNotFound,
		fmt.Sprintf("catalog: title %q not found", title))
}

// NewIndexOutOfRange 行号越界。
// 通常意味着目录与相似度矩阵的尺寸不一致（上游数据完整性问题）。
func NewIndexOutOfRange(index, size int) *DomainError {
	return NewDomainError(ModuleSimilarity, ErrorCodeIndexOutOfRange,
		fmt.Sprintf("similarity: index %d out of range [0, %d)", index, size))
}

// NewMalformedRow 行数据损坏：长度不等于矩阵维度，或包含 NaN。
func NewMalformedRow(index int, detail string) *DomainError {
	return NewDomainError(ModuleSimilarity, ErrorCodeMalformedRow,
		fmt.Sprintf("similarity: malformed row %d: %s", index, detail))
}

// IsNotFound 检查错误是否为 NOT_FOUND
func IsNotFound(err error) bool {
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == ErrorCodeNotFound
	}
	return false
}

// IsIndexOutOfRange 检查错误是否为 INDEX_OUT_OF_RANGE
func IsIndexOutOfRange(err error) bool {
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == ErrorCodeIndexOutOfRange
	}
	return false
}

// IsMalformedRow 检查错误是否为 MALFORMED_ROW
func IsMalformedRow(err error) bool {
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == ErrorCodeMalformedRow
	}
	return false
}

// IsNotSupported 检查错误是否为 NOT_SUPPORTED
func IsNotSupported(err error) bool {
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == ErrorCodeNotSupported
	}
	return false
}
