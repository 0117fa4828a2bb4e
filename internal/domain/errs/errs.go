// Package errs содержит базовые доменные ошибки, общие для всех областей.
// Доменные пакеты оборачивают их своими сообщениями, а HTTP-слой
// сопоставляет их со статусами через errors.Is / errors.As.
package errs

import (
	"errors"
	"strings"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrUnauthorized = errors.New("unauthorized")
	ErrConflict     = errors.New("conflict")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnavailable  = errors.New("service unavailable")
)

// FieldError - ошибка валидации конкретного поля запроса
type FieldError struct {
	Field   string
	Message string
}

// ValidationError собирает ошибки по полям. Пустой ValidationError не является ошибкой,
// поэтому возвращать его нужно через Err().
type ValidationError struct {
	Fields []FieldError
}

func (v *ValidationError) Add(field, message string) {
	v.Fields = append(v.Fields, FieldError{Field: field, Message: message})
}

func (v *ValidationError) Has(field string) bool {
	for _, f := range v.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// Err возвращает nil, если ошибок по полям нет.
func (v *ValidationError) Err() error {
	if v == nil || len(v.Fields) == 0 {
		return nil
	}
	return v
}

func (v *ValidationError) Error() string {
	parts := make([]string, 0, len(v.Fields))
	for _, f := range v.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

func (v *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Invalid - короткая форма для ошибки по одному полю.
func Invalid(field, message string) error {
	v := &ValidationError{}
	v.Add(field, message)
	return v
}

// FieldMessages возвращает ошибки по полям из err (если это ValidationError).
func FieldMessages(err error) map[string]string {
	var v *ValidationError
	if !errors.As(err, &v) {
		return nil
	}
	out := make(map[string]string, len(v.Fields))
	for _, f := range v.Fields {
		if _, ok := out[f.Field]; !ok {
			out[f.Field] = f.Message
		}
	}
	return out
}

type kindError struct {
	msg  string
	kind error
}

func (e *kindError) Error() string { return e.msg }
func (e *kindError) Unwrap() error { return e.kind }

// New создает доменную ошибку с собственным сообщением, которая
// сопоставляется с kind через errors.Is.
func New(kind error, msg string) error {
	return &kindError{msg: msg, kind: kind}
}
