// Package validate - общие проверки пользовательского ввода.
package validate

import (
	"net/url"
	"strings"
)

// HTTPURL сообщает, является ли raw абсолютным http(s) адресом с хостом.
func HTTPURL(raw string) bool {
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	return (scheme == "http" || scheme == "https") && u.Host != ""
}

// Blank - строка пуста или состоит из пробелов
func Blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// TrimmedOrNil обрезает пробелы; пустой результат превращается в nil.
func TrimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
