package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// FieldKeyPattern определяет допустимый формат ключа поля
// Начинается с латинской буквы, далее буквы, цифры, '_' или '-'
// Длина: 1-64 символа
var FieldKeyPattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]{0,63}$`)

const (
	// MaxStoreNameLen максимальная длина имени хранилища
	MaxStoreNameLen = 100
	// MaxOptions максимальное количество вариантов ответа
	MaxOptions = 200
)

// ValidateFieldKey проверяет, что ключ поля соответствует требованиям
func ValidateFieldKey(key string) error {
	if key == "" {
		return fmt.Errorf("field key cannot be empty")
	}

	if !FieldKeyPattern.MatchString(key) {
		return fmt.Errorf("field key must start with a letter and contain only letters, numbers, '_' or '-' (max 64)")
	}

	return nil
}

// ValidateOptions проверяет варианты ответа для полей выбора:
// хотя бы один вариант, без пустых строк и без повторов
func ValidateOptions(options []string) error {
	if len(options) == 0 {
		return fmt.Errorf("choice field must have at least one option")
	}

	if len(options) > MaxOptions {
		return fmt.Errorf("choice field must not exceed %d options", MaxOptions)
	}

	seen := make(map[string]struct{}, len(options))
	for i, opt := range options {
		if strings.TrimSpace(opt) == "" {
			return fmt.Errorf("option %d is empty", i)
		}
		if _, ok := seen[opt]; ok {
			return fmt.Errorf("option %q is duplicated", opt)
		}
		seen[opt] = struct{}{}
	}

	return nil
}

// ValidateStoreName проверяет логическое имя хранилища
func ValidateStoreName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("store name cannot be empty")
	}

	if len(name) > MaxStoreNameLen {
		return fmt.Errorf("store name must not exceed %d characters", MaxStoreNameLen)
	}

	return nil
}

// FormIDPattern допустимый идентификатор формы
var FormIDPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{1,63}$`)

// ValidateFormID проверяет идентификатор формы: строчные буквы, цифры, '_' и '-'
func ValidateFormID(id string) error {
	if id == "" {
		return fmt.Errorf("form id cannot be empty")
	}

	if !FormIDPattern.MatchString(id) {
		return fmt.Errorf("form id %q must be 2-64 lowercase letters, numbers, '_' or '-'", id)
	}

	return nil
}
