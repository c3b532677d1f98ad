package validation

import (
	"fmt"
	"regexp"
)

// SubjectPattern определяет допустимый формат subject в токене доступа
// Только латинские буквы (a-z, A-Z), цифры (0-9), нижнее подчеркивание (_), точка и дефис
// Длина: 3-32 символа
var SubjectPattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]{3,32}$`)

const (
	// MinSubjectLen минимальная длина subject
	MinSubjectLen = 3
	// MaxSubjectLen максимальная длина subject
	MaxSubjectLen = 32
)

// ValidateSubject проверяет, что subject токена соответствует требованиям
func ValidateSubject(subject string) error {
	if subject == "" {
		return fmt.Errorf("subject cannot be empty")
	}

	if len(subject) < MinSubjectLen {
		return fmt.Errorf("subject must be at least %d characters long", MinSubjectLen)
	}

	if len(subject) > MaxSubjectLen {
		return fmt.Errorf("subject must not exceed %d characters", MaxSubjectLen)
	}

	if !SubjectPattern.MatchString(subject) {
		return fmt.Errorf("subject can only contain letters (a-z, A-Z), numbers (0-9), '_', '.' and '-'")
	}

	return nil
}
