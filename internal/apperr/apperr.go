// internal/apperr/apperr.go
package apperr

import (
	"errors"
	"fmt"
)

// Kind классифицирует ошибку операции. Обработчик HTTP переводит Kind
// в статус-код, сами компоненты про транспорт ничего не знают.
type Kind int

const (
	// KindBadRequest — отсутствует или некорректно обязательное поле запроса.
	KindBadRequest Kind = iota + 1
	// KindNotFound — запрошенная сущность не существует.
	KindNotFound
	// KindConflict — нарушение уникальности (например, повторный device_id).
	KindConflict
	// KindInternal — неожиданная ошибка хранилища или инфраструктуры.
	KindInternal
)

// Error — структурная ошибка операции: классификация, короткая
// машиночитаемая причина и (опционально) исходная ошибка.
// Текст исходной ошибки хранилища наружу не отдается.
type Error struct {
	Kind   Kind
	Reason string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New создает ошибку без исходной причины (валидационные ошибки).
func New(kind Kind, reason string) *Error {
	return &Error{Kind: kind, Reason: reason}
}

// Wrap оборачивает исходную ошибку, сохраняя ее для логов и errors.Is.
func Wrap(kind Kind, reason string, err error) *Error {
	return &Error{Kind: kind, Reason: reason, Err: err}
}

// KindOf возвращает классификацию ошибки.
// Все, что не является *Error, считается внутренней ошибкой.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// ReasonOf возвращает машиночитаемую причину для ответа клиенту.
// Для внутренних ошибок причина всегда обезличена.
func ReasonOf(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind != KindInternal {
		return e.Reason
	}
	return "internal server error"
}
