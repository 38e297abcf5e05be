// Package usecase содержит бизнес-логику компонентов:
// Identity Resolver, Habit Ledger, Stats Aggregator, Friendship Graph,
// Leaderboard View и архивация событий синхронизации.
//
// Валидация присутствия полей и классификация ошибок живут здесь,
// а не в HTTP-слое: обработчики только извлекают поля из запроса.
package usecase

import (
	"errors"
	"log/slog"

	"github.com/GoArmGo/HabitApp/internal/apperr"
	"github.com/lib/pq"
)

const pqUniqueViolation = "23505"

// isUniqueViolation проверяет, что ошибка драйвера — нарушение уникальности.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation
}

// internalErr логирует сбой хранилища с именем операции и переводит его
// в InternalError; текст исходной ошибки клиенту не попадает.
func internalErr(logger *slog.Logger, op string, err error) error {
	logger.Error("storage operation failed", "op", op, "error", err)
	return apperr.Wrap(apperr.KindInternal, "internal server error", err)
}
