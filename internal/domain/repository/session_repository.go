package repository

import (
	"time"

	"github.com/commute-map/internal/domain"
)

// SessionRepository хранит состояние оркестратора по сессиям браузера.
type SessionRepository interface {
	// Get возвращает копию сессии или nil, если ее нет
	Get(id string) *domain.MapSession

	// Update применяет fn к сессии под блокировкой, создавая ее при отсутствии.
	// Возвращает копию состояния после fn.
	Update(id string, fn func(s *domain.MapSession)) *domain.MapSession

	// UpdateExisting применяет fn только к существующей сессии и никогда ее не создает.
	// ok равен false, если сессии нет.
	UpdateExisting(id string, fn func(s *domain.MapSession)) (*domain.MapSession, bool)

	// Delete удаляет сессию
	Delete(id string)

	// Sweep удаляет сессии без обновлений с idleSince и возвращает их число
	Sweep(idleSince time.Time) int

	// Count возвращает число живых сессий
	Count() int
}
