package repository

import (
	"iter"

	"github.com/aidar/stellar-team/internal/domain"
)

// MemberRepository определяет методы чтения каталога участников.
// Реализуется *directory.Directory; данные неизменяемы, поэтому методы не возвращают ошибок.
type MemberRepository interface {
	// All возвращает копию всех участников в порядке отображения
	All() []domain.Member

	// Len возвращает количество участников
	Len() int

	// Members итерирует участников в порядке отображения
	Members() iter.Seq2[int, domain.Member]
}
