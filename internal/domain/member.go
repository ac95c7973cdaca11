package domain

import "strings"

// Member представляет участника команды на странице "team"
type Member struct {
	Name        string `json:"name" yaml:"name"`
	Affiliation string `json:"affiliation" yaml:"affiliation"` // "Институт, Страна"
	Link        string `json:"link" yaml:"link"`               // Абсолютный URL профиля
	Photo       string `json:"photo" yaml:"photo"`             // Путь к аватару от корня сайта
}

// Institution возвращает название организации из affiliation (всё до последней запятой)
func (m Member) Institution() string {
	i := strings.LastIndex(m.Affiliation, ",")
	if i < 0 {
		return strings.TrimSpace(m.Affiliation)
	}
	return strings.TrimSpace(m.Affiliation[:i])
}

// Country возвращает страну из affiliation (всё после последней запятой)
func (m Member) Country() string {
	i := strings.LastIndex(m.Affiliation, ",")
	if i < 0 {
		return ""
	}
	return strings.TrimSpace(m.Affiliation[i+1:])
}
