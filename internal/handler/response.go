package handler

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/go-chi/render"
)

// RespondWithJSON отправляет JSON ответ с указанным статус кодом
func RespondWithJSON(w http.ResponseWriter, r *http.Request, statusCode int, data interface{}) {
	render.Status(r, statusCode)
	render.JSON(w, r, data)
}

// RespondWithTemplate рендерит HTML шаблон и отправляет его с указанным статус кодом.
// Шаблон исполняется в буфер, чтобы при ошибке не отдать клиенту половину страницы.
func RespondWithTemplate(w http.ResponseWriter, r *http.Request, statusCode int, tmpl *template.Template, data interface{}) error {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return err
	}

	render.Status(r, statusCode)
	render.HTML(w, r, buf.String())
	return nil
}
