package handlers

import (
	"html/template"
	"net/http"
)

// Flash categories used across handlers
const (
	FlashSuccess = "success"
	FlashError   = "error"
)

// Renderer выполняет HTML-шаблоны страниц.
// Рендеринг здесь намеренно минимальный: верстка — внешняя зона
// ответственности, хендлеры отвечают только за данные.
type Renderer struct {
	tpl *template.Template
}

// NewRenderer создает рендерер поверх разобранных шаблонов
func NewRenderer(tpl *template.Template) *Renderer {
	return &Renderer{tpl: tpl}
}

// Render выполняет шаблон name с данными data
func (r *Renderer) Render(w http.ResponseWriter, name string, data interface{}) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return r.tpl.ExecuteTemplate(w, name, data)
}

// Redirect отвечает 303 See Other: после POST браузер делает
// идемпотентный GET на целевую страницу
func Redirect(w http.ResponseWriter, r *http.Request, path string) {
	http.Redirect(w, r, path, http.StatusSeeOther)
}
