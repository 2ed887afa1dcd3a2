package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"strings"

	"go.uber.org/zap"
)

//go:embed templates/*.html
var embeddedTemplates embed.FS

// TemplatesFS возвращает встроенные шаблоны страниц.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		// embed гарантирует наличие директории, сюда попасть нельзя
		panic(err)
	}
	return sub
}

// FuncMap - функции, доступные в шаблонах.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"title": func(s interface{}) string {
			v := fmt.Sprint(s)
			if v == "" {
				return v
			}
			return strings.ToUpper(v[:1]) + v[1:]
		},
		"inc": func(i int) int { return i + 1 },
	}
}

// LoadTemplates разбирает layout.html и все страницы в один набор шаблонов.
// Страницы определяют шаблоны с именем файла ("login.html" и т.д.) и используют
// блоки "header" и "footer" из layout.html.
func LoadTemplates(fsys fs.FS, logger *zap.Logger) (*template.Template, error) {
	log := logger.Named("TemplateRenderer")

	tmpl, err := template.New("").Funcs(FuncMap()).ParseFS(fsys, "layout.html")
	if err != nil {
		log.Error("Failed to parse layout template", zap.Error(err))
		return nil, fmt.Errorf("failed to parse layout template: %w", err)
	}
	tmpl, err = tmpl.ParseFS(fsys, "*.html")
	if err != nil {
		log.Error("Failed to parse content templates", zap.Error(err))
		return nil, fmt.Errorf("failed to parse content templates: %w", err)
	}

	log.Info("Templates loaded", zap.String("templates", tmpl.DefinedTemplates()))
	return tmpl, nil
}
