package i18n

import (
	"strings"

	"imuhira/internal/models"
)

// Record — запись с переводимыми полями: базовое имя ("title") и варианты с суффиксом ("titleFr").
// nil означает, что поля нет или оно NULL.
type Record interface {
	Field(name string) *string
}

// Map — запись из произвольного набора полей.
type Map map[string]string

func (m Map) Field(name string) *string {
	v, ok := m[name]
	if !ok {
		return nil
	}
	return &v
}

var (
	ArticleFields = []string{"title", "excerpt", "content"}
	DebateFields  = []string{"title", "summary", "proposerName", "proposerArguments", "opposerName", "opposerArguments"}
)

// ResolveField возвращает перевод поля, если он есть и не пустой после trim, иначе базовое значение.
// Никогда не паникует: отсутствующее поле даёт "".
func ResolveField(rec Record, field string, loc Locale) string {
	if rec == nil {
		return ""
	}
	if suffix := loc.Suffix(); suffix != "" {
		if v := rec.Field(field + suffix); v != nil && strings.TrimSpace(*v) != "" {
			return *v
		}
	}
	if v := rec.Field(field); v != nil {
		return *v
	}
	return ""
}

func ResolveFields(rec Record, fields []string, loc Locale) map[string]string {
	out := make(map[string]string, len(fields))
	for _, f := range fields {
		out[f] = ResolveField(rec, f, loc)
	}
	return out
}

func LocalizeArticle(a *models.Article, loc Locale) models.LocalizedArticle {
	if a == nil {
		return models.LocalizedArticle{}
	}
	return models.LocalizedArticle{
		Title:   ResolveField(a, "title", loc),
		Excerpt: ResolveField(a, "excerpt", loc),
		Content: ResolveField(a, "content", loc),
	}
}

func LocalizeDebate(d *models.Debate, loc Locale) models.LocalizedDebate {
	if d == nil {
		return models.LocalizedDebate{}
	}
	return models.LocalizedDebate{
		Title:             ResolveField(d, "title", loc),
		Summary:           ResolveField(d, "summary", loc),
		ProposerName:      ResolveField(d, "proposerName", loc),
		ProposerArguments: ResolveField(d, "proposerArguments", loc),
		OpposerName:       ResolveField(d, "opposerName", loc),
		OpposerArguments:  ResolveField(d, "opposerArguments", loc),
	}
}
