package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Locale — код языка из URL/запроса.
type Locale string

const (
	English      Locale = "en"
	French       Locale = "fr"
	Swahili      Locale = "sw"
	Kinyamulenge Locale = "ki"

	Default = English
)

// Суффиксы колонок в БД. Код "ki" в URL соответствует суффиксу Kym.
var suffixes = map[Locale]string{
	English:      "",
	French:       "Fr",
	Swahili:      "Sw",
	Kinyamulenge: "Kym",
}

// Supported — порядок важен: первый элемент используется матчером как язык по умолчанию.
var Supported = []Locale{English, French, Swahili, Kinyamulenge}

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.French,
	language.Swahili,
	language.MustParse("ki"),
})

// Suffix — суффикс поля для локали; пустая строка для базового языка и неизвестных кодов.
func (l Locale) Suffix() string {
	return suffixes[l]
}

func (l Locale) Supported() bool {
	_, ok := suffixes[l]
	return ok
}

// Parse приводит код вида "fr", "FR", "fr-CD" к поддерживаемой локали; иначе Default.
func Parse(raw string) Locale {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Default
	}
	if l := Locale(strings.ToLower(raw)); l.Supported() {
		return l
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return Default
	}
	base, _ := tag.Base()
	if l := Locale(base.String()); l.Supported() {
		return l
	}
	return Default
}

// Negotiate выбирает локаль по заголовку Accept-Language.
func Negotiate(acceptLanguage string) Locale {
	if strings.TrimSpace(acceptLanguage) == "" {
		return Default
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Default
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return Default
	}
	return Supported[idx]
}
