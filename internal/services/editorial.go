package services

import (
	"fmt"
	"regexp"
	"strings"

	"imuhira/internal/apperr"

	"github.com/microcosm-cc/bluemonday"
)

const (
	defaultAuthor   = "Imuhira Staff"
	defaultCategory = "News"
	defaultProposer = "Proposer"
	defaultOpposer  = "Opposer"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// editorPolicy — разметка из редактора: UGC плюс картинки. Это чистка, а не гарантия безопасности.
func editorPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowElements("img")
	p.AllowAttrs("src", "alt").OnElements("img")
	return p
}

func normalizeSlug(raw string) (string, error) {
	slug := strings.ToLower(strings.TrimSpace(raw))
	if !slugPattern.MatchString(slug) {
		return "", fmt.Errorf("%w: slug must contain only a-z, 0-9 and single dashes", apperr.ErrValidation)
	}
	return slug, nil
}

func required(field, v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", fmt.Errorf("%w: %s is required", apperr.ErrValidation, field)
	}
	return v, nil
}

func orDefault(v, d string) string {
	if v = strings.TrimSpace(v); v == "" {
		return d
	}
	return v
}

// optStr: пустой или пробельный перевод хранится как NULL.
func optStr(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	if v == "" {
		return nil
	}
	return &v
}

// optHTML — optStr с чисткой разметки.
func optHTML(p *bluemonday.Policy, v *string) *string {
	v = optStr(v)
	if v == nil {
		return nil
	}
	clean := p.Sanitize(*v)
	return optStr(&clean)
}

func derefOr(p *bool, d bool) bool {
	if p == nil {
		return d
	}
	return *p
}
