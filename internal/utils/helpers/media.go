package helpers

import (
	"fmt"
	"net/url"
	"regexp"
	"slices"
	"strings"

	"imuhira/internal/apperr"
)

var (
	imageHosts = []string{
		"img.youtube.com",
		"i.ytimg.com",
		"images.unsplash.com",
		"cdn.pixabay.com",
		"images.pexels.com",
	}
	videoHosts = []string{
		"www.youtube.com",
		"youtube.com",
		"youtu.be",
	}

	youTubeIDPattern   = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)
	youTubePathPattern = regexp.MustCompile(`(?:embed|v)/([a-zA-Z0-9_-]{11})`)
	traversalPattern   = regexp.MustCompile(`(?:^|[/\\])\.\.(?:[/\\]|$)`)
)

func ImageHosts() []string { return slices.Clone(imageHosts) }
func VideoHosts() []string { return slices.Clone(videoHosts) }

func IsValidYouTubeID(id string) bool {
	return youTubeIDPattern.MatchString(id)
}

// ExtractYouTubeID принимает id или ссылку youtu.be / youtube.com (watch?v=, /embed/, /v/).
func ExtractYouTubeID(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	if youTubeIDPattern.MatchString(raw) {
		return raw, true
	}

	u, err := url.Parse(raw)
	if err != nil || !slices.Contains(videoHosts, u.Hostname()) {
		return "", false
	}

	var id string
	if u.Hostname() == "youtu.be" {
		id = strings.TrimPrefix(u.Path, "/")
	} else if v := u.Query().Get("v"); v != "" {
		id = v
	} else if m := youTubePathPattern.FindStringSubmatch(u.Path); m != nil {
		id = m[1]
	}
	if !youTubeIDPattern.MatchString(id) {
		return "", false
	}
	return id, true
}

func IsValidImageURL(raw string) bool { return allowedURL(raw, imageHosts) }
func IsValidVideoURL(raw string) bool { return allowedURL(raw, videoHosts) }

// allowedURL: пустая строка допустима; иначе https, хост из списка, без ".." в пути.
func allowedURL(raw string, hosts []string) bool {
	if raw == "" {
		return true
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if traversalPattern.MatchString(u.Path) {
		return false
	}
	if u.Scheme != "https" {
		return false
	}
	return slices.Contains(hosts, u.Hostname())
}

// CheckImageURL / CheckVideoURL — то же, но в виде ошибки валидации для сервисов.
func CheckImageURL(field, raw string) error {
	if !IsValidImageURL(raw) {
		return fmt.Errorf("%w: %s must be an https URL on an allowed image host", apperr.ErrValidation, field)
	}
	return nil
}

func CheckVideoURL(field, raw string) error {
	if !IsValidVideoURL(raw) {
		return fmt.Errorf("%w: %s must be an https URL on an allowed video host", apperr.ErrValidation, field)
	}
	return nil
}
