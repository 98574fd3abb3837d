package logger

import (
	"bufio"
	"compress/gzip"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// ErrNoLogs — за запрошенный день записей нет.
var ErrNoLogs = errors.New("no logs for day")

var (
	dayPattern    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	backupPattern = regexp.MustCompile(`^app-\d{4}-\d{2}-\d{2}T\d{2}-\d{2}-\d{2}\.\d{3}\.log(\.gz)?$`)
)

func ValidDay(day string) bool { return dayPattern.MatchString(day) }

// Filter — выборка строк JSON-лога за день.
type Filter struct {
	Day    string
	Levels map[string]bool // пусто — все уровни
	Query  string          // подстрока без учёта регистра
	Hour   *int
	Cursor int // сколько подходящих по дню строк пропустить
	Limit  int
}

type line struct {
	Time  string `json:"time"`
	Level string `json:"level"`
}

// Files — файлы логов в dir: ротированные копии lumberjack по возрастанию, затем текущий.
func Files(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var backups []string
	var current string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch name := e.Name(); {
		case name == FileName:
			current = filepath.Join(dir, name)
		case backupPattern.MatchString(name):
			backups = append(backups, filepath.Join(dir, name))
		}
	}
	sort.Strings(backups)
	if current != "" {
		backups = append(backups, current)
	}
	return backups, nil
}

// Days — дни (YYYY-MM-DD), за которые в логах есть записи, по возрастанию.
func Days(dir string) ([]string, error) {
	files, err := Files(dir)
	if err != nil {
		return nil, err
	}
	seen := map[string]struct{}{}
	for _, path := range files {
		_ = eachLine(path, func(raw []byte) bool {
			var l line
			if json.Unmarshal(raw, &l) == nil && len(l.Time) >= 10 {
				seen[l.Time[:10]] = struct{}{}
			}
			return true
		})
	}
	days := make([]string, 0, len(seen))
	for d := range seen {
		days = append(days, d)
	}
	sort.Strings(days)
	return days, nil
}

// Read возвращает строки за f.Day, прошедшие фильтры, и курсор для следующей страницы.
func Read(dir string, f Filter) ([]json.RawMessage, int, error) {
	files, err := Files(dir)
	if err != nil {
		return nil, 0, err
	}
	query := strings.ToLower(strings.TrimSpace(f.Query))

	items := make([]json.RawMessage, 0)
	dayLines, scanned := 0, 0
	for _, path := range files {
		err := eachLine(path, func(raw []byte) bool {
			var l line
			if json.Unmarshal(raw, &l) != nil || !strings.HasPrefix(l.Time, f.Day) {
				return true
			}
			dayLines++
			if dayLines <= f.Cursor {
				return true
			}
			scanned = dayLines
			if len(f.Levels) > 0 && !f.Levels[strings.ToLower(l.Level)] {
				return true
			}
			if f.Hour != nil && hourOf(l.Time) != *f.Hour {
				return true
			}
			if query != "" && !strings.Contains(strings.ToLower(string(raw)), query) {
				return true
			}
			items = append(items, append(json.RawMessage{}, raw...))
			return f.Limit <= 0 || len(items) < f.Limit
		})
		if err != nil {
			Log.Warn("Не удалось прочитать файл логов", zap.String("path", path), zap.Error(err))
		}
		if f.Limit > 0 && len(items) >= f.Limit {
			break
		}
	}
	if dayLines == 0 {
		return nil, 0, ErrNoLogs
	}
	next := scanned
	if next < f.Cursor {
		next = f.Cursor
	}
	return items, next, nil
}

// hourOf: "2006-01-02T15:04:05.000Z0700" -> 15; -1 если разобрать не удалось.
func hourOf(ts string) int {
	if len(ts) < 13 {
		return -1
	}
	h, err := strconv.Atoi(ts[11:13])
	if err != nil {
		return -1
	}
	return h
}

func eachLine(path string, handle func([]byte) bool) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return err
		}
		defer gz.Close()
		r = gz
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if !handle(sc.Bytes()) {
			return nil
		}
	}
	return sc.Err()
}
