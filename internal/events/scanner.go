package events

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"

	"hijrical/internal/hijri"
)

var hijriDatePattern = regexp.MustCompile(`^(\d{1,4})-(\d{1,2})-(\d{1,2})$`)

// ScanDirs walks the given directories for .md files and parses each as an
// event card. Files without a resolvable Hijri date are skipped.
func ScanDirs(dirs []string) []Event {
	var events []Event
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
				continue
			}
			path := filepath.Join(dir, entry.Name())
			if ev, ok := ParseEventFile(path); ok {
				events = append(events, ev)
			}
		}
	}
	return events
}

type eventFrontmatter struct {
	Date     string `yaml:"date"`
	Title    string `yaml:"title"`
	Blackout bool   `yaml:"blackout"`
}

// ParseEventFile parses one markdown card. Returns the event and true only
// if the frontmatter carries a valid Hijri date.
func ParseEventFile(path string) (Event, bool) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Event{}, false
	}

	fm, body := splitFrontmatter(content)
	date, ok := parseHijriDate(fm.Date)
	if !ok {
		return Event{}, false
	}

	title := fm.Title
	if title == "" {
		title = extractTitle(string(body))
	}
	if title == "" {
		title = titleFromFilename(filepath.Base(path))
	}

	return Event{
		Title:    title,
		Date:     date,
		Blackout: fm.Blackout,
		FilePath: path,
	}, true
}

// splitFrontmatter separates a leading YAML block delimited by --- lines
// from the markdown body. Malformed frontmatter yields an empty struct and
// the whole content as body.
func splitFrontmatter(content []byte) (eventFrontmatter, []byte) {
	var fm eventFrontmatter
	lines := bytes.Split(content, []byte("\n"))
	if len(lines) == 0 || !bytes.Equal(bytes.TrimSpace(lines[0]), []byte("---")) {
		return fm, content
	}
	end := 0
	for i := 1; i < len(lines); i++ {
		if bytes.Equal(bytes.TrimSpace(lines[i]), []byte("---")) {
			end = i
			break
		}
	}
	if end == 0 {
		return fm, content
	}
	block := bytes.Join(lines[1:end], []byte("\n"))
	if err := yaml.Unmarshal(block, &fm); err != nil {
		return eventFrontmatter{}, content
	}
	return fm, bytes.Join(lines[end+1:], []byte("\n"))
}

// parseHijriDate reads "1446-09-01" style Hijri dates.
func parseHijriDate(s string) (hijri.Date, bool) {
	m := hijriDatePattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return hijri.Date{}, false
	}
	d, err := hijri.New(atoi(m[1]), atoi(m[2]), atoi(m[3]))
	if err != nil {
		return hijri.Date{}, false
	}
	return d, true
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// extractTitle returns the text of the first level-1 heading in the body.
func extractTitle(markdown string) string {
	reader := text.NewReader([]byte(markdown))
	parser := goldmark.DefaultParser()
	doc := parser.Parse(reader)

	var title string
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering && n.Kind() == ast.KindHeading {
			heading := n.(*ast.Heading)
			if heading.Level == 1 {
				title = string(n.Text([]byte(markdown)))
				return ast.WalkStop, nil
			}
		}
		return ast.WalkContinue, nil
	})
	return title
}

func titleFromFilename(name string) string {
	name = strings.TrimSuffix(name, ".md")
	name = strings.ReplaceAll(name, "-", " ")
	name = strings.ReplaceAll(name, "_", " ")
	return strings.TrimSpace(name)
}
