// Package catalog loads the embedded translation catalogs and registers
// them with golang.org/x/text/message.
package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// BaseLocale is the source locale every other catalog is checked against.
const BaseLocale = "en-US"

// Locale holds the messages of one locale grouped by namespace.
type Locale struct {
	Tag        language.Tag
	Namespaces map[string]map[string]string
	messages   map[string]string
}

// Bundle is the set of loaded locales.
type Bundle struct {
	locales map[string]*Locale
}

//go:embed locales/*/*.yaml
var embedded embed.FS

var defaultBundle = mustLoadDefault()

// Default returns the embedded bundle, already registered with x/text.
func Default() *Bundle {
	return defaultBundle
}

// LoadEmbedded parses the catalogs compiled into the binary.
func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(embedded)
}

// LoadFromFS parses locales/<locale>/<namespace>.yaml files from fsys.
func LoadFromFS(fsys fs.FS) (*Bundle, error) {
	files, err := fs.Glob(fsys, "locales/*/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob catalogs: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(files)

	bundle := &Bundle{locales: map[string]*Locale{}}
	for _, file := range files {
		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", file, err)
		}
		parsed, err := parseFile(string(data))
		if err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", file, err)
		}
		if err := bundle.add(file, parsed); err != nil {
			return nil, err
		}
	}
	if !bundle.HasLocale(BaseLocale) {
		return nil, fmt.Errorf("base locale %s is missing", BaseLocale)
	}
	return bundle, nil
}

func (b *Bundle) add(file string, parsed parsedFile) error {
	dirLocale := path.Base(path.Dir(file))
	fileNamespace := strings.TrimSuffix(path.Base(file), path.Ext(file))
	if parsed.locale != dirLocale {
		return fmt.Errorf("catalog %s: locale %q does not match directory %q", file, parsed.locale, dirLocale)
	}
	if parsed.namespace != fileNamespace {
		return fmt.Errorf("catalog %s: namespace %q does not match file name %q", file, parsed.namespace, fileNamespace)
	}

	loc, ok := b.locales[parsed.locale]
	if !ok {
		tag, err := language.Parse(parsed.locale)
		if err != nil {
			return fmt.Errorf("catalog %s: parse locale: %w", file, err)
		}
		loc = &Locale{
			Tag:        tag,
			Namespaces: map[string]map[string]string{},
			messages:   map[string]string{},
		}
		b.locales[parsed.locale] = loc
	}
	if _, exists := loc.Namespaces[parsed.namespace]; exists {
		return fmt.Errorf("catalog %s: namespace %q defined twice", file, parsed.namespace)
	}
	for key, value := range parsed.messages {
		if _, exists := loc.messages[key]; exists {
			return fmt.Errorf("catalog %s: duplicate key %q", file, key)
		}
		loc.messages[key] = value
	}
	loc.Namespaces[parsed.namespace] = parsed.messages
	return nil
}

// Register installs every message into the x/text/message default catalog.
func (b *Bundle) Register() error {
	for _, name := range b.Locales() {
		loc := b.locales[name]
		tags := []language.Tag{loc.Tag}
		if base, confidence := loc.Tag.Base(); confidence != language.No {
			if baseTag, err := language.Parse(base.String()); err == nil && baseTag != loc.Tag {
				tags = append(tags, baseTag)
			}
		}
		for _, key := range sortedKeys(loc.messages) {
			for _, tag := range tags {
				if err := message.SetString(tag, key, loc.messages[key]); err != nil {
					return fmt.Errorf("register %s %q: %w", name, key, err)
				}
			}
		}
	}
	return nil
}

// HasLocale reports whether locale was loaded.
func (b *Bundle) HasLocale(locale string) bool {
	if b == nil {
		return false
	}
	_, ok := b.locales[strings.TrimSpace(locale)]
	return ok
}

// Locales returns loaded locale names with the base locale first.
func (b *Bundle) Locales() []string {
	if b == nil {
		return nil
	}
	names := make([]string, 0, len(b.locales))
	for name := range b.locales {
		if name != BaseLocale {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	if _, ok := b.locales[BaseLocale]; ok {
		names = append([]string{BaseLocale}, names...)
	}
	return names
}

// Tags returns language tags in Locales order, suitable for a matcher.
func (b *Bundle) Tags() []language.Tag {
	names := b.Locales()
	tags := make([]language.Tag, 0, len(names))
	for _, name := range names {
		tags = append(tags, b.locales[name].Tag)
	}
	return tags
}

// Message returns the value for key in locale, falling back to BaseLocale.
func (b *Bundle) Message(locale, key string) (string, bool) {
	if b == nil {
		return "", false
	}
	key = strings.TrimSpace(key)
	if loc, ok := b.locales[strings.TrimSpace(locale)]; ok {
		if value, ok := loc.messages[key]; ok {
			return value, true
		}
	}
	if base, ok := b.locales[BaseLocale]; ok {
		value, ok := base.messages[key]
		return value, ok
	}
	return "", false
}

// MissingKeys lists base locale keys that locale does not translate.
func (b *Bundle) MissingKeys(locale string) []string {
	if b == nil {
		return nil
	}
	base, ok := b.locales[BaseLocale]
	if !ok {
		return nil
	}
	loc := b.locales[strings.TrimSpace(locale)]
	var missing []string
	for _, key := range sortedKeys(base.messages) {
		if loc == nil {
			missing = append(missing, key)
			continue
		}
		if _, ok := loc.messages[key]; !ok {
			missing = append(missing, key)
		}
	}
	return missing
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func mustLoadDefault() *Bundle {
	bundle, err := LoadEmbedded()
	if err != nil {
		panic(err)
	}
	if err := bundle.Register(); err != nil {
		panic(err)
	}
	return bundle
}

type parsedFile struct {
	locale    string
	namespace string
	messages  map[string]string
}

// parseFile reads the flat catalog format:
//
//	locale: "en-US"
//	namespace: "web"
//	messages:
//	  "key": "value"
func parseFile(data string) (parsedFile, error) {
	out := parsedFile{messages: map[string]string{}}
	inMessages := false
	for n, raw := range strings.Split(data, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		var err error
		switch {
		case strings.HasPrefix(line, "locale:"):
			out.locale, err = strconv.Unquote(strings.TrimSpace(strings.TrimPrefix(line, "locale:")))
		case strings.HasPrefix(line, "namespace:"):
			out.namespace, err = strconv.Unquote(strings.TrimSpace(strings.TrimPrefix(line, "namespace:")))
		case line == "messages:":
			inMessages = true
		case inMessages:
			var key, value string
			key, value, err = parseEntry(line)
			if err == nil {
				if _, exists := out.messages[key]; exists {
					err = fmt.Errorf("duplicate key %q", key)
				}
				out.messages[key] = value
			}
		default:
			err = fmt.Errorf("unexpected content")
		}
		if err != nil {
			return parsedFile{}, fmt.Errorf("line %d: %w", n+1, err)
		}
	}
	switch {
	case out.locale == "":
		return parsedFile{}, fmt.Errorf("missing locale")
	case out.namespace == "":
		return parsedFile{}, fmt.Errorf("missing namespace")
	case len(out.messages) == 0:
		return parsedFile{}, fmt.Errorf("missing messages")
	}
	return out, nil
}

func parseEntry(line string) (string, string, error) {
	end := closingQuote(line)
	if end < 0 {
		return "", "", fmt.Errorf("expected quoted key")
	}
	key, err := strconv.Unquote(line[:end+1])
	if err != nil {
		return "", "", fmt.Errorf("unquote key: %w", err)
	}
	if strings.TrimSpace(key) == "" {
		return "", "", fmt.Errorf("blank key")
	}
	rest := strings.TrimSpace(line[end+1:])
	if !strings.HasPrefix(rest, ":") {
		return "", "", fmt.Errorf("missing ':' after key")
	}
	value, err := strconv.Unquote(strings.TrimSpace(rest[1:]))
	if err != nil {
		return "", "", fmt.Errorf("unquote value: %w", err)
	}
	return key, value, nil
}

// closingQuote returns the index of the quote ending the leading string
// literal in s, or -1.
func closingQuote(s string) int {
	if !strings.HasPrefix(s, `"`) {
		return -1
	}
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			return i
		}
	}
	return -1
}
