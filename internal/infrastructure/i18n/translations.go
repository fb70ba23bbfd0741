package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"

	"github.com/mh739025250/deltaboard/internal/domain"
	"github.com/mh739025250/deltaboard/internal/domain/entities"
	"github.com/mh739025250/deltaboard/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

// Ensure Translator implements the output ports.
var (
	_ output.T       = (*Translator)(nil)
	_ output.Catalog = (*Translator)(nil)
)

// Translator is a thin wrapper around go-i18n's Bundle/Localizer. It also
// keeps the parsed tables so strict lookups never go through fallback.
//
// A Translator is read-only once NewTranslator returns and can be shared
// between goroutines.
type Translator struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
	tables          map[language.Tag]entities.Table
	log             logrus.FieldLogger
}

type options struct {
	embedded bool
	sources  []fs.FS
	log      logrus.FieldLogger
}

// Option configures NewTranslator.
type Option func(*options)

// WithLocaleDir loads active.<locale>.<ext> files from dir after the
// embedded tables. Entries found there override embedded ones key by key.
func WithLocaleDir(dir string) Option {
	return func(o *options) { o.sources = append(o.sources, os.DirFS(dir)) }
}

// WithFS is like WithLocaleDir for an arbitrary file system.
func WithFS(fsys fs.FS) Option {
	return func(o *options) { o.sources = append(o.sources, fsys) }
}

// WithoutEmbedded drops the embedded tables; only WithFS/WithLocaleDir
// sources are loaded.
func WithoutEmbedded() Option {
	return func(o *options) { o.embedded = false }
}

// WithLogger replaces the standard logrus logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(o *options) { o.log = log }
}

// NewTranslator builds a Translator backed by go-i18n using the given default
// locale (e.g. "en").
//
// Tables are read from the embedded active.*.toml files, then from any
// extra source. A file that fails to parse or repeats a key aborts loading.
func NewTranslator(defaultLocale string, opts ...Option) (*Translator, error) {
	o := &options{
		embedded: true,
		log:      logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(o)
	}
	sources := o.sources
	if o.embedded {
		sources = append([]fs.FS{localeFS}, sources...)
	}

	tag, err := language.Parse(defaultLocale)
	if err != nil {
		o.log.WithError(err).WithField("locale", defaultLocale).Warn("i18n: invalid default locale, using en")
		tag = language.English
	}

	tables := make(map[language.Tag]entities.Table)
	for _, src := range sources {
		if err := loadTables(src, tables, o.log); err != nil {
			return nil, err
		}
	}
	if _, ok := tables[tag]; !ok {
		return nil, fmt.Errorf("i18n: default locale %s: %w", tag, domain.ErrUnknownLocale)
	}

	bundle := i18n.NewBundle(tag)
	for t, table := range tables {
		if err := bundle.AddMessages(t, messagesFromTable(table)...); err != nil {
			return nil, fmt.Errorf("i18n: add %s messages: %w", t, err)
		}
	}

	return &Translator{
		bundle:          bundle,
		defaultLanguage: tag,
		tables:          tables,
		log:             o.log,
	}, nil
}

func loadTables(src fs.FS, tables map[language.Tag]entities.Table, log logrus.FieldLogger) error {
	files, err := fs.Glob(src, "active.*.*")
	if err != nil {
		return fmt.Errorf("i18n: list locale files: %w", err)
	}
	slices.Sort(files)

	// setBy records which file of this source set each key, per locale.
	setBy := make(map[language.Tag]map[string]string)

	for _, file := range files {
		buf, err := fs.ReadFile(src, file)
		if err != nil {
			return fmt.Errorf("i18n: read %s: %w", file, err)
		}
		mf, table, err := parseFile(file, buf)
		if errors.Is(err, domain.ErrUnsupportedFormat) {
			log.WithField("file", file).Warn("i18n: skipping file with unsupported format")
			continue
		}
		if err != nil {
			return fmt.Errorf("i18n: load %s: %w", file, err)
		}
		if mf.Tag == language.Und {
			return fmt.Errorf("i18n: load %s: %w", file, domain.ErrUnknownLocale)
		}

		seen, ok := setBy[mf.Tag]
		if !ok {
			seen = make(map[string]string, len(table))
			setBy[mf.Tag] = seen
		}
		for k := range table {
			if prev, dup := seen[k]; dup {
				return fmt.Errorf("i18n: load %s: %w: %q already set by %s", file, domain.ErrDuplicateKey, k, prev)
			}
		}

		dst, ok := tables[mf.Tag]
		if !ok {
			dst = make(entities.Table, len(table))
			tables[mf.Tag] = dst
		}
		for k, v := range table {
			if _, overridden := dst[k]; overridden {
				log.WithFields(logrus.Fields{
					"file":   file,
					"locale": mf.Tag.String(),
					"key":    k,
				}).Debug("i18n: overriding key from an earlier source")
			}
			dst[k] = v
			seen[k] = file
		}

		log.WithFields(logrus.Fields{
			"file":             file,
			"locale":           mf.Tag.String(),
			"localeKeysAmount": len(table),
		}).Info("loaded localization file")
	}
	return nil
}

// T renders the message identified by key for the given locale.
// If the key/locale is not found, it falls back to the default locale,
// then finally to the key itself.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}

	languages := []string{}
	if locale != "" {
		languages = append(languages, locale)
	}
	languages = append(languages, t.defaultLanguage.String())

	localizer := i18n.NewLocalizer(t.bundle, languages...)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		t.log.WithError(err).WithFields(logrus.Fields{
			"key":     key,
			"locales": languages,
		}).Debug("i18n: localize failed")
		return key
	}
	return msg
}

// Lookup returns the raw text for key in exactly the given locale. There is
// no fallback: a miss in "fr" is a miss even if "en" has the key.
func (t *Translator) Lookup(locale, key string) (string, bool) {
	table, ok := t.table(locale)
	if !ok {
		return "", false
	}
	return table.Lookup(key)
}

// Table returns a copy of the locale's table.
func (t *Translator) Table(locale string) (entities.Table, bool) {
	table, ok := t.table(locale)
	if !ok {
		return nil, false
	}
	return table.Clone(), true
}

// Keys returns the locale's keys sorted, or nil for an unknown locale.
func (t *Translator) Keys(locale string) []string {
	table, ok := t.table(locale)
	if !ok {
		return nil
	}
	return table.Keys()
}

// Locales lists the loaded locales, default first, the rest sorted.
func (t *Translator) Locales() []language.Tag {
	out := make([]language.Tag, 0, len(t.tables))
	for tag := range t.tables {
		if tag != t.defaultLanguage {
			out = append(out, tag)
		}
	}
	slices.SortFunc(out, func(a, b language.Tag) int {
		return strings.Compare(a.String(), b.String())
	})
	return append([]language.Tag{t.defaultLanguage}, out...)
}

// DefaultLocale is the locale T falls back to and Check compares against.
func (t *Translator) DefaultLocale() language.Tag {
	return t.defaultLanguage
}

func (t *Translator) table(locale string) (entities.Table, bool) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, false
	}
	table, ok := t.tables[tag]
	return table, ok
}
