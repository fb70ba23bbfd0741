// Command localecheck validates the locale tables shipped with the web
// front-end, or exports one of them for bundling.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/language/display"

	"github.com/mh739025250/deltaboard/internal/application"
	"github.com/mh739025250/deltaboard/internal/config"
	"github.com/mh739025250/deltaboard/internal/domain"
	"github.com/mh739025250/deltaboard/internal/domain/entities"
	"github.com/mh739025250/deltaboard/internal/infrastructure/i18n"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	fs := flag.NewFlagSet("localecheck", flag.ContinueOnError)
	export := fs.String("export", "", "write the table of this locale to stdout instead of checking")
	format := fs.String("format", "json", "export format: json, toml or yaml")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Error("load config")
		return 1
	}
	logrus.SetLevel(cfg.Level())

	var opts []i18n.Option
	if cfg.LocaleDir != "" {
		opts = append(opts, i18n.WithLocaleDir(cfg.LocaleDir))
	}
	translator, err := i18n.NewTranslator(cfg.DefaultLocale, opts...)
	if err != nil {
		logrus.WithError(err).Error("load locale tables")
		return 1
	}

	if *export != "" {
		if err := exportTable(stdout, translator, *export, *format); err != nil {
			logrus.WithError(err).WithField("locale", *export).Error("export")
			return 1
		}
		return 0
	}

	report := application.NewCatalogService(translator).Check()
	printReport(stdout, translator, report)
	if !report.OK() {
		logrus.WithError(report.Err()).Error("locale tables are inconsistent")
		return 1
	}
	return 0
}

func exportTable(w io.Writer, translator *i18n.Translator, locale, format string) error {
	f, err := i18n.ParseFormat(format)
	if err != nil {
		return err
	}
	table, ok := translator.Table(locale)
	if !ok {
		return fmt.Errorf("%w: %q", domain.ErrUnknownLocale, locale)
	}
	b, err := i18n.Marshal(f, table)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

func printReport(w io.Writer, translator *i18n.Translator, report entities.CatalogReport) {
	names := display.English.Tags()
	for _, tag := range report.Locales {
		marker := " "
		if tag == report.Reference {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %-6s %-10s %3d keys\n", marker, tag, names.Name(tag), len(translator.Keys(tag.String())))
		if keys := report.Missing[tag]; len(keys) > 0 {
			fmt.Fprintf(w, "    missing: %s\n", strings.Join(keys, ", "))
		}
		if keys := report.Empty[tag]; len(keys) > 0 {
			fmt.Fprintf(w, "    empty:   %s\n", strings.Join(keys, ", "))
		}
		if keys := report.Extra[tag]; len(keys) > 0 {
			fmt.Fprintf(w, "    extra:   %s\n", strings.Join(keys, ", "))
		}
	}
}
