// Package commentary turns engine events into announcer lines.
package commentary

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"

	"github.com/tatianab/homerun/internal/engine"
	"github.com/tatianab/homerun/internal/models"
)

// BaseLocale is the locale every other locale falls back to.
const BaseLocale = "en-US"

//go:embed locales/*/*.yaml
var localesFS embed.FS

type catalogFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// Play is everything an announcer gets to see about one play.
type Play struct {
	Events []engine.Event
	State  engine.State // after the play
	Teams  models.Teams
}

// Announcer calls plays.
type Announcer interface {
	Announce(ctx context.Context, play Play) (string, error)
}

// Catalog calls plays from fixed per-locale message catalogs.
type Catalog struct {
	locale  string
	printer *message.Printer
}

// Locales lists the locales with an embedded catalog.
func Locales() ([]string, error) {
	files, err := loadCatalogFiles(localesFS)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(files))
	for _, f := range files {
		out = append(out, f.Locale)
	}
	sort.Strings(out)
	return out, nil
}

// NewCatalog builds the announcer for locale, e.g. "en-US" or "zh-TW".
func NewCatalog(locale string) (*Catalog, error) {
	return newCatalogFromFS(localesFS, locale)
}

func newCatalogFromFS(fsys fs.FS, locale string) (*Catalog, error) {
	files, err := loadCatalogFiles(fsys)
	if err != nil {
		return nil, err
	}

	builder := catalog.NewBuilder(catalog.Fallback(language.MustParse(BaseLocale)))
	found := false
	for _, f := range files {
		tag, err := language.Parse(f.Locale)
		if err != nil {
			return nil, fmt.Errorf("parse locale tag %q: %w", f.Locale, err)
		}
		for key, msg := range f.Messages {
			if err := builder.SetString(tag, key, msg); err != nil {
				return nil, fmt.Errorf("catalog %s: key %q: %w", f.Locale, key, err)
			}
		}
		if f.Locale == locale {
			found = true
		}
	}
	if !found {
		return nil, fmt.Errorf("no commentary catalog for locale %q", locale)
	}

	return &Catalog{
		locale:  locale,
		printer: message.NewPrinter(language.MustParse(locale), message.Catalog(builder)),
	}, nil
}

func loadCatalogFiles(fsys fs.FS) ([]catalogFile, error) {
	paths, err := fs.Glob(fsys, "locales/*/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	files := make([]catalogFile, 0, len(paths))
	hasBase := false
	for _, path := range paths {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", path, err)
		}
		var f catalogFile
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", path, err)
		}
		if dir := filepath.Base(filepath.Dir(path)); f.Locale != dir {
			return nil, fmt.Errorf("catalog %s: locale %q must match path locale %q", path, f.Locale, dir)
		}
		if len(f.Messages) == 0 {
			return nil, fmt.Errorf("catalog %s: no messages", path)
		}
		hasBase = hasBase || f.Locale == BaseLocale
		files = append(files, f)
	}
	if !hasBase {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}
	return files, nil
}

func (c *Catalog) Locale() string {
	return c.locale
}

// Line formats one catalog message.
func (c *Catalog) Line(key string, args ...any) string {
	return c.printer.Sprintf(key, args...)
}

// Opening is the line the game starts with.
func (c *Catalog) Opening(teams models.Teams) string {
	return c.Line("game.start", teams.AwayName)
}

// Announce implements Announcer. It never fails.
func (c *Catalog) Announce(_ context.Context, play Play) (string, error) {
	return strings.Join(c.Lines(play), " "), nil
}

// Lines returns one line per notable event of the play.
func (c *Catalog) Lines(play Play) []string {
	var lines []string
	for _, e := range play.Events {
		switch e := e.(type) {
		case engine.StrategySelected:
			lines = append(lines, c.Line("strategy."+string(e.Strategy), play.Teams.Name(e.Team)))
		case engine.HitRecorded:
			lines = append(lines, c.Line("play.hit", play.Teams.Name(e.Team), c.Line("hit."+string(e.Effective))))
		case engine.RunsScored:
			if e.Runs == 1 {
				lines = append(lines, c.Line("play.runs.one"))
			} else {
				lines = append(lines, c.Line("play.runs.many", e.Runs))
			}
		case engine.OutRecorded:
			if e.Added > 1 {
				lines = append(lines, c.Line("play.out.two", play.Teams.Name(e.Team)))
			} else {
				lines = append(lines, c.Line("play.out.one", play.Teams.Name(e.Team)))
			}
			if e.Outs < engine.OutsPerSide {
				lines = append(lines, c.Line("play.next"))
			}
		case engine.FoulBall:
			lines = append(lines, c.Line("play.foul"))
		case engine.SideChanged:
			key := "side.bottom"
			if e.TopHalf {
				key = "side.top"
			}
			lines = append(lines, c.Line(key, e.Inning, play.Teams.Name(e.Batting)))
		case engine.GameOver:
			if e.Result.Tie {
				lines = append(lines, c.Line("final.tie", play.State.Clock.TotalInnings))
				continue
			}
			hi, lo := e.Result.WinnerScore()
			lines = append(lines, c.Line("final.win", play.Teams.Name(e.Result.Winner), hi, lo))
		}
	}
	return lines
}
