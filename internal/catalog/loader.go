package catalog

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// LoadReport summarizes one Load call.
type LoadReport struct {
	Sources      []string
	RowsRead     int
	MissingName  int
	Duplicates   int
	RGBUnknown   int
	RecordsTotal int
}

// Loader reads sources and normalizes their rows into a Catalog.
type Loader struct {
	aliases Aliases
	opts    SourceOptions
	logger  *zap.Logger
}

// NewLoader creates a Loader. A nil aliases table means DefaultAliases;
// a nil logger means no logging.
func NewLoader(aliases Aliases, opts SourceOptions, logger *zap.Logger) *Loader {
	if aliases == nil {
		aliases = DefaultAliases()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{aliases: aliases, opts: opts, logger: logger}
}

// Load opens every location in order and returns the combined catalog.
// Any unreadable source, or an empty result, is a load failure.
func (l *Loader) Load(ctx context.Context, locations ...string) (*Catalog, *LoadReport, error) {
	sources := make([]Source, 0, len(locations))
	for _, loc := range locations {
		src, err := OpenSource(loc, l.opts)
		if err != nil {
			return nil, nil, err
		}
		sources = append(sources, src)
	}
	return l.LoadSources(ctx, sources...)
}

// LoadSources is Load for already-opened sources.
func (l *Loader) LoadSources(ctx context.Context, sources ...Source) (*Catalog, *LoadReport, error) {
	report := &LoadReport{}
	var colors []Color

	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		rows, err := src.Rows(ctx)
		if err != nil {
			l.logger.Error("catalog source failed",
				zap.String("source", src.Location()),
				zap.Error(err),
			)
			return nil, nil, err
		}

		report.Sources = append(report.Sources, src.Location())
		report.RowsRead += len(rows)
		l.logger.Debug("catalog source read",
			zap.String("source", src.Location()),
			zap.Int("rows", len(rows)),
		)

		for _, row := range rows {
			c := l.normalize(row, src.Location())
			if c.Name == "" {
				report.MissingName++
				continue
			}
			if c.RGB == nil {
				report.RGBUnknown++
			}
			colors = append(colors, c)
		}
	}

	cat := New(colors)
	report.Duplicates = len(colors) - cat.Len()
	report.RecordsTotal = cat.Len()

	l.logger.Info("catalog loaded",
		zap.Strings("sources", report.Sources),
		zap.Int("rows", report.RowsRead),
		zap.Int("records", report.RecordsTotal),
		zap.Int("missing_name", report.MissingName),
		zap.Int("duplicates", report.Duplicates),
		zap.Int("rgb_unknown", report.RGBUnknown),
	)

	if cat.Len() == 0 {
		return nil, report, fmt.Errorf("load catalog: %w", ErrNoRecords)
	}
	return cat, report, nil
}

// normalize maps one raw row onto a Color using the alias table.
func (l *Loader) normalize(row Row, location string) Color {
	desc := strings.TrimSpace(l.aliases.Lookup(row, FieldDescription))
	c := Color{
		Name:        strings.TrimSpace(l.aliases.Lookup(row, FieldName)),
		Family:      strings.TrimSpace(l.aliases.Lookup(row, FieldFamily)),
		Munsell:     strings.TrimSpace(l.aliases.Lookup(row, FieldMunsell)),
		PCCS:        strings.TrimSpace(l.aliases.Lookup(row, FieldPCCS)),
		Description: desc,
		Sentences:   SplitSentences(desc),
		Source:      location,
	}
	if rgb, ok := ParseRGB(l.aliases.Lookup(row, FieldRGB)); ok {
		c.RGB = &rgb
	}
	return c
}
