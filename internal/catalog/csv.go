package catalog

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
)

// Encoding names the text encoding of a CSV source.
type Encoding string

const (
	// EncodingAuto reads UTF-8 and falls back to Shift_JIS when the bytes
	// are not valid UTF-8.
	EncodingAuto     Encoding = "auto"
	EncodingUTF8     Encoding = "utf-8"
	EncodingShiftJIS Encoding = "shift_jis"
)

// ParseEncoding maps a configuration value to an Encoding.
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return EncodingAuto, nil
	case "utf-8", "utf8":
		return EncodingUTF8, nil
	case "shift_jis", "shift-jis", "sjis", "cp932", "windows-31j":
		return EncodingShiftJIS, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedEncoding, s)
}

// decodeText converts raw bytes to UTF-8 according to enc.
func decodeText(b []byte, enc Encoding) ([]byte, error) {
	switch enc {
	case EncodingUTF8:
		return b, nil
	case EncodingShiftJIS:
		return japanese.ShiftJIS.NewDecoder().Bytes(b)
	case EncodingAuto, "":
		if utf8.Valid(b) {
			return b, nil
		}
		return japanese.ShiftJIS.NewDecoder().Bytes(b)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, string(enc))
}

// ParseCSV reads header-keyed rows. The first record is the header; blank
// lines are skipped; short records simply lack the trailing columns. When a
// header repeats, the first column with that name wins.
func ParseCSV(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i, h := range header {
		header[i] = NormalizeHeader(h)
	}

	var rows []Row
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		if isBlankRecord(rec) {
			continue
		}
		row := make(Row, len(rec))
		for i, v := range rec {
			if i >= len(header) || header[i] == "" {
				continue
			}
			if _, dup := row[header[i]]; dup {
				continue
			}
			row[header[i]] = v
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func isBlankRecord(rec []string) bool {
	return len(rec) == 1 && strings.TrimSpace(rec[0]) == ""
}

func parseEncodedCSV(b []byte, enc Encoding) ([]Row, error) {
	text, err := decodeText(b, enc)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return ParseCSV(bytes.NewReader(text))
}

// csvFileSource reads a CSV file from disk.
type csvFileSource struct {
	path     string
	encoding Encoding
}

func (s *csvFileSource) Location() string { return s.path }

func (s *csvFileSource) Rows(_ context.Context) ([]Row, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return nil, &SourceError{Location: s.path, Err: err}
	}
	rows, err := parseEncodedCSV(b, s.encoding)
	if err != nil {
		return nil, &SourceError{Location: s.path, Err: err}
	}
	return rows, nil
}

// httpSource fetches a CSV document once over HTTP.
type httpSource struct {
	url      string
	client   *http.Client
	encoding Encoding
}

func (s *httpSource) Location() string { return s.url }

func (s *httpSource) Rows(ctx context.Context) ([]Row, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, &SourceError{Location: s.url, Err: err}
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &SourceError{Location: s.url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &SourceError{Location: s.url, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &SourceError{Location: s.url, Err: fmt.Errorf("read body: %w", err)}
	}
	rows, err := parseEncodedCSV(b, s.encoding)
	if err != nil {
		return nil, &SourceError{Location: s.url, Err: err}
	}
	return rows, nil
}
