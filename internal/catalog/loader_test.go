package catalog

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/japanese"
)

const sampleCSV = "色名,系統色名,マンセル値,PCCS,RGB,説明\n" +
	"紅,あざやかな赤,3R 4/14,v2,#D7003A,紅花で染めた色。古くから高価だった。\n" +
	"藍色,暗い灰みの青,2PB 3/5,dkg18,\"22, 78, 108\",藍で染めた濃い青。\n" +
	",名前なし,,,,\n" +
	"\n" +
	"紅,重複,,,,二つ目の紅。\n" +
	"山吹色,あざやかな赤みの黄,10YR 7.5/13,v6,bad,\n"

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestLoader_CSVFile(t *testing.T) {
	path := writeFile(t, "3kyu.csv", []byte(sampleCSV))

	cat, report, err := NewLoader(nil, SourceOptions{}, nil).Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, []string{"紅", "藍色", "山吹色"}, cat.Names())
	assert.Equal(t, 5, report.RowsRead)
	assert.Equal(t, 1, report.MissingName)
	assert.Equal(t, 1, report.Duplicates)
	assert.Equal(t, 3, report.RecordsTotal)

	beni, ok := cat.ByName("紅")
	require.True(t, ok)
	assert.Equal(t, "あざやかな赤", beni.Family, "first occurrence wins")
	assert.Equal(t, "3R 4/14", beni.Munsell)
	assert.Equal(t, "v2", beni.PCCS)
	require.NotNil(t, beni.RGB)
	assert.Equal(t, RGB{0xD7, 0x00, 0x3A}, *beni.RGB)
	assert.Equal(t, []string{"紅花で染めた色。", "古くから高価だった。"}, beni.Sentences)
	assert.Equal(t, path, beni.Source)

	ai, _ := cat.ByName("藍色")
	require.NotNil(t, ai.RGB)
	assert.Equal(t, RGB{22, 78, 108}, *ai.RGB)

	yamabuki, _ := cat.ByName("山吹色")
	assert.Nil(t, yamabuki.RGB, "unparseable RGB degrades to unknown")
	assert.Empty(t, yamabuki.Description)
	assert.Empty(t, yamabuki.Sentences)
}

func TestLoader_HeaderAliases(t *testing.T) {
	csv := "\ufeffName,family,Munsell,PCCS tone,ＲＧＢ,Description\n" +
		"Crimson, deep red ,5R 4/12,v2,220 20 60,Vivid red! Named after kermes.\n"
	path := writeFile(t, "en.csv", []byte(csv))

	cat, _, err := NewLoader(nil, SourceOptions{}, nil).Load(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, 1, cat.Len())

	c := cat.At(0)
	assert.Equal(t, "Crimson", c.Name, "BOM is stripped from the first header")
	assert.Equal(t, "deep red", c.Family)
	assert.Equal(t, "v2", c.PCCS)
	require.NotNil(t, c.RGB, "full-width header matches RGB alias")
	assert.Equal(t, RGB{220, 20, 60}, *c.RGB)
	assert.Equal(t, []string{"Vivid red!", "Named after kermes."}, c.Sentences)
}

func TestLoader_FirstPresentAliasWins(t *testing.T) {
	// 説明 is present but empty; 解説 must not be consulted.
	csv := "色名,説明,解説\n朱色,,朱色の解説。\n"
	path := writeFile(t, "alias.csv", []byte(csv))

	cat, _, err := NewLoader(nil, SourceOptions{}, nil).Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "", cat.At(0).Description)
}

func TestLoader_CustomAliases(t *testing.T) {
	csv := "colour_name,notes\nTeal,A blue-green.\n"
	path := writeFile(t, "custom.csv", []byte(csv))

	aliases := DefaultAliases().Merge(Aliases{
		FieldName:        {"colour_name"},
		FieldDescription: {"notes"},
	})
	cat, _, err := NewLoader(aliases, SourceOptions{}, nil).Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "Teal", cat.At(0).Name)
	assert.Equal(t, "A blue-green.", cat.At(0).Description)
}

func TestLoader_RaggedRows(t *testing.T) {
	csv := "色名,系統色名,説明\n若竹色\n浅葱色,明るい緑みの青,浅葱の色。,extra\n"
	path := writeFile(t, "ragged.csv", []byte(csv))

	cat, _, err := NewLoader(nil, SourceOptions{}, nil).Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []string{"若竹色", "浅葱色"}, cat.Names())
	assert.Equal(t, "", cat.At(0).Family)
}

func TestLoader_MultipleSourcesDedupAcross(t *testing.T) {
	a := writeFile(t, "3kyu.csv", []byte("色名,説明\n紅,一級。\n藍色,藍。\n"))
	b := writeFile(t, "2kyu.csv", []byte("色名,説明\n紅,二級。\n若草色,若草。\n"))

	cat, report, err := NewLoader(nil, SourceOptions{}, nil).Load(context.Background(), a, b)
	require.NoError(t, err)
	assert.Equal(t, []string{"紅", "藍色", "若草色"}, cat.Names())
	assert.Equal(t, 1, report.Duplicates)

	beni, _ := cat.ByName("紅")
	assert.Equal(t, "一級。", beni.Description)
	assert.Equal(t, []string{a, b}, report.Sources)
}

func TestLoader_ShiftJIS(t *testing.T) {
	encoded, err := japanese.ShiftJIS.NewEncoder().String("色名,説明\n鶯色,鶯の羽の色。\n")
	require.NoError(t, err)
	path := writeFile(t, "sjis.csv", []byte(encoded))

	for _, enc := range []Encoding{EncodingAuto, EncodingShiftJIS} {
		cat, _, err := NewLoader(nil, SourceOptions{Encoding: enc}, nil).Load(context.Background(), path)
		require.NoError(t, err, "encoding %s", enc)
		assert.Equal(t, "鶯色", cat.At(0).Name)
		assert.Equal(t, []string{"鶯の羽の色。"}, cat.At(0).Sentences)
	}
}

func TestLoader_NoValidRows(t *testing.T) {
	path := writeFile(t, "empty.csv", []byte("colour,notes\nred,x\n"))

	_, report, err := NewLoader(nil, SourceOptions{}, nil).Load(context.Background(), path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoRecords))
	assert.True(t, IsLoadFailure(err))
	require.NotNil(t, report)
	assert.Equal(t, 1, report.MissingName)
}

func TestLoader_MissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.csv")
	_, _, err := NewLoader(nil, SourceOptions{}, nil).Load(context.Background(), missing)
	require.Error(t, err)

	var srcErr *SourceError
	require.True(t, errors.As(err, &srcErr))
	assert.Equal(t, missing, srcErr.Location)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.True(t, IsLoadFailure(err))
}

func TestLoader_HTTPSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/data/3kyu.csv" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		_, _ = w.Write([]byte(sampleCSV))
	}))
	defer srv.Close()

	loader := NewLoader(nil, SourceOptions{HTTPClient: srv.Client()}, nil)

	cat, _, err := loader.Load(context.Background(), srv.URL+"/data/3kyu.csv")
	require.NoError(t, err)
	assert.Equal(t, 3, cat.Len())

	_, _, err = loader.Load(context.Background(), srv.URL+"/data/missing.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestLoader_SQLiteSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colors.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE colors (色名 TEXT, 系統色名 TEXT, RGB TEXT, 説明 TEXT)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO colors VALUES
		('萌黄', '強い黄緑', '170,207,83', '春の若葉の色。'),
		('鴇色', NULL, '#F4B3C2', NULL)`)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE extra (name TEXT)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO extra VALUES ('Vermilion')`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	loader := NewLoader(nil, SourceOptions{}, nil)

	cat, report, err := loader.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []string{"萌黄", "鴇色"}, cat.Names())
	assert.Equal(t, []string{"sqlite:" + path + "#colors"}, report.Sources)

	moegi := cat.At(0)
	require.NotNil(t, moegi.RGB)
	assert.Equal(t, RGB{170, 207, 83}, *moegi.RGB)
	assert.Equal(t, "", cat.At(1).Family)

	cat, _, err = loader.Load(context.Background(), "sqlite:"+path+"#extra")
	require.NoError(t, err)
	assert.Equal(t, []string{"Vermilion"}, cat.Names())
}

func TestLoader_SQLiteMissingDatabase(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "none.sqlite")
	_, _, err := NewLoader(nil, SourceOptions{}, nil).Load(context.Background(), missing)
	require.Error(t, err)
	assert.True(t, IsLoadFailure(err))

	_, statErr := os.Stat(missing)
	assert.True(t, errors.Is(statErr, os.ErrNotExist), "loader must not create the file")
}

func TestLoader_CanceledContext(t *testing.T) {
	path := writeFile(t, "3kyu.csv", []byte(sampleCSV))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := NewLoader(nil, SourceOptions{}, nil).Load(ctx, path)
	assert.ErrorIs(t, err, context.Canceled)
}
