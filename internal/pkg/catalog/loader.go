package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/evandrarf/words7000-bot/internal/delivery/http/entity"
	"github.com/evandrarf/words7000-bot/internal/pkg/textnorm"
	"github.com/xuri/excelize/v2"
)

// Load reads both catalog files and builds a Catalog.
func Load(standardPath, advancedPath string, aliases textnorm.Aliases) (*Catalog, error) {
	standard, err := LoadFile(standardPath)
	if err != nil {
		return nil, err
	}
	advanced, err := LoadFile(advancedPath)
	if err != nil {
		return nil, err
	}
	return New(standard, advanced, aliases)
}

// LoadFile reads a word list from a .json array of {id, word, translate}
// or from the first sheet of an .xlsx workbook.
func LoadFile(path string) ([]entity.WordEntry, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return loadExcel(path)
	default:
		return loadJSON(path)
	}
}

func loadJSON(path string) ([]entity.WordEntry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	var words []entity.WordEntry
	if err := json.Unmarshal(raw, &words); err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}
	return words, nil
}

func loadExcel(path string) ([]entity.WordEntry, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel catalog %s: %w", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("failed to read rows of %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	// header row names the columns; default to id, word, translate
	cols := map[string]int{"id": 0, "word": 1, "translate": 2}
	start := 0
	if isHeader(rows[0]) {
		for i, name := range rows[0] {
			cols[strings.ToLower(strings.TrimSpace(name))] = i
		}
		start = 1
	}

	words := make([]entity.WordEntry, 0, len(rows)-start)
	for n, row := range rows[start:] {
		id := cell(row, cols["id"])
		if id == "" {
			// blank lines at the end of a sheet are common
			continue
		}
		w := entity.WordEntry{
			ID:        entity.NewWordID(id),
			Word:      cell(row, cols["word"]),
			Translate: cell(row, cols["translate"]),
		}
		if w.Word == "" {
			return nil, fmt.Errorf("%s row %d: empty word", path, n+start+1)
		}
		words = append(words, w)
	}
	return words, nil
}

func isHeader(row []string) bool {
	for _, c := range row {
		if strings.EqualFold(strings.TrimSpace(c), "word") {
			return true
		}
	}
	return false
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
