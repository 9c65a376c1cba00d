package storage

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/lunit-heesungyang/palette-manager/internal/colorutil"
	"github.com/lunit-heesungyang/palette-manager/internal/logging"
	"github.com/lunit-heesungyang/palette-manager/internal/model"
)

// ExportFormat names a palette export layout
type ExportFormat string

const (
	ExportJSON ExportFormat = "json"
	ExportCSV  ExportFormat = "csv"
	ExportCSS  ExportFormat = "css"
	ExportSCSS ExportFormat = "scss"
	ExportASE  ExportFormat = "ase"
)

// ExportedBy is recorded in JSON export metadata
const ExportedBy = "pal"

const (
	unnamedColor    = "Unnamed Color"
	unnamedColorZh  = "未命名颜色"
	unnamedCategory = "Unnamed Category"
)

var csvHeader = []string{
	"name", "nameZh", "hex", "description", "descriptionZh",
	"temperature", "category", "tags", "isFavorite", "usageCount",
}

// ParseExportFormat validates a format name
func ParseExportFormat(s string) (ExportFormat, error) {
	switch f := ExportFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case ExportJSON, ExportCSV, ExportCSS, ExportSCSS, ExportASE:
		return f, nil
	}
	return "", fmt.Errorf("unknown export format %q (want json, csv, css, scss or ase)", s)
}

// Export renders the palette in the requested format
func Export(p *model.Palette, f ExportFormat) ([]byte, error) {
	switch f {
	case ExportJSON:
		return model.NewExportData(p, ExportedBy).ToJSON()
	case ExportCSV:
		return ExportColorsCSV(p.Colors)
	case ExportCSS:
		return []byte(ExportColorsCSS(p.Colors)), nil
	case ExportSCSS:
		return []byte(ExportColorsSCSS(p.Colors, time.Now())), nil
	case ExportASE:
		return ExportColorsASE(p.Colors)
	}
	return nil, fmt.Errorf("unknown export format %q", f)
}

// ExportColorsCSV writes colors with a header row; tags are ';'-separated
func ExportColorsCSV(colors []*model.Color) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, c := range colors {
		row := []string{
			c.Name,
			c.NameZh,
			c.Hex,
			c.Description,
			c.DescriptionZh,
			string(c.Temperature),
			c.Category,
			strings.Join(c.Tags, ";"),
			strconv.FormatBool(c.Favorite),
			strconv.Itoa(c.UsageCount),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("writing csv: %w", err)
	}
	return buf.Bytes(), nil
}

var variableInvalid = regexp.MustCompile(`[^a-z0-9]+`)

func variableName(name string) string {
	return strings.Trim(variableInvalid.ReplaceAllString(strings.ToLower(name), "-"), "-")
}

// ExportColorsCSS renders a :root block of --color-* custom properties
func ExportColorsCSS(colors []*model.Color) string {
	var sb strings.Builder
	sb.WriteString(":root {\n")
	for _, c := range colors {
		fmt.Fprintf(&sb, "  --color-%s: %s;", variableName(c.Name), c.Hex)
		if c.NameZh != "" {
			fmt.Fprintf(&sb, " /* %s */", c.NameZh)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n")
	return sb.String()
}

// ExportColorsSCSS renders $color-* variables
func ExportColorsSCSS(colors []*model.Color, at time.Time) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "// Palette color variables\n// Exported: %s\n\n", at.Format("2006-01-02 15:04:05"))
	for _, c := range colors {
		fmt.Fprintf(&sb, "$color-%s: %s;", variableName(c.Name), c.Hex)
		if c.NameZh != "" {
			fmt.Fprintf(&sb, " // %s", c.NameZh)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

type aseSwatch struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Data struct {
		Mode   string     `json:"mode"`
		Values [3]float64 `json:"values"`
	} `json:"data"`
}

type aseGroup struct {
	Name     string      `json:"name"`
	Swatches []aseSwatch `json:"swatches"`
}

type aseDocument struct {
	Version string     `json:"version"`
	Groups  []aseGroup `json:"groups"`
}

// ExportColorsASE renders an Adobe Swatch Exchange style JSON document.
// Channel values are fractions of 255.
func ExportColorsASE(colors []*model.Color) ([]byte, error) {
	group := aseGroup{Name: "Palette", Swatches: make([]aseSwatch, 0, len(colors))}
	for _, c := range colors {
		var sw aseSwatch
		sw.Name = c.NameZh
		if sw.Name == "" {
			sw.Name = c.Name
		}
		sw.Type = "global"
		sw.Data.Mode = "RGB"
		if rgb, ok := colorutil.HexToRGB(c.Hex); ok {
			sw.Data.Values = [3]float64{
				float64(rgb.R) / 255,
				float64(rgb.G) / 255,
				float64(rgb.B) / 255,
			}
		}
		group.Swatches = append(group.Swatches, sw)
	}
	return json.MarshalIndent(aseDocument{Version: "1.0", Groups: []aseGroup{group}}, "", "  ")
}

// ExtractJSON extracts JSON content from a string that may contain code blocks or extra text
func ExtractJSON(raw string) (string, error) {
	// First, try to extract from ```json ... ``` code block
	jsonBlockRegex := regexp.MustCompile("(?s)```json\\s*\\n?(.*?)\\n?```")
	if matches := jsonBlockRegex.FindStringSubmatch(raw); len(matches) > 1 {
		return strings.TrimSpace(matches[1]), nil
	}

	codeBlockRegex := regexp.MustCompile("(?s)```\\s*\\n?(.*?)\\n?```")
	if matches := codeBlockRegex.FindStringSubmatch(raw); len(matches) > 1 {
		content := strings.TrimSpace(matches[1])
		if strings.HasPrefix(content, "{") {
			return content, nil
		}
	}

	// Fall back to the outermost braces
	trimmed := strings.TrimSpace(raw)
	firstBrace := strings.Index(trimmed, "{")
	lastBrace := strings.LastIndex(trimmed, "}")

	if firstBrace != -1 && lastBrace != -1 && lastBrace > firstBrace {
		return trimmed[firstBrace : lastBrace+1], nil
	}

	return "", fmt.Errorf("no valid JSON found in input")
}

// ImportJSON parses an export document, filling defaults for missing fields
func ImportJSON(raw string) ([]*model.Color, []model.Category, error) {
	jsonStr, err := ExtractJSON(raw)
	if err != nil {
		return nil, nil, err
	}

	data, err := model.ParseExport([]byte(jsonStr))
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	colors := make([]*model.Color, 0, len(data.Colors))
	for _, c := range data.Colors {
		if c == nil {
			continue
		}
		if c.Name == "" {
			c.Name = unnamedColor
		}
		if c.NameZh == "" {
			c.NameZh = unnamedColorZh
		}
		if c.Hex == "" {
			c.Hex = "#000000"
		}
		c.SetHex(cleanHex(c.Hex))
		if c.Created.IsZero() {
			c.Created = now
		}
		c.Updated = now
		colors = append(colors, c)
	}

	categories := make([]model.Category, 0, len(data.Categories))
	for _, cat := range data.Categories {
		if cat.Name == "" {
			cat.Name = unnamedCategory
		}
		if cat.ID == "" {
			cat.ID = model.Slug(cat.Name)
		}
		categories = append(categories, cat)
	}
	return colors, categories, nil
}

// ImportCSV reads colors from CSV with a header row. Rows with an invalid
// hex value or too few fields are skipped.
func ImportCSV(r io.Reader) ([]*model.Color, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing csv: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("invalid csv: need a header row and at least one data row")
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.ToLower(strings.TrimSpace(h))
	}

	var colors []*model.Color
	for line, rec := range records[1:] {
		if len(rec) < len(headers) {
			logging.Debug(subsystem, "csv row %d: %d fields, want %d", line+2, len(rec), len(headers))
			continue
		}
		row := make(map[string]string, len(headers))
		for i, h := range headers {
			row[h] = strings.TrimSpace(rec[i])
		}

		hex := cleanHex(row["hex"])
		if !colorutil.IsValidHex(hex) {
			logging.Debug(subsystem, "csv row %d: invalid hex %q", line+2, row["hex"])
			continue
		}

		c := model.NewColor(firstNonEmpty(row["name"], row["english_name"], unnamedColor), hex)
		c.NameZh = firstNonEmpty(row["namezh"], row["chinese_name"], row["name_zh"], unnamedColorZh)
		c.Description = firstNonEmpty(row["description"], row["desc"])
		c.DescriptionZh = firstNonEmpty(row["descriptionzh"], row["description_zh"], row["desc_zh"])
		c.Category = row["category"]
		for _, tag := range strings.Split(row["tags"], ";") {
			if tag = strings.TrimSpace(tag); tag != "" {
				c.Tags = append(c.Tags, tag)
			}
		}
		colors = append(colors, c)
	}
	return colors, nil
}

// ImportFile reads a JSON or CSV file, chosen by extension
func ImportFile(path string) ([]*model.Color, []model.Category, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading import file: %w", err)
	}
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		colors, err := ImportCSV(bytes.NewReader(data))
		return colors, nil, err
	}
	return ImportJSON(string(data))
}

// MergeImport adds imported colors whose hex is not yet in the palette,
// plus any unknown categories. It returns how many colors were added.
func (s *Storage) MergeImport(colors []*model.Color, categories []model.Category) (int, error) {
	p, err := s.LoadPalette()
	if err != nil {
		return 0, err
	}

	added := 0
	for _, c := range colors {
		if p.FindByHex(c.Hex) != nil {
			continue
		}
		p.Add(c)
		added++
	}
	for _, cat := range categories {
		if p.GetCategory(cat.ID) == nil {
			p.Categories = append(p.Categories, cat)
		}
	}

	if err := s.SavePalette(p); err != nil {
		return 0, err
	}
	logging.Info(subsystem, "imported %d of %d colors", added, len(colors))
	return added, nil
}

// cleanHex trims whitespace, adds a missing '#' and normalizes
func cleanHex(s string) string {
	s = strings.TrimSpace(s)
	if s != "" && !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	return colorutil.NormalizeHex(s)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
