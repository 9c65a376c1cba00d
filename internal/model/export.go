package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// ExportVersion is written into every JSON export
const ExportVersion = "2.0.0"

// ExportMetadata carries summary counts alongside an export
type ExportMetadata struct {
	TotalColors     int    `json:"totalColors"`
	TotalCategories int    `json:"totalCategories"`
	ExportedBy      string `json:"exportedBy,omitempty"`
}

// ExportData is the JSON document used for palette import/export
type ExportData struct {
	Version    string          `json:"version"`
	ExportedAt time.Time       `json:"exportedAt"`
	Colors     []*Color        `json:"colors"`
	Categories []Category      `json:"categories"`
	Metadata   *ExportMetadata `json:"metadata,omitempty"`
}

// NewExportData snapshots a palette for export
func NewExportData(p *Palette, exportedBy string) *ExportData {
	return &ExportData{
		Version:    ExportVersion,
		ExportedAt: time.Now(),
		Colors:     p.Colors,
		Categories: p.Categories,
		Metadata: &ExportMetadata{
			TotalColors:     len(p.Colors),
			TotalCategories: len(p.Categories),
			ExportedBy:      exportedBy,
		},
	}
}

// ToJSON serializes the export to indented JSON
func (e *ExportData) ToJSON() ([]byte, error) {
	return json.MarshalIndent(e, "", "  ")
}

// ParseExport parses JSON data into an ExportData struct
func ParseExport(data []byte) (*ExportData, error) {
	var export ExportData
	if err := json.Unmarshal(data, &export); err != nil {
		return nil, fmt.Errorf("failed to parse export JSON: %w", err)
	}
	if export.Colors == nil {
		return nil, fmt.Errorf("invalid export: missing colors array")
	}
	return &export, nil
}
