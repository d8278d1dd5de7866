package parser

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"github.com/yourusername/export-advisor-bot/internal/domain/apperr"
	"github.com/yourusername/export-advisor-bot/internal/domain/entity"
)

// DatasetParser referans veri setini (CSV veya XLSX) katalog kayıtlarına
// çevirir. Dosya başlangıçta bir kez okunur.
type DatasetParser struct{}

// NewDatasetParser yeni parser yaratır
func NewDatasetParser() *DatasetParser {
	return &DatasetParser{}
}

// ParseFile uzantıya göre CSV ya da XLSX okur. Dosya eksik/bozuksa
// ConfigurationError döner; process fail-fast kapanmalı.
func (p *DatasetParser) ParseFile(path string) ([]entity.Product, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return p.parseExcel(path)
	default:
		return p.parseCSV(path)
	}
}

func (p *DatasetParser) parseCSV(path string) ([]entity.Product, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperr.NewConfigurationError(path, fmt.Sprintf("veri seti açılamadı: %v", err))
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, apperr.NewConfigurationError(path, fmt.Sprintf("CSV okunamadı: %v", err))
	}
	return p.rowsToProducts(path, rows)
}

func (p *DatasetParser) parseExcel(path string) ([]entity.Product, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperr.NewConfigurationError(path, fmt.Sprintf("veri seti açılamadı: %v", err))
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperr.NewConfigurationError(path, "çalışma sayfası yok")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, apperr.NewConfigurationError(path, fmt.Sprintf("sayfa okunamadı: %v", err))
	}
	return p.rowsToProducts(path, rows)
}

// rowsToProducts başlık satırını kolon adlarıyla eşler, veri satırlarını
// Product'a çevirir. Eksik/bozuk hücreler kaydı düşürmez; alan varsayılan
// değeriyle kalır (shipping_cost için 0).
func (p *DatasetParser) rowsToProducts(path string, rows [][]string) ([]entity.Product, error) {
	if len(rows) < 2 {
		return nil, apperr.NewConfigurationError(path, "veri seti başlık dışında satır içermiyor")
	}

	idx := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		idx[normalizeHeader(name)] = i
	}
	if _, ok := idx["product_name"]; !ok {
		if _, alt := idx["product_name_clean"]; !alt {
			return nil, apperr.NewConfigurationError(path, "product_name kolonu bulunamadı")
		}
	}

	products := make([]entity.Product, 0, len(rows)-1)
	for _, row := range rows[1:] {
		name := cell(row, idx, "product_name")
		if name == "" {
			name = cell(row, idx, "product_name_clean")
		}
		if strings.TrimSpace(name) == "" {
			continue
		}

		products = append(products, entity.Product{
			ID:           cell(row, idx, "product_id"),
			Name:         strings.TrimSpace(name),
			Category:     cell(row, idx, "category"),
			Brand:        cell(row, idx, "brand"),
			Country:      cell(row, idx, "country"),
			ShippingCost: parseFloatOrZero(cell(row, idx, "shipping_cost")),
			City:         cell(row, idx, "city"),
			Seller:       cell(row, idx, "seller"),
			InStock:      parseBool(cell(row, idx, "stock")),
			Platform:     cell(row, idx, "platform"),
			Month:        parseMonth(cell(row, idx, "month")),
		})
	}

	if len(products) == 0 {
		return nil, apperr.NewConfigurationError(path, "veri setinden hiç kayıt çıkmadı")
	}
	return products, nil
}

func normalizeHeader(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func cell(row []string, idx map[string]int, column string) string {
	i, ok := idx[column]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// parseFloatOrZero bozuk/boş değerde 0 döner
func parseFloatOrZero(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func parseBool(s string) bool {
	switch strings.ToLower(s) {
	case "true", "1", "yes", "evet":
		return true
	}
	// "100" gibi stok adetleri de pozitifse var sayılır
	if n, err := strconv.Atoi(s); err == nil {
		return n > 0
	}
	return false
}

// parseMonth 1-12 aralığı dışındaki değerleri 0'a indirger
func parseMonth(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 12 {
		return 0
	}
	return n
}
