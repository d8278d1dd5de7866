package parser

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/yourusername/export-advisor-bot/internal/domain/apperr"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "products.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseCSV(t *testing.T) {
	path := writeCSV(t, `product_id,product_name,category,brand,country,shipping_cost,city,seller,stock,platform,month
1,Ahşap Blok Seti,toys,Dorbo,Turkey,4.5,Izmir,DorboStore,true,trendyol,6
2,Peluş Ayı,toys,SoftCo,China,bozuk,Shenzhen,SoftStore,0,amazon,13
3,   ,toys,,,,,,,,
`)

	products, err := NewDatasetParser().ParseFile(path)
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("boş isimli satır atlanmalı: beklenen 2, gelen %d", len(products))
	}

	first := products[0]
	if first.Name != "Ahşap Blok Seti" || first.Brand != "Dorbo" || first.Country != "Turkey" {
		t.Errorf("ilk kayıt yanlış parse edildi: %+v", first)
	}
	if first.ShippingCost != 4.5 {
		t.Errorf("shipping_cost beklenen 4.5, gelen %v", first.ShippingCost)
	}
	if !first.InStock {
		t.Error("stock=true InStock olmalı")
	}
	if first.Month != 6 {
		t.Errorf("month beklenen 6, gelen %d", first.Month)
	}

	second := products[1]
	if second.ShippingCost != 0 {
		t.Errorf("bozuk shipping_cost 0'a düşmeli, gelen %v", second.ShippingCost)
	}
	if second.InStock {
		t.Error("stock=0 InStock olmamalı")
	}
	if second.Month != 0 {
		t.Errorf("aralık dışı month 0'a düşmeli, gelen %d", second.Month)
	}
}

func TestParseMissingFileIsConfigurationError(t *testing.T) {
	_, err := NewDatasetParser().ParseFile("/yok/boyle/dosya.csv")
	var cfgErr *apperr.ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("ConfigurationError bekleniyordu, gelen %v", err)
	}
}

func TestParseHeaderOnlyIsConfigurationError(t *testing.T) {
	path := writeCSV(t, "product_id,product_name\n")
	_, err := NewDatasetParser().ParseFile(path)
	var cfgErr *apperr.ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("ConfigurationError bekleniyordu, gelen %v", err)
	}
}

func TestParseMissingNameColumnIsConfigurationError(t *testing.T) {
	path := writeCSV(t, "id,fiyat\n1,10\n")
	_, err := NewDatasetParser().ParseFile(path)
	var cfgErr *apperr.ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("ConfigurationError bekleniyordu, gelen %v", err)
	}
}

func TestParseAcceptsCleanNameColumn(t *testing.T) {
	path := writeCSV(t, "product_name_clean,country\nzeytinyağı şişesi,Turkey\n")
	products, err := NewDatasetParser().ParseFile(path)
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	if len(products) != 1 || products[0].Name != "zeytinyağı şişesi" {
		t.Errorf("product_name_clean kolonu kabul edilmeli, gelen %+v", products)
	}
}
