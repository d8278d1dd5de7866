package usecase

import "testing"

func TestLookupTemplateReturnsIndependentCopy(t *testing.T) {
	first, ok := LookupTemplate(TemplateWoodToy)
	if !ok {
		t.Fatal("ahşap oyuncak şablonu bulunamadı")
	}

	// Dönen kopyayı boz; tablo etkilenmemeli
	first.Headline = "bozuldu"
	first.Countries[0].Country = "Mordor"

	second, _ := LookupTemplate(TemplateWoodToy)
	if second.Headline == "bozuldu" {
		t.Error("şablon başlığı çağıran tarafından değiştirilebilmemeli")
	}
	if second.Countries[0].Country == "Mordor" {
		t.Error("şablon ülke listesi çağıran tarafından değiştirilebilmemeli")
	}
}

func TestLookupTemplateUnknownKey(t *testing.T) {
	if _, ok := LookupTemplate("yok_boyle_sablon"); ok {
		t.Error("bilinmeyen anahtar false dönmeli")
	}
}

func TestMatchSectorTemplate(t *testing.T) {
	tests := []struct {
		utterance string
		wantKey   string
		wantOK    bool
	}{
		{"zeytinyağı ihraç etmek istiyorum", TemplateOliveOil, true},
		{"ZEYTINYAGI üretiyoruz", TemplateOliveOil, true},
		{"güneş paneli fabrikamız var", TemplateSolarPanel, true},
		{"tekstil sektöründeyiz", TemplateTextile, true},
		{"mobilya satıyorum", "", false},
	}

	for _, tt := range tests {
		key, ok := MatchSectorTemplate(tt.utterance)
		if ok != tt.wantOK || key != tt.wantKey {
			t.Errorf("MatchSectorTemplate(%q) = %q,%v; beklenen %q,%v",
				tt.utterance, key, ok, tt.wantKey, tt.wantOK)
		}
	}
}

func TestAllTemplateKeysResolve(t *testing.T) {
	keys := []string{
		TemplateWoodToy, TemplatePlasticToy, TemplateFabricToy,
		TemplateOliveOil, TemplateSolarPanel, TemplateTextile,
	}
	for _, key := range keys {
		rec, ok := LookupTemplate(key)
		if !ok {
			t.Errorf("şablon %q bulunamadı", key)
			continue
		}
		if rec.Headline == "" || len(rec.Countries) == 0 {
			t.Errorf("şablon %q eksik içerikli", key)
		}
	}
}
