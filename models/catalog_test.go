package models

import "testing"

func TestValidCategory(t *testing.T) {
	cases := []struct {
		tipo string
		cat  string
		want bool
	}{
		{TipoReceita, "Salário", true},
		{TipoReceita, "Moradia", false},
		{TipoDespesa, "Moradia", true},
		{TipoDespesa, "Salário", false},
		{TipoDespesa, "", false},
		{TipoReceita, "Outros", true},
		{TipoDespesa, "Outros", true},
	}
	for _, tc := range cases {
		if got := ValidCategory(tc.tipo, tc.cat); got != tc.want {
			t.Errorf("ValidCategory(%q, %q) = %v, want %v", tc.tipo, tc.cat, got, tc.want)
		}
	}
}

func TestValidPaymentMethod(t *testing.T) {
	cases := []struct {
		tipo  string
		forma string
		want  bool
	}{
		{TipoReceita, "PIX", true},
		{TipoReceita, "Boleto", false},
		{TipoDespesa, "Cartão Crédito", true},
		{TipoDespesa, "Depósito", false},
	}
	for _, tc := range cases {
		if got := ValidPaymentMethod(tc.tipo, tc.forma); got != tc.want {
			t.Errorf("ValidPaymentMethod(%q, %q) = %v, want %v", tc.tipo, tc.forma, got, tc.want)
		}
	}
}

func TestValidTipo(t *testing.T) {
	if !ValidTipo(TipoReceita) || !ValidTipo(TipoDespesa) {
		t.Error("known tipos rejected")
	}
	if ValidTipo("receita") || ValidTipo("") {
		t.Error("unknown tipos accepted")
	}
}

func TestValidFrequency(t *testing.T) {
	for _, f := range Frequencies {
		if !ValidFrequency(f) {
			t.Errorf("frequency %q rejected", f)
		}
	}
	if ValidFrequency("diario") {
		t.Error("unknown frequency accepted")
	}
}
