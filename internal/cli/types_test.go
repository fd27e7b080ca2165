package cli

import "testing"

func TestTypeKeyAndLabel(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantKey   string
		wantLabel string
	}{
		{"explicit key", []string{"trashumancia", "Traslado de colmenas"}, "trashumancia", "Traslado de colmenas"},
		{"derived key", []string{"Cambio de cera"}, "cambio_de_cera", "Cambio de cera"},
		{"accents folded", []string{"Recolección de polen"}, "recoleccion_de_polen", "Recolección de polen"},
		{"nothing to derive", []string{"!!"}, "", "!!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, label := typeKeyAndLabel(tt.args)
			if key != tt.wantKey || label != tt.wantLabel {
				t.Errorf("typeKeyAndLabel(%q) = (%q, %q), want (%q, %q)", tt.args, key, label, tt.wantKey, tt.wantLabel)
			}
		})
	}
}
