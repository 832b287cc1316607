package main

import (
	"reflect"
	"testing"
)

func TestRewriteDirectItemLookupArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "no args",
			in:   []string{"sharapu"},
			want: []string{"sharapu"},
		},
		{
			name: "direct item id first token",
			in:   []string{"sharapu", "item-kx2m7qaa"},
			want: []string{"sharapu", "items", "show", "item-kx2m7qaa"},
		},
		{
			name: "direct item id after value flag",
			in:   []string{"sharapu", "--dir", "./tmp-content", "item-kx2m7qaa"},
			want: []string{"sharapu", "--dir", "./tmp-content", "items", "show", "item-kx2m7qaa"},
		},
		{
			name: "direct item id after equals flag",
			in:   []string{"sharapu", "--format=table", "item-kx2m7qaa"},
			want: []string{"sharapu", "--format=table", "items", "show", "item-kx2m7qaa"},
		},
		{
			name: "direct item id after bool flag",
			in:   []string{"sharapu", "--pretty", "item-kx2m7qaa"},
			want: []string{"sharapu", "--pretty", "items", "show", "item-kx2m7qaa"},
		},
		{
			name: "direct item id after double dash",
			in:   []string{"sharapu", "--config", "c.yaml", "--", "item-kx2m7qaa"},
			want: []string{"sharapu", "--config", "c.yaml", "--", "items", "show", "item-kx2m7qaa"},
		},
		{
			name: "bare prefix is not an id",
			in:   []string{"sharapu", "item-"},
			want: []string{"sharapu", "item-"},
		},
		{
			name: "normal subcommand not rewritten",
			in:   []string{"sharapu", "items", "show", "item-kx2m7qaa"},
			want: []string{"sharapu", "items", "show", "item-kx2m7qaa"},
		},
		{
			name: "unknown command not rewritten",
			in:   []string{"sharapu", "wat"},
			want: []string{"sharapu", "wat"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := rewriteDirectItemLookupArgs(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("rewrite: got %v want %v", got, tt.want)
			}
		})
	}
}
