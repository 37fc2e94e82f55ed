package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func pagePtr(n int) *int { return &n }

func TestPageCount(t *testing.T) {
	tests := []struct {
		name      string
		startPage *int
		endPage   *int
		want      int
	}{
		{"satu halaman", pagePtr(10), pagePtr(10), 1},
		{"rentang normal", pagePtr(10), pagePtr(12), 3},
		{"halaman belum ter-resolve", nil, nil, 0},
		{"hanya start terisi", pagePtr(10), nil, 0},
		{"rentang terbalik dihitung nol", pagePtr(12), pagePtr(10), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := QuranSessionModel{
				QuranSessionStartPage: tt.startPage,
				QuranSessionEndPage:   tt.endPage,
			}
			assert.Equal(t, tt.want, s.PageCount())
		})
	}
}
