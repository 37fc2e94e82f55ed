package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageRangeRecommender(t *testing.T) {
	got := PageRangeRecommender{}.Recommend(100, 51)
	assert.Equal(t, []string{
		"Continue from page 101 onwards",
		"Read approximately 51 pages per day",
	}, got)
}
