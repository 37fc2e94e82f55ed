package service

import "fmt"

// SurahRecommender menyusun saran bacaan untuk email reminder deadline.
// Strategi bisa diganti (mis. lookup batas surah per halaman mushaf).
type SurahRecommender interface {
	Recommend(currentPage, pagesPerDay int) []string
}

// PageRangeRecommender adalah strategi default: saran berbasis posisi halaman,
// belum memetakan halaman ke nama surah.
type PageRangeRecommender struct{}

func (PageRangeRecommender) Recommend(currentPage, pagesPerDay int) []string {
	return []string{
		fmt.Sprintf("Continue from page %d onwards", currentPage+1),
		fmt.Sprintf("Read approximately %d pages per day", pagesPerDay),
	}
}
