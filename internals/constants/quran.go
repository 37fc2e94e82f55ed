package constants

// Konstanta mushaf standar (Madinah) yang dipakai seluruh perhitungan progres.
const (
	// Total halaman mushaf standar — penyebut untuk progres khatam.
	QuranTotalPages = 604

	// Jumlah surah dalam Al-Qur'an.
	QuranTotalSurah = 114

	// Ayat terpanjang ada di Al-Baqarah (286 ayat).
	QuranMaxAyah = 286
)
