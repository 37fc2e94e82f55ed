package service

import (
	"math/rand"

	"quranku_backend/internals/features/quran/hadiths/model"
)

// Katalog hadith bertema untuk email reminder.
var Hadiths = []model.Hadith{
	{
		ID:          "bukhari_6464",
		Arabic:      "أَحَبُّ الأَعْمَالِ إِلَى اللَّهِ أَدْوَمُهَا وَإِنْ قَلَّ",
		Translation: "The most beloved of deeds to Allah are those that are most consistent, even if it is small.",
		Source:      "Sahih al-Bukhari 6464",
		Theme:       model.HadithThemeConsistency,
	},
	{
		ID:          "muslim_803",
		Arabic:      "اقْرَءُوا الْقُرْآنَ فَإِنَّهُ يَأْتِي يَوْمَ الْقِيَامَةِ شَفِيعًا لأَصْحَابِهِ",
		Translation: "Read the Qur'an, for verily it will come on the Day of Standing as an intercessor for its companions.",
		Source:      "Sahih Muslim 803",
		Theme:       model.HadithThemeQuran,
	},
	{
		ID:          "tirmidhi_2910",
		Arabic:      "مَنْ قَرَأَ حَرْفًا مِنْ كِتَابِ اللَّهِ فَلَهُ بِهِ حَسَنَةٌ وَالْحَسَنَةُ بِعَشْرِ أَمْثَالِهَا",
		Translation: "Whoever recites a letter from the Book of Allah will receive a reward, and each reward is multiplied by ten.",
		Source:      "Jami' at-Tirmidhi 2910",
		Theme:       model.HadithThemeReward,
	},
	{
		ID:          "bukhari_5027",
		Arabic:      "خَيْرُكُمْ مَنْ تَعَلَّمَ الْقُرْآنَ وَعَلَّمَهُ",
		Translation: "The best among you are those who learn the Qur'an and teach it to others.",
		Source:      "Sahih al-Bukhari 5027",
		Theme:       model.HadithThemeQuran,
	},
	{
		ID:          "ibn_majah_4240",
		Arabic:      "خُذُوا مِنَ الْعَمَلِ مَا تُطِيقُونَ فَإِنَّ اللَّهَ لاَ يَمَلُّ حَتَّى تَمَلُّوا وَإِنَّ أَحَبَّ الأَعْمَالِ إِلَى اللَّهِ مَا دَاوَمَ عَلَيْهِ صَاحِبُهُ وَإِنْ قَلَّ",
		Translation: "Take up good deeds only as much as you are able, for the best deeds are those done regularly even if they are few.",
		Source:      "Sunan Ibn Majah 4240",
		Theme:       model.HadithThemeConsistency,
	},
	{
		ID:          "muslim_1910",
		Arabic:      "إِنَّ الَّذِي لَيْسَ فِي جَوْفِهِ شَيْءٌ مِنَ الْقُرْآنِ كَالْبَيْتِ الْخَرِبِ",
		Translation: "Indeed, the one who does not have anything of the Qur'an inside him is like a ruined house.",
		Source:      "Sahih Muslim 1910 (variant)",
		Theme:       model.HadithThemeQuran,
	},
}

// GetRandomHadith mengambil satu hadith acak dari seluruh katalog.
func GetRandomHadith() model.Hadith {
	return Hadiths[rand.Intn(len(Hadiths))]
}

// GetRandomHadithByTheme mengambil hadith acak sesuai tema.
// Kalau tema tidak punya entri, fallback ke hadith acak apa pun.
func GetRandomHadithByTheme(theme model.HadithThemeEnum) model.Hadith {
	filtered := make([]model.Hadith, 0, len(Hadiths))
	for _, h := range Hadiths {
		if h.Theme == theme {
			filtered = append(filtered, h)
		}
	}
	if len(filtered) == 0 {
		return GetRandomHadith()
	}
	return filtered[rand.Intn(len(filtered))]
}

// IsValidTheme memvalidasi string tema dari query param.
func IsValidTheme(s string) bool {
	switch model.HadithThemeEnum(s) {
	case model.HadithThemeQuran, model.HadithThemeConsistency, model.HadithThemeReward:
		return true
	}
	return false
}
