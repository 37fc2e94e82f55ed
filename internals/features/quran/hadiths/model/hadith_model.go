package model

type HadithThemeEnum string

const (
	HadithThemeQuran       HadithThemeEnum = "quran"
	HadithThemeConsistency HadithThemeEnum = "consistency"
	HadithThemeReward      HadithThemeEnum = "reward"
)

// Hadith adalah entri katalog statis — tidak disimpan di database.
type Hadith struct {
	ID          string          `json:"id"`
	Arabic      string          `json:"arabic"`
	Translation string          `json:"translation"`
	Source      string          `json:"source"`
	Theme       HadithThemeEnum `json:"theme"`
}
