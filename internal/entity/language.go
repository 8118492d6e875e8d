package entity

import "strings"

// Language is a BCP 47 tag handed to the speech synthesizer.
type Language string

const (
	LanguageUnspecified Language = ""
	LanguageChinese     Language = "zh-CN"
	LanguageCantonese   Language = "zh-HK"
	LanguageEnglish     Language = "en-US"
	LanguageSpanish     Language = "es-ES"
	LanguageFrench      Language = "fr-FR"
	LanguageGerman      Language = "de-DE"
	LanguageJapanese    Language = "ja-JP"
	LanguageKorean      Language = "ko-KR"
)

// Code returns the trimmed tag (without defaulting).
func (l Language) Code() string {
	return strings.TrimSpace(string(l))
}

// CodeOrDefault returns the tag, falling back to Mandarin when unspecified.
func (l Language) CodeOrDefault() string {
	if l.Code() == "" {
		return string(LanguageChinese)
	}
	return l.Code()
}

// ParseLanguage converts a tag or a bare language code into a supported Language.
func ParseLanguage(code string) Language {
	switch strings.ToLower(strings.ReplaceAll(strings.TrimSpace(code), "_", "-")) {
	case "zh", "zh-cn", "cmn":
		return LanguageChinese
	case "zh-hk", "yue":
		return LanguageCantonese
	case "en", "en-us":
		return LanguageEnglish
	case "es", "es-es":
		return LanguageSpanish
	case "fr", "fr-fr":
		return LanguageFrench
	case "de", "de-de":
		return LanguageGerman
	case "ja", "ja-jp":
		return LanguageJapanese
	case "ko", "ko-kr":
		return LanguageKorean
	default:
		return LanguageUnspecified
	}
}
