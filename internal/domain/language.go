package domain

type Language string

const (
	English Language = "en"
	French  Language = "fr"
	Arabic  Language = "ar"
)

const DefaultLanguage = English

func Languages() []Language {
	return []Language{English, French, Arabic}
}

func ParseLanguage(raw string) (Language, error) {
	for _, l := range Languages() {
		if string(l) == raw {
			return l, nil
		}
	}
	return "", ErrUnsupportedLanguage
}
