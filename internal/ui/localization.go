package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle     = "app_title"
	KeyFetchFailure = "fetch_failure"
	KeyLoading      = "loading"
	KeyNoMovies     = "no_movies"
	KeyArtwork      = "artwork"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:     "Movie Finder",
		KeyFetchFailure: "Could not load movies. Please try again later.",
		KeyLoading:      "Loading movies...",
		KeyNoMovies:     "No movies found",
		KeyArtwork:      "Artwork",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:     "Поиск фильмов",
		KeyFetchFailure: "Не удалось загрузить фильмы. Попробуйте позже.",
		KeyLoading:      "Загрузка фильмов...",
		KeyNoMovies:     "Фильмы не найдены",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:     "Buscador de Filmes",
		KeyFetchFailure: "Não foi possível carregar os filmes. Tente novamente mais tarde.",
		KeyLoading:      "Carregando filmes...",
		KeyNoMovies:     "Nenhum filme encontrado",
	}
}
