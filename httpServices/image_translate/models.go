package image_translate

type TranslateImageRequest struct {
	ImageURL   string `json:"imageUrl"`
	SourceLang string `json:"sourceLang"`
	TargetLang string `json:"targetLang"`
}

type TranslateImageResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Data    struct {
		TranslatedImageURL string `json:"translatedImageUrl"`
	} `json:"data"`
}
