package translation

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"sourcing-erp/logger"
	"sourcing-erp/models/order"

	"google.golang.org/genai"
	"gorm.io/gorm"
)

// startDelay postpones background translation so the create response returns
// before any model call starts.
const startDelay = 2 * time.Second

// Service translates Korean free-text order fields into Chinese for the
// assigned staff. All work is best-effort: failures are logged and swallowed,
// and callers never wait on it.
type Service struct {
	DB *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{DB: db}
}

// TranslateFieldsAsync fires a detached goroutine that translates each given
// column's text and writes the result into the matching *_zh column of the
// order row. The caller gets no failure channel.
func (s *Service) TranslateFieldsAsync(serviceType order.ServiceType, reservationNumber string, fields map[string]string) {
	go func() {
		time.Sleep(startDelay)

		for column, text := range fields {
			if strings.TrimSpace(text) == "" {
				continue
			}

			translated, err := s.TranslateToChinese(context.Background(), text)
			if err != nil {
				logger.Error(fmt.Sprintf("Background translation failed for %s.%s", reservationNumber, column), err)
				continue
			}

			err = s.DB.Table(serviceType.Table()).
				Where("reservation_number = ?", reservationNumber).
				Update(column, translated).Error
			if err != nil {
				logger.Error(fmt.Sprintf("Failed to store translation for %s.%s", reservationNumber, column), err)
			}
		}
	}()
}

// TranslateToChinese translates Korean business text into Simplified Chinese
func (s *Service) TranslateToChinese(ctx context.Context, text string) (string, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY not found in environment variables")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create Gemini client: %w", err)
	}

	prompt := `Translate the following Korean procurement text into Simplified Chinese.
Keep product names, model numbers and quantities exactly as written.
Return ONLY the translated text with no commentary.

` + text

	content := &genai.Content{
		Parts: []*genai.Part{
			{Text: prompt},
		},
	}

	result, err := client.Models.GenerateContent(
		ctx,
		"gemini-2.5-flash-lite",
		[]*genai.Content{content},
		&genai.GenerateContentConfig{
			Temperature: genai.Ptr(float32(0.1)),
		},
	)
	if err != nil {
		return "", fmt.Errorf("failed to generate translation: %w", err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated by translator")
	}

	translated := strings.TrimSpace(result.Candidates[0].Content.Parts[0].Text)
	if translated == "" {
		return "", fmt.Errorf("empty response from translator")
	}

	return translated, nil
}
