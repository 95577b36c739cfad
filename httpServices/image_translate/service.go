package image_translate

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"time"
)

// Client wraps the external image translation API used to localize
// 1688 product images for Korean customers.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: baseURL,
	}
}

// TranslateImage submits an image URL and returns the translated rendering's
// URL. The API contract is {success, data:{translatedImageUrl}} or
// {success:false, error}.
func (c *Client) TranslateImage(imageURL string) (*TranslateImageResponse, error) {
	req := TranslateImageRequest{
		ImageURL:   imageURL,
		SourceLang: "zh",
		TargetLang: "ko",
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequest("POST", c.baseURL+"/v1/translate-image", bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("image translation API returned non-OK status: " + resp.Status)
	}

	var apiResp TranslateImageResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, err
	}

	return &apiResp, nil
}
