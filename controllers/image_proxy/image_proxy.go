package image_proxy

import (
	"io"
	"net/http"
	"net/url"
	"time"

	"sourcing-erp/httpServices/image_translate"
	"sourcing-erp/logger"
	"sourcing-erp/types"

	"github.com/gofiber/fiber/v2"
)

// ImageProxyController proxies product images from Chinese marketplaces that
// block cross-origin loads, and exposes image translation for them.
type ImageProxyController struct {
	HTTPClient *http.Client
	Translate  *image_translate.Client
}

func NewImageProxyController(translateClient *image_translate.Client) *ImageProxyController {
	return &ImageProxyController{
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
		Translate:  translateClient,
	}
}

// Proxy fetches the remote image and streams it back with its content type
func (ip *ImageProxyController) Proxy(c *fiber.Ctx) error {
	rawURL := c.Query("url")
	if rawURL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "url query parameter is required",
			Data:    nil,
		})
	}

	parsed, err := url.Parse(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "url must be an absolute http(s) URL",
			Data:    nil,
		})
	}

	resp, err := ip.HTTPClient.Get(parsed.String())
	if err != nil {
		logger.Error("Image proxy fetch failed", err)
		return c.Status(fiber.StatusBadGateway).JSON(types.ApiResponse{
			Status:  fiber.StatusBadGateway,
			Message: "Failed to fetch image",
			Data:    nil,
		})
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.Status(fiber.StatusBadGateway).JSON(types.ApiResponse{
			Status:  fiber.StatusBadGateway,
			Message: "Upstream returned an error",
			Data:    nil,
		})
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Error("Image proxy read failed", err)
		return c.Status(fiber.StatusBadGateway).JSON(types.ApiResponse{
			Status:  fiber.StatusBadGateway,
			Message: "Failed to read image",
			Data:    nil,
		})
	}

	if contentType := resp.Header.Get("Content-Type"); contentType != "" {
		c.Set(fiber.HeaderContentType, contentType)
	}
	c.Set(fiber.HeaderCacheControl, "public, max-age=86400")
	return c.Send(data)
}

// TranslateImage runs the remote image through the translation API and
// returns the translated image URL
func (ip *ImageProxyController) TranslateImage(c *fiber.Ctx) error {
	var req struct {
		ImageURL string `json:"imageUrl"`
	}
	if err := c.BodyParser(&req); err != nil || req.ImageURL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "imageUrl is required",
			Data:    nil,
		})
	}

	result, err := ip.Translate.TranslateImage(req.ImageURL)
	if err != nil {
		logger.Error("Image translation failed", err)
		return c.Status(fiber.StatusBadGateway).JSON(types.ApiResponse{
			Status:  fiber.StatusBadGateway,
			Message: "Image translation failed",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Image translated successfully",
		Data:    result.Data,
	})
}
