package oauth

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

type providerConfig struct {
	tokenURL     string
	userInfoURL  string
	clientIDEnv  string
	clientSecEnv string
}

var providers = map[string]providerConfig{
	ProviderGoogle: {
		tokenURL:     "https://oauth2.googleapis.com/token",
		userInfoURL:  "https://www.googleapis.com/oauth2/v2/userinfo",
		clientIDEnv:  "GOOGLE_CLIENT_ID",
		clientSecEnv: "GOOGLE_CLIENT_SECRET",
	},
	ProviderKakao: {
		tokenURL:     "https://kauth.kakao.com/oauth/token",
		userInfoURL:  "https://kapi.kakao.com/v2/user/me",
		clientIDEnv:  "KAKAO_CLIENT_ID",
		clientSecEnv: "KAKAO_CLIENT_SECRET",
	},
}

// Client exchanges OAuth authorization codes and fetches provider profiles
type Client struct {
	httpClient  *http.Client
	redirectURL string
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		redirectURL: os.Getenv("OAUTH_REDIRECT_URL"),
	}
}

// AuthorizeURL builds the provider consent URL. returnUrl is round-tripped
// through the state parameter so the callback can send the user back where
// they started.
func (c *Client) AuthorizeURL(provider, returnURL string) (string, error) {
	switch provider {
	case ProviderGoogle:
		q := url.Values{}
		q.Set("client_id", os.Getenv("GOOGLE_CLIENT_ID"))
		q.Set("redirect_uri", c.redirectURL+"/"+provider)
		q.Set("response_type", "code")
		q.Set("scope", "openid email profile")
		q.Set("access_type", "offline")
		q.Set("state", returnURL)
		return "https://accounts.google.com/o/oauth2/v2/auth?" + q.Encode(), nil
	case ProviderKakao:
		q := url.Values{}
		q.Set("client_id", os.Getenv("KAKAO_CLIENT_ID"))
		q.Set("redirect_uri", c.redirectURL+"/"+provider)
		q.Set("response_type", "code")
		q.Set("state", returnURL)
		return "https://kauth.kakao.com/oauth/authorize?" + q.Encode(), nil
	default:
		return "", fmt.Errorf("unknown oauth provider: %s", provider)
	}
}

// Exchange trades an authorization code for tokens and resolves the user profile
func (c *Client) Exchange(provider, code string) (*UserInfo, error) {
	cfg, ok := providers[provider]
	if !ok {
		return nil, fmt.Errorf("unknown oauth provider: %s", provider)
	}

	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	form.Set("client_id", os.Getenv(cfg.clientIDEnv))
	form.Set("client_secret", os.Getenv(cfg.clientSecEnv))
	form.Set("redirect_uri", c.redirectURL+"/"+provider)

	resp, err := c.httpClient.Post(cfg.tokenURL, "application/x-www-form-urlencoded",
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("token endpoint returned non-OK status: " + resp.Status)
	}

	var tokens tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokens); err != nil {
		return nil, err
	}

	info, err := c.fetchUserInfo(cfg, provider, tokens.AccessToken)
	if err != nil {
		return nil, err
	}
	info.RefreshToken = tokens.RefreshToken
	return info, nil
}

func (c *Client) fetchUserInfo(cfg providerConfig, provider, accessToken string) (*UserInfo, error) {
	req, err := http.NewRequest("GET", cfg.userInfoURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("userinfo endpoint returned non-OK status: " + resp.Status)
	}

	switch provider {
	case ProviderGoogle:
		var info googleUserInfo
		if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
			return nil, err
		}
		return &UserInfo{Email: info.Email, Name: info.Name, Picture: info.Picture}, nil
	case ProviderKakao:
		var info kakaoUserInfo
		if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
			return nil, err
		}
		return &UserInfo{
			Email:   info.KakaoAccount.Email,
			Name:    info.KakaoAccount.Profile.Nickname,
			Picture: info.KakaoAccount.Profile.ProfileImageURL,
		}, nil
	}
	return nil, fmt.Errorf("unknown oauth provider: %s", provider)
}
