package oauth

// Providers supported for social login
const (
	ProviderGoogle = "google"
	ProviderKakao  = "kakao"
)

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
}

// UserInfo is the provider-agnostic identity extracted from the profile endpoint
type UserInfo struct {
	Email        string
	Name         string
	Picture      string
	RefreshToken string
}

type googleUserInfo struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

type kakaoUserInfo struct {
	KakaoAccount struct {
		Email   string `json:"email"`
		Profile struct {
			Nickname        string `json:"nickname"`
			ProfileImageURL string `json:"profile_image_url"`
		} `json:"profile"`
	} `json:"kakao_account"`
}
