package authenticator

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"

	"github.com/craftline/craftline/utils"
)

////////////////////////////////////////////////////////////
// Constants & Types
////////////////////////////////////////////////////////////

const (
	MicrosoftAuthorizeURL = "https://login.live.com/oauth20_authorize.srf"
	MicrosoftTokenURL     = "https://login.live.com/oauth20_token.srf"

	XboxLiveAuthenticateURL = "https://user.auth.xboxlive.com/user/authenticate"
	XboxAuthMethod          = "RPS"
	XboxSiteName            = "user.auth.xboxlive.com"
	XboxRelyingParty        = "http://auth.xboxlive.com"
	XboxTokenType           = "JWT"

	XSTSAuthorizeURL = "https://xsts.auth.xboxlive.com/xsts/authorize"
	XSTSSandboxID    = "RETAIL"
	XSTSRelyingParty = "rp://api.minecraftservices.com/"
	XSTSTokenType    = "JWT"

	MojangAuthorizeURL = "https://api.minecraftservices.com/authentication/login_with_xbox"
	MojangUserInfoURL  = "https://api.minecraftservices.com/minecraft/profile"

	MicrosoftScope     = "service::user.auth.xboxlive.com::MBI_SSL"
	MicrosoftGrantType = "authorization_code"

	MojangClientID    = "00000000402B5328"
	MojangRedirectURI = "https://login.live.com/oauth20_desktop.srf"
)

type MicrosoftTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	Scope        string `json:"scope"`
	TokenType    string `json:"token_type"`
}

type XboxAuthenticationRequestProperties struct {
	AuthMethod string `json:"AuthMethod"`
	SiteName   string `json:"SiteName"`
	RpsTicket  string `json:"RpsTicket"`
}

type XboxAuthenticationRequest struct {
	Properties   XboxAuthenticationRequestProperties `json:"Properties"`
	RelyingParty string                              `json:"RelyingParty"`
	TokenType    string                              `json:"TokenType"`
}

type XboxAuthenticationResponse struct {
	IssueInstant  string `json:"IssueInstant"`
	NotAfter      string `json:"NotAfter"`
	Token         string `json:"Token"`
	DisplayClaims struct {
		Xui []struct {
			Uhs string `json:"uhs"`
		} `json:"xui"`
	} `json:"DisplayClaims"`
}

type XSTSAuthenticationRequestProperties struct {
	SandboxId  string   `json:"SandboxId"`
	UserTokens []string `json:"UserTokens"`
}

type XSTSAuthenticationRequest struct {
	Properties XSTSAuthenticationRequestProperties `json:"Properties"`

	RelyingParty string `json:"RelyingParty"`
	TokenType    string `json:"TokenType"`
}

type MinecraftLoginRequest struct {
	IdentityToken string `json:"identityToken"`
}

type MinecraftLoginResponse struct {
	ID          string `json:"username"`
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

type UserInfoResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Properties []struct {
		Name  string `json:"name"`
		Value string `json:"value"`
	} `json:"properties"`
}

////////////////////////////////////////////////////////////
// Microsoft Authenticator
////////////////////////////////////////////////////////////

// MicrosoftAuthenticator walks the Microsoft -> Xbox Live -> XSTS ->
// Mojang token exchange and returns the resulting identity record.
type MicrosoftAuthenticator struct {
}

func NewMicrosoftAuthenticator() *MicrosoftAuthenticator {
	return &MicrosoftAuthenticator{}
}

func (a *MicrosoftAuthenticator) GetType() AuthenticatorType {
	return MICROSOFT
}

func (a *MicrosoftAuthenticator) GetAuthorizationURL() string {
	return fmt.Sprintf("%s?prompt=select_account&client_id=%s&response_type=code&scope=%s&redirect_uri=%s", MicrosoftAuthorizeURL, MojangClientID, MicrosoftScope, MojangRedirectURI)
}

func (a *MicrosoftAuthenticator) AuthenticateWithCode(code string) (*AuthenticatorResponse, error) {
	// 1. Microsoft token
	tokens := MicrosoftTokenResponse{}
	optionsMicrosoft := utils.NewRequestOptions[MicrosoftTokenResponse]("application/x-www-form-urlencoded", &tokens)
	optionsMicrosoft.SetBody(map[string]string{
		"code":         code,
		"grant_type":   MicrosoftGrantType,
		"scope":        MicrosoftScope,
		"client_id":    MojangClientID,
		"redirect_uri": MojangRedirectURI,
	})

	if _, err := utils.DoRequest(http.MethodPost, MicrosoftTokenURL, optionsMicrosoft); err != nil {
		return nil, errors.Wrap(err, "getting microsoft token")
	}

	// 2. Xbox Live token
	xboxAuthResponse := XboxAuthenticationResponse{}
	optionsXbox := utils.NewRequestOptions[XboxAuthenticationResponse]("application/json", &xboxAuthResponse)
	optionsXbox.AddHeader("Accept", "application/json")
	optionsXbox.SetBody(XboxAuthenticationRequest{
		Properties: XboxAuthenticationRequestProperties{
			AuthMethod: XboxAuthMethod,
			SiteName:   XboxSiteName,
			RpsTicket:  tokens.AccessToken,
		},
		RelyingParty: XboxRelyingParty,
		TokenType:    XboxTokenType,
	})

	if _, err := utils.DoRequest(http.MethodPost, XboxLiveAuthenticateURL, optionsXbox); err != nil {
		return nil, errors.Wrap(err, "getting xbox live token")
	}

	// 3. XSTS token
	xstsAuthResponse := XboxAuthenticationResponse{}
	optionsXsts := utils.NewRequestOptions[XboxAuthenticationResponse]("application/json", &xstsAuthResponse)
	optionsXsts.AddHeader("Accept", "application/json")
	optionsXsts.SetBody(XSTSAuthenticationRequest{
		Properties: XSTSAuthenticationRequestProperties{
			SandboxId:  XSTSSandboxID,
			UserTokens: []string{xboxAuthResponse.Token},
		},
		RelyingParty: XSTSRelyingParty,
		TokenType:    XSTSTokenType,
	})

	if _, err := utils.DoRequest(http.MethodPost, XSTSAuthorizeURL, optionsXsts); err != nil {
		return nil, errors.Wrap(err, "getting xsts token")
	}

	if len(xboxAuthResponse.DisplayClaims.Xui) == 0 {
		return nil, errors.New("xbox live response carries no user hash")
	}

	// 4. Game token
	minecraftLoginResponse := MinecraftLoginResponse{}
	optionsMinecraft := utils.NewRequestOptions[MinecraftLoginResponse]("application/json", &minecraftLoginResponse)
	optionsMinecraft.SetBody(MinecraftLoginRequest{
		IdentityToken: fmt.Sprintf("XBL3.0 x=%s;%s", xboxAuthResponse.DisplayClaims.Xui[0].Uhs, xstsAuthResponse.Token),
	})

	if _, err := utils.DoRequest(http.MethodPost, MojangAuthorizeURL, optionsMinecraft); err != nil {
		return nil, errors.Wrap(err, "logging in with xbox token")
	}

	// 5. Profile info
	userInfo := UserInfoResponse{}
	optionsUserInfo := utils.NewRequestOptions[UserInfoResponse]("application/json", &userInfo)
	optionsUserInfo.AddHeader("Authorization", "Bearer "+minecraftLoginResponse.AccessToken)
	if _, err := utils.DoRequest(http.MethodGet, MojangUserInfoURL, optionsUserInfo); err != nil {
		return nil, errors.Wrap(err, "getting user info")
	}

	return &AuthenticatorResponse{
		UserUUID: userInfo.ID,
		Token:    minecraftLoginResponse.AccessToken,
		UserName: userInfo.Name,
		OtherTokens: map[string]string{
			"microsoft": tokens.AccessToken,
			"xbox":      xboxAuthResponse.Token,
			"xsts":      xstsAuthResponse.Token,
		},
	}, nil
}
