package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"unicode"

	"golang.org/x/oauth2"
)

func forumsConfig(authURL, tokenURL string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     "cid",
		ClientSecret: "secret",
		RedirectURL:  "https://svc.example/forums/callback",
		Scopes:       []string{"openid", "profile"},
		Endpoint: oauth2.Endpoint{
			AuthURL:   authURL,
			TokenURL:  tokenURL,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
}

func discordConfig(tokenURL string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     "cid",
		ClientSecret: "secret",
		RedirectURL:  "https://svc.example/discord/callback",
		Scopes:       []string{"openid", "identify"},
		Endpoint: oauth2.Endpoint{
			AuthURL:   DiscordEndpoint.AuthURL,
			TokenURL:  tokenURL,
			AuthStyle: oauth2.AuthStyleInHeader,
		},
	}
}

func TestForumsProvider_AuthCodeURL(t *testing.T) {
	p := NewForumsProvider(forumsConfig("https://idp.example/authorize", "https://idp.example/token"))

	authURL, err := url.Parse(p.AuthCodeURL("abc123"))
	if err != nil {
		t.Fatalf("AuthCodeURL produced an unparseable URL: %v", err)
	}

	if got := authURL.Scheme + "://" + authURL.Host + authURL.Path; got != "https://idp.example/authorize" {
		t.Errorf("authorization endpoint = %q, want %q", got, "https://idp.example/authorize")
	}

	q := authURL.Query()
	want := map[string]string{
		"scope":         "openid profile",
		"response_type": "code",
		"client_id":     "cid",
		"redirect_uri":  "https://svc.example/forums/callback",
		"state":         "abc123",
	}
	for key, value := range want {
		if got := q.Get(key); got != value {
			t.Errorf("query param %s = %q, want %q", key, got, value)
		}
	}

	nonce := q.Get("nonce")
	if len(nonce) != 14 {
		t.Errorf("len(nonce) = %d, want 14", len(nonce))
	}
	for _, c := range nonce {
		if !unicode.IsLetter(c) && !unicode.IsDigit(c) {
			t.Errorf("nonce %q is not alphanumeric", nonce)
			break
		}
	}
}

func TestDiscordProvider_AuthCodeURL(t *testing.T) {
	p := NewDiscordProvider(discordConfig("https://discord.com/api/oauth2/token"))

	authURL, err := url.Parse(p.AuthCodeURL("abc123"))
	if err != nil {
		t.Fatalf("AuthCodeURL produced an unparseable URL: %v", err)
	}

	q := authURL.Query()
	if got := q.Get("state"); got != "abc123" {
		t.Errorf("state = %q, want %q", got, "abc123")
	}
	if got := q.Get("scope"); got != "openid identify" {
		t.Errorf("scope = %q, want %q", got, "openid identify")
	}
	if q.Has("nonce") {
		t.Errorf("discord authorization URL carries a nonce: %q", q.Get("nonce"))
	}
}

func TestForumsProvider_ExchangeSendsCredentialsInForm(t *testing.T) {
	var form url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Errorf("ParseForm() error = %v", err)
		}
		form = r.PostForm

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"at","token_type":"bearer","expires_in":3600,"id_token":"h.p.s","scope":"openid profile"}`))
	}))
	defer server.Close()

	p := NewForumsProvider(forumsConfig("https://idp.example/authorize", server.URL))

	token, err := p.Exchange(context.Background(), "authcode")
	if err != nil {
		t.Fatalf("Exchange() error = %v, want nil", err)
	}

	want := map[string]string{
		"client_id":     "cid",
		"client_secret": "secret",
		"grant_type":    "authorization_code",
		"code":          "authcode",
		"redirect_uri":  "https://svc.example/forums/callback",
	}
	for key, value := range want {
		if got := form.Get(key); got != value {
			t.Errorf("form field %s = %q, want %q", key, got, value)
		}
	}

	if got, ok := token.Extra("id_token").(string); !ok || got != "h.p.s" {
		t.Errorf("id_token extra = %v, want %q", token.Extra("id_token"), "h.p.s")
	}
}

func TestDiscordProvider_ExchangeUsesBasicAuth(t *testing.T) {
	var authHeader string
	var form url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		if err := r.ParseForm(); err != nil {
			t.Errorf("ParseForm() error = %v", err)
		}
		form = r.PostForm

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"at","token_type":"bearer","id_token":"h.p.s"}`))
	}))
	defer server.Close()

	p := NewDiscordProvider(discordConfig(server.URL))

	if _, err := p.Exchange(context.Background(), "authcode"); err != nil {
		t.Fatalf("Exchange() error = %v, want nil", err)
	}

	if !strings.HasPrefix(authHeader, "Basic ") {
		t.Errorf("Authorization header = %q, want basic auth", authHeader)
	}
	if form.Has("client_secret") {
		t.Errorf("client_secret leaked into the form body")
	}
	if got := form.Get("redirect_uri"); got != "https://svc.example/discord/callback" {
		t.Errorf("redirect_uri = %q, want %q", got, "https://svc.example/discord/callback")
	}
}

func TestExchange_TokenEndpointUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	tokenURL := server.URL
	server.Close()

	p := NewForumsProvider(forumsConfig("https://idp.example/authorize", tokenURL))

	_, err := p.Exchange(context.Background(), "authcode")
	if err == nil {
		t.Fatal("Exchange() error = nil, want transport failure")
	}
	if !IsNoResponse(err) {
		t.Errorf("IsNoResponse(%v) = false, want true", err)
	}
}

func TestExchange_UnusableResponseBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	p := NewForumsProvider(forumsConfig("https://idp.example/authorize", server.URL))

	_, err := p.Exchange(context.Background(), "authcode")
	if err == nil {
		t.Fatal("Exchange() error = nil, want parse failure")
	}
	if IsNoResponse(err) {
		t.Errorf("IsNoResponse(%v) = true, want false", err)
	}
}
