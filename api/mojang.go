package api

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/buger/jsonparser"
	"github.com/mrnavastar/magma/util"
)

var (
	MOJANG_API_BASE  = "https://api.mojang.com"
	SESSION_API_BASE = "https://sessionserver.mojang.com"
)

var (
	ErrPlayerNotFound  = errors.New("player not found")
	ErrTextureNotFound = errors.New("texture not found")
)

type mojangProfile struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

// PlayerHeadTexture returns the skin URL of a premium account. The default
// offline name never has one.
func PlayerHeadTexture(ctx context.Context, username string) (string, error) {
	if username == "" || username == util.DefaultUsername {
		return "", ErrPlayerNotFound
	}

	var profile mojangProfile
	resp, err := client.R().
		SetContext(ctx).
		SetPathParam("username", username).
		SetResult(&profile).
		Get(MOJANG_API_BASE + "/users/profiles/minecraft/{username}")
	if err != nil {
		return "", err
	}
	if resp.IsError() || profile.Id == "" {
		return "", fmt.Errorf("%w: %s", ErrPlayerNotFound, username)
	}

	resp, err = client.R().
		SetContext(ctx).
		SetPathParam("uuid", profile.Id).
		Get(SESSION_API_BASE + "/session/minecraft/profile/{uuid}")
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", ErrTextureNotFound
	}

	encoded, err := jsonparser.GetString(resp.Body(), "properties", "[0]", "value")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTextureNotFound, err)
	}
	textures, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTextureNotFound, err)
	}
	url, err := jsonparser.GetString(textures, "textures", "SKIN", "url")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTextureNotFound, err)
	}
	return url, nil
}
