package generator

import (
	"context"
	"fmt"
	"time"

	"github.com/MixinNetwork/nexus/economy"
	"github.com/go-resty/resty/v2"
)

type generatedView struct {
	Name        string `json:"name"`
	Rarity      string `json:"rarity"`
	ImageBase64 string `json:"image_base64"`
}

// HTTPGenerator asks a remote generation service to mint a collectible,
// POST {endpoint}/generate answers with a generatedView.
type HTTPGenerator struct {
	client *resty.Client
}

func NewHTTP(endpoint string, timeout time.Duration) *HTTPGenerator {
	client := resty.New().
		SetBaseURL(endpoint).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return &HTTPGenerator{client: client}
}

func (g *HTTPGenerator) Generate(ctx context.Context) (*economy.Attributes, error) {
	var view generatedView
	resp, err := g.client.R().
		SetContext(ctx).
		SetResult(&view).
		Post("/generate")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("generator responded %d %s", resp.StatusCode(), resp.String())
	}
	rarity, err := economy.ParseRarity(view.Rarity)
	if err != nil {
		return nil, err
	}
	if view.Name == "" || view.ImageBase64 == "" {
		return nil, fmt.Errorf("generator responded incomplete collectible %v", view)
	}
	return &economy.Attributes{
		Name:      view.Name,
		Rarity:    rarity,
		ImageData: view.ImageBase64,
	}, nil
}
