package client

import (
	"context"
	"net/url"

	"github.com/getfolio/folio/pkg/api"
	"github.com/getfolio/folio/pkg/portfolio"
)

const techStackPath = apiPrefix + "/tech-stack"

// TechStacksClient is the request gateway for the tech-stack resource.
type TechStacksClient struct {
	c *Client
}

// TechStacks returns the tech-stack gateway.
func (c *Client) TechStacks() *TechStacksClient {
	return &TechStacksClient{c: c}
}

// List fetches all skill categories.
func (t *TechStacksClient) List(ctx context.Context) (*api.ListResponse[portfolio.TechStack], error) {
	body, err := t.c.get(ctx, techStackPath, authOptional)
	if err != nil {
		return nil, err
	}
	return api.DecodeList[portfolio.TechStack](body)
}

// Create adds a new skill category.
func (t *TechStacksClient) Create(ctx context.Context, draft portfolio.TechStackDraft) (*api.ItemResponse[portfolio.TechStack], error) {
	body, err := t.c.postJSON(ctx, techStackPath, techStackPayload(draft), authRequired)
	if err != nil {
		return nil, err
	}
	return api.DecodeItem[portfolio.TechStack](body)
}

// Update patches the skill category with the given id.
func (t *TechStacksClient) Update(ctx context.Context, id string, draft portfolio.TechStackDraft) (*api.ItemResponse[portfolio.TechStack], error) {
	body, err := t.c.patchJSON(ctx, techStackPath+"/"+url.PathEscape(id), techStackPayload(draft))
	if err != nil {
		return nil, err
	}
	return api.DecodeItem[portfolio.TechStack](body)
}

// Delete removes the skill category with the given id and returns the
// server's confirmation message.
func (t *TechStacksClient) Delete(ctx context.Context, id string) (string, error) {
	body, err := t.c.delete(ctx, techStackPath+"/"+url.PathEscape(id))
	if err != nil {
		return "", err
	}
	resp, err := api.DecodeItem[portfolio.TechStack](body)
	if err != nil {
		return "", err
	}
	return resp.Message, nil
}

func techStackPayload(draft portfolio.TechStackDraft) map[string]any {
	return map[string]any{
		"category": draft.Category,
		"skills":   draft.Skills,
	}
}
