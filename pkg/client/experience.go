package client

import (
	"context"
	"net/url"

	"github.com/getfolio/folio/pkg/api"
	"github.com/getfolio/folio/pkg/portfolio"
)

const experiencePath = apiPrefix + "/experience"

// ExperienceClient is the request gateway for the experience resource.
type ExperienceClient struct {
	c *Client
}

// Experience returns the experience gateway.
func (c *Client) Experience() *ExperienceClient {
	return &ExperienceClient{c: c}
}

// List fetches all work-history entries. Public: no credential required.
func (e *ExperienceClient) List(ctx context.Context) (*api.ListResponse[portfolio.Experience], error) {
	body, err := e.c.get(ctx, experiencePath, authOptional)
	if err != nil {
		return nil, err
	}
	return api.DecodeList[portfolio.Experience](body)
}

// Create adds a new work-history entry.
func (e *ExperienceClient) Create(ctx context.Context, draft portfolio.ExperienceDraft) (*api.ItemResponse[portfolio.Experience], error) {
	body, err := e.c.postJSON(ctx, experiencePath, experiencePayload(draft), authRequired)
	if err != nil {
		return nil, err
	}
	return api.DecodeItem[portfolio.Experience](body)
}

// Update patches the work-history entry with the given id.
func (e *ExperienceClient) Update(ctx context.Context, id string, draft portfolio.ExperienceDraft) (*api.ItemResponse[portfolio.Experience], error) {
	body, err := e.c.patchJSON(ctx, experiencePath+"/"+url.PathEscape(id), experiencePayload(draft))
	if err != nil {
		return nil, err
	}
	return api.DecodeItem[portfolio.Experience](body)
}

// Delete removes the work-history entry with the given id and returns the
// server's confirmation message.
func (e *ExperienceClient) Delete(ctx context.Context, id string) (string, error) {
	body, err := e.c.delete(ctx, experiencePath+"/"+url.PathEscape(id))
	if err != nil {
		return "", err
	}
	resp, err := api.DecodeItem[portfolio.Experience](body)
	if err != nil {
		return "", err
	}
	return resp.Message, nil
}

func experiencePayload(draft portfolio.ExperienceDraft) map[string]string {
	return map[string]string{
		"role":        draft.Role,
		"company":     draft.Company,
		"duration":    draft.Duration,
		"description": draft.Description,
	}
}
