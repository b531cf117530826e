package client

import (
	"context"
	"net/url"

	"github.com/getfolio/folio/pkg/api"
	"github.com/getfolio/folio/pkg/portfolio"
)

const contactPath = apiPrefix + "/contact"

// ContactClient is the request gateway for the singleton contact-details
// resource.
type ContactClient struct {
	c *Client
}

// Contact returns the contact gateway.
func (c *Client) Contact() *ContactClient {
	return &ContactClient{c: c}
}

// Get fetches the contact-details record.
func (cc *ContactClient) Get(ctx context.Context) (*api.ItemResponse[portfolio.Contact], error) {
	body, err := cc.c.get(ctx, contactPath, authRequired)
	if err != nil {
		return nil, err
	}
	return api.DecodeItem[portfolio.Contact](body)
}

// Create sets the contact-details record for the first time.
func (cc *ContactClient) Create(ctx context.Context, draft portfolio.ContactDraft) (*api.ItemResponse[portfolio.Contact], error) {
	body, err := cc.c.postJSON(ctx, contactPath, contactPayload(draft), authRequired)
	if err != nil {
		return nil, err
	}
	return api.DecodeItem[portfolio.Contact](body)
}

// Update patches the contact-details record with the given id.
func (cc *ContactClient) Update(ctx context.Context, id string, draft portfolio.ContactDraft) (*api.ItemResponse[portfolio.Contact], error) {
	body, err := cc.c.patchJSON(ctx, contactPath+"/"+url.PathEscape(id), contactPayload(draft))
	if err != nil {
		return nil, err
	}
	return api.DecodeItem[portfolio.Contact](body)
}

// Delete removes the contact-details record with the given id and returns
// the server's confirmation message.
func (cc *ContactClient) Delete(ctx context.Context, id string) (string, error) {
	body, err := cc.c.delete(ctx, contactPath+"/"+url.PathEscape(id))
	if err != nil {
		return "", err
	}
	resp, err := api.DecodeItem[portfolio.Contact](body)
	if err != nil {
		return "", err
	}
	return resp.Message, nil
}

func contactPayload(draft portfolio.ContactDraft) map[string]string {
	return map[string]string{
		"email":    draft.Email,
		"phone":    draft.Phone,
		"address":  draft.Address,
		"github":   draft.GitHub,
		"linkedin": draft.LinkedIn,
	}
}
