package client

import (
	"context"

	"github.com/getfolio/folio/pkg/api"
	"github.com/getfolio/folio/pkg/portfolio"
)

const messagePath = apiPrefix + "/message"

// MessagesClient is the request gateway for the contact-form inbox.
type MessagesClient struct {
	c *Client
}

// Messages returns the messages gateway.
func (c *Client) Messages() *MessagesClient {
	return &MessagesClient{c: c}
}

// Send submits a contact-form message. Public: visitors have no credential.
func (m *MessagesClient) Send(ctx context.Context, draft portfolio.MessageDraft) (*api.ItemResponse[portfolio.Message], error) {
	payload := map[string]string{
		"name":    draft.Name,
		"email":   draft.Email,
		"subject": draft.Subject,
		"message": draft.Message,
	}
	body, err := m.c.postJSON(ctx, messagePath, payload, authOptional)
	if err != nil {
		return nil, err
	}
	return api.DecodeItem[portfolio.Message](body)
}

// List fetches the inbox. Admin only.
func (m *MessagesClient) List(ctx context.Context) (*api.ListResponse[portfolio.Message], error) {
	body, err := m.c.get(ctx, messagePath, authRequired)
	if err != nil {
		return nil, err
	}
	return api.DecodeList[portfolio.Message](body)
}
