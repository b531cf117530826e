package client

import (
	"context"

	"github.com/getfolio/folio/pkg/api"
	"github.com/getfolio/folio/pkg/portfolio"
)

const aboutPath = apiPrefix + "/about"

// AboutClient is the request gateway for the singleton about section.
type AboutClient struct {
	c *Client
}

// About returns the about gateway.
func (c *Client) About() *AboutClient {
	return &AboutClient{c: c}
}

// Get fetches the about section.
func (a *AboutClient) Get(ctx context.Context) (*api.ItemResponse[portfolio.About], error) {
	body, err := a.c.get(ctx, aboutPath, authOptional)
	if err != nil {
		return nil, err
	}
	return api.DecodeItem[portfolio.About](body)
}

// Save creates or replaces the about section. The backend upserts on POST,
// so there is no separate update call. Image and resume travel as multipart
// file parts.
func (a *AboutClient) Save(ctx context.Context, draft portfolio.AboutDraft) (*api.ItemResponse[portfolio.About], error) {
	f := &form{}
	f.set("title", draft.Title)
	f.set("description", draft.Description)
	if draft.Image != nil {
		f.file("image", draft.Image.Name, draft.Image.Data)
	}
	if draft.Resume != nil {
		f.file("resume", draft.Resume.Name, draft.Resume.Data)
	}
	body, err := a.c.postForm(ctx, aboutPath, f)
	if err != nil {
		return nil, err
	}
	return api.DecodeItem[portfolio.About](body)
}
