package client

import (
	"context"
	"net/url"

	"github.com/getfolio/folio/pkg/api"
	"github.com/getfolio/folio/pkg/portfolio"
)

const awardsPath = apiPrefix + "/awards"

// AwardsClient is the request gateway for the awards resource.
type AwardsClient struct {
	c *Client
}

// Awards returns the awards gateway.
func (c *Client) Awards() *AwardsClient {
	return &AwardsClient{c: c}
}

// List fetches all awards. Public: no credential required.
func (a *AwardsClient) List(ctx context.Context) (*api.ListResponse[portfolio.Award], error) {
	body, err := a.c.get(ctx, awardsPath, authOptional)
	if err != nil {
		return nil, err
	}
	return api.DecodeList[portfolio.Award](body)
}

// Create adds a new award. The image, when present, is sent as a multipart
// file part.
func (a *AwardsClient) Create(ctx context.Context, draft portfolio.AwardDraft) (*api.ItemResponse[portfolio.Award], error) {
	body, err := a.c.postForm(ctx, awardsPath, awardForm(draft))
	if err != nil {
		return nil, err
	}
	return api.DecodeItem[portfolio.Award](body)
}

// Update patches the award with the given id.
func (a *AwardsClient) Update(ctx context.Context, id string, draft portfolio.AwardDraft) (*api.ItemResponse[portfolio.Award], error) {
	body, err := a.c.patchForm(ctx, awardsPath+"/"+url.PathEscape(id), awardForm(draft))
	if err != nil {
		return nil, err
	}
	return api.DecodeItem[portfolio.Award](body)
}

// Delete removes the award with the given id and returns the server's
// confirmation message.
func (a *AwardsClient) Delete(ctx context.Context, id string) (string, error) {
	body, err := a.c.delete(ctx, awardsPath+"/"+url.PathEscape(id))
	if err != nil {
		return "", err
	}
	resp, err := api.DecodeItem[portfolio.Award](body)
	if err != nil {
		return "", err
	}
	return resp.Message, nil
}

func awardForm(draft portfolio.AwardDraft) *form {
	f := &form{}
	f.set("title", draft.Title)
	f.set("description", draft.Description)
	f.set("date", draft.Date)
	if draft.Image != nil {
		f.file("image", draft.Image.Name, draft.Image.Data)
	}
	return f
}
