package client

import (
	"context"
	"net/url"

	"github.com/getfolio/folio/pkg/api"
	"github.com/getfolio/folio/pkg/portfolio"
)

const educationPath = apiPrefix + "/education"

// EducationClient is the request gateway for the education resource.
type EducationClient struct {
	c *Client
}

// Education returns the education gateway.
func (c *Client) Education() *EducationClient {
	return &EducationClient{c: c}
}

// List fetches all education entries. Public: no credential required.
func (e *EducationClient) List(ctx context.Context) (*api.ListResponse[portfolio.Education], error) {
	body, err := e.c.get(ctx, educationPath, authOptional)
	if err != nil {
		return nil, err
	}
	return api.DecodeList[portfolio.Education](body)
}

// Create adds a new education entry.
func (e *EducationClient) Create(ctx context.Context, draft portfolio.EducationDraft) (*api.ItemResponse[portfolio.Education], error) {
	body, err := e.c.postJSON(ctx, educationPath, educationPayload(draft), authRequired)
	if err != nil {
		return nil, err
	}
	return api.DecodeItem[portfolio.Education](body)
}

// Update patches the education entry with the given id.
func (e *EducationClient) Update(ctx context.Context, id string, draft portfolio.EducationDraft) (*api.ItemResponse[portfolio.Education], error) {
	body, err := e.c.patchJSON(ctx, educationPath+"/"+url.PathEscape(id), educationPayload(draft))
	if err != nil {
		return nil, err
	}
	return api.DecodeItem[portfolio.Education](body)
}

// Delete removes the education entry with the given id and returns the
// server's confirmation message.
func (e *EducationClient) Delete(ctx context.Context, id string) (string, error) {
	body, err := e.c.delete(ctx, educationPath+"/"+url.PathEscape(id))
	if err != nil {
		return "", err
	}
	resp, err := api.DecodeItem[portfolio.Education](body)
	if err != nil {
		return "", err
	}
	return resp.Message, nil
}

func educationPayload(draft portfolio.EducationDraft) map[string]string {
	return map[string]string{
		"qualification":     draft.Qualification,
		"name":              draft.Name,
		"address":           draft.Address,
		"gradeOrPercentage": draft.GradeOrPercent,
		"yearOfCompletion":  draft.YearOfCompletion,
		"description":       draft.Description,
	}
}
