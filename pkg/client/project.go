package client

import (
	"context"
	"net/url"

	"github.com/getfolio/folio/pkg/api"
	"github.com/getfolio/folio/pkg/portfolio"
)

const projectPath = apiPrefix + "/project"

// ProjectFilter narrows a project list query.
type ProjectFilter struct {
	Skill    string
	Category string
}

// ProjectsClient is the request gateway for the project resource.
type ProjectsClient struct {
	c *Client
}

// Projects returns the projects gateway.
func (c *Client) Projects() *ProjectsClient {
	return &ProjectsClient{c: c}
}

// List fetches projects, optionally filtered by skill or category. Public:
// no credential required.
func (p *ProjectsClient) List(ctx context.Context, filter *ProjectFilter) (*api.ListResponse[portfolio.Project], error) {
	path := projectPath
	if filter != nil {
		q := url.Values{}
		if filter.Skill != "" {
			q.Set("skill", filter.Skill)
		}
		if filter.Category != "" {
			q.Set("category", filter.Category)
		}
		if len(q) > 0 {
			path += "?" + q.Encode()
		}
	}
	body, err := p.c.get(ctx, path, authOptional)
	if err != nil {
		return nil, err
	}
	return api.DecodeList[portfolio.Project](body)
}

// Get fetches a single project by id. Requires a credential.
func (p *ProjectsClient) Get(ctx context.Context, id string) (*api.ItemResponse[portfolio.Project], error) {
	body, err := p.c.get(ctx, projectPath+"/"+url.PathEscape(id), authRequired)
	if err != nil {
		return nil, err
	}
	return api.DecodeItem[portfolio.Project](body)
}

// Create adds a new project. The technologiesUsed array travels as a JSON
// string field inside the multipart body, matching the backend's contract.
func (p *ProjectsClient) Create(ctx context.Context, draft portfolio.ProjectDraft) (*api.ItemResponse[portfolio.Project], error) {
	body, err := p.c.postForm(ctx, projectPath, projectForm(draft))
	if err != nil {
		return nil, err
	}
	return api.DecodeItem[portfolio.Project](body)
}

// Update patches the project with the given id.
func (p *ProjectsClient) Update(ctx context.Context, id string, draft portfolio.ProjectDraft) (*api.ItemResponse[portfolio.Project], error) {
	body, err := p.c.patchForm(ctx, projectPath+"/"+url.PathEscape(id), projectForm(draft))
	if err != nil {
		return nil, err
	}
	return api.DecodeItem[portfolio.Project](body)
}

// Delete removes the project with the given id and returns the server's
// confirmation message.
func (p *ProjectsClient) Delete(ctx context.Context, id string) (string, error) {
	body, err := p.c.delete(ctx, projectPath+"/"+url.PathEscape(id))
	if err != nil {
		return "", err
	}
	resp, err := api.DecodeItem[portfolio.Project](body)
	if err != nil {
		return "", err
	}
	return resp.Message, nil
}

func projectForm(draft portfolio.ProjectDraft) *form {
	f := &form{}
	f.set("title", draft.Title)
	f.set("description", draft.Description)
	f.set("category", draft.Category)
	f.set("liveDemoLink", draft.LiveDemoLink)
	f.set("sourceCodeLink", draft.SourceCodeLink)
	if len(draft.TechnologiesUsed) > 0 {
		f.setJSON("technologiesUsed", draft.TechnologiesUsed)
	}
	if draft.Image != nil {
		f.file("image", draft.Image.Name, draft.Image.Data)
	}
	return f
}
