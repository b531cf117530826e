package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/getfolio/folio/pkg/api"
	"github.com/getfolio/folio/pkg/portfolio"
)

const testimonialPath = apiPrefix + "/testimonial"

// TestimonialsClient is the request gateway for the testimonial resource.
type TestimonialsClient struct {
	c *Client
}

// Testimonials returns the testimonials gateway.
func (c *Client) Testimonials() *TestimonialsClient {
	return &TestimonialsClient{c: c}
}

// List fetches all testimonials. Public: no credential required.
func (t *TestimonialsClient) List(ctx context.Context) (*api.ListResponse[portfolio.Testimonial], error) {
	body, err := t.c.get(ctx, testimonialPath, authOptional)
	if err != nil {
		return nil, err
	}
	return api.DecodeList[portfolio.Testimonial](body)
}

// Create adds a new testimonial. The avatar image, when present, is sent as
// a multipart file part.
func (t *TestimonialsClient) Create(ctx context.Context, draft portfolio.TestimonialDraft) (*api.ItemResponse[portfolio.Testimonial], error) {
	body, err := t.c.postForm(ctx, testimonialPath, testimonialForm(draft))
	if err != nil {
		return nil, err
	}
	return api.DecodeItem[portfolio.Testimonial](body)
}

// Update patches the testimonial with the given id.
func (t *TestimonialsClient) Update(ctx context.Context, id string, draft portfolio.TestimonialDraft) (*api.ItemResponse[portfolio.Testimonial], error) {
	body, err := t.c.patchForm(ctx, testimonialPath+"/"+url.PathEscape(id), testimonialForm(draft))
	if err != nil {
		return nil, err
	}
	return api.DecodeItem[portfolio.Testimonial](body)
}

// Delete removes the testimonial with the given id and returns the server's
// confirmation message.
func (t *TestimonialsClient) Delete(ctx context.Context, id string) (string, error) {
	body, err := t.c.delete(ctx, testimonialPath+"/"+url.PathEscape(id))
	if err != nil {
		return "", err
	}
	resp, err := api.DecodeItem[portfolio.Testimonial](body)
	if err != nil {
		return "", err
	}
	return resp.Message, nil
}

func testimonialForm(draft portfolio.TestimonialDraft) *form {
	f := &form{}
	f.set("name", draft.Name)
	f.set("role", draft.Role)
	f.set("message", draft.Message)
	if draft.Rating > 0 {
		f.set("rating", strconv.Itoa(draft.Rating))
	}
	if draft.Image != nil {
		f.file("image", draft.Image.Name, draft.Image.Data)
	}
	return f
}
