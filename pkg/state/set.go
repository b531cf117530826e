package state

import (
	"context"

	"github.com/getfolio/folio/pkg/api"
	"github.com/getfolio/folio/pkg/client"
	"github.com/getfolio/folio/pkg/portfolio"
)

// Set wires one synced resource per backend endpoint to a shared client.
// Construct one Set per process (or per test); there are no package-level
// singletons.
type Set struct {
	Session      *Session
	About        *Singleton[portfolio.About, portfolio.AboutDraft]
	Contact      *Singleton[portfolio.Contact, portfolio.ContactDraft]
	Education    *Resource[portfolio.Education, portfolio.EducationDraft]
	Experience   *Resource[portfolio.Experience, portfolio.ExperienceDraft]
	TechStacks   *Resource[portfolio.TechStack, portfolio.TechStackDraft]
	Projects     *Resource[portfolio.Project, portfolio.ProjectDraft]
	Messages     *Resource[portfolio.Message, portfolio.MessageDraft]
	Awards       *Resource[portfolio.Award, portfolio.AwardDraft]
	Testimonials *Resource[portfolio.Testimonial, portfolio.TestimonialDraft]
}

// New builds the full resource set over one client and credential store.
func New(c *client.Client, creds CredentialStore) *Set {
	projects := c.Projects()
	contact := c.Contact()

	return &Set{
		Session: NewSession(c.Users(), creds),
		About: NewSingleton(SingletonGateway[portfolio.About, portfolio.AboutDraft]{
			Get:  c.About().Get,
			Save: c.About().Save,
		}),
		Contact: NewSingleton(SingletonGateway[portfolio.Contact, portfolio.ContactDraft]{
			Get: contact.Get,
			Save: func(ctx context.Context, draft portfolio.ContactDraft) (*api.ItemResponse[portfolio.Contact], error) {
				return saveContact(ctx, contact, draft)
			},
		}),
		Education: NewResource(Gateway[portfolio.Education, portfolio.EducationDraft]{
			List:   c.Education().List,
			Create: c.Education().Create,
			Update: c.Education().Update,
			Delete: c.Education().Delete,
		}),
		Experience: NewResource(Gateway[portfolio.Experience, portfolio.ExperienceDraft]{
			List:   c.Experience().List,
			Create: c.Experience().Create,
			Update: c.Experience().Update,
			Delete: c.Experience().Delete,
		}),
		TechStacks: NewResource(Gateway[portfolio.TechStack, portfolio.TechStackDraft]{
			List:   c.TechStacks().List,
			Create: c.TechStacks().Create,
			Update: c.TechStacks().Update,
			Delete: c.TechStacks().Delete,
		}),
		Projects: NewResource(Gateway[portfolio.Project, portfolio.ProjectDraft]{
			List: func(ctx context.Context) (*api.ListResponse[portfolio.Project], error) {
				return projects.List(ctx, nil)
			},
			Get:    projects.Get,
			Create: projects.Create,
			Update: projects.Update,
			Delete: projects.Delete,
		}),
		Messages: NewResource(Gateway[portfolio.Message, portfolio.MessageDraft]{
			List:   c.Messages().List,
			Create: c.Messages().Send,
		}),
		Awards: NewResource(Gateway[portfolio.Award, portfolio.AwardDraft]{
			List:   c.Awards().List,
			Create: c.Awards().Create,
			Update: c.Awards().Update,
			Delete: c.Awards().Delete,
		}),
		Testimonials: NewResource(Gateway[portfolio.Testimonial, portfolio.TestimonialDraft]{
			List:   c.Testimonials().List,
			Create: c.Testimonials().Create,
			Update: c.Testimonials().Update,
			Delete: c.Testimonials().Delete,
		}),
	}
}

// saveContact routes a singleton save to create or update depending on
// whether the record already exists server-side.
func saveContact(ctx context.Context, contact *client.ContactClient, draft portfolio.ContactDraft) (*api.ItemResponse[portfolio.Contact], error) {
	existing, err := contact.Get(ctx)
	if err == nil && existing.Item != nil && existing.Item.ID != "" {
		return contact.Update(ctx, existing.Item.ID, draft)
	}
	return contact.Create(ctx, draft)
}
