package google

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/people/v1"

	"github.com/daniloc96/member-roster-sync/internal/models"
)

// MemberIDKey is the user-defined field that carries the member id on contacts.
const MemberIDKey = "Member ID"

type contactCreator interface {
	CreateContact(ctx context.Context, person *people.Person) (*people.Person, error)
}

// ContactsClient writes member contacts through the People API.
type ContactsClient struct {
	creator contactCreator
}

// NewContactsClient creates a People API client.
func NewContactsClient(ctx context.Context, opts ...option.ClientOption) (*ContactsClient, error) {
	svc, err := people.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create people service: %w", err)
	}
	return &ContactsClient{creator: &peopleService{svc: svc}}, nil
}

// CreateContact adds a contact for the member.
func (c *ContactsClient) CreateContact(ctx context.Context, contact models.Contact) error {
	_, err := c.creator.CreateContact(ctx, toPerson(contact))
	if err != nil {
		return fmt.Errorf("creating contact for %s: %w", contact.MemberID, err)
	}
	return nil
}

func toPerson(contact models.Contact) *people.Person {
	return &people.Person{
		Names: []*people.Name{{
			GivenName:  contact.GivenName,
			FamilyName: contact.FamilyName,
		}},
		PhoneNumbers: []*people.PhoneNumber{{Value: contact.Phone}},
		UserDefined:  []*people.UserDefined{{Key: MemberIDKey, Value: contact.MemberID}},
	}
}

type peopleService struct {
	svc *people.Service
}

func (p *peopleService) CreateContact(ctx context.Context, person *people.Person) (*people.Person, error) {
	return p.svc.People.CreateContact(person).Context(ctx).Do()
}
