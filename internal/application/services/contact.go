package services

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/text/unicode/norm"

	"contacts-api/internal/application/ports"
	domain "contacts-api/internal/domain/contact"
	"contacts-api/internal/infrastructure/mq"
	"contacts-api/internal/interface/api/rest/dto/contact"
)

type ContactService struct {
	contactRepository domain.Repository
	mq                ports.RabbitMQ
	mCounter          *prometheus.CounterVec
}

func NewContactService(
	contactRepository domain.Repository,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.ContactService {
	return &ContactService{
		contactRepository: contactRepository,
		mq:                mq,
		mCounter:          mCounter,
	}
}

func (cs *ContactService) FindContacts(ctx context.Context) (domain.Contacts, error) {
	contacts, err := cs.contactRepository.FetchContacts(ctx)
	if err != nil {
		return nil, err
	}

	return contacts, nil
}

func (cs *ContactService) FindContactByID(ctx context.Context, id domain.ID) (*domain.Contact, error) {
	c, err := cs.contactRepository.FetchContactByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return c, nil
}

// SearchContacts runs the token against first name, last name and email
// independently and merges the result sets. Dedup is by contact id, so a
// contact matching on two fields appears once. Order follows the first
// field the contact matched on.
func (cs *ContactService) SearchContacts(ctx context.Context, token string) (domain.Contacts, error) {
	token = strings.TrimSpace(norm.NFC.String(token))
	if token == "" {
		return nil, nil
	}

	seen := make(map[domain.ID]struct{})
	var result domain.Contacts
	for _, field := range domain.SearchFields {
		matched, err := cs.contactRepository.SearchContactsByField(ctx, field, token)
		if err != nil {
			return nil, err
		}
		for _, c := range matched {
			if _, ok := seen[c.ID]; ok {
				continue
			}
			seen[c.ID] = struct{}{}
			result = append(result, c)
		}
	}

	return result, nil
}

func (cs *ContactService) FindUpcomingBirthdays(ctx context.Context) (domain.Contacts, error) {
	contacts, err := cs.contactRepository.FetchContacts(ctx)
	if err != nil {
		return nil, err
	}

	return domain.UpcomingBirthdays(time.Now(), contacts), nil
}

func (cs *ContactService) CreateContact(ctx context.Context, c domain.Contact) (*domain.Contact, error) {
	cRet, err := cs.contactRepository.CreateContact(ctx, c)
	if err != nil {
		return nil, err
	}

	if cRet != nil {
		cs.publishEvent(http.MethodPost, cRet)
	}

	cs.mCounter.WithLabelValues("contact_created_total").Inc()

	return cRet, nil
}

func (cs *ContactService) UpdateContact(ctx context.Context, c domain.Contact) (*domain.Contact, error) {
	cRet, err := cs.contactRepository.UpdateContact(ctx, c)
	if err != nil {
		return nil, err
	}

	if cRet != nil {
		cs.publishEvent(http.MethodPut, cRet)
	}

	cs.mCounter.WithLabelValues("contact_updated_total").Inc()

	return cRet, nil
}

func (cs *ContactService) DeleteContact(ctx context.Context, id domain.ID) (*domain.Contact, error) {
	cRet, err := cs.contactRepository.DeleteContact(ctx, id)
	if err != nil {
		return nil, err
	}

	if cRet != nil {
		cs.publishEvent(http.MethodDelete, cRet)
	}

	cs.mCounter.WithLabelValues("contact_deleted_total").Inc()

	return cRet, nil
}

func (cs *ContactService) publishEvent(method string, c *domain.Contact) {
	cs.mq.GetInputChan() <- mq.Event{
		Id:        uuid.New(),
		TS:        time.Now(),
		Method:    method,
		ContactID: strconv.FormatUint(uint64(c.ID), 10),
		Payload:   contact.ToResponseContact(*c),
	}
}
