package contact

import (
	"time"

	domain "contacts-api/internal/domain/contact"
)

func fromDBModel(model *Contact) *domain.Contact {
	var born time.Time
	if model.BornDate != nil {
		born = *model.BornDate
	}

	var c = &domain.Contact{
		ID:        domain.ID(model.ID),
		FirstName: model.FirstName,
		LastName:  model.LastName,
		Email:     model.Email,
		Phone:     model.Phone,
		BornDate:  born,
		AddData:   model.AddData,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}

	return c
}

func fromDBModels(models *Contacts) domain.Contacts {
	cs := make(domain.Contacts, len(*models))
	for idx, c := range *models {
		cs[idx] = fromDBModel(c)
	}

	return cs
}

func toDBBornDate(born time.Time) *time.Time {
	if born.IsZero() {
		return nil
	}
	return &born
}
