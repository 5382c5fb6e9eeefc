package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"contacts-api/internal/application/ports"
	domain "contacts-api/internal/domain/contact"
	contactDB "contacts-api/internal/infrastructure/db/postgres/contact"
	jwtSvc "contacts-api/internal/infrastructure/jwt"
	"contacts-api/internal/interface/api/rest/dto/contact"
	"contacts-api/internal/interface/api/rest/middleware"
)

type FakeContactService struct {
	FindContactsFunc          func(ctx context.Context) (domain.Contacts, error)
	FindContactByIDFunc       func(ctx context.Context, id domain.ID) (*domain.Contact, error)
	SearchContactsFunc        func(ctx context.Context, token string) (domain.Contacts, error)
	FindUpcomingBirthdaysFunc func(ctx context.Context) (domain.Contacts, error)
	CreateContactFunc         func(ctx context.Context, c domain.Contact) (*domain.Contact, error)
	UpdateContactFunc         func(ctx context.Context, c domain.Contact) (*domain.Contact, error)
	DeleteContactFunc         func(ctx context.Context, id domain.ID) (*domain.Contact, error)
}

func (f *FakeContactService) FindContacts(ctx context.Context) (domain.Contacts, error) {
	if f.FindContactsFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FindContactsFunc(ctx)
}
func (f *FakeContactService) FindContactByID(ctx context.Context, id domain.ID) (*domain.Contact, error) {
	if f.FindContactByIDFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FindContactByIDFunc(ctx, id)
}
func (f *FakeContactService) SearchContacts(ctx context.Context, token string) (domain.Contacts, error) {
	if f.SearchContactsFunc == nil {
		return nil, errors.New("not used")
	}
	return f.SearchContactsFunc(ctx, token)
}
func (f *FakeContactService) FindUpcomingBirthdays(ctx context.Context) (domain.Contacts, error) {
	if f.FindUpcomingBirthdaysFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FindUpcomingBirthdaysFunc(ctx)
}
func (f *FakeContactService) CreateContact(ctx context.Context, c domain.Contact) (*domain.Contact, error) {
	if f.CreateContactFunc == nil {
		return nil, errors.New("not used")
	}
	return f.CreateContactFunc(ctx, c)
}
func (f *FakeContactService) UpdateContact(ctx context.Context, c domain.Contact) (*domain.Contact, error) {
	if f.UpdateContactFunc == nil {
		return nil, errors.New("not used")
	}
	return f.UpdateContactFunc(ctx, c)
}
func (f *FakeContactService) DeleteContact(ctx context.Context, id domain.ID) (*domain.Contact, error) {
	if f.DeleteContactFunc == nil {
		return nil, errors.New("not used")
	}
	return f.DeleteContactFunc(ctx, id)
}

func setupContactRouter(t *testing.T, cs ports.ContactService, withJWT bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	logger := zap.NewNop()
	j := jwtSvc.New("test-secret")

	cc := &ContactController{
		contactService: cs,
		logger:         logger,
	}

	r.GET("/contacts", cc.GetContactsHandler)
	r.GET("/contacts/search", cc.SearchContactsHandler)
	r.GET("/contacts/birthdays", cc.GetUpcomingBirthdaysHandler)
	r.GET("/contacts/:contact_id", cc.GetContactHandler)
	if withJWT {
		r.POST("/contacts", middleware.AuthMiddleware(j), cc.CreateContactHandler)
		r.PUT("/contacts/:contact_id", middleware.AuthMiddleware(j), cc.UpdateContactHandler)
		r.DELETE("/contacts/:contact_id", middleware.AuthMiddleware(j), cc.DeleteContactHandler)
	} else {
		r.POST("/contacts", cc.CreateContactHandler)
		r.PUT("/contacts/:contact_id", cc.UpdateContactHandler)
		r.DELETE("/contacts/:contact_id", cc.DeleteContactHandler)
	}

	return r
}

func doReq(t *testing.T, r *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf *bytes.Reader
	switch v := body.(type) {
	case nil:
		buf = bytes.NewReader(nil)
	case string:
		buf = bytes.NewReader([]byte(v))
	default:
		b, err := json.Marshal(v)
		require.NoError(t, err)
		buf = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, path, buf)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func validContactRequest() contact.Request {
	return contact.Request{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane.doe@example.com",
		Phone:     "+380441234567",
		BornDate:  "1990-03-10",
		AddData:   "some text",
	}
}

func someDomainContact(id domain.ID) *domain.Contact {
	now := time.Now()
	return &domain.Contact{
		ID:        id,
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane.doe@example.com",
		Phone:     "+380441234567",
		BornDate:  time.Date(1990, time.March, 10, 0, 0, 0, 0, time.UTC),
		AddData:   "some text",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func authHeader(t *testing.T) map[string]string {
	t.Helper()

	tok, err := jwtSvc.New("test-secret").GenerateJWT("1", "admin@example.com", time.Hour)
	require.NoError(t, err)
	return map[string]string{"Authorization": "Bearer " + tok}
}

func TestContactController_GetContactsHandler(t *testing.T) {
	tests := []struct {
		name       string
		mockCS     func() ports.ContactService
		wantStatus int
		wantErr    string
	}{
		{
			name: "500 when service fails",
			mockCS: func() ports.ContactService {
				return &FakeContactService{
					FindContactsFunc: func(ctx context.Context) (domain.Contacts, error) {
						return nil, errors.New("db error")
					},
				}
			},
			wantStatus: http.StatusInternalServerError,
			wantErr:    "failed to get contacts",
		},
		{
			name: "200 success with empty store",
			mockCS: func() ports.ContactService {
				return &FakeContactService{
					FindContactsFunc: func(ctx context.Context) (domain.Contacts, error) {
						return nil, nil
					},
				}
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "200 success",
			mockCS: func() ports.ContactService {
				return &FakeContactService{
					FindContactsFunc: func(ctx context.Context) (domain.Contacts, error) {
						return domain.Contacts{someDomainContact(1)}, nil
					},
				}
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := setupContactRouter(t, tt.mockCS(), false)
			rr := doReq(t, r, http.MethodGet, "/contacts", nil, nil)
			require.Equal(t, tt.wantStatus, rr.Code)

			if tt.wantErr != "" {
				var resp map[string]any
				_ = json.Unmarshal(rr.Body.Bytes(), &resp)
				assert.Equal(t, tt.wantErr, resp["error"])
			}
		})
	}
}

func TestContactController_GetContactHandler(t *testing.T) {
	tests := []struct {
		name       string
		contactID  string
		mockCS     func() ports.ContactService
		wantStatus int
		wantErr    string
	}{
		{
			name:       "400 invalid id",
			contactID:  "not-a-number",
			mockCS:     func() ports.ContactService { return &FakeContactService{} },
			wantStatus: http.StatusBadRequest,
			wantErr:    "contact_id must be a positive integer",
		},
		{
			name:      "500 service error",
			contactID: "7",
			mockCS: func() ports.ContactService {
				return &FakeContactService{
					FindContactByIDFunc: func(ctx context.Context, id domain.ID) (*domain.Contact, error) {
						return nil, errors.New("db error")
					},
				}
			},
			wantStatus: http.StatusInternalServerError,
			wantErr:    "failed to get a contact",
		},
		{
			name:      "404 not found",
			contactID: "7",
			mockCS: func() ports.ContactService {
				return &FakeContactService{
					FindContactByIDFunc: func(ctx context.Context, id domain.ID) (*domain.Contact, error) {
						return nil, nil
					},
				}
			},
			wantStatus: http.StatusNotFound,
			wantErr:    "contact not found",
		},
		{
			name:      "200 success",
			contactID: "7",
			mockCS: func() ports.ContactService {
				return &FakeContactService{
					FindContactByIDFunc: func(ctx context.Context, id domain.ID) (*domain.Contact, error) {
						assert.Equal(t, domain.ID(7), id)
						return someDomainContact(7), nil
					},
				}
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := setupContactRouter(t, tt.mockCS(), false)
			rr := doReq(t, r, http.MethodGet, "/contacts/"+tt.contactID, nil, nil)
			require.Equal(t, tt.wantStatus, rr.Code)

			if tt.wantErr != "" {
				var resp map[string]any
				_ = json.Unmarshal(rr.Body.Bytes(), &resp)
				assert.Equal(t, tt.wantErr, resp["error"])
			}
		})
	}
}

func TestContactController_SearchContactsHandler(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		mockCS     func() ports.ContactService
		wantStatus int
		wantErr    string
		wantLen    int
	}{
		{
			name:       "400 empty token",
			query:      "",
			mockCS:     func() ports.ContactService { return &FakeContactService{} },
			wantStatus: http.StatusBadRequest,
			wantErr:    "search token is required",
		},
		{
			name:  "500 service error",
			query: "?q=max",
			mockCS: func() ports.ContactService {
				return &FakeContactService{
					SearchContactsFunc: func(ctx context.Context, token string) (domain.Contacts, error) {
						return nil, errors.New("db error")
					},
				}
			},
			wantStatus: http.StatusInternalServerError,
			wantErr:    "failed to search contacts",
		},
		{
			name:  "404 no match",
			query: "?q=nobody",
			mockCS: func() ports.ContactService {
				return &FakeContactService{
					SearchContactsFunc: func(ctx context.Context, token string) (domain.Contacts, error) {
						return nil, nil
					},
				}
			},
			wantStatus: http.StatusNotFound,
			wantErr:    "contact not found",
		},
		{
			name:  "200 success",
			query: "?q=jane",
			mockCS: func() ports.ContactService {
				return &FakeContactService{
					SearchContactsFunc: func(ctx context.Context, token string) (domain.Contacts, error) {
						assert.Equal(t, "jane", token)
						return domain.Contacts{someDomainContact(1), someDomainContact(2)}, nil
					},
				}
			},
			wantStatus: http.StatusOK,
			wantLen:    2,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := setupContactRouter(t, tt.mockCS(), false)
			rr := doReq(t, r, http.MethodGet, "/contacts/search"+tt.query, nil, nil)
			require.Equal(t, tt.wantStatus, rr.Code)

			if tt.wantErr != "" {
				var resp map[string]any
				_ = json.Unmarshal(rr.Body.Bytes(), &resp)
				assert.Equal(t, tt.wantErr, resp["error"])
			}
			if tt.wantLen > 0 {
				var resp contact.ResponseData
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Len(t, resp.Data, tt.wantLen)
			}
		})
	}
}

func TestContactController_GetUpcomingBirthdaysHandler(t *testing.T) {
	tests := []struct {
		name       string
		mockCS     func() ports.ContactService
		wantStatus int
		wantErr    string
	}{
		{
			name: "500 service error",
			mockCS: func() ports.ContactService {
				return &FakeContactService{
					FindUpcomingBirthdaysFunc: func(ctx context.Context) (domain.Contacts, error) {
						return nil, errors.New("db error")
					},
				}
			},
			wantStatus: http.StatusInternalServerError,
			wantErr:    "failed to get upcoming birthdays",
		},
		{
			name: "404 none upcoming",
			mockCS: func() ports.ContactService {
				return &FakeContactService{
					FindUpcomingBirthdaysFunc: func(ctx context.Context) (domain.Contacts, error) {
						return nil, nil
					},
				}
			},
			wantStatus: http.StatusNotFound,
			wantErr:    "contact not found",
		},
		{
			name: "200 success",
			mockCS: func() ports.ContactService {
				return &FakeContactService{
					FindUpcomingBirthdaysFunc: func(ctx context.Context) (domain.Contacts, error) {
						return domain.Contacts{someDomainContact(1)}, nil
					},
				}
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := setupContactRouter(t, tt.mockCS(), false)
			rr := doReq(t, r, http.MethodGet, "/contacts/birthdays", nil, nil)
			require.Equal(t, tt.wantStatus, rr.Code)

			if tt.wantErr != "" {
				var resp map[string]any
				_ = json.Unmarshal(rr.Body.Bytes(), &resp)
				assert.Equal(t, tt.wantErr, resp["error"])
			}
		})
	}
}

func TestContactController_CreateContactHandler(t *testing.T) {
	validReq := validContactRequest()

	tests := []struct {
		name       string
		headers    map[string]string
		body       any
		mockCS     func() ports.ContactService
		wantStatus int
		wantErr    string
	}{
		{
			name:       "401 missing auth header",
			headers:    nil,
			body:       validReq,
			mockCS:     func() ports.ContactService { return &FakeContactService{} },
			wantStatus: http.StatusUnauthorized,
			wantErr:    "missing Authorization header",
		},
		{
			name:       "400 invalid JSON",
			headers:    authHeader(t),
			body:       "{bad json",
			mockCS:     func() ports.ContactService { return &FakeContactService{} },
			wantStatus: http.StatusBadRequest,
			wantErr:    "invalid request body",
		},
		{
			name:    "400 validation error",
			headers: authHeader(t),
			body: contact.Request{
				Email:    "bad",
				BornDate: "1990-03-10",
			},
			mockCS:     func() ports.ContactService { return &FakeContactService{} },
			wantStatus: http.StatusBadRequest,
			wantErr:    "invalid request body",
		},
		{
			name:    "400 bad born_date",
			headers: authHeader(t),
			body: contact.Request{
				Email:    "jane@example.com",
				BornDate: "10-03-1990",
			},
			mockCS:     func() ports.ContactService { return &FakeContactService{} },
			wantStatus: http.StatusBadRequest,
			wantErr:    "invalid request body",
		},
		{
			name:    "409 email already exists",
			headers: authHeader(t),
			body:    validReq,
			mockCS: func() ports.ContactService {
				return &FakeContactService{
					CreateContactFunc: func(ctx context.Context, c domain.Contact) (*domain.Contact, error) {
						return nil, contactDB.ErrEmailAlreadyExists
					},
				}
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:    "500 service error",
			headers: authHeader(t),
			body:    validReq,
			mockCS: func() ports.ContactService {
				return &FakeContactService{
					CreateContactFunc: func(ctx context.Context, c domain.Contact) (*domain.Contact, error) {
						return nil, errors.New("db error")
					},
				}
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:    "201 success",
			headers: authHeader(t),
			body:    validReq,
			mockCS: func() ports.ContactService {
				return &FakeContactService{
					CreateContactFunc: func(ctx context.Context, c domain.Contact) (*domain.Contact, error) {
						assert.Equal(t, validReq.Email, c.Email)
						return someDomainContact(1), nil
					},
				}
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:    "201 email stored trimmed and lowercased",
			headers: authHeader(t),
			body: contact.Request{
				Email:    "  Jane.Doe@Example.COM ",
				BornDate: "1990-03-10",
			},
			mockCS: func() ports.ContactService {
				return &FakeContactService{
					CreateContactFunc: func(ctx context.Context, c domain.Contact) (*domain.Contact, error) {
						assert.Equal(t, "jane.doe@example.com", c.Email)
						return someDomainContact(1), nil
					},
				}
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:    "201 defaults applied for omitted fields",
			headers: authHeader(t),
			body: contact.Request{
				Email:    "max@example.com",
				BornDate: "1990-03-10",
			},
			mockCS: func() ports.ContactService {
				return &FakeContactService{
					CreateContactFunc: func(ctx context.Context, c domain.Contact) (*domain.Contact, error) {
						assert.Equal(t, contact.DefaultFirstName, c.FirstName)
						assert.Equal(t, contact.DefaultLastName, c.LastName)
						assert.Equal(t, contact.DefaultPhone, c.Phone)
						assert.Equal(t, contact.DefaultAddData, c.AddData)
						return someDomainContact(1), nil
					},
				}
			},
			wantStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := setupContactRouter(t, tt.mockCS(), true)
			rr := doReq(t, r, http.MethodPost, "/contacts", tt.body, tt.headers)
			require.Equal(t, tt.wantStatus, rr.Code)

			if tt.wantErr != "" {
				var resp map[string]any
				_ = json.Unmarshal(rr.Body.Bytes(), &resp)
				assert.Equal(t, tt.wantErr, resp["error"])
			}
		})
	}
}

func TestContactController_UpdateContactHandler(t *testing.T) {
	validReq := validContactRequest()

	tests := []struct {
		name       string
		contactID  string
		headers    map[string]string
		body       any
		mockCS     func() ports.ContactService
		wantStatus int
		wantErr    string
	}{
		{
			name:       "401 missing header",
			contactID:  "4",
			headers:    nil,
			body:       validReq,
			mockCS:     func() ports.ContactService { return &FakeContactService{} },
			wantStatus: http.StatusUnauthorized,
			wantErr:    "missing Authorization header",
		},
		{
			name:       "400 invalid id",
			contactID:  "zero",
			headers:    authHeader(t),
			body:       validReq,
			mockCS:     func() ports.ContactService { return &FakeContactService{} },
			wantStatus: http.StatusBadRequest,
			wantErr:    "contact_id must be a positive integer",
		},
		{
			name:      "404 not found (nil)",
			contactID: "4",
			headers:   authHeader(t),
			body:      validReq,
			mockCS: func() ports.ContactService {
				return &FakeContactService{
					UpdateContactFunc: func(ctx context.Context, c domain.Contact) (*domain.Contact, error) {
						return nil, nil
					},
				}
			},
			wantStatus: http.StatusNotFound,
			wantErr:    "contact not found",
		},
		{
			name:      "409 email taken by another contact",
			contactID: "4",
			headers:   authHeader(t),
			body:      validReq,
			mockCS: func() ports.ContactService {
				return &FakeContactService{
					UpdateContactFunc: func(ctx context.Context, c domain.Contact) (*domain.Contact, error) {
						return nil, contactDB.ErrEmailAlreadyExists
					},
				}
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:      "200 success",
			contactID: "4",
			headers:   authHeader(t),
			body:      validReq,
			mockCS: func() ports.ContactService {
				return &FakeContactService{
					UpdateContactFunc: func(ctx context.Context, c domain.Contact) (*domain.Contact, error) {
						assert.Equal(t, domain.ID(4), c.ID)
						return someDomainContact(4), nil
					},
				}
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := setupContactRouter(t, tt.mockCS(), true)
			rr := doReq(t, r, http.MethodPut, "/contacts/"+tt.contactID, tt.body, tt.headers)
			require.Equal(t, tt.wantStatus, rr.Code)

			if tt.wantErr != "" {
				var resp map[string]any
				_ = json.Unmarshal(rr.Body.Bytes(), &resp)
				assert.Equal(t, tt.wantErr, resp["error"])
			}
		})
	}
}

func TestContactController_DeleteContactHandler(t *testing.T) {
	tests := []struct {
		name       string
		contactID  string
		headers    map[string]string
		mockCS     func() ports.ContactService
		wantStatus int
		wantErr    string
	}{
		{
			name:       "401 missing header",
			contactID:  "9",
			headers:    nil,
			mockCS:     func() ports.ContactService { return &FakeContactService{} },
			wantStatus: http.StatusUnauthorized,
			wantErr:    "missing Authorization header",
		},
		{
			name:       "400 invalid id",
			contactID:  "-1",
			headers:    authHeader(t),
			mockCS:     func() ports.ContactService { return &FakeContactService{} },
			wantStatus: http.StatusBadRequest,
			wantErr:    "contact_id must be a positive integer",
		},
		{
			name:      "404 not found",
			contactID: "9",
			headers:   authHeader(t),
			mockCS: func() ports.ContactService {
				return &FakeContactService{
					DeleteContactFunc: func(ctx context.Context, id domain.ID) (*domain.Contact, error) {
						return nil, nil
					},
				}
			},
			wantStatus: http.StatusNotFound,
			wantErr:    "contact not found",
		},
		{
			name:      "500 service error",
			contactID: "9",
			headers:   authHeader(t),
			mockCS: func() ports.ContactService {
				return &FakeContactService{
					DeleteContactFunc: func(ctx context.Context, id domain.ID) (*domain.Contact, error) {
						return nil, errors.New("db error")
					},
				}
			},
			wantStatus: http.StatusInternalServerError,
			wantErr:    "failed to delete contact",
		},
		{
			name:      "200 success returns removed contact",
			contactID: "9",
			headers:   authHeader(t),
			mockCS: func() ports.ContactService {
				return &FakeContactService{
					DeleteContactFunc: func(ctx context.Context, id domain.ID) (*domain.Contact, error) {
						return someDomainContact(9), nil
					},
				}
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := setupContactRouter(t, tt.mockCS(), true)
			rr := doReq(t, r, http.MethodDelete, "/contacts/"+tt.contactID, nil, tt.headers)
			require.Equal(t, tt.wantStatus, rr.Code)

			if tt.wantErr != "" {
				var resp map[string]any
				_ = json.Unmarshal(rr.Body.Bytes(), &resp)
				assert.Equal(t, tt.wantErr, resp["error"])
			}

			if tt.wantStatus == http.StatusOK {
				var resp contact.Contact
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, uint64(9), resp.ID)
			}
		})
	}
}
