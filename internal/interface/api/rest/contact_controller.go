package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"contacts-api/internal/application/ports"
	domain "contacts-api/internal/domain/contact"
	contactDB "contacts-api/internal/infrastructure/db/postgres/contact"
	"contacts-api/internal/infrastructure/jwt"
	"contacts-api/internal/interface/api/rest/dto/contact"
	"contacts-api/internal/interface/api/rest/middleware"
	"contacts-api/internal/interface/api/rest/validator"
)

type ContactController struct {
	contactService ports.ContactService
	logger         *zap.Logger
}

func NewContactController(
	r *gin.Engine,
	contactService ports.ContactService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *ContactController {
	cc := &ContactController{
		contactService: contactService,
		logger:         logger,
	}

	r.GET(RouteContacts, cc.GetContactsHandler)
	r.GET(RouteContactsSearch, cc.SearchContactsHandler)
	r.GET(RouteContactsBirthdays, cc.GetUpcomingBirthdaysHandler)
	r.GET(RouteContact, cc.GetContactHandler)
	r.POST(RouteContacts, middleware.AuthMiddleware(jwtService), cc.CreateContactHandler)
	r.PUT(RouteContact, middleware.AuthMiddleware(jwtService), cc.UpdateContactHandler)
	r.DELETE(RouteContact, middleware.AuthMiddleware(jwtService), cc.DeleteContactHandler)

	return cc
}

func (cc *ContactController) GetContactsHandler(c *gin.Context) {
	contacts, err := cc.contactService.FindContacts(c.Request.Context())
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get contacts"},
		)
		cc.logger.Error("FindContacts() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, contact.ResponseData{
		Data: contact.ToResponseContacts(contacts),
	})
}

func (cc *ContactController) GetContactHandler(c *gin.Context) {
	id, err := validator.ValidateContactID(c.Param("contact_id"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": err.Error()},
		)
		return
	}

	cRet, err := cc.contactService.FindContactByID(c.Request.Context(), domain.ID(id))
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get a contact"},
		)
		cc.logger.Error("FindContactByID() error", zap.Error(err))
		return
	}

	if cRet == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "contact not found"},
		)
		return
	}

	c.JSON(http.StatusOK, contact.ToResponseContact(*cRet))
}

func (cc *ContactController) SearchContactsHandler(c *gin.Context) {
	token, err := validator.ValidateSearchToken(c.Query("q"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": err.Error()},
		)
		return
	}

	contacts, err := cc.contactService.SearchContacts(c.Request.Context(), token)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to search contacts"},
		)
		cc.logger.Error("SearchContacts() error", zap.Error(err))
		return
	}

	if len(contacts) == 0 {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "contact not found"},
		)
		return
	}

	c.JSON(http.StatusOK, contact.ResponseData{
		Data: contact.ToResponseContacts(contacts),
	})
}

func (cc *ContactController) GetUpcomingBirthdaysHandler(c *gin.Context) {
	contacts, err := cc.contactService.FindUpcomingBirthdays(c.Request.Context())
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get upcoming birthdays"},
		)
		cc.logger.Error("FindUpcomingBirthdays() error", zap.Error(err))
		return
	}

	if len(contacts) == 0 {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "contact not found"},
		)
		return
	}

	c.JSON(http.StatusOK, contact.ResponseData{
		Data: contact.ToResponseContacts(contacts),
	})
}

func (cc *ContactController) CreateContactHandler(c *gin.Context) {
	var req contact.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateContact(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	cDomain, err := contact.ToDomainContact(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	cRet, err := cc.contactService.CreateContact(c.Request.Context(), cDomain)
	if err != nil {
		if errors.Is(err, contactDB.ErrEmailAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to create a contact"},
		)
		cc.logger.Error("CreateContact() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusCreated, contact.ToResponseContact(*cRet))
}

func (cc *ContactController) UpdateContactHandler(c *gin.Context) {
	id, err := validator.ValidateContactID(c.Param("contact_id"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": err.Error()},
		)
		return
	}

	var req contact.Request
	if err = c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateContact(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	cDomain, err := contact.ToDomainContact(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	cDomain.ID = domain.ID(id)

	cRet, err := cc.contactService.UpdateContact(c.Request.Context(), cDomain)
	if err != nil {
		if errors.Is(err, contactDB.ErrEmailAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to update a contact"},
		)
		cc.logger.Error("UpdateContact() error", zap.Error(err))
		return
	}

	if cRet == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "contact not found"},
		)
		return
	}

	c.JSON(http.StatusOK, contact.ToResponseContact(*cRet))
}

func (cc *ContactController) DeleteContactHandler(c *gin.Context) {
	id, err := validator.ValidateContactID(c.Param("contact_id"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": err.Error()},
		)
		return
	}

	cRet, err := cc.contactService.DeleteContact(c.Request.Context(), domain.ID(id))
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to delete contact"},
		)
		cc.logger.Error("DeleteContact() error", zap.Error(err))
		return
	}

	if cRet == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "contact not found"},
		)
		return
	}

	c.JSON(http.StatusOK, contact.ToResponseContact(*cRet))
}
