package rest

const (
	// api
	RouteApiV1 = "/api/v1"

	// auth
	RouteAuth   = RouteApiV1 + "/auth"
	RouteSignup = RouteAuth + "/signup"
	RouteLogin  = RouteAuth + "/login"

	// contacts
	RouteContacts          = RouteApiV1 + "/contacts"
	RouteContact           = RouteContacts + "/:contact_id"
	RouteContactsSearch    = RouteContacts + "/search"
	RouteContactsBirthdays = RouteContacts + "/birthdays"

	// ops
	RouteHealth  = RouteApiV1 + "/healthz"
	RouteMetrics = RouteApiV1 + "/metrics"
)
