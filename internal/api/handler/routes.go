package handler

import (
	"net/http"

	"github.com/contafy/bookkeeper-api/internal/api/handler/router"
	"github.com/contafy/bookkeeper-api/internal/usecases/authenticating"
	"github.com/contafy/bookkeeper-api/internal/usecases/bracketing"
	"github.com/contafy/bookkeeper-api/internal/usecases/company"
	"github.com/contafy/bookkeeper-api/internal/usecases/filing"
	"github.com/contafy/bookkeeper-api/internal/usecases/invoicing"
	"github.com/contafy/bookkeeper-api/internal/usecases/registering"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:    "/v1/me",
			Method:  http.MethodGet,
			Handler: GetMe(service),
		},
	}
}

func Members(service registering.Registrar) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/members",
			Method:  http.MethodPost,
			Handler: CreateMember(service),
		},
		{
			Path:    "/v1/members/:id",
			Method:  http.MethodGet,
			Handler: GetMember(service),
		},
	}
}

func Companies(service company.CompanyService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/companies",
			Method:  http.MethodPost,
			Handler: CreateCompany(service),
		},
		{
			Path:    "/v1/companies",
			Method:  http.MethodGet,
			Handler: ListCompanies(service),
		},
	}
}

func InvoiceRecipients(service registering.Registrar) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/invoice-recipients",
			Method:  http.MethodPost,
			Handler: CreateInvoiceRecipient(service),
		},
	}
}

func Invoices(service invoicing.Issuer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/invoices",
			Method:  http.MethodPost,
			Handler: CreateInvoice(service),
		},
	}
}

func Cnaes(service registering.Registrar) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cnaes",
			Method:  http.MethodPost,
			Handler: CreateCnae(service),
		},
		{
			Path:    "/v1/cnaes/:id",
			Method:  http.MethodPut,
			Handler: UpdateCnae(service),
		},
	}
}

func SimpleNationalGroups(service bracketing.Scheduler) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/configurations/simple-national-groups",
			Method:  http.MethodPost,
			Handler: CreateSimpleNationalGroups(service),
		},
	}
}

func Das(service filing.Filer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/das",
			Method:  http.MethodPost,
			Handler: GenerateDas(service),
		},
	}
}
