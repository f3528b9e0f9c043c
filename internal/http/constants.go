package httpx

// CurrentPage constants identify the content template rendered inside the layout.
const (
	PageDashboard = "dashboard"
	PageLogin     = "login"
	PageNotFound  = "not-found"
	PageError     = "error"

	PageCustomers    = "customers"
	PageCustomerForm = "customer-form"

	PageFinancials = "financials"

	PagePartnershipCodes    = "partnership-codes"
	PagePartnershipCodeForm = "partnership-code-form"

	PagePartnershipStats = "partnership-stats"

	PageAccess     = "access"
	PageAccessForm = "access-form"

	PageConfirmDelete = "confirm-delete"
)

// Route paths shared by handlers, menu and redirects.
const (
	PathLogin            = "/login"
	PathLogout           = "/logout"
	PathDashboard        = "/dashboard"
	PathCustomers        = "/customers"
	PathFinancials       = "/financials"
	PathPartnershipCodes = "/partnership-codes"
	PathPartnershipStats = "/partnership-stats"
	PathAccess           = "/access-management"
)

// Template paths used for loading templates in tests and development.
const (
	TemplatePathFromRoot = "frontend/templates"
	TemplatePathFromTest = "../../frontend/templates"
)

// FormMode represents the mode of a form (create or edit).
type FormMode string

const (
	// FormModeEdit indicates the form is in edit mode.
	FormModeEdit FormMode = "edit"
	// FormModeCreate indicates the form is in create mode.
	FormModeCreate FormMode = "create"
)

// Localized fallbacks shown when the API gives no detail.
const (
	MsgLoadFailed     = "Veriler yüklenemedi"
	MsgLoginFailed    = "Giriş yapılamadı"
	MsgCustomerCreate = "Müşteri eklenirken hata oluştu"
	MsgCustomerDelete = "Müşteri silinirken hata oluştu"
	MsgCodeCreate     = "Kod eklenirken hata oluştu"
	MsgCodeDelete     = "Kod silinirken hata oluştu"
	MsgUserAction     = "Kullanıcı işleminde hata oluştu"
	MsgUserDelete     = "Kullanıcı silinirken hata oluştu"
)

//nolint:gochecknoglobals // static read-only lookup for templates
var contentTemplates = map[string]string{
	PageDashboard:           "dashboard-content",
	PageNotFound:            "not-found-content",
	PageError:               "error-content",
	PageCustomers:           "customers-content",
	PageCustomerForm:        "customer-form-content",
	PageFinancials:          "financials-content",
	PagePartnershipCodes:    "partnership-codes-content",
	PagePartnershipCodeForm: "partnership-code-form-content",
	PagePartnershipStats:    "partnership-stats-content",
	PageAccess:              "access-content",
	PageAccessForm:          "access-form-content",
	PageConfirmDelete:       "confirm-delete-content",
}

// ContentTemplateFor returns the content template name for a page,
// falling back to the dashboard.
func ContentTemplateFor(page string) string {
	if t, ok := contentTemplates[page]; ok {
		return t
	}
	return "dashboard-content"
}
