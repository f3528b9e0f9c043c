package httpx

import (
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/kampus/admin-console/internal/domain/model"
	apperrors "github.com/kampus/admin-console/internal/errors"
	"github.com/kampus/admin-console/internal/http/ui/viewmodel"
	"github.com/kampus/admin-console/internal/http/validation"
)

const (
	msgCustomerCreated = "Müşteri başarıyla eklendi"
	msgCustomerDeleted = "Müşteri silindi"

	campActionAdd       = "add"
	campActionRemovePfx = "remove:"
)

// customerCampRow is one editable camp line of the customer form.
type customerCampRow struct {
	Name  string
	Price string
}

// customerForm holds the submitted customer form values as typed by the user.
type customerForm struct {
	FullName        string
	Phone           string
	Email           string
	ClassLevel      string
	City            string
	PreviousYKSRank string
	PartnershipCode string
	Camps           []customerCampRow
	NewCampName     string
}

// Total sums the parsable camp prices for the running total under the camp list.
func (f customerForm) Total() float64 {
	var sum float64
	for _, c := range f.Camps {
		if p, err := validation.ParsePrice(c.Price); err == nil {
			sum += p
		}
	}
	return sum
}

// classLevels are the grade options offered by the customer form.
//
//nolint:gochecknoglobals // static read-only lookup for templates
var classLevels = []string{"9. Sınıf", "10. Sınıf", "11. Sınıf", "12. Sınıf", "Mezun"}

func readCustomerForm(r *http.Request) customerForm {
	f := customerForm{
		FullName:        r.PostFormValue("full_name"),
		Phone:           r.PostFormValue("phone"),
		Email:           r.PostFormValue("email"),
		ClassLevel:      r.PostFormValue("class_level"),
		City:            r.PostFormValue("city"),
		PreviousYKSRank: r.PostFormValue("previous_yks_rank"),
		PartnershipCode: r.PostFormValue("partnership_code"),
		NewCampName:     r.PostFormValue("new_camp_name"),
	}
	names := r.PostForm["camp_name"]
	prices := r.PostForm["camp_price"]
	for i, name := range names {
		row := customerCampRow{Name: name}
		if i < len(prices) {
			row.Price = prices[i]
		}
		f.Camps = append(f.Camps, row)
	}
	return f
}

// campLines converts the form rows. Prices that do not parse become zero;
// validate reports them separately.
func (f customerForm) campLines() []model.CampLine {
	lines := make([]model.CampLine, 0, len(f.Camps))
	for _, c := range f.Camps {
		p, _ := validation.ParsePrice(c.Price)
		lines = append(lines, model.CampLine{Name: c.Name, Price: p})
	}
	return lines
}

// addCamp appends an unpriced row when the name passes the camp line rules.
func (f customerForm) addCamp(name string) customerForm {
	lines := model.AddCampLine(f.campLines(), name)
	if len(lines) == len(f.Camps) {
		return f
	}
	rows := slices.Clone(f.Camps)
	f.Camps = append(rows, customerCampRow{Name: lines[len(lines)-1].Name})
	return f
}

// removeCamp drops row i; the remaining rows keep the prices as typed.
func (f customerForm) removeCamp(i int) customerForm {
	if len(model.RemoveCampLine(f.campLines(), i)) == len(f.Camps) {
		return f
	}
	f.Camps = slices.Delete(slices.Clone(f.Camps), i, i+1)
	return f
}

// validate runs the form checks and builds the create request.
func (f customerForm) validate() (model.CreateCustomerRequest, map[string]string) {
	v := validation.New().
		Validate("full_name", f.FullName, validation.Required("İsim-Soyisim", 200)).
		Validate("phone", f.Phone, validation.Required("Telefon", 32)).
		Validate("email", f.Email, validation.Required("E-posta", 254), validation.Email()).
		Validate("class_level", f.ClassLevel, validation.Optional("Sınıf", 50)).
		Validate("city", f.City, validation.Optional("Şehir", 100)).
		Validate("previous_yks_rank", f.PreviousYKSRank, validation.PositiveInt("Önceki YKS Derecesi"))
	for _, c := range f.Camps {
		v.Validate("prices", c.Price, validation.Price("Kamp fiyatı"))
	}

	req := model.CreateCustomerRequest{
		FullName:        f.FullName,
		Phone:           f.Phone,
		Email:           f.Email,
		ClassLevel:      f.ClassLevel,
		City:            f.City,
		PartnershipCode: f.PartnershipCode,
		Camps:           f.campLines(),
	}
	if rank, err := strconv.Atoi(strings.TrimSpace(f.PreviousYKSRank)); err == nil && rank > 0 {
		req.PreviousYKSRank = &rank
	}
	return req, v.Errors()
}

func customerFormMeta() PageMeta {
	return PageMeta{PageTitle: "Yeni Müşteri Ekle", CurrentPage: PageCustomerForm}
}

// CustomerList serves the customer list.
func (h *UIHandlers) CustomerList(w http.ResponseWriter, r *http.Request) {
	h.renderCustomers(w, r, nil)
}

func (h *UIHandlers) renderCustomers(w http.ResponseWriter, r *http.Request, flash *viewmodel.Flash) {
	meta := PageMeta{PageTitle: "Müşteri Yönetimi", CurrentPage: PageCustomers}
	overview, err := h.Customers.Overview(r.Context(), sessionToken(r.Context()))
	if err != nil {
		h.loadFailed(w, r, meta, err)
		return
	}
	data := NewTemplateData(r, meta).
		WithFlash(flash).
		With("Customers", overview.Customers).
		With("ActiveCodes", overview.ActiveCodes).
		Build()
	h.render(w, r, data)
}

// formCodes loads the code options of the customer form. A failed fetch keeps
// the form usable with an empty select; false means the response was written.
func (h *UIHandlers) formCodes(w http.ResponseWriter, r *http.Request) ([]model.PartnershipCode, bool, bool) {
	codes, err := h.Customers.ActiveCodes(r.Context(), sessionToken(r.Context()))
	if err == nil {
		return codes, false, true
	}
	if h.handleAPIError(w, r, err) {
		return nil, true, false
	}
	h.logger().WarnContext(r.Context(), "failed to load partnership codes for customer form", "error", err)
	return nil, true, true
}

func (h *UIHandlers) customerFormData(f customerForm, codes []model.PartnershipCode, codesFailed bool) map[string]any {
	return map[string]any{
		"Form":        f,
		"Codes":       codes,
		"CodesFailed": codesFailed,
		"ClassLevels": classLevels,
	}
}

// CustomerNew renders the empty customer form.
func (h *UIHandlers) CustomerNew(w http.ResponseWriter, r *http.Request) {
	codes, failed, ok := h.formCodes(w, r)
	if !ok {
		return
	}
	builder := NewTemplateData(r, customerFormMeta())
	for k, v := range h.customerFormData(customerForm{}, codes, failed) {
		builder.With(k, v)
	}
	h.render(w, r, builder.Build())
}

// CustomerCamps adds or removes a camp line and re-renders the form.
// Nothing is sent to the API except the code options lookup.
func (h *UIHandlers) CustomerCamps(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.NotFound(w, r)
		return
	}
	f := readCustomerForm(r)
	action := r.PostFormValue("camp_action")
	switch {
	case action == campActionAdd:
		f = f.addCamp(f.NewCampName)
		f.NewCampName = ""
	case strings.HasPrefix(action, campActionRemovePfx):
		if i, err := strconv.Atoi(strings.TrimPrefix(action, campActionRemovePfx)); err == nil {
			f = f.removeCamp(i)
		}
	}

	codes, failed, ok := h.formCodes(w, r)
	if !ok {
		return
	}
	builder := NewTemplateData(r, customerFormMeta())
	for k, v := range h.customerFormData(f, codes, failed) {
		builder.With(k, v)
	}
	h.render(w, r, builder.Build())
}

// CustomerCreate validates the form and creates the customer.
func (h *UIHandlers) CustomerCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.NotFound(w, r)
		return
	}
	f := readCustomerForm(r)
	req, fieldErrs := f.validate()

	renderFailure := func(err error, fieldErrs map[string]string) {
		codes, failed, ok := h.formCodes(w, r)
		if !ok {
			return
		}
		RenderError(ErrorOpts{
			W:           w,
			R:           r,
			Err:         err,
			FieldErrors: fieldErrs,
			Fallback:    MsgCustomerCreate,
			Renderer:    h.renderPage,
			PageMeta:    customerFormMeta(),
			Data:        h.customerFormData(f, codes, failed),
			ShowToast:   true,
		})
	}

	if len(fieldErrs) > 0 {
		renderFailure(nil, fieldErrs)
		return
	}

	created, err := h.Customers.Create(r.Context(), sessionToken(r.Context()), req)
	if err != nil {
		if h.handleAPIError(w, r, err) {
			return
		}
		h.logger().WarnContext(r.Context(), "customer create failed", "error", err, "code", apperrors.GetCode(err))
		renderFailure(err, nil)
		return
	}
	h.logger().InfoContext(r.Context(), "customer created", "customer_id", created.ID)
	h.afterMutation(w, r, PathCustomers, msgCustomerCreated, h.renderCustomers)
}

func (h *UIHandlers) customerDeleteSpec() deleteSpec {
	return deleteSpec{
		ListPath:       PathCustomers,
		Title:          "Müşteri Sil",
		ConfirmMessage: "Bu müşteriyi silmek istediğinize emin misiniz? (Ödemesi alınmadığı için silinecek)",
		ConfirmLabel:   "Sil",
		SuccessMessage: msgCustomerDeleted,
		FailMessage:    MsgCustomerDelete,
		Delete:         h.Customers.Delete,
		List:           h.renderCustomers,
	}
}

// CustomerDeleteConfirm renders the delete confirmation for non-htmx clients.
func (h *UIHandlers) CustomerDeleteConfirm(w http.ResponseWriter, r *http.Request) {
	h.confirmDelete(w, r, h.customerDeleteSpec())
}

// CustomerDelete deletes an unpaid customer once confirmed.
func (h *UIHandlers) CustomerDelete(w http.ResponseWriter, r *http.Request) {
	h.handleDelete(w, r, h.customerDeleteSpec())
}
