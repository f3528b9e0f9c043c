package httpx

import (
	"net/http"
	"strconv"

	domainauth "github.com/kampus/admin-console/internal/domain/auth"
	"github.com/kampus/admin-console/internal/domain/model"
	"github.com/kampus/admin-console/internal/http/ui/viewmodel"
	"github.com/kampus/admin-console/internal/http/validation"
)

const (
	msgUserCreated = "Kullanıcı başarıyla eklendi"
	msgUserUpdated = "Kullanıcı güncellendi"
	msgUserDeleted = "Kullanıcının erişimi kaldırıldı"
)

// permissionCell is one flag of a user, as shown in the list and the form.
type permissionCell struct {
	Key   string
	Label string
	On    bool
}

func permissionCells(p domainauth.Permissions) []permissionCell {
	cells := make([]permissionCell, 0, len(domainauth.AllPermissions()))
	for _, k := range domainauth.AllPermissions() {
		cells = append(cells, permissionCell{Key: string(k), Label: PermissionLabel(k), On: p.Has(k)})
	}
	return cells
}

// accessRow is one line of the access list.
type accessRow struct {
	User        model.ManagedUser
	Permissions []permissionCell
}

// accessForm holds the values of the user create/edit form.
type accessForm struct {
	ID          int64
	Email       string
	IsActive    bool
	Permissions []permissionCell
	Mode        FormMode
	Action      string
}

// readPermissionFlags reads one checkbox per permission key.
func readPermissionFlags(r *http.Request) model.PermissionFlags {
	p := domainauth.Permissions{}
	for _, k := range domainauth.AllPermissions() {
		if r.PostFormValue(string(k)) != "" {
			p[k] = true
		}
	}
	return model.FlagsFrom(p)
}

func flagsPermissions(f model.PermissionFlags) domainauth.Permissions {
	u := model.ManagedUser{
		CanManageCustomers:        f.CanManageCustomers,
		CanViewFinancials:         f.CanViewFinancials,
		CanManagePartnershipCodes: f.CanManagePartnershipCodes,
		CanViewPartnershipStats:   f.CanViewPartnershipStats,
		CanManageAccess:           f.CanManageAccess,
	}
	return u.Permissions()
}

func accessFormMeta(mode FormMode) PageMeta {
	if mode == FormModeEdit {
		return PageMeta{PageTitle: "Kullanıcı Düzenle", CurrentPage: PageAccessForm}
	}
	return PageMeta{PageTitle: "Yeni Kullanıcı Ekle", CurrentPage: PageAccessForm}
}

// AccessManagement serves the staff account list.
func (h *UIHandlers) AccessManagement(w http.ResponseWriter, r *http.Request) {
	h.renderAccess(w, r, nil)
}

func (h *UIHandlers) renderAccess(w http.ResponseWriter, r *http.Request, flash *viewmodel.Flash) {
	meta := PageMeta{PageTitle: "Erişim Yönetimi", CurrentPage: PageAccess}
	users, err := h.Access.List(r.Context(), sessionToken(r.Context()))
	if err != nil {
		h.loadFailed(w, r, meta, err)
		return
	}
	rows := make([]accessRow, 0, len(users))
	for _, u := range users {
		rows = append(rows, accessRow{User: u, Permissions: permissionCells(u.Permissions())})
	}
	columns := make([]string, 0, len(domainauth.AllPermissions()))
	for _, k := range domainauth.AllPermissions() {
		columns = append(columns, PermissionLabel(k))
	}
	data := NewTemplateData(r, meta).
		WithFlash(flash).
		With("Users", rows).
		With("Columns", columns).
		Build()
	h.render(w, r, data)
}

func (h *UIHandlers) renderAccessForm(w http.ResponseWriter, r *http.Request, form accessForm) {
	data := NewTemplateData(r, accessFormMeta(form.Mode)).With("Form", form).Build()
	h.render(w, r, data)
}

// AccessNew renders the empty create form.
func (h *UIHandlers) AccessNew(w http.ResponseWriter, r *http.Request) {
	h.renderAccessForm(w, r, accessForm{
		IsActive:    true,
		Permissions: permissionCells(nil),
		Mode:        FormModeCreate,
		Action:      PathAccess,
	})
}

// AccessEdit renders the edit form of one account. The email is read-only.
func (h *UIHandlers) AccessEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.NotFound(w, r)
		return
	}
	u, err := h.Access.Get(r.Context(), sessionToken(r.Context()), id)
	if err != nil {
		if h.handleAPIError(w, r, err) {
			return
		}
		h.NotFound(w, r)
		return
	}
	h.renderAccessForm(w, r, accessForm{
		ID:          u.ID,
		Email:       u.Email,
		IsActive:    u.IsActive,
		Permissions: permissionCells(u.Permissions()),
		Mode:        FormModeEdit,
		Action:      PathAccess + "/" + strconv.FormatInt(u.ID, 10),
	})
}

func (h *UIHandlers) renderAccessFailure(w http.ResponseWriter, r *http.Request, form accessForm, err error, fieldErrs map[string]string) {
	RenderError(ErrorOpts{
		W:           w,
		R:           r,
		Err:         err,
		FieldErrors: fieldErrs,
		Fallback:    MsgUserAction,
		Renderer:    h.renderPage,
		PageMeta:    accessFormMeta(form.Mode),
		Data:        map[string]any{"Form": form},
		ShowToast:   true,
	})
}

// AccessCreate creates a staff account.
func (h *UIHandlers) AccessCreate(w http.ResponseWriter, r *http.Request) {
	flags := readPermissionFlags(r)
	form := accessForm{
		Email:       r.PostFormValue("email"),
		IsActive:    true,
		Permissions: permissionCells(flagsPermissions(flags)),
		Mode:        FormModeCreate,
		Action:      PathAccess,
	}
	password := r.PostFormValue("password")

	v := validation.New().
		Validate("email", form.Email, validation.Required("E-posta", 254), validation.Email()).
		Validate("password", password, validation.Required("Şifre", 128), validation.MinLength("Şifre", 6))
	if !v.Valid() {
		h.renderAccessFailure(w, r, form, nil, v.Errors())
		return
	}

	req := model.CreateUserRequest{Email: form.Email, Password: password, PermissionFlags: flags}
	created, err := h.Access.Create(r.Context(), sessionToken(r.Context()), req)
	if err != nil {
		if h.handleAPIError(w, r, err) {
			return
		}
		h.logger().WarnContext(r.Context(), "user create failed", "error", err)
		h.renderAccessFailure(w, r, form, err, nil)
		return
	}
	h.logger().InfoContext(r.Context(), "staff account created", "user_id", created.ID)
	h.afterMutation(w, r, PathAccess, msgUserCreated, h.renderAccess)
}

// AccessUpdate changes flags, the active state and optionally the password.
func (h *UIHandlers) AccessUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.NotFound(w, r)
		return
	}
	flags := readPermissionFlags(r)
	active := r.PostFormValue("is_active") != ""
	form := accessForm{
		ID:          id,
		Email:       r.PostFormValue("email"),
		IsActive:    active,
		Permissions: permissionCells(flagsPermissions(flags)),
		Mode:        FormModeEdit,
		Action:      PathAccess + "/" + strconv.FormatInt(id, 10),
	}
	password := r.PostFormValue("password")

	v := validation.New().Validate("password", password, validation.MinLength("Şifre", 6))
	if !v.Valid() {
		h.renderAccessFailure(w, r, form, nil, v.Errors())
		return
	}

	req := model.UpdateUserRequest{Password: password, IsActive: &active, PermissionFlags: flags}
	if _, err := h.Access.Update(r.Context(), sessionToken(r.Context()), id, req); err != nil {
		if h.handleAPIError(w, r, err) {
			return
		}
		h.logger().WarnContext(r.Context(), "user update failed", "error", err, "user_id", id)
		h.renderAccessFailure(w, r, form, err, nil)
		return
	}
	h.logger().InfoContext(r.Context(), "staff account updated", "user_id", id)
	h.afterMutation(w, r, PathAccess, msgUserUpdated, h.renderAccess)
}

func (h *UIHandlers) accessDeleteSpec() deleteSpec {
	return deleteSpec{
		ListPath:       PathAccess,
		Title:          "Erişimi Kaldır",
		ConfirmMessage: "Bu kullanıcının erişimini kaldırmak istediğinize emin misiniz?",
		ConfirmLabel:   "Erişimi Kaldır",
		SuccessMessage: msgUserDeleted,
		FailMessage:    MsgUserDelete,
		Delete:         h.Access.Delete,
		List:           h.renderAccess,
	}
}

// AccessDeleteConfirm renders the revoke confirmation for non-htmx clients.
func (h *UIHandlers) AccessDeleteConfirm(w http.ResponseWriter, r *http.Request) {
	h.confirmDelete(w, r, h.accessDeleteSpec())
}

// AccessDelete revokes an account once confirmed. Protected accounts are refused.
func (h *UIHandlers) AccessDelete(w http.ResponseWriter, r *http.Request) {
	h.handleDelete(w, r, h.accessDeleteSpec())
}
