package httpx

import (
	"net/http"

	"github.com/kampus/admin-console/internal/http/ui/viewmodel"
)

const (
	msgCodeCreated     = "Kod başarıyla eklendi"
	msgCodeDeactivated = "Kod devre dışı bırakıldı"
)

// PartnershipCodes serves the code list with its inline create form.
func (h *UIHandlers) PartnershipCodes(w http.ResponseWriter, r *http.Request) {
	h.renderPartnershipCodes(w, r, nil)
}

func (h *UIHandlers) renderPartnershipCodes(w http.ResponseWriter, r *http.Request, flash *viewmodel.Flash) {
	meta := PageMeta{PageTitle: "İş Birliği Kodları", CurrentPage: PagePartnershipCodes}
	codes, err := h.Codes.List(r.Context(), sessionToken(r.Context()))
	if err != nil {
		h.loadFailed(w, r, meta, err)
		return
	}
	data := NewTemplateData(r, meta).
		WithFlash(flash).
		With("Codes", codes).
		Build()
	h.render(w, r, data)
}

// PartnershipCodeNew renders the standalone create form.
func (h *UIHandlers) PartnershipCodeNew(w http.ResponseWriter, r *http.Request) {
	data := NewTemplateData(r, PageMeta{PageTitle: "Yeni Kod Ekle", CurrentPage: PagePartnershipCodeForm}).
		With("Code", "").
		Build()
	h.render(w, r, data)
}

// PartnershipCodeCreate creates a code. A blank code never reaches the API.
func (h *UIHandlers) PartnershipCodeCreate(w http.ResponseWriter, r *http.Request) {
	code := r.PostFormValue("code")
	_, err := h.Codes.Create(r.Context(), sessionToken(r.Context()), code)
	if err == nil {
		h.logger().InfoContext(r.Context(), "partnership code created", "code", code)
		h.afterMutation(w, r, PathPartnershipCodes, msgCodeCreated, h.renderPartnershipCodes)
		return
	}
	if h.handleAPIError(w, r, err) {
		return
	}
	h.logger().WarnContext(r.Context(), "partnership code create failed", "error", err)
	RenderError(ErrorOpts{
		W:         w,
		R:         r,
		Err:       err,
		Fallback:  MsgCodeCreate,
		Renderer:  h.renderPage,
		PageMeta:  PageMeta{PageTitle: "Yeni Kod Ekle", CurrentPage: PagePartnershipCodeForm},
		Data:      map[string]any{"Code": code},
		ShowToast: true,
	})
}

func (h *UIHandlers) codeDeactivateSpec() deleteSpec {
	return deleteSpec{
		ListPath:       PathPartnershipCodes,
		Title:          "Kodu Devre Dışı Bırak",
		ConfirmMessage: "Bu kodu devre dışı bırakmak istediğinize emin misiniz?",
		ConfirmLabel:   "Devre Dışı Bırak",
		SuccessMessage: msgCodeDeactivated,
		FailMessage:    MsgCodeDelete,
		Delete:         h.Codes.Deactivate,
		List:           h.renderPartnershipCodes,
	}
}

// PartnershipCodeDeleteConfirm renders the deactivate confirmation for non-htmx clients.
func (h *UIHandlers) PartnershipCodeDeleteConfirm(w http.ResponseWriter, r *http.Request) {
	h.confirmDelete(w, r, h.codeDeactivateSpec())
}

// PartnershipCodeDelete deactivates a code once confirmed.
func (h *UIHandlers) PartnershipCodeDelete(w http.ResponseWriter, r *http.Request) {
	h.handleDelete(w, r, h.codeDeactivateSpec())
}
