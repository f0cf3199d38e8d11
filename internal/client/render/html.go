// Package render turns session views into HTML fragments. Templates escape
// every interpolation by construction, replacing the field-by-field manual
// escaping the UI previously relied on.
package render

import (
	"html/template"
	"io"
	"strings"

	"github.com/srosales/sigboard/internal/client/state"
	"github.com/srosales/sigboard/internal/models"
)

const usersTemplate = `{{if not .}}<tr><td colspan="4" class="text-center">No users registered</td></tr>{{else}}{{range .}}<tr data-id="{{.ID}}">
<td>{{.ID}}</td>
<td>{{.Username}}</td>
<td>{{.Email}}</td>
<td class="action-buttons">
<button class="btn btn-sm btn-warning edit-user" data-id="{{.ID}}">Edit</button>
<button class="btn btn-sm btn-danger delete-user" data-id="{{.ID}}">Delete</button>
</td>
</tr>
{{end}}{{end}}`

const signaturesTemplate = `{{if .Empty}}<p class="text-muted text-center">No signatures found</p>{{else}}<div class="row">
{{range .Items}}<div class="col">
<div class="card h-100" data-id="{{.ID}}">
<h5 class="card-title">{{.Name}}</h5>
<small class="text-muted">#{{.ID}}</small>
<img src="{{imageURL .Image}}" class="img-fluid signature-display" alt="Signature of {{.Name}}">
<small class="text-muted">{{.CreatedAt.Format "2006-01-02"}}</small>
<div class="btn-group">
<button class="btn btn-sm btn-outline-primary edit-signature" data-id="{{.ID}}">Edit</button>
<button class="btn btn-sm btn-outline-danger delete-signature" data-id="{{.ID}}">Delete</button>
</div>
</div>
</div>
{{end}}</div>
{{if .PageNumbers}}<nav><ul class="pagination">
<li class="page-item{{if not .HasPrev}} disabled{{end}}"><a class="page-link" data-page="{{.PrevPage}}">Previous</a></li>
{{$current := .Page}}{{range .PageNumbers}}<li class="page-item{{if eq . $current}} active{{end}}"><a class="page-link" data-page="{{.}}">{{.}}</a></li>
{{end}}<li class="page-item{{if not .HasNext}} disabled{{end}}"><a class="page-link" data-page="{{.NextPage}}">Next</a></li>
</ul></nav>{{end}}{{end}}`

// signaturePage adds pager targets to the view for the template.
type signaturePage struct {
	state.SignatureView
	PrevPage int
	NextPage int
}

// HTML renders session views as HTML fragments.
type HTML struct {
	users      *template.Template
	signatures *template.Template
}

// New parses the templates. The template text is fixed, so a parse failure
// is a programming error.
func New() *HTML {
	funcs := template.FuncMap{"imageURL": imageURL}
	return &HTML{
		users:      template.Must(template.New("users").Parse(usersTemplate)),
		signatures: template.Must(template.New("signatures").Funcs(funcs).Parse(signaturesTemplate)),
	}
}

// imageURL admits only marker-prefixed data URIs into src attributes.
// html/template rejects data: URLs wholesale; stored images passed server
// validation against the same prefix, everything else stays filtered out.
func imageURL(s string) template.URL {
	if strings.HasPrefix(s, models.ImagePrefix) {
		return template.URL(s)
	}
	return ""
}

// Users writes the user table body.
func (h *HTML) Users(w io.Writer, users []models.UserDB) error {
	return h.users.Execute(w, users)
}

// Signatures writes the signature card grid and pager for one derived view.
func (h *HTML) Signatures(w io.Writer, view state.SignatureView) error {
	page := signaturePage{
		SignatureView: view,
		PrevPage:      view.Page - 1,
		NextPage:      view.Page + 1,
	}
	return h.signatures.Execute(w, page)
}
