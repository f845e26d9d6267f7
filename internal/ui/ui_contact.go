package ui

import (
	"log/slog"
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-folio/internal/config"
	"github.com/tartampluch/go-folio/internal/contact"
)

// contactView owns the form fields, their inline error labels, and the
// current submission target. The target is rewritten on every validation
// pass so it can never go stale.
type contactView struct {
	app *GoFolioApp

	entryName    *widget.Entry
	entryEmail   *widget.Entry
	entrySubject *widget.Entry
	entryMessage *widget.Entry
	checkConsent *widget.Check

	errName    *widget.Label
	errEmail   *widget.Label
	errSubject *widget.Label
	errMessage *widget.Label
	errConsent *widget.Label

	sendBtn *widget.Button

	root   fyne.CanvasObject
	target string
	valid  bool
}

// buildContactView assembles the contact page.
func (app *GoFolioApp) buildContactView() fyne.CanvasObject {
	return app.newContactView().root
}

// newContactView wires the form. It validates on every change and once at
// construction so the send button starts in the right state.
func (app *GoFolioApp) newContactView() *contactView {
	v := &contactView{app: app}

	v.entryName = widget.NewEntry()
	v.entryEmail = widget.NewEntry()
	v.entrySubject = widget.NewEntry()
	v.entryMessage = widget.NewMultiLineEntry()
	v.entryMessage.Wrapping = fyne.TextWrapWord
	v.checkConsent = widget.NewCheck(app.GetMsg(config.TKeyLblConsent), func(bool) { v.validate() })

	onChange := func(string) { v.validate() }
	v.entryName.OnChanged = onChange
	v.entryEmail.OnChanged = onChange
	v.entrySubject.OnChanged = onChange
	v.entryMessage.OnChanged = onChange

	v.errName = newErrorLabel()
	v.errEmail = newErrorLabel()
	v.errSubject = newErrorLabel()
	v.errMessage = newErrorLabel()
	v.errConsent = newErrorLabel()

	v.sendBtn = widget.NewButton(app.GetMsg(config.TKeyBtnSend), v.submit)
	v.sendBtn.Importance = widget.HighImportance
	clearBtn := widget.NewButton(app.GetMsg(config.TKeyBtnClear), v.clear)

	v.validate()

	form := container.NewVBox(
		widget.NewLabel(app.GetMsg(config.TKeyLblName)), v.entryName, v.errName,
		widget.NewLabel(app.GetMsg(config.TKeyLblEmail)), v.entryEmail, v.errEmail,
		widget.NewLabel(app.GetMsg(config.TKeyLblSubject)), v.entrySubject, v.errSubject,
		widget.NewLabel(app.GetMsg(config.TKeyLblMessage)), v.entryMessage, v.errMessage,
		v.checkConsent, v.errConsent,
		container.NewHBox(v.sendBtn, clearBtn),
	)

	v.root = container.NewVScroll(form)
	return v
}

func newErrorLabel() *widget.Label {
	l := widget.NewLabel("")
	l.Importance = widget.DangerImportance
	l.Hide()
	return l
}

// fields snapshots the widget values.
func (v *contactView) fields() contact.Fields {
	return contact.Fields{
		Name:         v.entryName.Text,
		Email:        v.entryEmail.Text,
		Subject:      v.entrySubject.Text,
		Message:      v.entryMessage.Text,
		ConsentGiven: v.checkConsent.Checked,
	}
}

// validate runs the rules, refreshes every error label, and rewrites the
// submission target.
func (v *contactView) validate() {
	res := contact.Validate(v.fields(), v.app.Recipient())

	setError(v.errName, v.app, res.NameErr)
	setError(v.errEmail, v.app, res.EmailErr)
	setError(v.errSubject, v.app, res.SubjectErr)
	setError(v.errMessage, v.app, res.MessageErr)
	setError(v.errConsent, v.app, res.ConsentErr)

	v.target = res.Target
	v.valid = res.Valid()

	if v.valid {
		v.sendBtn.Enable()
	} else {
		v.sendBtn.Disable()
	}
}

// setError shows the localized message or hides the label when the key is
// empty.
func setError(l *widget.Label, app *GoFolioApp, key string) {
	if key == "" {
		l.Hide()
		return
	}
	l.SetText(app.GetMsg(key))
	l.Show()
}

// submit re-runs validation, then hands the mailto URL to the system.
// Invalid state blocks the submission even if the button was reachable.
func (v *contactView) submit() {
	v.validate()
	if !v.valid {
		return
	}

	u, err := url.Parse(v.target)
	if err != nil {
		slog.Error(config.ErrMailtoOpen,
			config.LogKeyComponent, config.CompUIContact,
			config.LogKeyError, err)
		return
	}

	if err := v.app.App.OpenURL(u); err != nil {
		slog.Error(config.ErrMailtoOpen,
			config.LogKeyComponent, config.CompUIContact,
			config.LogKeyError, err)
		return
	}

	slog.Info(config.MsgMailtoOpened, config.LogKeyComponent, config.CompUIContact)
}

// clear empties every field, then revalidates so the error labels and the
// target reflect the cleared state rather than the to-be-cleared one.
func (v *contactView) clear() {
	v.entryName.SetText("")
	v.entryEmail.SetText("")
	v.entrySubject.SetText("")
	v.entryMessage.SetText("")
	v.checkConsent.SetChecked(false)
	v.validate()
}
