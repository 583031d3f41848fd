package profile

import (
	"github.com/smileynet/vetprofile/internal/contact"
)

// FormState is the lifecycle state of a Form.
type FormState string

const (
	StateInitial    FormState = "initial"
	StateEditing    FormState = "editing"
	StateSaved      FormState = "saved"
	StateSaveFailed FormState = "save_failed"
)

// Field is one editable value and its setter.
type Field struct {
	value   string
	changed func()
}

// Value returns the current value.
func (f *Field) Value() string {
	return f.value
}

// Set replaces the value. No validation is performed.
func (f *Field) Set(v string) {
	f.value = v
	if f.changed != nil {
		f.changed()
	}
}

// Form holds the editable copy of the client's record for one activation
// of the profile view. A Form is owned by a single goroutine.
type Form struct {
	store    *Store
	name     Field
	email    Field
	phone    Field
	photoURL string
	baseline contact.Record // last loaded or saved record
	state    FormState
	err      error
}

// NewForm loads the authoritative record from store once and returns a
// Form initialized from it.
func NewForm(store *Store) *Form {
	r := store.Load()
	f := &Form{
		store:    store,
		photoURL: r.PhotoURL,
		baseline: r,
		state:    StateInitial,
	}
	f.name = Field{value: r.Name, changed: f.touch}
	f.email = Field{value: r.Email, changed: f.touch}
	f.phone = Field{value: r.Phone, changed: f.touch}
	return f
}

func (f *Form) touch() {
	f.state = StateEditing
}

// Name returns the name field.
func (f *Form) Name() *Field { return &f.name }

// Email returns the email field.
func (f *Form) Email() *Field { return &f.email }

// Phone returns the phone field.
func (f *Form) Phone() *Field { return &f.phone }

// SetName replaces the name.
func (f *Form) SetName(v string) { f.name.Set(v) }

// SetEmail replaces the email.
func (f *Form) SetEmail(v string) { f.email.Set(v) }

// SetPhone replaces the phone.
func (f *Form) SetPhone(v string) { f.phone.Set(v) }

// PhotoURL returns the photo of the originally loaded record.
func (f *Form) PhotoURL() string {
	return f.photoURL
}

// Record returns the current field values with the loaded PhotoURL.
func (f *Form) Record() contact.Record {
	return contact.Record{
		Name:     f.name.value,
		Email:    f.email.value,
		Phone:    f.phone.value,
		PhotoURL: f.photoURL,
	}
}

// DisplayName returns the current name or its placeholder.
func (f *Form) DisplayName() string {
	return contact.OrPlaceholder(f.name.value, contact.NamePlaceholder)
}

// DisplayEmail returns the current email or its placeholder.
func (f *Form) DisplayEmail() string {
	return contact.OrPlaceholder(f.email.value, contact.EmailPlaceholder)
}

// State returns the lifecycle state.
func (f *Form) State() FormState {
	return f.state
}

// Err returns the error from the last failed Save, or nil.
func (f *Form) Err() error {
	if f.state != StateSaveFailed {
		return nil
	}
	return f.err
}

// Dirty reports whether the fields differ from the last loaded or saved record.
func (f *Form) Dirty() bool {
	return f.Record() != f.baseline
}

// Save commits the current record to the store. On failure the fields are
// left untouched so the user can retry.
func (f *Form) Save() error {
	r := f.Record()
	if err := f.store.Commit(r); err != nil {
		f.state = StateSaveFailed
		f.err = err
		return err
	}
	f.baseline = r
	f.state = StateSaved
	f.err = nil
	return nil
}
