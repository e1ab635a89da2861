package controllers

import (
	"github.com/EshRan/pooja-admin-ui/client"
)

type SessionMode int

const (
	SessionClosed SessionMode = iota
	SessionCreate
	SessionEdit
)

// EditSession tracks which record, if any, the form is working on. Opening a
// session always rebuilds the buffer from scratch, so two sessions never share
// field values or a staged attachment.
type EditSession struct {
	mode       SessionMode
	editingID  int
	values     map[string]string
	attachment *client.Attachment
}

func (s *EditSession) OpenForCreate(defaults map[string]string) {
	s.reset()
	s.mode = SessionCreate
	for name, value := range defaults {
		s.values[name] = value
	}
}

func (s *EditSession) OpenForEdit(id int, values map[string]string) {
	s.reset()
	s.mode = SessionEdit
	s.editingID = id
	for name, value := range values {
		s.values[name] = value
	}
}

// Close resets everything; it runs on cancel, escape and successful submit
// alike.
func (s *EditSession) Close() {
	s.reset()
}

func (s *EditSession) reset() {
	s.mode = SessionClosed
	s.editingID = 0
	s.values = make(map[string]string)
	s.attachment = nil
}

func (s *EditSession) SetField(name, value string) {
	if s.mode == SessionClosed {
		return
	}
	s.values[name] = value
}

func (s *EditSession) Field(name string) string {
	return s.values[name]
}

// Values returns a copy of the form buffer; submission must not observe
// concurrent edits.
func (s *EditSession) Values() map[string]string {
	values := make(map[string]string, len(s.values))
	for name, value := range s.values {
		values[name] = value
	}
	return values
}

func (s *EditSession) StageAttachment(attachment *client.Attachment) {
	if s.mode == SessionClosed {
		return
	}
	s.attachment = attachment
}

func (s *EditSession) Attachment() *client.Attachment {
	return s.attachment
}

func (s *EditSession) Mode() SessionMode {
	return s.mode
}

// EditingID reports the record under edit; ok is false for create sessions.
func (s *EditSession) EditingID() (int, bool) {
	if s.mode != SessionEdit {
		return 0, false
	}
	return s.editingID, true
}
