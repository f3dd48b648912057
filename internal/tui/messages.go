package tui

import "github.com/MKhiriev/vikeypass/models"

// savedMsg reports a finished add, edit or delete. creds is the updated map
// on success.
type savedMsg struct {
	creds  models.CredentialMap
	status string
	err    error
}

type copiedMsg struct {
	name string
	err  error
}

type clearStatusMsg struct {
	seq uint64
}
