// Package model defines the document and analysis types shared across clausewise.
package model

// DefaultLanguage is the language a freshly analyzed document is presented in.
const DefaultLanguage = "English"

// PastedName is the display label for documents entered on the paste screen.
const PastedName = "Pasted Text"

// Document is the active analysis subject. Exactly one Document is live at a
// time; RawText is immutable for the lifetime of the session. The ID tags
// every request issued for this document so that responses arriving after a
// reset can be recognized as stale and dropped.
type Document struct {
	ID              string
	RawText         string
	Name            string
	DisplayLanguage string
}

// NewDocument creates the live document for a completed ingestion. The id is
// the session tag the ingestion was issued under, so responses for this
// document keep matching it.
func NewDocument(id, name, rawText string) Document {
	return Document{
		ID:              id,
		RawText:         rawText,
		Name:            name,
		DisplayLanguage: DefaultLanguage,
	}
}

// Live reports whether a document is set.
func (d Document) Live() bool {
	return d.ID != ""
}
