package utils

import "errors"

// ErrorDocumentLocked is reported when an edit or delete is attempted on a
// document whose lifecycle status forbids it. It fires client-side, before
// any network call; the server enforces the same rule authoritatively.
var ErrorDocumentLocked = errors.New("document status does not allow this action")

// ErrorNoBillableItems is reported when a submission carries no selected
// time entries, no selected expenses and no valid custom line.
var ErrorNoBillableItems = errors.New("no billable items selected")

// ErrorCrossClientAdvance is reported when a selected advance belongs to a
// different client than the final invoice being settled.
var ErrorCrossClientAdvance = errors.New("advance invoice belongs to a different client")

var ErrorUnknownDocumentKind = errors.New("unknown document kind")
