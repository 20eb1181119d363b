package bsmap

import (
	"github.com/rs/zerolog"

	"github.com/reoring/bsmap/internal/logging"
	"github.com/reoring/bsmap/schema"
)

// SetLogger replaces the logger shared by every package of the library.
func SetLogger(l zerolog.Logger) { logging.Set(l) }

// SetLogLevel adjusts the library log level; the default is Info.
func SetLogLevel(lvl zerolog.Level) { logging.SetLevel(lvl) }

// Issue and Issues are the validation error model of deepCheck.
type (
	Issue  = schema.Issue
	Issues = schema.Issues
)

// AsIssues extracts Issues from err.
func AsIssues(err error) (Issues, bool) { return schema.AsIssues(err) }
