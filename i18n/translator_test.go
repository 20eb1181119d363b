package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	msg := T("required", map[string]string{"key": "colorNotes"})
	assert.Equal(t, "required property colorNotes missing", msg)

	SetLanguage("ja")
	msg = T("invalid_type", map[string]string{"want": "number", "got": "string"})
	assert.Contains(t, msg, "number")
	assert.NotEqual(t, "invalid_type", msg)

	// reset to en
	SetLanguage("en")
}

func TestTranslator_UnknownCodeFallsBack(t *testing.T) {
	assert.Equal(t, "no_such_code", T("no_such_code", nil))
}

type upper struct{}

func (upper) Message(code string, _ map[string]string) string { return "X:" + code }

func TestSetTranslator(t *testing.T) {
	SetTranslator(upper{})
	defer SetTranslator(nil)
	assert.Equal(t, "X:corrected", T("corrected", nil))
}
