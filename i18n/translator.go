package i18n

import "strings"

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "want" or "key").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	var tmpl string
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_type":
			tmpl = "型が不正です (期待: {want}, 実際: {got})"
		case "required":
			tmpl = "必須プロパティ {key} が不足しています"
		case "invalid_version":
			tmpl = "バージョン {got} はこのスキーマに対応していません"
		case "invalid_shape":
			tmpl = "構造が不正です"
		case "corrected":
			tmpl = "{old} を {new} に修正しました"
		case "duplicate_key":
			tmpl = "キー {key} が重複しています"
		}
	default: // "en"
		switch code {
		case "invalid_type":
			tmpl = "invalid type (want {want}, got {got})"
		case "required":
			tmpl = "required property {key} missing"
		case "invalid_version":
			tmpl = "version {got} does not match this schema"
		case "invalid_shape":
			tmpl = "invalid shape"
		case "corrected":
			tmpl = "corrected {old} to {new}"
		case "duplicate_key":
			tmpl = "duplicate key {key}"
		}
	}
	if tmpl == "" {
		return code
	}
	return render(tmpl, data)
}

func render(tmpl string, data map[string]string) string {
	if len(data) == 0 {
		return tmpl
	}
	pairs := make([]string, 0, len(data)*2)
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
