package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "owner" or "field").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_type":
			return "型が不正です"
		case "required":
			return "必須プロパティが不足しています"
		case "unknown_key":
			return "未宣言のフィールドです"
		case "not_frozen":
			return "凍結されていません"
		case "not_a_shape":
			return "shape 以外のプロパティ型です"
		case "parse_error":
			return "解析エラー"
		}
	default: // "en"
		switch code {
		case "invalid_type":
			return "invalid type"
		case "required":
			return "required property missing"
		case "unknown_key":
			return "undeclared field"
		case "not_frozen":
			return "value is not frozen"
		case "not_a_shape":
			return "non-shape property type"
		case "parse_error":
			return "parse error"
		}
	}
	return code
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
