package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "found").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "type":
			return "型が不正です"
		case "enum":
			return "許可された値ではありません"
		case "minimum":
			return "小さすぎます"
		case "maximum":
			return "大きすぎます"
		case "multipleOf":
			return "倍数ではありません"
		case "minLength":
			return "短すぎます"
		case "maxLength":
			return "長すぎます"
		case "pattern":
			return "パターンに一致しません"
		case "required":
			return "必須プロパティが不足しています"
		case "additionalProperties":
			return "未知のプロパティは許可されていません"
		case "minItems":
			return "配列の要素が少なすぎます"
		case "maxItems":
			return "配列の要素が多すぎます"
		case "uniqueItems":
			return "配列の要素が重複しています"
		case "additionalItems":
			return "追加の配列要素は許可されていません"
		}
	default: // "en"
		switch code {
		case "type":
			return "invalid type"
		case "enum":
			return "value is not one of the allowed values"
		case "minimum":
			return "value is below the minimum"
		case "maximum":
			return "value is above the maximum"
		case "multipleOf":
			return "value is not a multiple of the divisor"
		case "minLength":
			return "string is shorter than minLength"
		case "maxLength":
			return "string is longer than maxLength"
		case "pattern":
			return "string does not match the pattern"
		case "required":
			return "required property missing"
		case "additionalProperties":
			return "additional properties are not allowed"
		case "minItems":
			return "array has fewer items than minItems"
		case "maxItems":
			return "array has more items than maxItems"
		case "uniqueItems":
			return "array items are not unique"
		case "additionalItems":
			return "additional array items are not allowed"
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
