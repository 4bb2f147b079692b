package rendering

// Lang selects the bilingual copy for a rendered page.
type Lang string

// Supported page languages.
const (
	LangEN Lang = "en"
	LangZH Lang = "zh"
)

// htmlLang is the value for the <html lang> attribute.
func (l Lang) htmlLang() string {
	if l == LangZH {
		return "zh-CN"
	}
	return "en"
}

// path is the URL path segment for this language.
func (l Lang) path() string {
	if l == LangZH {
		return "zh"
	}
	return "en"
}

// other returns the counterpart language for the language-switch link.
func (l Lang) other() Lang {
	if l == LangZH {
		return LangEN
	}
	return LangZH
}

// otherLabel is the text of the language-switch link.
func (l Lang) otherLabel() string {
	if l == LangZH {
		return "EN"
	}
	return "中文"
}

// pick returns zh when the language is Chinese, en otherwise.
func (l Lang) pick(en, zh string) string {
	if l == LangZH {
		return zh
	}
	return en
}

// absent is the placeholder rendered for missing values.
const absent = "-"
