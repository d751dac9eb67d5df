package config

// DefaultComponents returns the default section-kind → MDC component
// mapping (Nuxt UI component names).
func DefaultComponents() map[string]string {
	return map[string]string{
		"arguments":  "UArguments",
		"variables":  "UVariables",
		"returns":    "UReturns",
		"examples":   "UCodeGroup",
		"notes":      "UAlert",
		"warnings":   "UAlert",
		"raises":     "UCallout",
		"code_block": "UCodeGroup",
	}
}

// DefaultObjectIcons returns the default object-kind → Iconify icon mapping.
// The "page" entry doubles as the fallback for unknown kinds.
func DefaultObjectIcons() map[string]string {
	return map[string]string{
		"module":    "i-material-symbols-light-book-4-spark-outline-rounded",
		"class":     "i-material-symbols-light-class-outline-rounded",
		"function":  "i-material-symbols-light-function-outline-rounded",
		"method":    "i-material-symbols-light-function-outline-rounded",
		"variable":  "i-material-symbols-light-variable-outline-rounded",
		"attribute": "i-material-symbols-light-variable-outline-rounded",
		"page":      "i-material-symbols-light-book-4-spark-outline-rounded",
	}
}
