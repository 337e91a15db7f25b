package models

// LocalizedText maps a language code (e.g. "en", "th") to the text shown for
// that language. No key set is enforced; clients fall back to the first
// available language when their preferred one is missing.
type LocalizedText map[string]string
