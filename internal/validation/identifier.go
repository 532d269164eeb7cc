package validation

import (
	"regexp"
	"strings"
)

// maxIdentifierLength, bir tanımlayıcının alabileceği en fazla uzunluktur.
const maxIdentifierLength = 128

// identifierRegex, tablo ve alias adlarını doğrular. "schema.table" biçimi desteklenir.
var identifierRegex = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*(\.[a-zA-Z_][a-zA-Z0-9_]*)?$`)

// aliasRegex, alias'lar için noktasız tanımlayıcıları eşler.
var aliasRegex = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// reservedWords, alias olarak kullanıldığında cümleyi bozan anahtar kelimelerdir.
var reservedWords = map[string]bool{
	"select": true, "from": true, "where": true, "and": true, "or": true,
	"order": true, "by": true, "asc": true, "desc": true, "limit": true,
	"offset": true, "join": true, "left": true, "right": true, "full": true,
	"inner": true, "outer": true, "cross": true, "on": true, "as": true,
	"in": true, "like": true, "is": true, "null": true, "not": true,
	"group": true, "having": true, "distinct": true, "union": true,
}

// ValidateIdentifier, tablo adını doğrular.
func ValidateIdentifier(id string) error {
	if id == "" {
		return &IdentifierError{Identifier: id, Reason: "identifier cannot be empty"}
	}
	if len(id) > maxIdentifierLength {
		return &IdentifierError{Identifier: id, Reason: "identifier exceeds maximum length of 128 characters"}
	}
	if !identifierRegex.MatchString(id) {
		return &IdentifierError{
			Identifier: id,
			Reason:     "identifier contains invalid characters; only letters, numbers, underscores, and dots are allowed",
		}
	}
	return nil
}

// ValidateAlias, alias'ı doğrular. Boş alias geçerlidir.
func ValidateAlias(alias string) error {
	if alias == "" {
		return nil
	}
	if len(alias) > maxIdentifierLength {
		return &IdentifierError{Identifier: alias, Reason: "alias exceeds maximum length of 128 characters"}
	}
	if !aliasRegex.MatchString(alias) {
		return &IdentifierError{Identifier: alias, Reason: "alias may only contain letters, numbers and underscores"}
	}
	if IsReservedWord(alias) {
		return &IdentifierError{Identifier: alias, Reason: "alias is a reserved word"}
	}
	return nil
}

// IsReservedWord, verilen kelimenin rezerv kelime olup olmadığını kontrol eder.
func IsReservedWord(id string) bool {
	return reservedWords[strings.ToLower(id)]
}

// IdentifierError, tanımlayıcı doğrulama hatalarını temsil eder.
type IdentifierError struct {
	Identifier string
	Reason     string
}

// Error, error arayüzünü uygular.
func (e *IdentifierError) Error() string {
	if e.Identifier == "" {
		return "querybuilder: invalid identifier: " + e.Reason
	}
	return "querybuilder: invalid identifier '" + e.Identifier + "': " + e.Reason
}
