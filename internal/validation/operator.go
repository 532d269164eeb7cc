// Package validation, QueryBuilder.Validate tarafından kullanılan tablo, alias ve
// operatör kontrollerini içerir. Derleme bu paketi hiç çağırmaz; kontroller
// yalnızca açıkça istendiğinde çalışır.
//
// Yazar: Ahmet ALTUN
// Github: github.com/biyonik
// LinkedIn: linkedin.com/in/biyonik
// Email: ahmet.altun60@gmail.com
package validation

import (
	"sort"
	"strings"
)

// allowedOperators, tek bir "?" ile kullanılabilen operatörlerdir.
var allowedOperators = map[string]bool{
	// Karşılaştırma operatörleri
	"=":   true,
	"!=":  true,
	"<>":  true,
	"<":   true,
	">":   true,
	"<=":  true,
	">=":  true,
	"<=>": true, // NULL güvenli eşitlik

	// Desen eşleştirme operatörleri
	"LIKE":     true,
	"NOT LIKE": true,

	// NULL kontrolü operatörleri
	"IS":     true,
	"IS NOT": true,
}

// normalize, operatörü büyük harfe çevirir ve iç boşlukları teke indirir.
func normalize(op string) string {
	return strings.Join(strings.Fields(strings.ToUpper(op)), " ")
}

// ValidateOperator, verilen operatörün izin verilen listede olup olmadığını kontrol eder.
func ValidateOperator(op string) error {
	if !allowedOperators[normalize(op)] {
		return &OperatorError{
			Operator: op,
			Reason:   "operator not in allowed list (allowed: " + strings.Join(AllowedOperators(), ", ") + ")",
		}
	}
	return nil
}

// AllowedOperators, izin verilen operatörleri sıralı döndürür.
func AllowedOperators() []string {
	ops := make([]string, 0, len(allowedOperators))
	for op := range allowedOperators {
		ops = append(ops, op)
	}
	sort.Strings(ops)
	return ops
}

// OperatorError, operatör doğrulama hatasını temsil eder.
type OperatorError struct {
	Operator string
	Reason   string
}

// Error, error arayüzünü uygular.
func (e *OperatorError) Error() string {
	return "querybuilder: invalid operator '" + e.Operator + "': " + e.Reason
}
