// Package querybuilder, SELECT sorgularını zincirli çağrılarla biriktirip
// "?" yer tutuculu, parametreli SQL metnine derleyen bir kütüphanedir.
//
// Yazar: Ahmet ALTUN
// Github: github.com/biyonik
// LinkedIn: linkedin.com/in/biyonik
// Email: ahmet.altun60@gmail.com
package querybuilder

import "github.com/biyonik/go-query-builder/dialect"

// Version, go-query-builder kütüphanesinin mevcut sürümünü belirtir.
const Version = "0.2.0"

// Condition, WHERE cümlesindeki tek bir koşuldur. Raw, Equals ve Op ile oluşturulur.
type Condition = dialect.Condition

// Raw, olduğu gibi yazılacak ham bir boolean ifade oluşturur.
// Parametre üretmez. Sadece güvenli ve kontrol edilen girdi için kullanın.
//
// Örnek:
//
//	qb.Filter(querybuilder.Raw("deleted_at IS NULL"))
func Raw(expr string) Condition {
	return dialect.RawCondition{Expr: expr}
}

// Equals, "<column> = ?" koşulu oluşturur.
//
// Örnek:
//
//	qb.Filter(querybuilder.Equals("username", "admin"))
func Equals(column string, value any) Condition {
	return dialect.EqualsCondition{Column: column, Value: value}
}

// Op, "<column> <operator> ?" koşulu oluşturur. Operatör doğrulanmaz;
// doğrulama için Validate veya Build kullanın.
//
// Örnek:
//
//	qb.Filter(querybuilder.Op("date_created", "<", 100))
func Op(column, operator string, value any) Condition {
	return dialect.OpCondition{Column: column, Operator: operator, Value: value}
}
