// Package dialect, sorgu parçalarının (koşullar, join'ler, limit) veri modelini ve
// bu parçaları parametreli SQL metnine çeviren gramerleri (Grammar) içerir.
//
// Builder durumu tutar, Grammar ise o durumu okuyup tek geçişte SQL metnini ve
// bağlanacak değerleri üretir. Bu ayrım sayesinde derleme saf (pure) kalır:
// aynı builder kaç kez derlenirse derlensin aynı çıktı elde edilir.
//
// Yazar: Ahmet ALTUN
// Github: github.com/biyonik
// LinkedIn: linkedin.com/in/biyonik
// Email: ahmet.altun60@gmail.com
package dialect

// ----------------------------------------------------------------------------
// QueryBuilder Interface (import döngüsünü kırmak için)
// ----------------------------------------------------------------------------

// QueryBuilder, Grammar implementasyonlarının ihtiyaç duyduğu okuma arayüzüdür.
// Ana paket ile dialect paketi arasındaki import döngüsünü kırmak için kullanılır.
type QueryBuilder interface {
	GetTable() TableRef
	GetColumns() []string
	GetJoins() []JoinClause
	GetConditions() []Condition
	GetGroupBy() string
	GetHaving() string
	GetOrders() []string
	GetLimit() *LimitClause
}

// ----------------------------------------------------------------------------
// Grammar Interface
// ----------------------------------------------------------------------------

// Grammar, builder durumunu SQL metnine çevirir.
type Grammar interface {
	// Name, gramerin kimliğini döndürür (örn. "ansi").
	Name() string

	// Placeholder, verilen indeks için parametre yer tutucusunu döndürür.
	Placeholder(index int) string

	// CompileSelect, SELECT sorgusunu ve bağlanacak değerleri tek geçişte üretir.
	// Builder üzerinde hiçbir değişiklik yapmaz.
	CompileSelect(b QueryBuilder) (string, []any)
}

// ----------------------------------------------------------------------------
// Base Grammar (ortak fonksiyonlar)
// ----------------------------------------------------------------------------

// BaseGrammar, tüm gramer implementasyonları için ortak fonksiyonellik sağlar.
type BaseGrammar struct {
	name        string
	placeholder string
}

// Name, gramerin adını döndürür.
func (g *BaseGrammar) Name() string {
	return g.name
}

// Placeholder, sabit yer tutucuyu döndürür. Belirtilmemişse "?" kullanılır.
func (g *BaseGrammar) Placeholder(int) string {
	if g.placeholder == "" {
		return "?"
	}
	return g.placeholder
}

// ----------------------------------------------------------------------------
// FROM
// ----------------------------------------------------------------------------

// TableRef, FROM hedefini temsil eder. Alias opsiyoneldir.
type TableRef struct {
	Name  string
	Alias string
}

// IsZero, tablo referansının boş olup olmadığını döndürür.
func (t TableRef) IsZero() bool {
	return t.Name == ""
}

// String, "name alias" ya da yalnızca "name" döndürür.
func (t TableRef) String() string {
	if t.Alias == "" {
		return t.Name
	}
	return t.Name + " " + t.Alias
}

// ----------------------------------------------------------------------------
// LIMIT
// ----------------------------------------------------------------------------

// LimitClause, LIMIT ifadesini temsil eder. Offset varsayılan olarak 0'dır.
type LimitClause struct {
	Count  int
	Offset int
}
