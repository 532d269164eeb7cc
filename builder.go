package querybuilder

import (
	"context"
	"log/slog"

	"github.com/biyonik/go-query-builder/dialect"
)

// QueryBuilder, SELECT sorgularını akıcı bir arayüz (fluent interface) ile
// parça parça biriktirir ve istendiğinde parametreli SQL metnine derler.
//
// Builder değiştirilebilir (mutable) bir yapıdır: her zincir metodu aynı örneği
// günceller ve geri döndürür. Derleme ise saftır; ToSQL, Compile ve Params
// builder durumunu değiştirmez, bu yüzden tekrar tekrar çağrılabilir.
// Örnekler **concurrent-safe** değildir; paralel kullanımlar için Clone() ile
// çoğaltılmalıdır.
//
// Genel kullanım örneği:
//
//	sql, params := querybuilder.NewAs("users", "u").
//	    Where("username", "admin").
//	    WhereOp("date_created", "<", 100).
//	    Order("username ASC").
//	    Limit(10).
//	    ToSQL()
//
// @author Ahmet ALTUN
// @github github.com/biyonik
// @linkedin linkedin.com/in/biyonik
// @email ahmet.altun60@gmail.com
type QueryBuilder struct {
	grammar dialect.Grammar
	logger  *slog.Logger

	// FROM hedefi
	table dialect.TableRef

	// Seçilen kolonlar
	columns []string

	// Sorgu parçaları
	conditions []dialect.Condition
	joins      dialect.JoinList
	orders     []string
	groupBy    string
	having     string

	// Limit
	limit *dialect.LimitClause
}

// New, verilen tablo için yeni bir QueryBuilder oluşturur.
// Tablo adı doğrulanmadan olduğu gibi kullanılır.
func New(table string, opts ...Option) *QueryBuilder {
	return NewAs(table, "", opts...)
}

// NewAs, tablo adı ve alias ile yeni bir QueryBuilder oluşturur.
func NewAs(table, alias string, opts ...Option) *QueryBuilder {
	b := &QueryBuilder{
		grammar: dialect.Default(),
		table:   dialect.TableRef{Name: table, Alias: alias},
	}
	b.init()
	applyOptions(b, opts)
	return b
}

// init, koleksiyonları boş durumlarına getirir.
func (b *QueryBuilder) init() {
	b.columns = make([]string, 0)
	b.conditions = make([]dialect.Condition, 0)
	b.joins = dialect.JoinList{}
	b.orders = make([]string, 0)
	b.groupBy = ""
	b.having = ""
	b.limit = nil
}

// Table, FROM hedefini ayarlar ve alias'ı temizler.
func (b *QueryBuilder) Table(name string) *QueryBuilder {
	b.table = dialect.TableRef{Name: name}
	return b
}

// TableAs, FROM hedefini alias ile ayarlar.
func (b *QueryBuilder) TableAs(name, alias string) *QueryBuilder {
	b.table = dialect.TableRef{Name: name, Alias: alias}
	return b
}

// Select, seçilecek kolon listesine bir kolon ekler.
func (b *QueryBuilder) Select(column string) *QueryBuilder {
	b.columns = append(b.columns, column)
	return b
}

// Filter, WHERE koşuluna bir koşul ekler. Koşullar AND ile birleştirilir.
func (b *QueryBuilder) Filter(cond Condition) *QueryBuilder {
	if cond == nil {
		return b
	}
	b.conditions = append(b.conditions, cond)
	return b
}

// WhereRaw, ham bir boolean ifade ekler. Parametre üretmez.
func (b *QueryBuilder) WhereRaw(expr string) *QueryBuilder {
	return b.Filter(Raw(expr))
}

// Where, "<column> = ?" koşulu ekler.
func (b *QueryBuilder) Where(column string, value any) *QueryBuilder {
	return b.Filter(Equals(column, value))
}

// WhereOp, "<column> <operator> ?" koşulu ekler. Operatör olduğu gibi yazılır.
func (b *QueryBuilder) WhereOp(column, operator string, value any) *QueryBuilder {
	return b.Filter(Op(column, operator, value))
}

// Join, INNER JOIN ekler. Aynı alias ile eklenen join öncekinin yerini alır.
func (b *QueryBuilder) Join(table, alias, condition string) *QueryBuilder {
	return b.JoinType(dialect.JoinInner, table, alias, condition)
}

// JoinType, verilen türde bir JOIN ekler.
func (b *QueryBuilder) JoinType(kind dialect.JoinType, table, alias, condition string) *QueryBuilder {
	b.joins.Put(dialect.JoinClause{
		Type:      kind,
		Table:     table,
		Alias:     alias,
		Condition: condition,
	})
	return b
}

// LeftJoin, LEFT JOIN ekler.
func (b *QueryBuilder) LeftJoin(table, alias, condition string) *QueryBuilder {
	return b.JoinType(dialect.JoinLeft, table, alias, condition)
}

// RightJoin, RIGHT JOIN ekler.
func (b *QueryBuilder) RightJoin(table, alias, condition string) *QueryBuilder {
	return b.JoinType(dialect.JoinRight, table, alias, condition)
}

// FullJoin, FULL JOIN ekler.
func (b *QueryBuilder) FullJoin(table, alias, condition string) *QueryBuilder {
	return b.JoinType(dialect.JoinFull, table, alias, condition)
}

// Order, ham bir ORDER BY parçası ekler (örn. "username ASC").
func (b *QueryBuilder) Order(fragment string) *QueryBuilder {
	b.orders = append(b.orders, fragment)
	return b
}

// OrderAsc, artan sırada ORDER BY ekler.
func (b *QueryBuilder) OrderAsc(column string) *QueryBuilder {
	return b.Order(column + " ASC")
}

// OrderDesc, azalan sırada ORDER BY ekler.
func (b *QueryBuilder) OrderDesc(column string) *QueryBuilder {
	return b.Order(column + " DESC")
}

// Limit, offset 0 ile LIMIT ayarlar. Önceki limitin yerini alır.
func (b *QueryBuilder) Limit(count int) *QueryBuilder {
	return b.LimitOffset(count, 0)
}

// LimitOffset, LIMIT ve offset ayarlar. Önceki limitin yerini alır.
func (b *QueryBuilder) LimitOffset(count, offset int) *QueryBuilder {
	b.limit = &dialect.LimitClause{Count: count, Offset: offset}
	return b
}

// ForPage, sayfa bazlı limit ve offset belirler. Sayfalar 1'den başlar.
func (b *QueryBuilder) ForPage(page, perPage int) *QueryBuilder {
	if page < 1 {
		page = 1
	}
	return b.LimitOffset(perPage, (page-1)*perPage)
}

// Group, GROUP BY ifadesini ayarlar. Önceki değerin yerini alır.
func (b *QueryBuilder) Group(expr string) *QueryBuilder {
	b.groupBy = expr
	return b
}

// Having, HAVING ifadesini ayarlar. Önceki değerin yerini alır.
func (b *QueryBuilder) Having(expr string) *QueryBuilder {
	b.having = expr
	return b
}

// When, koşullu olarak callback uygular.
func (b *QueryBuilder) When(condition bool, fn func(*QueryBuilder)) *QueryBuilder {
	if condition {
		fn(b)
	}
	return b
}

// Unless, When'in tersidir.
func (b *QueryBuilder) Unless(condition bool, fn func(*QueryBuilder)) *QueryBuilder {
	return b.When(!condition, fn)
}

// ToSQL, SQL metnini ve bağlanacak değerleri tek geçişte üretir.
// Builder durumu değişmez; art arda çağrılar aynı sonucu verir.
func (b *QueryBuilder) ToSQL() (string, []any) {
	return b.grammar.CompileSelect(b)
}

// Compile, yalnızca SQL metnini döndürür.
func (b *QueryBuilder) Compile() string {
	sql, _ := b.ToSQL()
	return sql
}

// Params, Compile'ın ürettiği "?" yer tutucularına karşılık gelen değerleri
// aynı sırada döndürür.
func (b *QueryBuilder) Params() []any {
	_, params := b.ToSQL()
	return params
}

// String, fmt.Stringer arayüzünü uygular; Compile ile aynıdır.
func (b *QueryBuilder) String() string {
	return b.Compile()
}

// Build, önce Validate çalıştırır, ardından sorguyu derler.
func (b *QueryBuilder) Build() (string, []any, error) {
	if err := b.Validate(); err != nil {
		b.log(slog.LevelWarn, "query validation failed", slog.String("error", err.Error()))
		return "", nil, err
	}

	sql, params := b.ToSQL()
	b.log(slog.LevelDebug, "compiled query",
		slog.String("grammar", b.grammar.Name()),
		slog.String("sql", sql),
		slog.Int("params", len(params)),
	)
	return sql, params, nil
}

// log, logger ayarlıysa kayıt düşer.
func (b *QueryBuilder) log(level slog.Level, msg string, attrs ...slog.Attr) {
	if b.logger == nil {
		return
	}
	b.logger.LogAttrs(context.Background(), level, msg, attrs...)
}

// Clone, builder'ın derin kopyasını oluşturur.
func (b *QueryBuilder) Clone() *QueryBuilder {
	clone := &QueryBuilder{
		grammar: b.grammar,
		logger:  b.logger,
		table:   b.table,
		groupBy: b.groupBy,
		having:  b.having,
		joins:   b.joins.Clone(),
	}

	clone.columns = make([]string, len(b.columns))
	copy(clone.columns, b.columns)

	clone.conditions = make([]dialect.Condition, len(b.conditions))
	copy(clone.conditions, b.conditions)

	clone.orders = make([]string, len(b.orders))
	copy(clone.orders, b.orders)

	if b.limit != nil {
		limit := *b.limit
		clone.limit = &limit
	}

	return clone
}

// Reset, tüm sorgu durumunu temizler (gramer ve logger hariç). Tablo da
// temizlenir; tekrar kullanmadan önce Table veya TableAs çağrılmalıdır.
func (b *QueryBuilder) Reset() *QueryBuilder {
	b.table = dialect.TableRef{}
	b.init()
	return b
}

// GetTable, FROM hedefini döndürür.
func (b *QueryBuilder) GetTable() dialect.TableRef {
	return b.table
}

// GetColumns, seçilen kolonların kopyasını döndürür.
func (b *QueryBuilder) GetColumns() []string {
	out := make([]string, len(b.columns))
	copy(out, b.columns)
	return out
}

// GetConditions, WHERE koşullarının kopyasını döndürür.
func (b *QueryBuilder) GetConditions() []dialect.Condition {
	out := make([]dialect.Condition, len(b.conditions))
	copy(out, b.conditions)
	return out
}

// GetJoins, JOIN'leri ekleme sırasıyla döndürür.
func (b *QueryBuilder) GetJoins() []dialect.JoinClause {
	return b.joins.Items()
}

// GetGroupBy, GROUP BY ifadesini döndürür.
func (b *QueryBuilder) GetGroupBy() string {
	return b.groupBy
}

// GetHaving, HAVING ifadesini döndürür.
func (b *QueryBuilder) GetHaving() string {
	return b.having
}

// GetOrders, ORDER BY parçalarının kopyasını döndürür.
func (b *QueryBuilder) GetOrders() []string {
	out := make([]string, len(b.orders))
	copy(out, b.orders)
	return out
}

// GetLimit, LIMIT değerinin kopyasını döndürür. Limit yoksa nil döner.
func (b *QueryBuilder) GetLimit() *dialect.LimitClause {
	if b.limit == nil {
		return nil
	}
	limit := *b.limit
	return &limit
}
