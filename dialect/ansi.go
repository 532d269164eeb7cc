package dialect

import (
	"strconv"
	"strings"
)

/*
 * ----------------------------------------------------------------------------
 * ANSI GRAMMAR IMPLEMENTATION
 * ----------------------------------------------------------------------------
 *
 * Bu dosya, builder durumunu "?" yer tutuculu, düz bir SELECT cümlesine çeviren
 * varsayılan gramerdir. Tanımlayıcılar tırnaklanmaz ve doğrulanmaz; çağıran
 * tarafın verdiği her parça olduğu gibi yazılır.
 *
 * Derleme sırası sabittir:
 *   SELECT -> FROM -> JOIN -> WHERE -> GROUP BY -> HAVING -> ORDER BY -> LIMIT
 * Boş bölümler tamamen atlanır.
 *
 * LIMIT, "LIMIT <offset>, <count>" biçiminde yazılır (önce offset). Bu konumsal
 * biçimi bekleyen tüketiciler için sıra korunmalıdır.
 * ----------------------------------------------------------------------------
 */

// ANSIGrammar, Grammar arayüzünü "?" yer tutucularıyla implemente eder.
type ANSIGrammar struct {
	BaseGrammar
}

// ANSI, yeni bir ANSI gramer örneği oluşturur.
func ANSI() *ANSIGrammar {
	return &ANSIGrammar{
		BaseGrammar: BaseGrammar{
			name:        "ansi",
			placeholder: "?",
		},
	}
}

// Default, builder'ların gramer verilmediğinde kullandığı gramerdir.
func Default() Grammar {
	return ANSI()
}

// CompileSelect, bir SELECT sorgusunu parçalarından birleştirerek inşa eder.
//
// Metin ve argümanlar aynı döngüde üretilir; böylece her "?" ile argüman
// listesindeki değer aynı sırada kalır.
func (g *ANSIGrammar) CompileSelect(b QueryBuilder) (string, []any) {
	var sql strings.Builder
	args := make([]any, 0)

	// SELECT
	sql.WriteString("SELECT ")
	columns := b.GetColumns()
	if len(columns) == 0 {
		sql.WriteString("*")
	} else {
		sql.WriteString(strings.Join(columns, ", "))
	}

	// FROM
	if table := b.GetTable(); !table.IsZero() {
		sql.WriteString(" FROM ")
		sql.WriteString(table.String())
	}

	// JOIN
	for _, join := range b.GetJoins() {
		sql.WriteString(" ")
		sql.WriteString(g.compileJoin(join))
	}

	// WHERE
	if conditions := b.GetConditions(); len(conditions) > 0 {
		sql.WriteString(" WHERE ")
		args = g.compileConditions(&sql, conditions, args)
	}

	// GROUP BY
	if group := b.GetGroupBy(); group != "" {
		sql.WriteString(" GROUP BY ")
		sql.WriteString(group)
	}

	// HAVING
	if having := b.GetHaving(); having != "" {
		sql.WriteString(" HAVING ")
		sql.WriteString(having)
	}

	// ORDER BY
	if orders := b.GetOrders(); len(orders) > 0 {
		sql.WriteString(" ORDER BY ")
		sql.WriteString(strings.Join(orders, ", "))
	}

	// LIMIT
	if limit := b.GetLimit(); limit != nil {
		sql.WriteString(" LIMIT ")
		sql.WriteString(strconv.Itoa(limit.Offset))
		sql.WriteString(", ")
		sql.WriteString(strconv.Itoa(limit.Count))
	}

	return sql.String(), args
}

// compileConditions, koşulları " AND " ile birleştirir ve parametreli
// koşulların değerlerini args'a sırayla ekler.
func (g *ANSIGrammar) compileConditions(sql *strings.Builder, conditions []Condition, args []any) []any {
	for i, cond := range conditions {
		if i > 0 {
			sql.WriteString(" AND ")
		}
		args = g.compileCondition(sql, cond, len(args), args)
	}
	return args
}

// compileCondition, tekil bir koşul varyantını SQL parçasına dönüştürür.
// Parametreli koşullarda yer tutucu ve değer birlikte eklenir.
func (g *ANSIGrammar) compileCondition(sql *strings.Builder, cond Condition, index int, args []any) []any {
	var value any
	switch c := cond.(type) {
	case RawCondition:
		sql.WriteString(c.Expr)
	case EqualsCondition:
		sql.WriteString(c.Column)
		sql.WriteString(" =")
		value = c.Value
	case OpCondition:
		sql.WriteString(c.Column)
		sql.WriteString(" ")
		sql.WriteString(c.Operator)
		value = c.Value
	}

	if cond.Parameterized() {
		sql.WriteString(" ")
		sql.WriteString(g.Placeholder(index))
		args = append(args, value)
	}
	return args
}

// compileJoin, "<TYPE> JOIN <table> [alias] [ON <condition>]" parçasını üretir.
func (g *ANSIGrammar) compileJoin(join JoinClause) string {
	joinType := join.Type
	if joinType == "" {
		joinType = JoinInner
	}

	out := string(joinType) + " JOIN " + join.Table
	if join.Alias != "" {
		out += " " + join.Alias
	}
	if join.Condition != "" {
		out += " ON " + join.Condition
	}
	return out
}
