// Package querybuilder provides a fluent SELECT query builder for Go.
//
// go-query-builder accumulates query fragments and compiles them into a plain
// SQL string with "?" placeholders plus the ordered list of values to bind.
// The output can be handed to any database/sql style API.
//
// # Quick Start
//
//	qb := querybuilder.NewAs("users", "u").
//	    Where("username", "admin")
//
//	sql, params := qb.ToSQL()
//	// sql:    SELECT * FROM users u WHERE username = ?
//	// params: [admin]
//
//	rows, err := db.QueryContext(ctx, sql, params...)
//
// # Conditions
//
// Conditions are one of three shapes, all combined with AND:
//
//	qb.Filter(querybuilder.Raw("deleted_at IS NULL")) // verbatim, no parameter
//	qb.Filter(querybuilder.Equals("status", "active")) // status = ?
//	qb.Filter(querybuilder.Op("age", ">", 18))          // age > ?
//
// Where, WhereOp and WhereRaw are shorthands for the same three shapes.
//
// # Joins, Grouping, Ordering, Limits
//
//	qb.Join("orders", "o", "o.user_id = u.id").
//	    LeftJoin("profiles", "p", "p.user_id = u.id").
//	    Group("u.id").
//	    Having("COUNT(o.id) > 1").
//	    Order("u.id DESC").
//	    LimitOffset(10, 20)
//	// ... LIMIT 20, 10
//
// Joins are keyed by alias: adding a join with an alias already in use
// replaces the earlier definition in its original position. LIMIT is written
// offset first.
//
// # Compilation
//
// ToSQL, Compile, Params and String never modify the builder, so calling them
// repeatedly yields the same SQL and the same parameters. Build additionally
// runs Validate, which checks the table, aliases, operators and join types.
// Raw fragments are trusted and never inspected.
//
// # Thread Safety
//
// QueryBuilder instances are NOT thread-safe. Use Clone to hand an
// independent copy to another goroutine.
package querybuilder
