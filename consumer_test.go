package querybuilder_test

import (
	"context"
	"database/sql"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pingcap/tidb/pkg/parser"
	"github.com/pingcap/tidb/pkg/parser/ast"
	_ "github.com/pingcap/tidb/pkg/parser/test_driver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	querybuilder "github.com/biyonik/go-query-builder"
)

// The compiled SQL and params must go straight into database/sql.
func TestQueryBuilder_FeedsDatabaseSQL(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	qb := querybuilder.NewAs("users", "u").
		Where("username", "admin").
		WhereOp("date_created", "<", 100).
		Order("username ASC").
		Limit(10)
	query, params := qb.ToSQL()

	mock.ExpectQuery("SELECT * FROM users u WHERE username = ? AND date_created < ? ORDER BY username ASC LIMIT 0, 10").
		WithArgs("admin", 100).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow(1, "admin"))

	rows, err := db.QueryContext(context.Background(), query, params...)
	require.NoError(t, err)
	defer func() { _ = rows.Close() }()

	require.True(t, rows.Next())
	var (
		id       int
		username string
	)
	require.NoError(t, rows.Scan(&id, &username))
	assert.Equal(t, 1, id)
	assert.Equal(t, "admin", username)
	require.NoError(t, rows.Err())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func openSQLite(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// every connection gets its own in-memory database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	stmts := []string{
		`CREATE TABLE users (id INTEGER PRIMARY KEY, username TEXT NOT NULL, date_created INTEGER NOT NULL)`,
		`CREATE TABLE orders (id INTEGER PRIMARY KEY, user_id INTEGER NOT NULL, total INTEGER NOT NULL)`,
		`INSERT INTO users (id, username, date_created) VALUES (1, 'admin', 10), (2, 'bob', 50), (3, 'carol', 150), (4, 'dave', 90)`,
		`INSERT INTO orders (id, user_id, total) VALUES (1, 1, 30), (2, 1, 70), (3, 2, 5), (4, 4, 40), (5, 4, 60)`,
	}
	for _, stmt := range stmts {
		_, err := db.Exec(stmt)
		require.NoError(t, err, stmt)
	}
	return db
}

func queryIDs(t *testing.T, db *sql.DB, qb *querybuilder.QueryBuilder) []int {
	t.Helper()

	query, params := qb.ToSQL()
	rows, err := db.Query(query, params...)
	require.NoError(t, err, query)
	defer func() { _ = rows.Close() }()

	var ids []int
	for rows.Next() {
		var id int
		require.NoError(t, rows.Scan(&id))
		ids = append(ids, id)
	}
	require.NoError(t, rows.Err())
	return ids
}

func TestQueryBuilder_RunsOnSQLite(t *testing.T) {
	db := openSQLite(t)

	tests := []struct {
		name string
		qb   *querybuilder.QueryBuilder
		want []int
	}{
		{
			name: "equality",
			qb:   querybuilder.NewAs("users", "u").Select("u.id").Where("username", "admin"),
			want: []int{1},
		},
		{
			name: "operator order limit",
			qb: querybuilder.NewAs("users", "u").Select("u.id").
				WhereOp("date_created", "<", 100).
				Order("username ASC").
				Limit(2),
			want: []int{1, 2},
		},
		{
			name: "offset first limit",
			qb: querybuilder.New("users").Select("id").
				Order("id ASC").
				LimitOffset(2, 1),
			want: []int{2, 3},
		},
		{
			name: "join group having",
			qb: querybuilder.NewAs("users", "u").Select("u.id").
				Join("orders", "o", "o.user_id = u.id").
				WhereRaw("o.total > 0").
				Group("u.id").
				Having("SUM(o.total) >= 100").
				Order("u.id ASC"),
			want: []int{1, 4},
		},
		{
			name: "left join keeps users without orders",
			qb: querybuilder.NewAs("users", "u").Select("u.id").
				LeftJoin("orders", "o", "o.user_id = u.id").
				WhereRaw("o.id IS NULL"),
			want: []int{3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, queryIDs(t, db, tt.qb))
			// compiling again must not change the bound parameters
			assert.Equal(t, tt.want, queryIDs(t, db, tt.qb))
		})
	}
}

func TestQueryBuilder_ParsesAsSelect(t *testing.T) {
	tests := []struct {
		name string
		qb   *querybuilder.QueryBuilder
	}{
		{"star", querybuilder.New("users")},
		{"equality", querybuilder.NewAs("users", "u").Where("username", "admin")},
		{
			name: "everything",
			qb: querybuilder.NewAs("users", "u").
				Select("u.id").
				Select("COUNT(o.id) AS orders").
				Join("orders", "o", "o.user_id = u.id").
				LeftJoin("profiles", "p", "p.user_id = u.id").
				RightJoin("teams", "t", "t.id = u.team_id").
				WhereRaw("u.deleted_at IS NULL").
				Where("u.status", "active").
				WhereOp("u.age", ">=", 18).
				WhereOp("u.name", "LIKE", "a%").
				Group("u.id").
				Having("COUNT(o.id) > 1").
				Order("u.id DESC").
				LimitOffset(10, 20),
		},
	}

	p := parser.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, params := tt.qb.ToSQL()

			stmt, err := p.ParseOneStmt(query, "", "")
			require.NoError(t, err, query)

			sel, ok := stmt.(*ast.SelectStmt)
			require.True(t, ok, "expected select stmt")
			assert.Equal(t, len(params), strings.Count(query, "?"))

			if len(tt.qb.GetConditions()) > 0 {
				assert.NotNil(t, sel.Where)
			}
			if tt.qb.GetLimit() != nil {
				require.NotNil(t, sel.Limit)
				assert.NotNil(t, sel.Limit.Offset)
			}
		})
	}
}
