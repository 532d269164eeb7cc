// Package querydef, SELECT sorgularını YAML dosyalarında tanımlamayı ve bu
// tanımları bir QueryBuilder'a dönüştürmeyi sağlar.
//
// Örnek tanım:
//
//	name: active_users
//	table: users
//	alias: u
//	select: [u.id, u.name]
//	joins:
//	  - {type: LEFT, table: orders, alias: o, on: o.user_id = u.id}
//	filters:
//	  - raw: u.deleted_at IS NULL
//	  - {column: u.status, value: active}
//	  - {column: u.age, op: ">", value: 18}
//	group: u.id
//	having: COUNT(o.id) > 1
//	order: [u.id DESC]
//	limit: {count: 10, offset: 20}
//
// Yazar: Ahmet ALTUN
// Github: github.com/biyonik
// LinkedIn: linkedin.com/in/biyonik
// Email: ahmet.altun60@gmail.com
package querydef

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	querybuilder "github.com/biyonik/go-query-builder"
	"github.com/biyonik/go-query-builder/dialect"
)

var (
	// ErrEmptyDefinition is returned when the document contains no YAML.
	ErrEmptyDefinition = errors.New("querydef: empty definition")

	// ErrMissingTable is returned when the definition has no table.
	ErrMissingTable = errors.New("querydef: table is required")

	// ErrInvalidFilter is returned for filters that set both or neither of raw
	// and column, or a raw filter that also sets op or value.
	ErrInvalidFilter = errors.New("querydef: filter needs exactly one of raw or column")

	// ErrMultipleDocuments is returned when the input holds more than one YAML document.
	ErrMultipleDocuments = errors.New("querydef: one definition per file")

	// ErrInvalidJoin is returned for joins without a table.
	ErrInvalidJoin = errors.New("querydef: join table is required")

	// ErrConflictingLimit is returned when both limit and page are set.
	ErrConflictingLimit = errors.New("querydef: limit and page are mutually exclusive")
)

// Definition, tek bir SELECT sorgusunun YAML karşılığıdır.
type Definition struct {
	Name    string      `yaml:"name"`
	Table   string      `yaml:"table"`
	Alias   string      `yaml:"alias"`
	Select  []string    `yaml:"select"`
	Joins   []JoinDef   `yaml:"joins"`
	Filters []FilterDef `yaml:"filters"`
	Group   string      `yaml:"group"`
	Having  string      `yaml:"having"`
	Order   []string    `yaml:"order"`
	Limit   *LimitDef   `yaml:"limit"`
	Page    *PageDef    `yaml:"page"`
}

// JoinDef, bir JOIN tanımıdır. Type boşsa INNER kabul edilir.
type JoinDef struct {
	Type  string `yaml:"type"`
	Table string `yaml:"table"`
	Alias string `yaml:"alias"`
	On    string `yaml:"on"`
}

// FilterDef, bir WHERE koşuludur. Raw ya da Column alanlarından yalnızca biri
// dolu olmalıdır. Op boşsa eşitlik kullanılır. Raw filtreler op ve value almaz.
type FilterDef struct {
	Raw    string `yaml:"raw"`
	Column string `yaml:"column"`
	Op     string `yaml:"op"`
	Value  any    `yaml:"value"`

	// hasValue, value anahtarı null olsa bile yazıldıysa true olur.
	hasValue bool
}

// UnmarshalYAML, value anahtarının varlığını kaydeder ve bilinmeyen
// anahtarları reddeder.
func (f *FilterDef) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return errors.Errorf("line %d: filter must be a mapping", node.Line)
	}

	hasValue := false
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		switch key.Value {
		case "raw", "column", "op":
		case "value":
			hasValue = true
		default:
			return errors.Errorf("line %d: field %s not found in filter", key.Line, key.Value)
		}
	}

	type plain FilterDef
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*f = FilterDef(p)
	f.hasValue = hasValue
	return nil
}

// LimitDef, LIMIT ve offset değerleridir.
type LimitDef struct {
	Count  int `yaml:"count"`
	Offset int `yaml:"offset"`
}

// PageDef, sayfa bazlı limit tanımıdır. Number 1'den başlar.
type PageDef struct {
	Number int `yaml:"number"`
	Size   int `yaml:"size"`
}

// Parse, YAML içeriğini çözer ve doğrular. Bilinmeyen alanlar hata üretir.
func Parse(data []byte) (*Definition, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var def Definition
	if err := dec.Decode(&def); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDefinition
		}
		return nil, errors.Wrap(err, "querydef: invalid YAML")
	}

	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, errors.Wrap(err, "querydef: invalid YAML")
		}
		if !isEmptyDocument(&extra) {
			return nil, ErrMultipleDocuments
		}
	}

	if err := def.Validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

// Load, verilen dosyayı okur ve Parse eder. İsim verilmemişse dosya adı kullanılır.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "querydef: read %s", path)
	}

	def, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "querydef: %s", path)
	}
	if def.Name == "" {
		def.Name = path
	}
	return def, nil
}

// Validate, tanımın yapısal olarak tutarlı olduğunu kontrol eder. Tablo ve
// operatör içerikleri burada değil, QueryBuilder.Validate ile kontrol edilir.
func (d *Definition) Validate() error {
	if strings.TrimSpace(d.Table) == "" {
		return ErrMissingTable
	}

	for i, f := range d.Filters {
		if (f.Raw == "") == (f.Column == "") {
			return errors.Wrapf(ErrInvalidFilter, "filter #%d", i+1)
		}
		if f.Raw != "" && f.Op != "" {
			return errors.Wrapf(ErrInvalidFilter, "filter #%d: raw filter cannot set op", i+1)
		}
		if f.Raw != "" && (f.hasValue || f.Value != nil) {
			return errors.Wrapf(ErrInvalidFilter, "filter #%d: raw filter cannot set value", i+1)
		}
	}

	for i, j := range d.Joins {
		if j.Table == "" {
			return errors.Wrapf(ErrInvalidJoin, "join #%d", i+1)
		}
	}

	if d.Limit != nil && d.Page != nil {
		return ErrConflictingLimit
	}
	return nil
}

// Builder, tanımı yeni bir QueryBuilder'a aktarır. Filtreler, join'ler ve
// sıralamalar dosyadaki sırayla eklenir.
func (d *Definition) Builder(opts ...querybuilder.Option) *querybuilder.QueryBuilder {
	qb := querybuilder.NewAs(d.Table, d.Alias, opts...)

	for _, col := range d.Select {
		qb.Select(col)
	}

	for _, j := range d.Joins {
		kind := dialect.JoinType(strings.ToUpper(strings.TrimSpace(j.Type)))
		if kind == "" {
			kind = dialect.JoinInner
		}
		qb.JoinType(kind, j.Table, j.Alias, j.On)
	}

	for _, f := range d.Filters {
		qb.Filter(f.condition())
	}

	if d.Group != "" {
		qb.Group(d.Group)
	}
	if d.Having != "" {
		qb.Having(d.Having)
	}

	for _, o := range d.Order {
		qb.Order(o)
	}

	switch {
	case d.Limit != nil:
		qb.LimitOffset(d.Limit.Count, d.Limit.Offset)
	case d.Page != nil:
		qb.ForPage(d.Page.Number, d.Page.Size)
	}

	return qb
}

func (f FilterDef) condition() querybuilder.Condition {
	switch {
	case f.Raw != "":
		return querybuilder.Raw(f.Raw)
	case f.Op == "":
		return querybuilder.Equals(f.Column, f.Value)
	default:
		return querybuilder.Op(f.Column, f.Op, f.Value)
	}
}

// isEmptyDocument reports whether a trailing "---" introduced nothing but null.
func isEmptyDocument(n *yaml.Node) bool {
	if n.Kind == yaml.DocumentNode {
		if len(n.Content) == 0 {
			return true
		}
		n = n.Content[0]
	}
	return n.Kind == yaml.ScalarNode && n.Tag == "!!null"
}
