package querybuilder

import (
	"github.com/pkg/errors"

	"github.com/biyonik/go-query-builder/dialect"
	"github.com/biyonik/go-query-builder/internal/validation"
)

// Validate, builder durumunu açıkça istenen kurallara göre denetler ve ilk
// hatayı bağlamıyla birlikte döndürür:
//
//   - tablo boş olmamalı ve geçerli bir tanımlayıcı olmalı, alias geçerli olmalı
//   - Op koşullarının operatörleri izin listesinde olmalı
//   - join türü bilinen bir tür olmalı, join tablosu ve alias'ı geçerli olmalı
//   - limit sayısı ve offset negatif olmamalı
//
// Raw koşullar, kolon ifadeleri ve join koşulları ham SQL olarak kabul edilir
// ve denetlenmez.
func (b *QueryBuilder) Validate() error {
	if err := validateTable(b.table); err != nil {
		return err
	}

	for i, cond := range b.conditions {
		op, ok := cond.(dialect.OpCondition)
		if !ok {
			continue
		}
		if err := validation.ValidateOperator(op.Operator); err != nil {
			return errors.Wrapf(
				NewValidationError(op.Operator, "operator", reason(err), ErrInvalidOperator),
				"filter #%d on %q", i+1, op.Column,
			)
		}
	}

	for _, join := range b.joins.Items() {
		if err := validateJoin(join); err != nil {
			return errors.Wrapf(err, "join %q", join.Key())
		}
	}

	if b.limit != nil && (b.limit.Count < 0 || b.limit.Offset < 0) {
		return errors.Wrapf(ErrInvalidLimit, "count=%d offset=%d", b.limit.Count, b.limit.Offset)
	}

	return nil
}

func validateTable(table dialect.TableRef) error {
	if table.IsZero() {
		return ErrNoTable
	}
	if err := validation.ValidateIdentifier(table.Name); err != nil {
		return errors.Wrap(
			NewValidationError(table.Name, "table", reason(err), ErrInvalidIdentifier),
			"from",
		)
	}
	if err := validation.ValidateAlias(table.Alias); err != nil {
		return errors.Wrap(
			NewValidationError(table.Alias, "alias", reason(err), ErrInvalidIdentifier),
			"from",
		)
	}
	return nil
}

func validateJoin(join dialect.JoinClause) error {
	if join.Type != "" && !join.Type.IsKnown() {
		return NewValidationError(string(join.Type), "join type", "unknown join type", ErrInvalidJoinType)
	}
	if err := validation.ValidateIdentifier(join.Table); err != nil {
		return NewValidationError(join.Table, "table", reason(err), ErrInvalidIdentifier)
	}
	if err := validation.ValidateAlias(join.Alias); err != nil {
		return NewValidationError(join.Alias, "alias", reason(err), ErrInvalidIdentifier)
	}
	return nil
}

// reason, validation paketinin hatasından önek içermeyen açıklamayı çıkarır.
func reason(err error) string {
	var idErr *validation.IdentifierError
	if errors.As(err, &idErr) {
		return idErr.Reason
	}
	var opErr *validation.OperatorError
	if errors.As(err, &opErr) {
		return opErr.Reason
	}
	return err.Error()
}
